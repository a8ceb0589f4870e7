package factory

import (
	"time"

	"github.com/scorekeep/scorekeep/internal/dependencies/mocks"
	"github.com/scorekeep/scorekeep/internal/services/token"
	"github.com/scorekeep/scorekeep/internal/storage/memory"
)

// TestApp extends App with test-specific helpers
type TestApp struct {
	*App

	// MockClock controls time for token expiry tests
	MockClock *mocks.MockClock
}

// NewTestApp creates an App configured for testing with a mocked clock
func NewTestApp() *TestApp {
	store := memory.New()
	mockClock := mocks.NewMockClock(time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC))

	app := newWithDependencies(store, mockClock, token.Config{Secret: "test-signing-secret"})

	return &TestApp{
		App:       app,
		MockClock: mockClock,
	}
}
