package factory

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/scorekeep/scorekeep/internal/model"
)

// TestSignupLoginSubmitFlow drives the wired services through the full
// register / verify / issue / submit / rank cycle
func TestSignupLoginSubmitFlow(t *testing.T) {
	app := NewTestApp()
	ctx := context.Background()

	_, err := app.IdentityService.Register(ctx, "player01", "secret1")
	require.NoError(t, err)

	user, err := app.IdentityService.Verify(ctx, "player01", "secret1")
	require.NoError(t, err)

	raw, err := app.TokenService.Issue(user.Handle)
	require.NoError(t, err)

	claims, err := app.TokenService.Verify(raw)
	require.NoError(t, err)
	assert.Equal(t, model.Handle("player01"), claims.Handle)

	stored, err := app.ScoreService.Submit(ctx, &model.Score{
		Level:     "1-1",
		Handle:    claims.Handle,
		Score:     500,
		Timestamp: "2024-01-01T12:00:00Z",
	})
	require.NoError(t, err)

	records, err := app.ScoreService.List(ctx, "1-1", 1)
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, stored.ID, records[0].ID)
}

// TestTokenExpiryThroughMockClock pins the one-hour token lifetime
func TestTokenExpiryThroughMockClock(t *testing.T) {
	app := NewTestApp()

	raw, err := app.TokenService.Issue("player01")
	require.NoError(t, err)

	app.MockClock.Advance(59 * time.Minute)
	_, err = app.TokenService.Verify(raw)
	assert.NoError(t, err)

	app.MockClock.Advance(2 * time.Minute)
	_, err = app.TokenService.Verify(raw)
	assert.Error(t, err)
}
