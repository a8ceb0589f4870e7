package factory

import (
	"github.com/scorekeep/scorekeep/internal/dependencies/clock"
	"github.com/scorekeep/scorekeep/internal/services/identity"
	"github.com/scorekeep/scorekeep/internal/services/scores"
	"github.com/scorekeep/scorekeep/internal/services/token"
	"github.com/scorekeep/scorekeep/internal/storage"
	"github.com/scorekeep/scorekeep/internal/storage/memory"
)

// App contains all wired application components
type App struct {
	Storage storage.Storage
	Clock   clock.Clock

	IdentityService *identity.Service
	TokenService    *token.Service
	ScoreService    *scores.Service
}

// Config holds configuration for the application factory
type Config struct {
	// Token holds signing configuration for the token service. A zero
	// TTL falls back to token.DefaultConfig()
	Token token.Config
}

// New creates a new application with all dependencies wired. Storage is
// in-memory; all state is lost when the process exits
func New(cfg Config) *App {
	return newWithDependencies(memory.New(), clock.New(), cfg.Token)
}

// newWithDependencies creates an App with the given dependencies (useful for testing)
func newWithDependencies(store storage.Storage, clk clock.Clock, tokenCfg token.Config) *App {
	return &App{
		Storage:         store,
		Clock:           clk,
		IdentityService: identity.New(store, clk),
		TokenService:    token.New(tokenCfg, clk),
		ScoreService:    scores.New(store),
	}
}
