package api

import (
	"log/slog"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/scorekeep/scorekeep/internal/api/handler"
	apimiddleware "github.com/scorekeep/scorekeep/internal/api/middleware"
	"github.com/scorekeep/scorekeep/internal/middleware"
	"github.com/scorekeep/scorekeep/internal/services/identity"
	"github.com/scorekeep/scorekeep/internal/services/scores"
	"github.com/scorekeep/scorekeep/internal/services/token"
)

// RouterConfig holds configuration for the API router
type RouterConfig struct {
	Logger          *slog.Logger
	IdentityService *identity.Service
	TokenService    *token.Service
	ScoreService    *scores.Service
}

// NewRouter creates a new API router with all routes configured.
// Listing scores is public; submitting and deleting require a bearer
// token
func NewRouter(cfg RouterConfig) http.Handler {
	r := mux.NewRouter()
	r.Use(apimiddleware.Recovery(cfg.Logger))
	r.Use(middleware.Logging(cfg.Logger))

	// Create handlers
	authHandler := handler.NewAuthHandler(cfg.IdentityService, cfg.TokenService)
	scoresHandler := handler.NewScoresHandler(cfg.ScoreService)

	// Create middleware
	authMiddleware := apimiddleware.Auth(cfg.TokenService)

	// Credential routes (no auth required)
	r.HandleFunc("/signup", authHandler.Signup).Methods(http.MethodPost)
	r.HandleFunc("/login", authHandler.Login).Methods(http.MethodPost)

	// Public score routes
	r.HandleFunc("/high-scores", scoresHandler.List).Methods(http.MethodGet)
	r.HandleFunc("/high-scores/{id}", scoresHandler.Get).Methods(http.MethodGet)

	// Protected score routes
	r.Handle("/high-scores", authMiddleware(http.HandlerFunc(scoresHandler.Submit))).Methods(http.MethodPost)
	r.Handle("/high-scores/{id}", authMiddleware(http.HandlerFunc(scoresHandler.Delete))).Methods(http.MethodDelete)

	// Health check endpoint (no auth)
	r.HandleFunc("/health", healthHandler).Methods(http.MethodGet)

	return r
}

func healthHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(`{"status":"ok"}`))
}
