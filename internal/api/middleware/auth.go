package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/scorekeep/scorekeep/internal/api/apierr"
	"github.com/scorekeep/scorekeep/internal/model"
	"github.com/scorekeep/scorekeep/internal/services/token"
)

type contextKey string

const handleContextKey contextKey = "handle"

// Auth creates authentication middleware. The Authorization header must
// carry a "Bearer " prefix; raw token values are rejected. On failure
// the downstream handler is never invoked
func Auth(tokenService *token.Service) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			raw := extractBearerToken(r)
			if raw == "" {
				apierr.WriteError(w, token.ErrMissingToken)
				return
			}

			claims, err := tokenService.Verify(raw)
			if err != nil {
				apierr.WriteError(w, err)
				return
			}

			ctx := context.WithValue(r.Context(), handleContextKey, claims.Handle)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// extractBearerToken extracts the token from the Authorization header
func extractBearerToken(r *http.Request) string {
	authHeader := r.Header.Get("Authorization")
	if strings.HasPrefix(authHeader, "Bearer ") {
		return strings.TrimPrefix(authHeader, "Bearer ")
	}
	return ""
}

// GetHandle returns the authenticated handle from the request context
func GetHandle(ctx context.Context) (model.Handle, bool) {
	handle, ok := ctx.Value(handleContextKey).(model.Handle)
	return handle, ok
}

// MustGetHandle returns the authenticated handle or panics
func MustGetHandle(ctx context.Context) model.Handle {
	handle, ok := GetHandle(ctx)
	if !ok {
		panic("no handle in context - auth middleware not applied?")
	}
	return handle
}
