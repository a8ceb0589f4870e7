package token

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/scorekeep/scorekeep/internal/dependencies/clock"
	"github.com/scorekeep/scorekeep/internal/model"
)

// Errors
var (
	ErrMissingToken = errors.New("no token presented")
	ErrInvalidToken = errors.New("invalid or expired token")
)

// Claims are the claims embedded in an issued token
type Claims struct {
	Handle model.Handle `json:"handle"`
	jwt.RegisteredClaims
}

// Config holds configuration for the token service
type Config struct {
	// Secret is the HMAC signing key shared by issue and verify
	Secret string
	// TTL is how long an issued token stays valid
	TTL time.Duration
}

// DefaultConfig returns default token configuration
func DefaultConfig() Config {
	return Config{
		TTL: time.Hour,
	}
}

// Service issues and verifies signed bearer tokens. Tokens are
// stateless: nothing is stored server-side, and a token is never
// re-checked against the credential store after issuance. Identities
// cannot be deleted, so signature plus expiry is sufficient
type Service struct {
	secret []byte
	ttl    time.Duration
	clock  clock.Clock
}

// New creates a new token service
func New(cfg Config, clock clock.Clock) *Service {
	if cfg.TTL == 0 {
		cfg.TTL = DefaultConfig().TTL
	}
	return &Service{
		secret: []byte(cfg.Secret),
		ttl:    cfg.TTL,
		clock:  clock,
	}
}

// Issue produces a signed token bound to the given handle, valid for
// the configured TTL from now
func (s *Service) Issue(handle model.Handle) (string, error) {
	now := s.clock.Now()

	claims := &Claims{
		Handle: handle,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   string(handle),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
		},
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}

	return signed, nil
}

// Verify checks a presented token's signature and expiry and returns
// the embedded claims
func (s *Service) Verify(raw string) (*Claims, error) {
	if raw == "" {
		return nil, ErrMissingToken
	}

	parsed, err := jwt.ParseWithClaims(raw, &Claims{}, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return s.secret, nil
	}, jwt.WithTimeFunc(s.clock.Now))
	if err != nil {
		return nil, ErrInvalidToken
	}

	claims, ok := parsed.Claims.(*Claims)
	if !ok || !parsed.Valid {
		return nil, ErrInvalidToken
	}

	return claims, nil
}
