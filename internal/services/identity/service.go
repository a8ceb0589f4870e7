package identity

import (
	"context"
	"errors"
	"fmt"

	"github.com/scorekeep/scorekeep/internal/dependencies/clock"
	"github.com/scorekeep/scorekeep/internal/model"
	"github.com/scorekeep/scorekeep/internal/storage"
)

// MinCredentialLength is the minimum length for both handles and secrets
const MinCredentialLength = 6

// Errors
var (
	ErrHandleRequired     = errors.New("handle is required")
	ErrSecretRequired     = errors.New("secret is required")
	ErrHandleTooShort     = fmt.Errorf("handle must be at least %d characters long", MinCredentialLength)
	ErrSecretTooShort     = fmt.Errorf("secret must be at least %d characters long", MinCredentialLength)
	ErrInvalidCredentials = errors.New("invalid handle or secret")
)

// Service manages registered identities
type Service struct {
	storage storage.Storage
	clock   clock.Clock
}

// New creates a new identity service
func New(storage storage.Storage, clock clock.Clock) *Service {
	return &Service{
		storage: storage,
		clock:   clock,
	}
}

// Register creates a new identity. Both handle and secret must be at
// least MinCredentialLength characters; the handle must not already be
// registered
func (s *Service) Register(ctx context.Context, handle, secret string) (*model.User, error) {
	if handle == "" {
		return nil, ErrHandleRequired
	}
	if secret == "" {
		return nil, ErrSecretRequired
	}
	if len(handle) < MinCredentialLength {
		return nil, ErrHandleTooShort
	}
	if len(secret) < MinCredentialLength {
		return nil, ErrSecretTooShort
	}

	user := &model.User{
		Handle:    model.Handle(handle),
		Secret:    secret,
		CreatedAt: s.clock.Now(),
	}

	if err := s.storage.CreateUser(ctx, user); err != nil {
		return nil, err
	}

	return user, nil
}

// Verify checks a handle/secret pair against the registered identities.
// An unknown handle and a wrong secret fail with the same error so the
// response never reveals which handles exist
func (s *Service) Verify(ctx context.Context, handle, secret string) (*model.User, error) {
	user, err := s.storage.GetUser(ctx, model.Handle(handle))
	if err != nil {
		if errors.Is(err, model.ErrUserNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	if user.Secret != secret {
		return nil, ErrInvalidCredentials
	}

	return user, nil
}
