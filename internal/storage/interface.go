package storage

import (
	"context"

	"github.com/scorekeep/scorekeep/internal/model"
)

// Storage defines the interface for data persistence
type Storage interface {
	// User operations
	// CreateUser fails with model.ErrHandleTaken if the handle is
	// already registered; the uniqueness check and the insert are a
	// single atomic operation
	CreateUser(ctx context.Context, user *model.User) error
	GetUser(ctx context.Context, handle model.Handle) (*model.User, error)

	// Score operations
	// InsertScore assigns the record's ID and preserves insertion order
	InsertScore(ctx context.Context, score *model.Score) (*model.Score, error)
	// ListScores returns records in insertion order, filtered to the
	// given level when it is non-empty
	ListScores(ctx context.Context, level string) ([]*model.Score, error)
	GetScore(ctx context.Context, id model.ScoreID) (*model.Score, error)
	DeleteScore(ctx context.Context, id model.ScoreID) error
}
