package scores

import (
	"context"
	"errors"
	"math"
	"sort"

	"github.com/scorekeep/scorekeep/internal/model"
	"github.com/scorekeep/scorekeep/internal/storage"
)

// PageSize is the fixed number of records per listing page
const PageSize = 20

// Errors
var (
	ErrLevelRequired     = errors.New("level is required")
	ErrHandleRequired    = errors.New("userHandle is required")
	ErrTimestampRequired = errors.New("timestamp is required")
	ErrInvalidPage       = errors.New("page must be a positive integer")
)

// Service manages the high-score collection
type Service struct {
	storage storage.Storage
}

// New creates a new scores service
func New(storage storage.Storage) *Service {
	return &Service{
		storage: storage,
	}
}

// Submit validates and stores a new score record, assigning its ID
func (s *Service) Submit(ctx context.Context, score *model.Score) (*model.Score, error) {
	if score.Level == "" {
		return nil, ErrLevelRequired
	}
	if score.Handle == "" {
		return nil, ErrHandleRequired
	}
	if score.Timestamp == "" {
		return nil, ErrTimestampRequired
	}
	if score.Score < 0 || math.IsNaN(score.Score) || math.IsInf(score.Score, 0) {
		return nil, model.ErrInvalidScore
	}

	return s.storage.InsertScore(ctx, score)
}

// List returns one page of records, filtered to level when it is
// non-empty and ranked by score from highest to lowest. The sort is
// stable, so equal scores keep their insertion order. Pages beyond the
// available data yield an empty slice, never an error
func (s *Service) List(ctx context.Context, level string, page int) ([]*model.Score, error) {
	if page < 1 {
		return nil, ErrInvalidPage
	}

	records, err := s.storage.ListScores(ctx, level)
	if err != nil {
		return nil, err
	}

	sort.SliceStable(records, func(i, j int) bool {
		return records[i].Score > records[j].Score
	})

	start := (page - 1) * PageSize
	if start >= len(records) {
		return []*model.Score{}, nil
	}
	end := start + PageSize
	if end > len(records) {
		end = len(records)
	}

	return records[start:end], nil
}

// Get looks up a single record by ID
func (s *Service) Get(ctx context.Context, id model.ScoreID) (*model.Score, error) {
	return s.storage.GetScore(ctx, id)
}

// Delete removes a record. Only the handle that submitted the record
// may delete it
func (s *Service) Delete(ctx context.Context, id model.ScoreID, requester model.Handle) error {
	record, err := s.storage.GetScore(ctx, id)
	if err != nil {
		return err
	}

	if record.Handle != requester {
		return model.ErrNotScoreOwner
	}

	return s.storage.DeleteScore(ctx, id)
}
