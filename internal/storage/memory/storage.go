package memory

import (
	"context"
	"sync"

	"github.com/scorekeep/scorekeep/internal/model"
	"github.com/scorekeep/scorekeep/internal/storage"
)

// Storage is an in-memory implementation of the storage interface.
// All state is volatile; lifetime equals the process lifetime
type Storage struct {
	mu sync.RWMutex

	users  map[model.Handle]*model.User
	scores []*model.Score
	nextID model.ScoreID
}

// New creates a new in-memory storage instance
func New() *Storage {
	return &Storage{
		users:  make(map[model.Handle]*model.User),
		nextID: 1,
	}
}

// Ensure Storage implements the interface
var _ storage.Storage = (*Storage)(nil)

// User operations

func (s *Storage) CreateUser(ctx context.Context, user *model.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	// Check-then-insert must stay inside one critical section to keep
	// handles unique under concurrent signups
	if _, ok := s.users[user.Handle]; ok {
		return model.ErrHandleTaken
	}
	s.users[user.Handle] = user
	return nil
}

func (s *Storage) GetUser(ctx context.Context, handle model.Handle) (*model.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	user, ok := s.users[handle]
	if !ok {
		return nil, model.ErrUserNotFound
	}
	return user, nil
}

// Score operations

func (s *Storage) InsertScore(ctx context.Context, score *model.Score) (*model.Score, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	stored := *score
	stored.ID = s.nextID
	s.nextID++
	s.scores = append(s.scores, &stored)
	return &stored, nil
}

func (s *Storage) ListScores(ctx context.Context, level string) ([]*model.Score, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	result := make([]*model.Score, 0, len(s.scores))
	for _, score := range s.scores {
		if level == "" || score.Level == level {
			result = append(result, score)
		}
	}
	return result, nil
}

func (s *Storage) GetScore(ctx context.Context, id model.ScoreID) (*model.Score, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, score := range s.scores {
		if score.ID == id {
			return score, nil
		}
	}
	return nil, model.ErrScoreNotFound
}

func (s *Storage) DeleteScore(ctx context.Context, id model.ScoreID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, score := range s.scores {
		if score.ID == id {
			s.scores = append(s.scores[:i], s.scores[i+1:]...)
			return nil
		}
	}
	return model.ErrScoreNotFound
}
