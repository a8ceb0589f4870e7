package scores

import (
	"context"
	"fmt"
	"math"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/scorekeep/scorekeep/internal/model"
	"github.com/scorekeep/scorekeep/internal/storage/memory"
)

type ServiceSuite struct {
	suite.Suite
	storage *memory.Storage
	service *Service
	ctx     context.Context
}

func TestServiceSuite(t *testing.T) {
	suite.Run(t, new(ServiceSuite))
}

func (s *ServiceSuite) SetupTest() {
	s.storage = memory.New()
	s.service = New(s.storage)
	s.ctx = context.Background()
}

func (s *ServiceSuite) submit(level string, handle model.Handle, value float64) *model.Score {
	stored, err := s.service.Submit(s.ctx, &model.Score{
		Level:     level,
		Handle:    handle,
		Score:     value,
		Timestamp: "2024-01-01T12:00:00Z",
	})
	s.Require().NoError(err)
	return stored
}

// Submit tests

func (s *ServiceSuite) TestSubmitSucceeds() {
	stored := s.submit("1-1", "player01", 500)

	s.Equal(model.ScoreID(1), stored.ID)
	s.Equal("1-1", stored.Level)
	s.Equal(float64(500), stored.Score)
}

func (s *ServiceSuite) TestSubmitAcceptsZeroScore() {
	stored := s.submit("1-1", "player01", 0)
	s.Equal(float64(0), stored.Score)
}

func (s *ServiceSuite) TestSubmitFailsWithMissingLevel() {
	_, err := s.service.Submit(s.ctx, &model.Score{Handle: "player01", Score: 10, Timestamp: "t"})
	s.ErrorIs(err, ErrLevelRequired)
}

func (s *ServiceSuite) TestSubmitFailsWithMissingHandle() {
	_, err := s.service.Submit(s.ctx, &model.Score{Level: "1-1", Score: 10, Timestamp: "t"})
	s.ErrorIs(err, ErrHandleRequired)
}

func (s *ServiceSuite) TestSubmitFailsWithMissingTimestamp() {
	_, err := s.service.Submit(s.ctx, &model.Score{Level: "1-1", Handle: "player01", Score: 10})
	s.ErrorIs(err, ErrTimestampRequired)
}

func (s *ServiceSuite) TestSubmitFailsWithNegativeScore() {
	_, err := s.service.Submit(s.ctx, &model.Score{
		Level: "1-1", Handle: "player01", Score: -1, Timestamp: "t",
	})
	s.ErrorIs(err, model.ErrInvalidScore)

	// Nothing was inserted
	records, _ := s.service.List(s.ctx, "", 1)
	s.Empty(records)
}

func (s *ServiceSuite) TestSubmitFailsWithNaNScore() {
	_, err := s.service.Submit(s.ctx, &model.Score{
		Level: "1-1", Handle: "player01", Score: math.NaN(), Timestamp: "t",
	})
	s.ErrorIs(err, model.ErrInvalidScore)
}

// List tests

func (s *ServiceSuite) TestListSortsByScoreDescending() {
	s.submit("1-1", "player01", 100)
	s.submit("1-1", "player02", 300)
	s.submit("1-1", "player03", 200)

	records, err := s.service.List(s.ctx, "1-1", 1)
	s.Require().NoError(err)
	s.Require().Len(records, 3)
	s.Equal(float64(300), records[0].Score)
	s.Equal(float64(200), records[1].Score)
	s.Equal(float64(100), records[2].Score)
}

func (s *ServiceSuite) TestListBreaksTiesByInsertionOrder() {
	first := s.submit("1-1", "player01", 100)
	second := s.submit("1-1", "player02", 100)

	records, err := s.service.List(s.ctx, "1-1", 1)
	s.Require().NoError(err)
	s.Require().Len(records, 2)
	s.Equal(first.ID, records[0].ID)
	s.Equal(second.ID, records[1].ID)
}

func (s *ServiceSuite) TestListFiltersByLevel() {
	s.submit("boss1", "player01", 100)
	s.submit("1-1", "player02", 999)
	s.submit("boss1", "player03", 200)

	records, err := s.service.List(s.ctx, "boss1", 1)
	s.Require().NoError(err)
	s.Require().Len(records, 2)
	for _, r := range records {
		s.Equal("boss1", r.Level)
	}
}

func (s *ServiceSuite) TestListWithoutLevelReturnsAll() {
	s.submit("boss1", "player01", 100)
	s.submit("1-1", "player02", 200)

	records, err := s.service.List(s.ctx, "", 1)
	s.Require().NoError(err)
	s.Len(records, 2)
}

func (s *ServiceSuite) TestListPaginatesAtTwenty() {
	for i := 0; i < 25; i++ {
		s.submit("1-1", model.Handle(fmt.Sprintf("player%02d", i)), float64(i))
	}

	page1, err := s.service.List(s.ctx, "1-1", 1)
	s.Require().NoError(err)
	s.Len(page1, PageSize)

	page2, err := s.service.List(s.ctx, "1-1", 2)
	s.Require().NoError(err)
	s.Len(page2, 5)

	// Page 2 continues exactly where page 1 left off
	s.Greater(page1[PageSize-1].Score, page2[0].Score)
}

func (s *ServiceSuite) TestListPageBeyondDataIsEmpty() {
	s.submit("1-1", "player01", 100)

	records, err := s.service.List(s.ctx, "1-1", 99)
	s.Require().NoError(err)
	s.Empty(records)
}

func (s *ServiceSuite) TestListFailsWithInvalidPage() {
	_, err := s.service.List(s.ctx, "1-1", 0)
	s.ErrorIs(err, ErrInvalidPage)
}

// Get tests

func (s *ServiceSuite) TestGetSucceeds() {
	stored := s.submit("1-1", "player01", 100)

	record, err := s.service.Get(s.ctx, stored.ID)
	s.Require().NoError(err)
	s.Equal(stored.ID, record.ID)
}

func (s *ServiceSuite) TestGetFailsWhenAbsent() {
	_, err := s.service.Get(s.ctx, 42)
	s.ErrorIs(err, model.ErrScoreNotFound)
}

// Delete tests

func (s *ServiceSuite) TestDeleteByOwnerSucceeds() {
	stored := s.submit("1-1", "player01", 100)

	err := s.service.Delete(s.ctx, stored.ID, "player01")
	s.Require().NoError(err)

	_, err = s.service.Get(s.ctx, stored.ID)
	s.ErrorIs(err, model.ErrScoreNotFound)
}

func (s *ServiceSuite) TestDeleteByNonOwnerFails() {
	stored := s.submit("1-1", "player01", 100)

	err := s.service.Delete(s.ctx, stored.ID, "player02")
	s.ErrorIs(err, model.ErrNotScoreOwner)

	// Record is still present
	_, err = s.service.Get(s.ctx, stored.ID)
	s.NoError(err)
}

func (s *ServiceSuite) TestDeleteFailsWhenAbsent() {
	err := s.service.Delete(s.ctx, 42, "player01")
	s.ErrorIs(err, model.ErrScoreNotFound)
}
