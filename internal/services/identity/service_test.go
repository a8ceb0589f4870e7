package identity

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/scorekeep/scorekeep/internal/dependencies/mocks"
	"github.com/scorekeep/scorekeep/internal/model"
	"github.com/scorekeep/scorekeep/internal/storage/memory"
)

type ServiceSuite struct {
	suite.Suite
	storage *memory.Storage
	clock   *mocks.MockClock
	service *Service
	ctx     context.Context
}

func TestServiceSuite(t *testing.T) {
	suite.Run(t, new(ServiceSuite))
}

func (s *ServiceSuite) SetupTest() {
	s.storage = memory.New()
	s.clock = mocks.NewMockClock(time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC))
	s.service = New(s.storage, s.clock)
	s.ctx = context.Background()
}

// Register tests

func (s *ServiceSuite) TestRegisterSucceeds() {
	user, err := s.service.Register(s.ctx, "player01", "secret1")
	s.Require().NoError(err)

	s.Equal(model.Handle("player01"), user.Handle)
	s.Equal(s.clock.CurrentTime, user.CreatedAt)
}

func (s *ServiceSuite) TestRegisterPersistsUser() {
	_, _ = s.service.Register(s.ctx, "player01", "secret1")

	user, err := s.storage.GetUser(s.ctx, "player01")
	s.Require().NoError(err)
	s.Equal("secret1", user.Secret)
}

func (s *ServiceSuite) TestRegisterFailsWithMissingHandle() {
	_, err := s.service.Register(s.ctx, "", "secret1")
	s.ErrorIs(err, ErrHandleRequired)
}

func (s *ServiceSuite) TestRegisterFailsWithMissingSecret() {
	_, err := s.service.Register(s.ctx, "player01", "")
	s.ErrorIs(err, ErrSecretRequired)
}

func (s *ServiceSuite) TestRegisterFailsWithShortHandle() {
	_, err := s.service.Register(s.ctx, "abc", "secret1")
	s.ErrorIs(err, ErrHandleTooShort)
}

func (s *ServiceSuite) TestRegisterFailsWithShortSecret() {
	_, err := s.service.Register(s.ctx, "player01", "abc")
	s.ErrorIs(err, ErrSecretTooShort)
}

func (s *ServiceSuite) TestRegisterFailsIfHandleTaken() {
	_, err := s.service.Register(s.ctx, "player01", "secret1")
	s.Require().NoError(err)

	_, err = s.service.Register(s.ctx, "player01", "different1")
	s.ErrorIs(err, model.ErrHandleTaken)
}

// Verify tests

func (s *ServiceSuite) TestVerifySucceeds() {
	_, _ = s.service.Register(s.ctx, "player01", "secret1")

	user, err := s.service.Verify(s.ctx, "player01", "secret1")
	s.Require().NoError(err)
	s.Equal(model.Handle("player01"), user.Handle)
}

func (s *ServiceSuite) TestVerifyFailsWithWrongSecret() {
	_, _ = s.service.Register(s.ctx, "player01", "secret1")

	_, err := s.service.Verify(s.ctx, "player01", "wrongsecret")
	s.ErrorIs(err, ErrInvalidCredentials)
}

func (s *ServiceSuite) TestVerifyFailsWithUnknownHandle() {
	_, err := s.service.Verify(s.ctx, "nobody99", "secret1")
	s.ErrorIs(err, ErrInvalidCredentials)
}

func (s *ServiceSuite) TestVerifyDoesNotDistinguishUnknownHandleFromWrongSecret() {
	_, _ = s.service.Register(s.ctx, "player01", "secret1")

	_, errWrongSecret := s.service.Verify(s.ctx, "player01", "wrongsecret")
	_, errUnknown := s.service.Verify(s.ctx, "nobody99", "secret1")
	s.Equal(errWrongSecret, errUnknown)
}
