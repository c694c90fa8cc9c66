package services_test

import (
	"context"
	"errors"
	"testing"

	"github.com/smbanking/onboarding_backend/internal/apperrors"
	"github.com/smbanking/onboarding_backend/internal/core/domain"
	portssvc "github.com/smbanking/onboarding_backend/internal/core/ports/services"
	"github.com/smbanking/onboarding_backend/internal/core/services"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Mock NotificationRepository ---
type MockNotificationRepository struct {
	mock.Mock
}

func (m *MockNotificationRepository) SaveNotification(ctx context.Context, n domain.Notification) error {
	args := m.Called(ctx, n)
	return args.Error(0)
}

// --- Mock NotificationSink ---
type MockNotificationSink struct {
	mock.Mock
}

func (m *MockNotificationSink) Deliver(ctx context.Context, n domain.Notification) (string, error) {
	args := m.Called(ctx, n)
	return args.String(0), args.Error(1)
}

// --- Test Suite ---
type NotificationServiceTestSuite struct {
	suite.Suite
	mockCheckingRepo *MockCheckingRepository
	mockLendingRepo  *MockLendingRepository
	mockRepo         *MockNotificationRepository
	mockSink         *MockNotificationSink
	service          portssvc.NotificationSvcFacade
	ctx              context.Context
}

func (s *NotificationServiceTestSuite) SetupTest() {
	s.mockCheckingRepo = new(MockCheckingRepository)
	s.mockLendingRepo = new(MockLendingRepository)
	s.mockRepo = new(MockNotificationRepository)
	s.mockSink = new(MockNotificationSink)
	s.service = services.NewNotificationService(s.mockCheckingRepo, s.mockLendingRepo, s.mockRepo, s.mockSink, nil)
	s.ctx = context.Background()
}

func (s *NotificationServiceTestSuite) TestSendDecision_CheckingContext() {
	app := completeApplication()
	s.mockCheckingRepo.On("FindApplicationByID", s.ctx, app.ApplicationID).Return(app, nil).Once()
	s.mockSink.On("Deliver", s.ctx, mock.AnythingOfType("domain.Notification")).Return("SENT", nil).Once()
	s.mockRepo.On("SaveNotification", s.ctx, mock.AnythingOfType("domain.Notification")).Return(nil).Once()

	result, err := s.service.SendDecision(s.ctx, domain.ContextCheckingApplication, app.ApplicationID, domain.ChannelEmail, domain.DecisionApproved, []string{"BASELINE"}, "workflow-orchestrator")

	s.Require().NoError(err)
	s.Equal(domain.ContextCheckingApplication, result.ContextType)
	s.Equal(app.ApplicationID, result.ContextID)
	s.Equal("SENT", result.DeliveryStatus)
	s.Equal([]string{"BASELINE"}, result.ReasonCodes)
	s.Equal("workflow-orchestrator", result.RequestedBy)
	s.mockRepo.AssertExpectations(s.T())
}

func (s *NotificationServiceTestSuite) TestSendDecision_LendingContext() {
	app := lendingApplication()
	s.mockLendingRepo.On("FindApplicationByID", s.ctx, app.ApplicationID).Return(app, nil).Once()
	s.mockSink.On("Deliver", s.ctx, mock.AnythingOfType("domain.Notification")).Return("QUEUED", nil).Once()
	s.mockRepo.On("SaveNotification", s.ctx, mock.AnythingOfType("domain.Notification")).Return(nil).Once()

	result, err := s.service.SendDecision(s.ctx, domain.ContextLendingApplication, app.ApplicationID, domain.ChannelSMS, domain.DecisionRejected, []string{"LOW_BUREAU_SCORE"}, "workflow-orchestrator")

	s.Require().NoError(err)
	s.Equal("QUEUED", result.DeliveryStatus)
	s.Equal(domain.DecisionRejected, result.Decision)
	s.mockCheckingRepo.AssertNotCalled(s.T(), "FindApplicationByID", mock.Anything, mock.Anything)
}

func (s *NotificationServiceTestSuite) TestSendDecision_ApplicationNotFound() {
	s.mockCheckingRepo.On("FindApplicationByID", s.ctx, "missing-id").Return(nil, apperrors.ErrNotFound).Once()

	result, err := s.service.SendDecision(s.ctx, domain.ContextCheckingApplication, "missing-id", domain.ChannelEmail, domain.DecisionApproved, nil, "")

	s.Require().Error(err)
	s.Nil(result)
	s.ErrorIs(err, apperrors.ErrNotFound)
	s.mockSink.AssertNotCalled(s.T(), "Deliver", mock.Anything, mock.Anything)
}

func (s *NotificationServiceTestSuite) TestSendDecision_UnknownContextType() {
	result, err := s.service.SendDecision(s.ctx, "LOYALTY_PROGRAM", "some-id", domain.ChannelEmail, domain.DecisionApproved, nil, "")

	s.Require().Error(err)
	s.Nil(result)
	s.ErrorIs(err, apperrors.ErrValidation)
}

func (s *NotificationServiceTestSuite) TestSendDecision_NilReasonCodesBecomeEmpty() {
	app := completeApplication()
	s.mockCheckingRepo.On("FindApplicationByID", s.ctx, app.ApplicationID).Return(app, nil).Once()
	s.mockSink.On("Deliver", s.ctx, mock.AnythingOfType("domain.Notification")).Return("SENT", nil).Once()
	s.mockRepo.On("SaveNotification", s.ctx, mock.MatchedBy(func(n domain.Notification) bool {
		return n.ReasonCodes != nil && len(n.ReasonCodes) == 0
	})).Return(nil).Once()

	result, err := s.service.SendDecision(s.ctx, domain.ContextCheckingApplication, app.ApplicationID, domain.ChannelApp, domain.DecisionApproved, nil, "")

	s.Require().NoError(err)
	s.NotNil(result.ReasonCodes)
	s.Empty(result.ReasonCodes)
	s.mockRepo.AssertExpectations(s.T())
}

func (s *NotificationServiceTestSuite) TestSendDecision_DeliveryFailureNotPersisted() {
	app := completeApplication()
	s.mockCheckingRepo.On("FindApplicationByID", s.ctx, app.ApplicationID).Return(app, nil).Once()
	s.mockSink.On("Deliver", s.ctx, mock.AnythingOfType("domain.Notification")).Return("", errors.New("broker unavailable")).Once()

	result, err := s.service.SendDecision(s.ctx, domain.ContextCheckingApplication, app.ApplicationID, domain.ChannelEmail, domain.DecisionApproved, nil, "")

	s.Require().Error(err)
	s.Nil(result)
	s.mockRepo.AssertNotCalled(s.T(), "SaveNotification", mock.Anything, mock.Anything)
}

func (s *NotificationServiceTestSuite) TestSendDecision_RecordsRequestingCaller() {
	app := completeApplication()
	s.mockCheckingRepo.On("FindApplicationByID", s.ctx, app.ApplicationID).Return(app, nil).Once()
	s.mockSink.On("Deliver", s.ctx, mock.AnythingOfType("domain.Notification")).Return("SENT", nil).Once()
	s.mockRepo.On("SaveNotification", s.ctx, mock.MatchedBy(func(n domain.Notification) bool {
		return n.RequestedBy == "ops-user-7"
	})).Return(nil).Once()

	result, err := s.service.SendDecision(s.ctx, domain.ContextCheckingApplication, app.ApplicationID, domain.ChannelEmail, domain.DecisionRejected, []string{"LOW_BUREAU_SCORE"}, "ops-user-7")

	s.Require().NoError(err)
	s.Equal("ops-user-7", result.RequestedBy)
	s.mockRepo.AssertExpectations(s.T())
}

func TestNotificationService(t *testing.T) {
	suite.Run(t, new(NotificationServiceTestSuite))
}
