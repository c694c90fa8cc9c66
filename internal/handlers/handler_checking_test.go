package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/smbanking/onboarding_backend/internal/apperrors"
	"github.com/smbanking/onboarding_backend/internal/core/domain"
	"github.com/smbanking/onboarding_backend/internal/dto"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Mock CheckingSvcFacade ---
type MockCheckingService struct {
	mock.Mock
}

func (m *MockCheckingService) GetApplicationByReference(ctx context.Context, reference string) (*domain.CheckingApplication, error) {
	args := m.Called(ctx, reference)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.CheckingApplication), args.Error(1)
}

func (m *MockCheckingService) EvaluateCompleteness(ctx context.Context, applicationID string) (*domain.CompletenessEvaluation, error) {
	args := m.Called(ctx, applicationID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.CompletenessEvaluation), args.Error(1)
}

func (m *MockCheckingService) EvaluateProductEligibility(ctx context.Context, applicationID string, productID string) (*domain.EligibilityEvaluation, error) {
	args := m.Called(ctx, applicationID, productID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.EligibilityEvaluation), args.Error(1)
}

func (m *MockCheckingService) EvaluateDocuments(ctx context.Context, applicationID string) (*domain.DocumentEvaluation, error) {
	args := m.Called(ctx, applicationID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.DocumentEvaluation), args.Error(1)
}

func (m *MockCheckingService) ScoreRisk(ctx context.Context, applicationID string) (*domain.RiskScore, error) {
	args := m.Called(ctx, applicationID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.RiskScore), args.Error(1)
}

func (m *MockCheckingService) OpenAccount(ctx context.Context, applicationID string) (*domain.CheckingAccount, error) {
	args := m.Called(ctx, applicationID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.CheckingAccount), args.Error(1)
}

// --- Mock VerificationSvcFacade ---
type MockVerificationService struct {
	mock.Mock
}

func (m *MockVerificationService) VerifyBusiness(ctx context.Context, applicationID string) (*domain.BusinessVerification, error) {
	args := m.Called(ctx, applicationID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.BusinessVerification), args.Error(1)
}

func (m *MockVerificationService) VerifyOwners(ctx context.Context, applicationID string) (*domain.OwnerVerificationSet, error) {
	args := m.Called(ctx, applicationID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.OwnerVerificationSet), args.Error(1)
}

// --- Mock NotificationSvcFacade ---
type MockNotificationService struct {
	mock.Mock
}

func (m *MockNotificationService) SendDecision(ctx context.Context, contextType domain.NotificationContextType, applicationID string, channel domain.NotificationChannel, decision domain.Decision, reasonCodes []string, requestedBy string) (*domain.Notification, error) {
	args := m.Called(ctx, contextType, applicationID, channel, decision, reasonCodes, requestedBy)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Notification), args.Error(1)
}

// --- Test Suite ---
type CheckingHandlerTestSuite struct {
	suite.Suite
	router              *gin.Engine
	mockCheckingSvc     *MockCheckingService
	mockVerificationSvc *MockVerificationService
	mockNotificationSvc *MockNotificationService
}

func (s *CheckingHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	dto.RegisterValidations()
	s.mockCheckingSvc = new(MockCheckingService)
	s.mockVerificationSvc = new(MockVerificationService)
	s.mockNotificationSvc = new(MockNotificationService)

	s.router = gin.New()
	rg := s.router.Group("/api/v1")
	registerCheckingRoutes(rg, s.mockCheckingSvc, s.mockVerificationSvc, s.mockNotificationSvc)
}

func (s *CheckingHandlerTestSuite) performRequest(method, path string, body []byte) *httptest.ResponseRecorder {
	req, err := http.NewRequest(method, path, bytes.NewBuffer(body))
	s.Require().NoError(err)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)
	return w
}

func (s *CheckingHandlerTestSuite) TestGetApplicationByReference_Success() {
	app := &domain.CheckingApplication{
		ApplicationID: "app-1",
		Reference:     "CHK-2025-0001",
		Status:        domain.StatusReceived,
	}
	s.mockCheckingSvc.On("GetApplicationByReference", mock.Anything, "CHK-2025-0001").Return(app, nil).Once()

	w := s.performRequest(http.MethodGet, "/api/v1/checking/applications/ref/CHK-2025-0001", nil)

	s.Equal(http.StatusOK, w.Code)
	var resp map[string]any
	s.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	s.Equal("CHK-2025-0001", resp["reference"])
}

func (s *CheckingHandlerTestSuite) TestGetApplicationByReference_NotFound() {
	s.mockCheckingSvc.On("GetApplicationByReference", mock.Anything, "CHK-0000-0000").
		Return(nil, apperrors.ErrNotFound).Once()

	w := s.performRequest(http.MethodGet, "/api/v1/checking/applications/ref/CHK-0000-0000", nil)

	s.Equal(http.StatusNotFound, w.Code)
}

func (s *CheckingHandlerTestSuite) TestEvaluateEligibility_InvalidBody() {
	w := s.performRequest(http.MethodPost, "/api/v1/checking/applications/app-1/evaluate/eligibility", []byte(`{}`))

	s.Equal(http.StatusBadRequest, w.Code)
	s.mockCheckingSvc.AssertNotCalled(s.T(), "EvaluateProductEligibility", mock.Anything, mock.Anything, mock.Anything)
}

func (s *CheckingHandlerTestSuite) TestEvaluateEligibility_Success() {
	result := &domain.EligibilityEvaluation{Eligible: true}
	s.mockCheckingSvc.On("EvaluateProductEligibility", mock.Anything, "app-1", "BASIC_CHECKING").Return(result, nil).Once()

	body := []byte(`{"productID": "BASIC_CHECKING"}`)
	w := s.performRequest(http.MethodPost, "/api/v1/checking/applications/app-1/evaluate/eligibility", body)

	s.Equal(http.StatusOK, w.Code)
	var resp map[string]any
	s.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	s.Equal(true, resp["eligible"])
}

func (s *CheckingHandlerTestSuite) TestScoreRisk_Created() {
	score := &domain.RiskScore{
		RiskScoreID:   "rs-1",
		ApplicationID: "app-1",
		Score:         20,
		Band:          domain.RiskBandLow,
		DriverCodes:   []string{domain.DriverBaseline},
	}
	s.mockCheckingSvc.On("ScoreRisk", mock.Anything, "app-1").Return(score, nil).Once()

	w := s.performRequest(http.MethodPost, "/api/v1/checking/applications/app-1/score", nil)

	s.Equal(http.StatusCreated, w.Code)
}

func (s *CheckingHandlerTestSuite) TestScoreRisk_AlreadyDecided() {
	s.mockCheckingSvc.On("ScoreRisk", mock.Anything, "app-1").
		Return(nil, fmt.Errorf("%w: application app-1 is already decided", apperrors.ErrValidation)).Once()

	w := s.performRequest(http.MethodPost, "/api/v1/checking/applications/app-1/score", nil)

	s.Equal(http.StatusBadRequest, w.Code)
}

func (s *CheckingHandlerTestSuite) TestOpenAccount_Created() {
	account := &domain.CheckingAccount{
		AccountID:     "acc-1",
		ApplicationID: "app-1",
		AccountNumber: "2000000001",
		RoutingNumber: "011000015",
		Status:        domain.AccountActive,
	}
	s.mockCheckingSvc.On("OpenAccount", mock.Anything, "app-1").Return(account, nil).Once()

	w := s.performRequest(http.MethodPost, "/api/v1/checking/applications/app-1/account", nil)

	s.Equal(http.StatusCreated, w.Code)
	var resp map[string]any
	s.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	s.Equal("011000015", resp["routingNumber"])
}

func (s *CheckingHandlerTestSuite) TestVerifyBusiness_Success() {
	result := &domain.BusinessVerification{
		Status:      domain.VerificationPassed,
		ReasonCodes: []string{},
	}
	s.mockVerificationSvc.On("VerifyBusiness", mock.Anything, "app-1").Return(result, nil).Once()

	w := s.performRequest(http.MethodPost, "/api/v1/checking/applications/app-1/verify/business", nil)

	s.Equal(http.StatusOK, w.Code)
}

func (s *CheckingHandlerTestSuite) TestSendNotification_Created() {
	notification := &domain.Notification{
		NotificationID: "ntf-1",
		ContextType:    domain.ContextCheckingApplication,
		ContextID:      "app-1",
		Channel:        domain.ChannelEmail,
		Decision:       domain.DecisionApproved,
		ReasonCodes:    []string{},
		DeliveryStatus: "SENT",
	}
	s.mockNotificationSvc.On("SendDecision", mock.Anything, domain.ContextCheckingApplication, "app-1", domain.ChannelEmail, domain.DecisionApproved, mock.Anything, mock.Anything).
		Return(notification, nil).Once()

	body := []byte(`{"channel": "EMAIL", "decision": "APPROVED"}`)
	w := s.performRequest(http.MethodPost, "/api/v1/checking/applications/app-1/notify", body)

	s.Equal(http.StatusCreated, w.Code)
}

func (s *CheckingHandlerTestSuite) TestSendNotification_RecordsAuthenticatedCaller() {
	notification := &domain.Notification{
		NotificationID: "ntf-2",
		ContextType:    domain.ContextCheckingApplication,
		ContextID:      "app-1",
		Channel:        domain.ChannelEmail,
		Decision:       domain.DecisionRejected,
		ReasonCodes:    []string{"LOW_BUREAU_SCORE"},
		DeliveryStatus: "SENT",
		RequestedBy:    "workflow-orchestrator-1",
	}
	s.mockNotificationSvc.On("SendDecision", mock.Anything, domain.ContextCheckingApplication, "app-1", domain.ChannelEmail, domain.DecisionRejected, mock.Anything, "workflow-orchestrator-1").
		Return(notification, nil).Once()

	router := gin.New()
	router.Use(func(c *gin.Context) {
		c.Set("callerID", "workflow-orchestrator-1")
		c.Next()
	})
	rg := router.Group("/api/v1")
	registerCheckingRoutes(rg, s.mockCheckingSvc, s.mockVerificationSvc, s.mockNotificationSvc)

	body := []byte(`{"channel": "EMAIL", "decision": "REJECTED", "reasonCodes": ["LOW_BUREAU_SCORE"]}`)
	req, err := http.NewRequest(http.MethodPost, "/api/v1/checking/applications/app-1/notify", bytes.NewBuffer(body))
	s.Require().NoError(err)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	s.Equal(http.StatusCreated, w.Code)
	s.mockNotificationSvc.AssertExpectations(s.T())
}

func (s *CheckingHandlerTestSuite) TestSendNotification_InvalidChannel() {
	body := []byte(`{"channel": "PIGEON", "decision": "APPROVED"}`)
	w := s.performRequest(http.MethodPost, "/api/v1/checking/applications/app-1/notify", body)

	s.Equal(http.StatusBadRequest, w.Code)
	s.mockNotificationSvc.AssertNotCalled(s.T(), "SendDecision", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestCheckingHandler(t *testing.T) {
	suite.Run(t, new(CheckingHandlerTestSuite))
}
