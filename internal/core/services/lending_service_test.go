package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/smbanking/onboarding_backend/internal/apperrors"
	"github.com/smbanking/onboarding_backend/internal/core/domain"
	portsrepo "github.com/smbanking/onboarding_backend/internal/core/ports/repositories"
	portssvc "github.com/smbanking/onboarding_backend/internal/core/ports/services"
	"github.com/smbanking/onboarding_backend/internal/core/services"
	"github.com/smbanking/onboarding_backend/internal/providers/bureau"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Mock LendingRepository ---
type MockLendingRepository struct {
	mock.Mock
}

var _ portsrepo.LendingRepositoryFacade = (*MockLendingRepository)(nil)

func (m *MockLendingRepository) FindApplicationByID(ctx context.Context, applicationID string) (*domain.LendingApplication, error) {
	args := m.Called(ctx, applicationID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.LendingApplication), args.Error(1)
}

func (m *MockLendingRepository) FindApplicationByReference(ctx context.Context, reference string) (*domain.LendingApplication, error) {
	args := m.Called(ctx, reference)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.LendingApplication), args.Error(1)
}

func (m *MockLendingRepository) UpdateApplicationStatus(ctx context.Context, applicationID string, from, to domain.ApplicationStatus) error {
	args := m.Called(ctx, applicationID, from, to)
	return args.Error(0)
}

func (m *MockLendingRepository) DeleteApplication(ctx context.Context, applicationID string) error {
	args := m.Called(ctx, applicationID)
	return args.Error(0)
}

func (m *MockLendingRepository) FindLatestTransactionSummary(ctx context.Context, applicationID string) (*domain.TransactionSummary, error) {
	args := m.Called(ctx, applicationID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.TransactionSummary), args.Error(1)
}

func (m *MockLendingRepository) FindLatestCreditReport(ctx context.Context, applicationID string) (*domain.CreditReport, error) {
	args := m.Called(ctx, applicationID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.CreditReport), args.Error(1)
}

func (m *MockLendingRepository) FindLatestCreditReportByBureau(ctx context.Context, applicationID string, bureau string) (*domain.CreditReport, error) {
	args := m.Called(ctx, applicationID, bureau)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.CreditReport), args.Error(1)
}

func (m *MockLendingRepository) SaveCreditReport(ctx context.Context, report domain.CreditReport) error {
	args := m.Called(ctx, report)
	return args.Error(0)
}

func (m *MockLendingRepository) SaveUnderwriting(ctx context.Context, uw domain.Underwriting) error {
	args := m.Called(ctx, uw)
	return args.Error(0)
}

func (m *MockLendingRepository) FindLatestUnderwriting(ctx context.Context, applicationID string) (*domain.Underwriting, error) {
	args := m.Called(ctx, applicationID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Underwriting), args.Error(1)
}

func (m *MockLendingRepository) SaveOffer(ctx context.Context, offer domain.Offer) error {
	args := m.Called(ctx, offer)
	return args.Error(0)
}

func (m *MockLendingRepository) FindOfferByID(ctx context.Context, applicationID string, offerID string) (*domain.Offer, error) {
	args := m.Called(ctx, applicationID, offerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Offer), args.Error(1)
}

func (m *MockLendingRepository) FindLatestOffer(ctx context.Context, applicationID string) (*domain.Offer, error) {
	args := m.Called(ctx, applicationID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Offer), args.Error(1)
}

func (m *MockLendingRepository) MarkOfferSelected(ctx context.Context, applicationID string, offerID string, selectedAt time.Time) error {
	args := m.Called(ctx, applicationID, offerID, selectedAt)
	return args.Error(0)
}

func (m *MockLendingRepository) FindFacilityByApplicationID(ctx context.Context, applicationID string) (*domain.CreditFacility, error) {
	args := m.Called(ctx, applicationID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.CreditFacility), args.Error(1)
}

func (m *MockLendingRepository) CreateFacilityIfAbsent(ctx context.Context, facility domain.CreditFacility) (*domain.CreditFacility, error) {
	args := m.Called(ctx, facility)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.CreditFacility), args.Error(1)
}

// --- Test Suite ---
type LendingServiceTestSuite struct {
	suite.Suite
	mockRepo *MockLendingRepository
	service  portssvc.LendingSvcFacade
	ctx      context.Context
}

func (s *LendingServiceTestSuite) SetupTest() {
	s.mockRepo = new(MockLendingRepository)
	s.service = services.NewLendingService(s.mockRepo, bureau.NewProvider(), nil)
	s.ctx = context.Background()
}

func lendingApplication() *domain.LendingApplication {
	amount := decimal.NewFromInt(40000)
	years := 4
	return &domain.LendingApplication{
		ApplicationID:     uuid.NewString(),
		Reference:         "LND-2025-0001",
		CustomerID:        uuid.NewString(),
		BusinessID:        uuid.NewString(),
		CheckingAccountID: uuid.NewString(),
		ProductType:       "REVOLVING_LOC",
		RequestedAmount:   &amount,
		Status:            domain.StatusReceived,
		Business: domain.Business{
			LegalName:       "Blue Harbor Coffee LLC",
			IndustryCode:    "5812",
			YearsInBusiness: &years,
		},
	}
}

func (s *LendingServiceTestSuite) TestGetTransactionSummary_EmptyWhenNoneStored() {
	app := lendingApplication()
	s.mockRepo.On("FindApplicationByID", s.ctx, app.ApplicationID).Return(app, nil).Once()
	s.mockRepo.On("FindLatestTransactionSummary", s.ctx, app.ApplicationID).Return(nil, apperrors.ErrNotFound).Once()

	result, err := s.service.GetTransactionSummary(s.ctx, app.ApplicationID, 12)

	s.Require().NoError(err)
	s.Equal(app.ApplicationID, result.ApplicationID)
	s.Equal(app.CheckingAccountID, result.CheckingAccountID)
	s.Equal(12, result.LookbackMonths)
	s.Nil(result.AvgMonthlyRevenue)
}

func (s *LendingServiceTestSuite) TestGetLatestCreditReport_NilWhenNonePulled() {
	app := lendingApplication()
	s.mockRepo.On("FindApplicationByID", s.ctx, app.ApplicationID).Return(app, nil).Once()
	s.mockRepo.On("FindLatestCreditReport", s.ctx, app.ApplicationID).Return(nil, apperrors.ErrNotFound).Once()

	result, err := s.service.GetLatestCreditReport(s.ctx, app.ApplicationID)

	s.Require().NoError(err)
	s.Nil(result)
}

func (s *LendingServiceTestSuite) TestGetLatestCreditReport_ReturnsStoredReport() {
	app := lendingApplication()
	score := 68
	stored := &domain.CreditReport{
		ReportID:      uuid.NewString(),
		ApplicationID: app.ApplicationID,
		Bureau:        "EXPERIAN",
		Score:         &score,
	}
	s.mockRepo.On("FindApplicationByID", s.ctx, app.ApplicationID).Return(app, nil).Once()
	s.mockRepo.On("FindLatestCreditReport", s.ctx, app.ApplicationID).Return(stored, nil).Once()

	result, err := s.service.GetLatestCreditReport(s.ctx, app.ApplicationID)

	s.Require().NoError(err)
	s.Equal(stored.ReportID, result.ReportID)
}

func (s *LendingServiceTestSuite) TestGetLatestCreditReport_UnknownApplication() {
	s.mockRepo.On("FindApplicationByID", s.ctx, "missing-id").Return(nil, apperrors.ErrNotFound).Once()

	result, err := s.service.GetLatestCreditReport(s.ctx, "missing-id")

	s.Require().Error(err)
	s.Nil(result)
	s.ErrorIs(err, apperrors.ErrNotFound)
}

func (s *LendingServiceTestSuite) TestPullCreditReport_ReusesStoredReport() {
	app := lendingApplication()
	score := 72
	stored := &domain.CreditReport{
		ReportID:      uuid.NewString(),
		ApplicationID: app.ApplicationID,
		Bureau:        "EXPERIAN",
		Score:         &score,
	}
	s.mockRepo.On("FindApplicationByID", s.ctx, app.ApplicationID).Return(app, nil).Once()
	s.mockRepo.On("FindLatestCreditReportByBureau", s.ctx, app.ApplicationID, "EXPERIAN").Return(stored, nil).Once()

	result, err := s.service.PullCreditReport(s.ctx, app.ApplicationID, "EXPERIAN")

	s.Require().NoError(err)
	s.Equal(stored.ReportID, result.ReportID)
	s.mockRepo.AssertNotCalled(s.T(), "SaveCreditReport", mock.Anything, mock.Anything)
}

func (s *LendingServiceTestSuite) TestPullCreditReport_PullsAndPersists() {
	app := lendingApplication()
	s.mockRepo.On("FindApplicationByID", s.ctx, app.ApplicationID).Return(app, nil).Once()
	s.mockRepo.On("FindLatestCreditReportByBureau", s.ctx, app.ApplicationID, "EQUIFAX").Return(nil, apperrors.ErrNotFound).Once()
	s.mockRepo.On("SaveCreditReport", s.ctx, mock.AnythingOfType("domain.CreditReport")).Return(nil).Once()

	result, err := s.service.PullCreditReport(s.ctx, app.ApplicationID, "EQUIFAX")

	s.Require().NoError(err)
	s.Equal("EQUIFAX", result.Bureau)
	s.Require().NotNil(result.Score)
	s.Equal(80, *result.Score)
	s.Equal("GOOD", result.ScoreBand)
	s.mockRepo.AssertExpectations(s.T())
}

func (s *LendingServiceTestSuite) TestEvaluatePolicy_NewBusinessOverLimit() {
	app := lendingApplication()
	years := 0
	app.Business.YearsInBusiness = &years
	amount := decimal.NewFromInt(75000)
	app.RequestedAmount = &amount
	s.mockRepo.On("FindApplicationByID", s.ctx, app.ApplicationID).Return(app, nil).Once()
	s.mockRepo.On("FindLatestCreditReport", s.ctx, app.ApplicationID).Return(nil, apperrors.ErrNotFound).Once()

	result, err := s.service.EvaluatePolicy(s.ctx, app.ApplicationID)

	s.Require().NoError(err)
	s.False(result.Eligible)
	s.Equal([]string{domain.CodeInsufficientTenure}, result.ReasonCodes)
}

func (s *LendingServiceTestSuite) TestEvaluatePolicy_LowBureauScore() {
	app := lendingApplication()
	score := 42
	s.mockRepo.On("FindApplicationByID", s.ctx, app.ApplicationID).Return(app, nil).Once()
	s.mockRepo.On("FindLatestCreditReport", s.ctx, app.ApplicationID).Return(&domain.CreditReport{Score: &score}, nil).Once()

	result, err := s.service.EvaluatePolicy(s.ctx, app.ApplicationID)

	s.Require().NoError(err)
	s.False(result.Eligible)
	s.Equal([]string{domain.CodeLowBureauScore}, result.ReasonCodes)
}

func (s *LendingServiceTestSuite) TestEvaluatePolicy_EligibleWithoutReport() {
	app := lendingApplication()
	s.mockRepo.On("FindApplicationByID", s.ctx, app.ApplicationID).Return(app, nil).Once()
	s.mockRepo.On("FindLatestCreditReport", s.ctx, app.ApplicationID).Return(nil, apperrors.ErrNotFound).Once()

	result, err := s.service.EvaluatePolicy(s.ctx, app.ApplicationID)

	s.Require().NoError(err)
	s.True(result.Eligible)
	s.Empty(result.ReasonCodes)
}

func (s *LendingServiceTestSuite) TestRunUnderwriting_DefaultsWhenInputsMissing() {
	app := lendingApplication()
	s.mockRepo.On("FindApplicationByID", s.ctx, app.ApplicationID).Return(app, nil).Once()
	s.mockRepo.On("FindLatestTransactionSummary", s.ctx, app.ApplicationID).Return(nil, apperrors.ErrNotFound).Once()
	s.mockRepo.On("FindLatestCreditReport", s.ctx, app.ApplicationID).Return(nil, apperrors.ErrNotFound).Once()
	s.mockRepo.On("SaveUnderwriting", s.ctx, mock.AnythingOfType("domain.Underwriting")).Return(nil).Once()
	s.mockRepo.On("UpdateApplicationStatus", s.ctx, app.ApplicationID, domain.StatusReceived, domain.StatusInReview).Return(nil).Once()

	result, err := s.service.RunUnderwriting(s.ctx, app.ApplicationID)

	s.Require().NoError(err)
	s.Equal("B", result.RiskGrade)
	s.True(result.PDEstimate.Equal(decimal.NewFromFloat(0.04)))
	s.True(result.LGDEstimate.Equal(decimal.NewFromFloat(0.45)))
	s.True(result.RecommendedMaxExposure.Equal(decimal.NewFromInt(50000)))
	s.Equal("MEDIUM", result.AffordabilityBand)
	s.Equal([]string{domain.DriverBaseline}, result.KeyRiskDrivers)
}

func (s *LendingServiceTestSuite) TestRunUnderwriting_GradeAFromRevenueAndScore() {
	app := lendingApplication()
	revenue := decimal.NewFromInt(30000)
	score := 85
	s.mockRepo.On("FindApplicationByID", s.ctx, app.ApplicationID).Return(app, nil).Once()
	s.mockRepo.On("FindLatestTransactionSummary", s.ctx, app.ApplicationID).Return(&domain.TransactionSummary{AvgMonthlyRevenue: &revenue}, nil).Once()
	s.mockRepo.On("FindLatestCreditReport", s.ctx, app.ApplicationID).Return(&domain.CreditReport{Score: &score}, nil).Once()
	s.mockRepo.On("SaveUnderwriting", s.ctx, mock.AnythingOfType("domain.Underwriting")).Return(nil).Once()
	s.mockRepo.On("UpdateApplicationStatus", s.ctx, app.ApplicationID, domain.StatusReceived, domain.StatusInReview).Return(nil).Once()

	result, err := s.service.RunUnderwriting(s.ctx, app.ApplicationID)

	s.Require().NoError(err)
	s.Equal("A", result.RiskGrade)
	s.True(result.PDEstimate.Equal(decimal.NewFromFloat(0.02)))
	s.True(result.RecommendedMaxExposure.Equal(decimal.NewFromInt(60000)))
	s.Equal([]string{domain.DriverGoodBureauScore}, result.KeyRiskDrivers)
}

func (s *LendingServiceTestSuite) TestRunUnderwriting_GradeCWithNewBusinessDriver() {
	app := lendingApplication()
	years := 0
	app.Business.YearsInBusiness = &years
	score := 55
	s.mockRepo.On("FindApplicationByID", s.ctx, app.ApplicationID).Return(app, nil).Once()
	s.mockRepo.On("FindLatestTransactionSummary", s.ctx, app.ApplicationID).Return(nil, apperrors.ErrNotFound).Once()
	s.mockRepo.On("FindLatestCreditReport", s.ctx, app.ApplicationID).Return(&domain.CreditReport{Score: &score}, nil).Once()
	s.mockRepo.On("SaveUnderwriting", s.ctx, mock.AnythingOfType("domain.Underwriting")).Return(nil).Once()
	s.mockRepo.On("UpdateApplicationStatus", s.ctx, app.ApplicationID, domain.StatusReceived, domain.StatusInReview).Return(nil).Once()

	result, err := s.service.RunUnderwriting(s.ctx, app.ApplicationID)

	s.Require().NoError(err)
	s.Equal("C", result.RiskGrade)
	s.True(result.PDEstimate.Equal(decimal.NewFromFloat(0.08)))
	s.Equal([]string{domain.DriverLowBureauScore, domain.DriverShortOperatingHistory}, result.KeyRiskDrivers)
}

func (s *LendingServiceTestSuite) TestRunUnderwriting_RejectsDecidedApplication() {
	app := lendingApplication()
	app.Status = domain.StatusDecided
	s.mockRepo.On("FindApplicationByID", s.ctx, app.ApplicationID).Return(app, nil).Once()

	result, err := s.service.RunUnderwriting(s.ctx, app.ApplicationID)

	s.Require().Error(err)
	s.Nil(result)
	s.ErrorIs(err, apperrors.ErrValidation)
	s.mockRepo.AssertNotCalled(s.T(), "SaveUnderwriting", mock.Anything, mock.Anything)
}

func (s *LendingServiceTestSuite) TestGenerateOffers_RequiresUnderwriting() {
	app := lendingApplication()
	app.Status = domain.StatusInReview
	s.mockRepo.On("FindApplicationByID", s.ctx, app.ApplicationID).Return(app, nil).Once()
	s.mockRepo.On("FindLatestUnderwriting", s.ctx, app.ApplicationID).Return(nil, apperrors.ErrNotFound).Once()

	result, err := s.service.GenerateOffers(s.ctx, app.ApplicationID)

	s.Require().Error(err)
	s.Nil(result)
	s.ErrorIs(err, apperrors.ErrPrerequisiteMissing)
	s.mockRepo.AssertNotCalled(s.T(), "SaveOffer", mock.Anything, mock.Anything)
}

func (s *LendingServiceTestSuite) TestGenerateOffers_DerivesTermsFromExposure() {
	app := lendingApplication()
	app.Status = domain.StatusInReview
	uw := &domain.Underwriting{
		UnderwritingID:         uuid.NewString(),
		ApplicationID:          app.ApplicationID,
		RecommendedMaxExposure: decimal.NewFromInt(60000),
	}
	s.mockRepo.On("FindApplicationByID", s.ctx, app.ApplicationID).Return(app, nil).Once()
	s.mockRepo.On("FindLatestUnderwriting", s.ctx, app.ApplicationID).Return(uw, nil).Once()
	s.mockRepo.On("SaveOffer", s.ctx, mock.AnythingOfType("domain.Offer")).Return(nil).Once()

	result, err := s.service.GenerateOffers(s.ctx, app.ApplicationID)

	s.Require().NoError(err)
	s.Require().Len(result, 1)
	offer := result[0]
	s.True(offer.CreditLimit.Equal(decimal.NewFromInt(48000)))
	s.Require().NotNil(offer.MinCreditLimit)
	s.True(offer.MinCreditLimit.Equal(decimal.NewFromInt(24000)))
	s.Require().NotNil(offer.MaxCreditLimit)
	s.True(offer.MaxCreditLimit.Equal(decimal.NewFromInt(60000)))
	s.Equal("OFFER-LOC-48000", offer.OfferCode)
	s.Equal("REVOLVING_LOC", offer.ProductType)
	s.Require().NotNil(offer.APR)
	s.True(offer.APR.Equal(decimal.NewFromFloat(0.14)))
	s.False(offer.Selected)
}

func (s *LendingServiceTestSuite) TestSelectOffer_NotFoundForApplication() {
	app := lendingApplication()
	offerID := uuid.NewString()
	s.mockRepo.On("FindApplicationByID", s.ctx, app.ApplicationID).Return(app, nil).Once()
	s.mockRepo.On("FindOfferByID", s.ctx, app.ApplicationID, offerID).Return(nil, apperrors.ErrNotFound).Once()

	result, err := s.service.SelectOffer(s.ctx, app.ApplicationID, offerID)

	s.Require().Error(err)
	s.Nil(result)
	s.ErrorIs(err, apperrors.ErrNotFound)
}

func (s *LendingServiceTestSuite) TestSelectOffer_PersistsSelection() {
	app := lendingApplication()
	offer := &domain.Offer{
		OfferID:       uuid.NewString(),
		ApplicationID: app.ApplicationID,
		OfferCode:     "OFFER-LOC-48000",
		CreditLimit:   decimal.NewFromInt(48000),
	}
	s.mockRepo.On("FindApplicationByID", s.ctx, app.ApplicationID).Return(app, nil).Once()
	s.mockRepo.On("FindOfferByID", s.ctx, app.ApplicationID, offer.OfferID).Return(offer, nil).Once()
	s.mockRepo.On("MarkOfferSelected", s.ctx, app.ApplicationID, offer.OfferID, mock.AnythingOfType("time.Time")).Return(nil).Once()

	result, err := s.service.SelectOffer(s.ctx, app.ApplicationID, offer.OfferID)

	s.Require().NoError(err)
	s.True(result.Selected)
	s.NotNil(result.SelectedAt)
	s.mockRepo.AssertExpectations(s.T())
}

func (s *LendingServiceTestSuite) TestOpenFacility_RequiresOffer() {
	app := lendingApplication()
	app.Status = domain.StatusInReview
	s.mockRepo.On("FindApplicationByID", s.ctx, app.ApplicationID).Return(app, nil).Once()
	s.mockRepo.On("FindFacilityByApplicationID", s.ctx, app.ApplicationID).Return(nil, apperrors.ErrNotFound).Once()
	s.mockRepo.On("FindLatestOffer", s.ctx, app.ApplicationID).Return(nil, apperrors.ErrNotFound).Once()

	result, err := s.service.OpenFacility(s.ctx, app.ApplicationID)

	s.Require().Error(err)
	s.Nil(result)
	s.ErrorIs(err, apperrors.ErrPrerequisiteMissing)
}

func (s *LendingServiceTestSuite) TestOpenFacility_CopiesOfferTerms() {
	app := lendingApplication()
	app.Status = domain.StatusInReview
	apr := decimal.NewFromFloat(0.14)
	offer := &domain.Offer{
		OfferID:       uuid.NewString(),
		ApplicationID: app.ApplicationID,
		ProductType:   "REVOLVING_LOC",
		CreditLimit:   decimal.NewFromInt(48000),
		APR:           &apr,
	}
	s.mockRepo.On("FindApplicationByID", s.ctx, app.ApplicationID).Return(app, nil).Once()
	s.mockRepo.On("FindFacilityByApplicationID", s.ctx, app.ApplicationID).Return(nil, apperrors.ErrNotFound).Once()
	s.mockRepo.On("FindLatestOffer", s.ctx, app.ApplicationID).Return(offer, nil).Once()
	s.mockRepo.On("CreateFacilityIfAbsent", s.ctx, mock.AnythingOfType("domain.CreditFacility")).
		Return(&domain.CreditFacility{
			FacilityID:    uuid.NewString(),
			ApplicationID: app.ApplicationID,
			FacilityType:  offer.ProductType,
			CreditLimit:   offer.CreditLimit,
			APR:           offer.APR,
			Status:        domain.AccountActive,
			DrawdownTerms: "REVOLVING_NET_30",
		}, nil).Once()
	s.mockRepo.On("UpdateApplicationStatus", s.ctx, app.ApplicationID, domain.StatusInReview, domain.StatusDecided).Return(nil).Once()

	result, err := s.service.OpenFacility(s.ctx, app.ApplicationID)

	s.Require().NoError(err)
	s.Equal("REVOLVING_LOC", result.FacilityType)
	s.True(result.CreditLimit.Equal(decimal.NewFromInt(48000)))
	s.Equal("REVOLVING_NET_30", result.DrawdownTerms)
	s.mockRepo.AssertExpectations(s.T())
}

func (s *LendingServiceTestSuite) TestOpenFacility_IdempotentOnSecondCall() {
	app := lendingApplication()
	app.Status = domain.StatusDecided
	existing := &domain.CreditFacility{
		FacilityID:    uuid.NewString(),
		ApplicationID: app.ApplicationID,
		Status:        domain.AccountActive,
	}
	s.mockRepo.On("FindApplicationByID", s.ctx, app.ApplicationID).Return(app, nil).Once()
	s.mockRepo.On("FindFacilityByApplicationID", s.ctx, app.ApplicationID).Return(existing, nil).Once()

	result, err := s.service.OpenFacility(s.ctx, app.ApplicationID)

	s.Require().NoError(err)
	s.Equal(existing.FacilityID, result.FacilityID)
	s.mockRepo.AssertNotCalled(s.T(), "CreateFacilityIfAbsent", mock.Anything, mock.Anything)
}

func TestLendingService(t *testing.T) {
	suite.Run(t, new(LendingServiceTestSuite))
}
