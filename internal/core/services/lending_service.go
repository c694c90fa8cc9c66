package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/smbanking/onboarding_backend/internal/apperrors"
	"github.com/smbanking/onboarding_backend/internal/core/domain"
	portsproviders "github.com/smbanking/onboarding_backend/internal/core/ports/providers"
	portsrepo "github.com/smbanking/onboarding_backend/internal/core/ports/repositories"
	portssvc "github.com/smbanking/onboarding_backend/internal/core/ports/services"
	"github.com/smbanking/onboarding_backend/internal/middleware"
	"github.com/smbanking/onboarding_backend/internal/platform/metrics"
)

// Lending policy thresholds.
var (
	// maxAmountForNewBusiness is the requested amount above which a business
	// with under a year of operation is declined.
	maxAmountForNewBusiness = decimal.NewFromInt(50000)

	// minBureauScore is the bureau score below which policy declines.
	minBureauScore = 50
)

// Underwriting model constants. DSCR and debt-to-revenue are placeholder
// constants, not computed from data.
var (
	defaultBureauScore       = 75
	defaultLGDEstimate       = decimal.NewFromFloat(0.45)
	fallbackMaxExposure      = decimal.NewFromInt(50000)
	defaultAffordabilityBand = "MEDIUM"
	placeholderDSCR          = decimal.NewFromFloat(1.8)
	placeholderDebtToRevenue = decimal.NewFromFloat(0.25)
)

// Offer terms for the generated revolving line.
var (
	offerLimitShare     = decimal.NewFromFloat(0.8)
	offerMinLimitShare  = decimal.NewFromFloat(0.5)
	offerAPR            = decimal.NewFromFloat(0.14)
	offerAnnualFee      = decimal.Zero
	offerOriginationFee = decimal.NewFromFloat(0.01)
	offerNotes          = "Based on your revenue and bureau data."
)

// Facility terms applied at opening.
const (
	facilityBillingCycleDay = 15
	facilityDrawdownTerms   = "REVOLVING_NET_30"
)

type lendingService struct {
	repo    portsrepo.LendingRepositoryFacade
	bureau  portsproviders.BureauProvider
	metrics *metrics.Metrics
}

// NewLendingService creates the lending workflow service.
func NewLendingService(repo portsrepo.LendingRepositoryFacade, bureau portsproviders.BureauProvider, m *metrics.Metrics) portssvc.LendingSvcFacade {
	return &lendingService{repo: repo, bureau: bureau, metrics: m}
}

var _ portssvc.LendingSvcFacade = (*lendingService)(nil)

func (s *lendingService) GetApplicationByReference(ctx context.Context, reference string) (*domain.LendingApplication, error) {
	logger := middleware.GetLoggerFromCtx(ctx)
	app, err := s.repo.FindApplicationByReference(ctx, reference)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			logger.Error("Failed to find lending application by reference", slog.String("error", err.Error()), slog.String("reference", reference))
		}
		return nil, err
	}
	return app, nil
}

// GetTransactionSummary returns the latest stored summary; when none exists an
// empty summary carrying the checking account id is returned. The lookback
// window is advisory in the current design.
func (s *lendingService) GetTransactionSummary(ctx context.Context, applicationID string, lookbackMonths int) (*domain.TransactionSummary, error) {
	app, err := s.repo.FindApplicationByID(ctx, applicationID)
	if err != nil {
		return nil, err
	}

	summary, err := s.repo.FindLatestTransactionSummary(ctx, applicationID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return &domain.TransactionSummary{
				ApplicationID:     app.ApplicationID,
				CheckingAccountID: app.CheckingAccountID,
				LookbackMonths:    lookbackMonths,
			}, nil
		}
		return nil, err
	}
	return summary, nil
}

// GetLatestCreditReport returns the newest report across bureaus, or nil when
// none has been pulled yet. A missing report is not an error.
func (s *lendingService) GetLatestCreditReport(ctx context.Context, applicationID string) (*domain.CreditReport, error) {
	if _, err := s.repo.FindApplicationByID(ctx, applicationID); err != nil {
		return nil, err
	}

	report, err := s.repo.FindLatestCreditReport(ctx, applicationID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return report, nil
}

// PullCreditReport reuses the newest stored report for the bureau; otherwise
// it obtains one from the bureau provider and persists it.
func (s *lendingService) PullCreditReport(ctx context.Context, applicationID string, bureau string) (*domain.CreditReport, error) {
	logger := middleware.GetLoggerFromCtx(ctx)
	app, err := s.repo.FindApplicationByID(ctx, applicationID)
	if err != nil {
		return nil, err
	}

	existing, err := s.repo.FindLatestCreditReportByBureau(ctx, applicationID, bureau)
	if err == nil {
		return existing, nil
	}
	if !errors.Is(err, apperrors.ErrNotFound) {
		return nil, err
	}

	report, err := s.bureau.PullReport(ctx, *app, bureau)
	if err != nil {
		// Bureau failures propagate as-is; callers own retry policy.
		logger.Error("Bureau pull failed", slog.String("error", err.Error()), slog.String("bureau", bureau), slog.String("application_id", applicationID))
		return nil, err
	}
	if err := s.repo.SaveCreditReport(ctx, report); err != nil {
		logger.Error("Failed to save credit report", slog.String("error", err.Error()), slog.String("application_id", applicationID))
		return nil, err
	}

	logger.Info("Credit report pulled", slog.String("application_id", applicationID), slog.String("bureau", bureau))
	return &report, nil
}

// EvaluatePolicy applies the lending policy eligibility rules. Read-only.
func (s *lendingService) EvaluatePolicy(ctx context.Context, applicationID string) (*domain.EligibilityEvaluation, error) {
	app, err := s.repo.FindApplicationByID(ctx, applicationID)
	if err != nil {
		return nil, err
	}

	var reasonCodes []string

	requested := decimal.Zero
	if app.RequestedAmount != nil {
		requested = *app.RequestedAmount
	}
	if app.Business.IsNewBusiness() && requested.GreaterThan(maxAmountForNewBusiness) {
		reasonCodes = append(reasonCodes, domain.CodeInsufficientTenure)
	}

	report, err := s.repo.FindLatestCreditReport(ctx, applicationID)
	if err != nil && !errors.Is(err, apperrors.ErrNotFound) {
		return nil, err
	}
	if report != nil && report.Score != nil && *report.Score < minBureauScore {
		reasonCodes = append(reasonCodes, domain.CodeLowBureauScore)
	}

	result := &domain.EligibilityEvaluation{
		Eligible:    len(reasonCodes) == 0,
		ReasonCodes: reasonCodes,
	}
	s.metrics.IncrementStepOutcome("lending", "policy_eligibility", outcomeLabel(result.Eligible))
	return result, nil
}

// RunUnderwriting computes grade, estimates and recommended exposure from the
// latest transaction summary and credit report, and appends an Underwriting
// row. Every invocation appends.
func (s *lendingService) RunUnderwriting(ctx context.Context, applicationID string) (*domain.Underwriting, error) {
	logger := middleware.GetLoggerFromCtx(ctx)
	app, err := s.repo.FindApplicationByID(ctx, applicationID)
	if err != nil {
		return nil, err
	}
	if app.Status.IsDecided() {
		return nil, fmt.Errorf("%w: application %s is already decided", apperrors.ErrValidation, applicationID)
	}

	avgRevenue := decimal.Zero
	summary, err := s.repo.FindLatestTransactionSummary(ctx, applicationID)
	if err != nil && !errors.Is(err, apperrors.ErrNotFound) {
		return nil, err
	}
	if summary != nil && summary.AvgMonthlyRevenue != nil {
		avgRevenue = *summary.AvgMonthlyRevenue
	}

	score := defaultBureauScore
	report, err := s.repo.FindLatestCreditReport(ctx, applicationID)
	if err != nil && !errors.Is(err, apperrors.ErrNotFound) {
		return nil, err
	}
	if report != nil && report.Score != nil {
		score = *report.Score
	}

	grade := "B"
	pdEstimate := decimal.NewFromFloat(0.04)
	var drivers []string

	switch {
	case score >= 80:
		grade = "A"
		pdEstimate = decimal.NewFromFloat(0.02)
		drivers = append(drivers, domain.DriverGoodBureauScore)
	case score < 60:
		grade = "C"
		pdEstimate = decimal.NewFromFloat(0.08)
		drivers = append(drivers, domain.DriverLowBureauScore)
	}

	if app.Business.IsNewBusiness() {
		drivers = append(drivers, domain.DriverShortOperatingHistory)
	}
	if len(drivers) == 0 {
		drivers = []string{domain.DriverBaseline}
	}

	maxExposure := fallbackMaxExposure
	if avgRevenue.IsPositive() {
		maxExposure = avgRevenue.Mul(decimal.NewFromInt(2))
	}

	uw := domain.Underwriting{
		UnderwritingID:         uuid.NewString(),
		ApplicationID:          app.ApplicationID,
		RiskGrade:              grade,
		PDEstimate:             pdEstimate,
		LGDEstimate:            defaultLGDEstimate,
		RecommendedMaxExposure: maxExposure,
		AffordabilityBand:      defaultAffordabilityBand,
		KeyRiskDrivers:         drivers,
		DSCR:                   placeholderDSCR,
		DebtToRevenueRatio:     placeholderDebtToRevenue,
		CreatedAt:              time.Now().UTC(),
	}
	if err := s.repo.SaveUnderwriting(ctx, uw); err != nil {
		logger.Error("Failed to save underwriting result", slog.String("error", err.Error()), slog.String("application_id", applicationID))
		return nil, err
	}

	if err := s.advanceToInReview(ctx, app); err != nil {
		return nil, err
	}

	logger.Info("Underwriting recorded", slog.String("application_id", applicationID), slog.String("risk_grade", grade))
	s.metrics.IncrementStepOutcome("lending", "underwriting", strings.ToLower(grade))
	return &uw, nil
}

// GenerateOffers derives one revolving-line offer from the latest
// underwriting result and appends it. Requires a prior underwriting row.
func (s *lendingService) GenerateOffers(ctx context.Context, applicationID string) ([]domain.Offer, error) {
	logger := middleware.GetLoggerFromCtx(ctx)
	app, err := s.repo.FindApplicationByID(ctx, applicationID)
	if err != nil {
		return nil, err
	}
	if app.Status.IsDecided() {
		return nil, fmt.Errorf("%w: application %s is already decided", apperrors.ErrValidation, applicationID)
	}

	uw, err := s.repo.FindLatestUnderwriting(ctx, applicationID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, fmt.Errorf("%w: no underwriting result found", apperrors.ErrPrerequisiteMissing)
		}
		return nil, err
	}

	exposure := uw.RecommendedMaxExposure
	if exposure.IsZero() {
		exposure = fallbackMaxExposure
	}
	limit := exposure.Mul(offerLimitShare)
	minLimit := limit.Mul(offerMinLimitShare)

	apr := offerAPR
	annualFee := offerAnnualFee
	originationFee := offerOriginationFee

	offer := domain.Offer{
		OfferID:            uuid.NewString(),
		ApplicationID:      app.ApplicationID,
		OfferCode:          fmt.Sprintf("OFFER-LOC-%d", limit.IntPart()),
		ProductType:        "REVOLVING_LOC",
		CreditLimit:        limit,
		MinCreditLimit:     &minLimit,
		MaxCreditLimit:     &exposure,
		APR:                &apr,
		AnnualFee:          &annualFee,
		OriginationFee:     &originationFee,
		RepaymentTerms:     "REVOLVING",
		CollateralRequired: false,
		Notes:              offerNotes,
		CreatedAt:          time.Now().UTC(),
	}
	if err := s.repo.SaveOffer(ctx, offer); err != nil {
		logger.Error("Failed to save offer", slog.String("error", err.Error()), slog.String("application_id", applicationID))
		return nil, err
	}

	if err := s.advanceToInReview(ctx, app); err != nil {
		return nil, err
	}

	logger.Info("Offer generated", slog.String("application_id", applicationID), slog.String("offer_code", offer.OfferCode))
	s.metrics.IncrementStepOutcome("lending", "generate_offers", "generated")
	return []domain.Offer{offer}, nil
}

// SelectOffer marks an offer belonging to the application as selected and
// returns its snapshot.
func (s *lendingService) SelectOffer(ctx context.Context, applicationID string, offerID string) (*domain.Offer, error) {
	logger := middleware.GetLoggerFromCtx(ctx)
	if _, err := s.repo.FindApplicationByID(ctx, applicationID); err != nil {
		return nil, err
	}

	offer, err := s.repo.FindOfferByID(ctx, applicationID, offerID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, fmt.Errorf("%w: offer not found for this application", apperrors.ErrNotFound)
		}
		return nil, err
	}

	selectedAt := time.Now().UTC()
	if err := s.repo.MarkOfferSelected(ctx, applicationID, offerID, selectedAt); err != nil {
		logger.Error("Failed to mark offer selected", slog.String("error", err.Error()), slog.String("offer_id", offerID))
		return nil, err
	}

	offer.Selected = true
	offer.SelectedAt = &selectedAt

	logger.Info("Offer selected", slog.String("application_id", applicationID), slog.String("offer_id", offerID))
	s.metrics.IncrementStepOutcome("lending", "select_offer", "selected")
	return offer, nil
}

// OpenFacility creates the funded facility at most once per application from
// the most recent offer, and moves the application to DECIDED.
func (s *lendingService) OpenFacility(ctx context.Context, applicationID string) (*domain.CreditFacility, error) {
	logger := middleware.GetLoggerFromCtx(ctx)
	app, err := s.repo.FindApplicationByID(ctx, applicationID)
	if err != nil {
		return nil, err
	}

	existing, err := s.repo.FindFacilityByApplicationID(ctx, applicationID)
	if err == nil {
		return existing, nil
	}
	if !errors.Is(err, apperrors.ErrNotFound) {
		return nil, err
	}

	offer, err := s.repo.FindLatestOffer(ctx, applicationID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, fmt.Errorf("%w: no offer available to open facility", apperrors.ErrPrerequisiteMissing)
		}
		return nil, err
	}

	billingDay := facilityBillingCycleDay
	facility := domain.CreditFacility{
		FacilityID:      uuid.NewString(),
		ApplicationID:   app.ApplicationID,
		CustomerID:      app.CustomerID,
		BusinessID:      app.BusinessID,
		FacilityType:    offer.ProductType,
		AccountNumber:   syntheticAccountNumber("20", app.ApplicationID),
		CreditLimit:     offer.CreditLimit,
		APR:             offer.APR,
		Status:          domain.AccountActive,
		BillingCycleDay: &billingDay,
		DrawdownTerms:   facilityDrawdownTerms,
		CreatedAt:       time.Now().UTC(),
	}

	stored, err := s.repo.CreateFacilityIfAbsent(ctx, facility)
	if err != nil {
		logger.Error("Failed to open facility", slog.String("error", err.Error()), slog.String("application_id", applicationID))
		return nil, err
	}

	if err := s.markDecided(ctx, app); err != nil {
		return nil, err
	}

	logger.Info("Facility opened", slog.String("application_id", applicationID), slog.String("facility_id", stored.FacilityID))
	s.metrics.IncrementStepOutcome("lending", "open_facility", "opened")
	return stored, nil
}

func (s *lendingService) advanceToInReview(ctx context.Context, app *domain.LendingApplication) error {
	if app.Status != domain.StatusReceived {
		return nil
	}
	err := s.repo.UpdateApplicationStatus(ctx, app.ApplicationID, domain.StatusReceived, domain.StatusInReview)
	if err != nil && !errors.Is(err, apperrors.ErrValidation) {
		return err
	}
	return nil
}

func (s *lendingService) markDecided(ctx context.Context, app *domain.LendingApplication) error {
	if app.Status.IsDecided() {
		return nil
	}
	err := s.repo.UpdateApplicationStatus(ctx, app.ApplicationID, app.Status, domain.StatusDecided)
	if err != nil && !errors.Is(err, apperrors.ErrValidation) {
		return err
	}
	return nil
}
