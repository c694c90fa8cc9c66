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
	portsrepo "github.com/smbanking/onboarding_backend/internal/core/ports/repositories"
	portssvc "github.com/smbanking/onboarding_backend/internal/core/ports/services"
	"github.com/smbanking/onboarding_backend/internal/middleware"
	"github.com/smbanking/onboarding_backend/internal/platform/metrics"
	"github.com/smbanking/onboarding_backend/internal/utils"
)

// completenessBlockedComment is attached whenever mandatory fields are missing.
const completenessBlockedComment = "Mandatory fields missing; cannot proceed without user interaction."

// checkingRoutingNumber is the routing number assigned to accounts opened by
// this backend.
const checkingRoutingNumber = "011000015"

// highCashVolumeThreshold is the monthly cash-deposit volume above which the
// risk scorer adds the HIGH_CASH_VOLUME driver.
var highCashVolumeThreshold = decimal.NewFromInt(100000)

type checkingService struct {
	repo    portsrepo.CheckingRepositoryFacade
	metrics *metrics.Metrics
}

// NewCheckingService creates the checking workflow service.
func NewCheckingService(repo portsrepo.CheckingRepositoryFacade, m *metrics.Metrics) portssvc.CheckingSvcFacade {
	return &checkingService{repo: repo, metrics: m}
}

var _ portssvc.CheckingSvcFacade = (*checkingService)(nil)

func (s *checkingService) GetApplicationByReference(ctx context.Context, reference string) (*domain.CheckingApplication, error) {
	logger := middleware.GetLoggerFromCtx(ctx)
	app, err := s.repo.FindApplicationByReference(ctx, reference)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			logger.Error("Failed to find checking application by reference", slog.String("error", err.Error()), slog.String("reference", reference))
		}
		return nil, err
	}
	return app, nil
}

// EvaluateCompleteness inspects the business, owner and usage-profile fields
// required before any automated decision can run. Read-only.
func (s *checkingService) EvaluateCompleteness(ctx context.Context, applicationID string) (*domain.CompletenessEvaluation, error) {
	app, err := s.repo.FindApplicationByID(ctx, applicationID)
	if err != nil {
		return nil, err
	}

	var missing []string
	if app.Business.TaxID == "" {
		missing = append(missing, domain.CodeBusinessTaxID)
	}
	if app.Business.Address == "" {
		missing = append(missing, domain.CodeBusinessAddress)
	}

	if len(app.Owners) == 0 {
		missing = append(missing, domain.CodeOwnersMissing)
	} else {
		for _, o := range app.Owners {
			if o.DOB == nil {
				missing = append(missing, domain.CodeOwnerDOB)
			}
			if o.NationalID == "" {
				missing = append(missing, domain.CodeOwnerIDNumber)
			}
			if o.OwnershipPercentage == nil {
				missing = append(missing, domain.CodeOwnershipPercentage)
			}
		}
	}

	if app.UsageProfile == nil {
		missing = append(missing, domain.CodeUsageProfileMissing)
	}

	missing = utils.DedupeAndSortCodes(missing)
	result := &domain.CompletenessEvaluation{
		CanProceed:        len(missing) == 0,
		MissingFieldCodes: missing,
	}
	if !result.CanProceed {
		result.Comments = completenessBlockedComment
	}

	s.metrics.IncrementStepOutcome("checking", "completeness", outcomeLabel(result.CanProceed))
	return result, nil
}

// EvaluateProductEligibility applies the product policy rules. Read-only.
func (s *checkingService) EvaluateProductEligibility(ctx context.Context, applicationID string, productID string) (*domain.EligibilityEvaluation, error) {
	app, err := s.repo.FindApplicationByID(ctx, applicationID)
	if err != nil {
		return nil, err
	}

	var reasonCodes []string
	if app.Business.IsRestrictedIndustry() {
		reasonCodes = append(reasonCodes, domain.CodeIndustryNotAllowed)
	}
	// Very new businesses cannot get premium products.
	if app.Business.IsNewBusiness() && strings.Contains(strings.ToUpper(productID), "PREMIUM") {
		reasonCodes = append(reasonCodes, domain.CodeMinAgeOfBusiness)
	}

	result := &domain.EligibilityEvaluation{
		Eligible:    len(reasonCodes) == 0,
		ReasonCodes: reasonCodes,
	}
	s.metrics.IncrementStepOutcome("checking", "product_eligibility", outcomeLabel(result.Eligible))
	return result, nil
}

// EvaluateDocuments checks the required document set. Rejection is only
// detected on uploaded documents, so a rejected document of a type outside the
// required set is ignored.
func (s *checkingService) EvaluateDocuments(ctx context.Context, applicationID string) (*domain.DocumentEvaluation, error) {
	app, err := s.repo.FindApplicationByID(ctx, applicationID)
	if err != nil {
		return nil, err
	}

	docsByType := make(map[string]domain.Document, len(app.Documents))
	for _, d := range app.Documents {
		docsByType[d.DocType] = d
	}

	var missing []string
	for _, required := range domain.RequiredDocumentTypes {
		if _, ok := docsByType[required]; !ok {
			missing = append(missing, required)
		}
	}

	var invalid []string
	var reasonCodes []string
	for docType, doc := range docsByType {
		if doc.Status == domain.DocumentRejected {
			invalid = append(invalid, docType)
			reasonCodes = append(reasonCodes, doc.ReasonCodes...)
		}
	}

	result := &domain.DocumentEvaluation{
		DocsOK:          len(missing) == 0 && len(invalid) == 0,
		MissingDocTypes: missing,
		InvalidDocTypes: utils.DedupeAndSortCodes(invalid),
		ReasonCodes:     utils.DedupeAndSortCodes(reasonCodes),
	}
	s.metrics.IncrementStepOutcome("checking", "documents", outcomeLabel(result.DocsOK))
	return result, nil
}

// ScoreRisk computes the additive risk score and appends a RiskScore row.
// Every invocation appends; the rows are the audit trail.
func (s *checkingService) ScoreRisk(ctx context.Context, applicationID string) (*domain.RiskScore, error) {
	logger := middleware.GetLoggerFromCtx(ctx)
	app, err := s.repo.FindApplicationByID(ctx, applicationID)
	if err != nil {
		return nil, err
	}
	if app.Status.IsDecided() {
		return nil, fmt.Errorf("%w: application %s is already decided", apperrors.ErrValidation, applicationID)
	}

	score := 20
	var drivers []string

	if app.Business.IsNewBusiness() {
		score += 30
		drivers = append(drivers, domain.DriverNewBusiness)
	}
	if app.UsageProfile != nil && app.UsageProfile.CashDepositVolumePerMonth != nil &&
		app.UsageProfile.CashDepositVolumePerMonth.GreaterThan(highCashVolumeThreshold) {
		score += 30
		drivers = append(drivers, domain.DriverHighCashVolume)
	}
	if app.Business.IsRestrictedIndustry() {
		score += 20
		drivers = append(drivers, domain.DriverHighRiskIndustry)
	}

	if len(drivers) == 0 {
		drivers = []string{domain.DriverBaseline}
	}

	entry := domain.RiskScore{
		RiskScoreID:   uuid.NewString(),
		ApplicationID: app.ApplicationID,
		Score:         score,
		Band:          domain.RiskBandFor(score),
		DriverCodes:   drivers,
		CreatedAt:     time.Now().UTC(),
	}
	if err := s.repo.SaveRiskScore(ctx, entry); err != nil {
		logger.Error("Failed to save risk score", slog.String("error", err.Error()), slog.String("application_id", applicationID))
		return nil, err
	}

	if err := s.advanceToInReview(ctx, app); err != nil {
		return nil, err
	}

	logger.Info("Risk score recorded", slog.String("application_id", applicationID), slog.Int("score", score), slog.String("band", string(entry.Band)))
	s.metrics.IncrementStepOutcome("checking", "risk_score", strings.ToLower(string(entry.Band)))
	return &entry, nil
}

// OpenAccount creates the funded account at most once per application. A
// second call returns the existing row unchanged. Opening moves the
// application to DECIDED.
func (s *checkingService) OpenAccount(ctx context.Context, applicationID string) (*domain.CheckingAccount, error) {
	logger := middleware.GetLoggerFromCtx(ctx)
	app, err := s.repo.FindApplicationByID(ctx, applicationID)
	if err != nil {
		return nil, err
	}

	existing, err := s.repo.FindAccountByApplicationID(ctx, applicationID)
	if err == nil {
		return existing, nil
	}
	if !errors.Is(err, apperrors.ErrNotFound) {
		return nil, err
	}

	account := domain.CheckingAccount{
		AccountID:     uuid.NewString(),
		ApplicationID: app.ApplicationID,
		AccountNumber: syntheticAccountNumber("10", app.ApplicationID),
		RoutingNumber: checkingRoutingNumber,
		Status:        domain.AccountActive,
		CreatedAt:     time.Now().UTC(),
	}

	// The unique constraint on the application id resolves concurrent opens;
	// whichever insert lost the race gets the surviving row back.
	stored, err := s.repo.CreateAccountIfAbsent(ctx, account)
	if err != nil {
		logger.Error("Failed to open account", slog.String("error", err.Error()), slog.String("application_id", applicationID))
		return nil, err
	}

	if err := s.markDecided(ctx, app); err != nil {
		return nil, err
	}

	logger.Info("Account opened", slog.String("application_id", applicationID), slog.String("account_id", stored.AccountID))
	s.metrics.IncrementStepOutcome("checking", "open_account", "opened")
	return stored, nil
}

// advanceToInReview moves a RECEIVED application to IN_REVIEW after its first
// scoring artifact. A concurrent step may have advanced the status already;
// that race is benign.
func (s *checkingService) advanceToInReview(ctx context.Context, app *domain.CheckingApplication) error {
	if app.Status != domain.StatusReceived {
		return nil
	}
	err := s.repo.UpdateApplicationStatus(ctx, app.ApplicationID, domain.StatusReceived, domain.StatusInReview)
	if err != nil && !errors.Is(err, apperrors.ErrValidation) {
		return err
	}
	return nil
}

// markDecided moves the application to its terminal status. Losing the race
// to another opener is benign.
func (s *checkingService) markDecided(ctx context.Context, app *domain.CheckingApplication) error {
	if app.Status.IsDecided() {
		return nil
	}
	err := s.repo.UpdateApplicationStatus(ctx, app.ApplicationID, app.Status, domain.StatusDecided)
	if err != nil && !errors.Is(err, apperrors.ErrValidation) {
		return err
	}
	return nil
}

// syntheticAccountNumber derives a deterministic account number from the
// application id: a fixed prefix plus the first ten hex characters of the id.
func syntheticAccountNumber(prefix, applicationID string) string {
	compact := strings.ReplaceAll(applicationID, "-", "")
	if len(compact) > 10 {
		compact = compact[:10]
	}
	return prefix + compact
}

func outcomeLabel(positive bool) string {
	if positive {
		return "pass"
	}
	return "fail"
}
