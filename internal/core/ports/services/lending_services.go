package services

import (
	"context"

	"github.com/smbanking/onboarding_backend/internal/core/domain"
)

// LendingReaderSvc defines read operations on lending applications and their
// underwriting inputs.
type LendingReaderSvc interface {
	// GetApplicationByReference retrieves the application aggregate by its
	// unique reference.
	GetApplicationByReference(ctx context.Context, reference string) (*domain.LendingApplication, error)

	// GetTransactionSummary returns the latest stored checking-account summary.
	// When none exists an empty summary carrying the account id is returned.
	// The lookback window is advisory in the current design.
	GetTransactionSummary(ctx context.Context, applicationID string, lookbackMonths int) (*domain.TransactionSummary, error)

	// GetLatestCreditReport returns the newest report across bureaus, or
	// apperrors.ErrNotFound when no report has been pulled.
	GetLatestCreditReport(ctx context.Context, applicationID string) (*domain.CreditReport, error)
}

// LendingDecisionSvc defines the evaluation and scoring steps of the lending
// pipeline.
type LendingDecisionSvc interface {
	// PullCreditReport reuses the newest stored report for the bureau or pulls
	// a fresh one from the bureau provider and persists it.
	PullCreditReport(ctx context.Context, applicationID string, bureau string) (*domain.CreditReport, error)

	// EvaluatePolicy applies lending policy eligibility rules (read-only).
	EvaluatePolicy(ctx context.Context, applicationID string) (*domain.EligibilityEvaluation, error)

	// RunUnderwriting computes grade, estimates and exposure and appends an
	// Underwriting row. Every call appends.
	RunUnderwriting(ctx context.Context, applicationID string) (*domain.Underwriting, error)
}

// LendingOfferSvc defines offer generation, selection, and facility opening.
type LendingOfferSvc interface {
	// GenerateOffers derives one revolving-line offer from the latest
	// underwriting result. Requires a prior underwriting row.
	GenerateOffers(ctx context.Context, applicationID string) ([]domain.Offer, error)

	// SelectOffer marks an offer belonging to the application as selected and
	// returns its snapshot.
	SelectOffer(ctx context.Context, applicationID string, offerID string) (*domain.Offer, error)

	// OpenFacility creates the funded facility at most once per application
	// from the most recent offer and moves the application to DECIDED.
	OpenFacility(ctx context.Context, applicationID string) (*domain.CreditFacility, error)
}

// LendingSvcFacade combines all lending workflow service interfaces.
type LendingSvcFacade interface {
	LendingReaderSvc
	LendingDecisionSvc
	LendingOfferSvc
}
