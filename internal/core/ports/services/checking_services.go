package services

import (
	"context"

	"github.com/smbanking/onboarding_backend/internal/core/domain"
)

// CheckingReaderSvc defines read operations on checking applications.
type CheckingReaderSvc interface {
	// GetApplicationByReference retrieves the full application aggregate by its
	// unique reference.
	GetApplicationByReference(ctx context.Context, reference string) (*domain.CheckingApplication, error)
}

// CheckingEvaluationSvc defines the read-only evaluation steps of the
// checking pipeline. Negative verdicts are successful responses, not errors.
type CheckingEvaluationSvc interface {
	// EvaluateCompleteness checks the mandatory business/owner/usage fields.
	EvaluateCompleteness(ctx context.Context, applicationID string) (*domain.CompletenessEvaluation, error)

	// EvaluateProductEligibility applies the product policy rules for the
	// requested product identifier.
	EvaluateProductEligibility(ctx context.Context, applicationID string, productID string) (*domain.EligibilityEvaluation, error)

	// EvaluateDocuments checks the required document set and rejected uploads.
	EvaluateDocuments(ctx context.Context, applicationID string) (*domain.DocumentEvaluation, error)
}

// CheckingScoringSvc defines the artifact-writing scoring step.
type CheckingScoringSvc interface {
	// ScoreRisk computes the additive risk score and appends a RiskScore row.
	// Every call appends; history is the audit trail.
	ScoreRisk(ctx context.Context, applicationID string) (*domain.RiskScore, error)
}

// CheckingAccountSvc opens the terminal account artifact.
type CheckingAccountSvc interface {
	// OpenAccount creates the funded account at most once per application and
	// moves the application to DECIDED. Repeat calls return the existing row.
	OpenAccount(ctx context.Context, applicationID string) (*domain.CheckingAccount, error)
}

// CheckingSvcFacade combines all checking workflow service interfaces.
type CheckingSvcFacade interface {
	CheckingReaderSvc
	CheckingEvaluationSvc
	CheckingScoringSvc
	CheckingAccountSvc
}
