package repositories

import (
	"context"

	"github.com/smbanking/onboarding_backend/internal/core/domain"
)

// CheckingApplicationReader defines read operations for the checking
// application aggregate. Both lookups return the application with its
// business, owners and documents loaded.
type CheckingApplicationReader interface {
	// FindApplicationByID retrieves an application aggregate by its internal id.
	FindApplicationByID(ctx context.Context, applicationID string) (*domain.CheckingApplication, error)

	// FindApplicationByReference retrieves an application aggregate by its
	// human-facing unique reference.
	FindApplicationByReference(ctx context.Context, reference string) (*domain.CheckingApplication, error)
}

// CheckingApplicationWriter defines mutations on the checking aggregate.
type CheckingApplicationWriter interface {
	// UpdateApplicationStatus transitions the application status. The update is
	// conditional on the current status so concurrent steps cannot skip states;
	// it returns apperrors.ErrValidation when the row was not in `from`.
	UpdateApplicationStatus(ctx context.Context, applicationID string, from, to domain.ApplicationStatus) error

	// DeleteApplication removes the application and all owned children (owners,
	// documents, risk scores, accounts) via cascading delete.
	DeleteApplication(ctx context.Context, applicationID string) error
}

// RiskScoreRepository persists the append-only scoring audit trail.
type RiskScoreRepository interface {
	// SaveRiskScore appends one scoring artifact. Rows are never updated.
	SaveRiskScore(ctx context.Context, score domain.RiskScore) error

	// FindLatestRiskScore returns the most recently created score, or
	// apperrors.ErrNotFound when the application has never been scored.
	FindLatestRiskScore(ctx context.Context, applicationID string) (*domain.RiskScore, error)

	// ListRiskScores returns all scoring artifacts, newest first.
	ListRiskScores(ctx context.Context, applicationID string) ([]domain.RiskScore, error)
}

// CheckingAccountRepository provides idempotent creation of the terminal
// account artifact.
type CheckingAccountRepository interface {
	// FindAccountByApplicationID returns the funded account for an application,
	// or apperrors.ErrNotFound when none exists.
	FindAccountByApplicationID(ctx context.Context, applicationID string) (*domain.CheckingAccount, error)

	// CreateAccountIfAbsent inserts the account unless one already exists for
	// the application, and returns the row that ended up in storage. Concurrent
	// callers converge on a single row via the storage-level unique constraint.
	CreateAccountIfAbsent(ctx context.Context, account domain.CheckingAccount) (*domain.CheckingAccount, error)
}

// CheckingRepositoryFacade combines all checking workflow repository
// interfaces for clients that need full access.
type CheckingRepositoryFacade interface {
	CheckingApplicationReader
	CheckingApplicationWriter
	RiskScoreRepository
	CheckingAccountRepository
}
