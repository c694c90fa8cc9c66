package repositories

import (
	"context"
	"time"

	"github.com/smbanking/onboarding_backend/internal/core/domain"
)

// LendingApplicationReader defines read operations for the lending
// application aggregate (loaded with customer and business).
type LendingApplicationReader interface {
	FindApplicationByID(ctx context.Context, applicationID string) (*domain.LendingApplication, error)
	FindApplicationByReference(ctx context.Context, reference string) (*domain.LendingApplication, error)
}

// LendingApplicationWriter defines mutations on the lending aggregate.
type LendingApplicationWriter interface {
	// UpdateApplicationStatus transitions the application status conditionally
	// on the current status; returns apperrors.ErrValidation when the row was
	// not in `from`.
	UpdateApplicationStatus(ctx context.Context, applicationID string, from, to domain.ApplicationStatus) error

	// DeleteApplication removes the application and all owned children
	// (summaries, reports, underwritings, offers, facilities) via cascade.
	DeleteApplication(ctx context.Context, applicationID string) error
}

// UnderwritingInputReader reads the artifacts underwriting consumes.
type UnderwritingInputReader interface {
	// FindLatestTransactionSummary returns the newest stored summary, or
	// apperrors.ErrNotFound when none exists.
	FindLatestTransactionSummary(ctx context.Context, applicationID string) (*domain.TransactionSummary, error)

	// FindLatestCreditReport returns the newest report across bureaus, or
	// apperrors.ErrNotFound when none exists.
	FindLatestCreditReport(ctx context.Context, applicationID string) (*domain.CreditReport, error)

	// FindLatestCreditReportByBureau returns the newest report pulled from one
	// bureau, or apperrors.ErrNotFound when none exists.
	FindLatestCreditReportByBureau(ctx context.Context, applicationID string, bureau string) (*domain.CreditReport, error)
}

// CreditReportWriter persists bureau pulls.
type CreditReportWriter interface {
	SaveCreditReport(ctx context.Context, report domain.CreditReport) error
}

// UnderwritingRepository persists the append-only underwriting audit trail.
type UnderwritingRepository interface {
	// SaveUnderwriting appends one underwriting artifact. Rows are never updated.
	SaveUnderwriting(ctx context.Context, uw domain.Underwriting) error

	// FindLatestUnderwriting returns the most recent underwriting run, or
	// apperrors.ErrNotFound when the application was never underwritten.
	FindLatestUnderwriting(ctx context.Context, applicationID string) (*domain.Underwriting, error)
}

// OfferRepository persists generated offers and their selection state.
type OfferRepository interface {
	// SaveOffer appends one offer. Offer codes are unique across applications.
	SaveOffer(ctx context.Context, offer domain.Offer) error

	// FindOfferByID returns an offer only when it belongs to the given
	// application; apperrors.ErrNotFound otherwise.
	FindOfferByID(ctx context.Context, applicationID string, offerID string) (*domain.Offer, error)

	// FindLatestOffer returns the most recently created offer, or
	// apperrors.ErrNotFound when none exists.
	FindLatestOffer(ctx context.Context, applicationID string) (*domain.Offer, error)

	// MarkOfferSelected persists the selection flag and timestamp on an offer.
	MarkOfferSelected(ctx context.Context, applicationID string, offerID string, selectedAt time.Time) error
}

// FacilityRepository provides idempotent creation of the terminal facility
// artifact.
type FacilityRepository interface {
	// FindFacilityByApplicationID returns the funded facility, or
	// apperrors.ErrNotFound when none exists.
	FindFacilityByApplicationID(ctx context.Context, applicationID string) (*domain.CreditFacility, error)

	// CreateFacilityIfAbsent inserts the facility unless one already exists for
	// the application, and returns the row that ended up in storage.
	CreateFacilityIfAbsent(ctx context.Context, facility domain.CreditFacility) (*domain.CreditFacility, error)
}

// LendingRepositoryFacade combines all lending workflow repository interfaces.
type LendingRepositoryFacade interface {
	LendingApplicationReader
	LendingApplicationWriter
	UnderwritingInputReader
	CreditReportWriter
	UnderwritingRepository
	OfferRepository
	FacilityRepository
}
