package services

import (
	"context"

	"github.com/smbanking/onboarding_backend/internal/core/domain"
)

// VerificationSvcFacade runs identity checks for a checking application via
// the configured verification provider.
type VerificationSvcFacade interface {
	// VerifyBusiness checks the applicant business against the registry.
	VerifyBusiness(ctx context.Context, applicationID string) (*domain.BusinessVerification, error)

	// VerifyOwners checks every beneficial owner; overall status is FAILED if
	// any owner failed. An application without owners fails with an empty list.
	VerifyOwners(ctx context.Context, applicationID string) (*domain.OwnerVerificationSet, error)
}
