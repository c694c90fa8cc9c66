// Package providers declares the capability interfaces for external
// collaborators of the decision pipeline. Implementations under
// internal/providers are deterministic stubs; production integrations plug in
// behind the same interfaces.
package providers

import (
	"context"

	"github.com/smbanking/onboarding_backend/internal/core/domain"
)

// VerificationProvider checks applicant identity against external registries.
type VerificationProvider interface {
	// VerifyBusiness checks the business against the company registry.
	VerifyBusiness(ctx context.Context, business domain.Business) (domain.BusinessVerification, error)

	// VerifyOwner checks one beneficial owner's identity data.
	VerifyOwner(ctx context.Context, owner domain.Owner) (domain.OwnerVerification, error)
}

// BureauProvider pulls a business credit report from a named bureau.
type BureauProvider interface {
	PullReport(ctx context.Context, app domain.LendingApplication, bureau string) (domain.CreditReport, error)
}

// NotificationSink delivers a decision notification over the requested
// channel and returns the resulting delivery status. Failures propagate to the
// caller; the pipeline never retries.
type NotificationSink interface {
	Deliver(ctx context.Context, n domain.Notification) (string, error)
}
