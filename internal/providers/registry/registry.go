// Package registry implements a deterministic company-registry verification
// provider. Outcomes are derived entirely from the applicant's own data, which
// keeps the pipeline runnable without external registry access.
package registry

import (
	"context"

	"github.com/smbanking/onboarding_backend/internal/core/domain"
	portsproviders "github.com/smbanking/onboarding_backend/internal/core/ports/providers"
)

type registryProvider struct{}

// NewProvider creates the stub registry verification provider.
func NewProvider() portsproviders.VerificationProvider {
	return &registryProvider{}
}

var _ portsproviders.VerificationProvider = (*registryProvider)(nil)

// VerifyBusiness fails when no registration number is on file, routes to
// manual review when a registration exists but cannot be cross-checked against
// a tax id, and passes otherwise, echoing the registry match.
func (p *registryProvider) VerifyBusiness(_ context.Context, business domain.Business) (domain.BusinessVerification, error) {
	if business.RegistrationNumber == "" {
		return domain.BusinessVerification{
			Status:      domain.VerificationFailed,
			ReasonCodes: []string{domain.CodeRegistrationNotFound},
		}, nil
	}
	if business.TaxID == "" {
		return domain.BusinessVerification{
			Status:      domain.VerificationManualReview,
			ReasonCodes: []string{domain.CodeRegistryDataAmbiguous},
		}, nil
	}
	return domain.BusinessVerification{
		Status:                    domain.VerificationPassed,
		ReasonCodes:               []string{},
		MatchedRegistryName:       business.LegalName,
		MatchedRegistrationNumber: business.RegistrationNumber,
	}, nil
}

// VerifyOwner fails on a missing national id or date of birth and passes
// otherwise.
func (p *registryProvider) VerifyOwner(_ context.Context, owner domain.Owner) (domain.OwnerVerification, error) {
	var reasonCodes []string
	if owner.NationalID == "" {
		reasonCodes = append(reasonCodes, domain.CodeMissingNationalID)
	}
	if owner.DOB == nil {
		reasonCodes = append(reasonCodes, domain.CodeMissingDOB)
	}

	status := domain.VerificationPassed
	if len(reasonCodes) > 0 {
		status = domain.VerificationFailed
	} else {
		reasonCodes = []string{}
	}
	return domain.OwnerVerification{
		OwnerID:     owner.OwnerID,
		Status:      status,
		ReasonCodes: reasonCodes,
	}, nil
}
