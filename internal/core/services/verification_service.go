package services

import (
	"context"
	"log/slog"
	"strings"

	"github.com/smbanking/onboarding_backend/internal/core/domain"
	portsproviders "github.com/smbanking/onboarding_backend/internal/core/ports/providers"
	portsrepo "github.com/smbanking/onboarding_backend/internal/core/ports/repositories"
	portssvc "github.com/smbanking/onboarding_backend/internal/core/ports/services"
	"github.com/smbanking/onboarding_backend/internal/middleware"
	"github.com/smbanking/onboarding_backend/internal/platform/metrics"
)

type verificationService struct {
	repo     portsrepo.CheckingApplicationReader
	provider portsproviders.VerificationProvider
	metrics  *metrics.Metrics
}

// NewVerificationService creates the identity verification service backed by
// the given provider.
func NewVerificationService(repo portsrepo.CheckingApplicationReader, provider portsproviders.VerificationProvider, m *metrics.Metrics) portssvc.VerificationSvcFacade {
	return &verificationService{repo: repo, provider: provider, metrics: m}
}

var _ portssvc.VerificationSvcFacade = (*verificationService)(nil)

func (s *verificationService) VerifyBusiness(ctx context.Context, applicationID string) (*domain.BusinessVerification, error) {
	logger := middleware.GetLoggerFromCtx(ctx)
	app, err := s.repo.FindApplicationByID(ctx, applicationID)
	if err != nil {
		return nil, err
	}

	result, err := s.provider.VerifyBusiness(ctx, app.Business)
	if err != nil {
		// Provider failures propagate as-is; the pipeline never retries.
		logger.Error("Business verification provider failed", slog.String("error", err.Error()), slog.String("application_id", applicationID))
		return nil, err
	}

	s.metrics.IncrementStepOutcome("checking", "business_verification", strings.ToLower(string(result.Status)))
	return &result, nil
}

func (s *verificationService) VerifyOwners(ctx context.Context, applicationID string) (*domain.OwnerVerificationSet, error) {
	logger := middleware.GetLoggerFromCtx(ctx)
	app, err := s.repo.FindApplicationByID(ctx, applicationID)
	if err != nil {
		return nil, err
	}

	// An application without owners cannot be verified; the caller infers the
	// cause from the empty per-owner list.
	if len(app.Owners) == 0 {
		s.metrics.IncrementStepOutcome("checking", "owner_verification", "failed")
		return &domain.OwnerVerificationSet{
			OverallStatus: domain.VerificationFailed,
			Owners:        []domain.OwnerVerification{},
		}, nil
	}

	overall := domain.VerificationPassed
	results := make([]domain.OwnerVerification, 0, len(app.Owners))
	for _, owner := range app.Owners {
		result, err := s.provider.VerifyOwner(ctx, owner)
		if err != nil {
			logger.Error("Owner verification provider failed", slog.String("error", err.Error()), slog.String("owner_id", owner.OwnerID))
			return nil, err
		}
		if result.Status != domain.VerificationPassed {
			overall = domain.VerificationFailed
		}
		results = append(results, result)
	}

	s.metrics.IncrementStepOutcome("checking", "owner_verification", strings.ToLower(string(overall)))
	return &domain.OwnerVerificationSet{OverallStatus: overall, Owners: results}, nil
}
