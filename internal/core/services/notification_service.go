package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/smbanking/onboarding_backend/internal/apperrors"
	"github.com/smbanking/onboarding_backend/internal/core/domain"
	portsproviders "github.com/smbanking/onboarding_backend/internal/core/ports/providers"
	portsrepo "github.com/smbanking/onboarding_backend/internal/core/ports/repositories"
	portssvc "github.com/smbanking/onboarding_backend/internal/core/ports/services"
	"github.com/smbanking/onboarding_backend/internal/middleware"
	"github.com/smbanking/onboarding_backend/internal/platform/metrics"
)

type notificationService struct {
	checkingRepo portsrepo.CheckingApplicationReader
	lendingRepo  portsrepo.LendingApplicationReader
	repo         portsrepo.NotificationRepository
	sink         portsproviders.NotificationSink
	metrics      *metrics.Metrics
}

// NewNotificationService creates the decision notification service. Both
// application readers are needed so a notification can only be recorded
// against an application that exists.
func NewNotificationService(
	checkingRepo portsrepo.CheckingApplicationReader,
	lendingRepo portsrepo.LendingApplicationReader,
	repo portsrepo.NotificationRepository,
	sink portsproviders.NotificationSink,
	m *metrics.Metrics,
) portssvc.NotificationSvcFacade {
	return &notificationService{
		checkingRepo: checkingRepo,
		lendingRepo:  lendingRepo,
		repo:         repo,
		sink:         sink,
		metrics:      m,
	}
}

var _ portssvc.NotificationSvcFacade = (*notificationService)(nil)

func (s *notificationService) SendDecision(ctx context.Context, contextType domain.NotificationContextType, applicationID string, channel domain.NotificationChannel, decision domain.Decision, reasonCodes []string, requestedBy string) (*domain.Notification, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	switch contextType {
	case domain.ContextCheckingApplication:
		if _, err := s.checkingRepo.FindApplicationByID(ctx, applicationID); err != nil {
			return nil, err
		}
	case domain.ContextLendingApplication:
		if _, err := s.lendingRepo.FindApplicationByID(ctx, applicationID); err != nil {
			return nil, err
		}
	default:
		return nil, fmt.Errorf("%w: unknown notification context type %q", apperrors.ErrValidation, contextType)
	}

	if reasonCodes == nil {
		reasonCodes = []string{}
	}

	notification := domain.Notification{
		NotificationID: uuid.NewString(),
		ContextType:    contextType,
		ContextID:      applicationID,
		Channel:        channel,
		Decision:       decision,
		ReasonCodes:    reasonCodes,
		RequestedBy:    requestedBy,
		CreatedAt:      time.Now().UTC(),
	}

	status, err := s.sink.Deliver(ctx, notification)
	if err != nil {
		logger.Error("Notification delivery failed", slog.String("error", err.Error()), slog.String("application_id", applicationID), slog.String("channel", string(channel)))
		return nil, err
	}
	notification.DeliveryStatus = status

	if err := s.repo.SaveNotification(ctx, notification); err != nil {
		logger.Error("Failed to save notification", slog.String("error", err.Error()), slog.String("notification_id", notification.NotificationID))
		return nil, err
	}

	logger.Info("Decision notification sent",
		slog.String("application_id", applicationID),
		slog.String("context_type", string(contextType)),
		slog.String("decision", string(decision)),
		slog.String("delivery_status", status))
	s.metrics.IncrementStepOutcome("notification", "send_decision", string(decision))
	return &notification, nil
}
