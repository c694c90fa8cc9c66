package services

import (
	"context"

	"github.com/smbanking/onboarding_backend/internal/core/domain"
)

// NotificationSvcFacade records decision notifications against an application
// context and hands them to the configured delivery sink.
type NotificationSvcFacade interface {
	// SendDecision appends one notification row tagged with the context type,
	// the application id and the requesting caller, delivering through the
	// sink. One row per call.
	SendDecision(ctx context.Context, contextType domain.NotificationContextType, applicationID string, channel domain.NotificationChannel, decision domain.Decision, reasonCodes []string, requestedBy string) (*domain.Notification, error)
}
