package repositories

import (
	"context"

	"github.com/smbanking/onboarding_backend/internal/core/domain"
)

// NotificationRepository persists the append-only notification audit log.
type NotificationRepository interface {
	// SaveNotification appends one notification row. No dedup is attempted;
	// every send call produces a new row.
	SaveNotification(ctx context.Context, n domain.Notification) error
}
