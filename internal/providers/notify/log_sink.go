// Package notify implements delivery sinks for decision notifications. The
// log sink is the development default; the Kafka sink publishes to a topic for
// downstream delivery services.
package notify

import (
	"context"
	"log/slog"

	"github.com/smbanking/onboarding_backend/internal/core/domain"
	portsproviders "github.com/smbanking/onboarding_backend/internal/core/ports/providers"
	"github.com/smbanking/onboarding_backend/internal/middleware"
)

type logSink struct{}

// NewLogSink creates a sink that only records the notification in the
// structured log. Delivery always succeeds.
func NewLogSink() portsproviders.NotificationSink {
	return &logSink{}
}

var _ portsproviders.NotificationSink = (*logSink)(nil)

func (s *logSink) Deliver(ctx context.Context, n domain.Notification) (string, error) {
	middleware.GetLoggerFromCtx(ctx).Info("Delivering decision notification",
		slog.String("notification_id", n.NotificationID),
		slog.String("context_type", string(n.ContextType)),
		slog.String("context_id", n.ContextID),
		slog.String("channel", string(n.Channel)),
		slog.String("decision", string(n.Decision)))
	return "SENT", nil
}
