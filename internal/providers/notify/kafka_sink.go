package notify

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/segmentio/kafka-go"
	"github.com/smbanking/onboarding_backend/internal/core/domain"
	portsproviders "github.com/smbanking/onboarding_backend/internal/core/ports/providers"
)

type kafkaSink struct {
	writer *kafka.Writer
}

// NewKafkaSink creates a sink publishing notifications to the given topic.
// Messages are keyed by application id so per-application ordering survives
// partitioning.
func NewKafkaSink(brokers []string, topic string) portsproviders.NotificationSink {
	return &kafkaSink{
		writer: &kafka.Writer{
			Addr:         kafka.TCP(brokers...),
			Topic:        topic,
			Balancer:     &kafka.Hash{},
			WriteTimeout: 10 * time.Second,
			RequiredAcks: kafka.RequireOne,
		},
	}
}

var _ portsproviders.NotificationSink = (*kafkaSink)(nil)

func (s *kafkaSink) Deliver(ctx context.Context, n domain.Notification) (string, error) {
	payload, err := json.Marshal(n)
	if err != nil {
		return "", fmt.Errorf("marshal notification: %w", err)
	}
	err = s.writer.WriteMessages(ctx, kafka.Message{
		Key:   []byte(n.ContextID),
		Value: payload,
	})
	if err != nil {
		return "", fmt.Errorf("publish notification: %w", err)
	}
	return "QUEUED", nil
}

// Close flushes and releases the underlying writer.
func (s *kafkaSink) Close() error {
	return s.writer.Close()
}
