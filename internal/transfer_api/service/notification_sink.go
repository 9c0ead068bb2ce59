package service

import (
	"context"
	"log/slog"

	"github.com/banking-payment-transfers/internal/domain/transfer"
	"github.com/banking-payment-transfers/internal/platform/messaging/producers"
)

// KafkaNotificationSink publishes transfer-completed events through a Kafka
// producer. Events are keyed by the source account number so one account's
// notifications stay ordered within a partition.
type KafkaNotificationSink struct {
	producer producers.MessagePublisher
}

// NewKafkaNotificationSink creates a notification sink backed by the given producer
func NewKafkaNotificationSink(producer producers.MessagePublisher) NotificationSink {
	return &KafkaNotificationSink{producer: producer}
}

func (s *KafkaNotificationSink) PublishTransferCompleted(ctx context.Context, event *transfer.CompletedEvent) error {
	return s.producer.Publish(ctx, event.SourceAccount, event)
}

func (s *KafkaNotificationSink) Close() error {
	return s.producer.Close()
}

// NoopNotificationSink drops every event after logging it. Used when the
// service runs without a broker.
type NoopNotificationSink struct {
	logger *slog.Logger
}

// NewNoopNotificationSink creates a sink that logs and discards events
func NewNoopNotificationSink(logger *slog.Logger) NotificationSink {
	return &NoopNotificationSink{logger: logger}
}

func (s *NoopNotificationSink) PublishTransferCompleted(_ context.Context, event *transfer.CompletedEvent) error {
	s.logger.Debug("Discarding transfer completed notification",
		"source_account", event.SourceAccount,
		"destination_account", event.DestinationAccount,
		"amount", event.Amount,
	)
	return nil
}

func (s *NoopNotificationSink) Close() error {
	return nil
}
