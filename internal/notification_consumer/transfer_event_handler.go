// Package notification_consumer processes transfer-completed events from the
// notification topic: each event is logged and archived in MongoDB.
package notification_consumer

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/banking-payment-transfers/internal/domain/notification"
	"github.com/banking-payment-transfers/internal/domain/transfer"
	"github.com/banking-payment-transfers/internal/platform/messaging/producers"
)

// TransferEventHandler handles incoming transfer-completed messages from Kafka
type TransferEventHandler struct {
	archive  notification.Repository
	producer producers.DeadLetterPublisher
	logger   *slog.Logger
}

// NewTransferEventHandler creates a new handler
func NewTransferEventHandler(
	logger *slog.Logger,
	archive notification.Repository,
	producer producers.DeadLetterPublisher,
) *TransferEventHandler {
	return &TransferEventHandler{
		archive:  archive,
		producer: producer,
		logger:   logger,
	}
}

// HandleMessage processes Kafka messages
func (h *TransferEventHandler) HandleMessage(ctx context.Context, key []byte, value []byte) error {
	var event transfer.CompletedEvent
	if err := json.Unmarshal(value, &event); err != nil {
		unmarshalErrorMsg := "Failed to unmarshal transfer event from Kafka message"
		h.logger.Error(unmarshalErrorMsg,
			"error", err,
			"message_key", string(key),
		)

		// Send to DLQ if available
		if h.producer != nil {
			dlqReason := fmt.Sprintf("%s: %s", unmarshalErrorMsg, err.Error())
			if dlqErr := h.producer.PublishToDLQ(ctx, string(key), value, dlqReason); dlqErr != nil {
				h.logger.Error("Failed to publish message to DLQ after unmarshal error",
					"dlq_error", dlqErr,
					"original_error", err,
					"message_key", string(key),
				)
				// Return original error if DLQ fails
			} else {
				h.logger.Info("Successfully published unprocessable message to DLQ", "message_key", string(key), "reason", dlqReason)
				// Message handled, commit offset
				return nil
			}
		}
		// Allow Kafka retries
		return fmt.Errorf("failed to unmarshal message value: %w", err)
	}

	// Add correlation ID to logger
	logger := h.logger
	if event.CorrelationID != "" {
		logger = h.logger.With("correlation_id", event.CorrelationID)
	}

	logger.Info("Transfer completed",
		"source_account", event.SourceAccount,
		"destination_account", event.DestinationAccount,
		"amount", event.Amount,
		"timestamp", event.Timestamp,
	)

	if err := h.archive.Create(ctx, notification.NewArchived(&event)); err != nil {
		logger.Error("Failed to archive transfer notification",
			"source_account", event.SourceAccount,
			"destination_account", event.DestinationAccount,
			"error", err,
		)
		return fmt.Errorf("archiving transfer notification failed: %w", err)
	}

	logger.Debug("Transfer notification archived", "source_account", event.SourceAccount)
	return nil // Success, commit offset
}
