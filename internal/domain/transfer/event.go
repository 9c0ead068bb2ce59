package transfer

import (
	"time"

	"github.com/shopspring/decimal"
)

// CompletedEvent is the ephemeral fact published to the notification sink
// after a transfer has been committed. It is never persisted by the engine;
// downstream consumers decide what to do with it.
type CompletedEvent struct {
	SourceAccount      string          `json:"source_account"`
	DestinationAccount string          `json:"destination_account"`
	Amount             decimal.Decimal `json:"amount"`
	Timestamp          time.Time       `json:"timestamp"`
	CorrelationID      string          `json:"correlation_id,omitempty"`
}

// NewCompletedEvent builds the notification fact for a committed transfer
func NewCompletedEvent(rec *Record, correlationID string) *CompletedEvent {
	return &CompletedEvent{
		SourceAccount:      rec.SourceNumber,
		DestinationAccount: rec.DestinationNumber,
		Amount:             rec.Amount,
		Timestamp:          rec.Timestamp,
		CorrelationID:      correlationID,
	}
}
