// Package notification holds the archive model for transfer-completed facts
// received from the notification topic. The consumer writes the archive and
// the API serves reads over it; the transfer engine never touches it.
package notification

import (
	"time"

	"github.com/banking-payment-transfers/internal/domain/transfer"
)

// Archived is a transfer-completed fact as stored in the archive. Amount is
// kept as its canonical decimal string; the archive is display-oriented and
// never does arithmetic on it.
type Archived struct {
	SourceAccount      string    `json:"source_account" bson:"source_account"`
	DestinationAccount string    `json:"destination_account" bson:"destination_account"`
	Amount             string    `json:"amount" bson:"amount"`
	Timestamp          time.Time `json:"timestamp" bson:"timestamp"`
	CorrelationID      string    `json:"correlation_id,omitempty" bson:"correlation_id,omitempty"`
	ReceivedAt         time.Time `json:"received_at" bson:"received_at"`
}

// NewArchived builds an archive document from a received event
func NewArchived(event *transfer.CompletedEvent) *Archived {
	return &Archived{
		SourceAccount:      event.SourceAccount,
		DestinationAccount: event.DestinationAccount,
		Amount:             event.Amount.String(),
		Timestamp:          event.Timestamp,
		CorrelationID:      event.CorrelationID,
		ReceivedAt:         time.Now().UTC(),
	}
}
