package transfer

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Status defines transfer outcome states reported to callers
type Status string

const (
	StatusSuccess Status = "SUCCESS"
)

// Request describes one transfer as submitted by a caller. Account numbers
// are raw, caller-facing strings; canonicalization happens inside the engine.
type Request struct {
	SourceAccount      string          `json:"source_account"`
	DestinationAccount string          `json:"destination_account"`
	Amount             decimal.Decimal `json:"amount"`
	CorrelationID      string          `json:"correlation_id,omitempty"`
}

// Result is returned for a committed transfer
type Result struct {
	TransferID         int64           `json:"transfer_id"`
	SourceAccount      string          `json:"source_account"` // Canonical
	DestinationAccount string          `json:"destination_account"`
	Amount             decimal.Decimal `json:"amount"`
	Status             Status          `json:"status"`
	Timestamp          time.Time       `json:"timestamp"`
}

// Record is the immutable ledger entry for a committed transfer. The four
// balance fields are snapshots taken around the mutation, so for every record
// SourceNewBalance = SourceOldBalance - Amount and
// DestinationNewBalance = DestinationOldBalance + Amount.
type Record struct {
	ID                    int64           `json:"id"`
	SourceAccountID       uuid.UUID       `json:"source_account_id"`
	DestinationAccountID  uuid.UUID       `json:"destination_account_id"`
	SourceNumber          string          `json:"source_number"` // Canonical, denormalized for responses
	DestinationNumber     string          `json:"destination_number"`
	Amount                decimal.Decimal `json:"amount"`
	SourceOldBalance      decimal.Decimal `json:"source_old_balance"`
	SourceNewBalance      decimal.Decimal `json:"source_new_balance"`
	DestinationOldBalance decimal.Decimal `json:"destination_old_balance"`
	DestinationNewBalance decimal.Decimal `json:"destination_new_balance"`
	Timestamp             time.Time       `json:"timestamp"`
	PerformedBy           uuid.UUID       `json:"performed_by"` // Owner of the source account
}
