package handler

import "github.com/shopspring/decimal"

// ExecuteTransferRequest represents a request to execute a fund transfer.
// Field-level rules (presence, identity, positivity) are enforced by the
// transfer service so violations surface with their business messages.
type ExecuteTransferRequest struct {
	SourceAccount      string          `json:"source_account"`
	DestinationAccount string          `json:"destination_account"`
	Amount             decimal.Decimal `json:"amount"`
}

// TransferResponse represents a committed transfer in API responses
type TransferResponse struct {
	TransferID         int64           `json:"transfer_id"`
	SourceAccount      string          `json:"source_account"`
	DestinationAccount string          `json:"destination_account"`
	Amount             decimal.Decimal `json:"amount"`
	Status             string          `json:"status"`
	Timestamp          string          `json:"timestamp"`
}

// TransferRecordResponse represents a stored transfer record in API responses
type TransferRecordResponse struct {
	ID                    int64           `json:"id"`
	SourceAccount         string          `json:"source_account"`
	DestinationAccount    string          `json:"destination_account"`
	Amount                decimal.Decimal `json:"amount"`
	SourceOldBalance      decimal.Decimal `json:"source_old_balance"`
	SourceNewBalance      decimal.Decimal `json:"source_new_balance"`
	DestinationOldBalance decimal.Decimal `json:"destination_old_balance"`
	DestinationNewBalance decimal.Decimal `json:"destination_new_balance"`
	PerformedBy           string          `json:"performed_by"`
	Timestamp             string          `json:"timestamp"`
}

// CreateAccountRequest represents a request to create a new account
type CreateAccountRequest struct {
	Number         string          `json:"number" binding:"required"`
	OwnerName      string          `json:"owner_name" binding:"required"`
	InitialBalance decimal.Decimal `json:"initial_balance"`
}

// AccountResponse represents an account in API responses
type AccountResponse struct {
	ID        string          `json:"id"`
	Number    string          `json:"number"`
	OwnerName string          `json:"owner_name"`
	Balance   decimal.Decimal `json:"balance"`
	CreatedAt string          `json:"created_at"`
	UpdatedAt string          `json:"updated_at"`
}

// NotificationResponse represents an archived notification in API responses
type NotificationResponse struct {
	SourceAccount      string `json:"source_account"`
	DestinationAccount string `json:"destination_account"`
	Amount             string `json:"amount"`
	CorrelationID      string `json:"correlation_id,omitempty"`
	Timestamp          string `json:"timestamp"`
	ReceivedAt         string `json:"received_at"`
}

// PaginationParams represents pagination parameters for list endpoints
type PaginationParams struct {
	Page    int `form:"page,default=1" binding:"min=1"`
	PerPage int `form:"per_page,default=10" binding:"min=1,max=100"`
}
