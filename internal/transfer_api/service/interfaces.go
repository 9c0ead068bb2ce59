package service

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/banking-payment-transfers/internal/domain/account"
	"github.com/banking-payment-transfers/internal/domain/notification"
	"github.com/banking-payment-transfers/internal/domain/transfer"
)

// TransferService executes fund transfers and serves transfer record reads
type TransferService interface {
	// Execute runs one transfer end to end: validation, resolution, funds
	// check, atomic balance mutation, record insert, post-commit notification.
	// Returns InvalidRequestError, AccountNotFoundError or
	// account.ErrInsufficientFunds for business-rule failures; anything else
	// is a system fault.
	Execute(ctx context.Context, request *transfer.Request) (*transfer.Result, error)

	// GetTransferByID retrieves a transfer record by its ledger ID
	// Returns nil if the record is not found
	GetTransferByID(ctx context.Context, id int64) (*transfer.Record, error)

	// GetTransfersByAccount retrieves paginated transfer records where the
	// account appears as source or destination
	// Returns records, total count, and any error
	GetTransfersByAccount(ctx context.Context, accountNumber string, page, perPage int) ([]*transfer.Record, int64, error)
}

// AccountService defines the interface for account operations
type AccountService interface {
	// CreateAccount creates a new account with the given details
	// Returns ErrDuplicateNumber if an account with the same canonical number exists
	CreateAccount(ctx context.Context, number string, ownerName string, initialBalance decimal.Decimal) (*account.Account, error)

	// GetAccountByNumber retrieves an account by its raw or canonical number
	// Returns ErrAccountNotFound if the account doesn't exist
	GetAccountByNumber(ctx context.Context, number string) (*account.Account, error)
}

// NotificationService serves reads over the notification archive
type NotificationService interface {
	// GetNotificationsByAccount retrieves paginated archived notifications
	// where the account appears as source or destination, newest first
	// Returns notifications, total count, and any error
	GetNotificationsByAccount(ctx context.Context, accountNumber string, page, perPage int) ([]*notification.Archived, int64, error)
}

// NotificationSink receives transfer-completed facts after commit. Delivery
// is at-most-once; implementations must not block the transfer outcome.
type NotificationSink interface {
	PublishTransferCompleted(ctx context.Context, event *transfer.CompletedEvent) error
	Close() error
}

// TxBeginner starts the database transaction scoping one transfer's unit of work
type TxBeginner interface {
	Begin(ctx context.Context) (pgx.Tx, error)
}
