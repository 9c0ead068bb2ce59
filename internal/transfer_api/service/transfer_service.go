package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/banking-payment-transfers/internal/domain/account"
	"github.com/banking-payment-transfers/internal/domain/transfer"
)

// TransferServiceImpl implements the TransferService interface
type TransferServiceImpl struct {
	db           TxBeginner
	accountRepo  account.Repository
	transferRepo transfer.Repository
	sink         NotificationSink
	logger       *slog.Logger
}

// NewTransferService creates a new transfer service
func NewTransferService(
	logger *slog.Logger,
	db TxBeginner,
	accountRepo account.Repository,
	transferRepo transfer.Repository,
	sink NotificationSink,
) TransferService {
	return &TransferServiceImpl{
		db:           db,
		accountRepo:  accountRepo,
		transferRepo: transferRepo,
		sink:         sink,
		logger:       logger,
	}
}

// Execute runs one transfer. Balance mutations and the audit record commit
// in a single database transaction; the notification is published after
// commit and its failure never changes the outcome.
func (s *TransferServiceImpl) Execute(ctx context.Context, request *transfer.Request) (*transfer.Result, error) {
	logger := s.logger
	if request.CorrelationID != "" {
		logger = s.logger.With("correlation_id", request.CorrelationID)
	}

	// 1. Structural validation, before any storage access
	if err := validateRequest(request); err != nil {
		logger.Warn("Transfer request rejected",
			"source_account", request.SourceAccount,
			"destination_account", request.DestinationAccount,
			"error", err,
		)
		return nil, err
	}

	// 2. Canonicalize both numbers. Differently formatted spellings of one
	// account must not slip past the identity check above.
	sourceNumber := account.NormalizeNumber(request.SourceAccount)
	destinationNumber := account.NormalizeNumber(request.DestinationAccount)
	if sourceNumber == destinationNumber {
		return nil, transfer.InvalidRequestError{Reason: "Source and destination accounts cannot be the same"}
	}

	tx, err := s.db.Begin(ctx)
	if err != nil {
		logger.Error("Failed to begin database transaction", "error", err)
		return nil, fmt.Errorf("failed to begin transfer transaction: %w", err)
	}
	defer func() {
		if p := recover(); p != nil {
			logger.Error("Panic recovered, rolling back transaction", "panic", p)
			_ = tx.Rollback(ctx)
			panic(p) // Re-panic
		} else if err != nil {
			if rbErr := tx.Rollback(ctx); rbErr != nil && !errors.Is(rbErr, pgx.ErrTxClosed) {
				logger.Error("Failed to rollback transaction after error", "rollback_error", rbErr, "original_error", err)
			}
		}
	}()

	accountRepoTx := s.accountRepo.WithTx(tx)
	transferRepoTx := s.transferRepo.WithTx(tx)

	// 3. Resolve and lock the accounts, source first. All transfers acquire
	// locks in request order, matching the original contract.
	var source, destination *account.Account
	source, err = lockAccount(ctx, accountRepoTx, transfer.SideSource, sourceNumber)
	if err != nil {
		return nil, err
	}
	destination, err = lockAccount(ctx, accountRepoTx, transfer.SideDestination, destinationNumber)
	if err != nil {
		return nil, err
	}

	// 4. Funds check on the locked source balance
	if !source.CanDebit(request.Amount) {
		logger.Warn("Transfer rejected for insufficient funds",
			"source_account", sourceNumber,
			"balance", source.Balance,
			"amount", request.Amount,
		)
		err = account.ErrInsufficientFunds
		return nil, err
	}

	// 5. Mutate balances, snapshotting the pre-mutation values for the record
	sourceOldBalance := source.Balance
	destinationOldBalance := destination.Balance

	if err = source.Debit(request.Amount); err != nil {
		return nil, err
	}
	if err = destination.Credit(request.Amount); err != nil {
		return nil, err
	}

	if err = accountRepoTx.Update(ctx, source); err != nil {
		logger.Error("Failed to persist source account", "source_account", sourceNumber, "error", err)
		return nil, err
	}
	if err = accountRepoTx.Update(ctx, destination); err != nil {
		logger.Error("Failed to persist destination account", "destination_account", destinationNumber, "error", err)
		return nil, err
	}

	// 6. Append the audit record inside the same transaction
	record := &transfer.Record{
		SourceAccountID:       source.ID,
		DestinationAccountID:  destination.ID,
		SourceNumber:          source.Number,
		DestinationNumber:     destination.Number,
		Amount:                request.Amount,
		SourceOldBalance:      sourceOldBalance,
		SourceNewBalance:      source.Balance,
		DestinationOldBalance: destinationOldBalance,
		DestinationNewBalance: destination.Balance,
		Timestamp:             time.Now().UTC(),
		PerformedBy:           source.OwnerID,
	}
	if err = transferRepoTx.Create(ctx, record); err != nil {
		logger.Error("Failed to persist transfer record", "error", err)
		return nil, err
	}

	if err = tx.Commit(ctx); err != nil {
		logger.Error("Failed to commit transfer transaction", "error", err)
		return nil, fmt.Errorf("failed to commit transfer transaction: %w", err)
	}

	logger.Info("Transfer committed",
		"transfer_id", record.ID,
		"source_account", record.SourceNumber,
		"destination_account", record.DestinationNumber,
		"amount", record.Amount,
	)

	// 7. Fire-and-forget notification. A publish failure is logged and
	// swallowed; the transfer has already committed.
	event := transfer.NewCompletedEvent(record, request.CorrelationID)
	if publishErr := s.sink.PublishTransferCompleted(ctx, event); publishErr != nil {
		logger.Error("Failed to publish transfer completed notification",
			"transfer_id", record.ID,
			"error", publishErr,
		)
	}

	return &transfer.Result{
		TransferID:         record.ID,
		SourceAccount:      record.SourceNumber,
		DestinationAccount: record.DestinationNumber,
		Amount:             record.Amount,
		Status:             transfer.StatusSuccess,
		Timestamp:          record.Timestamp,
	}, nil
}

// GetTransferByID retrieves a transfer record by its ledger ID. Returns nil if not found
func (s *TransferServiceImpl) GetTransferByID(ctx context.Context, id int64) (*transfer.Record, error) {
	record, err := s.transferRepo.GetByID(ctx, id)
	if err != nil {
		var errRecordNotFound transfer.ErrRecordNotFound
		if errors.As(err, &errRecordNotFound) {
			s.logger.Info("Transfer record not found", "transfer_id", id)
			return nil, nil
		}
		s.logger.Error("Failed to get transfer record", "transfer_id", id, "error", err)
		return nil, err
	}
	return record, nil
}

// GetTransfersByAccount retrieves paginated transfer records for an account.
// The account number may be raw or canonical.
func (s *TransferServiceImpl) GetTransfersByAccount(ctx context.Context, accountNumber string, page, perPage int) ([]*transfer.Record, int64, error) {
	acc, err := s.accountRepo.FindByNumber(ctx, account.NormalizeNumber(accountNumber))
	if err != nil {
		return nil, 0, err
	}

	offset := (page - 1) * perPage

	records, err := s.transferRepo.ListByAccountID(ctx, acc.ID, perPage, offset)
	if err != nil {
		return nil, 0, err
	}

	total, err := s.transferRepo.CountByAccountID(ctx, acc.ID)
	if err != nil {
		return nil, 0, err
	}

	return records, total, nil
}

// validateRequest applies the structural rules and maps each violation to its
// caller-facing message
func validateRequest(request *transfer.Request) error {
	if request.SourceAccount == "" || request.DestinationAccount == "" {
		return transfer.InvalidRequestError{Reason: "Source and destination account are required"}
	}
	if request.SourceAccount == request.DestinationAccount {
		return transfer.InvalidRequestError{Reason: "Source and destination accounts cannot be the same"}
	}
	if request.Amount.LessThanOrEqual(decimal.Zero) {
		return transfer.InvalidRequestError{Reason: "Transfer amount must be greater than zero"}
	}
	return nil
}

// lockAccount resolves one side under FOR UPDATE, translating a repository
// not-found into the side-aware transfer error
func lockAccount(ctx context.Context, repo account.Repository, side, number string) (*account.Account, error) {
	acc, err := repo.LockByNumber(ctx, number)
	if err != nil {
		if errors.Is(err, account.ErrAccountNotFound{}) {
			return nil, transfer.AccountNotFoundError{Side: side, Number: number}
		}
		return nil, fmt.Errorf("failed to lock %s account %s: %w", side, number, err)
	}
	return acc, nil
}
