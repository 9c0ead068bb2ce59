package postgres

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/banking-payment-transfers/internal/domain/transfer"
	"github.com/banking-payment-transfers/internal/platform/persistence"
)

// TransferRepository implements the transfer.Repository interface for
// PostgreSQL. The transfers table is append-only.
type TransferRepository struct {
	querier persistence.Querier
	logger  *slog.Logger
}

// NewTransferRepository creates a new PostgreSQL transfer ledger repository
func NewTransferRepository(logger *slog.Logger, db *persistence.PostgresDB) transfer.Repository {
	return &TransferRepository{
		querier: db.Pool(),
		logger:  logger,
	}
}

// WithTx wraps the repository with a transaction
func (r *TransferRepository) WithTx(tx pgx.Tx) transfer.Repository {
	return &TransferRepository{
		querier: tx,
		logger:  r.logger,
	}
}

// Create appends the transfer record and assigns record.ID from the sequence
func (r *TransferRepository) Create(ctx context.Context, record *transfer.Record) error {
	query := `
		INSERT INTO transfers (
			source_account_id, destination_account_id, source_number, destination_number,
			amount, source_old_balance, source_new_balance,
			destination_old_balance, destination_new_balance, timestamp, performed_by
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		RETURNING id
	`

	err := r.querier.QueryRow(ctx, query,
		record.SourceAccountID,
		record.DestinationAccountID,
		record.SourceNumber,
		record.DestinationNumber,
		record.Amount,
		record.SourceOldBalance,
		record.SourceNewBalance,
		record.DestinationOldBalance,
		record.DestinationNewBalance,
		record.Timestamp,
		record.PerformedBy,
	).Scan(&record.ID)
	if err != nil {
		r.logger.Error("Failed to create transfer record",
			"source", record.SourceNumber,
			"destination", record.DestinationNumber,
			"error", err,
		)
		return fmt.Errorf("failed to create transfer record: %w", err)
	}

	return nil
}

// GetByID retrieves a transfer record by its ledger identifier.
// Returns ErrRecordNotFound if no record matches.
func (r *TransferRepository) GetByID(ctx context.Context, id int64) (*transfer.Record, error) {
	query := selectTransferColumns + `
		WHERE id = $1
	`

	var rec transfer.Record
	err := r.querier.QueryRow(ctx, query, id).Scan(scanTransferFields(&rec)...)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, transfer.ErrRecordNotFound{ID: id}
		}
		r.logger.Error("Failed to get transfer record", "id", id, "error", err)
		return nil, fmt.Errorf("failed to get transfer record: %w", err)
	}

	return &rec, nil
}

// ListByAccountID retrieves paginated transfer records where the account is
// either side, newest first.
func (r *TransferRepository) ListByAccountID(ctx context.Context, accountID uuid.UUID, limit, offset int) ([]*transfer.Record, error) {
	query := selectTransferColumns + `
		WHERE source_account_id = $1 OR destination_account_id = $1
		ORDER BY timestamp DESC
		LIMIT $2 OFFSET $3
	`

	rows, err := r.querier.Query(ctx, query, accountID, limit, offset)
	if err != nil {
		r.logger.Error("Failed to list transfer records", "account_id", accountID.String(), "error", err)
		return nil, fmt.Errorf("failed to list transfer records: %w", err)
	}
	defer rows.Close()

	var records []*transfer.Record
	for rows.Next() {
		var rec transfer.Record
		if err := rows.Scan(scanTransferFields(&rec)...); err != nil {
			r.logger.Error("Failed to scan transfer record", "account_id", accountID.String(), "error", err)
			return nil, fmt.Errorf("failed to scan transfer record: %w", err)
		}
		records = append(records, &rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read transfer records: %w", err)
	}

	return records, nil
}

// CountByAccountID counts transfer records where the account is either side
func (r *TransferRepository) CountByAccountID(ctx context.Context, accountID uuid.UUID) (int64, error) {
	query := `
		SELECT COUNT(*)
		FROM transfers
		WHERE source_account_id = $1 OR destination_account_id = $1
	`

	var count int64
	if err := r.querier.QueryRow(ctx, query, accountID).Scan(&count); err != nil {
		r.logger.Error("Failed to count transfer records", "account_id", accountID.String(), "error", err)
		return 0, fmt.Errorf("failed to count transfer records: %w", err)
	}

	return count, nil
}

const selectTransferColumns = `
		SELECT id, source_account_id, destination_account_id, source_number, destination_number,
			amount, source_old_balance, source_new_balance,
			destination_old_balance, destination_new_balance, timestamp, performed_by
		FROM transfers`

func scanTransferFields(rec *transfer.Record) []interface{} {
	return []interface{}{
		&rec.ID,
		&rec.SourceAccountID,
		&rec.DestinationAccountID,
		&rec.SourceNumber,
		&rec.DestinationNumber,
		&rec.Amount,
		&rec.SourceOldBalance,
		&rec.SourceNewBalance,
		&rec.DestinationOldBalance,
		&rec.DestinationNewBalance,
		&rec.Timestamp,
		&rec.PerformedBy,
	}
}
