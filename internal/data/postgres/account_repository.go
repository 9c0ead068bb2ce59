// Package postgres provides PostgreSQL implementations of the domain
// repositories. Accounts and transfer records live in the same database so a
// transfer commits its balance mutations and audit record atomically.
package postgres

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/banking-payment-transfers/internal/domain/account"
	"github.com/banking-payment-transfers/internal/platform/persistence"
)

// AccountRepository implements the account.Repository interface for PostgreSQL
type AccountRepository struct {
	querier persistence.Querier // Can be *pgxpool.Pool or pgx.Tx
	logger  *slog.Logger
}

// NewAccountRepository creates a new PostgreSQL account repository.
// It expects db.Pool() to satisfy persistence.Querier.
func NewAccountRepository(logger *slog.Logger, db *persistence.PostgresDB) account.Repository {
	return &AccountRepository{
		querier: db.Pool(),
		logger:  logger,
	}
}

// WithTx wraps the repository with a transaction so balance updates and the
// transfer record insert share one unit of work.
func (r *AccountRepository) WithTx(tx pgx.Tx) account.Repository {
	return &AccountRepository{
		querier: tx,
		logger:  r.logger,
	}
}

// Create stores a new account. A duplicate canonical number surfaces as a
// database constraint error.
func (r *AccountRepository) Create(ctx context.Context, acc *account.Account) error {
	query := `
		INSERT INTO accounts (id, number, owner_name, owner_id, balance, version, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`

	_, err := r.querier.Exec(ctx, query,
		acc.ID,
		acc.Number,
		acc.OwnerName,
		acc.OwnerID,
		acc.Balance,
		acc.Version,
		acc.CreatedAt,
		acc.UpdatedAt,
	)
	if err != nil {
		r.logger.Error("Failed to create account", "number", acc.Number, "error", err)
		return fmt.Errorf("failed to create account: %w", err)
	}

	return nil
}

// GetByID retrieves an account by its ID
func (r *AccountRepository) GetByID(ctx context.Context, id uuid.UUID) (*account.Account, error) {
	query := `
		SELECT id, number, owner_name, owner_id, balance, version, created_at, updated_at
		FROM accounts
		WHERE id = $1
	`

	return r.scanAccount(ctx, query, id, id.String())
}

// FindByNumber retrieves an account by its canonical number.
// Returns ErrAccountNotFound if no account matches.
func (r *AccountRepository) FindByNumber(ctx context.Context, number string) (*account.Account, error) {
	query := `
		SELECT id, number, owner_name, owner_id, balance, version, created_at, updated_at
		FROM accounts
		WHERE number = $1
	`

	return r.scanAccount(ctx, query, number, number)
}

// LockByNumber obtains a pessimistic row lock on the account and returns its
// current state. Must be called within a transaction; the lock serializes
// concurrent balance read-modify-write on the same account.
func (r *AccountRepository) LockByNumber(ctx context.Context, number string) (*account.Account, error) {
	query := `
		SELECT id, number, owner_name, owner_id, balance, version, created_at, updated_at
		FROM accounts
		WHERE number = $1
		FOR UPDATE
	`

	return r.scanAccount(ctx, query, number, number)
}

// Update persists the account state using optimistic locking.
// Returns ErrConcurrentModification if the account changed between read and update.
func (r *AccountRepository) Update(ctx context.Context, acc *account.Account) error {
	query := `
		UPDATE accounts
		SET number = $1, owner_name = $2, owner_id = $3, balance = $4, version = $5, updated_at = $6
		WHERE id = $7 AND version = $8
	`

	result, err := r.querier.Exec(ctx, query,
		acc.Number,
		acc.OwnerName,
		acc.OwnerID,
		acc.Balance,
		acc.Version,
		acc.UpdatedAt,
		acc.ID,
		acc.Version-1, // Check previous version for optimistic locking
	)
	if err != nil {
		r.logger.Error("Failed to update account", "id", acc.ID.String(), "error", err)
		return fmt.Errorf("failed to update account: %w", err)
	}

	if result.RowsAffected() == 0 {
		return account.ErrConcurrentModification{AccountID: acc.ID}
	}

	return nil
}

func (r *AccountRepository) scanAccount(ctx context.Context, query string, arg interface{}, key string) (*account.Account, error) {
	var acc account.Account
	err := r.querier.QueryRow(ctx, query, arg).Scan(
		&acc.ID,
		&acc.Number,
		&acc.OwnerName,
		&acc.OwnerID,
		&acc.Balance,
		&acc.Version,
		&acc.CreatedAt,
		&acc.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, account.ErrAccountNotFound{Number: key}
		}
		r.logger.Error("Failed to get account", "key", key, "error", err)
		return nil, fmt.Errorf("failed to get account: %w", err)
	}

	return &acc, nil
}
