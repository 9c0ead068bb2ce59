package postgres

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/pashagolub/pgxmock/v3"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/banking-payment-transfers/internal/domain/account"
)

func newTestLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))
}

func testAccount(number string, balance int64) *account.Account {
	now := time.Now()
	return &account.Account{
		ID:        uuid.New(),
		Number:    number,
		OwnerName: "Test User",
		OwnerID:   uuid.New(),
		Balance:   decimal.NewFromInt(balance),
		Version:   1,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

const accountColumnsQuery = `
		SELECT id, number, owner_name, owner_id, balance, version, created_at, updated_at
		FROM accounts`

func accountRows(acc *account.Account) *pgxmock.Rows {
	return pgxmock.NewRows([]string{"id", "number", "owner_name", "owner_id", "balance", "version", "created_at", "updated_at"}).
		AddRow(acc.ID, acc.Number, acc.OwnerName, acc.OwnerID, acc.Balance, acc.Version, acc.CreatedAt, acc.UpdatedAt)
}

func TestAccountRepository_Create(t *testing.T) {
	ctx := context.Background()
	logger := newTestLogger()
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := &AccountRepository{querier: mock, logger: logger}
	acc := testAccount("205-0000001234567-68", 1000)

	query := `
		INSERT INTO accounts \(id, number, owner_name, owner_id, balance, version, created_at, updated_at\)
		VALUES \(\$1, \$2, \$3, \$4, \$5, \$6, \$7, \$8\)
	`

	t.Run("success", func(t *testing.T) {
		mock.ExpectExec(query).
			WithArgs(acc.ID, acc.Number, acc.OwnerName, acc.OwnerID, acc.Balance, acc.Version, acc.CreatedAt, acc.UpdatedAt).
			WillReturnResult(pgxmock.NewResult("INSERT", 1))

		err := repo.Create(ctx, acc)
		assert.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("failure", func(t *testing.T) {
		expectedErr := errors.New("db error")
		mock.ExpectExec(query).
			WithArgs(acc.ID, acc.Number, acc.OwnerName, acc.OwnerID, acc.Balance, acc.Version, acc.CreatedAt, acc.UpdatedAt).
			WillReturnError(expectedErr)

		err := repo.Create(ctx, acc)
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "failed to create account")
		assert.ErrorIs(t, err, expectedErr)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestAccountRepository_FindByNumber(t *testing.T) {
	ctx := context.Background()
	logger := newTestLogger()
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := &AccountRepository{querier: mock, logger: logger}
	expectedAccount := testAccount("205-0000001234567-68", 1000)

	query := accountColumnsQuery + `
		WHERE number = \$1
	`

	t.Run("success", func(t *testing.T) {
		mock.ExpectQuery(query).WithArgs(expectedAccount.Number).WillReturnRows(accountRows(expectedAccount))

		acc, err := repo.FindByNumber(ctx, expectedAccount.Number)
		assert.NoError(t, err)
		assert.Equal(t, expectedAccount, acc)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("not found", func(t *testing.T) {
		mock.ExpectQuery(query).WithArgs("205-0000000000000-00").WillReturnError(pgx.ErrNoRows)

		acc, err := repo.FindByNumber(ctx, "205-0000000000000-00")
		assert.Error(t, err)
		assert.Nil(t, acc)
		var notFound account.ErrAccountNotFound
		assert.ErrorAs(t, err, &notFound)
		assert.Equal(t, "205-0000000000000-00", notFound.Number)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("db error", func(t *testing.T) {
		dbErr := errors.New("some db error")
		mock.ExpectQuery(query).WithArgs(expectedAccount.Number).WillReturnError(dbErr)

		acc, err := repo.FindByNumber(ctx, expectedAccount.Number)
		assert.Error(t, err)
		assert.Nil(t, acc)
		assert.Contains(t, err.Error(), "failed to get account")
		assert.ErrorIs(t, err, dbErr)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestAccountRepository_LockByNumber(t *testing.T) {
	ctx := context.Background()
	logger := newTestLogger()
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := &AccountRepository{querier: mock, logger: logger}
	expectedAccount := testAccount("205-0000007654321-68", 500)

	query := accountColumnsQuery + `
		WHERE number = \$1
		FOR UPDATE
	`

	t.Run("success", func(t *testing.T) {
		mock.ExpectQuery(query).WithArgs(expectedAccount.Number).WillReturnRows(accountRows(expectedAccount))

		acc, err := repo.LockByNumber(ctx, expectedAccount.Number)
		assert.NoError(t, err)
		assert.Equal(t, expectedAccount, acc)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("not found", func(t *testing.T) {
		mock.ExpectQuery(query).WithArgs(expectedAccount.Number).WillReturnError(pgx.ErrNoRows)

		acc, err := repo.LockByNumber(ctx, expectedAccount.Number)
		assert.Error(t, err)
		assert.Nil(t, acc)
		assert.ErrorIs(t, err, account.ErrAccountNotFound{})
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestAccountRepository_Update(t *testing.T) {
	ctx := context.Background()
	logger := newTestLogger()
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := &AccountRepository{querier: mock, logger: logger}
	acc := testAccount("205-0000001234567-68", 800)
	acc.Version = 2 // Already incremented by the balance mutation

	query := `
		UPDATE accounts
		SET number = \$1, owner_name = \$2, owner_id = \$3, balance = \$4, version = \$5, updated_at = \$6
		WHERE id = \$7 AND version = \$8
	`

	t.Run("success", func(t *testing.T) {
		mock.ExpectExec(query).
			WithArgs(acc.Number, acc.OwnerName, acc.OwnerID, acc.Balance, acc.Version, acc.UpdatedAt, acc.ID, acc.Version-1).
			WillReturnResult(pgxmock.NewResult("UPDATE", 1))

		err := repo.Update(ctx, acc)
		assert.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("concurrent modification", func(t *testing.T) {
		mock.ExpectExec(query).
			WithArgs(acc.Number, acc.OwnerName, acc.OwnerID, acc.Balance, acc.Version, acc.UpdatedAt, acc.ID, acc.Version-1).
			WillReturnResult(pgxmock.NewResult("UPDATE", 0))

		err := repo.Update(ctx, acc)
		assert.Error(t, err)
		var concurrentErr account.ErrConcurrentModification
		assert.ErrorAs(t, err, &concurrentErr)
		assert.Equal(t, acc.ID, concurrentErr.AccountID)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}
