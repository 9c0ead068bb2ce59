package account

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// Repository defines account persistence operations
type Repository interface {
	Create(ctx context.Context, account *Account) error
	GetByID(ctx context.Context, id uuid.UUID) (*Account, error)

	// FindByNumber retrieves an account by its canonical number
	FindByNumber(ctx context.Context, number string) (*Account, error)

	// LockByNumber acquires a pessimistic row lock on the account for the
	// duration of the surrounding transaction
	LockByNumber(ctx context.Context, number string) (*Account, error)

	// Update persists the account using optimistic locking on Version
	Update(ctx context.Context, account *Account) error

	WithTx(tx pgx.Tx) Repository
}

// ErrConcurrentModification indicates optimistic lock failure
type ErrConcurrentModification struct {
	AccountID uuid.UUID
}

func (e ErrConcurrentModification) Error() string {
	return "concurrent modification detected for account: " + e.AccountID.String()
}

// ErrAccountNotFound indicates no account exists for a canonical number
type ErrAccountNotFound struct {
	Number string
}

func (e ErrAccountNotFound) Error() string {
	return "account not found: " + e.Number
}

// Is matches any ErrAccountNotFound when the target carries an empty number
func (e ErrAccountNotFound) Is(target error) bool {
	t, ok := target.(ErrAccountNotFound)
	if !ok {
		return false
	}
	return t.Number == "" || t.Number == e.Number
}

// ErrDuplicateNumber indicates account number uniqueness violation
type ErrDuplicateNumber struct {
	Number string
}

func (e ErrDuplicateNumber) Error() string {
	return "account with number already exists: " + e.Number
}
