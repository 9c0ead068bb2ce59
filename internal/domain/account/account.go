package account

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Common errors
var (
	// Caller-facing wording, surfaced verbatim in API responses
	ErrInsufficientFunds = errors.New("Insufficient funds on source account")
	ErrInvalidAmount     = errors.New("amount must be positive")
	ErrEmptyOwnerName    = errors.New("owner name cannot be empty")
	ErrNegativeBalance   = errors.New("initial balance cannot be negative")
)

// Account represents a bank account addressed by its canonical account number.
// Balance is a fixed-point decimal matching the persisted NUMERIC(18,2) column.
type Account struct {
	ID        uuid.UUID       `json:"id"`
	Number    string          `json:"number"` // Canonical form, see NormalizeNumber
	OwnerName string          `json:"owner_name"`
	OwnerID   uuid.UUID       `json:"owner_id"` // Principal recorded on transfers initiated from this account
	Balance   decimal.Decimal `json:"balance"`
	Version   int             `json:"version"` // For optimistic locking
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
}

// NewAccount creates a new account. The raw number is canonicalized before storage.
func NewAccount(rawNumber string, ownerName string, initialBalance decimal.Decimal) (*Account, error) {
	if ownerName == "" {
		return nil, ErrEmptyOwnerName
	}
	if initialBalance.IsNegative() {
		return nil, ErrNegativeBalance
	}

	now := time.Now()
	return &Account{
		ID:        uuid.New(),
		Number:    NormalizeNumber(rawNumber),
		OwnerName: ownerName,
		OwnerID:   uuid.New(),
		Balance:   initialBalance,
		Version:   1,
		CreatedAt: now,
		UpdatedAt: now,
	}, nil
}

// Credit adds the specified amount to the account balance
func (a *Account) Credit(amount decimal.Decimal) error {
	if amount.LessThanOrEqual(decimal.Zero) {
		return ErrInvalidAmount
	}

	a.Balance = a.Balance.Add(amount)
	a.UpdatedAt = time.Now()
	a.Version++
	return nil
}

// Debit subtracts the specified amount from the account balance.
// Returns ErrInsufficientFunds when the balance would go negative.
func (a *Account) Debit(amount decimal.Decimal) error {
	if amount.LessThanOrEqual(decimal.Zero) {
		return ErrInvalidAmount
	}

	if a.Balance.LessThan(amount) {
		return ErrInsufficientFunds
	}

	a.Balance = a.Balance.Sub(amount)
	a.UpdatedAt = time.Now()
	a.Version++
	return nil
}

// CanDebit checks if the account has sufficient funds for a debit
func (a *Account) CanDebit(amount decimal.Decimal) bool {
	return a.Balance.GreaterThanOrEqual(amount)
}
