package service

import (
	"context"
	"errors"

	"github.com/shopspring/decimal"

	"github.com/banking-payment-transfers/internal/domain/account"
)

// AccountServiceImpl implements the AccountService interface
type AccountServiceImpl struct {
	accountRepo account.Repository
}

// NewAccountService creates a new account service
func NewAccountService(accountRepo account.Repository) AccountService {
	return &AccountServiceImpl{
		accountRepo: accountRepo,
	}
}

// CreateAccount creates a new account, checking for duplicate account numbers.
// The raw number is canonicalized before the uniqueness check and storage.
func (s *AccountServiceImpl) CreateAccount(ctx context.Context, number string, ownerName string, initialBalance decimal.Decimal) (*account.Account, error) {
	acc, err := account.NewAccount(number, ownerName, initialBalance)
	if err != nil {
		return nil, err
	}

	existing, err := s.accountRepo.FindByNumber(ctx, acc.Number)
	if err != nil && !errors.Is(err, account.ErrAccountNotFound{}) {
		return nil, err
	}
	if existing != nil {
		return nil, account.ErrDuplicateNumber{Number: acc.Number}
	}

	if err := s.accountRepo.Create(ctx, acc); err != nil {
		return nil, err
	}

	return acc, nil
}

// GetAccountByNumber retrieves an account by its raw or canonical number,
// returns ErrAccountNotFound if not found
func (s *AccountServiceImpl) GetAccountByNumber(ctx context.Context, number string) (*account.Account, error) {
	return s.accountRepo.FindByNumber(ctx, account.NormalizeNumber(number))
}
