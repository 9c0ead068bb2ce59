package account

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewAccount(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		acc, err := NewAccount("205-1234567-68", "Jane Roe", decimal.NewFromInt(1000))
		require.NoError(t, err)
		require.NotNil(t, acc)

		assert.Equal(t, "205-0000001234567-68", acc.Number, "number should be canonicalized on creation")
		assert.Equal(t, "Jane Roe", acc.OwnerName)
		assert.True(t, acc.Balance.Equal(decimal.NewFromInt(1000)))
		assert.Equal(t, 1, acc.Version)
		assert.NotEqual(t, acc.ID, acc.OwnerID)
	})

	t.Run("EmptyOwnerName", func(t *testing.T) {
		acc, err := NewAccount("205-1234567-68", "", decimal.NewFromInt(100))
		assert.ErrorIs(t, err, ErrEmptyOwnerName)
		assert.Nil(t, acc)
	})

	t.Run("NegativeBalance", func(t *testing.T) {
		acc, err := NewAccount("205-1234567-68", "Jane Roe", decimal.NewFromInt(-1))
		assert.ErrorIs(t, err, ErrNegativeBalance)
		assert.Nil(t, acc)
	})

	t.Run("ZeroBalanceAllowed", func(t *testing.T) {
		acc, err := NewAccount("205-1234567-68", "Jane Roe", decimal.Zero)
		require.NoError(t, err)
		assert.True(t, acc.Balance.IsZero())
	})
}

func TestAccount_Debit(t *testing.T) {
	newAcc := func(balance int64) *Account {
		acc, err := NewAccount("205-1234567-68", "Jane Roe", decimal.NewFromInt(balance))
		require.NoError(t, err)
		return acc
	}

	t.Run("Success", func(t *testing.T) {
		acc := newAcc(1000)
		err := acc.Debit(decimal.NewFromInt(200))
		require.NoError(t, err)
		assert.True(t, acc.Balance.Equal(decimal.NewFromInt(800)))
		assert.Equal(t, 2, acc.Version)
	})

	t.Run("InsufficientFunds", func(t *testing.T) {
		acc := newAcc(1000)
		err := acc.Debit(decimal.NewFromInt(20000))
		assert.ErrorIs(t, err, ErrInsufficientFunds)
		assert.True(t, acc.Balance.Equal(decimal.NewFromInt(1000)), "balance must stay untouched")
		assert.Equal(t, 1, acc.Version)
	})

	t.Run("ExactBalance", func(t *testing.T) {
		acc := newAcc(1000)
		err := acc.Debit(decimal.NewFromInt(1000))
		require.NoError(t, err)
		assert.True(t, acc.Balance.IsZero())
	})

	t.Run("NonPositiveAmount", func(t *testing.T) {
		acc := newAcc(1000)
		assert.ErrorIs(t, acc.Debit(decimal.Zero), ErrInvalidAmount)
		assert.ErrorIs(t, acc.Debit(decimal.NewFromInt(-5)), ErrInvalidAmount)
	})
}

func TestAccount_Credit(t *testing.T) {
	acc, err := NewAccount("205-7654321-68", "John Doe", decimal.NewFromInt(500))
	require.NoError(t, err)

	t.Run("Success", func(t *testing.T) {
		err := acc.Credit(decimal.NewFromInt(200))
		require.NoError(t, err)
		assert.True(t, acc.Balance.Equal(decimal.NewFromInt(700)))
	})

	t.Run("NonPositiveAmount", func(t *testing.T) {
		assert.ErrorIs(t, acc.Credit(decimal.Zero), ErrInvalidAmount)
		assert.ErrorIs(t, acc.Credit(decimal.NewFromInt(-5)), ErrInvalidAmount)
	})
}

func TestAccount_CanDebit(t *testing.T) {
	acc, err := NewAccount("205-1234567-68", "Jane Roe", decimal.NewFromInt(100))
	require.NoError(t, err)

	assert.True(t, acc.CanDebit(decimal.NewFromInt(100)))
	assert.True(t, acc.CanDebit(decimal.NewFromInt(99)))
	assert.False(t, acc.CanDebit(decimal.NewFromInt(101)))
}
