package transfer

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInvalidRequestError_Is(t *testing.T) {
	err := InvalidRequestError{Reason: "Transfer amount must be greater than zero"}

	assert.True(t, errors.Is(err, InvalidRequestError{}), "empty target should match any InvalidRequestError")
	assert.True(t, errors.Is(err, InvalidRequestError{Reason: "Transfer amount must be greater than zero"}))
	assert.False(t, errors.Is(err, InvalidRequestError{Reason: "other"}))

	wrapped := fmt.Errorf("executing transfer: %w", err)
	assert.True(t, errors.Is(wrapped, InvalidRequestError{}))
}

func TestAccountNotFoundError(t *testing.T) {
	err := AccountNotFoundError{Side: SideSource, Number: "205-0000001234567-68"}

	assert.Equal(t, "source account not found: 205-0000001234567-68", err.Error())
	assert.True(t, errors.Is(err, AccountNotFoundError{}))
	assert.True(t, errors.Is(err, AccountNotFoundError{Side: SideSource}))
	assert.False(t, errors.Is(err, AccountNotFoundError{Side: SideDestination}))

	var notFound AccountNotFoundError
	wrapped := fmt.Errorf("executing transfer: %w", err)
	assert.True(t, errors.As(wrapped, &notFound))
	assert.Equal(t, SideSource, notFound.Side)
}

func TestErrRecordNotFound(t *testing.T) {
	err := ErrRecordNotFound{ID: 42}
	assert.Equal(t, "transfer record not found: 42", err.Error())
}
