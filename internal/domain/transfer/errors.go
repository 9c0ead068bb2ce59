package transfer

import "strconv"

// Sides of a transfer, used to report which lookup missed
const (
	SideSource      = "source"
	SideDestination = "destination"
)

// InvalidRequestError indicates a structurally invalid transfer request:
// missing account numbers, identical accounts, or a non-positive amount.
// Detected before any storage mutation.
type InvalidRequestError struct {
	Reason string
}

func (e InvalidRequestError) Error() string {
	return e.Reason
}

// Is matches any InvalidRequestError when the target carries an empty reason
func (e InvalidRequestError) Is(target error) bool {
	t, ok := target.(InvalidRequestError)
	if !ok {
		return false
	}
	return t.Reason == "" || t.Reason == e.Reason
}

// AccountNotFoundError indicates that one side of the transfer resolved to no
// account. Side is "source" or "destination"; Number is the canonical form
// that missed.
type AccountNotFoundError struct {
	Side   string
	Number string
}

func (e AccountNotFoundError) Error() string {
	return e.Side + " account not found: " + e.Number
}

// Is matches any AccountNotFoundError when the target fields are empty
func (e AccountNotFoundError) Is(target error) bool {
	t, ok := target.(AccountNotFoundError)
	if !ok {
		return false
	}
	if t.Side != "" && t.Side != e.Side {
		return false
	}
	return t.Number == "" || t.Number == e.Number
}

// ErrRecordNotFound indicates a missing ledger record
type ErrRecordNotFound struct {
	ID int64
}

func (e ErrRecordNotFound) Error() string {
	return "transfer record not found: " + strconv.FormatInt(e.ID, 10)
}
