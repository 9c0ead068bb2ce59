package notification

import "context"

// Repository persists archived notifications and serves account-scoped reads.
type Repository interface {
	// Create stores an archived notification
	Create(ctx context.Context, archived *Archived) error
	// ListByAccount returns archived notifications where the account appears
	// as source or destination, newest first
	ListByAccount(ctx context.Context, accountNumber string, limit, offset int) ([]*Archived, error)
	// CountByAccount returns the number of archived notifications for the account
	CountByAccount(ctx context.Context, accountNumber string) (int64, error)
}
