package transfer

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// Repository manages durable transfer record persistence. Records are
// append-only: once created they are never updated or deleted.
type Repository interface {
	// Create appends the record and assigns its numeric identifier
	Create(ctx context.Context, record *Record) error
	GetByID(ctx context.Context, id int64) (*Record, error)
	ListByAccountID(ctx context.Context, accountID uuid.UUID, limit, offset int) ([]*Record, error)
	CountByAccountID(ctx context.Context, accountID uuid.UUID) (int64, error)
	WithTx(tx pgx.Tx) Repository
}
