package mongo

import (
	"context"
	"fmt"
	"log/slog"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/banking-payment-transfers/internal/domain/notification"
)

const (
	// NotificationCollectionName is the name of the notification archive collection in MongoDB
	NotificationCollectionName = "transfer_notifications"
)

// NotificationRepository implements the notification.Repository interface for MongoDB
type NotificationRepository struct {
	db     *mongo.Database
	logger *slog.Logger
}

// NewNotificationRepository creates a new MongoDB notification archive repository
func NewNotificationRepository(logger *slog.Logger, db *mongo.Database) notification.Repository {
	return &NotificationRepository{
		db:     db,
		logger: logger,
	}
}

// Create stores an archived notification
func (r *NotificationRepository) Create(ctx context.Context, archived *notification.Archived) error {
	collection := r.db.Collection(NotificationCollectionName)

	_, err := collection.InsertOne(ctx, archived)
	if err != nil {
		r.logger.Error("Failed to archive notification",
			"source_account", archived.SourceAccount,
			"destination_account", archived.DestinationAccount,
			"error", err)
		return fmt.Errorf("failed to archive notification: %w", err)
	}

	return nil
}

// ListByAccount retrieves paginated archived notifications where the account
// appears as source or destination.
// Results are sorted by transfer time in descending order (newest first).
func (r *NotificationRepository) ListByAccount(ctx context.Context, accountNumber string, limit, offset int) ([]*notification.Archived, error) {
	collection := r.db.Collection(NotificationCollectionName)

	cursor, err := collection.Find(ctx, accountFilter(accountNumber), listOptions(limit, offset))
	if err != nil {
		r.logger.Error("Failed to get archived notifications",
			"account_number", accountNumber,
			"error", err)
		return nil, fmt.Errorf("failed to get archived notifications: %w", err)
	}
	defer cursor.Close(ctx)

	var archived []*notification.Archived
	if err := cursor.All(ctx, &archived); err != nil {
		r.logger.Error("Failed to decode archived notifications",
			"account_number", accountNumber,
			"error", err)
		return nil, fmt.Errorf("failed to decode archived notifications: %w", err)
	}

	return archived, nil
}

// CountByAccount counts the archived notifications for an account
func (r *NotificationRepository) CountByAccount(ctx context.Context, accountNumber string) (int64, error) {
	collection := r.db.Collection(NotificationCollectionName)

	count, err := collection.CountDocuments(ctx, accountFilter(accountNumber))
	if err != nil {
		r.logger.Error("Failed to count archived notifications",
			"account_number", accountNumber,
			"error", err)
		return 0, fmt.Errorf("failed to count archived notifications: %w", err)
	}

	return count, nil
}

// accountFilter matches documents where the account is either leg of the transfer
func accountFilter(accountNumber string) bson.M {
	return bson.M{
		"$or": []bson.M{
			{"source_account": accountNumber},
			{"destination_account": accountNumber},
		},
	}
}

// listOptions sorts newest first and applies offset pagination
func listOptions(limit, offset int) *options.FindOptions {
	return options.Find().
		SetSort(bson.M{"timestamp": -1}).
		SetSkip(int64(offset)).
		SetLimit(int64(limit))
}
