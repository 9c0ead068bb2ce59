package service

import (
	"context"
	"log/slog"

	"github.com/banking-payment-transfers/internal/domain/account"
	"github.com/banking-payment-transfers/internal/domain/notification"
)

// NotificationServiceImpl implements the NotificationService interface
type NotificationServiceImpl struct {
	archive notification.Repository
	logger  *slog.Logger
}

// NewNotificationService creates a new notification query service
func NewNotificationService(logger *slog.Logger, archive notification.Repository) NotificationService {
	return &NotificationServiceImpl{
		archive: archive,
		logger:  logger,
	}
}

// GetNotificationsByAccount retrieves paginated archived notifications where
// the account appears as source or destination, newest first.
// Returns notifications, total count, and any error
func (s *NotificationServiceImpl) GetNotificationsByAccount(ctx context.Context, accountNumber string, page, perPage int) ([]*notification.Archived, int64, error) {
	canonical := account.NormalizeNumber(accountNumber)
	offset := (page - 1) * perPage

	archived, err := s.archive.ListByAccount(ctx, canonical, perPage, offset)
	if err != nil {
		s.logger.Error("Failed to get archived notifications", "account_number", canonical, "error", err)
		return nil, 0, err
	}

	total, err := s.archive.CountByAccount(ctx, canonical)
	if err != nil {
		s.logger.Error("Failed to count archived notifications", "account_number", canonical, "error", err)
		return nil, 0, err
	}

	return archived, total, nil
}
