package handler

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/banking-payment-transfers/internal/domain/notification"
	"github.com/banking-payment-transfers/internal/transfer_api/service"
)

// NotificationHandler handles HTTP requests for the notification archive
type NotificationHandler struct {
	notificationService service.NotificationService
	logger              *slog.Logger
}

// NewNotificationHandler creates a new notification handler
func NewNotificationHandler(logger *slog.Logger, notificationService service.NotificationService) *NotificationHandler {
	return &NotificationHandler{
		notificationService: notificationService,
		logger:              logger,
	}
}

// GetByAccount retrieves paginated archived notifications for an account number
func (h *NotificationHandler) GetByAccount(c *gin.Context) {
	number := c.Param("number")

	var pagination PaginationParams
	if err := c.ShouldBindQuery(&pagination); err != nil {
		h.logger.Error("Invalid pagination parameters", "error", err)
		RespondBadRequest(c, "Invalid pagination parameters")
		return
	}

	archived, total, err := h.notificationService.GetNotificationsByAccount(
		c.Request.Context(),
		number,
		pagination.Page,
		pagination.PerPage,
	)
	if err != nil {
		h.logger.Error("Failed to get notifications", "account_number", number, "error", err)
		RespondInternalError(c)
		return
	}

	var notifications []NotificationResponse
	for _, n := range archived {
		notifications = append(notifications, mapArchivedToResponse(n))
	}

	RespondWithPaginatedData(c, http.StatusOK, notifications, pagination.Page, pagination.PerPage, int(total))
}

// mapArchivedToResponse maps an archived notification to its response DTO
func mapArchivedToResponse(archived *notification.Archived) NotificationResponse {
	return NotificationResponse{
		SourceAccount:      archived.SourceAccount,
		DestinationAccount: archived.DestinationAccount,
		Amount:             archived.Amount,
		CorrelationID:      archived.CorrelationID,
		Timestamp:          archived.Timestamp.Format(time.RFC3339),
		ReceivedAt:         archived.ReceivedAt.Format(time.RFC3339),
	}
}
