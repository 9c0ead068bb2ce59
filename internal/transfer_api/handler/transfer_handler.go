package handler

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/banking-payment-transfers/internal/domain/account"
	"github.com/banking-payment-transfers/internal/domain/transfer"
	"github.com/banking-payment-transfers/internal/transfer_api/middleware"
	"github.com/banking-payment-transfers/internal/transfer_api/service"
)

// TransferHandler handles HTTP requests for transfer operations
type TransferHandler struct {
	transferService service.TransferService
	logger          *slog.Logger
}

// NewTransferHandler creates a new transfer handler
func NewTransferHandler(logger *slog.Logger, transferService service.TransferService) *TransferHandler {
	return &TransferHandler{
		transferService: transferService,
		logger:          logger,
	}
}

// Execute runs a fund transfer between two accounts.
// Business-rule violations map to 400 (invalid request, insufficient funds)
// or 404 (unknown account); anything else is a 500 with a generic message.
func (h *TransferHandler) Execute(c *gin.Context) {
	var req ExecuteTransferRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Error("Invalid request body", "error", err)
		RespondBadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	request := &transfer.Request{
		SourceAccount:      req.SourceAccount,
		DestinationAccount: req.DestinationAccount,
		Amount:             req.Amount,
		CorrelationID:      middleware.GetCorrelationID(c),
	}

	result, err := h.transferService.Execute(c.Request.Context(), request)
	if err != nil {
		var invalidErr transfer.InvalidRequestError
		var notFoundErr transfer.AccountNotFoundError
		switch {
		case errors.As(err, &invalidErr):
			RespondBadRequest(c, invalidErr.Reason)
		case errors.Is(err, account.ErrInsufficientFunds):
			RespondBadRequest(c, err.Error())
		case errors.As(err, &notFoundErr):
			RespondNotFound(c, notFoundErr.Error())
		default:
			h.logger.Error("Failed to execute transfer", "error", err)
			RespondInternalError(c)
		}
		return
	}

	RespondOK(c, mapResultToResponse(result))
}

// GetByID retrieves a transfer record by its ledger ID, returns 404 if not found
func (h *TransferHandler) GetByID(c *gin.Context) {
	idParam := c.Param("id")
	id, err := strconv.ParseInt(idParam, 10, 64)
	if err != nil {
		h.logger.Error("Invalid transfer ID", "id", idParam, "error", err)
		RespondBadRequest(c, "Invalid transfer ID")
		return
	}

	record, err := h.transferService.GetTransferByID(c.Request.Context(), id)
	if err != nil {
		h.logger.Error("Failed to get transfer", "id", idParam, "error", err)
		RespondInternalError(c)
		return
	}

	if record == nil {
		RespondNotFound(c, "Transfer not found")
		return
	}

	RespondOK(c, mapRecordToResponse(record))
}

// GetByAccount retrieves paginated transfer history for an account number
func (h *TransferHandler) GetByAccount(c *gin.Context) {
	number := c.Param("number")

	var pagination PaginationParams
	if err := c.ShouldBindQuery(&pagination); err != nil {
		h.logger.Error("Invalid pagination parameters", "error", err)
		RespondBadRequest(c, "Invalid pagination parameters")
		return
	}

	records, total, err := h.transferService.GetTransfersByAccount(
		c.Request.Context(),
		number,
		pagination.Page,
		pagination.PerPage,
	)
	if err != nil {
		if errors.Is(err, account.ErrAccountNotFound{}) {
			RespondNotFound(c, "Account not found")
			return
		}
		h.logger.Error("Failed to get transfers", "account_number", number, "error", err)
		RespondInternalError(c)
		return
	}

	var transfers []TransferRecordResponse
	for _, record := range records {
		transfers = append(transfers, mapRecordToResponse(record))
	}

	RespondWithPaginatedData(c, http.StatusOK, transfers, pagination.Page, pagination.PerPage, int(total))
}

// mapResultToResponse maps a transfer result to its response DTO
func mapResultToResponse(result *transfer.Result) TransferResponse {
	return TransferResponse{
		TransferID:         result.TransferID,
		SourceAccount:      result.SourceAccount,
		DestinationAccount: result.DestinationAccount,
		Amount:             result.Amount,
		Status:             string(result.Status),
		Timestamp:          result.Timestamp.Format(time.RFC3339),
	}
}

// mapRecordToResponse maps a transfer record to its response DTO
func mapRecordToResponse(record *transfer.Record) TransferRecordResponse {
	return TransferRecordResponse{
		ID:                    record.ID,
		SourceAccount:         record.SourceNumber,
		DestinationAccount:    record.DestinationNumber,
		Amount:                record.Amount,
		SourceOldBalance:      record.SourceOldBalance,
		SourceNewBalance:      record.SourceNewBalance,
		DestinationOldBalance: record.DestinationOldBalance,
		DestinationNewBalance: record.DestinationNewBalance,
		PerformedBy:           record.PerformedBy.String(),
		Timestamp:             record.Timestamp.Format(time.RFC3339),
	}
}
