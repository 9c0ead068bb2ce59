package handler

import (
	"errors"
	"log/slog"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/banking-payment-transfers/internal/domain/account"
	"github.com/banking-payment-transfers/internal/transfer_api/service"
)

// AccountHandler handles HTTP requests for account operations
type AccountHandler struct {
	accountService service.AccountService
	logger         *slog.Logger
}

// NewAccountHandler creates a new account handler
func NewAccountHandler(logger *slog.Logger, accountService service.AccountService) *AccountHandler {
	return &AccountHandler{
		accountService: accountService,
		logger:         logger,
	}
}

// Create handles creation of a new account, validating the request and
// checking for duplicate account numbers
func (h *AccountHandler) Create(c *gin.Context) {
	var req CreateAccountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Error("Invalid request body", "error", err)
		RespondBadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	acc, err := h.accountService.CreateAccount(c.Request.Context(), req.Number, req.OwnerName, req.InitialBalance)
	if err != nil {
		var duplicateErr account.ErrDuplicateNumber
		switch {
		case errors.As(err, &duplicateErr):
			h.logger.Warn("Attempt to create account with duplicate number", "number", duplicateErr.Number)
			RespondBadRequest(c, "Account with this number already exists")
		case errors.Is(err, account.ErrEmptyOwnerName), errors.Is(err, account.ErrNegativeBalance):
			RespondBadRequest(c, err.Error())
		default:
			h.logger.Error("Failed to create account", "error", err)
			RespondInternalError(c)
		}
		return
	}

	RespondCreated(c, mapAccountToResponse(acc))
}

// GetByNumber retrieves an account by its number, returning 404 if not found.
// The number may be given in raw or canonical form.
func (h *AccountHandler) GetByNumber(c *gin.Context) {
	number := c.Param("number")

	acc, err := h.accountService.GetAccountByNumber(c.Request.Context(), number)
	if err != nil {
		if errors.Is(err, account.ErrAccountNotFound{}) {
			RespondNotFound(c, "Account not found")
			return
		}
		h.logger.Error("Failed to get account", "number", number, "error", err)
		RespondInternalError(c)
		return
	}

	RespondOK(c, mapAccountToResponse(acc))
}

// mapAccountToResponse maps an account entity to an account response DTO
func mapAccountToResponse(acc *account.Account) AccountResponse {
	return AccountResponse{
		ID:        acc.ID.String(),
		Number:    acc.Number,
		OwnerName: acc.OwnerName,
		Balance:   acc.Balance,
		CreatedAt: acc.CreatedAt.Format(time.RFC3339),
		UpdatedAt: acc.UpdatedAt.Format(time.RFC3339),
	}
}
