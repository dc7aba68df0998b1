package http

import (
	"context"
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/piresc/duespay/internal/pkg/circuitbreaker"
	"github.com/piresc/duespay/internal/pkg/logger"
	"github.com/piresc/duespay/internal/pkg/models"
	"github.com/piresc/duespay/internal/utils"
	"github.com/piresc/duespay/services/banks"
)

// BankHandler serves the bank directory
type BankHandler struct {
	bankUC banks.BankUC
}

// NewBankHandler creates a new bank HTTP handler
func NewBankHandler(bankUC banks.BankUC) *BankHandler {
	return &BankHandler{
		bankUC: bankUC,
	}
}

// ListBanks returns the bank directory
func (h *BankHandler) ListBanks(c echo.Context) error {
	list, err := h.bankUC.ListBanks(c.Request().Context())
	if err != nil {
		logger.ErrorCtx(c.Request().Context(), "List banks failed", logger.Err(err))
		return utils.InternalServerErrorResponse(c, "Failed to load banks")
	}

	return utils.SuccessResponse(c, http.StatusOK, "Banks retrieved", list)
}

// ResolveAccount returns the holder name of an account
func (h *BankHandler) ResolveAccount(c echo.Context) error {
	var req models.ResolveAccountRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid query parameters")
	}
	if err := c.Validate(&req); err != nil {
		return utils.BadRequestResponse(c, err.Error())
	}

	ctx := c.Request().Context()
	account, err := h.bankUC.ResolveAccount(ctx, req)
	if err != nil {
		switch {
		case errors.Is(err, models.ErrValidation):
			return utils.BadRequestResponse(c, err.Error())
		case errors.Is(err, models.ErrNotFound):
			return utils.NotFoundResponse(c, "Account could not be resolved")
		case errors.Is(err, models.ErrUpstream),
			errors.Is(err, circuitbreaker.ErrCircuitBreakerOpen),
			errors.Is(err, context.DeadlineExceeded):
			return utils.BadGatewayResponse(c, "Bank directory unavailable, please try again")
		}
		logger.ErrorCtx(ctx, "Resolve account failed", logger.Err(err))
		return utils.InternalServerErrorResponse(c, "")
	}

	return utils.SuccessResponse(c, http.StatusOK, "Account resolved", account)
}
