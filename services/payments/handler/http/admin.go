package http

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/piresc/duespay/internal/pkg/logger"
	"github.com/piresc/duespay/internal/pkg/middleware"
	"github.com/piresc/duespay/internal/pkg/models"
	"github.com/piresc/duespay/internal/utils"
	"github.com/piresc/duespay/services/payments"
	"github.com/shopspring/decimal"
)

// AdminHandler serves association administrators
type AdminHandler struct {
	paymentUC payments.PaymentUC
}

// NewAdminHandler creates a new admin HTTP handler
func NewAdminHandler(paymentUC payments.PaymentUC) *AdminHandler {
	return &AdminHandler{
		paymentUC: paymentUC,
	}
}

// ManualPayoutRequest is the body of a manual payout retry
type ManualPayoutRequest struct {
	Amount          *decimal.Decimal `json:"amount"`
	PayoutReference string           `json:"payout_reference" validate:"omitempty,max=40"`
	Unique          bool             `json:"unique"`
	DryRun          bool             `json:"dry_run"`
}

// ListTransactions lists the admin's association transactions.
// Query: status=verified|unverified, search, page, page_size.
func (h *AdminHandler) ListTransactions(c echo.Context) error {
	associationID, ok := middleware.AssociationID(c)
	if !ok {
		return utils.ForbiddenResponse(c, "Token is not scoped to an association")
	}

	filter := models.TransactionFilter{AssociationID: associationID}
	err := echo.QueryParamsBinder(c).
		String("search", &filter.Search).
		Int("page", &filter.Page).
		Int("page_size", &filter.PageSize).
		BindError()
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid query parameters")
	}

	switch c.QueryParam("status") {
	case "":
	case "verified":
		filter.State = models.TransactionVerified
	case "unverified", "pending":
		filter.State = models.TransactionPending
	default:
		return utils.BadRequestResponse(c, "status must be verified or unverified")
	}

	list, err := h.paymentUC.ListTransactions(c.Request().Context(), filter)
	if err != nil {
		return errorResponse(c, err, "List transactions")
	}

	return c.JSON(http.StatusOK, utils.Response{
		Success: true,
		Message: "Transactions retrieved",
		Data:    list.Results,
		Meta: map[string]interface{}{
			"page":               list.Page,
			"page_size":          filter.Limit(),
			"count":              list.Meta.Count,
			"total_collections":  list.Meta.TotalCollections,
			"completed_payments": list.Meta.CompletedPayments,
			"pending_payments":   list.Meta.PendingPayments,
		},
	})
}

// ManualPayout re-runs the payout of one of the admin's verified transactions
func (h *AdminHandler) ManualPayout(c echo.Context) error {
	associationID, ok := middleware.AssociationID(c)
	if !ok {
		return utils.ForbiddenResponse(c, "Token is not scoped to an association")
	}

	var body ManualPayoutRequest
	if c.Request().ContentLength != 0 {
		if err := c.Bind(&body); err != nil {
			return utils.BadRequestResponse(c, "Invalid request body")
		}
	}
	if err := c.Validate(&body); err != nil {
		return errorResponse(c, err, "Manual payout")
	}
	if body.Amount != nil && !body.Amount.IsPositive() {
		return utils.BadRequestResponse(c, "amount must be greater than zero")
	}

	result, err := h.paymentUC.ManualPayout(c.Request().Context(), models.ManualPayoutRequest{
		Reference:       c.Param("reference"),
		AssociationID:   associationID,
		Amount:          body.Amount,
		PayoutReference: body.PayoutReference,
		Unique:          body.Unique,
		DryRun:          body.DryRun,
	})
	if err != nil {
		return errorResponse(c, err, "Manual payout")
	}

	logger.InfoCtx(c.Request().Context(), "Manual payout requested",
		logger.String("reference", result.TransactionReference),
		logger.String("payout_reference", result.PayoutReference),
		logger.Bool("dry_run", result.DryRun))

	return utils.SuccessResponse(c, http.StatusOK, "Payout processed", result)
}
