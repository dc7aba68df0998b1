package http

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/piresc/duespay/internal/pkg/logger"
	"github.com/piresc/duespay/internal/pkg/models"
	"github.com/piresc/duespay/internal/utils"
	"github.com/piresc/duespay/services/payments"
)

// PaymentHandler handles payer-facing payment requests
type PaymentHandler struct {
	paymentUC payments.PaymentUC
}

// NewPaymentHandler creates a new payment HTTP handler
func NewPaymentHandler(paymentUC payments.PaymentUC) *PaymentHandler {
	return &PaymentHandler{
		paymentUC: paymentUC,
	}
}

// InitiateBankTransfer issues a dynamic virtual account for the selected items
func (h *PaymentHandler) InitiateBankTransfer(c echo.Context) error {
	req, err := bindInitiate(c)
	if err != nil {
		return utils.BadRequestResponse(c, err.Error())
	}

	resp, err := h.paymentUC.InitiateBankTransfer(c.Request().Context(), req)
	if err != nil {
		return errorResponse(c, err, "Initiate bank transfer")
	}

	logger.InfoCtx(c.Request().Context(), "Bank transfer initiated",
		logger.String("reference", resp.ReferenceID),
		logger.Int64("association_id", req.AssociationID))

	return utils.SuccessResponse(c, http.StatusCreated, "Bank transfer initiated", resp)
}

// InitiateCheckout opens a hosted checkout for the selected items
func (h *PaymentHandler) InitiateCheckout(c echo.Context) error {
	req, err := bindInitiate(c)
	if err != nil {
		return utils.BadRequestResponse(c, err.Error())
	}

	resp, err := h.paymentUC.InitiateCheckout(c.Request().Context(), req)
	if err != nil {
		return errorResponse(c, err, "Initiate checkout")
	}

	logger.InfoCtx(c.Request().Context(), "Checkout initiated",
		logger.String("reference", resp.ReferenceID),
		logger.Int64("association_id", req.AssociationID))

	return utils.SuccessResponse(c, http.StatusCreated, "Checkout initiated", resp)
}

// GetPaymentStatus answers a payer polling for the outcome of a payment
func (h *PaymentHandler) GetPaymentStatus(c echo.Context) error {
	reference := c.Param("reference")
	if reference == "" {
		return utils.BadRequestResponse(c, "Reference is required")
	}

	status, err := h.paymentUC.GetPaymentStatus(c.Request().Context(), reference)
	if err != nil {
		return errorResponse(c, err, "Get payment status")
	}

	return utils.SuccessResponse(c, http.StatusOK, "Payment status retrieved", status)
}

func bindInitiate(c echo.Context) (models.InitiatePaymentRequest, error) {
	var req models.InitiatePaymentRequest
	if err := c.Bind(&req); err != nil {
		return req, models.ValidationError("invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return req, err
	}
	return req, nil
}
