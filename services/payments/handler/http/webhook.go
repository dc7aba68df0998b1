package http

import (
	"io"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/piresc/duespay/internal/pkg/korapay"
	"github.com/piresc/duespay/internal/pkg/logger"
	"github.com/piresc/duespay/internal/pkg/models"
	"github.com/piresc/duespay/services/payments"
)

// maxWebhookBody bounds how much of a delivery is read
const maxWebhookBody = 1 << 20

// WebhookHandler receives provider notifications
type WebhookHandler struct {
	paymentUC payments.PaymentUC
}

// NewWebhookHandler creates a new webhook HTTP handler
func NewWebhookHandler(paymentUC payments.PaymentUC) *WebhookHandler {
	return &WebhookHandler{
		paymentUC: paymentUC,
	}
}

type webhookResponse struct {
	Status models.WebhookOutcome `json:"status"`
}

// HandleKorapay reconciles one delivery. The raw body is passed through
// untouched because the signature covers its exact bytes. Only a bad
// signature is answered with 403; everything else is acknowledged.
func (h *WebhookHandler) HandleKorapay(c echo.Context) error {
	ctx := c.Request().Context()

	raw, err := io.ReadAll(io.LimitReader(c.Request().Body, maxWebhookBody))
	if err != nil {
		logger.WarnCtx(ctx, "Failed to read webhook body", logger.Err(err))
		raw = nil
	}

	signature := c.Request().Header.Get(korapay.SignatureHeader)
	result := h.paymentUC.HandleWebhook(ctx, raw, signature)

	logger.InfoCtx(ctx, "Webhook handled",
		logger.String("outcome", string(result.Outcome)),
		logger.String("event", result.Event),
		logger.String("reference", result.ReferenceID))

	status := http.StatusOK
	if !result.Outcome.Accepted() {
		status = http.StatusForbidden
	}
	return c.JSON(status, webhookResponse{Status: result.Outcome})
}
