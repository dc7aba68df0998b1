package korapay

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/piresc/duespay/internal/pkg/logger"
	"github.com/piresc/duespay/internal/pkg/models"
	"github.com/piresc/duespay/internal/pkg/money"
	"github.com/shopspring/decimal"
)

// ChargeRequest starts a hosted checkout
type ChargeRequest struct {
	Amount      decimal.Decimal
	Currency    string
	Reference   string
	Customer    models.CustomerInfo
	RedirectURL string
	Metadata    *Metadata
}

type chargePayload struct {
	Amount      string              `json:"amount"`
	Currency    string              `json:"currency"`
	Reference   string              `json:"reference"`
	RedirectURL string              `json:"redirect_url"`
	Customer    models.CustomerInfo `json:"customer"`
	Metadata    *Metadata           `json:"metadata"`
}

// ChargeResponse is the checkout Korapay created
type ChargeResponse struct {
	Reference   string
	CheckoutURL string
	Raw         json.RawMessage
}

// InitializeCharge creates a hosted checkout. The pending transaction must
// already be stored under req.Reference.
func (c *Client) InitializeCharge(ctx context.Context, req ChargeRequest) (*ChargeResponse, error) {
	if !strings.HasPrefix(req.RedirectURL, "https://") {
		if !c.development {
			return nil, fmt.Errorf("%w: %q", ErrInsecureRedirect, req.RedirectURL)
		}
		logger.DebugCtx(ctx, "Using non-HTTPS redirect_url in development",
			logger.String("redirect_url", req.RedirectURL))
	}

	payload := chargePayload{
		Amount:      money.Format2DP(req.Amount),
		Currency:    c.currency(req.Currency),
		Reference:   req.Reference,
		RedirectURL: req.RedirectURL,
		Customer:    c.normalizeCustomer(req.Customer),
		Metadata:    req.Metadata.withReference(req.Reference),
	}

	logger.InfoCtx(ctx, "Initializing Korapay charge",
		logger.String("reference", req.Reference),
		logger.String("amount", payload.Amount),
		logger.String("email", payload.Customer.Email))

	resp, err := c.http.PostJSON(ctx, pathChargeInitialize, payload)
	if err != nil {
		return nil, fmt.Errorf("korapay charge initialize: %w", err)
	}
	if !resp.OK() {
		logger.ErrorCtx(ctx, "Korapay charge initialize failed",
			logger.String("reference", req.Reference),
			logger.Int("status", resp.StatusCode),
			logger.String("body", string(resp.Body)))
		return nil, &HTTPError{Op: "charge initialize", StatusCode: resp.StatusCode, Body: resp.Body}
	}

	var body struct {
		Data struct {
			Reference   string `json:"reference"`
			CheckoutURL string `json:"checkout_url"`
		} `json:"data"`
	}
	if err := resp.Decode(&body); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMissingField, err)
	}
	if body.Data.CheckoutURL == "" {
		return nil, fmt.Errorf("%w: checkout_url", ErrMissingField)
	}

	logger.InfoCtx(ctx, "Korapay charge initialized",
		logger.String("reference", req.Reference),
		logger.Int("status", resp.StatusCode))

	return &ChargeResponse{
		Reference:   body.Data.Reference,
		CheckoutURL: body.Data.CheckoutURL,
		Raw:         resp.Body,
	}, nil
}
