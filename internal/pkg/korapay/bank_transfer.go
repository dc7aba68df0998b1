package korapay

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/piresc/duespay/internal/pkg/logger"
	"github.com/piresc/duespay/internal/pkg/models"
	"github.com/piresc/duespay/internal/pkg/money"
	"github.com/piresc/duespay/internal/utils"
	"github.com/shopspring/decimal"
)

// BankTransferRequest asks for a dynamic virtual account
type BankTransferRequest struct {
	Amount            decimal.Decimal
	Currency          string
	Reference         string
	Customer          models.CustomerInfo
	NotificationURL   string
	AccountName       string
	Narration         string
	Metadata          *Metadata
	MerchantBearsCost bool
}

type bankTransferPayload struct {
	Reference         string              `json:"reference"`
	Amount            interface{}         `json:"amount"`
	Currency          string              `json:"currency"`
	Customer          models.CustomerInfo `json:"customer"`
	MerchantBearsCost bool                `json:"merchant_bears_cost"`
	NotificationURL   string              `json:"notification_url,omitempty"`
	AccountName       string              `json:"account_name,omitempty"`
	Narration         string              `json:"narration,omitempty"`
	Metadata          *Metadata           `json:"metadata,omitempty"`
}

// BankTransferResponse is the virtual account the payer should transfer into
type BankTransferResponse struct {
	Reference   string
	Status      string
	Narration   string
	BankAccount models.VirtualAccount
	Raw         json.RawMessage
}

// InitializeBankTransfer issues a dynamic virtual account. Korapay accepts
// at most five metadata keys, so txn_ref is kept and extra keys are dropped.
func (c *Client) InitializeBankTransfer(ctx context.Context, req BankTransferRequest) (*BankTransferResponse, error) {
	payload := bankTransferPayload{
		Reference:         req.Reference,
		Amount:            money.Number(req.Amount),
		Currency:          c.currency(req.Currency),
		Customer:          c.normalizeCustomer(req.Customer),
		MerchantBearsCost: req.MerchantBearsCost,
		NotificationURL:   req.NotificationURL,
		AccountName:       req.AccountName,
		Narration:         utils.Truncate(req.Narration, maxNarrationLen),
		Metadata:          req.Metadata.withReference(req.Reference).limit(bankTransferMaxKeys, bankTransferMaxKeyLen),
	}

	logger.InfoCtx(ctx, "Initializing Korapay bank transfer",
		logger.String("reference", req.Reference),
		logger.Any("amount", payload.Amount),
		logger.String("email", payload.Customer.Email),
		logger.Bool("merchant_bears_cost", req.MerchantBearsCost))

	resp, err := c.http.PostJSON(ctx, pathBankTransfer, payload)
	if err != nil {
		return nil, fmt.Errorf("korapay bank transfer: %w", err)
	}
	if !resp.OK() {
		logger.ErrorCtx(ctx, "Korapay bank transfer failed",
			logger.String("reference", req.Reference),
			logger.Int("status", resp.StatusCode),
			logger.String("body", string(resp.Body)))
		return nil, &HTTPError{Op: "bank transfer", StatusCode: resp.StatusCode, Body: resp.Body}
	}

	var body struct {
		Data struct {
			Reference   string `json:"reference"`
			Status      string `json:"status"`
			Narration   string `json:"narration"`
			BankAccount *struct {
				AccountName     string `json:"account_name"`
				AccountNumber   string `json:"account_number"`
				BankName        string `json:"bank_name"`
				BankCode        string `json:"bank_code"`
				ExpiryDateInUTC string `json:"expiry_date_in_utc"`
			} `json:"bank_account"`
		} `json:"data"`
	}
	if err := resp.Decode(&body); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMissingField, err)
	}
	account := body.Data.BankAccount
	if account == nil || account.AccountNumber == "" {
		return nil, fmt.Errorf("%w: bank_account", ErrMissingField)
	}

	va := models.VirtualAccount{
		AccountName:   account.AccountName,
		AccountNumber: account.AccountNumber,
		BankName:      account.BankName,
		BankCode:      account.BankCode,
	}
	if expiry, ok := parseExpiry(account.ExpiryDateInUTC); ok {
		va.ExpiryDateInUTC = expiry.UTC()
		if secs := int64(expiry.Sub(c.now()).Seconds()); secs > 0 {
			va.ExpirySeconds = secs
		}
	} else if account.ExpiryDateInUTC != "" {
		logger.WarnCtx(ctx, "Unparseable virtual account expiry",
			logger.String("reference", req.Reference),
			logger.String("expiry_date_in_utc", account.ExpiryDateInUTC))
	}

	logger.InfoCtx(ctx, "Korapay bank transfer initialized",
		logger.String("reference", req.Reference),
		logger.Int("status", resp.StatusCode))

	return &BankTransferResponse{
		Reference:   body.Data.Reference,
		Status:      body.Data.Status,
		Narration:   body.Data.Narration,
		BankAccount: va,
		Raw:         resp.Body,
	}, nil
}

var expiryLayouts = []string{time.RFC3339Nano, "2006-01-02 15:04:05", "2006-01-02T15:04:05"}

func parseExpiry(raw string) (time.Time, bool) {
	for _, layout := range expiryLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}
