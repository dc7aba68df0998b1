package korapay

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/piresc/duespay/internal/pkg/logger"
	"github.com/piresc/duespay/internal/pkg/models"
	"github.com/piresc/duespay/internal/pkg/money"
	"github.com/piresc/duespay/internal/utils"
	"github.com/shopspring/decimal"
)

const (
	maxNarrationLen = 80
	maxReferenceLen = 40

	defaultPayoutCustomerName  = "Association"
	defaultPayoutCustomerEmail = "finance@duespay.app"
)

// PayoutRequest disburses to a Nigerian bank account
type PayoutRequest struct {
	Amount        decimal.Decimal
	BankCode      string
	AccountNumber string
	Reference     string
	Narration     string
	Customer      models.CustomerInfo
}

// PayoutPayload is the body sent to the disburse endpoint
type PayoutPayload struct {
	Reference   string            `json:"reference"`
	Destination PayoutDestination `json:"destination"`
}

// PayoutDestination describes where the money goes
type PayoutDestination struct {
	Type        string              `json:"type"`
	Amount      interface{}         `json:"amount"`
	Currency    string              `json:"currency"`
	Narration   string              `json:"narration"`
	BankAccount PayoutBankAccount   `json:"bank_account"`
	Customer    models.CustomerInfo `json:"customer"`
}

// PayoutBankAccount is the destination account
type PayoutBankAccount struct {
	Bank    string `json:"bank"`
	Account string `json:"account"`
}

// PayoutResult is a payout Korapay accepted. Duplicate means it had already
// accepted this reference and nothing new was disbursed.
type PayoutResult struct {
	Duplicate  bool
	StatusCode int
	Body       json.RawMessage
}

// BuildPayout validates req and returns the wire payload. No request is sent.
func (c *Client) BuildPayout(req PayoutRequest) (*PayoutPayload, error) {
	amount := money.Number(req.Amount)
	if !req.Amount.RoundBank(2).IsPositive() {
		return nil, fmt.Errorf("%w: %s", ErrInvalidAmount, req.Amount.String())
	}

	bank := strings.TrimSpace(req.BankCode)
	account := strings.TrimSpace(req.AccountNumber)
	if !utils.IsDigits(bank) || len(bank) < 3 {
		return nil, fmt.Errorf("%w: %q", ErrInvalidBankCode, bank)
	}
	if !utils.IsDigits(account) || len(account) != 10 {
		return nil, fmt.Errorf("%w: %q", ErrInvalidAccountNumber, utils.MaskAccountNumber(account))
	}

	name := req.Customer.Name
	if name == "" {
		name = defaultPayoutCustomerName
	}
	email := req.Customer.Email
	if email == "" {
		email = defaultPayoutCustomerEmail
	}

	return &PayoutPayload{
		Reference: utils.Truncate(req.Reference, maxReferenceLen),
		Destination: PayoutDestination{
			Type:        "bank_account",
			Amount:      amount,
			Currency:    c.currency(""),
			Narration:   utils.Truncate(req.Narration, maxNarrationLen),
			BankAccount: PayoutBankAccount{Bank: bank, Account: account},
			Customer:    models.CustomerInfo{Name: SanitizeCustomerName(name), Email: email},
		},
	}, nil
}

// PayoutToBank disburses req. Repeating a reference is safe: a duplicate
// reference reply from Korapay is returned as a result, not an error.
func (c *Client) PayoutToBank(ctx context.Context, req PayoutRequest) (*PayoutResult, error) {
	payload, err := c.BuildPayout(req)
	if err != nil {
		logger.ErrorCtx(ctx, "Payout validation failed",
			logger.String("reference", req.Reference),
			logger.Err(err))
		return nil, err
	}

	logger.InfoCtx(ctx, "Sending Korapay payout",
		logger.String("reference", payload.Reference),
		logger.Any("amount", payload.Destination.Amount),
		logger.String("bank_code", payload.Destination.BankAccount.Bank),
		logger.String("account", utils.MaskAccountNumber(payload.Destination.BankAccount.Account)))

	resp, err := c.http.PostJSON(ctx, pathDisburse, payload)
	if err != nil {
		return nil, fmt.Errorf("korapay payout: %w", err)
	}

	if resp.StatusCode == http.StatusOK || resp.StatusCode == http.StatusCreated {
		logger.InfoCtx(ctx, "Korapay payout accepted",
			logger.String("reference", payload.Reference),
			logger.String("provider_response", string(resp.Body)))
		return &PayoutResult{StatusCode: resp.StatusCode, Body: resp.Body}, nil
	}

	if isDuplicateReference(resp.Body) {
		logger.InfoCtx(ctx, "Korapay payout reference already used",
			logger.String("reference", payload.Reference),
			logger.Int("status", resp.StatusCode),
			logger.String("provider_response", string(resp.Body)))
		return &PayoutResult{Duplicate: true, StatusCode: resp.StatusCode, Body: resp.Body}, nil
	}

	logger.ErrorCtx(ctx, "Korapay payout failed",
		logger.String("reference", payload.Reference),
		logger.Int("status", resp.StatusCode),
		logger.String("provider_response", string(resp.Body)))
	return nil, &HTTPError{Op: "payout", StatusCode: resp.StatusCode, Body: resp.Body}
}

func isDuplicateReference(body []byte) bool {
	var reply struct {
		Code    interface{} `json:"code"`
		Message interface{} `json:"message"`
	}
	if err := json.Unmarshal(body, &reply); err != nil {
		return false
	}
	code, _ := reply.Code.(string)
	msg, _ := reply.Message.(string)
	code = strings.ToLower(code)
	msg = strings.ToLower(msg)
	return strings.Contains(code, "duplicate") ||
		strings.Contains(msg, "duplicate") ||
		strings.Contains(msg, "reference has already been used")
}
