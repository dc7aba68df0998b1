package korapay

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"testing"

	"github.com/piresc/duespay/internal/pkg/models"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func payoutRequest() PayoutRequest {
	return PayoutRequest{
		Amount:        decimal.RequireFromString("1000.00"),
		BankCode:      "058",
		AccountNumber: "0123456789",
		Reference:     "TX-1234-001-AB-OUT",
		Narration:     "Dues payout TX-1234-001-AB",
		Customer:      models.CustomerInfo{Name: "Computer Science Association", Email: "admin@csa.edu"},
	}
}

func TestPayoutToBank_Success(t *testing.T) {
	f := newFakeKorapay(t, fakeReply{status: http.StatusOK, body: `{"status":true,"data":{"status":"processing"}}`})

	res, err := newTestClient(f, "production").PayoutToBank(context.Background(), payoutRequest())

	require.NoError(t, err)
	assert.False(t, res.Duplicate)
	assert.Equal(t, "/transactions/disburse", f.calls()[0].Path)

	payload := f.lastPayload(t)
	assert.Equal(t, "TX-1234-001-AB-OUT", payload["reference"])
	dest := payload["destination"].(map[string]interface{})
	assert.Equal(t, "bank_account", dest["type"])
	assert.Equal(t, float64(1000), dest["amount"])
	assert.Equal(t, "NGN", dest["currency"])
	assert.Equal(t, map[string]interface{}{"bank": "058", "account": "0123456789"}, dest["bank_account"])
}

func TestPayoutToBank_DuplicateIsSuccess(t *testing.T) {
	f := newFakeKorapay(t,
		fakeReply{status: http.StatusCreated, body: `{"status":true}`},
		fakeReply{status: http.StatusBadRequest, body: `{"status":false,"message":"Duplicate payout reference"}`},
	)
	client := newTestClient(f, "production")

	first, err := client.PayoutToBank(context.Background(), payoutRequest())
	require.NoError(t, err)
	assert.False(t, first.Duplicate)

	second, err := client.PayoutToBank(context.Background(), payoutRequest())
	require.NoError(t, err)
	assert.True(t, second.Duplicate)
	assert.Contains(t, string(second.Body), "Duplicate")
	assert.Len(t, f.calls(), 2)
}

func TestIsDuplicateReference(t *testing.T) {
	assert.True(t, isDuplicateReference([]byte(`{"code":"DUPLICATE_REFERENCE"}`)))
	assert.True(t, isDuplicateReference([]byte(`{"message":"This Reference has already been used"}`)))
	assert.True(t, isDuplicateReference([]byte(`{"code":500,"message":"duplicate"}`)))
	assert.False(t, isDuplicateReference([]byte(`{"message":"insufficient balance"}`)))
	assert.False(t, isDuplicateReference([]byte(`<html>bad gateway</html>`)))
}

func TestPayoutToBank_HardFailure(t *testing.T) {
	f := newFakeKorapay(t, fakeReply{status: http.StatusBadRequest, body: `{"status":false,"message":"insufficient balance"}`})

	res, err := newTestClient(f, "production").PayoutToBank(context.Background(), payoutRequest())

	assert.Nil(t, res)
	var httpErr *HTTPError
	require.True(t, errors.As(err, &httpErr))
	assert.Equal(t, "payout", httpErr.Op)
}

func TestPayoutToBank_ValidationBeforeRequest(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*PayoutRequest)
		want   error
	}{
		{"zero amount", func(r *PayoutRequest) { r.Amount = decimal.Zero }, ErrInvalidAmount},
		{"negative amount", func(r *PayoutRequest) { r.Amount = decimal.NewFromInt(-5) }, ErrInvalidAmount},
		{"rounds to zero", func(r *PayoutRequest) { r.Amount = decimal.RequireFromString("0.004") }, ErrInvalidAmount},
		{"letters in bank code", func(r *PayoutRequest) { r.BankCode = "AB" }, ErrInvalidBankCode},
		{"short bank code", func(r *PayoutRequest) { r.BankCode = "05" }, ErrInvalidBankCode},
		{"short account", func(r *PayoutRequest) { r.AccountNumber = "12345" }, ErrInvalidAccountNumber},
		{"long account", func(r *PayoutRequest) { r.AccountNumber = "01234567890" }, ErrInvalidAccountNumber},
		{"non-digit account", func(r *PayoutRequest) { r.AccountNumber = "01234abc89" }, ErrInvalidAccountNumber},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFakeKorapay(t)
			req := payoutRequest()
			tt.mutate(&req)

			_, err := newTestClient(f, "production").PayoutToBank(context.Background(), req)

			assert.ErrorIs(t, err, tt.want)
			assert.True(t, IsValidationError(err))
			assert.Empty(t, f.calls())
		})
	}
}

func TestBuildPayout_TruncatesAndDefaults(t *testing.T) {
	c := NewClient(testConfig("http://unused", "production"), nil)
	req := payoutRequest()
	req.Reference = strings.Repeat("R", 50)
	req.Narration = strings.Repeat("N", 90)
	req.Customer = models.CustomerInfo{}
	req.Amount = decimal.RequireFromString("1000.50")
	req.BankCode = " 058 "

	payload, err := c.BuildPayout(req)

	require.NoError(t, err)
	assert.Len(t, payload.Reference, 40)
	assert.Len(t, payload.Destination.Narration, 80)
	assert.Equal(t, "058", payload.Destination.BankAccount.Bank)
	assert.Equal(t, 1000.5, payload.Destination.Amount)
	assert.Equal(t, "Association", payload.Destination.Customer.Name)
	assert.Equal(t, "finance@duespay.app", payload.Destination.Customer.Email)
}
