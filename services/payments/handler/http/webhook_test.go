package http

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/piresc/duespay/internal/pkg/korapay"
	"github.com/piresc/duespay/internal/pkg/models"
	"github.com/piresc/duespay/internal/pkg/money"
	"github.com/piresc/duespay/services/payments/mocks"
	"github.com/piresc/duespay/services/payments/usecase"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const webhookSecret = "whsec_test"

func postWebhook(t *testing.T, h *WebhookHandler, body, signature string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/api/v1/transactions/webhook", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	if signature != "" {
		req.Header.Set("x-korapay-signature", signature)
	}
	rec := httptest.NewRecorder()
	require.NoError(t, h.HandleKorapay(newEcho().NewContext(req, rec)))
	return rec
}

func webhookStatus(t *testing.T, rec *httptest.ResponseRecorder) models.WebhookOutcome {
	var resp webhookResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	return resp.Status
}

func TestHandleKorapay_StatusCodes(t *testing.T) {
	tests := []struct {
		outcome models.WebhookOutcome
		status  int
	}{
		{models.WebhookRejected, http.StatusForbidden},
		{models.WebhookMalformed, http.StatusOK},
		{models.WebhookIgnored, http.StatusOK},
		{models.WebhookUnmatched, http.StatusOK},
		{models.WebhookAlreadyVerified, http.StatusOK},
		{models.WebhookLostRace, http.StatusOK},
		{models.WebhookFailed, http.StatusOK},
		{models.WebhookVerified, http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(string(tt.outcome), func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			body := `{"event":"charge.success"}`
			mockUC := mocks.NewMockPaymentUC(ctrl)
			mockUC.EXPECT().HandleWebhook(gomock.Any(), []byte(body), "sig").
				Return(models.WebhookResult{Outcome: tt.outcome})

			rec := postWebhook(t, NewWebhookHandler(mockUC), body, "sig")

			assert.Equal(t, tt.status, rec.Code)
			assert.Equal(t, tt.outcome, webhookStatus(t, rec))
		})
	}
}

// TestHandleKorapay_EndToEnd drives a signed charge.success delivery through
// the real reconciliation engine down to the payout call.
func TestHandleKorapay_EndToEnd(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	cfg := &models.Config{
		Korapay:  models.KorapayConfig{SecretKey: "sk_test", WebhookSecret: webhookSecret},
		Platform: models.PlatformConfig{Name: "DuesPay", Currency: "NGN"},
		Payout:   models.PayoutConfig{MaxRetries: 1, RetryBaseWait: time.Millisecond},
	}
	repo := mocks.NewMockPaymentRepo(ctrl)
	provider := mocks.NewMockProviderGW(ctrl)
	events := mocks.NewMockEventGW(ctrl)
	bulk := mocks.NewMockBulkPayoutQueue(ctrl)
	uc := usecase.NewPaymentUC(cfg, repo, provider, events, bulk)
	h := NewWebhookHandler(uc)

	pending := &models.Transaction{
		ID:            42,
		ReferenceID:   "TX-1234-001-AB",
		AssociationID: 7,
		AmountPaid:    decimal.RequireFromString("1000.00"),
	}
	verified := *pending
	verified.IsVerified = true

	gomock.InOrder(
		repo.EXPECT().GetTransactionByReference(gomock.Any(), "TX-1234-001-AB").Return(pending, nil),
		repo.EXPECT().MarkVerified(gomock.Any(), int64(42), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ int64, amount decimal.Decimal) (bool, error) {
				assert.Equal(t, "1000.00", money.Format2DP(amount))
				return true, nil
			}),
		repo.EXPECT().GetTransactionByReference(gomock.Any(), "TX-1234-001-AB").Return(&verified, nil),
	)
	events.EXPECT().PublishTransactionVerified(gomock.Any(), gomock.Any()).Return(nil)
	repo.EXPECT().GetReceiverBankAccount(gomock.Any(), int64(7)).Return(&models.ReceiverBankAccount{
		AssociationID: 7, BankCode: "058", AccountNumber: "0123456789",
	}, nil)
	repo.EXPECT().GetAssociation(gomock.Any(), int64(7)).Return(&models.Association{
		ID: 7, Name: "Engineering Society", Type: models.AssociationTypeFaculty,
	}, nil)
	provider.EXPECT().PayoutToBank(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, req korapay.PayoutRequest) (*korapay.PayoutResult, error) {
			assert.NoError(t, ctx.Err())
			assert.Equal(t, "TX-1234-001-AB-OUT", req.Reference)
			assert.Equal(t, "1000.00", money.Format2DP(req.Amount))
			assert.Equal(t, "058", req.BankCode)
			assert.Equal(t, "0123456789", req.AccountNumber)
			return &korapay.PayoutResult{StatusCode: 200, Body: []byte(`{"status":true}`)}, nil
		})
	repo.EXPECT().RecordPayout(gomock.Any(), gomock.Any()).Return(nil)

	body := `{"event":"charge.success","data":{"reference":"TX-1234-001-AB","amount":"1100.00","metadata":{"base_amount":"1000.00","platform_fee":"100.00"}}}`
	signature := korapay.NewVerifier(webhookSecret).Sign([]byte(body))

	first := postWebhook(t, h, body, signature)
	assert.Equal(t, http.StatusOK, first.Code)
	assert.Equal(t, models.WebhookVerified, webhookStatus(t, first))
	require.NoError(t, uc.WaitForPayouts(context.Background()))

	replay := postWebhook(t, h, body, signature)
	assert.Equal(t, http.StatusOK, replay.Code)
	assert.Equal(t, models.WebhookAlreadyVerified, webhookStatus(t, replay))

	tampered := strings.Replace(body, "1100.00", "9100.00", 1)
	forged := postWebhook(t, h, tampered, signature)
	assert.Equal(t, http.StatusForbidden, forged.Code)
	assert.Equal(t, models.WebhookRejected, webhookStatus(t, forged))

	missing := postWebhook(t, h, body, "")
	assert.Equal(t, http.StatusForbidden, missing.Code)
}
