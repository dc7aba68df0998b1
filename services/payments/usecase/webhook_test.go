package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/piresc/duespay/internal/pkg/korapay"
	"github.com/piresc/duespay/internal/pkg/models"
	"github.com/piresc/duespay/internal/pkg/money"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func (f *fixture) sign(raw []byte) string {
	return korapay.NewVerifier(f.cfg.Korapay.SigningSecret()).Sign(raw)
}

func (f *fixture) deliver(raw string) models.WebhookResult {
	body := []byte(raw)
	return f.uc.HandleWebhook(context.Background(), body, f.sign(body))
}

const chargeSuccessBody = `{
	"event": "charge.success",
	"data": {
		"reference": "KPY-CA-9f8e7d",
		"amount": "1050.00",
		"status": "success",
		"metadata": {"txn_ref": "TX-1234-001-AB", "base_amount": "1000.00", "platform_fee": "50.00"}
	}
}`

func TestHandleWebhook_VerifiesAndPaysOut(t *testing.T) {
	f := newFixture(t, nil)
	tx := pendingTransaction("1000.00")

	f.repo.EXPECT().GetTransactionByReference(gomock.Any(), "KPY-CA-9f8e7d").Return(nil, models.NotFoundError("transaction"))
	f.repo.EXPECT().GetTransactionByReference(gomock.Any(), testReference).Return(tx, nil)
	f.repo.EXPECT().MarkVerified(gomock.Any(), int64(42), gomock.Any()).Return(true, nil)
	f.events.EXPECT().PublishTransactionVerified(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, ev models.TransactionEvent) error {
			assert.True(t, ev.IsVerified)
			assert.Equal(t, testReference, ev.ReferenceID)
			return nil
		})
	f.repo.EXPECT().GetReceiverBankAccount(gomock.Any(), int64(7)).Return(testBankAccount(), nil)
	f.repo.EXPECT().GetAssociation(gomock.Any(), int64(7)).Return(testAssociation(), nil)
	f.provider.EXPECT().PayoutToBank(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, req korapay.PayoutRequest) (*korapay.PayoutResult, error) {
			assert.Equal(t, "TX-1234-001-AB-OUT", req.Reference)
			assert.Equal(t, "1000.00", money.Format2DP(req.Amount))
			assert.Equal(t, "044", req.BankCode)
			assert.Equal(t, "0123456789", req.AccountNumber)
			assert.Equal(t, "Dues payout "+testReference, req.Narration)
			assert.Equal(t, "Computer Science Students Association", req.Customer.Name)
			return &korapay.PayoutResult{StatusCode: 200, Body: []byte(`{"status":true}`)}, nil
		})
	f.repo.EXPECT().RecordPayout(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, p *models.Payout) error {
			assert.Equal(t, models.PayoutSucceeded, p.Status)
			assert.Equal(t, testReference, p.TransactionReference)
			assert.Equal(t, "TX-1234-001-AB-OUT", p.Reference)
			return nil
		})

	result := f.deliver(chargeSuccessBody)
	require.NoError(t, f.uc.WaitForPayouts(context.Background()))

	assert.Equal(t, models.WebhookVerified, result.Outcome)
	assert.Equal(t, testReference, result.ReferenceID)
	require.NotNil(t, result.AmountPaid)
	assert.Equal(t, "1000.00", money.Format2DP(*result.AmountPaid))
	require.NotNil(t, result.Payout)
	assert.Equal(t, models.PayoutScheduled, result.Payout.Status)
	assert.Equal(t, "TX-1234-001-AB-OUT", result.Payout.Reference)
	assert.Equal(t, "1000.00", money.Format2DP(result.Payout.Amount))
	assert.True(t, result.Outcome.Accepted())
}

func TestHandleWebhook_AcknowledgesBeforeSlowPayout(t *testing.T) {
	f := newFixture(t, nil)
	release := make(chan struct{})
	recorded := make(chan models.PayoutStatus, 1)

	f.repo.EXPECT().GetTransactionByReference(gomock.Any(), "KPY-CA-9f8e7d").Return(pendingTransaction("1000.00"), nil)
	f.repo.EXPECT().MarkVerified(gomock.Any(), int64(42), gomock.Any()).Return(true, nil)
	f.events.EXPECT().PublishTransactionVerified(gomock.Any(), gomock.Any()).Return(nil)
	f.repo.EXPECT().GetReceiverBankAccount(gomock.Any(), int64(7)).Return(testBankAccount(), nil)
	f.repo.EXPECT().GetAssociation(gomock.Any(), int64(7)).Return(testAssociation(), nil)
	f.provider.EXPECT().PayoutToBank(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, _ korapay.PayoutRequest) (*korapay.PayoutResult, error) {
			<-release
			assert.NoError(t, ctx.Err())
			return &korapay.PayoutResult{StatusCode: 200, Body: []byte(`{"status":true}`)}, nil
		})
	f.repo.EXPECT().RecordPayout(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, p *models.Payout) error {
			recorded <- p.Status
			return nil
		})

	ctx, cancel := context.WithCancel(context.Background())
	body := []byte(chargeSuccessBody)
	start := time.Now()
	result := f.uc.HandleWebhook(ctx, body, f.sign(body))
	cancel()

	assert.Less(t, time.Since(start), time.Second)
	assert.Equal(t, models.WebhookVerified, result.Outcome)
	require.NotNil(t, result.Payout)
	assert.Equal(t, models.PayoutScheduled, result.Payout.Status)

	waitCtx, waitCancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer waitCancel()
	assert.ErrorIs(t, f.uc.WaitForPayouts(waitCtx), context.DeadlineExceeded)
	assert.Empty(t, recorded)

	close(release)
	require.NoError(t, f.uc.WaitForPayouts(context.Background()))
	assert.Equal(t, models.PayoutSucceeded, <-recorded)
}

func TestHandleWebhook_Rejected(t *testing.T) {
	f := newFixture(t, nil)

	tests := []struct {
		name      string
		signature string
	}{
		{name: "missing signature", signature: ""},
		{name: "wrong signature", signature: "deadbeef"},
		{name: "signed with another secret", signature: korapay.NewVerifier("other").Sign([]byte(chargeSuccessBody))},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := f.uc.HandleWebhook(context.Background(), []byte(chargeSuccessBody), tt.signature)
			assert.Equal(t, models.WebhookRejected, result.Outcome)
			assert.False(t, result.Outcome.Accepted())
		})
	}
}

func TestHandleWebhook_Malformed(t *testing.T) {
	f := newFixture(t, nil)

	for _, body := range []string{`not json`, `[1,2,3]`, `null`, ``} {
		result := f.deliver(body)
		assert.Equal(t, models.WebhookMalformed, result.Outcome, body)
		assert.True(t, result.Outcome.Accepted())
	}
}

func TestHandleWebhook_IgnoresOtherEvents(t *testing.T) {
	f := newFixture(t, nil)

	result := f.deliver(`{"event":"charge.failed","data":{"reference":"TX-1234-001-AB"}}`)

	assert.Equal(t, models.WebhookIgnored, result.Outcome)
	assert.Equal(t, "charge.failed", result.Event)
}

func TestHandleWebhook_Unmatched(t *testing.T) {
	f := newFixture(t, nil)
	f.repo.EXPECT().GetTransactionByReference(gomock.Any(), "KPY-UNKNOWN").Return(nil, models.NotFoundError("transaction"))

	result := f.deliver(`{"event":"charge.success","data":{"reference":"KPY-UNKNOWN","amount":100}}`)

	assert.Equal(t, models.WebhookUnmatched, result.Outcome)
}

func TestHandleWebhook_UnmatchedWithoutReferences(t *testing.T) {
	f := newFixture(t, nil)

	result := f.deliver(`{"event":"charge.success","data":{"amount":100}}`)

	assert.Equal(t, models.WebhookUnmatched, result.Outcome)
}

func TestHandleWebhook_ReferencePriority(t *testing.T) {
	f := newFixture(t, nil)
	tx := pendingTransaction("1000.00")
	tx.IsVerified = true

	gomock.InOrder(
		f.repo.EXPECT().GetTransactionByReference(gomock.Any(), "A").Return(nil, models.NotFoundError("transaction")),
		f.repo.EXPECT().GetTransactionByReference(gomock.Any(), "B").Return(nil, errors.New("connection reset")),
		f.repo.EXPECT().GetTransactionByReference(gomock.Any(), "C").Return(nil, models.NotFoundError("transaction")),
		f.repo.EXPECT().GetTransactionByReference(gomock.Any(), testReference).Return(tx, nil),
	)

	result := f.deliver(`{"event":"charge.success","data":{
		"order_reference":"C",
		"reference":"B",
		"transaction_reference":"A",
		"metadata":{"reference":"A","order_ref":"D","txn_ref":"TX-1234-001-AB"}
	}}`)

	assert.Equal(t, models.WebhookAlreadyVerified, result.Outcome)
	assert.Equal(t, testReference, result.ReferenceID)
}

func TestCandidateReferences(t *testing.T) {
	payload, ok := decodeObject([]byte(`{"data":{"reference":12345,"metadata":{"txn_ref":"TX-1","transaction_reference":"12345","order_ref":""}}}`))
	require.True(t, ok)

	data := objectAt(payload, "data")
	refs := candidateReferences(data, objectAt(data, "metadata"))

	assert.Equal(t, []string{"12345", "TX-1"}, refs)
}

func TestHandleWebhook_AlreadyVerifiedIsIdempotent(t *testing.T) {
	f := newFixture(t, nil)
	tx := pendingTransaction("1000.00")
	tx.IsVerified = true

	f.repo.EXPECT().GetTransactionByReference(gomock.Any(), "KPY-CA-9f8e7d").Return(nil, models.NotFoundError("transaction")).Times(2)
	f.repo.EXPECT().GetTransactionByReference(gomock.Any(), testReference).Return(tx, nil).Times(2)

	first := f.deliver(chargeSuccessBody)
	second := f.deliver(chargeSuccessBody)

	assert.Equal(t, models.WebhookAlreadyVerified, first.Outcome)
	assert.Equal(t, first, second)
	assert.Nil(t, second.Payout)
}

func TestHandleWebhook_LostRace(t *testing.T) {
	f := newFixture(t, nil)

	f.repo.EXPECT().GetTransactionByReference(gomock.Any(), "KPY-CA-9f8e7d").Return(pendingTransaction("1000.00"), nil)
	f.repo.EXPECT().MarkVerified(gomock.Any(), int64(42), gomock.Any()).Return(false, nil)

	result := f.deliver(chargeSuccessBody)

	assert.Equal(t, models.WebhookLostRace, result.Outcome)
	assert.Nil(t, result.Payout)
}

func TestHandleWebhook_StorageFailureLeavesPending(t *testing.T) {
	f := newFixture(t, nil)

	f.repo.EXPECT().GetTransactionByReference(gomock.Any(), "KPY-CA-9f8e7d").Return(pendingTransaction("1000.00"), nil)
	f.repo.EXPECT().MarkVerified(gomock.Any(), int64(42), gomock.Any()).Return(false, errors.New("deadlock detected"))

	result := f.deliver(chargeSuccessBody)

	assert.Equal(t, models.WebhookFailed, result.Outcome)
	assert.True(t, result.Outcome.Accepted())
}

func TestHandleWebhook_DerivesBaseAmountFromFee(t *testing.T) {
	f := newFixture(t, nil)
	f.repo.EXPECT().GetTransactionByReference(gomock.Any(), testReference).Return(pendingTransaction("900.00"), nil)
	f.repo.EXPECT().MarkVerified(gomock.Any(), int64(42), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ int64, amount decimal.Decimal) (bool, error) {
			assert.Equal(t, "1000.00", money.Format2DP(amount))
			return true, nil
		})
	f.events.EXPECT().PublishTransactionVerified(gomock.Any(), gomock.Any()).Return(errors.New("nsq down"))
	f.repo.EXPECT().GetReceiverBankAccount(gomock.Any(), int64(7)).Return(nil, models.NotFoundError("bank account"))
	f.repo.EXPECT().RecordPayout(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, p *models.Payout) error {
			assert.Equal(t, models.PayoutSkipped, p.Status)
			assert.Equal(t, "1000.00", money.Format2DP(p.Amount))
			return nil
		})

	result := f.deliver(`{"event":"charge.success","data":{"amount":1050.5,"metadata":{"txn_ref":"TX-1234-001-AB","platform_fee":"50.50"}}}`)
	require.NoError(t, f.uc.WaitForPayouts(context.Background()))

	assert.Equal(t, models.WebhookVerified, result.Outcome)
	require.NotNil(t, result.AmountPaid)
	assert.Equal(t, "1000.00", money.Format2DP(*result.AmountPaid))
	require.NotNil(t, result.Payout)
	assert.Equal(t, models.PayoutScheduled, result.Payout.Status)
	assert.Equal(t, "1000.00", money.Format2DP(result.Payout.Amount))
}

func TestDeriveBaseAmount(t *testing.T) {
	tests := []struct {
		name   string
		body   string
		want   string
		wantOK bool
	}{
		{name: "explicit base", body: `{"amount":"1050","metadata":{"base_amount":"1000"}}`, want: "1000.00", wantOK: true},
		{name: "amount minus metadata fee", body: `{"amount":1050,"metadata":{"platform_fee":"50"}}`, want: "1000.00", wantOK: true},
		{name: "amount minus data fee", body: `{"amount":"1050","platform_fee":50,"metadata":{}}`, want: "1000.00", wantOK: true},
		{name: "metadata amount", body: `{"metadata":{"amount":"525.25","platform_fee":"25.25"}}`, want: "500.00", wantOK: true},
		{name: "no fee", body: `{"amount":"1050"}`, wantOK: false},
		{name: "unparseable", body: `{"amount":"abc","platform_fee":"1"}`, wantOK: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data, ok := decodeObject([]byte(tt.body))
			require.True(t, ok)

			got, ok := deriveBaseAmount(data, objectAt(data, "metadata"))

			assert.Equal(t, tt.wantOK, ok)
			if tt.wantOK {
				assert.Equal(t, tt.want, money.Format2DP(got))
			}
		})
	}
}
