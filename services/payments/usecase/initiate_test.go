package usecase

import (
	"context"
	"errors"
	"regexp"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/piresc/duespay/internal/pkg/korapay"
	"github.com/piresc/duespay/internal/pkg/models"
	"github.com/piresc/duespay/internal/pkg/money"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func initiateRequest() models.InitiatePaymentRequest {
	return models.InitiatePaymentRequest{
		PayerID:        11,
		AssociationID:  7,
		PaymentItemIDs: []int64{1, 2, 1},
	}
}

func (f *fixture) expectPendingCharge(t *testing.T) {
	f.repo.EXPECT().GetAssociation(gomock.Any(), int64(7)).Return(testAssociation(), nil)
	f.repo.EXPECT().GetPayer(gomock.Any(), int64(11)).Return(&models.Payer{
		ID:            11,
		AssociationID: 7,
		SessionID:     3,
		FirstName:     "Ada",
		LastName:      "Obi",
		Email:         "ada@student.example",
	}, nil)
	f.repo.EXPECT().GetCurrentSession(gomock.Any(), int64(7)).Return(&models.Session{ID: 3, AssociationID: 7, IsActive: true}, nil)
	f.repo.EXPECT().GetPaymentItems(gomock.Any(), []int64{1, 2}).Return([]models.PaymentItem{
		{ID: 1, AssociationID: 7, SessionID: 3, Title: "Dues", Amount: decimal.RequireFromString("600"), IsActive: true},
		{ID: 2, AssociationID: 7, SessionID: 3, Title: "Levy", Amount: decimal.RequireFromString("400"), IsActive: true},
	}, nil)
	f.repo.EXPECT().ReferenceExists(gomock.Any(), testReference).Return(false, nil)
	f.repo.EXPECT().CreateTransaction(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, tx *models.Transaction) error {
			assert.Equal(t, testReference, tx.ReferenceID)
			assert.Equal(t, "1000.00", money.Format2DP(tx.AmountPaid))
			assert.False(t, tx.IsVerified)
			assert.Equal(t, []int64{1, 2}, tx.PaymentItemIDs)
			assert.Equal(t, int64(3), tx.SessionID)
			tx.ID = 42
			return nil
		})
	f.events.EXPECT().PublishTransactionCreated(gomock.Any(), gomock.Any()).Return(nil)
}

func TestInitiateCheckout_Success(t *testing.T) {
	cfg := testConfig()
	cfg.Platform.FlatFee = decimal.RequireFromString("50")
	f := newFixture(t, cfg)
	f.expectPendingCharge(t)

	f.provider.EXPECT().InitializeCharge(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, req korapay.ChargeRequest) (*korapay.ChargeResponse, error) {
			assert.Equal(t, "1050.00", money.Format2DP(req.Amount))
			assert.Equal(t, testReference, req.Reference)
			assert.Equal(t, "https://duespay.app/payment/callback?reference="+testReference, req.RedirectURL)
			assert.Equal(t, "Ada Obi", req.Customer.Name)

			base, ok := req.Metadata.Get("base_amount")
			assert.True(t, ok)
			assert.Equal(t, "1000.00", base)
			fee, _ := req.Metadata.Get("platform_fee")
			assert.Equal(t, "50.00", fee)
			return &korapay.ChargeResponse{Reference: testReference, CheckoutURL: "https://checkout.korapay.com/abc"}, nil
		})

	resp, err := f.uc.InitiateCheckout(context.Background(), initiateRequest())

	require.NoError(t, err)
	assert.Equal(t, testReference, resp.ReferenceID)
	assert.Equal(t, "https://checkout.korapay.com/abc", resp.CheckoutURL)
	assert.Equal(t, "1000.00", money.Format2DP(resp.Amount))
	assert.Equal(t, "50.00", money.Format2DP(resp.PlatformFee))
	assert.Equal(t, "1050.00", money.Format2DP(resp.TotalPayable))
}

func TestInitiateCheckout_MissingRedirect(t *testing.T) {
	cfg := testConfig()
	cfg.Korapay.RedirectURL = ""
	f := newFixture(t, cfg)

	resp, err := f.uc.InitiateCheckout(context.Background(), initiateRequest())

	assert.Nil(t, resp)
	assert.True(t, errors.Is(err, models.ErrConfiguration))
}

func TestInitiateCheckout_InsecureRedirectStoresNothing(t *testing.T) {
	cfg := testConfig()
	cfg.App.Environment = "production"
	cfg.Korapay.RedirectURL = "http://duespay.app/payment/callback"
	f := newFixture(t, cfg)

	resp, err := f.uc.InitiateCheckout(context.Background(), initiateRequest())

	assert.Nil(t, resp)
	assert.ErrorIs(t, err, korapay.ErrInsecureRedirect)
}

func TestInitiateCheckout_PlainRedirectAllowedInDevelopment(t *testing.T) {
	cfg := testConfig()
	cfg.App.Environment = "local"
	cfg.Korapay.RedirectURL = "http://localhost:3000/callback"
	f := newFixture(t, cfg)
	f.expectPendingCharge(t)

	f.provider.EXPECT().InitializeCharge(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, req korapay.ChargeRequest) (*korapay.ChargeResponse, error) {
			assert.Equal(t, "http://localhost:3000/callback?reference="+testReference, req.RedirectURL)
			return &korapay.ChargeResponse{Reference: testReference, CheckoutURL: "https://checkout.korapay.com/abc"}, nil
		})

	resp, err := f.uc.InitiateCheckout(context.Background(), initiateRequest())

	require.NoError(t, err)
	assert.Equal(t, "https://checkout.korapay.com/abc", resp.CheckoutURL)
}

func TestInitiateCheckout_ProviderFailureKeepsPendingTransaction(t *testing.T) {
	f := newFixture(t, nil)
	f.expectPendingCharge(t)

	upstream := &korapay.HTTPError{Op: "charge initialize", StatusCode: 502}
	f.provider.EXPECT().InitializeCharge(gomock.Any(), gomock.Any()).Return(nil, upstream)

	resp, err := f.uc.InitiateCheckout(context.Background(), initiateRequest())

	assert.Nil(t, resp)
	assert.ErrorIs(t, err, upstream)
}

func TestInitiateBankTransfer_Success(t *testing.T) {
	f := newFixture(t, nil)
	f.expectPendingCharge(t)

	account := models.VirtualAccount{
		AccountName:   "DuesPay",
		AccountNumber: "9900112233",
		BankName:      "Wema Bank",
		BankCode:      "035",
		ExpirySeconds: 1800,
	}
	f.provider.EXPECT().InitializeBankTransfer(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, req korapay.BankTransferRequest) (*korapay.BankTransferResponse, error) {
			assert.Equal(t, "1000.00", money.Format2DP(req.Amount))
			assert.Equal(t, "DuesPay", req.AccountName)
			assert.Equal(t, "https://api.duespay.app/api/v1/transactions/webhook", req.NotificationURL)
			assert.Equal(t, "Computer Science Students Association dues "+testReference, req.Narration)
			return &korapay.BankTransferResponse{Reference: testReference, BankAccount: account}, nil
		})

	resp, err := f.uc.InitiateBankTransfer(context.Background(), initiateRequest())

	require.NoError(t, err)
	assert.Equal(t, testReference, resp.ReferenceID)
	assert.Equal(t, "NGN", resp.Currency)
	assert.Equal(t, account, resp.BankAccount)
	assert.Equal(t, "Ada Obi", resp.Customer.Name)
	assert.Equal(t, "0.00", money.Format2DP(resp.PlatformFee))
}

func TestInitiate_ValidationErrors(t *testing.T) {
	item := func(id int64, amount string, active bool) models.PaymentItem {
		return models.PaymentItem{ID: id, AssociationID: 7, SessionID: 3, Amount: decimal.RequireFromString(amount), IsActive: active}
	}

	tests := []struct {
		name  string
		items []models.PaymentItem
	}{
		{name: "unknown item", items: []models.PaymentItem{item(1, "600", true)}},
		{name: "inactive item", items: []models.PaymentItem{item(1, "600", true), item(2, "400", false)}},
		{name: "zero total", items: []models.PaymentItem{item(1, "0", true), item(2, "0", true)}},
		{name: "foreign session", items: []models.PaymentItem{item(1, "600", true), {ID: 2, AssociationID: 7, SessionID: 9, Amount: decimal.NewFromInt(1), IsActive: true}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t, nil)
			f.repo.EXPECT().GetAssociation(gomock.Any(), int64(7)).Return(testAssociation(), nil)
			f.repo.EXPECT().GetPayer(gomock.Any(), int64(11)).Return(&models.Payer{ID: 11, AssociationID: 7}, nil)
			f.repo.EXPECT().GetCurrentSession(gomock.Any(), int64(7)).Return(&models.Session{ID: 3, AssociationID: 7}, nil)
			f.repo.EXPECT().GetPaymentItems(gomock.Any(), []int64{1, 2}).Return(tt.items, nil)

			resp, err := f.uc.InitiateBankTransfer(context.Background(), initiateRequest())

			assert.Nil(t, resp)
			assert.ErrorIs(t, err, models.ErrValidation)
		})
	}
}

func TestInitiate_PayerFromOtherAssociation(t *testing.T) {
	f := newFixture(t, nil)
	f.repo.EXPECT().GetAssociation(gomock.Any(), int64(7)).Return(testAssociation(), nil)
	f.repo.EXPECT().GetPayer(gomock.Any(), int64(11)).Return(&models.Payer{ID: 11, AssociationID: 8}, nil)

	_, err := f.uc.InitiateBankTransfer(context.Background(), initiateRequest())

	assert.ErrorIs(t, err, models.ErrValidation)
}

func TestInitiate_ExplicitSessionMustBelongToAssociation(t *testing.T) {
	f := newFixture(t, nil)
	req := initiateRequest()
	req.SessionID = 5

	f.repo.EXPECT().GetAssociation(gomock.Any(), int64(7)).Return(testAssociation(), nil)
	f.repo.EXPECT().GetPayer(gomock.Any(), int64(11)).Return(&models.Payer{ID: 11, AssociationID: 7}, nil)
	f.repo.EXPECT().GetSession(gomock.Any(), int64(5)).Return(&models.Session{ID: 5, AssociationID: 99}, nil)

	_, err := f.uc.InitiateBankTransfer(context.Background(), req)

	assert.ErrorIs(t, err, models.ErrValidation)
}

func TestInitiate_EmptySelection(t *testing.T) {
	f := newFixture(t, nil)
	req := initiateRequest()
	req.PaymentItemIDs = nil

	_, err := f.uc.InitiateBankTransfer(context.Background(), req)

	assert.ErrorIs(t, err, models.ErrValidation)
}

func TestUniqueReference_RetriesCollisions(t *testing.T) {
	f := newFixture(t, nil)
	refs := []string{"TX-0000-000-AA", "TX-0000-000-AB"}
	f.uc.newRef = func() string {
		ref := refs[0]
		refs = refs[1:]
		return ref
	}
	gomock.InOrder(
		f.repo.EXPECT().ReferenceExists(gomock.Any(), "TX-0000-000-AA").Return(true, nil),
		f.repo.EXPECT().ReferenceExists(gomock.Any(), "TX-0000-000-AB").Return(false, nil),
	)

	ref, err := f.uc.uniqueReference(context.Background())

	require.NoError(t, err)
	assert.Equal(t, "TX-0000-000-AB", ref)
}

func TestUniqueReference_Exhausted(t *testing.T) {
	f := newFixture(t, nil)
	f.repo.EXPECT().ReferenceExists(gomock.Any(), testReference).Return(true, nil).Times(referenceAttempts)

	_, err := f.uc.uniqueReference(context.Background())

	assert.ErrorIs(t, err, errReferenceSpaceExhausted)
}

func TestGenerateReference_Format(t *testing.T) {
	pattern := regexp.MustCompile(`^TX-\d{4}-\d{3}-[A-Z]{2}$`)
	for i := 0; i < 50; i++ {
		assert.Regexp(t, pattern, GenerateReference())
	}
}

func TestWithReference(t *testing.T) {
	assert.Equal(t, "https://duespay.app/cb?reference=TX-1", withReference("https://duespay.app/cb", "TX-1"))
	assert.Equal(t, "https://duespay.app/cb?a=1&reference=TX-1", withReference("https://duespay.app/cb?a=1", "TX-1"))
}
