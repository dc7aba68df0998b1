package usecase

import (
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/piresc/duespay/internal/pkg/models"
	"github.com/piresc/duespay/services/payments/mocks"
	"github.com/shopspring/decimal"
)

const testReference = "TX-1234-001-AB"

var fixedNow = time.Date(2026, 1, 15, 10, 0, 0, 0, time.UTC)

type fixture struct {
	uc       *PaymentUC
	cfg      *models.Config
	repo     *mocks.MockPaymentRepo
	provider *mocks.MockProviderGW
	events   *mocks.MockEventGW
	bulk     *mocks.MockBulkPayoutQueue
}

func testConfig() *models.Config {
	return &models.Config{
		App: models.AppConfig{Environment: "test"},
		Korapay: models.KorapayConfig{
			SecretKey:   "sk_test_secret",
			RedirectURL: "https://duespay.app/payment/callback",
			WebhookURL:  "https://api.duespay.app/api/v1/transactions/webhook",
		},
		Platform: models.PlatformConfig{
			Name:     "DuesPay",
			Email:    "payments@duespay.app",
			Currency: "NGN",
		},
		Payout: models.PayoutConfig{
			MaxRetries:    2,
			RetryBaseWait: time.Millisecond,
		},
	}
}

func newFixture(t *testing.T, cfg *models.Config) *fixture {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	if cfg == nil {
		cfg = testConfig()
	}
	f := &fixture{
		cfg:      cfg,
		repo:     mocks.NewMockPaymentRepo(ctrl),
		provider: mocks.NewMockProviderGW(ctrl),
		events:   mocks.NewMockEventGW(ctrl),
		bulk:     mocks.NewMockBulkPayoutQueue(ctrl),
	}
	f.uc = NewPaymentUC(cfg, f.repo, f.provider, f.events, f.bulk,
		WithClock(func() time.Time { return fixedNow }),
		WithReferenceGenerator(func() string { return testReference }))
	return f
}

func testAssociation() *models.Association {
	return &models.Association{
		ID:         7,
		Name:       "Computer Science Students Association",
		ShortName:  "CSSA",
		Type:       models.AssociationTypeDepartment,
		AdminEmail: "treasurer@cssa.example",
	}
}

func testBankAccount() *models.ReceiverBankAccount {
	return &models.ReceiverBankAccount{
		AssociationID: 7,
		BankName:      "Access Bank",
		BankCode:      "044",
		AccountName:   "CSSA Dues",
		AccountNumber: "0123456789",
		IsVerified:    true,
	}
}

func pendingTransaction(amount string) *models.Transaction {
	return &models.Transaction{
		ID:            42,
		ReferenceID:   testReference,
		PayerID:       11,
		AssociationID: 7,
		SessionID:     3,
		AmountPaid:    decimal.RequireFromString(amount),
		SubmittedAt:   fixedNow.Add(-time.Hour),
	}
}
