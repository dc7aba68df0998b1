package usecase

import (
	"sync"
	"time"

	"github.com/piresc/duespay/internal/pkg/korapay"
	"github.com/piresc/duespay/internal/pkg/models"
	"github.com/piresc/duespay/internal/pkg/money"
	"github.com/piresc/duespay/internal/pkg/retry"
	"github.com/piresc/duespay/services/payments"
)

// PaymentUC implements payments.PaymentUC: charge initiation, webhook
// reconciliation and payouts.
type PaymentUC struct {
	cfg       *models.Config
	repo      payments.PaymentRepo
	provider  payments.ProviderGW
	events    payments.EventGW
	bulkQueue payments.BulkPayoutQueue
	verifier  *korapay.Verifier
	fees      money.FeeSchedule
	payoutCfg retry.Config
	now       func() time.Time
	newRef    func() string

	payouts sync.WaitGroup
}

// Option customises a PaymentUC
type Option func(*PaymentUC)

// WithClock overrides the clock
func WithClock(now func() time.Time) Option {
	return func(uc *PaymentUC) { uc.now = now }
}

// WithReferenceGenerator overrides how merchant references are drawn
func WithReferenceGenerator(gen func() string) Option {
	return func(uc *PaymentUC) { uc.newRef = gen }
}

// NewPaymentUC creates a new payment use case
func NewPaymentUC(
	cfg *models.Config,
	repo payments.PaymentRepo,
	provider payments.ProviderGW,
	events payments.EventGW,
	bulkQueue payments.BulkPayoutQueue,
	opts ...Option,
) *PaymentUC {
	payoutCfg := retry.DefaultConfig("korapay.payout")
	payoutCfg.MaxRetries = cfg.Payout.MaxRetries
	if cfg.Payout.RetryBaseWait > 0 {
		payoutCfg.BaseDelay = cfg.Payout.RetryBaseWait
	}
	payoutCfg.MaxDelay = 10 * time.Second
	payoutCfg.IsRetryable = isRetryablePayoutError

	uc := &PaymentUC{
		cfg:       cfg,
		repo:      repo,
		provider:  provider,
		events:    events,
		bulkQueue: bulkQueue,
		verifier:  korapay.NewVerifier(cfg.Korapay.SigningSecret()),
		fees: money.FeeSchedule{
			Flat:    cfg.Platform.FlatFee,
			Percent: cfg.Platform.PercentFee,
		},
		payoutCfg: payoutCfg,
		now:       time.Now,
		newRef:    GenerateReference,
	}
	for _, opt := range opts {
		opt(uc)
	}
	return uc
}

var _ payments.PaymentUC = (*PaymentUC)(nil)
