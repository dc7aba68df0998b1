package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/piresc/duespay/internal/pkg/logger"
	"github.com/piresc/duespay/internal/pkg/models"
	"github.com/piresc/duespay/services/banks"
	"golang.org/x/sync/singleflight"
)

const (
	refreshKey          = "bank-list"
	defaultPollInterval = 100 * time.Millisecond
)

// FallbackBanks is served when the directory cannot be fetched
var FallbackBanks = []models.Bank{
	{Name: "Access Bank", Code: "044"},
	{Name: "Zenith Bank", Code: "057"},
	{Name: "GTBank", Code: "058"},
	{Name: "First Bank", Code: "011"},
	{Name: "UBA", Code: "033"},
	{Name: "Fidelity Bank", Code: "070"},
	{Name: "FCMB", Code: "214"},
	{Name: "Stanbic IBTC Bank", Code: "221"},
	{Name: "Sterling Bank", Code: "232"},
	{Name: "Unity Bank", Code: "215"},
	{Name: "Test Bank", Code: "100004"},
}

// BankUC implements banks.BankUC. Concurrent misses in one process share a
// single refresh; across processes a Redis lock picks one refresher and the
// others poll the cache.
type BankUC struct {
	cfg          models.BanksConfig
	repo         banks.BankRepo
	directory    banks.DirectoryGW
	group        singleflight.Group
	now          func() time.Time
	sleep        func(ctx context.Context, d time.Duration) error
	newToken     func() string
	pollInterval time.Duration
}

// Option customises a BankUC
type Option func(*BankUC)

// WithClock overrides the clock
func WithClock(now func() time.Time) Option {
	return func(uc *BankUC) { uc.now = now }
}

// WithSleeper overrides how the use case waits between cache polls
func WithSleeper(sleep func(ctx context.Context, d time.Duration) error) Option {
	return func(uc *BankUC) { uc.sleep = sleep }
}

// WithPollInterval overrides the wait between cache polls
func WithPollInterval(d time.Duration) Option {
	return func(uc *BankUC) { uc.pollInterval = d }
}

// NewBankUC creates a new bank directory use case
func NewBankUC(cfg *models.Config, repo banks.BankRepo, directory banks.DirectoryGW, opts ...Option) *BankUC {
	uc := &BankUC{
		cfg:          cfg.Banks,
		repo:         repo,
		directory:    directory,
		now:          time.Now,
		sleep:        sleepCtx,
		newToken:     uuid.NewString,
		pollInterval: defaultPollInterval,
	}
	for _, opt := range opts {
		opt(uc)
	}
	return uc
}

var _ banks.BankUC = (*BankUC)(nil)

// ListBanks returns the cached directory, refreshing it on a miss. Upstream
// failures degrade to FallbackBanks, which is never cached.
func (uc *BankUC) ListBanks(ctx context.Context) (*models.BankList, error) {
	if list, ok := uc.cached(ctx); ok {
		return list, nil
	}

	// The shared refresh must not die with the first caller's request
	refreshCtx := context.WithoutCancel(ctx)
	result := uc.group.DoChan(refreshKey, func() (interface{}, error) {
		return uc.refresh(refreshCtx), nil
	})

	select {
	case res := <-result:
		return res.Val.(*models.BankList), nil
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

// ResolveAccount returns the holder of an account
func (uc *BankUC) ResolveAccount(ctx context.Context, req models.ResolveAccountRequest) (*models.ResolvedAccount, error) {
	accountNumber := strings.TrimSpace(req.AccountNumber)
	bankCode := strings.TrimSpace(req.BankCode)
	if accountNumber == "" || bankCode == "" {
		return nil, models.ValidationError("account_number and bank_code are required")
	}

	account, err := uc.directory.ResolveAccount(ctx, accountNumber, bankCode)
	if err != nil {
		if !errors.Is(err, models.ErrNotFound) {
			logger.WarnCtx(ctx, "Account resolution failed",
				logger.String("bank_code", bankCode),
				logger.Err(err))
		}
		return nil, err
	}

	if account.BankName == "" {
		account.BankName = uc.bankName(ctx, bankCode)
	}
	return account, nil
}

// cached returns a fresh cache entry. Entries older than CacheTTL are
// ignored even if Redis still holds them.
func (uc *BankUC) cached(ctx context.Context) (*models.BankList, bool) {
	list, err := uc.repo.GetBankList(ctx)
	if err != nil {
		if !errors.Is(err, models.ErrNotFound) {
			logger.WarnCtx(ctx, "Bank list cache unavailable", logger.Err(err))
		}
		return nil, false
	}
	if uc.cfg.CacheTTL > 0 && uc.now().Sub(list.FetchedAt) >= uc.cfg.CacheTTL {
		return nil, false
	}
	return list, true
}

func (uc *BankUC) refresh(ctx context.Context) *models.BankList {
	token := uc.newToken()
	acquired, err := uc.repo.AcquireRefreshLock(ctx, token, uc.cfg.LockTTL)
	if err != nil {
		logger.WarnCtx(ctx, "Bank list lock unavailable, refreshing without it", logger.Err(err))
		return uc.fetch(ctx)
	}

	if !acquired {
		if list, ok := uc.waitForRefresh(ctx); ok {
			return list
		}
		logger.WarnCtx(ctx, "Bank list refresh by another instance timed out, forcing refresh",
			logger.Duration("waited", uc.cfg.LockWait))
		return uc.fetch(ctx)
	}

	defer func() {
		if err := uc.repo.ReleaseRefreshLock(ctx, token); err != nil {
			logger.WarnCtx(ctx, "Failed to release bank list lock", logger.Err(err))
		}
	}()

	// Another instance may have finished between our miss and the lock
	if list, ok := uc.cached(ctx); ok {
		return list
	}
	return uc.fetch(ctx)
}

// waitForRefresh polls the cache until it fills or LockWait elapses
func (uc *BankUC) waitForRefresh(ctx context.Context) (*models.BankList, bool) {
	deadline := uc.now().Add(uc.cfg.LockWait)
	for uc.now().Before(deadline) {
		if err := uc.sleep(ctx, uc.pollInterval); err != nil {
			return nil, false
		}
		if list, ok := uc.cached(ctx); ok {
			return list, true
		}
	}
	return nil, false
}

func (uc *BankUC) fetch(ctx context.Context) *models.BankList {
	fetched, err := uc.directory.FetchBanks(ctx)
	if err != nil {
		logger.ErrorCtx(ctx, "Failed to fetch bank list, serving fallback", logger.Err(err))
		return fallbackList(uc.now())
	}

	list := &models.BankList{
		Banks:     fetched,
		FetchedAt: uc.now().UTC(),
	}
	if err := uc.repo.SetBankList(ctx, list, uc.cfg.CacheTTL); err != nil {
		logger.WarnCtx(ctx, "Failed to cache bank list", logger.Err(err))
	}

	logger.InfoCtx(ctx, "Bank list refreshed", logger.Int("count", len(list.Banks)))
	return list
}

// bankName looks a code up in the directory, best effort
func (uc *BankUC) bankName(ctx context.Context, code string) string {
	list, err := uc.ListBanks(ctx)
	if err != nil {
		return ""
	}
	for _, bank := range list.Banks {
		if bank.Code == code {
			return bank.Name
		}
	}
	return ""
}

func fallbackList(now time.Time) *models.BankList {
	banks := make([]models.Bank, len(FallbackBanks))
	copy(banks, FallbackBanks)
	return &models.BankList{
		Banks:     banks,
		FetchedAt: now.UTC(),
		Fallback:  true,
	}
}

func sleepCtx(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-timer.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
