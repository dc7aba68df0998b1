package banks

import (
	"context"
	"time"

	"github.com/piresc/duespay/internal/pkg/models"
)

// BankUC defines the interface for bank directory business logic
// go:generate mockgen -destination=mocks/mock_banks.go -package=mocks github.com/piresc/duespay/services/banks BankUC,BankRepo,DirectoryGW
type BankUC interface {
	ListBanks(ctx context.Context) (*models.BankList, error)
	ResolveAccount(ctx context.Context, req models.ResolveAccountRequest) (*models.ResolvedAccount, error)
}

// BankRepo caches the bank directory and guards its refresh across instances
type BankRepo interface {
	GetBankList(ctx context.Context) (*models.BankList, error)
	SetBankList(ctx context.Context, list *models.BankList, ttl time.Duration) error
	AcquireRefreshLock(ctx context.Context, token string, ttl time.Duration) (bool, error)
	ReleaseRefreshLock(ctx context.Context, token string) error
}

// DirectoryGW is the upstream bank directory
type DirectoryGW interface {
	FetchBanks(ctx context.Context) ([]models.Bank, error)
	ResolveAccount(ctx context.Context, accountNumber, bankCode string) (*models.ResolvedAccount, error)
}
