package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/piresc/duespay/internal/pkg/constants"
	"github.com/piresc/duespay/internal/pkg/database"
	"github.com/piresc/duespay/internal/pkg/logger"
	"github.com/piresc/duespay/internal/pkg/models"
	"github.com/piresc/duespay/services/banks"
)

// releaseScript deletes the lock only while it still holds our token
var releaseScript = redis.NewScript(`
if redis.call("GET", KEYS[1]) == ARGV[1] then
	return redis.call("DEL", KEYS[1])
end
return 0
`)

// BankRepo implements banks.BankRepo on Redis
type BankRepo struct {
	cfg         *models.Config
	redisClient *database.RedisClient
}

// NewBankRepository creates a new bank directory cache
func NewBankRepository(cfg *models.Config, redisClient *database.RedisClient) *BankRepo {
	logger.Info("Initializing bank repository")
	return &BankRepo{
		cfg:         cfg,
		redisClient: redisClient,
	}
}

var _ banks.BankRepo = (*BankRepo)(nil)

// GetBankList returns the cached directory or models.ErrNotFound on a miss
func (r *BankRepo) GetBankList(ctx context.Context) (*models.BankList, error) {
	raw, err := r.redisClient.Get(ctx, constants.KeyBankList)
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, models.NotFoundError("bank list")
		}
		return nil, fmt.Errorf("failed to get bank list: %w", err)
	}

	var list models.BankList
	if err := json.Unmarshal([]byte(raw), &list); err != nil {
		return nil, fmt.Errorf("failed to unmarshal bank list: %w", err)
	}
	return &list, nil
}

// SetBankList stores the directory for ttl
func (r *BankRepo) SetBankList(ctx context.Context, list *models.BankList, ttl time.Duration) error {
	raw, err := json.Marshal(list)
	if err != nil {
		return fmt.Errorf("failed to marshal bank list: %w", err)
	}
	if err := r.redisClient.Set(ctx, constants.KeyBankList, raw, ttl); err != nil {
		return fmt.Errorf("failed to cache bank list: %w", err)
	}
	return nil
}

// AcquireRefreshLock takes the refresh lock with token. It reports false when
// another holder has it.
func (r *BankRepo) AcquireRefreshLock(ctx context.Context, token string, ttl time.Duration) (bool, error) {
	ok, err := r.redisClient.SetNX(ctx, constants.KeyBankListLock, token, ttl)
	if err != nil {
		return false, fmt.Errorf("failed to acquire refresh lock: %w", err)
	}
	return ok, nil
}

// ReleaseRefreshLock drops the lock if token still owns it
func (r *BankRepo) ReleaseRefreshLock(ctx context.Context, token string) error {
	err := releaseScript.Run(ctx, r.redisClient.Client, []string{constants.KeyBankListLock}, token).Err()
	if err != nil && !errors.Is(err, redis.Nil) {
		return fmt.Errorf("failed to release refresh lock: %w", err)
	}
	return nil
}
