package repository

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/go-redis/redis/v8"
	"github.com/go-redis/redismock/v8"
	"github.com/piresc/duespay/internal/pkg/constants"
	"github.com/piresc/duespay/internal/pkg/database"
	"github.com/piresc/duespay/internal/pkg/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupMiniredis(t *testing.T) (*miniredis.Miniredis, *BankRepo) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	return mr, NewBankRepository(&models.Config{}, &database.RedisClient{Client: client})
}

func TestBankList_RoundTrip(t *testing.T) {
	mr, repo := setupMiniredis(t)
	ctx := context.Background()
	fetchedAt := time.Date(2026, 1, 15, 10, 0, 0, 0, time.UTC)

	list := &models.BankList{
		Banks:     []models.Bank{{Name: "Access Bank", Code: "044"}, {Name: "Zenith Bank", Code: "057"}},
		FetchedAt: fetchedAt,
	}
	require.NoError(t, repo.SetBankList(ctx, list, time.Hour))

	assert.True(t, mr.Exists(constants.KeyBankList))
	assert.Equal(t, time.Hour, mr.TTL(constants.KeyBankList))

	got, err := repo.GetBankList(ctx)
	require.NoError(t, err)
	assert.Equal(t, list.Banks, got.Banks)
	assert.True(t, fetchedAt.Equal(got.FetchedAt))
	assert.False(t, got.Fallback)

	mr.FastForward(time.Hour + time.Second)
	_, err = repo.GetBankList(ctx)
	assert.ErrorIs(t, err, models.ErrNotFound)
}

func TestGetBankList_Miss(t *testing.T) {
	_, repo := setupMiniredis(t)

	_, err := repo.GetBankList(context.Background())

	assert.ErrorIs(t, err, models.ErrNotFound)
}

func TestGetBankList_CorruptEntry(t *testing.T) {
	mr, repo := setupMiniredis(t)
	require.NoError(t, mr.Set(constants.KeyBankList, "{not json"))

	_, err := repo.GetBankList(context.Background())

	require.Error(t, err)
	assert.NotErrorIs(t, err, models.ErrNotFound)
}

func TestGetBankList_RedisError(t *testing.T) {
	client, mock := redismock.NewClientMock()
	repo := NewBankRepository(&models.Config{}, &database.RedisClient{Client: client})
	mock.ExpectGet(constants.KeyBankList).SetErr(errors.New("connection refused"))

	_, err := repo.GetBankList(context.Background())

	require.Error(t, err)
	assert.Contains(t, err.Error(), "connection refused")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRefreshLock(t *testing.T) {
	mr, repo := setupMiniredis(t)
	ctx := context.Background()

	ok, err := repo.AcquireRefreshLock(ctx, "token-a", 30*time.Second)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, 30*time.Second, mr.TTL(constants.KeyBankListLock))

	ok, err = repo.AcquireRefreshLock(ctx, "token-b", 30*time.Second)
	require.NoError(t, err)
	assert.False(t, ok)

	// A foreign token leaves the lock alone
	require.NoError(t, repo.ReleaseRefreshLock(ctx, "token-b"))
	assert.True(t, mr.Exists(constants.KeyBankListLock))

	require.NoError(t, repo.ReleaseRefreshLock(ctx, "token-a"))
	assert.False(t, mr.Exists(constants.KeyBankListLock))

	ok, err = repo.AcquireRefreshLock(ctx, "token-b", 30*time.Second)
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestRefreshLock_Expires(t *testing.T) {
	mr, repo := setupMiniredis(t)
	ctx := context.Background()

	ok, err := repo.AcquireRefreshLock(ctx, "token-a", 30*time.Second)
	require.NoError(t, err)
	require.True(t, ok)

	mr.FastForward(31 * time.Second)

	ok, err = repo.AcquireRefreshLock(ctx, "token-b", 30*time.Second)
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestAcquireRefreshLock_RedisError(t *testing.T) {
	client, mock := redismock.NewClientMock()
	repo := NewBankRepository(&models.Config{}, &database.RedisClient{Client: client})
	mock.ExpectSetNX(constants.KeyBankListLock, "token-a", 30*time.Second).SetErr(errors.New("READONLY"))

	ok, err := repo.AcquireRefreshLock(context.Background(), "token-a", 30*time.Second)

	assert.Error(t, err)
	assert.False(t, ok)
	assert.NoError(t, mock.ExpectationsWereMet())
}
