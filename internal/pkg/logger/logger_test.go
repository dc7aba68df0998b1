package logger

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func installTestLogger(t *testing.T, level string) *test.Hook {
	al, err := NewAppLogger(Config{Level: level, Service: "payments-service"})
	require.NoError(t, err)
	hook := test.NewLocal(al.Logger)

	mu.RLock()
	prev := globalLogger
	mu.RUnlock()
	SetGlobalLogger(al)
	t.Cleanup(func() { SetGlobalLogger(prev) })
	return hook
}

func TestCtxHelpersTagRequestID(t *testing.T) {
	hook := installTestLogger(t, "debug")
	ctx := ContextWithRequestID(context.Background(), "req-123")

	InfoCtx(ctx, "Webhook processed", String("reference", "TX-1234-001-AB"), Int("attempt", 1))

	entry := hook.LastEntry()
	require.NotNil(t, entry)
	assert.Equal(t, logrus.InfoLevel, entry.Level)
	assert.Equal(t, "Webhook processed", entry.Message)
	assert.Equal(t, "req-123", entry.Data["request_id"])
	assert.Equal(t, "TX-1234-001-AB", entry.Data["reference"])
	assert.Equal(t, "payments-service", entry.Data["service"])
}

func TestCtxHelpersWithoutRequestID(t *testing.T) {
	hook := installTestLogger(t, "debug")

	WarnCtx(context.Background(), "Rate limiter unavailable", Err(errors.New("connection refused")))

	entry := hook.LastEntry()
	require.NotNil(t, entry)
	assert.Equal(t, logrus.WarnLevel, entry.Level)
	assert.NotContains(t, entry.Data, "request_id")
	assert.Equal(t, "connection refused", entry.Data[logrus.ErrorKey])
}

func TestLevelFiltering(t *testing.T) {
	hook := installTestLogger(t, "warn")

	Debug("hidden")
	Info("hidden")
	Error("shown", Duration("latency", 1500*time.Millisecond))

	require.Len(t, hook.AllEntries(), 1)
	assert.Equal(t, "1.5s", hook.LastEntry().Data["latency"])
}

func TestInvalidLevelDefaultsToInfo(t *testing.T) {
	al, err := NewAppLogger(Config{Level: "chatty"})
	require.NoError(t, err)
	assert.Equal(t, logrus.InfoLevel, al.GetLevel())
}

func TestRequestIDFromNilContext(t *testing.T) {
	assert.Empty(t, RequestIDFromContext(nil))
}

func TestFileLogger(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "duespay.log")

	al, err := NewLoggerFactory(Config{Level: "info", FilePath: path}).CreateLogger(FileLogger)
	require.NoError(t, err)

	al.WithFields(logrus.Fields{"reference": "TX-1234-001-AB"}).Info("Payout recorded")
	require.NoError(t, al.Close())

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(raw), `"message":"Payout recorded"`)
	assert.Contains(t, string(raw), `"reference":"TX-1234-001-AB"`)
	assert.Equal(t, path, al.GetFilePath())
}

func TestErrNil(t *testing.T) {
	f := Err(nil)
	assert.Equal(t, logrus.ErrorKey, f.Key)
	assert.Nil(t, f.Value)
}
