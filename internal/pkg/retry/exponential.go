package retry

import (
	"context"
	"errors"
	"fmt"
	"math"
	"math/rand"
	"time"

	"github.com/piresc/duespay/internal/pkg/logger"
)

// RetryableFunc represents a function that can be retried. attempt starts at 1.
type RetryableFunc func(ctx context.Context, attempt int) error

// Config holds retry configuration
type Config struct {
	Name        string           // Operation name for logging
	MaxRetries  int              // Retries after the first attempt
	BaseDelay   time.Duration    // Delay before the first retry
	MaxDelay    time.Duration    // Upper bound for any single delay
	Multiplier  float64          // Exponential backoff multiplier
	Jitter      bool             // Add up to 10% random delay
	IsRetryable func(error) bool // Decides whether an error is worth another attempt
}

// DefaultConfig returns a default retry configuration that retries every error
func DefaultConfig(name string) Config {
	return Config{
		Name:       name,
		MaxRetries: 3,
		BaseDelay:  100 * time.Millisecond,
		MaxDelay:   30 * time.Second,
		Multiplier: 2.0,
		Jitter:     true,
	}
}

// ErrExhausted wraps the last error once all attempts have failed
var ErrExhausted = errors.New("retry limit exceeded")

// Retrier handles retry logic with exponential backoff
type Retrier struct {
	config Config
}

// New creates a new retrier with the given configuration
func New(config Config) *Retrier {
	if config.Multiplier <= 0 {
		config.Multiplier = 2.0
	}
	if config.MaxRetries < 0 {
		config.MaxRetries = 0
	}
	return &Retrier{config: config}
}

// Execute runs fn until it succeeds, returns a non-retryable error, the
// attempts run out, or ctx is done.
func (r *Retrier) Execute(ctx context.Context, fn RetryableFunc) error {
	var lastErr error
	total := r.config.MaxRetries + 1

	for attempt := 1; attempt <= total; attempt++ {
		if err := ctx.Err(); err != nil {
			return err
		}

		err := fn(ctx, attempt)
		if err == nil {
			if attempt > 1 {
				logger.InfoCtx(ctx, "Operation succeeded after retries",
					logger.String("operation", r.config.Name),
					logger.Int("attempt", attempt))
			}
			return nil
		}
		lastErr = err

		if r.config.IsRetryable != nil && !r.config.IsRetryable(err) {
			logger.DebugCtx(ctx, "Error is not retryable, stopping",
				logger.String("operation", r.config.Name),
				logger.Err(err),
				logger.Int("attempt", attempt))
			return err
		}

		if attempt == total {
			break
		}

		delay := r.delay(attempt)
		logger.WarnCtx(ctx, "Operation failed, retrying",
			logger.String("operation", r.config.Name),
			logger.Err(err),
			logger.Int("attempt", attempt),
			logger.Duration("delay", delay))

		timer := time.NewTimer(delay)
		select {
		case <-ctx.Done():
			timer.Stop()
			return ctx.Err()
		case <-timer.C:
		}
	}

	logger.ErrorCtx(ctx, "Operation failed after all retries",
		logger.String("operation", r.config.Name),
		logger.Err(lastErr),
		logger.Int("total_attempts", total))

	return fmt.Errorf("%w after %d attempts: %w", ErrExhausted, total, lastErr)
}

// delay returns the backoff before the retry following attempt
func (r *Retrier) delay(attempt int) time.Duration {
	d := float64(r.config.BaseDelay) * math.Pow(r.config.Multiplier, float64(attempt-1))
	if r.config.MaxDelay > 0 && d > float64(r.config.MaxDelay) {
		d = float64(r.config.MaxDelay)
	}
	if r.config.Jitter {
		d += d * 0.1 * rand.Float64()
	}
	return time.Duration(d)
}
