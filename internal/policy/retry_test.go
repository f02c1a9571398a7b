package policy_test

import (
	"context"
	"testing"
	"time"

	"github.com/magpress/payment-service/internal/policy"
	"github.com/stretchr/testify/assert"
)

func quickRetry(attempts int) policy.RetryConfig {
	return policy.RetryConfig{
		MaxAttempts: attempts,
		BaseDelay:   time.Millisecond,
		MaxDelay:    5 * time.Millisecond,
	}
}

func TestRetry_SucceedsFirstTry(t *testing.T) {
	calls := 0
	err := policy.Retry(context.Background(), quickRetry(3), func(ctx context.Context) error {
		calls++
		return nil
	})

	assert.NoError(t, err)
	assert.Equal(t, 1, calls)
}

func TestRetry_SucceedsAfterFailures(t *testing.T) {
	calls := 0
	err := policy.Retry(context.Background(), quickRetry(3), func(ctx context.Context) error {
		calls++
		if calls < 3 {
			return errBoom
		}
		return nil
	})

	assert.NoError(t, err)
	assert.Equal(t, 3, calls)
}

func TestRetry_ExhaustsAttempts(t *testing.T) {
	calls := 0
	err := policy.Retry(context.Background(), quickRetry(3), func(ctx context.Context) error {
		calls++
		return errBoom
	})

	assert.ErrorIs(t, err, errBoom)
	assert.Equal(t, 3, calls)
}

func TestRetry_StopsOnContextCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())

	calls := 0
	err := policy.Retry(ctx, policy.RetryConfig{MaxAttempts: 5, BaseDelay: 50 * time.Millisecond}, func(ctx context.Context) error {
		calls++
		cancel()
		return errBoom
	})

	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, 1, calls)
}

func TestBackoff_CappedAtMaxDelay(t *testing.T) {
	cfg := policy.RetryConfig{BaseDelay: 100 * time.Millisecond, MaxDelay: 300 * time.Millisecond}

	assert.Equal(t, 100*time.Millisecond, cfg.Backoff(0))
	assert.Equal(t, 200*time.Millisecond, cfg.Backoff(1))
	assert.Equal(t, 300*time.Millisecond, cfg.Backoff(2))
	assert.Equal(t, 300*time.Millisecond, cfg.Backoff(10))
}
