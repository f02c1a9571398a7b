package policy

import (
	"context"
	"math"
	"math/rand"
	"time"
)

// RetryConfig bounds how many times an operation is re-attempted and how long
// the service waits between attempts.
type RetryConfig struct {
	MaxAttempts int
	BaseDelay   time.Duration
	MaxDelay    time.Duration
	Jitter      bool
}

func (c *RetryConfig) applyDefaults() {
	if c.MaxAttempts == 0 {
		c.MaxAttempts = 3
	}
	if c.BaseDelay == 0 {
		c.BaseDelay = 100 * time.Millisecond
	}
	if c.MaxDelay == 0 {
		c.MaxDelay = 10 * time.Second
	}
}

// Backoff returns the delay before the given zero-based retry attempt,
// exponential with an optional ±15% jitter.
func (c RetryConfig) Backoff(attempt int) time.Duration {
	delay := time.Duration(math.Pow(2, float64(attempt))) * c.BaseDelay

	if delay > c.MaxDelay {
		delay = c.MaxDelay
	}

	if c.Jitter {
		jitter := time.Duration(rand.Float64() * float64(delay) * 0.3)
		delay = delay + jitter - time.Duration(float64(delay)*0.15)
	}

	return delay
}

// Retry runs fn up to MaxAttempts times, sleeping the backoff delay between
// attempts. It stops early when the context is cancelled and returns the last
// error once every attempt has failed.
func Retry(ctx context.Context, cfg RetryConfig, fn func(ctx context.Context) error) error {
	cfg.applyDefaults()

	var lastErr error
	for attempt := 0; attempt < cfg.MaxAttempts; attempt++ {
		if err := fn(ctx); err == nil {
			return nil
		} else {
			lastErr = err
		}

		if attempt == cfg.MaxAttempts-1 {
			break
		}

		select {
		case <-time.After(cfg.Backoff(attempt)):
		case <-ctx.Done():
			return ctx.Err()
		}
	}

	return lastErr
}
