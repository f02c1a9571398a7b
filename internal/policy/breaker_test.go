package policy_test

import (
	"errors"
	"testing"
	"time"

	"github.com/magpress/payment-service/internal/policy"
	"github.com/stretchr/testify/assert"
)

var errBoom = errors.New("boom")

func TestBreaker_OpensAfterConsecutiveFailures(t *testing.T) {
	cb := policy.NewCircuitBreaker("test", policy.BreakerConfig{
		FailureThreshold: 3,
		Cooldown:         time.Minute,
	})

	for i := 0; i < 3; i++ {
		assert.NoError(t, cb.Allow())
		cb.Mark(errBoom)
	}

	assert.ErrorIs(t, cb.Allow(), policy.ErrCircuitOpen)
	assert.Equal(t, policy.StateOpen, cb.State())
}

func TestBreaker_SuccessResetsFailureCount(t *testing.T) {
	cb := policy.NewCircuitBreaker("test", policy.BreakerConfig{
		FailureThreshold: 3,
		Cooldown:         time.Minute,
	})

	cb.Mark(errBoom)
	cb.Mark(errBoom)
	cb.Mark(nil)
	cb.Mark(errBoom)
	cb.Mark(errBoom)

	assert.NoError(t, cb.Allow())
	assert.Equal(t, policy.StateClosed, cb.State())
}

func TestBreaker_HalfOpenAfterCooldown(t *testing.T) {
	cb := policy.NewCircuitBreaker("test", policy.BreakerConfig{
		FailureThreshold: 1,
		SuccessThreshold: 1,
		Cooldown:         10 * time.Millisecond,
	})

	cb.Mark(errBoom)
	assert.ErrorIs(t, cb.Allow(), policy.ErrCircuitOpen)

	time.Sleep(20 * time.Millisecond)

	assert.NoError(t, cb.Allow())
	cb.Mark(nil)
	assert.Equal(t, policy.StateClosed, cb.State())
}

func TestBreaker_FailedProbeReopens(t *testing.T) {
	cb := policy.NewCircuitBreaker("test", policy.BreakerConfig{
		FailureThreshold: 1,
		Cooldown:         10 * time.Millisecond,
	})

	cb.Mark(errBoom)
	time.Sleep(20 * time.Millisecond)

	assert.NoError(t, cb.Allow())
	cb.Mark(errBoom)

	assert.ErrorIs(t, cb.Allow(), policy.ErrCircuitOpen)
}

func TestBreaker_ClosedByDefault(t *testing.T) {
	cb := policy.NewCircuitBreaker("test", policy.BreakerConfig{})

	assert.NoError(t, cb.Allow())
	assert.Equal(t, policy.StateClosed, cb.State())
}
