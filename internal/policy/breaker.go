package policy

import (
	"errors"
	"sync"
	"time"

	"github.com/sirupsen/logrus"
)

// ErrCircuitOpen is returned by Allow while the breaker is open and the
// cooldown has not yet elapsed.
var ErrCircuitOpen = errors.New("circuit breaker is open")

type CircuitState int

const (
	StateClosed CircuitState = iota
	StateOpen
	StateHalfOpen
)

func (s CircuitState) String() string {
	switch s {
	case StateClosed:
		return "closed"
	case StateOpen:
		return "open"
	case StateHalfOpen:
		return "half-open"
	default:
		return "unknown"
	}
}

// BreakerConfig configures a CircuitBreaker. FailureThreshold counts
// consecutive failures across calls, not within one call.
type BreakerConfig struct {
	FailureThreshold int
	SuccessThreshold int
	Cooldown         time.Duration
}

func (c *BreakerConfig) applyDefaults() {
	if c.FailureThreshold == 0 {
		c.FailureThreshold = 3
	}
	if c.SuccessThreshold == 0 {
		c.SuccessThreshold = 2
	}
	if c.Cooldown == 0 {
		c.Cooldown = 30 * time.Second
	}
}

// CircuitBreaker stops attempting an operation after a run of consecutive
// failures, so callers can fall back immediately instead of piling latency
// against a dependency that is known to be down. After the cooldown a single
// probe is let through (half-open); enough successes close the circuit again.
type CircuitBreaker struct {
	name   string
	config BreakerConfig

	mu           sync.Mutex
	state        CircuitState
	failureCount int
	successCount int
	lastFailure  time.Time
}

func NewCircuitBreaker(name string, config BreakerConfig) *CircuitBreaker {
	config.applyDefaults()
	return &CircuitBreaker{
		name:   name,
		config: config,
		state:  StateClosed,
	}
}

// Allow reports whether a request may proceed. It returns ErrCircuitOpen
// without touching the protected operation while the circuit is open.
func (cb *CircuitBreaker) Allow() error {
	cb.mu.Lock()
	defer cb.mu.Unlock()

	switch cb.state {
	case StateClosed, StateHalfOpen:
		return nil
	case StateOpen:
		if time.Since(cb.lastFailure) >= cb.config.Cooldown {
			cb.setState(StateHalfOpen)
			cb.successCount = 0
			return nil
		}
		return ErrCircuitOpen
	default:
		return ErrCircuitOpen
	}
}

// Mark records the outcome of a request that Allow let through.
// Pass nil for success.
func (cb *CircuitBreaker) Mark(err error) {
	cb.mu.Lock()
	defer cb.mu.Unlock()

	if err == nil {
		cb.onSuccess()
	} else {
		cb.onFailure()
	}
}

// State returns the current state, honoring an elapsed cooldown.
func (cb *CircuitBreaker) State() CircuitState {
	cb.mu.Lock()
	defer cb.mu.Unlock()

	if cb.state == StateOpen && time.Since(cb.lastFailure) >= cb.config.Cooldown {
		return StateHalfOpen
	}
	return cb.state
}

func (cb *CircuitBreaker) onSuccess() {
	switch cb.state {
	case StateClosed:
		cb.failureCount = 0
	case StateHalfOpen:
		cb.successCount++
		if cb.successCount >= cb.config.SuccessThreshold {
			cb.setState(StateClosed)
			cb.failureCount = 0
			cb.successCount = 0
		}
	}
}

func (cb *CircuitBreaker) onFailure() {
	cb.lastFailure = time.Now()

	switch cb.state {
	case StateClosed:
		cb.failureCount++
		if cb.failureCount >= cb.config.FailureThreshold {
			cb.setState(StateOpen)
		}
	case StateHalfOpen:
		// Probe failed, back to open for another cooldown.
		cb.setState(StateOpen)
	}
}

func (cb *CircuitBreaker) setState(next CircuitState) {
	if cb.state == next {
		return
	}
	logrus.Warnf("circuit breaker '%s' transitioning %s -> %s", cb.name, cb.state, next)
	cb.state = next
}
