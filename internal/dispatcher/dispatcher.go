package dispatcher

import (
	"context"
	"errors"
	"sync"

	"github.com/google/uuid"
	"github.com/magpress/payment-service/internal/metrics"
	"github.com/magpress/payment-service/internal/models"
	"github.com/magpress/payment-service/internal/policy"
	"github.com/sirupsen/logrus"
)

// Publisher publishes JSON messages to a Kafka topic. The implementation owns
// its retry/backoff policy; an error here means the policy is exhausted.
type Publisher interface {
	Publish(ctx context.Context, topic string, key string, message interface{}) error
}

// Gateway is the synchronous fallback to the charge provider.
type Gateway interface {
	Charge(ctx context.Context, instrument models.PaymentInstrument) (models.Confirmation, error)
}

// Result is the answer to one dispatch. Exactly one of the two shapes holds:
// Sent means the request was queued and the business outcome will arrive later
// via the confirmation channel; a non-nil Confirmation means the fallback
// short-circuited the round trip and the outcome is already definitive.
type Result struct {
	Sent         bool
	Confirmation *models.Confirmation
}

// AsyncDispatcher pushes payment requests onto the outbound channel,
// protected by a circuit breaker, and falls back to the synchronous gateway
// when the channel path is unhealthy.
type AsyncDispatcher struct {
	publisher Publisher
	gateway   Gateway
	breaker   *policy.CircuitBreaker

	mu       sync.Mutex
	inFlight map[string]models.PaymentRequestMessage
}

func New(publisher Publisher, gw Gateway, breaker *policy.CircuitBreaker) *AsyncDispatcher {
	return &AsyncDispatcher{
		publisher: publisher,
		gateway:   gw,
		breaker:   breaker,
		inFlight:  make(map[string]models.PaymentRequestMessage),
	}
}

// Dispatch publishes a payment request for the subscriber. When the circuit
// is open, or the publish retries exhaust, it invokes the gateway fallback
// and translates the provider's answer into the same outcome shape the async
// path would eventually produce.
//
// Callers must not block on the business outcome of a Sent result.
func (d *AsyncDispatcher) Dispatch(ctx context.Context, username string, instrument models.PaymentInstrument) (Result, error) {
	message := models.PaymentRequestMessage{
		Username:   username,
		Instrument: instrument,
	}

	// Keyed per dispatch, not per subscriber: concurrent charges for the same
	// subscriber must each hold their own in-flight entry.
	dispatchID := uuid.New().String()
	d.track(dispatchID, message)
	defer d.untrack(dispatchID)

	publishErr := d.publish(ctx, username, message)
	if publishErr == nil {
		logrus.Infof("payment request for '%s' published to topic '%s'", username, models.PaymentRequestTopic)
		return Result{Sent: true}, nil
	}

	if errors.Is(publishErr, policy.ErrCircuitOpen) {
		logrus.Warnf("payment channel circuit open, charging '%s' through the gateway", username)
	} else {
		logrus.Errorf("payment channel unavailable for '%s': %s", username, publishErr.Error())
	}

	return d.fallback(ctx, username, instrument)
}

// InFlight reports how many payment requests are awaiting publish settlement.
func (d *AsyncDispatcher) InFlight() int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return len(d.inFlight)
}

func (d *AsyncDispatcher) publish(ctx context.Context, username string, message models.PaymentRequestMessage) error {
	if err := d.breaker.Allow(); err != nil {
		return err
	}

	err := d.publisher.Publish(ctx, models.PaymentRequestTopic, username, message)
	d.breaker.Mark(err)
	return err
}

func (d *AsyncDispatcher) fallback(ctx context.Context, username string, instrument models.PaymentInstrument) (Result, error) {
	metrics.GatewayFallbackTotal.Inc()

	confirmation, err := d.gateway.Charge(ctx, instrument)
	if err != nil {
		return Result{}, err
	}

	logrus.Infof("gateway fallback settled charge for '%s': success=%t", username, confirmation.Success)
	return Result{Confirmation: &confirmation}, nil
}

func (d *AsyncDispatcher) track(dispatchID string, message models.PaymentRequestMessage) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.inFlight[dispatchID] = message
	metrics.PaymentsInFlight.Set(float64(len(d.inFlight)))
}

func (d *AsyncDispatcher) untrack(dispatchID string) {
	d.mu.Lock()
	defer d.mu.Unlock()
	delete(d.inFlight, dispatchID)
	metrics.PaymentsInFlight.Set(float64(len(d.inFlight)))
}
