package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/magpress/payment-service/internal/dispatcher"
	"github.com/magpress/payment-service/internal/ledger"
	"github.com/magpress/payment-service/internal/metrics"
	"github.com/magpress/payment-service/internal/models"
	"github.com/magpress/payment-service/internal/notify"
	"github.com/sirupsen/logrus"
)

// ChargeResult is everything the HTTP boundary learns about a charge request.
// Provider-level errors never cross this boundary.
type ChargeResult string

const (
	ChargeAccepted     ChargeResult = "ACCEPTED"
	ChargeNoInstrument ChargeResult = "NO_INSTRUMENT"
	ChargeFailed       ChargeResult = "FAILED"
)

// Ledger owns subscription attempt bookkeeping.
type Ledger interface {
	StartAttempt(ctx context.Context, subscriberID string) (string, error)
	ResolveAttempt(ctx context.Context, subscriberID string, success bool, completedAt time.Time) error
}

// Dispatcher sends a payment request down the async channel, falling back to
// the synchronous gateway when the channel is unhealthy.
type Dispatcher interface {
	Dispatch(ctx context.Context, username string, instrument models.PaymentInstrument) (dispatcher.Result, error)
}

// OutcomeBus fans a charge outcome out to its observers.
type OutcomeBus interface {
	Fire(ctx context.Context, outcome models.ChargeOutcome)
}

// Notifier pushes a payload to a subscriber's live notification streams.
type Notifier interface {
	Publish(subscriberID string, payload notify.Payload)
}

// PaymentService is the entry point of the charge pipeline: it records the
// attempt, dispatches it, and settles synchronously when the dispatcher had
// to short-circuit through the gateway.
type PaymentService struct {
	Ledger     Ledger
	Dispatcher Dispatcher
	Bus        OutcomeBus
	Notifier   Notifier
}

func NewPaymentService(l Ledger, d Dispatcher, bus OutcomeBus, notifier Notifier) *PaymentService {
	return &PaymentService{
		Ledger:     l,
		Dispatcher: d,
		Bus:        bus,
		Notifier:   notifier,
	}
}

// ChargeSubscriber starts a renewal charge for the subscriber.
//
// An ACCEPTED result does not mean the charge succeeded: when the request was
// queued, the outcome arrives later through the confirmation consumer and the
// push channel. Only the fallback path settles the outcome within this call.
func (s *PaymentService) ChargeSubscriber(ctx context.Context, subscriber *models.Subscriber) (ChargeResult, error) {
	timer := time.Now()
	defer func() {
		metrics.ChargeDuration.Observe(time.Since(timer).Seconds())
	}()

	if !subscriber.HasInstrument() {
		metrics.ChargesTotal.WithLabelValues("no_instrument").Inc()
		return ChargeNoInstrument, nil
	}

	attemptID, err := s.Ledger.StartAttempt(ctx, subscriber.ID)
	if err != nil {
		metrics.ChargesTotal.WithLabelValues("error").Inc()
		return ChargeFailed, fmt.Errorf("error starting subscription attempt: %w", err)
	}
	logrus.Infof("started subscription attempt %s for subscriber %s", attemptID, subscriber.ID)

	result, err := s.Dispatcher.Dispatch(ctx, subscriber.Username, subscriber.Instrument)
	if err != nil {
		s.failAttempt(ctx, subscriber, err)
		metrics.ChargesTotal.WithLabelValues("dispatch_failed").Inc()
		return ChargeFailed, nil
	}

	if result.Sent {
		s.Notifier.Publish(subscriber.ID, notify.Payload{
			Type:    notify.TypePayments,
			Message: "Payment information sent!",
		})
		metrics.ChargesTotal.WithLabelValues("accepted").Inc()
		return ChargeAccepted, nil
	}

	// The dispatcher fell back to the gateway and already holds a definitive
	// outcome; settle it here instead of waiting on the confirmation channel.
	confirmation := *result.Confirmation
	if err := s.Ledger.ResolveAttempt(ctx, subscriber.ID, confirmation.Success, confirmation.Timestamp); err != nil &&
		!errors.Is(err, ledger.ErrNoPendingAttempt) {
		metrics.ChargesTotal.WithLabelValues("error").Inc()
		return ChargeFailed, fmt.Errorf("error resolving subscription attempt: %w", err)
	}

	s.Notifier.Publish(subscriber.ID, notify.Payload{
		Type:    notify.TypePayments,
		Message: fmt.Sprintf("Payment processed: success=%t", confirmation.Success),
	})

	s.Bus.Fire(ctx, models.ChargeOutcome{
		SubscriberID: subscriber.ID,
		Success:      confirmation.Success,
		ConfirmedAt:  confirmation.Timestamp,
	})

	metrics.ChargesTotal.WithLabelValues("accepted").Inc()
	return ChargeAccepted, nil
}

func (s *PaymentService) failAttempt(ctx context.Context, subscriber *models.Subscriber, cause error) {
	logrus.Errorf("charge for subscriber %s could not be dispatched: %s", subscriber.ID, cause.Error())

	if err := s.Ledger.ResolveAttempt(ctx, subscriber.ID, false, time.Now().UTC()); err != nil &&
		!errors.Is(err, ledger.ErrNoPendingAttempt) {
		logrus.Errorf("error failing attempt for subscriber %s: %s", subscriber.ID, err.Error())
	}

	s.Notifier.Publish(subscriber.ID, notify.Payload{
		Type:    notify.TypePayments,
		Message: fmt.Sprintf("Error making subscription. Please retry making a subscription: %s", cause.Error()),
	})
}
