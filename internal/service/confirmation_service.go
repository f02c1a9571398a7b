package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/magpress/payment-service/internal/ledger"
	"github.com/magpress/payment-service/internal/metrics"
	"github.com/magpress/payment-service/internal/models"
	"github.com/magpress/payment-service/internal/notify"
	"github.com/sirupsen/logrus"
)

// SubscriberRepo resolves subscribers by their natural key. Confirmation
// payloads carry the username the external processor was given, never an
// internal id.
type SubscriberRepo interface {
	GetBy(ctx context.Context, key string, value interface{}) (*[]models.Subscriber, error)
}

// ConfirmationService consumes out-of-band payment confirmations: it settles
// the pending attempt, notifies the subscriber's push stream, and fires the
// same outcome event type the synchronous fallback path produces.
//
// The confirmation channel delivers at least once, so every step tolerates
// redelivery: resolving an already-terminal attempt is a no-op.
type ConfirmationService struct {
	Subscribers SubscriberRepo
	Ledger      Ledger
	Bus         OutcomeBus
	Notifier    Notifier
}

func NewConfirmationService(subscribers SubscriberRepo, l Ledger, bus OutcomeBus, notifier Notifier) *ConfirmationService {
	return &ConfirmationService{
		Subscribers: subscribers,
		Ledger:      l,
		Bus:         bus,
		Notifier:    notifier,
	}
}

// HandleConfirmation processes one message from the confirmation topic.
// Data-integrity anomalies (unknown subscriber, nothing pending) are logged
// and dropped; returning nil keeps the consumer from retrying what can never
// succeed. A non-nil error means the message is worth retrying.
func (s *ConfirmationService) HandleConfirmation(ctx context.Context, raw []byte) error {
	var message models.PaymentConfirmationMessage
	if err := json.Unmarshal(raw, &message); err != nil {
		return fmt.Errorf("error parsing payment confirmation: %w", err)
	}

	logrus.Infof("received payment confirmation for username '%s' with status %t",
		message.Username, message.Confirmation.Success)

	subscribers, err := s.Subscribers.GetBy(ctx, "username = ?", message.Username)
	if err != nil {
		return fmt.Errorf("error looking up subscriber '%s': %w", message.Username, err)
	}
	if subscribers == nil || len(*subscribers) == 0 {
		logrus.Warnf("no subscriber with the username '%s' was found, dropping confirmation", message.Username)
		metrics.ConfirmationsTotal.WithLabelValues("unknown_subscriber").Inc()
		return nil
	}
	subscriber := (*subscribers)[0]

	err = s.Ledger.ResolveAttempt(ctx, subscriber.ID, message.Confirmation.Success, message.Confirmation.Timestamp)
	if errors.Is(err, ledger.ErrNoPendingAttempt) {
		metrics.ConfirmationsTotal.WithLabelValues("no_pending_attempt").Inc()
		return nil
	}
	if err != nil {
		return fmt.Errorf("error resolving attempt for subscriber %s: %w", subscriber.ID, err)
	}

	// Push before firing the bus so the client sees a fast acknowledgment
	// even when downstream observers are slow.
	s.Notifier.Publish(subscriber.ID, notify.Payload{
		Type:    notify.TypePostPayments,
		Message: string(raw),
	})

	s.Bus.Fire(ctx, models.ChargeOutcome{
		SubscriberID: subscriber.ID,
		Success:      message.Confirmation.Success,
		ConfirmedAt:  message.Confirmation.Timestamp,
	})

	if message.Confirmation.Success {
		metrics.ConfirmationsTotal.WithLabelValues("success").Inc()
	} else {
		metrics.ConfirmationsTotal.WithLabelValues("declined").Inc()
	}

	return nil
}
