package events

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/magpress/payment-service/internal/ledger"
	"github.com/magpress/payment-service/internal/models"
	"github.com/sirupsen/logrus"
)

// Observer priorities. Higher runs first: the subscription must be extended
// before the courtesy email goes out.
const (
	PriorityExtension    = 2000
	PriorityNotification = 1000
)

// SubscriberRepo is the slice of subscriber persistence the observers need.
type SubscriberRepo interface {
	GetByID(ctx context.Context, id string) (*models.Subscriber, error)
	Update(ctx context.Context, subscriber *models.Subscriber, id string) error
}

// Ledger resolves subscription attempts.
type Ledger interface {
	ResolveAttempt(ctx context.Context, subscriberID string, success bool, completedAt time.Time) error
}

// ExtensionHandler reacts to charge outcomes by extending the subscription on
// success, or marking the attempt failed otherwise. It re-fetches the
// subscriber by id: outcome payloads never carry live entities across
// transaction boundaries.
type ExtensionHandler struct {
	Subscribers SubscriberRepo
	Ledger      Ledger
}

func NewExtensionHandler(subscribers SubscriberRepo, l Ledger) *ExtensionHandler {
	return &ExtensionHandler{Subscribers: subscribers, Ledger: l}
}

func (h *ExtensionHandler) Handle(ctx context.Context, outcome models.ChargeOutcome) error {
	if !outcome.Success {
		if err := h.Ledger.ResolveAttempt(ctx, outcome.SubscriberID, false, outcome.ConfirmedAt); err != nil &&
			!errors.Is(err, ledger.ErrNoPendingAttempt) {
			return fmt.Errorf("error failing attempt for subscriber %s: %w", outcome.SubscriberID, err)
		}
		return nil
	}

	subscriber, err := h.Subscribers.GetByID(ctx, outcome.SubscriberID)
	if err != nil {
		return fmt.Errorf("subscriber %s not found: %w", outcome.SubscriberID, err)
	}

	base := subscriber.SubscribedUntil
	if base.IsZero() {
		base = outcome.ConfirmedAt
	}
	subscriber.SubscribedUntil = base.AddDate(1, 0, 0)

	if err := h.Subscribers.Update(ctx, subscriber, subscriber.ID); err != nil {
		return fmt.Errorf("error extending subscription for %s: %w", subscriber.ID, err)
	}

	// The attempt is normally already terminal by now; this covers paths that
	// fired the outcome without resolving first.
	if err := h.Ledger.ResolveAttempt(ctx, outcome.SubscriberID, true, outcome.ConfirmedAt); err != nil &&
		!errors.Is(err, ledger.ErrNoPendingAttempt) {
		return fmt.Errorf("error resolving attempt for subscriber %s: %w", outcome.SubscriberID, err)
	}

	logrus.Infof("extended subscription for subscriber %s until %s",
		subscriber.ID, subscriber.SubscribedUntil.Format(time.DateOnly))
	return nil
}

// EmailHandler is the fire-and-forget renewal notice. Errors here must never
// roll back the extension.
type EmailHandler struct{}

func NewEmailHandler() *EmailHandler {
	return &EmailHandler{}
}

func (h *EmailHandler) Handle(ctx context.Context, outcome models.ChargeOutcome) error {
	logrus.Infof("sent email to subscriber %s about their subscription renewal", outcome.SubscriberID)
	return nil
}
