package ledger

import (
	"context"
	"errors"
	"time"

	"github.com/magpress/payment-service/internal/models"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// ErrNoPendingAttempt is returned by ResolveAttempt when the subscriber has no
// PENDING attempt. A confirmation with nothing pending is a data anomaly, not
// a fault; callers log it and move on.
var ErrNoPendingAttempt = errors.New("no pending subscription attempt")

// SubscriptionLedger owns SubscriptionAttempt rows and their status
// transitions. All mutations run inside a single transaction scoped to one
// subscriber's attempt, so concurrent charges for different subscribers never
// contend and concurrent charges for the same subscriber serialize through
// the single-PENDING invariant.
type SubscriptionLedger struct {
	db *gorm.DB
}

func New(db *gorm.DB) *SubscriptionLedger {
	return &SubscriptionLedger{db: db}
}

// startAttemptRetries bounds how often a StartAttempt transaction is replayed
// after losing the insert race to a concurrent charge.
const startAttemptRetries = 3

// StartAttempt fails any prior PENDING attempt for the subscriber and inserts
// a fresh PENDING one. Both mutations commit together or not at all.
//
// Two concurrent calls for the same subscriber can each sweep zero rows and
// both reach the insert; the partial unique index on PENDING rows rejects the
// loser, and the transaction is replayed so its sweep now sees the winner's
// committed row. The last caller wins, same as the sequential case.
func (l *SubscriptionLedger) StartAttempt(ctx context.Context, subscriberID string) (string, error) {
	var lastErr error
	for i := 0; i < startAttemptRetries; i++ {
		id, err := l.startAttempt(ctx, subscriberID)
		if err == nil {
			return id, nil
		}
		if !errors.Is(err, gorm.ErrDuplicatedKey) {
			return "", err
		}
		logrus.Warnf("concurrent pending attempt for subscriber %s, replaying transaction", subscriberID)
		lastErr = err
	}

	return "", lastErr
}

func (l *SubscriptionLedger) startAttempt(ctx context.Context, subscriberID string) (string, error) {
	attempt := models.SubscriptionAttempt{SubscriberID: subscriberID}

	err := l.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		now := time.Now().UTC()
		result := tx.Model(&models.SubscriptionAttempt{}).
			Where("subscriber_id = ? AND status = ?", subscriberID, models.AttemptPending).
			Updates(map[string]interface{}{
				"status":       models.AttemptFailed,
				"completed_at": now,
			})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected > 0 {
			logrus.Infof("failed %d stale pending attempt(s) for subscriber %s", result.RowsAffected, subscriberID)
		}

		return tx.Create(&attempt).Error
	})
	if err != nil {
		return "", err
	}

	return attempt.ID, nil
}

// ResolveAttempt moves the subscriber's most recent PENDING attempt to VALID
// or FAILED and stamps its completion time. Resolving when nothing is pending
// returns ErrNoPendingAttempt, which makes redelivered confirmations a no-op:
// the first resolution wins.
func (l *SubscriptionLedger) ResolveAttempt(ctx context.Context, subscriberID string, success bool, completedAt time.Time) error {
	return l.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var attempt models.SubscriptionAttempt
		err := tx.Where("subscriber_id = ? AND status = ?", subscriberID, models.AttemptPending).
			Order("initiated_at DESC").
			First(&attempt).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			logrus.Warnf("no pending attempt to resolve for subscriber %s", subscriberID)
			return ErrNoPendingAttempt
		}
		if err != nil {
			return err
		}

		status := models.AttemptValid
		if !success {
			status = models.AttemptFailed
		}

		return tx.Model(&attempt).Updates(map[string]interface{}{
			"status":       status,
			"completed_at": completedAt,
		}).Error
	})
}

// CountPending reports how many attempts are awaiting an outcome. Gauge hook,
// no side effects.
func (l *SubscriptionLedger) CountPending(ctx context.Context) (int64, error) {
	var count int64
	err := l.db.WithContext(ctx).Model(&models.SubscriptionAttempt{}).
		Where("status = ?", models.AttemptPending).
		Count(&count).Error
	return count, err
}
