package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type AttemptStatus string

const (
	AttemptPending AttemptStatus = "PENDING"
	AttemptValid   AttemptStatus = "VALID"
	AttemptFailed  AttemptStatus = "FAILED"
)

func (s AttemptStatus) IsValid() bool {
	switch s {
	case AttemptPending, AttemptValid, AttemptFailed:
		return true
	default:
		return false
	}
}

// IsTerminal reports whether the status can no longer change.
func (s AttemptStatus) IsTerminal() bool {
	return s == AttemptValid || s == AttemptFailed
}

// SubscriptionAttempt is one charge lifecycle instance for a subscriber.
// Invariant: at most one PENDING attempt per subscriber at any time; the
// partial unique index makes the database the last line of defense when two
// charges race. CompletedAt is stamped exactly once, at the terminal
// transition.
type SubscriptionAttempt struct {
	ID           string        `json:"id" gorm:"primaryKey"`
	SubscriberID string        `json:"subscriber_id" gorm:"index;not null;index:uidx_subscription_attempts_pending,unique,where:status = 'PENDING'"`
	Status       AttemptStatus `json:"status" gorm:"not null"`
	InitiatedAt  time.Time     `json:"initiated_at"`
	CompletedAt  *time.Time    `json:"completed_at,omitempty"`
}

func (a *SubscriptionAttempt) BeforeCreate(tx *gorm.DB) (err error) {
	if a.ID == "" {
		a.ID = uuid.New().String()
	}
	if a.Status == "" {
		a.Status = AttemptPending
	}
	if a.InitiatedAt.IsZero() {
		a.InitiatedAt = time.Now().UTC()
	}

	return
}
