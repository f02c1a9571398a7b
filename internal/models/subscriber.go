package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type InstrumentType string

const (
	InstrumentVisa       InstrumentType = "VISA"
	InstrumentMasterCard InstrumentType = "MASTER_CARD"
	InstrumentAmex       InstrumentType = "AMERICAN_EXPRESS"
)

func (t InstrumentType) IsValid() bool {
	switch t {
	case InstrumentVisa, InstrumentMasterCard, InstrumentAmex:
		return true
	default:
		return false
	}
}

// PaymentInstrument is the card-like descriptor attached to a subscriber.
// It is immutable once attached; replacing it is a separate operation.
type PaymentInstrument struct {
	Number string         `json:"number"`
	Type   InstrumentType `json:"type"`
}

// Subscriber is a magazine reader with a renewable subscription. The payment
// pipeline reads the identity fields and extends SubscribedUntil on a
// successful charge; everything else belongs to the identity subsystem.
type Subscriber struct {
	ID              string            `json:"id" gorm:"primaryKey"`
	Username        string            `json:"username" gorm:"uniqueIndex;not null"`
	Email           string            `json:"email"`
	SubscribedUntil time.Time         `json:"subscribed_until"`
	Instrument      PaymentInstrument `json:"instrument" gorm:"embedded;embeddedPrefix:instrument_"`
	CreatedAt       time.Time         `json:"created_at"`
	UpdatedAt       time.Time         `json:"updated_at"`
}

func (s *Subscriber) BeforeCreate(tx *gorm.DB) (err error) {
	if s.ID == "" {
		s.ID = uuid.New().String()
	}

	return
}

// HasInstrument reports whether a payment instrument is attached.
func (s *Subscriber) HasInstrument() bool {
	return s.Instrument.Number != ""
}
