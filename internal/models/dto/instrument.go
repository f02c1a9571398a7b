package dto

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/magpress/payment-service/internal/models"
)

var cardNumberPattern = regexp.MustCompile(`^\d{16,}$`)

// Instrument is the request body for attaching a payment instrument to a
// subscriber.
type Instrument struct {
	Number string `json:"number"`
	Type   string `json:"type"`
}

func (i *Instrument) Sanitize() {
	i.Number = strings.TrimSpace(i.Number)
	i.Type = strings.ToUpper(strings.TrimSpace(i.Type))
}

func (i *Instrument) Validate() error {
	if !cardNumberPattern.MatchString(i.Number) {
		return fmt.Errorf("the card number must consist of at least 16 digits")
	}
	if !models.InstrumentType(i.Type).IsValid() {
		return fmt.Errorf("invalid instrument type: %s", i.Type)
	}

	return nil
}

func (i *Instrument) ToEntity() models.PaymentInstrument {
	return models.PaymentInstrument{
		Number: i.Number,
		Type:   models.InstrumentType(i.Type),
	}
}
