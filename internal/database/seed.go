package database

import (
	"time"

	"github.com/magpress/payment-service/internal/models"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// SeedSubscribers inserts a few development subscribers so the charge flow
// can be exercised locally without the identity service.
func SeedSubscribers(db *gorm.DB) error {
	until := time.Now().UTC().AddDate(0, 6, 0)
	subscribers := []models.Subscriber{
		{
			ID:              "s1",
			Username:        "alice",
			Email:           "alice@example.com",
			SubscribedUntil: until,
			Instrument: models.PaymentInstrument{
				Number: "1234567890123456",
				Type:   models.InstrumentVisa,
			},
		},
		{
			ID:              "s2",
			Username:        "bob",
			Email:           "bob@example.com",
			SubscribedUntil: until,
			Instrument: models.PaymentInstrument{
				Number: "6543210987654321",
				Type:   models.InstrumentMasterCard,
			},
		},
		{
			ID:       "s3",
			Username: "carol",
			Email:    "carol@example.com",
			// No instrument attached: charging carol must be rejected.
		},
	}

	for _, subscriber := range subscribers {
		result := db.Where(models.Subscriber{ID: subscriber.ID}).FirstOrCreate(&subscriber)
		if result.Error != nil {
			return result.Error
		}
	}

	logrus.Info("subscribers seeded successfully")
	return nil
}
