package models

import "time"

const (
	// PaymentRequestTopic carries charge requests to the external payment
	// processor. Keyed by username: the processor has no visibility into
	// internal ids.
	PaymentRequestTopic = "payments"

	// PaymentConfirmationTopic carries the processor's out-of-band answers.
	PaymentConfirmationTopic = "post-payments"

	// PaymentsDLQTopic receives confirmation messages that exhausted their
	// handler retries.
	PaymentsDLQTopic = "payments.dlq"
)

// PaymentRequestMessage is the outbound wire payload on the payments topic.
type PaymentRequestMessage struct {
	Username   string            `json:"username"`
	Instrument PaymentInstrument `json:"instrument"`
}

// Confirmation is the processor's verdict on a charge. A decline is a
// business outcome, not an error.
type Confirmation struct {
	Success   bool      `json:"success"`
	Timestamp time.Time `json:"timestamp"`
}

// PaymentConfirmationMessage is the inbound wire payload on the post-payments
// topic.
type PaymentConfirmationMessage struct {
	Username     string       `json:"username"`
	Confirmation Confirmation `json:"confirmation"`
}

// ChargeOutcome is the transient result of a charge, independent of whether
// the synchronous fallback or the confirmation channel produced it. Observers
// re-fetch the subscriber and attempt by id; the payload deliberately carries
// no entity references across transaction boundaries.
type ChargeOutcome struct {
	SubscriberID string    `json:"subscriber_id"`
	Success      bool      `json:"success"`
	ConfirmedAt  time.Time `json:"confirmed_at"`
}

// DLQMessage wraps a message that could not be handled after retries.
type DLQMessage struct {
	OriginalTopic string    `json:"original_topic"`
	Key           string    `json:"key"`
	Value         string    `json:"value"`
	Timestamp     time.Time `json:"timestamp"`
	Attempts      int       `json:"attempts"`
}
