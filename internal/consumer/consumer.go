package consumer

import (
	"context"
	"time"

	"github.com/magpress/payment-service/internal/models"
	"github.com/magpress/payment-service/internal/policy"
	"github.com/segmentio/kafka-go"
	"github.com/sirupsen/logrus"
)

// DLQPublisher receives messages that exhausted their handler retries.
type DLQPublisher interface {
	Publish(ctx context.Context, topic string, key string, message interface{}) error
}

// KafkaConsumer runs one blocking receive loop per subscribed topic, each on
// its own goroutine, never sharing a thread with request handling. Handler
// errors are retried with backoff; messages that keep failing go to the DLQ
// so one poisoned message cannot stall the channel.
type KafkaConsumer struct {
	Readers      []*kafka.Reader
	DLQPublisher DLQPublisher
	RetryConfig  policy.RetryConfig
}

func NewMultiTopicConsumer(
	brokers []string,
	topics []string,
	groupID string,
	dlqPublisher DLQPublisher,
	retryConfig policy.RetryConfig,
) *KafkaConsumer {
	readers := make([]*kafka.Reader, len(topics))
	for i, topic := range topics {
		readers[i] = kafka.NewReader(kafka.ReaderConfig{
			Brokers:  brokers,
			GroupID:  groupID,
			Topic:    topic,
			MinBytes: 1,
			MaxBytes: 10e6,
		})
	}

	return &KafkaConsumer{
		Readers:      readers,
		DLQPublisher: dlqPublisher,
		RetryConfig:  retryConfig,
	}
}

func (c *KafkaConsumer) Listen(ctx context.Context, handler func(ctx context.Context, topic string, value []byte) error) {
	for _, reader := range c.Readers {
		go func(r *kafka.Reader) {
			for {
				msg, err := r.ReadMessage(ctx)
				if err != nil {
					if ctx.Err() != nil {
						return
					}
					logrus.Errorf("kafka read error: %s", err.Error())
					continue
				}
				c.processMessage(ctx, msg, handler)
			}
		}(reader)
	}
}

func (c *KafkaConsumer) processMessage(ctx context.Context, msg kafka.Message, handler func(ctx context.Context, topic string, value []byte) error) {
	err := policy.Retry(ctx, c.RetryConfig, func(ctx context.Context) error {
		return handler(ctx, msg.Topic, msg.Value)
	})
	if err == nil {
		return
	}

	logrus.Errorf("message failed after %d retries: topic=%s key=%s: %s",
		c.RetryConfig.MaxAttempts, msg.Topic, string(msg.Key), err.Error())

	if c.DLQPublisher == nil {
		return
	}

	dlqMessage := models.DLQMessage{
		OriginalTopic: msg.Topic,
		Key:           string(msg.Key),
		Value:         string(msg.Value),
		Timestamp:     time.Now().UTC(),
		Attempts:      c.RetryConfig.MaxAttempts,
	}
	if err := c.DLQPublisher.Publish(ctx, models.PaymentsDLQTopic, string(msg.Key), dlqMessage); err != nil {
		logrus.Errorf("failed to send message to DLQ: %s", err.Error())
	} else {
		logrus.Infof("message sent to DLQ: original topic=%s key=%s", msg.Topic, string(msg.Key))
	}
}

// Close stops the underlying readers.
func (c *KafkaConsumer) Close() error {
	var firstErr error
	for _, r := range c.Readers {
		if err := r.Close(); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}
