package publisher

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/magpress/payment-service/internal/policy"
	kafka "github.com/segmentio/kafka-go"
	"github.com/sirupsen/logrus"
)

// KafkaPublisher writes JSON-encoded messages to a fixed set of topics. Each
// publish is retried per the configured policy, every attempt bounded by
// AttemptTimeout.
type KafkaPublisher struct {
	Writers        map[string]*kafka.Writer
	RetryConfig    policy.RetryConfig
	AttemptTimeout time.Duration
}

func NewKafkaPublisher(kafkaURL string, topics []string, retryConfig policy.RetryConfig, attemptTimeout time.Duration) *KafkaPublisher {
	writers := make(map[string]*kafka.Writer)
	if attemptTimeout == 0 {
		attemptTimeout = 5 * time.Second
	}
	if retryConfig.MaxAttempts == 0 {
		retryConfig.MaxAttempts = 3
	}
	if retryConfig.BaseDelay == 0 {
		retryConfig.BaseDelay = 100 * time.Millisecond
	}
	if retryConfig.MaxDelay == 0 {
		retryConfig.MaxDelay = 10 * time.Second
	}

	for _, t := range topics {
		writers[t] = &kafka.Writer{
			Addr:     kafka.TCP(kafkaURL),
			Topic:    t,
			Balancer: &kafka.LeastBytes{},
		}
	}

	return &KafkaPublisher{
		Writers:        writers,
		RetryConfig:    retryConfig,
		AttemptTimeout: attemptTimeout,
	}
}

// Publish marshals the message and writes it to the topic, keyed so that
// messages for one subscriber stay ordered within a partition.
func (p *KafkaPublisher) Publish(ctx context.Context, topic string, key string, message interface{}) error {
	writer, ok := p.Writers[topic]
	if !ok {
		return fmt.Errorf("error no writer configured for topic %s", topic)
	}

	data, err := json.Marshal(message)
	if err != nil {
		return fmt.Errorf("error marshaling message: %w", err)
	}

	msg := kafka.Message{
		Key:   []byte(key),
		Value: data,
	}

	attempt := 0
	err = policy.Retry(ctx, p.RetryConfig, func(ctx context.Context) error {
		attempt++
		attemptCtx, cancel := context.WithTimeout(ctx, p.AttemptTimeout)
		defer cancel()

		if writeErr := writer.WriteMessages(attemptCtx, msg); writeErr != nil {
			logrus.Warnf("publish attempt %d/%d to topic '%s' failed: %s",
				attempt, p.RetryConfig.MaxAttempts, topic, writeErr.Error())
			return writeErr
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("failed to publish message to topic '%s' after %d attempts: %w",
			topic, attempt, err)
	}

	if attempt > 1 {
		logrus.Infof("message published to topic '%s' after %d attempts", topic, attempt)
	}
	return nil
}

// Close releases the underlying writers.
func (p *KafkaPublisher) Close() error {
	var firstErr error
	for _, w := range p.Writers {
		if err := w.Close(); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}
