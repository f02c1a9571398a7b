package config

import (
	"os"
	"time"

	"github.com/caarlos0/env/v6"
	"github.com/joho/godotenv"
	"github.com/magpress/payment-service/internal/policy"
	"github.com/sirupsen/logrus"
)

func New() (*Config, error) {
	var Config Config
	if os.Getenv("GO_ENV") == "local" {
		_ = godotenv.Load(".env")
	}
	if err := env.Parse(&Config); err != nil {
		logrus.Fatalf("Error initializing: %s", err.Error())
		os.Exit(1)
	}
	return &Config, nil
}

type Config struct {
	APP
	DB
	Kafka
	Gateway
}

type DB struct {
	HOST     string `env:"DB_HOST"`
	USER     string `env:"DB_USER"`
	PASSWORD string `env:"DB_PASSWORD"`
	NAME     string `env:"DB_NAME"`
	PORT     string `env:"DB_PORT"`
	SSLMODE  string `env:"DB_SSLMODE"`
}

type APP struct {
	PORT     string `env:"APP_PORT" envDefault:"8080"`
	SeedData bool   `env:"APP_SEED_DATA" envDefault:"false"`
}

type Kafka struct {
	Brokers              string `env:"KAFKA_BROKERS" envDefault:"localhost:9092"`
	PaymentConsumerGroup string `env:"KAFKA_PAYMENT_GROUP_ID" envDefault:"payment-service"`
	PaymentRequestTopic  string `env:"KAFKA_PAYMENT_REQUEST_TOPIC" envDefault:"payments"`
	ConfirmationTopic    string `env:"KAFKA_CONFIRMATION_TOPIC" envDefault:"post-payments"`
	DLQTopic             string `env:"KAFKA_DLQ_TOPIC" envDefault:"payments.dlq"`

	PublishTimeout time.Duration `env:"KAFKA_PUBLISH_TIMEOUT" envDefault:"5s"`

	RetryMaxAttempts int           `env:"KAFKA_RETRY_MAX_ATTEMPTS" envDefault:"3"`
	RetryBaseDelay   time.Duration `env:"KAFKA_RETRY_BASE_DELAY" envDefault:"100ms"`
	RetryMaxDelay    time.Duration `env:"KAFKA_RETRY_MAX_DELAY" envDefault:"10s"`
	RetryJitter      bool          `env:"KAFKA_RETRY_JITTER" envDefault:"true"`

	BreakerFailureThreshold int           `env:"KAFKA_BREAKER_FAILURE_THRESHOLD" envDefault:"3"`
	BreakerSuccessThreshold int           `env:"KAFKA_BREAKER_SUCCESS_THRESHOLD" envDefault:"2"`
	BreakerCooldown         time.Duration `env:"KAFKA_BREAKER_COOLDOWN" envDefault:"30s"`
}

type Gateway struct {
	URL     string        `env:"GATEWAY_URL" envDefault:"http://localhost:8081"`
	APIKey  string        `env:"GATEWAY_API_KEY"`
	Timeout time.Duration `env:"GATEWAY_TIMEOUT" envDefault:"5s"`
}

func (k Kafka) GetRetryConfig() policy.RetryConfig {
	return policy.RetryConfig{
		MaxAttempts: k.RetryMaxAttempts,
		BaseDelay:   k.RetryBaseDelay,
		MaxDelay:    k.RetryMaxDelay,
		Jitter:      k.RetryJitter,
	}
}

func (k Kafka) GetBreakerConfig() policy.BreakerConfig {
	return policy.BreakerConfig{
		FailureThreshold: k.BreakerFailureThreshold,
		SuccessThreshold: k.BreakerSuccessThreshold,
		Cooldown:         k.BreakerCooldown,
	}
}
