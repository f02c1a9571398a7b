package app

import (
	"context"
	"fmt"
	"log"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/magpress/payment-service/config"
	"github.com/magpress/payment-service/internal/consumer"
	"github.com/magpress/payment-service/internal/database"
	"github.com/magpress/payment-service/internal/dispatcher"
	"github.com/magpress/payment-service/internal/events"
	"github.com/magpress/payment-service/internal/gateway"
	"github.com/magpress/payment-service/internal/handlers"
	"github.com/magpress/payment-service/internal/ledger"
	"github.com/magpress/payment-service/internal/metrics"
	"github.com/magpress/payment-service/internal/models"
	"github.com/magpress/payment-service/internal/notify"
	"github.com/magpress/payment-service/internal/policy"
	"github.com/magpress/payment-service/internal/publisher"
	"github.com/magpress/payment-service/internal/repository/postgres"
	"github.com/magpress/payment-service/internal/service"
	"github.com/sirupsen/logrus"
)

type App struct {
	config *config.Config
	Router *gin.Engine
	hub    *notify.Hub
}

func (a *App) Initialize(cfg *config.Config) {
	a.config = cfg
	db, err := cfg.DB.GormConnect()
	if err != nil {
		log.Fatalf("failed to connect to database: %v", err)
	}

	if err := db.AutoMigrate(&models.Subscriber{}, &models.SubscriptionAttempt{}); err != nil {
		log.Fatalf("failed to auto migrate: %v", err)
	}

	if cfg.APP.SeedData {
		if err := database.SeedSubscribers(db); err != nil {
			log.Fatalf("failed to seed subscribers: %v", err)
		}
	}

	subscriberRepo := postgres.New[models.Subscriber](db)
	subscriptionLedger := ledger.New(db)

	metrics.RegisterMetrics()
	metrics.RegisterPendingAttemptsGauge(func() float64 {
		count, err := subscriptionLedger.CountPending(context.Background())
		if err != nil {
			logrus.Errorf("error counting pending attempts: %s", err.Error())
			return 0
		}
		return float64(count)
	})

	publishTopics := []string{cfg.Kafka.PaymentRequestTopic, cfg.Kafka.DLQTopic}
	kafkaPublisher := publisher.NewKafkaPublisher(
		cfg.Kafka.Brokers, publishTopics, cfg.Kafka.GetRetryConfig(), cfg.Kafka.PublishTimeout)

	gatewayClient := gateway.NewClient(
		cfg.Gateway.URL,
		gateway.APIKeyHeaderFactory{APIKey: cfg.Gateway.APIKey},
		cfg.Gateway.Timeout,
	)

	breaker := policy.NewCircuitBreaker("payments-publish", cfg.Kafka.GetBreakerConfig())
	paymentDispatcher := dispatcher.New(kafkaPublisher, gatewayClient, breaker)

	a.hub = notify.NewHub()
	go a.hub.Run(context.Background())

	bus := events.NewOutcomeBus()
	bus.Register("subscription-extension", events.PriorityExtension,
		events.NewExtensionHandler(subscriberRepo, subscriptionLedger).Handle)
	bus.Register("renewal-email", events.PriorityNotification,
		events.NewEmailHandler().Handle)

	paymentService := service.NewPaymentService(subscriptionLedger, paymentDispatcher, bus, a.hub)
	confirmationService := service.NewConfirmationService(subscriberRepo, subscriptionLedger, bus, a.hub)
	paymentHandler := handlers.NewPaymentHandler(paymentService, confirmationService, subscriberRepo)
	notifyHandler := notify.NewHandler(a.hub)

	a.Router = gin.Default()
	a.Router.Use(gin.Recovery())
	a.RegisterRoutes(paymentHandler, notifyHandler)

	a.initSubscribers(paymentHandler, kafkaPublisher)
}

func (a *App) Run() {
	err := a.Router.Run(fmt.Sprintf(":%s", a.config.APP.PORT))
	if err != nil {
		panic(err)
	}
}

func (a *App) initSubscribers(paymentHandler *handlers.PaymentHandler, dlqPublisher *publisher.KafkaPublisher) {
	brokers := strings.Split(a.config.Kafka.Brokers, ",")
	topics := []string{a.config.Kafka.ConfirmationTopic}
	groupID := a.config.Kafka.PaymentConsumerGroup

	kafkaConsumer := consumer.NewMultiTopicConsumer(
		brokers, topics, groupID, dlqPublisher, a.config.Kafka.GetRetryConfig())

	kafkaConsumer.Listen(context.Background(), func(ctx context.Context, topic string, value []byte) error {
		err := paymentHandler.HandleEvents(ctx, topic, value)
		if err != nil {
			logrus.Error(err.Error())
		}
		return err
	})
}
