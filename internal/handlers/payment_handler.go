package handlers

import (
	"context"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/magpress/payment-service/internal/models"
	"github.com/magpress/payment-service/internal/models/dto"
	"github.com/magpress/payment-service/internal/service"
	"github.com/sirupsen/logrus"
)

type ChargeService interface {
	ChargeSubscriber(ctx context.Context, subscriber *models.Subscriber) (service.ChargeResult, error)
}

type ConfirmationService interface {
	HandleConfirmation(ctx context.Context, raw []byte) error
}

type SubscriberRepo interface {
	GetByID(ctx context.Context, id string) (*models.Subscriber, error)
	Update(ctx context.Context, subscriber *models.Subscriber, id string) error
}

type PaymentHandler struct {
	Service       ChargeService
	Confirmations ConfirmationService
	Subscribers   SubscriberRepo
}

func NewPaymentHandler(s ChargeService, confirmations ConfirmationService, subscribers SubscriberRepo) *PaymentHandler {
	return &PaymentHandler{
		Service:       s,
		Confirmations: confirmations,
		Subscribers:   subscribers,
	}
}

// POST /subscribers/:id/payment-method
func (h *PaymentHandler) AttachInstrument(c *gin.Context) {
	var req dto.Instrument
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	req.Sanitize()
	if err := req.Validate(); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	subscriber, err := h.Subscribers.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "subscriber not found"})
		return
	}

	subscriber.Instrument = req.ToEntity()
	if err := h.Subscribers.Update(c.Request.Context(), subscriber, subscriber.ID); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.Status(http.StatusNoContent)
}

// POST /subscribers/:id/charge
func (h *PaymentHandler) Charge(c *gin.Context) {
	subscriber, err := h.Subscribers.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "subscriber not found"})
		return
	}

	result, err := h.Service.ChargeSubscriber(c.Request.Context(), subscriber)
	if err != nil {
		logrus.Errorf("error charging subscriber %s: %s", subscriber.ID, err.Error())
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not process charge"})
		return
	}

	switch result {
	case service.ChargeAccepted:
		c.JSON(http.StatusAccepted, gin.H{"status": string(result)})
	default:
		c.JSON(http.StatusNotAcceptable, gin.H{"status": string(result)})
	}
}

// HandleEvents routes messages from the subscribed Kafka topics.
func (h *PaymentHandler) HandleEvents(ctx context.Context, topic string, value []byte) error {
	switch topic {
	case models.PaymentConfirmationTopic:
		return h.Confirmations.HandleConfirmation(ctx, value)
	default:
		logrus.Errorf("topic not allowed %s", topic)
		return fmt.Errorf("topic not allowed %s", topic)
	}
}
