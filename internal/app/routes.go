package app

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/magpress/payment-service/internal/handlers"
	"github.com/magpress/payment-service/internal/middleware"
	"github.com/magpress/payment-service/internal/notify"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func (a *App) RegisterRoutes(h *handlers.PaymentHandler, n *notify.Handler) {
	a.Router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	a.Router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	subscribers := a.Router.Group("/subscribers/:id", middleware.RequireSubscriber())
	subscribers.POST("/payment-method", h.AttachInstrument)
	subscribers.POST("/charge", h.Charge)
	subscribers.GET("/notifications", n.ServeWS)
}
