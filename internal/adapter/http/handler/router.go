package handler

import (
	"marketplace-settlement/internal/adapter/http/middleware"
	"marketplace-settlement/internal/core/ports"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// RouterDeps holds all dependencies needed to set up routes.
type RouterDeps struct {
	Lifecycle      ports.OrderLifecycle
	Orders         ports.OrderStore
	Gateway        ports.PaymentGateway
	Notifier       ports.EventNotifier
	StatsPub       ports.StatsPublisher
	Webhooks       ports.PartnerWebhookHandler
	WSHandler      gin.HandlerFunc // nil = realtime channel disabled
	HealthCheckers []ports.HealthChecker
	Logger         zerolog.Logger
}

// SetupRouter initialises the Gin engine with all routes and middleware.
func SetupRouter(deps RouterDeps) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()

	// Global middleware
	r.Use(middleware.Recovery(deps.Logger))
	r.Use(middleware.RequestID())
	r.Use(middleware.RequestLogger(deps.Logger))
	r.Use(middleware.MaxBodySize(1 << 20)) // 1 MB request body limit

	// Health check (deep — verifies PostgreSQL + Redis)
	r.GET("/health", HealthCheck(deps.HealthCheckers...))

	// Realtime stats channel
	if deps.WSHandler != nil {
		r.GET("/ws", deps.WSHandler)
	}

	// Inbound partner webhooks (signature-verified over the raw body)
	webhookHandler := NewWebhookHandler(deps.Webhooks)
	r.POST("/api/webhooks/partner", webhookHandler.Receive)

	// API v1 routes
	v1 := r.Group("/api/v1")

	orderHandler := NewOrderHandler(deps.Lifecycle, deps.Orders, deps.Gateway, deps.Notifier, deps.StatsPub, deps.Logger)
	orders := v1.Group("/orders")
	{
		orders.PATCH("/:id/status", orderHandler.UpdateStatus)
		orders.POST("/:id/settle", orderHandler.Settle)
	}

	paymentHandler := NewPaymentHandler(deps.Gateway)
	payments := v1.Group("/payments")
	{
		payments.GET("/transaction/:id", paymentHandler.GetTransaction)
		payments.POST("/refund", paymentHandler.Refund)
	}

	return r
}
