package handler

import (
	"context"
	"errors"
	"io"
	"strconv"
	"time"

	"marketplace-settlement/internal/core/domain"
	"marketplace-settlement/internal/core/ports"
	"marketplace-settlement/pkg/apperror"
	"marketplace-settlement/pkg/response"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// OrderHandler drives the settlement pipeline endpoints.
type OrderHandler struct {
	lifecycle ports.OrderLifecycle
	orders    ports.OrderStore
	gateway   ports.PaymentGateway
	notifier  ports.EventNotifier
	stats     ports.StatsPublisher
	log       zerolog.Logger
}

// NewOrderHandler creates a new OrderHandler.
func NewOrderHandler(
	lifecycle ports.OrderLifecycle,
	orders ports.OrderStore,
	gateway ports.PaymentGateway,
	notifier ports.EventNotifier,
	stats ports.StatsPublisher,
	log zerolog.Logger,
) *OrderHandler {
	return &OrderHandler{
		lifecycle: lifecycle,
		orders:    orders,
		gateway:   gateway,
		notifier:  notifier,
		stats:     stats,
		log:       log,
	}
}

type updateStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

type settleRequest struct {
	Currency string `json:"currency"`
}

// UpdateStatus handles PATCH /api/v1/orders/:id/status.
func (h *OrderHandler) UpdateStatus(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, apperror.Validation("order id must be numeric"))
		return
	}

	var req updateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}

	next := domain.OrderStatus(req.Status)
	order, err := h.lifecycle.Transition(c.Request.Context(), id, next)
	if err != nil {
		response.Error(c, err)
		return
	}

	h.publishStats(c.Request.Context(), order, "order_status_updated")

	// The loyalty coupon is awarded by Settle alone; status changes only
	// move the order and refresh the dashboards.
	response.OK(c, order)
}

// Settle handles POST /api/v1/orders/:id/settle. It charges the customer
// through the payment authority and, on success, moves the order to
// processing and fires the loyalty webhook.
func (h *OrderHandler) Settle(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, apperror.Validation("order id must be numeric"))
		return
	}

	var req settleRequest
	if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}
	currency := req.Currency
	if currency == "" {
		currency = "USD"
	}

	order, err := h.orders.GetByID(c.Request.Context(), id)
	if err != nil {
		response.Error(c, apperror.ErrDatabaseError(err))
		return
	}
	if order == nil {
		response.Error(c, apperror.ErrOrderNotFound(id))
		return
	}

	result := h.gateway.Authorize(c.Request.Context(), ports.AuthorizeParams{
		OrderID:     order.ID,
		CustomerID:  order.ClientID,
		Amount:      order.TotalAmount,
		Currency:    currency,
		Description: "order settlement",
	})
	if !result.Success {
		h.log.Warn().
			Int64("order_id", order.ID).
			Str("error", result.ErrorMessage).
			Msg("payment authorization declined")
		response.Error(c, apperror.ErrPaymentDeclined(result.ErrorMessage))
		return
	}

	updated, err := h.lifecycle.Transition(c.Request.Context(), id, domain.OrderStatusProcessing)
	if err != nil {
		// The charge went through but the order could not move. Surface the
		// transition error; the transaction id is logged for reconciliation.
		h.log.Error().
			Err(err).
			Int64("order_id", order.ID).
			Str("transaction_id", result.TransactionID).
			Msg("order settled but transition failed")
		response.Error(c, err)
		return
	}

	h.notifier.Dispatch(ports.SettledOrder{
		OrderID:       updated.ID,
		CustomerEmail: updated.CustomerEmail,
		CustomerName:  updated.CustomerName,
		TotalAmount:   updated.TotalAmount,
	})
	h.publishStats(c.Request.Context(), updated, "order_settled")

	response.OK(c, gin.H{
		"order":   updated,
		"payment": result,
	})
}

// publishStats fans the dashboard refresh signal out. Failures are logged
// and never block the request.
func (h *OrderHandler) publishStats(ctx context.Context, order *domain.Order, action string) {
	event := domain.StatsEvent{
		Type:      domain.EventAdminStatsUpdated,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
		Metadata: map[string]any{
			"order_id": order.ID,
			"status":   string(order.Status),
			"action":   action,
		},
	}
	if err := h.stats.Publish(ctx, event); err != nil {
		h.log.Warn().Err(err).Int64("order_id", order.ID).Msg("stats event not published")
	}
}
