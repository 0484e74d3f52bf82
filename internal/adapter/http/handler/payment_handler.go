package handler

import (
	"marketplace-settlement/internal/core/ports"
	"marketplace-settlement/pkg/apperror"
	"marketplace-settlement/pkg/response"

	"github.com/gin-gonic/gin"
)

// PaymentHandler exposes the payment authority pass-through endpoints used
// by internal tooling.
type PaymentHandler struct {
	gateway ports.PaymentGateway
}

// NewPaymentHandler creates a new PaymentHandler.
func NewPaymentHandler(gateway ports.PaymentGateway) *PaymentHandler {
	return &PaymentHandler{gateway: gateway}
}

// GetTransaction handles GET /api/v1/payments/transaction/:id.
func (h *PaymentHandler) GetTransaction(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		response.Error(c, apperror.Validation("transaction id is required"))
		return
	}

	tx, err := h.gateway.GetTransaction(c.Request.Context(), id)
	if err != nil {
		response.Error(c, apperror.InternalError(err))
		return
	}

	response.OK(c, tx)
}

// Refund handles POST /api/v1/payments/refund. The gateway never errors;
// a failed refund comes back as a result with success=false.
func (h *PaymentHandler) Refund(c *gin.Context) {
	var req ports.RefundParams
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}
	if req.TransactionID == "" {
		response.Error(c, apperror.Validation("transactionId is required"))
		return
	}

	result := h.gateway.Refund(c.Request.Context(), req)
	response.OK(c, result)
}
