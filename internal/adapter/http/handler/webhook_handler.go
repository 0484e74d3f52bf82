package handler

import (
	"io"

	"marketplace-settlement/internal/core/ports"
	"marketplace-settlement/pkg/apperror"
	"marketplace-settlement/pkg/response"

	"github.com/gin-gonic/gin"
)

// SignatureHeader carries the partner's HMAC-SHA256 hex digest.
const SignatureHeader = "x-signature"

// WebhookHandler receives signed partner events.
type WebhookHandler struct {
	webhooks ports.PartnerWebhookHandler
}

// NewWebhookHandler creates a new WebhookHandler.
func NewWebhookHandler(webhooks ports.PartnerWebhookHandler) *WebhookHandler {
	return &WebhookHandler{webhooks: webhooks}
}

// Receive handles POST /api/webhooks/partner. The body is read raw: the
// signature covers the exact bytes on the wire, so no re-encoding may happen
// before verification.
func (h *WebhookHandler) Receive(c *gin.Context) {
	rawBody, err := io.ReadAll(c.Request.Body)
	if err != nil {
		response.Error(c, apperror.Validation("cannot read request body"))
		return
	}

	signature := c.GetHeader(SignatureHeader)
	if err := h.webhooks.HandleEvent(c.Request.Context(), rawBody, signature); err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, gin.H{"received": true})
}
