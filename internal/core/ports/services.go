package ports

import (
	"context"
	"time"

	"marketplace-settlement/internal/core/domain"
)

// OrderLifecycle validates and applies order status transitions.
type OrderLifecycle interface {
	// Transition moves the order to next if the edge exists in the status
	// graph. Invalid transitions and lost updates fail synchronously with
	// an invalid-transition error; nothing is retried.
	Transition(ctx context.Context, orderID int64, next domain.OrderStatus) (*domain.Order, error)
}

// AuthorizeParams is the input for a payment authorization call.
type AuthorizeParams struct {
	OrderID     int64          `json:"orderId,omitempty"`
	CustomerID  int64          `json:"customerId,omitempty"`
	Amount      float64        `json:"amount"`
	Currency    string         `json:"currency"`
	Description string         `json:"description,omitempty"`
	Metadata    map[string]any `json:"metadata,omitempty"`
}

// RefundParams is the input for a refund call.
type RefundParams struct {
	TransactionID string  `json:"transactionId"`
	Amount        float64 `json:"amount,omitempty"`
	Reason        string  `json:"reason,omitempty"`
}

// PaymentGateway is the synchronous boundary to the external payment
// authority. Calls block up to the configured timeout and always yield a
// result; failures are encoded in the result, never returned as errors.
type PaymentGateway interface {
	Authorize(ctx context.Context, params AuthorizeParams) *domain.PaymentResult
	Refund(ctx context.Context, params RefundParams) *domain.RefundResult
	GetTransaction(ctx context.Context, transactionID string) (*domain.Transaction, error)
}

// SettledOrder is the slice of an order the notifier needs.
type SettledOrder struct {
	OrderID       int64
	CustomerEmail string
	CustomerName  string
	TotalAmount   float64
}

// EventNotifier dispatches the loyalty-coupon webhook for a settled order.
// Dispatch is fire-and-forget: delivery failures are logged and never reach
// the caller, and there is no retry queue.
type EventNotifier interface {
	Dispatch(order SettledOrder)
}

// SignatureService handles HMAC-SHA256 signing and verification of
// webhook payloads.
type SignatureService interface {
	Sign(secret string, payload []byte) string
	Verify(secret string, payload []byte, signature string) bool
}

// PartnerWebhookHandler processes inbound partner events after signature
// verification. The raw body must be the exact bytes the signature covers.
type PartnerWebhookHandler interface {
	HandleEvent(ctx context.Context, rawBody []byte, signature string) error
}

// TokenClaims holds the parsed identity of a realtime subscriber.
type TokenClaims struct {
	UserID   string
	Role     string // "admin" or "seller"
	SellerID string // set when Role == "seller"
}

// TokenService validates the JWTs presented on realtime connections.
type TokenService interface {
	Generate(claims TokenClaims, expiry time.Duration) (string, error)
	Validate(tokenString string) (*TokenClaims, error)
}

// StatsBroadcaster pushes a stats event to every matching live connection.
type StatsBroadcaster interface {
	Broadcast(event domain.StatsEvent)
}
