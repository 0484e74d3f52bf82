package domain

import "time"

// OrderStatus represents the lifecycle state of an order.
type OrderStatus string

const (
	OrderStatusPending    OrderStatus = "pending"
	OrderStatusProcessing OrderStatus = "processing"
	OrderStatusShipped    OrderStatus = "shipped"
	OrderStatusDelivered  OrderStatus = "delivered"
	OrderStatusCancelled  OrderStatus = "cancelled"
)

// allowedTransitions is the fixed directed graph of status changes.
// delivered and cancelled are terminal.
var allowedTransitions = map[OrderStatus][]OrderStatus{
	OrderStatusPending:    {OrderStatusProcessing, OrderStatusCancelled},
	OrderStatusProcessing: {OrderStatusShipped, OrderStatusCancelled},
	OrderStatusShipped:    {OrderStatusDelivered},
	OrderStatusDelivered:  {},
	OrderStatusCancelled:  {},
}

// IsValid returns true if s is a known order status.
func (s OrderStatus) IsValid() bool {
	_, ok := allowedTransitions[s]
	return ok
}

// IsTerminal returns true if no further transition is allowed from s.
func (s OrderStatus) IsTerminal() bool {
	return len(allowedTransitions[s]) == 0 && s.IsValid()
}

// CanTransitionTo returns true if next is in the allowed-successor set of s.
func (s OrderStatus) CanTransitionTo(next OrderStatus) bool {
	for _, allowed := range allowedTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// Order is a settled or in-flight customer order. TotalAmount is fixed at
// creation; only Status moves, along the edges of allowedTransitions.
type Order struct {
	ID              int64       `json:"id_order"`
	ClientID        int64       `json:"id_client"`
	CartID          int64       `json:"id_cart"`
	PaymentMethodID int64       `json:"id_payment_method"`
	Status          OrderStatus `json:"status"`
	TotalAmount     float64     `json:"total_amount"`
	CustomerEmail   string      `json:"customer_email,omitempty"`
	CustomerName    string      `json:"customer_name,omitempty"`
	CreatedAt       time.Time   `json:"created_at"`
}
