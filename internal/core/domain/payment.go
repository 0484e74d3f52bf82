package domain

// PaymentStatus represents the state reported by the payment authority.
type PaymentStatus string

const (
	PaymentStatusPending   PaymentStatus = "pending"
	PaymentStatusCompleted PaymentStatus = "completed"
	PaymentStatusFailed    PaymentStatus = "failed"
	PaymentStatusRefunded  PaymentStatus = "refunded"
)

// PaymentResult is the boundary contract with the payment authority.
// It is always produced, never an exception: network failures, timeouts and
// non-2xx responses are all folded into Success=false with ErrorMessage set.
type PaymentResult struct {
	Success       bool           `json:"success"`
	TransactionID string         `json:"transactionId"`
	Amount        float64        `json:"amount"`
	Currency      string         `json:"currency"`
	Status        PaymentStatus  `json:"status"`
	Metadata      map[string]any `json:"metadata,omitempty"`
	ErrorMessage  string         `json:"errorMessage,omitempty"`
}

// RefundResult mirrors PaymentResult for refund operations.
type RefundResult struct {
	Success      bool          `json:"success"`
	RefundID     string        `json:"refundId"`
	Amount       float64       `json:"amount"`
	Currency     string        `json:"currency,omitempty"`
	Status       PaymentStatus `json:"status"`
	ErrorMessage string        `json:"errorMessage,omitempty"`
}

// Transaction is the payment authority's record of a processed payment,
// as returned by its transaction lookup endpoint.
type Transaction struct {
	TransactionID string        `json:"transaction_id"`
	Amount        float64       `json:"amount"`
	Currency      string        `json:"currency"`
	Status        PaymentStatus `json:"status"`
	OrderID       *int64        `json:"order_id,omitempty"`
	CustomerID    *int64        `json:"customer_id,omitempty"`
	Provider      string        `json:"provider"`
	RefundID      *string       `json:"refund_id,omitempty"`
	ErrorMessage  *string       `json:"error_message,omitempty"`
}
