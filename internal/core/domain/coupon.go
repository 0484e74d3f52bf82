package domain

import "time"

// Discount tier thresholds. Highest threshold wins; orders under the lowest
// tier earn no coupon and no webhook is sent.
const (
	TierHighThreshold = 20.0
	TierMidThreshold  = 10.0
	TierLowThreshold  = 5.0

	TierHighPercent = 30
	TierMidPercent  = 20
	TierLowPercent  = 10
)

// CouponValidity is the fixed window a loyalty coupon stays redeemable.
const CouponValidity = 60 * 24 * time.Hour

// DiscountFor returns the discount percentage an order total earns,
// or 0 if it does not qualify.
func DiscountFor(totalAmount float64) int {
	switch {
	case totalAmount >= TierHighThreshold:
		return TierHighPercent
	case totalAmount >= TierMidThreshold:
		return TierMidPercent
	case totalAmount >= TierLowThreshold:
		return TierLowPercent
	default:
		return 0
	}
}

// Coupon is the loyalty coupon embedded in an outbound partner webhook.
type Coupon struct {
	Code          string `json:"coupon_code"`
	DiscountType  string `json:"discount_type"`
	DiscountValue int    `json:"discount_value"`
	ValidFrom     string `json:"valid_from"`
	ValidUntil    string `json:"valid_until"`
	Description   string `json:"description"`
}

// WebhookData is the payload body of an order-completed partner webhook.
type WebhookData struct {
	OrderID       int64   `json:"order_id"`
	CustomerEmail string  `json:"customer_email"`
	CustomerName  string  `json:"customer_name"`
	TotalAmount   float64 `json:"total_amount"`
	CouponEarned  Coupon  `json:"coupon_earned"`
	Timestamp     string  `json:"timestamp"`
}

// WebhookPayload is the full signed envelope POSTed to the partner.
// It is constructed once per qualifying order and sent at most once.
type WebhookPayload struct {
	Event string      `json:"event"`
	Data  WebhookData `json:"data"`
}

// PartnerCoupon is a coupon credited to a customer from an inbound,
// signature-verified partner webhook.
type PartnerCoupon struct {
	Code            string     `json:"code"`
	DiscountType    string     `json:"discount_type"`
	DiscountPercent int        `json:"discount_percent"`
	ValidFor        string     `json:"valid_for"`
	ExpiresAt       *time.Time `json:"expires_at,omitempty"`
	IssuedBy        string     `json:"issued_by"`
	MinimumPurchase float64    `json:"minimum_purchase"`
	CustomerEmail   string     `json:"customer_email"`
	CustomerName    string     `json:"customer_name,omitempty"`
	Active          bool       `json:"is_active"`
	Used            bool       `json:"used"`
	CreatedAt       time.Time  `json:"created_at"`
}
