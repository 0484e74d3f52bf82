package postgres

import (
	"context"
	"fmt"

	"marketplace-settlement/internal/core/domain"
)

// CouponStore implements ports.CouponStore.
type CouponStore struct {
	pool Pool
}

// NewCouponStore creates a new CouponStore.
func NewCouponStore(pool Pool) *CouponStore {
	return &CouponStore{pool: pool}
}

// Save inserts a partner-issued coupon. ON CONFLICT DO NOTHING backs up the
// redis idempotency marker: if the marker was lost, a redelivered code still
// cannot be credited twice.
func (s *CouponStore) Save(ctx context.Context, c *domain.PartnerCoupon) error {
	query := `INSERT INTO partner_coupons (code, discount_type, discount_percent, valid_for,
		expires_at, issued_by, minimum_purchase, customer_email, customer_name, is_active, used, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
		ON CONFLICT (code) DO NOTHING`

	_, err := s.pool.Exec(ctx, query,
		c.Code, c.DiscountType, c.DiscountPercent, c.ValidFor,
		c.ExpiresAt, c.IssuedBy, c.MinimumPurchase, c.CustomerEmail,
		c.CustomerName, c.Active, c.Used, c.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert partner coupon: %w", err)
	}
	return nil
}
