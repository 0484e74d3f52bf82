package ports

import (
	"context"
	"time"

	"marketplace-settlement/internal/core/domain"
)

// OrderStore is the narrow view of the external order persistence this
// service depends on. Only the status field is ever written.
type OrderStore interface {
	GetByID(ctx context.Context, id int64) (*domain.Order, error)
	// UpdateStatus applies a compare-and-set status change: the row is only
	// updated when its current status still equals from. Returns false when
	// no row matched, which callers must treat as a lost update.
	UpdateStatus(ctx context.Context, id int64, from, to domain.OrderStatus) (bool, error)
}

// CouponStore persists coupons credited from verified partner webhooks.
type CouponStore interface {
	Save(ctx context.Context, coupon *domain.PartnerCoupon) error
}

// ProcessedMarker records coupon codes that have already been applied, so a
// redelivered partner webhook produces no second side effect.
type ProcessedMarker interface {
	// MarkIfNew atomically records code and reports whether it was unseen.
	MarkIfNew(ctx context.Context, code string, ttl time.Duration) (bool, error)
	// Unmark removes a previously recorded code. Callers compensate with it
	// when the side effect behind the marker failed, so a redelivery can
	// run again.
	Unmark(ctx context.Context, code string) error
}

// StatsPublisher fans a stats event out to other service instances
// (the realtime hub subscribes to the same channel).
type StatsPublisher interface {
	Publish(ctx context.Context, event domain.StatsEvent) error
}
