package postgres

import (
	"context"
	"errors"
	"testing"
	"time"

	"marketplace-settlement/internal/core/domain"

	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestCoupon() *domain.PartnerCoupon {
	expires := time.Now().UTC().Add(30 * 24 * time.Hour).Truncate(time.Microsecond)
	return &domain.PartnerCoupon{
		Code:            "GYM-100",
		DiscountType:    "percentage",
		DiscountPercent: 25,
		ValidFor:        "marketplace_products",
		ExpiresAt:       &expires,
		IssuedBy:        "Gym Management",
		MinimumPurchase: 10,
		CustomerEmail:   "dana@example.com",
		CustomerName:    "Dana",
		Active:          true,
		Used:            false,
		CreatedAt:       time.Now().UTC().Truncate(time.Microsecond),
	}
}

func TestCouponStore_Save(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	store := NewCouponStore(mock)
	c := newTestCoupon()

	mock.ExpectExec("INSERT INTO partner_coupons").
		WithArgs(
			c.Code, c.DiscountType, c.DiscountPercent, c.ValidFor,
			c.ExpiresAt, c.IssuedBy, c.MinimumPurchase, c.CustomerEmail,
			c.CustomerName, c.Active, c.Used, c.CreatedAt,
		).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))

	err = store.Save(context.Background(), c)
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCouponStore_Save_ConflictIsNoop(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	store := NewCouponStore(mock)
	c := newTestCoupon()

	mock.ExpectExec("INSERT INTO partner_coupons").
		WithArgs(
			c.Code, c.DiscountType, c.DiscountPercent, c.ValidFor,
			c.ExpiresAt, c.IssuedBy, c.MinimumPurchase, c.CustomerEmail,
			c.CustomerName, c.Active, c.Used, c.CreatedAt,
		).
		WillReturnResult(pgxmock.NewResult("INSERT", 0))

	err = store.Save(context.Background(), c)
	assert.NoError(t, err)
}

func TestCouponStore_Save_Error(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	store := NewCouponStore(mock)
	c := newTestCoupon()

	mock.ExpectExec("INSERT INTO partner_coupons").
		WithArgs(
			c.Code, c.DiscountType, c.DiscountPercent, c.ValidFor,
			c.ExpiresAt, c.IssuedBy, c.MinimumPurchase, c.CustomerEmail,
			c.CustomerName, c.Active, c.Used, c.CreatedAt,
		).
		WillReturnError(errors.New("relation missing"))

	err = store.Save(context.Background(), c)
	assert.Error(t, err)
}

func TestHealthCheck_Ping(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	hc := NewHealthCheck(mock)
	assert.Equal(t, "postgresql", hc.Name())

	mock.ExpectExec("SELECT 1").WillReturnResult(pgxmock.NewResult("SELECT", 1))
	assert.NoError(t, hc.Ping(context.Background()))
}
