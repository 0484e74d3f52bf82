package postgres

import (
	"context"
	"errors"
	"fmt"

	"marketplace-settlement/internal/core/domain"

	"github.com/jackc/pgx/v5"
)

// OrderStore implements ports.OrderStore.
type OrderStore struct {
	pool Pool
}

// NewOrderStore creates a new OrderStore.
func NewOrderStore(pool Pool) *OrderStore {
	return &OrderStore{pool: pool}
}

// GetByID fetches an order with its customer contact info. Returns nil when
// the order does not exist.
func (s *OrderStore) GetByID(ctx context.Context, id int64) (*domain.Order, error) {
	query := `SELECT o.id_order, o.id_client, o.id_cart, o.id_payment_method, o.status, o.total_amount,
		c.email, c.name, o.created_at
		FROM orders o
		JOIN clients c ON c.id_client = o.id_client
		WHERE o.id_order = $1`

	o := &domain.Order{}
	err := s.pool.QueryRow(ctx, query, id).Scan(
		&o.ID, &o.ClientID, &o.CartID, &o.PaymentMethodID,
		&o.Status, &o.TotalAmount, &o.CustomerEmail, &o.CustomerName,
		&o.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get order: %w", err)
	}
	return o, nil
}

// UpdateStatus applies a compare-and-set status change. The WHERE clause
// pins the expected current status, so a concurrent writer makes the update
// match zero rows instead of silently overwriting.
func (s *OrderStore) UpdateStatus(ctx context.Context, id int64, from, to domain.OrderStatus) (bool, error) {
	query := `UPDATE orders SET status = $1 WHERE id_order = $2 AND status = $3`

	tag, err := s.pool.Exec(ctx, query, to, id, from)
	if err != nil {
		return false, fmt.Errorf("update order status: %w", err)
	}
	return tag.RowsAffected() > 0, nil
}
