package service

import (
	"context"
	"fmt"

	"marketplace-settlement/internal/core/domain"
	"marketplace-settlement/internal/core/ports"
	"marketplace-settlement/pkg/apperror"

	"github.com/rs/zerolog"
)

// LifecycleService implements ports.OrderLifecycle.
//
// The design assumes a single writer per order, but applies the status with
// a compare-and-set against the status that was just read, so two
// interleaved transitions cannot silently produce an invalid state: the
// loser surfaces an invalid-transition error instead.
type LifecycleService struct {
	orders ports.OrderStore
	log    zerolog.Logger
}

// NewLifecycleService creates a new LifecycleService.
func NewLifecycleService(orders ports.OrderStore, log zerolog.Logger) *LifecycleService {
	return &LifecycleService{orders: orders, log: log}
}

// Transition moves the order to next along the fixed status graph.
// Only the status field is persisted; the total is never recomputed.
func (s *LifecycleService) Transition(ctx context.Context, orderID int64, next domain.OrderStatus) (*domain.Order, error) {
	if !next.IsValid() {
		return nil, apperror.ErrUnknownStatus(string(next))
	}

	order, err := s.orders.GetByID(ctx, orderID)
	if err != nil {
		return nil, apperror.ErrDatabaseError(fmt.Errorf("load order %d: %w", orderID, err))
	}
	if order == nil {
		return nil, apperror.ErrOrderNotFound(orderID)
	}

	if !order.Status.CanTransitionTo(next) {
		return nil, apperror.ErrInvalidTransition(string(order.Status), string(next))
	}

	applied, err := s.orders.UpdateStatus(ctx, orderID, order.Status, next)
	if err != nil {
		return nil, apperror.ErrDatabaseError(fmt.Errorf("update order %d status: %w", orderID, err))
	}
	if !applied {
		// Another writer moved the order between our read and write.
		s.log.Warn().
			Int64("order_id", orderID).
			Str("from", string(order.Status)).
			Str("to", string(next)).
			Msg("order status changed concurrently, transition rejected")
		return nil, apperror.ErrInvalidTransition(string(order.Status), string(next))
	}

	s.log.Info().
		Int64("order_id", orderID).
		Str("from", string(order.Status)).
		Str("to", string(next)).
		Msg("order status transitioned")

	order.Status = next
	return order, nil
}
