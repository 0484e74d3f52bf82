package integration

import (
	"context"
	"sync"

	"marketplace-settlement/internal/core/domain"
)

// In-memory stores backing the integration stack. They mirror the
// concurrency semantics of the real postgres stores: UpdateStatus is a
// compare-and-set, and saving a coupon with a known code is a no-op.

type inMemoryOrderStore struct {
	mu     sync.Mutex
	orders map[int64]*domain.Order
}

func newInMemoryOrderStore() *inMemoryOrderStore {
	return &inMemoryOrderStore{orders: make(map[int64]*domain.Order)}
}

func (s *inMemoryOrderStore) seed(order *domain.Order) {
	s.mu.Lock()
	defer s.mu.Unlock()
	cp := *order
	s.orders[order.ID] = &cp
}

func (s *inMemoryOrderStore) GetByID(_ context.Context, id int64) (*domain.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	order, ok := s.orders[id]
	if !ok {
		return nil, nil
	}
	cp := *order
	return &cp, nil
}

func (s *inMemoryOrderStore) UpdateStatus(_ context.Context, id int64, from, to domain.OrderStatus) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	order, ok := s.orders[id]
	if !ok || order.Status != from {
		return false, nil
	}
	order.Status = to
	return true, nil
}

func (s *inMemoryOrderStore) status(id int64) domain.OrderStatus {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.orders[id].Status
}

type inMemoryCouponStore struct {
	mu      sync.Mutex
	coupons map[string]*domain.PartnerCoupon
	saves   int
}

func newInMemoryCouponStore() *inMemoryCouponStore {
	return &inMemoryCouponStore{coupons: make(map[string]*domain.PartnerCoupon)}
}

func (s *inMemoryCouponStore) Save(_ context.Context, coupon *domain.PartnerCoupon) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, exists := s.coupons[coupon.Code]; exists {
		return nil
	}
	cp := *coupon
	s.coupons[coupon.Code] = &cp
	s.saves++
	return nil
}

func (s *inMemoryCouponStore) get(code string) *domain.PartnerCoupon {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.coupons[code]
}

func (s *inMemoryCouponStore) saveCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.saves
}
