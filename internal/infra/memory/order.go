package memory

import (
	"context"
	"sync"
	"time"

	"ondc-seller-bridge/internal/domain/order"
	"ondc-seller-bridge/internal/pkg/errs"
)

type orderRecord struct {
	order order.Order
	items []order.Item
}

// OrderStore is an in-memory order repository keyed by the protocol-visible
// external order id.
type OrderStore struct {
	mu     sync.RWMutex
	byExt  map[string]orderRecord
}

func NewOrderStore() *OrderStore {
	return &OrderStore{byExt: make(map[string]orderRecord)}
}

func (s *OrderStore) Create(_ context.Context, o *order.Order, items []order.Item) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.byExt[o.ExternalID]; exists {
		return errs.Wrap(errs.ErrOrderAlreadyExists, o.ExternalID)
	}
	s.byExt[o.ExternalID] = orderRecord{order: *o, items: copyItems(items)}
	return nil
}

func (s *OrderStore) FindByExternalID(_ context.Context, externalID string) (*order.Order, []order.Item, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rec, ok := s.byExt[externalID]
	if !ok {
		return nil, nil, errs.Wrap(errs.ErrOrderNotFound, externalID)
	}
	o := rec.order
	return &o, copyItems(rec.items), nil
}

func (s *OrderStore) UpdateStatus(_ context.Context, externalID string, st order.Status, now time.Time) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	rec, ok := s.byExt[externalID]
	if !ok {
		return errs.Wrap(errs.ErrOrderNotFound, externalID)
	}
	rec.order.Status = st
	rec.order.UpdatedAt = now
	s.byExt[externalID] = rec
	return nil
}

func copyItems(items []order.Item) []order.Item {
	out := make([]order.Item, len(items))
	copy(out, items)
	return out
}
