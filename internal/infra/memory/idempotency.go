package memory

import (
	"context"
	"sync"
)

// IdempotencyStore maps an inbound message id to the external order id its
// init created, so replays return the original order instead of a duplicate.
type IdempotencyStore struct {
	mu   sync.RWMutex
	keys map[string]string
}

func NewIdempotencyStore() *IdempotencyStore {
	return &IdempotencyStore{keys: make(map[string]string)}
}

func (s *IdempotencyStore) Get(_ context.Context, messageID string) (string, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	extID, ok := s.keys[messageID]
	return extID, ok, nil
}

func (s *IdempotencyStore) Put(_ context.Context, messageID, externalOrderID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.keys[messageID]; !exists {
		s.keys[messageID] = externalOrderID
	}
	return nil
}
