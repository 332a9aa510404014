package memory

import (
	"context"
	"sort"
	"strings"
	"sync"

	"ondc-seller-bridge/internal/domain/catalog"
	"ondc-seller-bridge/internal/pkg/errs"
)

// CatalogStore is an in-memory catalog for local development and tests.
// Items are copied on read and write so callers can never mutate shared
// state behind the lock's back.
type CatalogStore struct {
	mu    sync.RWMutex
	items map[string]catalog.Item
}

func NewCatalogStore(seed ...catalog.Item) *CatalogStore {
	s := &CatalogStore{items: make(map[string]catalog.Item, len(seed))}
	for _, it := range seed {
		s.items[it.ID] = copyItem(it)
	}
	return s
}

func (s *CatalogStore) Put(_ context.Context, it catalog.Item) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.items[it.ID] = copyItem(it)
	return nil
}

func (s *CatalogStore) Get(_ context.Context, id string) (*catalog.Item, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	it, ok := s.items[id]
	if !ok {
		return nil, errs.Wrap(errs.ErrProductNotFound, id)
	}
	out := copyItem(it)
	return &out, nil
}

// SearchByName matches a case-insensitive substring against item names,
// sorted by name for a stable order, capped at limit.
func (s *CatalogStore) SearchByName(_ context.Context, fragment string, limit int) ([]catalog.Item, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	needle := strings.ToLower(fragment)
	result := make([]catalog.Item, 0)
	for _, it := range s.items {
		if strings.Contains(strings.ToLower(it.Name), needle) {
			result = append(result, copyItem(it))
		}
	}

	sort.Slice(result, func(i, j int) bool { return result[i].Name < result[j].Name })
	if limit > 0 && len(result) > limit {
		result = result[:limit]
	}
	return result, nil
}

func (s *CatalogStore) AdjustStock(_ context.Context, id string, delta int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	it, ok := s.items[id]
	if !ok {
		return errs.Wrap(errs.ErrProductNotFound, id)
	}
	next := it.Stock + delta
	if next < 0 {
		return errs.Wrap(errs.ErrInsufficientStock, id)
	}
	it.Stock = next
	s.items[id] = it
	return nil
}

func copyItem(it catalog.Item) catalog.Item {
	if it.Images != nil {
		imgs := make([]string, len(it.Images))
		copy(imgs, it.Images)
		it.Images = imgs
	}
	return it
}
