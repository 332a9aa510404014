package memory

import (
	"context"
	"sync"

	"ondc-seller-bridge/internal/domain/rating"
)

// RatingStore is an append-only in-memory rating log.
type RatingStore struct {
	mu      sync.RWMutex
	ratings []rating.Rating
}

func NewRatingStore() *RatingStore {
	return &RatingStore{}
}

func (s *RatingStore) Append(_ context.Context, r rating.Rating) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.ratings = append(s.ratings, r)
	return nil
}

// ListByOrder returns the ratings recorded for an order id.
func (s *RatingStore) ListByOrder(_ context.Context, orderID string) ([]rating.Rating, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []rating.Rating
	for _, r := range s.ratings {
		if r.OrderID == orderID {
			out = append(out, r)
		}
	}
	return out, nil
}
