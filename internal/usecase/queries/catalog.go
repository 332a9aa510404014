package queries

import (
	"context"
	"log/slog"

	"ondc-seller-bridge/internal/domain/catalog"
	"ondc-seller-bridge/internal/pkg/errs"
)

// CatalogReadStore is the read-side slice of the catalog store.
type CatalogReadStore interface {
	SearchByName(ctx context.Context, fragment string, limit int) ([]catalog.Item, error)
}

// SearchIntent is the portion of a protocol search intent the bridge acts
// on. Locality is accepted but not applied as a filter; whether it should
// narrow results by fulfillment area is an open product question.
type SearchIntent struct {
	NameFragment string
	Category     string
	Locality     string
}

type CatalogQueries interface {
	Search(ctx context.Context, intent SearchIntent) ([]catalog.Item, error)
}

type catalogQueriesImpl struct {
	store  CatalogReadStore
	limit  int
	logger *slog.Logger
}

func NewCatalogQueries(store CatalogReadStore, limit int, logger *slog.Logger) CatalogQueries {
	return &catalogQueriesImpl{store: store, limit: limit, logger: logger}
}

// Search runs a case-insensitive substring match against item names. Zero
// matches is a valid empty catalog, distinct from a store failure.
func (q *catalogQueriesImpl) Search(ctx context.Context, intent SearchIntent) ([]catalog.Item, error) {
	if intent.Locality != "" {
		q.logger.Debug("search locality ignored", "locality", intent.Locality)
	}

	items, err := q.store.SearchByName(ctx, intent.NameFragment, q.limit)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDownstream)
	}
	if items == nil {
		items = []catalog.Item{}
	}
	return items, nil
}
