package commands

import (
	"context"
	"time"

	"ondc-seller-bridge/internal/domain/catalog"
	"ondc-seller-bridge/internal/domain/order"
	"ondc-seller-bridge/internal/domain/rating"
)

// Store ports consumed by the command side. Implementations live under
// internal/infra; errors they return must resolve to the errs sentinels.

type CatalogStore interface {
	Get(ctx context.Context, id string) (*catalog.Item, error)
}

type OrderStore interface {
	Create(ctx context.Context, o *order.Order, items []order.Item) error
	FindByExternalID(ctx context.Context, externalID string) (*order.Order, []order.Item, error)
	UpdateStatus(ctx context.Context, externalID string, st order.Status, now time.Time) error
}

type RatingStore interface {
	Append(ctx context.Context, r rating.Rating) error
}

// IdempotencyStore maps an init message id to the external order id it
// created. Put must be first-writer-wins.
type IdempotencyStore interface {
	Get(ctx context.Context, messageID string) (externalOrderID string, ok bool, err error)
	Put(ctx context.Context, messageID, externalOrderID string) error
}

// Inventory is the stock mutation port; the inventory manager is its only
// implementation.
type Inventory interface {
	Reserve(ctx context.Context, productID string, qty int) error
	Release(ctx context.Context, productID string, qty int) error
}
