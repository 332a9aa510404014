package components

import (
	"context"
	"log/slog"
	"time"

	"ondc-seller-bridge/internal/domain/catalog"
	"ondc-seller-bridge/internal/domain/order"
	"ondc-seller-bridge/internal/domain/rating"
	"ondc-seller-bridge/internal/infra/memory"
	"ondc-seller-bridge/internal/infra/postgres"
	"ondc-seller-bridge/internal/inventory"
	"ondc-seller-bridge/internal/pkg/config"
	"ondc-seller-bridge/internal/usecase/commands"
	"ondc-seller-bridge/internal/usecase/queries"

	"go.uber.org/fx"
)

// Full store surfaces; both the memory and postgres drivers satisfy them.
// The usecase ports are narrower slices extracted below.

type CatalogStore interface {
	Put(ctx context.Context, it catalog.Item) error
	Get(ctx context.Context, id string) (*catalog.Item, error)
	SearchByName(ctx context.Context, fragment string, limit int) ([]catalog.Item, error)
	AdjustStock(ctx context.Context, id string, delta int) error
}

type OrderStore interface {
	Create(ctx context.Context, o *order.Order, items []order.Item) error
	FindByExternalID(ctx context.Context, externalID string) (*order.Order, []order.Item, error)
	UpdateStatus(ctx context.Context, externalID string, st order.Status, now time.Time) error
}

type RatingStore interface {
	Append(ctx context.Context, r rating.Rating) error
	ListByOrder(ctx context.Context, orderID string) ([]rating.Rating, error)
}

type IdempotencyStore interface {
	Get(ctx context.Context, messageID string) (string, bool, error)
	Put(ctx context.Context, messageID, externalOrderID string) error
}

type Stores struct {
	Catalog     CatalogStore
	Orders      OrderStore
	Ratings     RatingStore
	Idempotency IdempotencyStore
}

var PersistenceModule = fx.Module("persistence",
	fx.Provide(
		NewStores,
		func(s *Stores) commands.CatalogStore { return s.Catalog },
		func(s *Stores) queries.CatalogReadStore { return s.Catalog },
		func(s *Stores) inventory.StockStore { return s.Catalog },
		func(s *Stores) commands.OrderStore { return s.Orders },
		func(s *Stores) queries.OrderReadStore { return s.Orders },
		func(s *Stores) commands.RatingStore { return s.Ratings },
		func(s *Stores) commands.IdempotencyStore { return s.Idempotency },
	),
)

// NewStores selects the storage driver. Postgres owns a pooled connection
// closed on shutdown; memory is the zero-setup local default.
func NewStores(lc fx.Lifecycle, cfg config.Config, logger *slog.Logger) (*Stores, error) {
	switch cfg.Storage.Driver {
	case "postgres":
		ctx := context.Background()
		pool, err := postgres.Connect(ctx, cfg.DB.BuildDSN())
		if err != nil {
			return nil, err
		}
		if err := postgres.EnsureSchema(ctx, pool); err != nil {
			pool.Close()
			return nil, err
		}
		lc.Append(fx.Hook{
			OnStop: func(_ context.Context) error {
				pool.Close()
				return nil
			},
		})
		logger.Info("storage driver selected", "driver", "postgres", "host", cfg.DB.Host)
		return &Stores{
			Catalog:     postgres.NewCatalogStore(pool),
			Orders:      postgres.NewOrderStore(pool),
			Ratings:     postgres.NewRatingStore(pool),
			Idempotency: postgres.NewIdempotencyStore(pool),
		}, nil
	default:
		logger.Info("storage driver selected", "driver", "memory")
		return &Stores{
			Catalog:     memory.NewCatalogStore(),
			Orders:      memory.NewOrderStore(),
			Ratings:     memory.NewRatingStore(),
			Idempotency: memory.NewIdempotencyStore(),
		}, nil
	}
}
