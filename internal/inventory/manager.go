package inventory

import (
	"context"
	"log/slog"

	"ondc-seller-bridge/internal/domain/catalog"
	"ondc-seller-bridge/internal/pkg/errs"
	"ondc-seller-bridge/internal/pkg/keyedmutex"
)

// StockStore is the slice of the catalog store the manager mutates through.
type StockStore interface {
	Get(ctx context.Context, id string) (*catalog.Item, error)
	// AdjustStock applies delta to the item's stock. Implementations must
	// reject an adjustment that would drive stock negative.
	AdjustStock(ctx context.Context, id string, delta int) error
}

// Manager is the only place stock is mutated. Reserve and release on the
// same product are serialized by a per-product mutex so the read-check-write
// sequence is a single atomic unit; distinct products proceed in parallel.
type Manager struct {
	store  StockStore
	locks  *keyedmutex.KeyedMutex
	logger *slog.Logger
}

func NewManager(store StockStore, logger *slog.Logger) *Manager {
	return &Manager{
		store:  store,
		locks:  keyedmutex.New(),
		logger: logger,
	}
}

// Reserve decrements stock by qty, failing with ErrInsufficientStock when
// fewer than qty units are available. Stock never goes negative.
func (m *Manager) Reserve(ctx context.Context, productID string, qty int) error {
	if qty <= 0 {
		return errs.Wrap(errs.ErrValidation, "reserve quantity must be positive")
	}

	unlock := m.locks.Lock(productID)
	defer unlock()

	item, err := m.store.Get(ctx, productID)
	if err != nil {
		return err
	}
	if item.Stock < qty {
		return errs.Wrap(errs.ErrInsufficientStock, productID)
	}
	if err := m.store.AdjustStock(ctx, productID, -qty); err != nil {
		return err
	}

	m.logger.Debug("stock reserved", "product_id", productID, "qty", qty, "remaining", item.Stock-qty)
	return nil
}

// Release returns qty units to stock. The restore is unconditional; there is
// no upper bound check.
func (m *Manager) Release(ctx context.Context, productID string, qty int) error {
	if qty <= 0 {
		return errs.Wrap(errs.ErrValidation, "release quantity must be positive")
	}

	unlock := m.locks.Lock(productID)
	defer unlock()

	if err := m.store.AdjustStock(ctx, productID, qty); err != nil {
		return err
	}

	m.logger.Debug("stock released", "product_id", productID, "qty", qty)
	return nil
}
