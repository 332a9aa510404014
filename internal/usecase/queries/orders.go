package queries

import (
	"context"

	"ondc-seller-bridge/internal/domain/order"
	"ondc-seller-bridge/internal/pkg/errs"
)

type OrderReadStore interface {
	FindByExternalID(ctx context.Context, externalID string) (*order.Order, []order.Item, error)
}

type OrderView struct {
	Order order.Order
	Items []order.Item
}

type OrderQueries interface {
	GetByExternalID(ctx context.Context, externalID string) (*OrderView, error)
}

type orderQueriesImpl struct {
	store OrderReadStore
}

func NewOrderQueries(store OrderReadStore) OrderQueries {
	return &orderQueriesImpl{store: store}
}

func (q *orderQueriesImpl) GetByExternalID(ctx context.Context, externalID string) (*OrderView, error) {
	if externalID == "" {
		return nil, errs.Wrap(errs.ErrValidation, "order id is required")
	}
	o, items, err := q.store.FindByExternalID(ctx, externalID)
	if err != nil {
		return nil, err
	}
	return &OrderView{Order: *o, Items: items}, nil
}
