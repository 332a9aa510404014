package commands

import (
	"context"
	"fmt"
	"log/slog"

	"ondc-seller-bridge/internal/domain/catalog"
	"ondc-seller-bridge/internal/domain/order"
	"ondc-seller-bridge/internal/pkg/clock"
	"ondc-seller-bridge/internal/pkg/errs"
	"ondc-seller-bridge/internal/pkg/keyedmutex"
	"ondc-seller-bridge/internal/pkg/money"
)

// RejectReason tags why an item was excluded from a quote or order.
type RejectReason string

const (
	ReasonNotFound          RejectReason = "NOT_FOUND"
	ReasonInsufficientStock RejectReason = "INSUFFICIENT_STOCK"
	ReasonInvalidQuantity   RejectReason = "INVALID_QUANTITY"
	ReasonUnavailable       RejectReason = "UNAVAILABLE"
)

type RequestedItem struct {
	ProductID string
	Quantity  int
}

type QuoteLine struct {
	Item     catalog.Item
	Quantity int
}

func (l QuoteLine) LineTotal() money.Amount {
	return l.Item.Price.MulQty(l.Quantity)
}

type RejectedItem struct {
	ProductID string
	Reason    RejectReason
}

// QuoteResult is the provisional, unpersisted outcome of a select. Every
// requested item lands either in Lines or in Rejected; nothing is silently
// dropped.
type QuoteResult struct {
	ExternalOrderID string
	Lines           []QuoteLine
	Rejected        []RejectedItem
	Total           money.Amount
	Currency        string
}

type InitRequest struct {
	MessageID       string
	ExternalOrderID string
	CustomerID      string
	Items           []RequestedItem
}

// OrderResult is a persisted order together with its lines, plus per-item
// rejections for init.
type OrderResult struct {
	Order    order.Order
	Items    []order.Item
	Rejected []RejectedItem
	Replayed bool
}

type OrderCommands interface {
	Quote(ctx context.Context, items []RequestedItem) (*QuoteResult, error)
	Init(ctx context.Context, req InitRequest) (*OrderResult, error)
	Confirm(ctx context.Context, externalOrderID string) (*OrderResult, error)
	Cancel(ctx context.Context, externalOrderID string) (*OrderResult, error)
}

type orderCommandsImpl struct {
	catalogStore CatalogStore
	orderStore   OrderStore
	idemStore    IdempotencyStore
	inventory    Inventory
	clock        clock.Clock
	currency     string
	logger       *slog.Logger

	// Serializes read-check-write per external order id (confirm/cancel)
	// and per message id (init replays).
	orderLocks *keyedmutex.KeyedMutex
	initLocks  *keyedmutex.KeyedMutex
}

func NewOrderCommands(
	catalogStore CatalogStore,
	orderStore OrderStore,
	idemStore IdempotencyStore,
	inventory Inventory,
	clk clock.Clock,
	currency string,
	logger *slog.Logger,
) OrderCommands {
	return &orderCommandsImpl{
		catalogStore: catalogStore,
		orderStore:   orderStore,
		idemStore:    idemStore,
		inventory:    inventory,
		clock:        clk,
		currency:     currency,
		logger:       logger,
		orderLocks:   keyedmutex.New(),
		initLocks:    keyedmutex.New(),
	}
}

// Quote validates each requested item against the catalog without touching
// any state. A failure on one item never aborts the rest.
func (c *orderCommandsImpl) Quote(ctx context.Context, items []RequestedItem) (*QuoteResult, error) {
	result := &QuoteResult{
		ExternalOrderID: c.mintExternalID(),
		Currency:        c.currency,
	}

	for _, req := range items {
		if req.Quantity <= 0 {
			result.Rejected = append(result.Rejected, RejectedItem{ProductID: req.ProductID, Reason: ReasonInvalidQuantity})
			continue
		}
		item, err := c.catalogStore.Get(ctx, req.ProductID)
		if err != nil {
			result.Rejected = append(result.Rejected, RejectedItem{ProductID: req.ProductID, Reason: reasonFor(err)})
			if !errs.Is(err, errs.ErrProductNotFound) {
				c.logger.Warn("quote item lookup failed", "product_id", req.ProductID, "error", err)
			}
			continue
		}
		if item.Stock < req.Quantity {
			result.Rejected = append(result.Rejected, RejectedItem{ProductID: req.ProductID, Reason: ReasonInsufficientStock})
			continue
		}
		line := QuoteLine{Item: *item, Quantity: req.Quantity}
		result.Lines = append(result.Lines, line)
		result.Total += line.LineTotal()
	}

	return result, nil
}

// Init persists the fulfillable items as a Created order, reserving stock
// per item through the inventory manager. Replays of the same message id
// return the originally created order unchanged.
func (c *orderCommandsImpl) Init(ctx context.Context, req InitRequest) (*OrderResult, error) {
	if req.MessageID != "" {
		unlock := c.initLocks.Lock(req.MessageID)
		defer unlock()

		if replay, err := c.replayInit(ctx, req.MessageID); err != nil || replay != nil {
			return replay, err
		}
	}

	externalID := req.ExternalOrderID
	if externalID == "" {
		externalID = c.mintExternalID()
	}

	now := c.clock.Now().UTC()
	var lines []order.Item
	var rejected []RejectedItem
	var reserved []RequestedItem

	for _, it := range req.Items {
		if it.Quantity <= 0 {
			rejected = append(rejected, RejectedItem{ProductID: it.ProductID, Reason: ReasonInvalidQuantity})
			continue
		}
		item, err := c.catalogStore.Get(ctx, it.ProductID)
		if err != nil {
			rejected = append(rejected, RejectedItem{ProductID: it.ProductID, Reason: reasonFor(err)})
			continue
		}
		if err := c.inventory.Reserve(ctx, it.ProductID, it.Quantity); err != nil {
			rejected = append(rejected, RejectedItem{ProductID: it.ProductID, Reason: reasonFor(err)})
			continue
		}
		reserved = append(reserved, it)
		lines = append(lines, order.Item{
			ProductID: it.ProductID,
			Quantity:  it.Quantity,
			UnitPrice: item.Price,
		})
	}

	if len(lines) == 0 {
		return nil, errs.Wrap(errs.ErrEmptyOrder, "no item could be reserved")
	}

	o, lines, err := order.New(externalID, req.CustomerID, c.currency, lines, now)
	if err != nil {
		c.releaseAll(ctx, reserved)
		return nil, err
	}

	if err := c.orderStore.Create(ctx, o, lines); err != nil {
		c.releaseAll(ctx, reserved)
		return nil, errs.Mark(err, errs.ErrDownstream)
	}

	if req.MessageID != "" {
		if err := c.idemStore.Put(ctx, req.MessageID, externalID); err != nil {
			// The order exists; a lost idempotency record only costs replay
			// detection, not correctness of this request.
			c.logger.Warn("failed to record idempotency key", "message_id", req.MessageID, "error", err)
		}
	}

	c.logger.Info("order created",
		"external_order_id", externalID, "items", len(lines), "rejected", len(rejected),
		"total", o.TotalAmount.String())

	return &OrderResult{Order: *o, Items: lines, Rejected: rejected}, nil
}

func (c *orderCommandsImpl) replayInit(ctx context.Context, messageID string) (*OrderResult, error) {
	externalID, ok, err := c.idemStore.Get(ctx, messageID)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDownstream)
	}
	if !ok {
		return nil, nil
	}
	o, items, err := c.orderStore.FindByExternalID(ctx, externalID)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDownstream)
	}
	c.logger.Info("init replayed", "message_id", messageID, "external_order_id", externalID)
	return &OrderResult{Order: *o, Items: items, Replayed: true}, nil
}

// Confirm transitions Created -> Confirmed. Unknown orders fail closed with
// ErrOrderNotFound instead of fabricating success.
func (c *orderCommandsImpl) Confirm(ctx context.Context, externalOrderID string) (*OrderResult, error) {
	if externalOrderID == "" {
		return nil, errs.Wrap(errs.ErrValidation, "order id is required")
	}

	unlock := c.orderLocks.Lock(externalOrderID)
	defer unlock()

	o, items, err := c.orderStore.FindByExternalID(ctx, externalOrderID)
	if err != nil {
		return nil, err
	}

	now := c.clock.Now().UTC()
	if err := o.Transition(order.StatusConfirmed, now); err != nil {
		return nil, err
	}
	if err := c.orderStore.UpdateStatus(ctx, externalOrderID, order.StatusConfirmed, now); err != nil {
		return nil, errs.Mark(err, errs.ErrDownstream)
	}

	c.logger.Info("order confirmed", "external_order_id", externalOrderID)
	return &OrderResult{Order: *o, Items: items}, nil
}

// Cancel transitions to Cancelled and restores every reserved unit. Unknown
// orders fail closed with ErrOrderNotFound.
func (c *orderCommandsImpl) Cancel(ctx context.Context, externalOrderID string) (*OrderResult, error) {
	if externalOrderID == "" {
		return nil, errs.Wrap(errs.ErrValidation, "order id is required")
	}

	unlock := c.orderLocks.Lock(externalOrderID)
	defer unlock()

	o, items, err := c.orderStore.FindByExternalID(ctx, externalOrderID)
	if err != nil {
		return nil, err
	}

	now := c.clock.Now().UTC()
	if err := o.Transition(order.StatusCancelled, now); err != nil {
		return nil, err
	}
	if err := c.orderStore.UpdateStatus(ctx, externalOrderID, order.StatusCancelled, now); err != nil {
		return nil, errs.Mark(err, errs.ErrDownstream)
	}

	for _, it := range items {
		if err := c.inventory.Release(ctx, it.ProductID, it.Quantity); err != nil {
			// The order stays cancelled; report the failed restore so the
			// caller can reconcile instead of hiding it.
			c.logger.Error("stock release failed after cancel",
				"external_order_id", externalOrderID, "product_id", it.ProductID, "error", err)
			return nil, errs.Mark(err, errs.ErrDownstream)
		}
	}

	c.logger.Info("order cancelled", "external_order_id", externalOrderID)
	return &OrderResult{Order: *o, Items: items}, nil
}

func (c *orderCommandsImpl) releaseAll(ctx context.Context, reserved []RequestedItem) {
	for _, it := range reserved {
		if err := c.inventory.Release(ctx, it.ProductID, it.Quantity); err != nil {
			c.logger.Error("compensating release failed", "product_id", it.ProductID, "error", err)
		}
	}
}

func (c *orderCommandsImpl) mintExternalID() string {
	return fmt.Sprintf("order_%d", c.clock.Now().UnixMilli())
}

func reasonFor(err error) RejectReason {
	switch {
	case errs.Is(err, errs.ErrProductNotFound):
		return ReasonNotFound
	case errs.Is(err, errs.ErrInsufficientStock):
		return ReasonInsufficientStock
	case errs.Is(err, errs.ErrValidation):
		return ReasonInvalidQuantity
	default:
		return ReasonUnavailable
	}
}
