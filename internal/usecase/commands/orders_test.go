//go:build unit

package commands_test

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"ondc-seller-bridge/internal/domain/catalog"
	"ondc-seller-bridge/internal/domain/order"
	"ondc-seller-bridge/internal/infra/memory"
	"ondc-seller-bridge/internal/inventory"
	"ondc-seller-bridge/internal/pkg/clock"
	"ondc-seller-bridge/internal/pkg/errs"
	"ondc-seller-bridge/internal/pkg/money"
	"ondc-seller-bridge/internal/usecase/commands"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fixture struct {
	catalog *memory.CatalogStore
	orders  *memory.OrderStore
	idem    *memory.IdempotencyStore
	clock   *clock.MockClock
	cmds    commands.OrderCommands
}

func newFixture(t *testing.T, seed ...catalog.Item) *fixture {
	t.Helper()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	cat := memory.NewCatalogStore(seed...)
	ord := memory.NewOrderStore()
	idem := memory.NewIdempotencyStore()
	clk := clock.NewMockClock(time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC))
	inv := inventory.NewManager(cat, logger)
	return &fixture{
		catalog: cat,
		orders:  ord,
		idem:    idem,
		clock:   clk,
		cmds:    commands.NewOrderCommands(cat, ord, idem, inv, clk, "INR", logger),
	}
}

func (f *fixture) stock(t *testing.T, id string) int {
	t.Helper()
	it, err := f.catalog.Get(context.Background(), id)
	require.NoError(t, err)
	return it.Stock
}

func seedItems() []catalog.Item {
	return []catalog.Item{
		{ID: "p1", Name: "Wireless Mouse", Price: money.FromMinor(10000), Stock: 10},
		{ID: "p2", Name: "Mechanical Keyboard", Price: money.FromMinor(25000), Stock: 2},
	}
}

func TestQuote(t *testing.T) {
	ctx := context.Background()

	t.Run("fulfillable items quoted with line totals", func(t *testing.T) {
		f := newFixture(t, seedItems()...)
		res, err := f.cmds.Quote(ctx, []commands.RequestedItem{
			{ProductID: "p1", Quantity: 3},
			{ProductID: "p2", Quantity: 1},
		})
		require.NoError(t, err)

		require.Len(t, res.Lines, 2)
		assert.Equal(t, "300.00", res.Lines[0].LineTotal().String())
		assert.Equal(t, "250.00", res.Lines[1].LineTotal().String())
		assert.Equal(t, "550.00", res.Total.String())
		assert.Empty(t, res.Rejected)
		assert.NotEmpty(t, res.ExternalOrderID)
	})

	t.Run("unfulfillable items tagged, not silently dropped", func(t *testing.T) {
		f := newFixture(t, seedItems()...)
		res, err := f.cmds.Quote(ctx, []commands.RequestedItem{
			{ProductID: "p1", Quantity: 3},
			{ProductID: "p2", Quantity: 5},
			{ProductID: "ghost", Quantity: 1},
			{ProductID: "p1", Quantity: 0},
		})
		require.NoError(t, err)

		require.Len(t, res.Lines, 1)
		require.Len(t, res.Rejected, 3)
		assert.Equal(t, commands.ReasonInsufficientStock, res.Rejected[0].Reason)
		assert.Equal(t, commands.ReasonNotFound, res.Rejected[1].Reason)
		assert.Equal(t, commands.ReasonInvalidQuantity, res.Rejected[2].Reason)
	})

	t.Run("quote does not touch stock", func(t *testing.T) {
		f := newFixture(t, seedItems()...)
		_, err := f.cmds.Quote(ctx, []commands.RequestedItem{{ProductID: "p1", Quantity: 3}})
		require.NoError(t, err)
		assert.Equal(t, 10, f.stock(t, "p1"))
	})
}

func TestInit(t *testing.T) {
	ctx := context.Background()

	t.Run("creates order and reserves stock", func(t *testing.T) {
		f := newFixture(t, seedItems()...)
		res, err := f.cmds.Init(ctx, commands.InitRequest{
			MessageID:       "msg-1",
			ExternalOrderID: "order_100",
			CustomerID:      "buyer-app.ondc.org",
			Items:           []commands.RequestedItem{{ProductID: "p1", Quantity: 3}},
		})
		require.NoError(t, err)

		assert.Equal(t, order.StatusCreated, res.Order.Status)
		assert.Equal(t, "order_100", res.Order.ExternalID)
		assert.Equal(t, "300.00", res.Order.TotalAmount.String())
		assert.False(t, res.Replayed)
		assert.Equal(t, 7, f.stock(t, "p1"))
	})

	t.Run("over-stock item rejected, stock unchanged", func(t *testing.T) {
		f := newFixture(t, seedItems()...)
		res, err := f.cmds.Init(ctx, commands.InitRequest{
			MessageID:       "msg-1",
			ExternalOrderID: "order_100",
			Items: []commands.RequestedItem{
				{ProductID: "p1", Quantity: 3},
				{ProductID: "p2", Quantity: 5},
			},
		})
		require.NoError(t, err)

		require.Len(t, res.Items, 1)
		require.Len(t, res.Rejected, 1)
		assert.Equal(t, "p2", res.Rejected[0].ProductID)
		assert.Equal(t, commands.ReasonInsufficientStock, res.Rejected[0].Reason)
		assert.Equal(t, 2, f.stock(t, "p2"))
		assert.Equal(t, "300.00", res.Order.TotalAmount.String())
	})

	t.Run("no fulfillable item yields empty-order error", func(t *testing.T) {
		f := newFixture(t, seedItems()...)
		_, err := f.cmds.Init(ctx, commands.InitRequest{
			MessageID:       "msg-1",
			ExternalOrderID: "order_100",
			Items:           []commands.RequestedItem{{ProductID: "ghost", Quantity: 1}},
		})
		require.ErrorIs(t, err, errs.ErrEmptyOrder)
		assert.Equal(t, 10, f.stock(t, "p1"))
	})

	t.Run("replay returns original order without double reservation", func(t *testing.T) {
		f := newFixture(t, seedItems()...)
		first, err := f.cmds.Init(ctx, commands.InitRequest{
			MessageID:       "msg-1",
			ExternalOrderID: "order_100",
			Items:           []commands.RequestedItem{{ProductID: "p1", Quantity: 3}},
		})
		require.NoError(t, err)

		second, err := f.cmds.Init(ctx, commands.InitRequest{
			MessageID:       "msg-1",
			ExternalOrderID: "order_999",
			Items:           []commands.RequestedItem{{ProductID: "p1", Quantity: 3}},
		})
		require.NoError(t, err)

		assert.True(t, second.Replayed)
		assert.Equal(t, first.Order.ExternalID, second.Order.ExternalID)
		assert.Equal(t, 7, f.stock(t, "p1"), "replay must not reserve again")
	})

	t.Run("snapshotted unit price survives catalog price change", func(t *testing.T) {
		f := newFixture(t, seedItems()...)
		res, err := f.cmds.Init(ctx, commands.InitRequest{
			MessageID:       "msg-1",
			ExternalOrderID: "order_100",
			Items:           []commands.RequestedItem{{ProductID: "p1", Quantity: 1}},
		})
		require.NoError(t, err)

		require.NoError(t, f.catalog.Put(ctx, catalog.Item{
			ID: "p1", Name: "Wireless Mouse", Price: money.FromMinor(99900), Stock: 9,
		}))

		_, items, err := f.orders.FindByExternalID(ctx, res.Order.ExternalID)
		require.NoError(t, err)
		assert.Equal(t, int64(10000), items[0].UnitPrice.Minor())
	})
}

func TestConfirm(t *testing.T) {
	ctx := context.Background()

	t.Run("transitions created to confirmed", func(t *testing.T) {
		f := newFixture(t, seedItems()...)
		created, err := f.cmds.Init(ctx, commands.InitRequest{
			ExternalOrderID: "order_100",
			Items:           []commands.RequestedItem{{ProductID: "p1", Quantity: 1}},
		})
		require.NoError(t, err)

		res, err := f.cmds.Confirm(ctx, created.Order.ExternalID)
		require.NoError(t, err)
		assert.Equal(t, order.StatusConfirmed, res.Order.Status)
	})

	t.Run("unknown order fails closed", func(t *testing.T) {
		f := newFixture(t, seedItems()...)
		_, err := f.cmds.Confirm(ctx, "order_unknown")
		require.ErrorIs(t, err, errs.ErrOrderNotFound)
	})

	t.Run("confirming a cancelled order is rejected", func(t *testing.T) {
		f := newFixture(t, seedItems()...)
		_, err := f.cmds.Init(ctx, commands.InitRequest{
			ExternalOrderID: "order_100",
			Items:           []commands.RequestedItem{{ProductID: "p1", Quantity: 1}},
		})
		require.NoError(t, err)
		_, err = f.cmds.Cancel(ctx, "order_100")
		require.NoError(t, err)

		_, err = f.cmds.Confirm(ctx, "order_100")
		require.ErrorIs(t, err, errs.ErrInvalidTransition)

		got, _, err := f.orders.FindByExternalID(ctx, "order_100")
		require.NoError(t, err)
		assert.Equal(t, order.StatusCancelled, got.Status, "terminal state must not regress")
	})

	t.Run("missing order id is a validation error", func(t *testing.T) {
		f := newFixture(t, seedItems()...)
		_, err := f.cmds.Confirm(ctx, "")
		require.ErrorIs(t, err, errs.ErrValidation)
	})
}

func TestCancel(t *testing.T) {
	ctx := context.Background()

	t.Run("restores every reserved unit", func(t *testing.T) {
		f := newFixture(t, seedItems()...)
		_, err := f.cmds.Init(ctx, commands.InitRequest{
			ExternalOrderID: "order_100",
			Items: []commands.RequestedItem{
				{ProductID: "p1", Quantity: 3},
				{ProductID: "p2", Quantity: 2},
			},
		})
		require.NoError(t, err)
		require.Equal(t, 7, f.stock(t, "p1"))
		require.Equal(t, 0, f.stock(t, "p2"))

		_, err = f.cmds.Confirm(ctx, "order_100")
		require.NoError(t, err)

		res, err := f.cmds.Cancel(ctx, "order_100")
		require.NoError(t, err)
		assert.Equal(t, order.StatusCancelled, res.Order.Status)
		assert.Equal(t, 10, f.stock(t, "p1"))
		assert.Equal(t, 2, f.stock(t, "p2"))
	})

	t.Run("unknown order fails closed", func(t *testing.T) {
		f := newFixture(t, seedItems()...)
		_, err := f.cmds.Cancel(ctx, "order_unknown")
		require.ErrorIs(t, err, errs.ErrOrderNotFound)
	})

	t.Run("double cancel is rejected without double restore", func(t *testing.T) {
		f := newFixture(t, seedItems()...)
		_, err := f.cmds.Init(ctx, commands.InitRequest{
			ExternalOrderID: "order_100",
			Items:           []commands.RequestedItem{{ProductID: "p1", Quantity: 3}},
		})
		require.NoError(t, err)

		_, err = f.cmds.Cancel(ctx, "order_100")
		require.NoError(t, err)
		require.Equal(t, 10, f.stock(t, "p1"))

		_, err = f.cmds.Cancel(ctx, "order_100")
		require.ErrorIs(t, err, errs.ErrInvalidTransition)
		assert.Equal(t, 10, f.stock(t, "p1"))
	})
}
