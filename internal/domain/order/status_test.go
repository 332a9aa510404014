//go:build unit

package order_test

import (
	"testing"
	"time"

	"ondc-seller-bridge/internal/domain/order"
	"ondc-seller-bridge/internal/pkg/errs"
	"ondc-seller-bridge/internal/pkg/money"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCanTransitionTo(t *testing.T) {
	cases := []struct {
		from    order.Status
		to      order.Status
		allowed bool
	}{
		{order.StatusCreated, order.StatusConfirmed, true},
		{order.StatusCreated, order.StatusCancelled, true},
		{order.StatusConfirmed, order.StatusCancelled, true},
		{order.StatusConfirmed, order.StatusCreated, false},
		{order.StatusCancelled, order.StatusCreated, false},
		{order.StatusCancelled, order.StatusConfirmed, false},
		{order.StatusCancelled, order.StatusCancelled, false},
		{order.StatusCreated, order.StatusCreated, false},
		{order.StatusConfirmed, order.StatusConfirmed, false},
	}

	for _, tc := range cases {
		t.Run(string(tc.from)+"->"+string(tc.to), func(t *testing.T) {
			assert.Equal(t, tc.allowed, tc.from.CanTransitionTo(tc.to))
		})
	}
}

func TestTerminal(t *testing.T) {
	assert.True(t, order.StatusCancelled.IsTerminal())
	assert.False(t, order.StatusCreated.IsTerminal())
	assert.False(t, order.StatusConfirmed.IsTerminal())
}

func TestNew(t *testing.T) {
	now := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)

	t.Run("total equals sum of line totals", func(t *testing.T) {
		o, lines, err := order.New("order_1", "buyer-app.ondc.org", "INR", []order.Item{
			{ProductID: "p1", Quantity: 3, UnitPrice: money.FromMinor(10000)},
			{ProductID: "p2", Quantity: 1, UnitPrice: money.FromMinor(2550)},
		}, now)
		require.NoError(t, err)

		assert.Equal(t, order.StatusCreated, o.Status)
		assert.Equal(t, int64(32550), o.TotalAmount.Minor())
		require.Len(t, lines, 2)
		for _, l := range lines {
			assert.Equal(t, o.ID, l.OrderID)
		}
	})

	t.Run("empty items rejected", func(t *testing.T) {
		_, _, err := order.New("order_1", "c", "INR", nil, now)
		require.ErrorIs(t, err, errs.ErrEmptyOrder)
	})

	t.Run("non-positive quantity rejected", func(t *testing.T) {
		_, _, err := order.New("order_1", "c", "INR", []order.Item{
			{ProductID: "p1", Quantity: 0, UnitPrice: money.FromMinor(100)},
		}, now)
		require.ErrorIs(t, err, errs.ErrValidation)
	})

	t.Run("missing external id rejected", func(t *testing.T) {
		_, _, err := order.New("", "c", "INR", []order.Item{
			{ProductID: "p1", Quantity: 1, UnitPrice: money.FromMinor(100)},
		}, now)
		require.ErrorIs(t, err, errs.ErrValidation)
	})
}

func TestTransition(t *testing.T) {
	now := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	o, _, err := order.New("order_1", "c", "INR", []order.Item{
		{ProductID: "p1", Quantity: 1, UnitPrice: money.FromMinor(100)},
	}, now)
	require.NoError(t, err)

	later := now.Add(time.Minute)
	require.NoError(t, o.Transition(order.StatusConfirmed, later))
	assert.Equal(t, order.StatusConfirmed, o.Status)
	assert.Equal(t, later, o.UpdatedAt)

	err = o.Transition(order.StatusCreated, later)
	require.ErrorIs(t, err, errs.ErrInvalidTransition)
	assert.Equal(t, order.StatusConfirmed, o.Status)
}
