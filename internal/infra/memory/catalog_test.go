//go:build unit

package memory_test

import (
	"context"
	"fmt"
	"testing"

	"ondc-seller-bridge/internal/domain/catalog"
	"ondc-seller-bridge/internal/infra/memory"
	"ondc-seller-bridge/internal/pkg/errs"
	"ondc-seller-bridge/internal/pkg/money"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seedStore() *memory.CatalogStore {
	return memory.NewCatalogStore(
		catalog.Item{ID: "p1", Name: "Wireless Mouse", Price: money.FromMinor(10000), Stock: 10},
		catalog.Item{ID: "p2", Name: "Mechanical Keyboard", Price: money.FromMinor(25000), Stock: 3},
		catalog.Item{ID: "p3", Name: "USB Mouse Pad", Price: money.FromMinor(500), Stock: 0},
	)
}

func TestCatalogStoreGet(t *testing.T) {
	ctx := context.Background()
	s := seedStore()

	it, err := s.Get(ctx, "p1")
	require.NoError(t, err)
	assert.Equal(t, "Wireless Mouse", it.Name)

	_, err = s.Get(ctx, "missing")
	require.ErrorIs(t, err, errs.ErrProductNotFound)
}

func TestCatalogStoreSearchByName(t *testing.T) {
	ctx := context.Background()
	s := seedStore()

	t.Run("case-insensitive substring", func(t *testing.T) {
		items, err := s.SearchByName(ctx, "mouse", 20)
		require.NoError(t, err)
		require.Len(t, items, 2)
		assert.Equal(t, "USB Mouse Pad", items[0].Name)
		assert.Equal(t, "Wireless Mouse", items[1].Name)
	})

	t.Run("no matches yields empty, not error", func(t *testing.T) {
		items, err := s.SearchByName(ctx, "projector", 20)
		require.NoError(t, err)
		assert.Empty(t, items)
	})

	t.Run("result capped at limit", func(t *testing.T) {
		for i := range 30 {
			require.NoError(t, s.Put(ctx, catalog.Item{
				ID:   fmt.Sprintf("cap%02d", i),
				Name: fmt.Sprintf("Cable %02d", i),
			}))
		}
		items, err := s.SearchByName(ctx, "cable", 20)
		require.NoError(t, err)
		assert.Len(t, items, 20)
	})
}

func TestCatalogStoreAdjustStock(t *testing.T) {
	ctx := context.Background()
	s := seedStore()

	require.NoError(t, s.AdjustStock(ctx, "p2", -3))
	it, err := s.Get(ctx, "p2")
	require.NoError(t, err)
	assert.Equal(t, 0, it.Stock)

	err = s.AdjustStock(ctx, "p2", -1)
	require.ErrorIs(t, err, errs.ErrInsufficientStock)
	it, err = s.Get(ctx, "p2")
	require.NoError(t, err)
	assert.Equal(t, 0, it.Stock, "failed adjustment must not change stock")

	require.NoError(t, s.AdjustStock(ctx, "p2", 3))
	it, err = s.Get(ctx, "p2")
	require.NoError(t, err)
	assert.Equal(t, 3, it.Stock)

	err = s.AdjustStock(ctx, "missing", 1)
	require.ErrorIs(t, err, errs.ErrProductNotFound)
}

func TestCatalogStoreCopiesOnRead(t *testing.T) {
	ctx := context.Background()
	s := memory.NewCatalogStore(catalog.Item{ID: "p1", Name: "Mouse", Images: []string{"a.png"}})

	it, err := s.Get(ctx, "p1")
	require.NoError(t, err)
	it.Images[0] = "mutated.png"
	it.Stock = 99

	again, err := s.Get(ctx, "p1")
	require.NoError(t, err)
	assert.Equal(t, "a.png", again.Images[0])
	assert.Equal(t, 0, again.Stock)
}
