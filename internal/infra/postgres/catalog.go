package postgres

import (
	"context"

	"ondc-seller-bridge/internal/domain/catalog"
	"ondc-seller-bridge/internal/pkg/errs"
	"ondc-seller-bridge/internal/pkg/money"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// CatalogStore backs the catalog with a products table. The conditional
// stock UPDATE relies on the row's CHECK constraint semantics being enforced
// in one statement, so concurrent adjustments never race a read-check-write.
type CatalogStore struct {
	pool *pgxpool.Pool
}

func NewCatalogStore(pool *pgxpool.Pool) *CatalogStore {
	return &CatalogStore{pool: pool}
}

func (s *CatalogStore) Put(ctx context.Context, it catalog.Item) error {
	_, err := s.pool.Exec(ctx, `
		INSERT INTO products (id, name, description, price_minor, category, stock, images)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		ON CONFLICT (id) DO UPDATE SET
			name = EXCLUDED.name,
			description = EXCLUDED.description,
			price_minor = EXCLUDED.price_minor,
			category = EXCLUDED.category,
			stock = EXCLUDED.stock,
			images = EXCLUDED.images`,
		it.ID, it.Name, it.Description, it.Price.Minor(), it.Category, it.Stock, it.Images)
	if err != nil {
		return errs.Wrap(err, "failed to upsert product")
	}
	return nil
}

func (s *CatalogStore) Get(ctx context.Context, id string) (*catalog.Item, error) {
	row := s.pool.QueryRow(ctx, `
		SELECT id, name, description, price_minor, category, stock, images
		FROM products WHERE id = $1`, id)

	it, err := scanItem(row)
	if err != nil {
		if errs.Is(err, pgx.ErrNoRows) {
			return nil, errs.Wrap(errs.ErrProductNotFound, id)
		}
		return nil, errs.Wrap(err, "failed to get product")
	}
	return it, nil
}

func (s *CatalogStore) SearchByName(ctx context.Context, fragment string, limit int) ([]catalog.Item, error) {
	rows, err := s.pool.Query(ctx, `
		SELECT id, name, description, price_minor, category, stock, images
		FROM products
		WHERE name ILIKE '%' || $1 || '%'
		ORDER BY name
		LIMIT $2`, fragment, limit)
	if err != nil {
		return nil, errs.Wrap(err, "failed to search products")
	}
	defer rows.Close()

	items := make([]catalog.Item, 0)
	for rows.Next() {
		it, err := scanItem(rows)
		if err != nil {
			return nil, errs.Wrap(err, "failed to scan product")
		}
		items = append(items, *it)
	}
	if err := rows.Err(); err != nil {
		return nil, errs.Wrap(err, "failed to read products")
	}
	return items, nil
}

// AdjustStock applies the delta only when the resulting stock stays
// non-negative, distinguishing a missing product from an insufficient one.
func (s *CatalogStore) AdjustStock(ctx context.Context, id string, delta int) error {
	ct, err := s.pool.Exec(ctx, `
		UPDATE products SET stock = stock + $2
		WHERE id = $1 AND stock + $2 >= 0`, id, delta)
	if err != nil {
		return errs.Wrap(err, "failed to adjust stock")
	}
	if ct.RowsAffected() == 1 {
		return nil
	}

	var exists bool
	if err := s.pool.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM products WHERE id = $1)`, id).Scan(&exists); err != nil {
		return errs.Wrap(err, "failed to check product existence")
	}
	if !exists {
		return errs.Wrap(errs.ErrProductNotFound, id)
	}
	return errs.Wrap(errs.ErrInsufficientStock, id)
}

func scanItem(row pgx.Row) (*catalog.Item, error) {
	var it catalog.Item
	var priceMinor int64
	if err := row.Scan(&it.ID, &it.Name, &it.Description, &priceMinor, &it.Category, &it.Stock, &it.Images); err != nil {
		return nil, err
	}
	it.Price = money.FromMinor(priceMinor)
	return &it, nil
}
