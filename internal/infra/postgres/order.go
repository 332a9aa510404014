package postgres

import (
	"context"
	"time"

	"ondc-seller-bridge/internal/domain/order"
	"ondc-seller-bridge/internal/pkg/errs"
	"ondc-seller-bridge/internal/pkg/money"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

const uniqueViolationCode = "23505"

type OrderStore struct {
	pool *pgxpool.Pool
}

func NewOrderStore(pool *pgxpool.Pool) *OrderStore {
	return &OrderStore{pool: pool}
}

// Create inserts the order and its lines in one transaction so a partial
// order can never be observed.
func (s *OrderStore) Create(ctx context.Context, o *order.Order, items []order.Item) error {
	tx, err := s.pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return errs.Wrap(err, "failed to begin transaction")
	}
	defer func() { _ = tx.Rollback(ctx) }()

	_, err = tx.Exec(ctx, `
		INSERT INTO orders (id, external_id, customer_id, status, total_minor, currency, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		o.ID, o.ExternalID, o.CustomerID, string(o.Status), o.TotalAmount.Minor(), o.Currency, o.CreatedAt, o.UpdatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errs.As(err, &pgErr) && pgErr.Code == uniqueViolationCode {
			return errs.Wrap(errs.ErrOrderAlreadyExists, o.ExternalID)
		}
		return errs.Wrap(err, "failed to insert order")
	}

	for _, it := range items {
		if _, err := tx.Exec(ctx, `
			INSERT INTO order_items (order_id, product_id, quantity, unit_price_minor)
			VALUES ($1, $2, $3, $4)`,
			it.OrderID, it.ProductID, it.Quantity, it.UnitPrice.Minor()); err != nil {
			return errs.Wrap(err, "failed to insert order item")
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return errs.Wrap(err, "failed to commit order")
	}
	return nil
}

func (s *OrderStore) FindByExternalID(ctx context.Context, externalID string) (*order.Order, []order.Item, error) {
	var o order.Order
	var status string
	var totalMinor int64
	err := s.pool.QueryRow(ctx, `
		SELECT id, external_id, customer_id, status, total_minor, currency, created_at, updated_at
		FROM orders WHERE external_id = $1`, externalID).
		Scan(&o.ID, &o.ExternalID, &o.CustomerID, &status, &totalMinor, &o.Currency, &o.CreatedAt, &o.UpdatedAt)
	if err != nil {
		if errs.Is(err, pgx.ErrNoRows) {
			return nil, nil, errs.Wrap(errs.ErrOrderNotFound, externalID)
		}
		return nil, nil, errs.Wrap(err, "failed to find order")
	}
	o.Status = order.Status(status)
	o.TotalAmount = money.FromMinor(totalMinor)

	rows, err := s.pool.Query(ctx, `
		SELECT order_id, product_id, quantity, unit_price_minor
		FROM order_items WHERE order_id = $1
		ORDER BY product_id`, o.ID)
	if err != nil {
		return nil, nil, errs.Wrap(err, "failed to load order items")
	}
	defer rows.Close()

	var items []order.Item
	for rows.Next() {
		var it order.Item
		var unitMinor int64
		if err := rows.Scan(&it.OrderID, &it.ProductID, &it.Quantity, &unitMinor); err != nil {
			return nil, nil, errs.Wrap(err, "failed to scan order item")
		}
		it.UnitPrice = money.FromMinor(unitMinor)
		items = append(items, it)
	}
	if err := rows.Err(); err != nil {
		return nil, nil, errs.Wrap(err, "failed to read order items")
	}
	return &o, items, nil
}

func (s *OrderStore) UpdateStatus(ctx context.Context, externalID string, st order.Status, now time.Time) error {
	ct, err := s.pool.Exec(ctx, `
		UPDATE orders SET status = $2, updated_at = $3
		WHERE external_id = $1`, externalID, string(st), now)
	if err != nil {
		return errs.Wrap(err, "failed to update order status")
	}
	if ct.RowsAffected() == 0 {
		return errs.Wrap(errs.ErrOrderNotFound, externalID)
	}
	return nil
}
