package postgres

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
)

// EnsureSchema creates the bridge's tables when they are absent. Single-node
// deployments run this at startup instead of a separate migration step.
func EnsureSchema(ctx context.Context, pool *pgxpool.Pool) error {
	_, err := pool.Exec(ctx, `
		CREATE TABLE IF NOT EXISTS products (
			id          TEXT PRIMARY KEY,
			name        TEXT NOT NULL,
			description TEXT NOT NULL DEFAULT '',
			price_minor BIGINT NOT NULL,
			category    TEXT NOT NULL DEFAULT '',
			stock       INT NOT NULL CHECK (stock >= 0),
			images      TEXT[] NOT NULL DEFAULT '{}'
		);

		CREATE TABLE IF NOT EXISTS orders (
			id           UUID PRIMARY KEY,
			external_id  TEXT NOT NULL UNIQUE,
			customer_id  TEXT NOT NULL,
			status       TEXT NOT NULL,
			total_minor  BIGINT NOT NULL,
			currency     TEXT NOT NULL,
			created_at   TIMESTAMPTZ NOT NULL,
			updated_at   TIMESTAMPTZ NOT NULL
		);

		CREATE TABLE IF NOT EXISTS order_items (
			order_id         UUID NOT NULL REFERENCES orders(id),
			product_id       TEXT NOT NULL,
			quantity         INT NOT NULL,
			unit_price_minor BIGINT NOT NULL,
			PRIMARY KEY (order_id, product_id)
		);

		CREATE TABLE IF NOT EXISTS ratings (
			id         BIGSERIAL PRIMARY KEY,
			order_id   TEXT NOT NULL,
			value      INT NOT NULL,
			comment    TEXT NOT NULL DEFAULT '',
			created_at TIMESTAMPTZ NOT NULL
		);

		CREATE TABLE IF NOT EXISTS idempotency_keys (
			message_id        TEXT PRIMARY KEY,
			external_order_id TEXT NOT NULL
		);
	`)
	return err
}
