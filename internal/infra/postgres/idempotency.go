package postgres

import (
	"context"

	"ondc-seller-bridge/internal/pkg/errs"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// IdempotencyStore maps a message id to the external order id its init
// created. The first writer wins; a replayed insert is a no-op.
type IdempotencyStore struct {
	pool *pgxpool.Pool
}

func NewIdempotencyStore(pool *pgxpool.Pool) *IdempotencyStore {
	return &IdempotencyStore{pool: pool}
}

func (s *IdempotencyStore) Get(ctx context.Context, messageID string) (string, bool, error) {
	var externalOrderID string
	err := s.pool.QueryRow(ctx, `
		SELECT external_order_id FROM idempotency_keys WHERE message_id = $1`, messageID).
		Scan(&externalOrderID)
	if err != nil {
		if errs.Is(err, pgx.ErrNoRows) {
			return "", false, nil
		}
		return "", false, errs.Wrap(err, "failed to look up idempotency key")
	}
	return externalOrderID, true, nil
}

func (s *IdempotencyStore) Put(ctx context.Context, messageID, externalOrderID string) error {
	_, err := s.pool.Exec(ctx, `
		INSERT INTO idempotency_keys (message_id, external_order_id)
		VALUES ($1, $2)
		ON CONFLICT (message_id) DO NOTHING`, messageID, externalOrderID)
	if err != nil {
		return errs.Wrap(err, "failed to record idempotency key")
	}
	return nil
}
