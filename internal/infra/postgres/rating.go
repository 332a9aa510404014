package postgres

import (
	"context"
	"time"

	"ondc-seller-bridge/internal/domain/rating"
	"ondc-seller-bridge/internal/pkg/errs"

	"github.com/jackc/pgx/v5/pgxpool"
)

type RatingStore struct {
	pool *pgxpool.Pool
}

func NewRatingStore(pool *pgxpool.Pool) *RatingStore {
	return &RatingStore{pool: pool}
}

func (s *RatingStore) Append(ctx context.Context, r rating.Rating) error {
	_, err := s.pool.Exec(ctx, `
		INSERT INTO ratings (order_id, value, comment, created_at)
		VALUES ($1, $2, $3, $4)`,
		r.OrderID, r.Value.Int(), r.Comment.String(), r.CreatedAt)
	if err != nil {
		return errs.Wrap(err, "failed to insert rating")
	}
	return nil
}

func (s *RatingStore) ListByOrder(ctx context.Context, orderID string) ([]rating.Rating, error) {
	rows, err := s.pool.Query(ctx, `
		SELECT order_id, value, comment, created_at
		FROM ratings WHERE order_id = $1
		ORDER BY id`, orderID)
	if err != nil {
		return nil, errs.Wrap(err, "failed to list ratings")
	}
	defer rows.Close()

	var out []rating.Rating
	for rows.Next() {
		var orderID, comment string
		var value int
		var createdAt time.Time
		if err := rows.Scan(&orderID, &value, &comment, &createdAt); err != nil {
			return nil, errs.Wrap(err, "failed to scan rating")
		}
		r, err := rating.New(orderID, value, comment, createdAt)
		if err != nil {
			return nil, errs.Wrap(err, "stored rating is invalid")
		}
		out = append(out, r)
	}
	if err := rows.Err(); err != nil {
		return nil, errs.Wrap(err, "failed to read ratings")
	}
	return out, nil
}
