package commands

import (
	"context"
	"log/slog"

	"ondc-seller-bridge/internal/domain/rating"
	"ondc-seller-bridge/internal/pkg/clock"
	"ondc-seller-bridge/internal/pkg/errs"
)

type CreateRatingRequest struct {
	OrderID string
	Value   int
	Comment string
}

type RatingCommands interface {
	Create(ctx context.Context, req CreateRatingRequest) (*rating.Rating, error)
}

type ratingCommandsImpl struct {
	store  RatingStore
	clock  clock.Clock
	logger *slog.Logger
}

func NewRatingCommands(store RatingStore, clk clock.Clock, logger *slog.Logger) RatingCommands {
	return &ratingCommandsImpl{store: store, clock: clk, logger: logger}
}

// Create appends a rating keyed by the externally supplied order id. The
// order's existence is not verified; the network may rate orders fulfilled
// before this deployment's store history began.
func (c *ratingCommandsImpl) Create(ctx context.Context, req CreateRatingRequest) (*rating.Rating, error) {
	r, err := rating.New(req.OrderID, req.Value, req.Comment, c.clock.Now().UTC())
	if err != nil {
		return nil, errs.Mark(err, errs.ErrValidation)
	}
	if err := c.store.Append(ctx, r); err != nil {
		return nil, errs.Mark(err, errs.ErrDownstream)
	}
	c.logger.Info("rating recorded", "order_id", r.OrderID, "value", r.Value.Int())
	return &r, nil
}
