package order

import (
	"time"

	"ondc-seller-bridge/internal/pkg/errs"
	"ondc-seller-bridge/internal/pkg/money"

	"github.com/google/uuid"
)

// Order is the persisted outcome of an init. ExternalID is the
// protocol-visible id every later action refers to; ID is internal.
// Cancellation is a status transition, orders are never deleted.
type Order struct {
	ID          uuid.UUID
	ExternalID  string
	CustomerID  string
	Status      Status
	TotalAmount money.Amount
	Currency    string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// Item is a single order line. UnitPrice is snapshotted at creation so later
// catalog price changes never alter an existing order.
type Item struct {
	OrderID   uuid.UUID
	ProductID string
	Quantity  int
	UnitPrice money.Amount
}

// LineTotal is UnitPrice multiplied by Quantity.
func (i Item) LineTotal() money.Amount {
	return i.UnitPrice.MulQty(i.Quantity)
}

// New builds a Created order from its lines, computing the total as the sum
// of line totals. At least one line is required and every quantity must be
// positive.
func New(externalID, customerID, currency string, items []Item, now time.Time) (*Order, []Item, error) {
	if externalID == "" {
		return nil, nil, errs.Wrap(errs.ErrValidation, "external order id is required")
	}
	if len(items) == 0 {
		return nil, nil, errs.ErrEmptyOrder
	}

	o := &Order{
		ID:         uuid.New(),
		ExternalID: externalID,
		CustomerID: customerID,
		Status:     StatusCreated,
		Currency:   currency,
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	lines := make([]Item, len(items))
	for idx, it := range items {
		if it.Quantity <= 0 {
			return nil, nil, errs.Wrap(errs.ErrValidation, "item quantity must be positive")
		}
		it.OrderID = o.ID
		lines[idx] = it
		o.TotalAmount += it.LineTotal()
	}

	return o, lines, nil
}

// Transition moves the order to next if the lifecycle allows it.
func (o *Order) Transition(next Status, now time.Time) error {
	if !o.Status.CanTransitionTo(next) {
		return errs.Wrap(errs.ErrInvalidTransition,
			string(o.Status)+" -> "+string(next))
	}
	o.Status = next
	o.UpdatedAt = now
	return nil
}
