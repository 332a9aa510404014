package errs

import "errors"

// Sentinel errors shared across the bridge usecase layers. Every failure a
// store or command surfaces must resolve to exactly one of these via
// errors.Is so handlers can map it onto a protocol error envelope.
var (
	// Catalog errors
	ErrProductNotFound   = errors.New("product not found")
	ErrInsufficientStock = errors.New("insufficient stock")

	// Order errors
	ErrOrderNotFound      = errors.New("order not found")
	ErrOrderAlreadyExists = errors.New("order already exists")
	ErrInvalidTransition  = errors.New("invalid order state transition")
	ErrEmptyOrder         = errors.New("order has no fulfillable items")

	// Validation errors
	ErrValidation = errors.New("validation failed")

	// Operation errors
	ErrDownstream = errors.New("downstream store failure")
)
