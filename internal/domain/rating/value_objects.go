package rating

import (
	"strings"
	"time"

	"ondc-seller-bridge/internal/pkg/errs"
)

const MaxCommentLength = 1000

var (
	ErrInvalidValue   = errs.New("rating value must be between 1 and 5")
	ErrCommentTooLong = errs.New("rating comment exceeds maximum length")
	ErrOrderIDMissing = errs.New("rating order id is required")
)

type Value struct {
	v int
}

func NewValue(v int) (Value, error) {
	if v < 1 || v > 5 {
		return Value{}, ErrInvalidValue
	}
	return Value{v: v}, nil
}

func (r Value) Int() int { return r.v }

type Comment struct {
	text string
}

// NewComment trims and bounds the optional free-text comment. Empty is
// allowed; the network does not require buyers to explain a score.
func NewComment(s string) (Comment, error) {
	t := strings.TrimSpace(s)
	if len(t) > MaxCommentLength {
		return Comment{}, ErrCommentTooLong
	}
	return Comment{text: t}, nil
}

func (c Comment) String() string { return c.text }

// Rating is an append-only record keyed by the externally supplied order id.
// The order is not required to exist; see the bridge's known validation gap.
type Rating struct {
	OrderID   string
	Value     Value
	Comment   Comment
	CreatedAt time.Time
}

func New(orderID string, value int, comment string, now time.Time) (Rating, error) {
	if strings.TrimSpace(orderID) == "" {
		return Rating{}, ErrOrderIDMissing
	}
	v, err := NewValue(value)
	if err != nil {
		return Rating{}, err
	}
	c, err := NewComment(comment)
	if err != nil {
		return Rating{}, err
	}
	return Rating{OrderID: orderID, Value: v, Comment: c, CreatedAt: now}, nil
}
