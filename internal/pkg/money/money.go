package money

import (
	"fmt"
	"strconv"
	"strings"

	"ondc-seller-bridge/internal/pkg/errs"
)

// Amount is a currency value in minor units (paise for INR). The protocol
// serializes prices as decimal strings with two fraction digits; arithmetic
// stays in integers so line totals never accumulate float error.
type Amount int64

var ErrInvalidAmount = errs.New("invalid amount")

// Parse converts a decimal string ("100", "100.5", "100.00") into minor
// units. More than two fraction digits or a negative value is rejected.
func Parse(s string) (Amount, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, errs.Wrap(ErrInvalidAmount, "empty value")
	}
	whole, frac, hasFrac := strings.Cut(s, ".")
	if strings.HasPrefix(whole, "-") {
		return 0, errs.Wrap(ErrInvalidAmount, "negative value")
	}
	major, err := strconv.ParseInt(whole, 10, 64)
	if err != nil {
		return 0, errs.Mark(err, ErrInvalidAmount)
	}
	var minor int64
	if hasFrac {
		if len(frac) == 0 || len(frac) > 2 {
			return 0, errs.Wrap(ErrInvalidAmount, "fraction must be 1 or 2 digits")
		}
		minor, err = strconv.ParseInt(frac, 10, 64)
		if err != nil || minor < 0 {
			return 0, errs.Mark(err, ErrInvalidAmount)
		}
		if len(frac) == 1 {
			minor *= 10
		}
	}
	return Amount(major*100 + minor), nil
}

// FromMinor wraps an already-minor-unit value.
func FromMinor(v int64) Amount { return Amount(v) }

func (a Amount) Minor() int64 { return int64(a) }

// MulQty returns the line total for qty units priced at a.
func (a Amount) MulQty(qty int) Amount { return a * Amount(qty) }

// String renders the amount as a two-digit decimal, the protocol wire form.
func (a Amount) String() string {
	return fmt.Sprintf("%d.%02d", int64(a)/100, int64(a)%100)
}
