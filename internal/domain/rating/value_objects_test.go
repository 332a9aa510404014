//go:build unit

package rating_test

import (
	"strings"
	"testing"
	"time"

	"ondc-seller-bridge/internal/domain/rating"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	now := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)

	cases := []struct {
		name    string
		orderID string
		value   int
		comment string
		errIs   error
	}{
		{name: "valid", orderID: "order_1", value: 5, comment: "great"},
		{name: "minimum value", orderID: "order_1", value: 1},
		{name: "empty comment allowed", orderID: "order_1", value: 3, comment: ""},
		{name: "comment at limit", orderID: "order_1", value: 3, comment: strings.Repeat("a", 1000)},
		{name: "value too low", orderID: "order_1", value: 0, errIs: rating.ErrInvalidValue},
		{name: "value too high", orderID: "order_1", value: 6, errIs: rating.ErrInvalidValue},
		{name: "comment too long", orderID: "order_1", value: 3, comment: strings.Repeat("a", 1001), errIs: rating.ErrCommentTooLong},
		{name: "missing order id", orderID: "  ", value: 3, errIs: rating.ErrOrderIDMissing},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			r, err := rating.New(tc.orderID, tc.value, tc.comment, now)
			if tc.errIs != nil {
				require.ErrorIs(t, err, tc.errIs)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.value, r.Value.Int())
			assert.Equal(t, now, r.CreatedAt)
		})
	}
}
