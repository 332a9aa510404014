//go:build unit

package money_test

import (
	"testing"

	"ondc-seller-bridge/internal/pkg/money"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	cases := []struct {
		name    string
		in      string
		want    int64
		wantErr bool
	}{
		{name: "whole value", in: "100", want: 10000},
		{name: "two fraction digits", in: "100.00", want: 10000},
		{name: "one fraction digit", in: "100.5", want: 10050},
		{name: "small value", in: "0.99", want: 99},
		{name: "surrounding whitespace", in: " 42.10 ", want: 4210},
		{name: "empty", in: "", wantErr: true},
		{name: "negative", in: "-1.00", wantErr: true},
		{name: "three fraction digits", in: "1.005", wantErr: true},
		{name: "trailing dot", in: "1.", wantErr: true},
		{name: "not a number", in: "abc", wantErr: true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := money.Parse(tc.in)
			if tc.wantErr {
				require.ErrorIs(t, err, money.ErrInvalidAmount)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, got.Minor())
		})
	}
}

func TestStringRoundTrip(t *testing.T) {
	a, err := money.Parse("100.00")
	require.NoError(t, err)
	assert.Equal(t, "100.00", a.String())
	assert.Equal(t, "0.05", money.FromMinor(5).String())
	assert.Equal(t, "1.50", money.FromMinor(150).String())
}

func TestMulQty(t *testing.T) {
	unit, err := money.Parse("100.00")
	require.NoError(t, err)
	assert.Equal(t, "300.00", unit.MulQty(3).String())
	assert.Equal(t, "0.00", unit.MulQty(0).String())
}
