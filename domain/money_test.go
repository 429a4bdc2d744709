package domain

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestCentsFromDecimal(t *testing.T) {
	cases := []struct {
		in   string
		want Cents
	}{
		{"0", 0},
		{"1", 100},
		{"105.75", 10575},
		{"14.975", 1498}, // half up
		{"14.974", 1497},
		{"-1.25", -125},
	}
	for _, tc := range cases {
		d, err := decimal.NewFromString(tc.in)
		assert.NoError(t, err)
		assert.Equal(t, tc.want, CentsFromDecimal(d), "in=%s", tc.in)
	}
}

func TestCentsRoundTrip(t *testing.T) {
	c := Cents(12073)
	assert.Equal(t, "120.73", c.String())
	assert.Equal(t, 120.73, c.Float64())
	assert.Equal(t, c, CentsFromDecimal(c.Decimal()))
}
