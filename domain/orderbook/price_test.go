package orderbook

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPriceFromString(t *testing.T) {
	cases := []struct {
		in         string
		integral   uint64
		fractional uint64
	}{
		{"0", 0, 0},
		{"1", 1, 0},
		{"100.25", 100, 25000},
		{"50.77", 50, 77000},
		{"0.00001", 0, 1},
		{"99999.99999", 99999, 99999},
	}

	for _, tc := range cases {
		p, err := PriceFromString(tc.in)
		require.NoError(t, err, tc.in)
		assert.Equal(t, tc.integral, p.Integral, tc.in)
		assert.Equal(t, tc.fractional, p.Fractional, tc.in)
	}
}

func TestPriceFromStringInvalid(t *testing.T) {
	for _, in := range []string{"", "abc", "1.2.3", "-1", "-0.5"} {
		_, err := PriceFromString(in)
		assert.ErrorIs(t, err, ErrInvalidPrice, in)
	}
}

func TestPriceTruncatesExcessPrecision(t *testing.T) {
	p, err := PriceFromString("1.999999")
	require.NoError(t, err)
	assert.Equal(t, uint64(1), p.Integral)
	assert.Equal(t, uint64(99999), p.Fractional)
}

func TestPriceFromFloat(t *testing.T) {
	p, err := PriceFromFloat(100.25)
	require.NoError(t, err)
	assert.Equal(t, uint64(100), p.Integral)
	assert.Equal(t, uint64(25000), p.Fractional)

	// 0.1 has no exact binary form; the decimal path must still land
	// on the exact tick.
	p, err = PriceFromFloat(0.1)
	require.NoError(t, err)
	assert.Equal(t, int64(10000), p.Ticks())

	_, err = PriceFromFloat(-1)
	assert.ErrorIs(t, err, ErrInvalidPrice)
}

func TestPriceFromDecimalOverflow(t *testing.T) {
	huge := decimal.New(1, 30)
	_, err := PriceFromDecimal(huge)
	assert.ErrorIs(t, err, ErrInvalidPrice)
}

func TestPriceTicksRoundTrip(t *testing.T) {
	for _, s := range []string{"0", "0.00001", "1", "100.25", "50.77"} {
		p, err := PriceFromString(s)
		require.NoError(t, err)

		q, err := PriceFromTicks(p.Ticks())
		require.NoError(t, err)
		assert.Equal(t, p, q, s)
	}

	_, err := PriceFromTicks(-1)
	assert.ErrorIs(t, err, ErrInvalidPrice)
}

func TestPriceOrdering(t *testing.T) {
	mustPrice := func(s string) Price {
		p, err := PriceFromString(s)
		require.NoError(t, err)
		return p
	}

	a := mustPrice("99.99999")
	b := mustPrice("100")
	c := mustPrice("100.00001")

	assert.True(t, a.Less(b))
	assert.True(t, b.Less(c))
	assert.True(t, a.Less(c))
	assert.Equal(t, 0, b.Compare(mustPrice("100.0")))
	assert.Equal(t, 1, c.Compare(a))
	assert.True(t, b.Equal(mustPrice("100")))
	assert.False(t, b.Equal(c))
}

func TestPriceString(t *testing.T) {
	cases := map[string]string{
		"100.25":  "100.25",
		"50.77":   "50.77",
		"0":       "0",
		"1.00001": "1.00001",
	}
	for in, want := range cases {
		p, err := PriceFromString(in)
		require.NoError(t, err)
		assert.Equal(t, want, p.String())
	}
}
