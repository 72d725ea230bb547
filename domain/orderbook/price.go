package orderbook

import (
	"fmt"
	"math"

	"github.com/shopspring/decimal"
)

// PriceScale is the number of sub-units per whole price unit.
// 100_000 gives five decimal places of exact precision.
const PriceScale = 100_000

const priceDecimals = 5

var (
	tickFactor = decimal.NewFromInt(PriceScale)
	maxTicks   = decimal.NewFromInt(math.MaxInt64)
)

// Price is an exact decimal price: whole units plus scaled sub-units.
// It is an immutable value type, ordered lexicographically on
// (Integral, Fractional), and keys the price level it rests at.
type Price struct {
	Integral   uint64
	Fractional uint64
}

// PriceFromString parses a decimal string such as "100.25".
func PriceFromString(s string) (Price, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return Price{}, fmt.Errorf("%w: %q", ErrInvalidPrice, s)
	}
	return PriceFromDecimal(d)
}

// PriceFromFloat accepts a finite, non-negative float. The value is
// converted through decimal before scaling so float representation
// error never reaches the matching boundary.
func PriceFromFloat(f float64) (Price, error) {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return Price{}, fmt.Errorf("%w: non-finite %v", ErrInvalidPrice, f)
	}
	return PriceFromDecimal(decimal.NewFromFloat(f))
}

// PriceFromDecimal scales the decimal into integer sub-units.
// Precision beyond PriceScale is truncated, never rounded.
func PriceFromDecimal(d decimal.Decimal) (Price, error) {
	if d.IsNegative() {
		return Price{}, fmt.Errorf("%w: negative %s", ErrInvalidPrice, d)
	}
	ticks := d.Mul(tickFactor).Truncate(0)
	if ticks.Cmp(maxTicks) > 0 {
		return Price{}, fmt.Errorf("%w: %s exceeds representable range", ErrInvalidPrice, d)
	}
	return priceFromTicks(ticks.IntPart()), nil
}

// PriceFromTicks rebuilds a Price from its tick form. Used by WAL
// replay and snapshot loading, where ticks are the persisted form.
func PriceFromTicks(t int64) (Price, error) {
	if t < 0 {
		return Price{}, fmt.Errorf("%w: negative ticks %d", ErrInvalidPrice, t)
	}
	return priceFromTicks(t), nil
}

func priceFromTicks(t int64) Price {
	return Price{
		Integral:   uint64(t) / PriceScale,
		Fractional: uint64(t) % PriceScale,
	}
}

// Ticks is the canonical comparable form: Integral*PriceScale + Fractional.
func (p Price) Ticks() int64 {
	return int64(p.Integral*PriceScale + p.Fractional)
}

// Compare orders prices lexicographically on (Integral, Fractional).
func (p Price) Compare(q Price) int {
	switch {
	case p.Integral < q.Integral:
		return -1
	case p.Integral > q.Integral:
		return 1
	case p.Fractional < q.Fractional:
		return -1
	case p.Fractional > q.Fractional:
		return 1
	default:
		return 0
	}
}

func (p Price) Less(q Price) bool { return p.Compare(q) < 0 }

func (p Price) Equal(q Price) bool { return p == q }

func (p Price) IsZero() bool { return p == Price{} }

func (p Price) String() string {
	return decimal.New(p.Ticks(), -priceDecimals).String()
}
