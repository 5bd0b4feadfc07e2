package decimal

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Whole represents an arbitrary-size integer. It never overflows, which makes
// it the reference for the fixed-width int64 arithmetic.
type Whole struct {
	decimal.Decimal
}

var two = decimal.NewFromInt(2)

// NewWhole creates a new Whole from an int64
func NewWhole(value int64) Whole {
	return Whole{decimal.NewFromInt(value)}
}

// NewWholeFromString parses an integer literal. Exponent forms such as "1e12"
// are accepted as long as the value has no fraction.
func NewWholeFromString(value string) (Whole, error) {
	d, err := decimal.NewFromString(value)
	if err != nil {
		return Whole{}, err
	}
	if !d.IsInteger() {
		return Whole{}, fmt.Errorf("%q is not a whole number", value)
	}
	return Whole{d}, nil
}

// Add adds another Whole
func (w Whole) Add(other Whole) Whole {
	return Whole{w.Decimal.Add(other.Decimal)}
}

// Sub subtracts another Whole
func (w Whole) Sub(other Whole) Whole {
	return Whole{w.Decimal.Sub(other.Decimal)}
}

// Mul multiplies by another Whole
func (w Whole) Mul(other Whole) Whole {
	return Whole{w.Decimal.Mul(other.Decimal)}
}

// Half divides by two, truncating toward zero
func (w Whole) Half() Whole {
	return Whole{w.Decimal.Div(two).Truncate(0)}
}

// Int64 returns the value as an int64 and whether it fits.
func (w Whole) Int64() (int64, bool) {
	b := w.Decimal.BigInt()
	if !b.IsInt64() {
		return 0, false
	}
	return b.Int64(), true
}

// IsZero checks if the value is zero
func (w Whole) IsZero() bool {
	return w.Decimal.IsZero()
}

// IsNegative checks if the value is negative
func (w Whole) IsNegative() bool {
	return w.Decimal.IsNegative()
}

// Zero returns a zero Whole
func Zero() Whole {
	return Whole{decimal.Zero}
}

// String returns the integer without a fractional part
func (w Whole) String() string {
	return w.Decimal.StringFixed(0)
}
