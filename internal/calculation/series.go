package calculation

import (
	"fmt"

	"github.com/imorrison/euler/pkg/decimal"
)

// ArithmeticSum returns a + (a+d) + ... + (a+(n-1)d) using n(2a+(n-1)d)/2.
//
// The even factor of the product is halved before multiplying, so the
// result is reported as ErrOverflow only when it (or 2a+(n-1)d) does not fit
// in an int64.
func ArithmeticSum(a, d, n int64) (int64, error) {
	if a < 0 || d < 0 || n < 0 {
		return 0, fmt.Errorf("arithmetic sum a=%d d=%d n=%d: %w", a, d, n, ErrNegativeInput)
	}
	if n == 0 {
		return 0, nil
	}
	step, ok := mulChecked(n-1, d)
	if !ok {
		return 0, fmt.Errorf("arithmetic sum a=%d d=%d n=%d: %w", a, d, n, ErrOverflow)
	}
	double, ok := mulChecked(2, a)
	if !ok {
		return 0, fmt.Errorf("arithmetic sum a=%d d=%d n=%d: %w", a, d, n, ErrOverflow)
	}
	span, ok := addChecked(double, step)
	if !ok {
		return 0, fmt.Errorf("arithmetic sum a=%d d=%d n=%d: %w", a, d, n, ErrOverflow)
	}

	// n even, or n odd and therefore (n-1)d and span even.
	var sum int64
	if n%2 == 0 {
		sum, ok = mulChecked(n/2, span)
	} else {
		sum, ok = mulChecked(n, span/2)
	}
	if !ok {
		return 0, fmt.Errorf("arithmetic sum a=%d d=%d n=%d: %w", a, d, n, ErrOverflow)
	}
	return sum, nil
}

// ArithmeticSumWhole is ArithmeticSum without a width limit.
func ArithmeticSumWhole(a, d, n decimal.Whole) (decimal.Whole, error) {
	if a.IsNegative() || d.IsNegative() || n.IsNegative() {
		return decimal.Zero(), fmt.Errorf("arithmetic sum a=%s d=%s n=%s: %w", a, d, n, ErrNegativeInput)
	}
	if n.IsZero() {
		return decimal.Zero(), nil
	}
	one := decimal.NewWhole(1)
	span := a.Add(a).Add(n.Sub(one).Mul(d))
	return n.Mul(span).Half(), nil
}

// IteratedArithmeticSum adds the terms one at a time.
func IteratedArithmeticSum(a, d, n int64) (int64, error) {
	if a < 0 || d < 0 || n < 0 {
		return 0, fmt.Errorf("arithmetic sum a=%d d=%d n=%d: %w", a, d, n, ErrNegativeInput)
	}
	var total int64
	term := a
	for i := int64(0); i < n; i++ {
		var ok bool
		if total, ok = addChecked(total, term); !ok {
			return 0, fmt.Errorf("arithmetic sum a=%d d=%d n=%d: %w", a, d, n, ErrOverflow)
		}
		if i+1 < n {
			if term, ok = addChecked(term, d); !ok {
				return 0, fmt.Errorf("arithmetic sum a=%d d=%d n=%d: %w", a, d, n, ErrOverflow)
			}
		}
	}
	return total, nil
}
