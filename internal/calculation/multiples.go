package calculation

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/imorrison/euler/pkg/decimal"
)

// TermCount returns how many positive multiples of k lie below bound.
func TermCount(k, bound int64) int64 {
	if k <= 0 || bound <= 1 {
		return 0
	}
	return (bound - 1) / k
}

func checkMultiplesInput(factors []int64, bound int64) error {
	if bound < 0 {
		return fmt.Errorf("bound %d: %w", bound, ErrNegativeInput)
	}
	for _, f := range factors {
		if f <= 0 {
			return fmt.Errorf("factor %d: %w", f, ErrInvalidFactor)
		}
	}
	return nil
}

// visitOverlaps walks every non-empty subset of factors whose least common
// multiple has at least one multiple in [1, limit]. fn receives that lcm, the
// number of its multiples and whether the subset has odd size.
func visitOverlaps(factors []int64, limit int64, fn func(lcm, count int64, odd bool) error) error {
	var walk func(start int, l int64, size int) error
	walk = func(start int, l int64, size int) error {
		for i := start; i < len(factors); i++ {
			next, ok := lcmWithin(l, factors[i], limit)
			if !ok {
				// supersets only grow the lcm
				continue
			}
			if err := fn(next, limit/next, (size+1)%2 == 1); err != nil {
				return err
			}
			if err := walk(i+1, next, size+1); err != nil {
				return err
			}
		}
		return nil
	}
	return walk(0, 1, 0)
}

// SumOfMultiples returns the sum of the positive integers below bound that are
// divisible by at least one factor. Each factor subset contributes the
// arithmetic series of multiples of its lcm, added for odd subsets and
// subtracted for even ones; for 3 and 5 this is S3 + S5 - S15.
//
// The added and subtracted series are accumulated separately, so ErrOverflow
// may be reported for inputs whose final sum would still fit.
func SumOfMultiples(factors []int64, bound int64) (int64, error) {
	if err := checkMultiplesInput(factors, bound); err != nil {
		return 0, err
	}
	if bound <= 1 {
		return 0, nil
	}
	var plus, minus int64
	err := visitOverlaps(factors, bound-1, func(lcm, count int64, odd bool) error {
		s, err := ArithmeticSum(lcm, lcm, count)
		if err != nil {
			return err
		}
		var ok bool
		if odd {
			plus, ok = addChecked(plus, s)
		} else {
			minus, ok = addChecked(minus, s)
		}
		if !ok {
			return fmt.Errorf("sum of multiples below %d: %w", bound, ErrOverflow)
		}
		return nil
	})
	if err != nil {
		return 0, err
	}
	return plus - minus, nil
}

// SumOfMultiplesWhole is SumOfMultiples without a width limit.
func SumOfMultiplesWhole(factors []int64, bound int64) (decimal.Whole, error) {
	if err := checkMultiplesInput(factors, bound); err != nil {
		return decimal.Zero(), err
	}
	total := decimal.Zero()
	if bound <= 1 {
		return total, nil
	}
	err := visitOverlaps(factors, bound-1, func(lcm, count int64, odd bool) error {
		k := decimal.NewWhole(lcm)
		s, err := ArithmeticSumWhole(k, k, decimal.NewWhole(count))
		if err != nil {
			return err
		}
		if odd {
			total = total.Add(s)
		} else {
			total = total.Sub(s)
		}
		return nil
	})
	if err != nil {
		return decimal.Zero(), err
	}
	return total, nil
}

// SumOfMultiplesLoop tests every integer below bound against each factor.
func SumOfMultiplesLoop(factors []int64, bound int64) (int64, error) {
	if err := checkMultiplesInput(factors, bound); err != nil {
		return 0, err
	}
	var total int64
	for x := int64(1); x < bound; x++ {
		for _, f := range factors {
			if x%f != 0 {
				continue
			}
			var ok bool
			if total, ok = addChecked(total, x); !ok {
				return 0, fmt.Errorf("sum of multiples below %d: %w", bound, ErrOverflow)
			}
			break
		}
	}
	return total, nil
}

// MultiplesSentence renders e.g. "The sum of the multiples of 3 and 5 below 1000 is 233168."
func MultiplesSentence(factors []int64, bound int64, total string) string {
	return fmt.Sprintf("The sum of the multiples of %s below %d is %s.", joinFactors(factors), bound, total)
}

func joinFactors(factors []int64) string {
	parts := make([]string, len(factors))
	for i, f := range factors {
		parts[i] = strconv.FormatInt(f, 10)
	}
	if len(parts) < 2 {
		return strings.Join(parts, "")
	}
	return strings.Join(parts[:len(parts)-1], ", ") + " and " + parts[len(parts)-1]
}
