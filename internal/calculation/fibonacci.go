package calculation

import (
	"fmt"
	"math"
)

// MaxFibonacciIndex is the largest n whose Fibonacci number fits in an int64.
const MaxFibonacciIndex = 92

// FibRecursive returns the n-th Fibonacci number straight from the
// definition. It takes exponential time. n <= 0 yields 0.
func FibRecursive(n int) int64 {
	switch {
	case n <= 0:
		return 0
	case n == 1:
		return 1
	}
	return FibRecursive(n-1) + FibRecursive(n-2)
}

// FibIterative returns the n-th Fibonacci number in linear time.
func FibIterative(n int) (int64, error) {
	if n < 0 {
		return 0, fmt.Errorf("fibonacci index %d: %w", n, ErrNegativeInput)
	}
	if n > MaxFibonacciIndex {
		return 0, fmt.Errorf("fibonacci index %d: %w", n, ErrOverflow)
	}
	var a, b int64 = 0, 1
	for i := 0; i < n; i++ {
		a, b = b, a+b
	}
	return a, nil
}

// EvenFibonacciSum returns the sum of the even-valued terms of 1, 2, 3, 5, 8, ...
// that do not exceed limit.
func EvenFibonacciSum(limit int64) (int64, error) {
	if limit < 0 {
		return 0, fmt.Errorf("even fibonacci limit %d: %w", limit, ErrNegativeInput)
	}
	var total int64
	a, b := int64(1), int64(2)
	for a <= limit {
		if a%2 == 0 {
			var ok bool
			if total, ok = addChecked(total, a); !ok {
				return 0, fmt.Errorf("even fibonacci limit %d: %w", limit, ErrOverflow)
			}
		}
		if b > math.MaxInt64-a {
			// the next term cannot be represented, so it exceeds limit
			if b <= limit && b%2 == 0 {
				var ok bool
				if total, ok = addChecked(total, b); !ok {
					return 0, fmt.Errorf("even fibonacci limit %d: %w", limit, ErrOverflow)
				}
			}
			break
		}
		a, b = b, a+b
	}
	return total, nil
}
