package calculation

import "math"

// addChecked returns x+y for non-negative operands, or false on overflow.
func addChecked(x, y int64) (int64, bool) {
	if y > math.MaxInt64-x {
		return 0, false
	}
	return x + y, true
}

// mulChecked returns x*y for non-negative operands, or false on overflow.
func mulChecked(x, y int64) (int64, bool) {
	if x == 0 || y == 0 {
		return 0, true
	}
	if x > math.MaxInt64/y {
		return 0, false
	}
	return x * y, true
}

func gcd(a, b int64) int64 {
	for b != 0 {
		a, b = b, a%b
	}
	return a
}

// lcmWithin returns lcm(a, b) when it does not exceed limit.
func lcmWithin(a, b, limit int64) (int64, bool) {
	q := a / gcd(a, b)
	if q > limit/b {
		return 0, false
	}
	return q * b, true
}
