package calculation

import "errors"

var (
	// ErrOverflow is returned when a result does not fit in an int64.
	ErrOverflow = errors.New("integer overflow")
	// ErrNegativeInput is returned for inputs that must be non-negative.
	ErrNegativeInput = errors.New("input must be non-negative")
	// ErrInvalidFactor is returned for factors that are not positive.
	ErrInvalidFactor = errors.New("factor must be positive")
	// ErrIndexTooLarge is returned when the recursive method would take too long.
	ErrIndexTooLarge = errors.New("index too large for recursive method")
	// ErrUnknownProblem is returned when no problem is registered under an ID.
	ErrUnknownProblem = errors.New("unknown problem")
	// ErrUnknownMethod is returned when a problem does not support a method.
	ErrUnknownMethod = errors.New("unknown method")
)
