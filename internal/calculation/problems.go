package calculation

import (
	"context"
	"fmt"
	"strconv"

	"github.com/imorrison/euler/internal/domain"
	"github.com/imorrison/euler/pkg/decimal"
)

// Built-in problem IDs
const (
	ProblemMultiples     = "1"
	ProblemEvenFibonacci = "2"
	ProblemFibonacci     = "fib"
)

// MaxRecursiveFibonacciIndex bounds the naive recursion to inputs that finish promptly.
const MaxRecursiveFibonacciIndex = 40

func builtInProblems(e *Engine) []Problem {
	return []Problem{
		{
			ID:      ProblemMultiples,
			Title:   "Multiples of 3 or 5",
			Aliases: []string{"multiples", "sum-of-multiples"},
			Solve:   e.solveMultiples,
		},
		{
			ID:      ProblemEvenFibonacci,
			Title:   "Even Fibonacci numbers",
			Aliases: []string{"even-fibonacci"},
			Solve:   e.solveEvenFibonacci,
		},
		{
			ID:      ProblemFibonacci,
			Title:   "Fibonacci number",
			Aliases: []string{"fibonacci"},
			Solve:   e.solveFibonacci,
		},
	}
}

func (e *Engine) solveMultiples(_ context.Context, config *domain.Configuration) (*domain.Result, error) {
	mc := config.Multiples
	if err := checkMultiplesInput(mc.Factors, mc.Bound); err != nil {
		return nil, err
	}
	method := mc.Method
	if method == "" {
		method = domain.MethodClosedForm
	}

	var answer decimal.Whole
	switch method {
	case domain.MethodClosedForm:
		if mc.Precision == domain.PrecisionExact {
			total, err := SumOfMultiplesWhole(mc.Factors, mc.Bound)
			if err != nil {
				return nil, err
			}
			answer = total
			break
		}
		for _, k := range mc.Factors {
			e.Logger.Debugf("multiples of %d below %d: %d terms", k, mc.Bound, TermCount(k, mc.Bound))
		}
		total, err := SumOfMultiples(mc.Factors, mc.Bound)
		if err != nil {
			return nil, err
		}
		answer = decimal.NewWhole(total)
	case domain.MethodLoop:
		total, err := SumOfMultiplesLoop(mc.Factors, mc.Bound)
		if err != nil {
			return nil, err
		}
		answer = decimal.NewWhole(total)
	default:
		return nil, fmt.Errorf("%w %q for sum of multiples", ErrUnknownMethod, method)
	}

	return &domain.Result{
		Method:   method,
		Answer:   answer,
		Sentence: MultiplesSentence(mc.Factors, mc.Bound, answer.String()),
	}, nil
}

func (e *Engine) solveFibonacci(_ context.Context, config *domain.Configuration) (*domain.Result, error) {
	fc := config.Fibonacci
	method := fc.Method
	if method == "" {
		method = domain.MethodRecursive
	}
	if fc.Index < 0 {
		return nil, fmt.Errorf("fibonacci index %d: %w", fc.Index, ErrNegativeInput)
	}

	var value int64
	switch method {
	case domain.MethodRecursive:
		if fc.Index > MaxRecursiveFibonacciIndex {
			return nil, fmt.Errorf("fibonacci index %d (max %d, use %s): %w",
				fc.Index, MaxRecursiveFibonacciIndex, domain.MethodIterative, ErrIndexTooLarge)
		}
		value = FibRecursive(fc.Index)
	case domain.MethodIterative:
		v, err := FibIterative(fc.Index)
		if err != nil {
			return nil, err
		}
		value = v
	default:
		return nil, fmt.Errorf("%w %q for fibonacci", ErrUnknownMethod, method)
	}

	return &domain.Result{
		Method:   method,
		Answer:   decimal.NewWhole(value),
		Sentence: strconv.FormatInt(value, 10),
	}, nil
}

func (e *Engine) solveEvenFibonacci(_ context.Context, config *domain.Configuration) (*domain.Result, error) {
	limit := config.EvenFibonacci.Limit
	total, err := EvenFibonacciSum(limit)
	if err != nil {
		return nil, err
	}
	return &domain.Result{
		Method:   domain.MethodIterative,
		Answer:   decimal.NewWhole(total),
		Sentence: fmt.Sprintf("The sum of the even Fibonacci terms not exceeding %d is %d.", limit, total),
	}, nil
}
