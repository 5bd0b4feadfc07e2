package calculation

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/imorrison/euler/internal/domain"
	"golang.org/x/sync/errgroup"
)

// Solver computes one problem from the configuration.
type Solver func(ctx context.Context, config *domain.Configuration) (*domain.Result, error)

// Problem is a registered exercise
type Problem struct {
	ID      string
	Title   string
	Aliases []string
	Solve   Solver
}

// Engine runs registered problems and times them
type Engine struct {
	Logger   Logger
	problems []Problem
	now      func() time.Time
}

// NewEngine creates an engine with the built-in problems registered
func NewEngine() *Engine {
	e := &Engine{
		Logger: NopLogger{},
		now:    time.Now,
	}
	for _, p := range builtInProblems(e) {
		if err := e.Register(p); err != nil {
			panic(err)
		}
	}
	return e
}

// SetLogger sets the logger for the engine. If nil is provided, a no-op logger is used.
func (e *Engine) SetLogger(l Logger) {
	if l == nil {
		e.Logger = NopLogger{}
		return
	}
	e.Logger = l
}

// Register adds a problem. IDs and aliases must be unique.
func (e *Engine) Register(p Problem) error {
	if p.ID == "" || p.Solve == nil {
		return fmt.Errorf("problem %q: id and solver are required", p.ID)
	}
	for _, name := range append([]string{p.ID}, p.Aliases...) {
		if _, err := e.Problem(name); err == nil {
			return fmt.Errorf("problem %q: name %q already registered", p.ID, name)
		}
	}
	e.problems = append(e.problems, p)
	return nil
}

// Problems returns the registered problems in registration order
func (e *Engine) Problems() []Problem {
	return append([]Problem(nil), e.problems...)
}

// Problem looks a problem up by ID or alias
func (e *Engine) Problem(name string) (Problem, error) {
	n := strings.ToLower(strings.TrimSpace(name))
	for _, p := range e.problems {
		if p.ID == n {
			return p, nil
		}
		for _, a := range p.Aliases {
			if a == n {
				return p, nil
			}
		}
	}
	return Problem{}, fmt.Errorf("%w: %q", ErrUnknownProblem, name)
}

// RunProblem solves a single problem and records how long it took
func (e *Engine) RunProblem(ctx context.Context, config *domain.Configuration, name string) (*domain.Result, error) {
	p, err := e.Problem(name)
	if err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	e.Logger.Debugf("solving problem %s (%s)", p.ID, p.Title)
	start := e.now()
	result, err := p.Solve(ctx, config)
	if err != nil {
		e.Logger.Errorf("problem %s failed: %v", p.ID, err)
		return nil, fmt.Errorf("problem %s: %w", p.ID, err)
	}
	result.ProblemID = p.ID
	result.Title = p.Title
	result.Elapsed = e.now().Sub(start)
	e.Logger.Infof("problem %s solved: answer=%s method=%s elapsed=%s", p.ID, result.Answer, result.Method, result.Elapsed)
	return result, nil
}

// RunProblems solves the named problems concurrently, or every registered
// problem when names is empty. Results keep the requested order.
func (e *Engine) RunProblems(ctx context.Context, config *domain.Configuration, names []string) (*domain.Report, error) {
	if len(names) == 0 {
		for _, p := range e.problems {
			names = append(names, p.ID)
		}
	}
	// resolve up front so an unknown name fails before any work starts
	for _, name := range names {
		if _, err := e.Problem(name); err != nil {
			return nil, err
		}
	}

	results := make([]domain.Result, len(names))
	g, gctx := errgroup.WithContext(ctx)
	for i, name := range names {
		g.Go(func() error {
			r, err := e.RunProblem(gctx, config, name)
			if err != nil {
				return err
			}
			results[i] = *r
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return &domain.Report{
		GeneratedAt: e.now(),
		Results:     results,
	}, nil
}
