// Package bestfirst defines core types, sentinel errors and configuration
// options for the best-first search engine.
//
// Two scoring conventions share one engine:
//
//	– Node-scored (Solve):    every node carries its own score, cost(node).
//	  Dominance compares that score; the frontier orders by it.
//	– Path-scored (ShortestPath): the score of a node is the accumulated
//	  edge weight g from the start; the frontier orders by g + h(node).
//
// Options:
//
//	– Order:          Minimize (default) or Maximize.
//	– Ctx:            cancellation; checked once per expansion.
//	– MaxExpansions:  cap on settled nodes; 0 means unlimited.
//	– TimeLimit:      soft wall-clock budget; 0 means unlimited.
//
// Errors (sentinel):
//
//	– ErrExhausted        frontier emptied before any goal was popped.
//	– ErrBudgetExceeded   MaxExpansions reached.
//	– ErrDeadline         TimeLimit elapsed.
//	– ErrNilFunc          a required callback is nil.
//	– ErrOptionViolation  an Option received an invalid value.
package bestfirst

import (
	"context"
	"errors"
	"fmt"
	"time"

	"golang.org/x/exp/constraints"
)

// Sentinel errors returned by the engine.
var (
	// ErrExhausted indicates that every reachable node was explored without
	// satisfying the goal predicate. No solution exists.
	ErrExhausted = errors.New("bestfirst: frontier exhausted before reaching a goal")

	// ErrBudgetExceeded indicates that MaxExpansions nodes were settled
	// without reaching a goal.
	ErrBudgetExceeded = errors.New("bestfirst: expansion budget exceeded")

	// ErrDeadline indicates that the TimeLimit elapsed before a goal was reached.
	ErrDeadline = errors.New("bestfirst: time limit exceeded")

	// ErrNilFunc indicates that a successor, goal or cost callback is nil.
	ErrNilFunc = errors.New("bestfirst: required callback is nil")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("bestfirst: invalid option supplied")
)

// Number is the set of scalar types usable as scores and edge weights.
type Number interface {
	constraints.Integer | constraints.Float
}

// Order selects which end of the score range is popped first.
type Order int

const (
	// Minimize pops the lowest score first (shortest path, least cost).
	Minimize Order = iota

	// Maximize pops the highest score first. Use it with an upper-bound
	// score so that the first goal popped is optimal.
	Maximize
)

// String implements fmt.Stringer.
func (o Order) String() string {
	switch o {
	case Minimize:
		return "minimize"
	case Maximize:
		return "maximize"
	default:
		return fmt.Sprintf("Order(%d)", int(o))
	}
}

// Edge is a weighted successor used by path-scored searches.
type Edge[N comparable, C Number] struct {
	To     N // successor node
	Weight C // non-negative transition cost
}

// Result is the outcome of a successful search.
//
//   - Path:     start → goal inclusive, in traversal order.
//   - Cost:     the goal's score (its own cost for Solve, the accumulated g
//     for ShortestPath).
//   - Expanded: number of nodes popped and settled, goal included.
//   - Pushed:   number of frontier insertions, start included.
type Result[N comparable, C Number] struct {
	Path     []N
	Cost     C
	Expanded int
	Pushed   int
}

// Goal returns the last node of the path.
func (r *Result[N, C]) Goal() N {
	return r.Path[len(r.Path)-1]
}

// Option configures the engine via functional arguments.
// Invalid values are recorded and surface as ErrOptionViolation
// when the search is created.
type Option func(*Options)

// Options holds the tunables of a single search.
type Options struct {
	// Ctx allows cancellation and deadlines.
	Ctx context.Context

	// Order selects minimization or maximization of the score.
	Order Order

	// MaxExpansions, if > 0, aborts with ErrBudgetExceeded once that many
	// nodes have been settled.
	MaxExpansions int

	// TimeLimit, if > 0, aborts with ErrDeadline once elapsed. It is
	// checked every deadlineStride expansions only.
	TimeLimit time.Duration

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with:
//   - context.Background()
//   - Minimize order
//   - no expansion budget
//   - no time limit.
func DefaultOptions() Options {
	return Options{
		Ctx:   context.Background(),
		Order: Minimize,
	}
}

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithOrder selects Minimize or Maximize.
func WithOrder(order Order) Option {
	return func(o *Options) {
		switch order {
		case Minimize, Maximize:
			o.Order = order
		default:
			o.err = fmt.Errorf("%w: unknown order %d", ErrOptionViolation, int(order))
		}
	}
}

// WithMaxExpansions caps the number of settled nodes.
//
//	n > 0:  limit to n expansions
//	n == 0: explicit no limit
//	n < 0:  invalid option → ErrOptionViolation
func WithMaxExpansions(n int) Option {
	return func(o *Options) {
		if n < 0 {
			o.err = fmt.Errorf("%w: MaxExpansions cannot be negative (%d)", ErrOptionViolation, n)
			return
		}
		o.MaxExpansions = n
	}
}

// WithTimeLimit sets a soft wall-clock budget. A negative duration is an
// ErrOptionViolation; zero disables the limit.
func WithTimeLimit(d time.Duration) Option {
	return func(o *Options) {
		if d < 0 {
			o.err = fmt.Errorf("%w: TimeLimit cannot be negative (%s)", ErrOptionViolation, d)
			return
		}
		o.TimeLimit = d
	}
}
