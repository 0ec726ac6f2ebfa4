package bestfirst

import (
	"container/heap"
	"context"
	"fmt"
	"time"
)

// deadlineStride is how many expansions pass between two clock reads.
const deadlineStride = 4096

// expandFunc yields the scored successors of a node settled with score g.
type expandFunc[N comparable, C Number] func(n N, g C) []entry[N, C]

// Stepper holds the mutable state of one search and advances it one
// expansion at a time. Solve and ShortestPath are thin loops over Step;
// use a Stepper directly to drive visualisations or to inspect the frontier.
//
// A Stepper is not safe for concurrent use. Nothing it owns outlives it.
type Stepper[N comparable, C Number] struct {
	opts     Options
	ctx      context.Context
	deadline time.Time

	expand expandFunc[N, C]
	goal   func(N) bool

	frontier frontier[N, C]
	best     map[N]C // BestKnown: node → best g seen
	parent   map[N]N // ParentOf: node → predecessor on its best path

	start    N
	current  N
	seq      uint64
	expanded int
	pushed   int

	done   bool
	err    error
	result *Result[N, C]
}

// NewStepper prepares a node-scored search (see Solve) without running it.
func NewStepper[N comparable, C Number](
	successors func(N) []N,
	start N,
	goal func(N) bool,
	cost func(N) C,
	opts ...Option,
) (*Stepper[N, C], error) {
	if successors == nil || goal == nil || cost == nil {
		return nil, ErrNilFunc
	}
	expand := func(n N, _ C) []entry[N, C] {
		next := successors(n)
		out := make([]entry[N, C], 0, len(next))
		for _, m := range next {
			c := cost(m)
			out = append(out, entry[N, C]{node: m, g: c, f: c})
		}

		return out
	}
	c := cost(start)

	return newStepper(expand, start, c, c, goal, opts)
}

// NewPathStepper prepares a path-scored search (see ShortestPath) without
// running it. heuristic may be nil, which degrades A* to Dijkstra.
func NewPathStepper[N comparable, C Number](
	neighbors func(N) []Edge[N, C],
	start N,
	goal func(N) bool,
	heuristic func(N) C,
	opts ...Option,
) (*Stepper[N, C], error) {
	if neighbors == nil || goal == nil {
		return nil, ErrNilFunc
	}
	if heuristic == nil {
		heuristic = func(N) C { return 0 }
	}
	expand := func(n N, g C) []entry[N, C] {
		edges := neighbors(n)
		out := make([]entry[N, C], 0, len(edges))
		for _, e := range edges {
			ng := g + e.Weight
			out = append(out, entry[N, C]{node: e.To, g: ng, f: ng + heuristic(e.To)})
		}

		return out
	}
	// Accumulated path costs only make sense minimised.
	opts = append(opts[:len(opts):len(opts)], func(o *Options) {
		if o.Order != Minimize && o.err == nil {
			o.err = fmt.Errorf("%w: path searches always minimize", ErrOptionViolation)
		}
	})

	return newStepper(expand, start, 0, heuristic(start), goal, opts)
}

func newStepper[N comparable, C Number](
	expand expandFunc[N, C],
	start N,
	g, f C,
	goal func(N) bool,
	opts []Option,
) (*Stepper[N, C], error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.err != nil {
		return nil, cfg.err
	}

	s := &Stepper[N, C]{
		opts:     cfg,
		ctx:      cfg.Ctx,
		expand:   expand,
		goal:     goal,
		frontier: frontier[N, C]{order: cfg.Order},
		best:     map[N]C{start: g},
		parent:   make(map[N]N),
		start:    start,
		current:  start,
	}
	if cfg.TimeLimit > 0 {
		s.deadline = time.Now().Add(cfg.TimeLimit)
	}
	s.push(entry[N, C]{node: start, g: g, f: f})

	return s, nil
}

// push stamps e with the next sequence number and inserts it.
func (s *Stepper[N, C]) push(e entry[N, C]) {
	e.seq = s.seq
	s.seq++
	s.pushed++
	heap.Push(&s.frontier, e)
}

// Step settles one node. It returns true once the search is over, either
// because a goal was popped (Result becomes non-nil) or because it failed
// (the error is returned, and returned again by every later call).
func (s *Stepper[N, C]) Step() (bool, error) {
	if s.done {
		return true, s.err
	}
	if err := s.ctx.Err(); err != nil {
		return s.fail(err)
	}

	for {
		if s.frontier.Len() == 0 {
			return s.fail(ErrExhausted)
		}
		e := heap.Pop(&s.frontier).(entry[N, C])
		// A better path to this node was pushed after e; e is stale.
		if g := s.best[e.node]; better(s.opts.Order, g, e.g) {
			continue
		}

		if s.opts.MaxExpansions > 0 && s.expanded >= s.opts.MaxExpansions {
			return s.fail(fmt.Errorf("%w: %d nodes settled", ErrBudgetExceeded, s.expanded))
		}
		s.expanded++
		if !s.deadline.IsZero() && s.expanded%deadlineStride == 0 && time.Now().After(s.deadline) {
			return s.fail(fmt.Errorf("%w: after %d expansions", ErrDeadline, s.expanded))
		}

		s.current = e.node
		if s.goal(e.node) {
			s.done = true
			s.result = &Result[N, C]{
				Path:     s.pathTo(e.node),
				Cost:     e.g,
				Expanded: s.expanded,
				Pushed:   s.pushed,
			}

			return true, nil
		}

		for _, next := range s.expand(e.node, e.g) {
			if old, seen := s.best[next.node]; seen && !better(s.opts.Order, next.g, old) {
				continue
			}
			s.best[next.node] = next.g
			s.parent[next.node] = e.node
			s.push(next)
		}

		return false, nil
	}
}

func (s *Stepper[N, C]) fail(err error) (bool, error) {
	s.done = true
	s.err = err

	return true, err
}

// Run steps until the search is over and returns its Result.
func (s *Stepper[N, C]) Run() (*Result[N, C], error) {
	for {
		done, err := s.Step()
		if err != nil {
			return nil, err
		}
		if done {
			return s.result, nil
		}
	}
}

// Result returns the outcome once a goal has been reached, nil before.
func (s *Stepper[N, C]) Result() *Result[N, C] { return s.result }

// Done reports whether the search has finished, successfully or not.
func (s *Stepper[N, C]) Done() bool { return s.done }

// Current returns the node settled by the most recent Step.
func (s *Stepper[N, C]) Current() N { return s.current }

// Expanded returns the number of nodes settled so far.
func (s *Stepper[N, C]) Expanded() int { return s.expanded }

// Reached reports whether n has ever been pushed onto the frontier.
func (s *Stepper[N, C]) Reached(n N) bool {
	_, ok := s.best[n]

	return ok
}

// Frontier returns a copy of the nodes still waiting to be expanded,
// in heap order. Stale duplicates are omitted.
func (s *Stepper[N, C]) Frontier() []N {
	out := make([]N, 0, s.frontier.Len())
	for _, e := range s.frontier.entries {
		if g := s.best[e.node]; g == e.g {
			out = append(out, e.node)
		}
	}

	return out
}

// PathTo reconstructs the best known path from the start to n by following
// parent links. It returns nil if n has not been reached.
func (s *Stepper[N, C]) PathTo(n N) []N {
	if !s.Reached(n) {
		return nil
	}

	return s.pathTo(n)
}

func (s *Stepper[N, C]) pathTo(current N) []N {
	path := []N{current}
	for current != s.start {
		prev, ok := s.parent[current]
		if !ok {
			break
		}
		path = append(path, prev)
		current = prev
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path
}
