// Package bestfirst implements a generic best-first graph search.
//
// The engine repeatedly pops the most promising node from a priority queue,
// stops at the first node satisfying the goal predicate, and otherwise pushes
// every successor whose score improves on the best score recorded for it.
//
// Complexity:
//
//   - Time:  O(P log P) heap work for P pushes, plus the callers' successor
//     and cost functions. P is bounded by the number of distinct improvements,
//     i.e. O(E) for path searches and O(V) for node-scored searches.
//   - Space: O(V) for the BestKnown and ParentOf maps, O(P) for the heap.
//
// Notes on implementation choices:
//
//   - Lazy decrease-key: improved nodes are pushed again and the superseded
//     entries are skipped when popped.
//   - Equal priorities pop in insertion order, so a search is deterministic
//     for deterministic callbacks.
//   - Parent links are recorded when a node is pushed; the path of the goal
//     is rebuilt by walking them back to the start.
package bestfirst

// Solve runs a node-scored best-first search from start.
//
// successors must be a pure function of its argument. cost(n) is both the
// frontier priority of n and the value compared to decide whether a newly
// generated n improves on the one already known. Under Minimize the lowest
// cost pops first; under Maximize the highest does. When cost is an
// admissible bound (never worse than the best goal reachable from n), the
// first goal popped is optimal.
//
// Returns the path start → goal inclusive. Errors:
//   - ErrNilFunc if a callback is nil.
//   - ErrOptionViolation for invalid options.
//   - ErrExhausted if no reachable node satisfies goal.
//   - ErrBudgetExceeded, ErrDeadline or the context error for caller bounds.
func Solve[N comparable, C Number](
	successors func(N) []N,
	start N,
	goal func(N) bool,
	cost func(N) C,
	opts ...Option,
) (*Result[N, C], error) {
	s, err := NewStepper(successors, start, goal, cost, opts...)
	if err != nil {
		return nil, err
	}

	return s.Run()
}

// ShortestPath runs A* from start over weighted edges.
//
// The score of a node is the accumulated weight g of the best path found to
// it; the frontier is ordered by g + heuristic(node). Weights must be
// non-negative and heuristic must never overestimate the remaining cost.
// A nil heuristic is treated as zero (Dijkstra). WithOrder(Maximize) is
// rejected with ErrOptionViolation.
//
// Result.Cost is the total weight of the returned path.
func ShortestPath[N comparable, C Number](
	neighbors func(N) []Edge[N, C],
	start N,
	goal func(N) bool,
	heuristic func(N) C,
	opts ...Option,
) (*Result[N, C], error) {
	s, err := NewPathStepper(neighbors, start, goal, heuristic, opts...)
	if err != nil {
		return nil, err
	}

	return s.Run()
}

// Unit wraps an unweighted neighbor function into unit-weight edges.
func Unit[N comparable, C Number](neighbors func(N) []N) func(N) []Edge[N, C] {
	return func(n N) []Edge[N, C] {
		next := neighbors(n)
		out := make([]Edge[N, C], len(next))
		for i, m := range next {
			out[i] = Edge[N, C]{To: m, Weight: 1}
		}

		return out
	}
}
