// Package bestfirst provides a reusable best-first search engine over any
// comparable node type.
//
// Overview:
//
//   - Solve explores nodes ordered by a caller-supplied score and returns the
//     path to the first node satisfying the goal. With WithOrder(Maximize) and
//     an admissible upper bound as the score, the first goal popped is the
//     optimum and whole subtrees whose bound cannot win are never expanded.
//   - ShortestPath is the weighted special case: scores accumulate along
//     edges and a heuristic turns Dijkstra into A*.
//   - Stepper runs either search one expansion at a time for visualisation.
//
// Guarantees:
//
//   - Returned paths run start → goal inclusive.
//   - A node is pushed again only if its score strictly improves; superseded
//     frontier entries are skipped, never re-expanded.
//   - Ties between equal priorities pop in insertion order.
//   - An empty frontier before a goal is ErrExhausted: no solution exists.
//     There is no partial result.
//
// Bounds (optional, off by default): WithMaxExpansions, WithTimeLimit and
// WithContext let a caller cap an otherwise unbounded search.
//
// Thread safety:
//
//   - Every call owns its frontier and maps; concurrent calls are independent.
//   - A single Stepper must not be shared between goroutines.
//
// Example:
//
//	res, err := bestfirst.Solve(successors, start, goal, bound,
//	    bestfirst.WithOrder(bestfirst.Maximize),
//	)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(res.Goal())
package bestfirst
