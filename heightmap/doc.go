// Package heightmap treats a letter-coded elevation grid as an implicit
// graph and finds the fewest-step climbs across it.
//
// What:
//
//   - Map wraps a rectangular grid of elevations 'a' (lowest) to 'z'
//     (highest), with one start cell S (elevation a) and one end cell
//     E (elevation z).
//   - A step goes to one of the four orthogonal neighbors and may climb at
//     most one letter; descending any amount is allowed.
//   - Climb finds the fewest steps from S to E with A* and a Manhattan
//     heuristic; Descend finds the fewest steps from any cell of a given
//     elevation to E by searching backwards from E.
//   - Stepper exposes the underlying bestfirst.Stepper, and Render draws
//     its progress (frontier, reached cells, final path) for animation.
//
// Complexity:
//
//   - Climb, Descend: O(W×H log(W×H)), Memory: O(W×H).
//   - Render:         O(W×H) per frame, plus O(F) for F frontier cells.
//
// Errors:
//
//   - ErrEmptyGrid: input has no rows or no columns.
//   - ErrNonRectangular: rows have differing lengths.
//   - ErrBadCell: a character outside 'a'-'z', 'S' and 'E', or a second S/E.
//   - ErrNoStart, ErrNoEnd: S or E is missing.
//   - bestfirst.ErrExhausted (wrapped): no route exists.
package heightmap
