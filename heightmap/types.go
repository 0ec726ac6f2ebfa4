// Package heightmap defines core types and sentinel errors
// for elevation grids.
package heightmap

import (
	"errors"
	"fmt"
)

// Sentinel errors for heightmap operations.
var (
	// ErrEmptyGrid indicates input grid has no rows or no columns.
	ErrEmptyGrid = errors.New("heightmap: input grid must have at least one row and one column")
	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = errors.New("heightmap: all rows must have the same length")
	// ErrBadCell indicates a character that is not an elevation, S or E.
	ErrBadCell = errors.New("heightmap: invalid cell")
	// ErrNoStart indicates the grid has no S cell.
	ErrNoStart = errors.New("heightmap: no start cell 'S'")
	// ErrNoEnd indicates the grid has no E cell.
	ErrNoEnd = errors.New("heightmap: no end cell 'E'")
)

// Elevations of the marked cells.
const (
	Lowest  byte = 'a' // elevation of S
	Highest byte = 'z' // elevation of E
)

// Point is a cell position; X grows to the right, Y grows downwards.
type Point struct {
	X, Y int
}

// String implements fmt.Stringer.
func (p Point) String() string { return fmt.Sprintf("(%d,%d)", p.X, p.Y) }

// offsets are the Conn4 neighbor directions: W, E, N, S.
var offsets = [4]Point{{-1, 0}, {1, 0}, {0, -1}, {0, 1}}

// Map is an elevation grid. It is immutable once built.
// Width and Height define dimensions; cells[y][x] holds the elevation of
// (x,y), with S and E already replaced by Lowest and Highest.
type Map struct {
	Width, Height int
	Start, End    Point
	cells         [][]byte
}

// InBounds reports whether p lies within the grid boundaries.
// Complexity: O(1).
func (m *Map) InBounds(p Point) bool {
	return p.X >= 0 && p.X < m.Width && p.Y >= 0 && p.Y < m.Height
}

// Elevation returns the elevation of p. p must be in bounds.
func (m *Map) Elevation(p Point) byte {
	return m.cells[p.Y][p.X]
}

// Neighbors returns the in-bounds orthogonal neighbors of p that can be
// reached from p in one step: at most one letter higher.
func (m *Map) Neighbors(p Point) []Point {
	limit := m.Elevation(p) + 1
	out := make([]Point, 0, len(offsets))
	for _, d := range offsets {
		q := Point{p.X + d.X, p.Y + d.Y}
		if m.InBounds(q) && m.Elevation(q) <= limit {
			out = append(out, q)
		}
	}

	return out
}

// Predecessors returns the in-bounds orthogonal neighbors of p from which
// p can be reached in one step. It is Neighbors on the reversed graph.
func (m *Map) Predecessors(p Point) []Point {
	e := m.Elevation(p)
	out := make([]Point, 0, len(offsets))
	for _, d := range offsets {
		q := Point{p.X + d.X, p.Y + d.Y}
		if m.InBounds(q) && e <= m.Elevation(q)+1 {
			out = append(out, q)
		}
	}

	return out
}

// Cells returns every point of the given elevation in row-major order.
func (m *Map) Cells(elevation byte) []Point {
	var out []Point
	for y, row := range m.cells {
		for x, e := range row {
			if e == elevation {
				out = append(out, Point{x, y})
			}
		}
	}

	return out
}
