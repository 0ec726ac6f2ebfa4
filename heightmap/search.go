package heightmap

import (
	"fmt"

	"github.com/katalvlaran/lvsearch/bestfirst"
)

// manhattan returns an admissible unit-step heuristic towards target.
func manhattan(target Point) func(Point) int {
	return func(p Point) int {
		return abs(p.X-target.X) + abs(p.Y-target.Y)
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}

	return v
}

// Stepper prepares a search without running it, for animation.
//
//	from == 'S':        S → E with the Manhattan heuristic (see Climb).
//	from in 'a'..'z':   E backwards to the nearest cell of that elevation
//	                    (see Descend).
//
// Any other from is ErrBadCell.
func (m *Map) Stepper(from byte, opts ...bestfirst.Option) (*bestfirst.Stepper[Point, int], error) {
	switch {
	case from == 'S':
		return bestfirst.NewPathStepper(
			bestfirst.Unit[Point, int](m.Neighbors),
			m.Start,
			func(p Point) bool { return p == m.End },
			manhattan(m.End),
			opts...,
		)
	case from >= Lowest && from <= Highest:
		return bestfirst.NewPathStepper(
			bestfirst.Unit[Point, int](m.Predecessors),
			m.End,
			func(p Point) bool { return m.Elevation(p) == from },
			nil,
			opts...,
		)
	default:
		return nil, fmt.Errorf("%w: cannot start from %q", ErrBadCell, from)
	}
}

// Climb returns the fewest-step route from Start to End.
// Result.Cost is the number of steps; Result.Path runs Start → End.
func (m *Map) Climb(opts ...bestfirst.Option) (*bestfirst.Result[Point, int], error) {
	s, err := m.Stepper('S', opts...)
	if err != nil {
		return nil, err
	}
	res, err := s.Run()
	if err != nil {
		return nil, fmt.Errorf("heightmap: climb from %v: %w", m.Start, err)
	}

	return res, nil
}

// Descend returns the fewest-step route to End from any cell of the given
// elevation. The search runs backwards from End, so one pass covers every
// candidate start. Result.Path is returned in walking order, ending at End.
func (m *Map) Descend(elevation byte, opts ...bestfirst.Option) (*bestfirst.Result[Point, int], error) {
	if elevation < Lowest || elevation > Highest {
		return nil, fmt.Errorf("%w: elevation %q", ErrBadCell, elevation)
	}
	s, err := m.Stepper(elevation, opts...)
	if err != nil {
		return nil, err
	}
	res, err := s.Run()
	if err != nil {
		return nil, fmt.Errorf("heightmap: descend to %q: %w", elevation, err)
	}
	path := make([]Point, len(res.Path))
	for i, p := range res.Path {
		path[len(path)-1-i] = p
	}
	res.Path = path

	return res, nil
}
