package heightmap

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// Parse reads a heightmap, one row per line. Trailing blank lines are
// ignored. The input is copied, so the Map owns its cells.
// Complexity: O(W×H) time and memory.
func Parse(r io.Reader) (*Map, error) {
	var rows []string
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		rows = append(rows, strings.TrimRight(sc.Text(), "\r"))
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("heightmap: reading grid: %w", err)
	}
	for len(rows) > 0 && rows[len(rows)-1] == "" {
		rows = rows[:len(rows)-1]
	}

	return FromRows(rows)
}

// FromRows builds a Map from its textual rows.
func FromRows(rows []string) (*Map, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	h, w := len(rows), len(rows[0])
	m := &Map{Width: w, Height: h, cells: make([][]byte, h)}
	var haveStart, haveEnd bool
	for y, row := range rows {
		if len(row) != w {
			return nil, fmt.Errorf("%w: row %d has %d cells, want %d", ErrNonRectangular, y, len(row), w)
		}
		m.cells[y] = make([]byte, w)
		for x := 0; x < w; x++ {
			c := row[x]
			switch {
			case c == 'S' && !haveStart:
				haveStart = true
				m.Start = Point{x, y}
				c = Lowest
			case c == 'E' && !haveEnd:
				haveEnd = true
				m.End = Point{x, y}
				c = Highest
			case c < Lowest || c > Highest:
				return nil, fmt.Errorf("%w: %q at (%d,%d)", ErrBadCell, c, x, y)
			}
			m.cells[y][x] = c
		}
	}
	if !haveStart {
		return nil, ErrNoStart
	}
	if !haveEnd {
		return nil, ErrNoEnd
	}

	return m, nil
}
