// Package lavadrop measures the surface of a droplet of unit lava cubes.
//
// SurfaceArea counts every cube face not touching another cube, including
// the faces of trapped air pockets. ExteriorArea counts only the faces
// reachable from outside: it flood-fills the air around the droplet with
// bfs.Walk, inside a bounding box grown by one cell on every side, and
// counts the lava faces each air cell touches.
package lavadrop

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/katalvlaran/lvsearch/bfs"
)

// ErrMalformedCube indicates a line that is not "x,y,z" with integer coordinates.
var ErrMalformedCube = errors.New("lavadrop: malformed cube")

// Cube is the position of one unit cube.
type Cube struct {
	X, Y, Z int
}

// Add returns c shifted by d.
func (c Cube) Add(d Cube) Cube { return Cube{c.X + d.X, c.Y + d.Y, c.Z + d.Z} }

// directions are the six face normals: ±X, ±Y, ±Z.
var directions = [6]Cube{{1, 0, 0}, {-1, 0, 0}, {0, 1, 0}, {0, -1, 0}, {0, 0, 1}, {0, 0, -1}}

// Droplet is a set of cubes. The zero value is an empty droplet.
type Droplet struct {
	cubes map[Cube]struct{}
}

// New returns a droplet made of the given cubes; duplicates collapse.
func New(cubes ...Cube) *Droplet {
	d := &Droplet{cubes: make(map[Cube]struct{}, len(cubes))}
	for _, c := range cubes {
		d.cubes[c] = struct{}{}
	}

	return d
}

// Parse reads one "x,y,z" cube per line. Blank lines are skipped.
func Parse(r io.Reader) (*Droplet, error) {
	d := New()
	sc := bufio.NewScanner(r)
	for line := 1; sc.Scan(); line++ {
		text := strings.TrimSpace(sc.Text())
		if text == "" {
			continue
		}
		c, err := parseCube(text)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		d.cubes[c] = struct{}{}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("lavadrop: reading cubes: %w", err)
	}

	return d, nil
}

func parseCube(s string) (Cube, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 3 {
		return Cube{}, fmt.Errorf("%w: %q", ErrMalformedCube, s)
	}
	var v [3]int
	for i, p := range parts {
		n, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil {
			return Cube{}, fmt.Errorf("%w: %q", ErrMalformedCube, s)
		}
		v[i] = n
	}

	return Cube{v[0], v[1], v[2]}, nil
}

// Len returns the number of cubes.
func (d *Droplet) Len() int { return len(d.cubes) }

// Contains reports whether c is lava.
func (d *Droplet) Contains(c Cube) bool {
	_, ok := d.cubes[c]

	return ok
}

// exposed counts the faces of c that touch a non-lava cell.
func (d *Droplet) exposed(c Cube) int {
	n := 0
	for _, dir := range directions {
		if !d.Contains(c.Add(dir)) {
			n++
		}
	}

	return n
}

// SurfaceArea returns the number of cube faces not shared with another cube.
func (d *Droplet) SurfaceArea() int {
	total := 0
	for c := range d.cubes {
		total += d.exposed(c)
	}

	return total
}

// Bounds returns the smallest box holding every cube: min is inclusive,
// max exclusive on each axis. An empty droplet has zero bounds.
func (d *Droplet) Bounds() (min, max Cube) {
	first := true
	for c := range d.cubes {
		if first {
			min, max = c, c.Add(Cube{1, 1, 1})
			first = false
			continue
		}
		min = Cube{minInt(min.X, c.X), minInt(min.Y, c.Y), minInt(min.Z, c.Z)}
		max = Cube{maxInt(max.X, c.X+1), maxInt(max.Y, c.Y+1), maxInt(max.Z, c.Z+1)}
	}

	return min, max
}

// ExteriorArea returns the number of cube faces reachable by air from
// outside the droplet. Faces of sealed pockets are excluded.
func (d *Droplet) ExteriorArea() (int, error) {
	if d.Len() == 0 {
		return 0, nil
	}
	lo, hi := d.Bounds()
	lo = lo.Add(Cube{-1, -1, -1}) // inclusive
	// hi is exclusive, so hi itself is the outer air layer.
	inBox := func(c Cube) bool {
		return c.X >= lo.X && c.X <= hi.X &&
			c.Y >= lo.Y && c.Y <= hi.Y &&
			c.Z >= lo.Z && c.Z <= hi.Z
	}
	air := func(c Cube) []Cube {
		out := make([]Cube, 0, len(directions))
		for _, dir := range directions {
			if n := c.Add(dir); inBox(n) && !d.Contains(n) {
				out = append(out, n)
			}
		}
		return out
	}

	faces := 0
	_, err := bfs.Walk(lo, air, bfs.WithOnVisit(func(c Cube, _ int) error {
		faces += len(directions) - d.exposed(c)
		return nil
	}))
	if err != nil {
		return 0, fmt.Errorf("lavadrop: flood fill: %w", err)
	}

	return faces, nil
}

func minInt(a, b int) int {
	if a < b {
		return a
	}

	return b
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}

	return b
}
