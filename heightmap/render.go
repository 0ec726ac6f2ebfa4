package heightmap

import (
	"io"
	"strings"

	"github.com/gookit/color"

	"github.com/katalvlaran/lvsearch/bestfirst"
)

// View is the part of a search Render draws. *bestfirst.Stepper[Point, int]
// implements it.
type View interface {
	Frontier() []Point
	Reached(p Point) bool
	Result() *bestfirst.Result[Point, int]
}

// Plain glyphs, one byte per cell.
const (
	glyphStart    = 'S'
	glyphEnd      = 'E'
	glyphFrontier = '*'
	glyphPath     = '#'
	glyphReached  = '.'
)

var (
	startColor    = color.RGB(0, 85, 255)
	endColor      = color.RGB(255, 0, 0)
	frontierColor = color.RGB(160, 160, 160)
	idleColor     = color.RGB(128, 128, 128)
)

// elevationColor maps a to blue and z to red along the HSL hue wheel.
func elevationColor(e byte) color.RGBColor {
	hue := 220 * (1 - float64(e-Lowest)/26) / 360
	rgb := color.HslToRgb(hue, 1, 0.5)

	return color.RGB(rgb[0], rgb[1], rgb[2])
}

// Render draws m inside a box, one character per cell. v may be nil, in
// which case only the elevations are drawn. Otherwise frontier cells,
// reached cells and, once the search is over, the path are marked.
//
// Plain mode uses 'S', 'E', '*' (frontier), '.' (reached), '#' (path) and
// the elevation letter for untouched cells. Colored mode draws flags for S
// and E and tints path and reached cells by elevation.
func Render(w io.Writer, m *Map, v View, colored bool) error {
	frontier := map[Point]bool{}
	onPath := map[Point]bool{}
	if v != nil {
		for _, p := range v.Frontier() {
			frontier[p] = true
		}
		if res := v.Result(); res != nil {
			for _, p := range res.Path {
				onPath[p] = true
			}
		}
	}

	var sb strings.Builder
	sb.WriteString("╭" + strings.Repeat("─", m.Width) + "╮\n")
	for y := 0; y < m.Height; y++ {
		sb.WriteString("│")
		for x := 0; x < m.Width; x++ {
			p := Point{x, y}
			if colored {
				sb.WriteString(coloredCell(m, v, p, frontier[p], onPath[p]))
			} else {
				sb.WriteByte(plainCell(m, v, p, frontier[p], onPath[p]))
			}
		}
		sb.WriteString("│\n")
	}
	sb.WriteString("╰" + strings.Repeat("─", m.Width) + "╯\n")

	_, err := io.WriteString(w, sb.String())

	return err
}

func plainCell(m *Map, v View, p Point, inFrontier, onPath bool) byte {
	switch {
	case p == m.Start:
		return glyphStart
	case p == m.End:
		return glyphEnd
	case inFrontier:
		return glyphFrontier
	case onPath:
		return glyphPath
	case v != nil && v.Reached(p):
		return glyphReached
	default:
		return m.Elevation(p)
	}
}

func coloredCell(m *Map, v View, p Point, inFrontier, onPath bool) string {
	switch {
	case p == m.Start:
		return startColor.Sprint("⚑")
	case p == m.End:
		return endColor.Sprint("⚑")
	case inFrontier:
		return frontierColor.Sprint("●")
	case onPath:
		return elevationColor(m.Elevation(p)).Sprint("█")
	case v != nil && v.Reached(p):
		return elevationColor(m.Elevation(p)).Sprint("·")
	default:
		return idleColor.Sprint("·")
	}
}
