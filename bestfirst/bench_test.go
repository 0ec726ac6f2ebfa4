package bestfirst_test

import (
	"testing"

	"github.com/katalvlaran/lvsearch/bestfirst"
)

type cell struct{ X, Y int }

// openGrid returns the 4-neighborhood of an n×n obstacle-free grid.
func openGrid(n int) func(cell) []bestfirst.Edge[cell, int] {
	return bestfirst.Unit[cell, int](func(c cell) []cell {
		out := make([]cell, 0, 4)
		for _, d := range [4]cell{{0, -1}, {1, 0}, {0, 1}, {-1, 0}} {
			x, y := c.X+d.X, c.Y+d.Y
			if x >= 0 && y >= 0 && x < n && y < n {
				out = append(out, cell{x, y})
			}
		}
		return out
	})
}

func BenchmarkShortestPath_Dijkstra128(b *testing.B) {
	const n = 128
	neighbors := openGrid(n)
	goal := func(c cell) bool { return c.X == n-1 && c.Y == n-1 }
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := bestfirst.ShortestPath(neighbors, cell{}, goal, nil); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkShortestPath_Manhattan128(b *testing.B) {
	const n = 128
	neighbors := openGrid(n)
	goal := func(c cell) bool { return c.X == n-1 && c.Y == n-1 }
	h := func(c cell) int { return (n - 1 - c.X) + (n - 1 - c.Y) }
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := bestfirst.ShortestPath(neighbors, cell{}, goal, h); err != nil {
			b.Fatal(err)
		}
	}
}
