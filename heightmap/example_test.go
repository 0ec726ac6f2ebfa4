package heightmap_test

import (
	"fmt"
	"os"
	"strings"

	"github.com/katalvlaran/lvsearch/heightmap"
)

// ExampleMap_Climb finds the fewest steps from S to E and, searching
// backwards, from the best 'a' cell to E.
func ExampleMap_Climb() {
	m, err := heightmap.Parse(strings.NewReader("Sabqponm\nabcryxxl\naccszExk\nacctuvwj\nabdefghi\n"))
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	up, err := m.Climb()
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	down, err := m.Descend('a')
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println("from S:", up.Cost)
	fmt.Println("from any a:", down.Cost, "starting at", down.Path[0])
	// Output:
	// from S: 31
	// from any a: 29 starting at (0,4)
}

// ExampleRender draws the map of a search that has not started yet.
func ExampleRender() {
	m, _ := heightmap.FromRows([]string{"Sbc", "fed", "ghE"})
	_ = heightmap.Render(os.Stdout, m, nil, false)
	// Output:
	// ╭───╮
	// │Sbc│
	// │fed│
	// │ghE│
	// ╰───╯
}
