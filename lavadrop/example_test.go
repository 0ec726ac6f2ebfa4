package lavadrop_test

import (
	"fmt"

	"github.com/katalvlaran/lvsearch/lavadrop"
)

// ExampleDroplet_ExteriorArea compares the total and outside-facing
// surface of two touching cubes, which have no pocket to hide faces in.
func ExampleDroplet_ExteriorArea() {
	d := lavadrop.New(
		lavadrop.Cube{X: 1, Y: 1, Z: 1},
		lavadrop.Cube{X: 2, Y: 1, Z: 1},
	)
	ext, err := d.ExteriorArea()
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(d.SurfaceArea(), ext)
	// Output:
	// 10 10
}
