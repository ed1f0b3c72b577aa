// File: grid/example_test.go
package grid_test

import (
	"fmt"

	"github.com/katalvlaran/coinpilot/grid"
)

////////////////////////////////////////////////////////////////////////////////
// Example: Goal lookup
////////////////////////////////////////////////////////////////////////////////

// ExampleGrid_Goal builds a 3×3 field with a wall column and a goal in the
// far corner, then queries bounds, passability and the goal position.
//
//	Tags[x][y]:   x=0    x=1    x=2
//	   y=0        .      #      .
//	   y=1        .      #      .
//	   y=2        .      .      G
func ExampleGrid_Goal() {
	g, err := grid.New([][]grid.Tag{
		{grid.Empty, grid.Empty, grid.Empty},
		{grid.Wall, grid.Wall, grid.Empty},
		{grid.Empty, grid.Empty, grid.Goal},
	})
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	goal, ok := g.Goal()
	fmt.Println("goal:", goal, ok)
	fmt.Println("passable (1,0):", g.Passable(grid.Cell{X: 1, Y: 0}))
	fmt.Println("passable (1,2):", g.Passable(grid.Cell{X: 1, Y: 2}))
	fmt.Println("distance to goal:", grid.Manhattan(grid.Cell{}, goal))

	// Output:
	// goal: (2,2) true
	// passable (1,0): false
	// passable (1,2): true
	// distance to goal: 4
}
