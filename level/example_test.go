package level_test

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/coinpilot/level"
)

// ExampleParse reads a small level and prints what was found.
func ExampleParse() {
	src := strings.Join([]string{
		"P..#",
		".C.#",
		"V..G",
	}, "\n")
	l, err := level.Parse(strings.NewReader(src))
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	goal, _ := l.Grid.Goal()
	fmt.Println("size:", l.Grid.Width(), "x", l.Grid.Height())
	fmt.Println("start:", l.Position, "goal:", goal)
	fmt.Println("coins:", l.Coins, "vehicles:", l.Hazards)
	// Output:
	// size: 4 x 3
	// start: (0,0) goal: (3,2)
	// coins: [(1,1)] vehicles: [(0,2)]
}
