// Package search_test provides runnable examples for the best-first search.
// Each example is runnable via “go test -run Example”.
package search_test

import (
	"fmt"

	"github.com/katalvlaran/coinpilot/grid"
	"github.com/katalvlaran/coinpilot/search"
)

// ExampleSearch shows the pinned corner-to-corner tie-break on an empty 5×5 grid.
func ExampleSearch() {
	// 1) An empty 5×5 field.
	g, _ := grid.Filled(5, 5)

	// 2) Search from the top-left corner to the bottom-right one with k = 1.
	res, err := search.Search(g, grid.Cell{X: 0, Y: 0}, grid.Cell{X: 4, Y: 4})
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	// 3) Right and Down tie on score and cost; the lower X wins, so Down comes first.
	fmt.Println("first:", res.Move.Name())
	fmt.Println("steps:", len(res.Path), "cost:", res.Cost)
	// Output:
	// first: down
	// steps: 8 cost: 8
}

// ExampleFirstMove shows a vehicle pushing the path away from the direct route.
func ExampleFirstMove() {
	g, _ := grid.Filled(7, 7)
	start, dest := grid.Cell{X: 3, Y: 3}, grid.Cell{X: 6, Y: 6}

	fmt.Println(search.FirstMove(g, start, dest))
	fmt.Println(search.FirstMove(g, start, dest, search.WithHazards([]grid.Cell{{X: 4, Y: 4}})))
	// Output:
	// S
	// A
}
