// Package agent_test provides runnable examples of the decision cycle.
package agent_test

import (
	"fmt"

	"github.com/katalvlaran/coinpilot/agent"
	"github.com/katalvlaran/coinpilot/grid"
)

// ExampleAgent_Decide plays two ticks: first toward an adjacent coin, then, once
// the coin is gone, toward the goal.
func ExampleAgent_Decide() {
	// 1) A 6×6 field with the goal in the far corner.
	g, _ := grid.Filled(6, 6)
	tags := g.Tags()
	tags[5][5] = grid.Goal
	g = grid.MustNew(tags)

	// 2) One agent per episode.
	a := agent.New()

	// 3) Tick 1: a coin right of the agent.
	s := agent.Snapshot{Grid: g, Position: grid.Cell{X: 1, Y: 1}, Coins: []grid.Cell{{X: 2, Y: 1}}, CostMultiplier: 1}
	m, _ := a.Decide(s)
	fmt.Println(m.Name(), a.Mode())

	// 4) Tick 2: the coin was collected.
	s.Position, s.Coins = grid.Cell{X: 2, Y: 1}, nil
	m, _ = a.Decide(s)
	fmt.Println(m.Name(), a.Mode())
	// Output:
	// right collecting-coins
	// down going-to-goal
}
