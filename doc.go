// Package coinpilot is a deterministic decision engine for a grid agent that
// collects coins, avoids moving vehicles and heads for an exit.
//
// What is in the box?
//
//	grid/          immutable tagged grid (empty, wall, goal), Cell coordinates, Manhattan/Chebyshev
//	moves/         the five commands (Up, Right, Down, Left, Idle) and legal-move enumeration
//	scoring/       coin attraction, vehicle risk and the composite path score
//	search/        best-first search with a documented deterministic tie-break
//	agent/         per-agent mode machine (collect coins → go to goal) and Decide
//	bfs/           breadth-first flood fill for reachability checks
//	level/         plain-text level format: parse, render, replay moves
//	cmd/coinpilot  CLI that replays the agent on a level file
//
// Quick start
//
//	a := agent.New()
//	move, err := a.Decide(agent.Snapshot{
//		Grid:           g,
//		Position:       pos,
//		Coins:          coins,
//		Hazards:        vehicles,
//		CostMultiplier: 1,
//	})
//
// Every decision is synchronous and bounded by the grid size. Agents share no
// state with each other; one Agent may be used from several goroutines.
package coinpilot
