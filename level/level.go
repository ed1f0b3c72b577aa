package level

import (
	"fmt"
	"slices"
	"strings"

	"github.com/katalvlaran/coinpilot/agent"
	"github.com/katalvlaran/coinpilot/grid"
	"github.com/katalvlaran/coinpilot/moves"
)

// Snapshot returns the agent view of l for cost multiplier k. The coin and
// hazard slices are copies, so later Apply calls do not mutate it.
func (l *Level) Snapshot(k float64) agent.Snapshot {
	return agent.Snapshot{
		Grid:           l.Grid,
		Position:       l.Position,
		Coins:          slices.Clone(l.Coins),
		Hazards:        slices.Clone(l.Hazards),
		CostMultiplier: k,
	}
}

// AtGoal reports whether the agent stands on the goal.
func (l *Level) AtGoal() bool {
	return l.Grid.At(l.Position) == grid.Goal
}

// Apply moves the agent by m and collects a coin on the target cell.
// Vehicles do not move. A move into a wall, a vehicle or off the grid returns
// ErrBlocked and leaves l untouched.
func (l *Level) Apply(m moves.Move) (collected bool, err error) {
	if !m.Valid() {
		return false, fmt.Errorf("level: %w: %v", moves.ErrUnknownMove, m)
	}
	to := m.Apply(l.Position)
	legal := false
	for _, st := range moves.Legal(l.Grid, l.Position, moves.Occupancy(l.Hazards)) {
		if st.Move == m {
			legal = true
			break
		}
	}
	if !legal {
		return false, fmt.Errorf("%w: %s from %v to %v", ErrBlocked, m.Name(), l.Position, to)
	}
	l.Position = to
	if i := slices.Index(l.Coins, to); i >= 0 {
		l.Coins = slices.Delete(l.Coins, i, i+1)
		collected = true
	}

	return collected, nil
}

// Render writes l in the level format, one '\n'-terminated line per row.
// The agent is drawn over a coin or a goal it stands on.
func Render(l Level) string {
	coins := moves.Occupancy(l.Coins)
	hazards := moves.Occupancy(l.Hazards)

	var b strings.Builder
	b.Grow((l.Grid.Width() + 1) * l.Grid.Height())
	for y := 0; y < l.Grid.Height(); y++ {
		for x := 0; x < l.Grid.Width(); x++ {
			c := grid.Cell{X: x, Y: y}
			switch {
			case c == l.Position:
				b.WriteRune(RuneStart)
			case hazards.Has(c):
				b.WriteRune(RuneVehicle)
			case coins.Has(c):
				b.WriteRune(RuneCoin)
			case l.Grid.At(c) == grid.Wall:
				b.WriteRune(RuneWall)
			case l.Grid.At(c) == grid.Goal:
				b.WriteRune(RuneGoal)
			default:
				b.WriteRune(RuneEmpty)
			}
		}
		b.WriteByte('\n')
	}

	return b.String()
}
