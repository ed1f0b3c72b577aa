package moves

import (
	"github.com/zyedidia/generic/mapset"

	"github.com/katalvlaran/coinpilot/grid"
)

// Occupancy builds a hazard set from a list of cells. Duplicates collapse.
func Occupancy(cells []grid.Cell) mapset.Set[grid.Cell] {
	set := mapset.New[grid.Cell]()
	for _, c := range cells {
		set.Put(c)
	}

	return set
}

// Legal lists the transitions available from pos, in All order.
// A target is legal iff it is in bounds, not a wall and not in hazards.
// The result is freshly allocated; it is empty (not nil) when nothing is legal.
// Complexity: O(1) with a map-backed hazard set.
func Legal(g *grid.Grid, pos grid.Cell, hazards mapset.Set[grid.Cell]) []Step {
	out := make([]Step, 0, len(All))
	for _, m := range All {
		to := m.Apply(pos)
		if !g.Passable(to) || hazards.Has(to) {
			continue
		}
		out = append(out, Step{Move: m, To: to})
	}

	return out
}
