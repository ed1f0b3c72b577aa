package grid

import "golang.org/x/exp/constraints"

// Manhattan returns |Δx| + |Δy|. It is the only path metric in the module,
// matching the 4-neighbour move set.
func Manhattan(a, b Cell) int {
	return abs(a.X-b.X) + abs(a.Y-b.Y)
}

// Chebyshev returns max(|Δx|, |Δy|). Chebyshev(a, b) <= r describes the
// (2r+1)×(2r+1) square centred on a.
func Chebyshev(a, b Cell) int {
	return max(abs(a.X-b.X), abs(a.Y-b.Y))
}

func abs[T constraints.Signed](v T) T {
	if v < 0 {
		return -v
	}

	return v
}
