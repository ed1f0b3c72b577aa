package agent

import "github.com/katalvlaran/coinpilot/grid"

// selectTarget advances the mode machine for pos and returns the search
// destination and whether it is the goal. Callers hold a.mu.
func (a *Agent) selectTarget(pos, goal grid.Cell, coins []grid.Cell) (grid.Cell, bool) {
	nearby := CoinNearby(pos, coins)
	switch {
	case a.mode == CollectingCoins && !nearby:
		a.setMode(GoingToGoal, "no coin nearby")
	case a.mode == GoingToGoal && nearby && a.policy == ResetOnNearbyCoin:
		a.setMode(CollectingCoins, "coin nearby")
	}

	if a.mode == CollectingCoins {
		if coin, ok := NearestCoin(pos, coins); ok {
			return coin, false
		}
	}

	return goal, true
}

// CoinNearby reports whether any coin lies in the (2·NearbyRadius+1)² window
// centred on pos, i.e. within Chebyshev distance NearbyRadius.
func CoinNearby(pos grid.Cell, coins []grid.Cell) bool {
	for _, c := range coins {
		if grid.Chebyshev(pos, c) <= NearbyRadius {
			return true
		}
	}

	return false
}

// NearestCoin returns the coin closest to pos by Manhattan distance.
// Ties go to the earliest coin in slice order. ok is false for no coins.
func NearestCoin(pos grid.Cell, coins []grid.Cell) (coin grid.Cell, ok bool) {
	best := -1
	for _, c := range coins {
		if d := grid.Manhattan(pos, c); best < 0 || d < best {
			coin, best = c, d
		}
	}

	return coin, best >= 0
}
