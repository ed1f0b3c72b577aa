package scoring

import "github.com/katalvlaran/coinpilot/grid"

const (
	// CoinValue is the face value of a coin before distance decay.
	CoinValue = 20
	// HazardRadius is the largest distance at which a hazard adds risk.
	HazardRadius = 2
	// HazardStep is the risk added per unit of closeness inside HazardRadius.
	HazardStep = 5
)

// CoinAttraction returns the summed pull of coins on pos for multiplier k.
// Coins are visited in slice order so float sums are reproducible.
func CoinAttraction(pos grid.Cell, coins []grid.Cell, k float64) float64 {
	var total float64
	for _, coin := range coins {
		d := grid.Manhattan(pos, coin)
		net := CoinValue - float64(d)*k
		if net > 0 {
			total += net / float64(d+1)
		}
	}

	return total
}

// HazardRisk returns the proximity penalty of hazards around pos.
// Every listed hazard counts, duplicates included.
func HazardRisk(pos grid.Cell, hazards []grid.Cell) float64 {
	var risk int
	for _, h := range hazards {
		if d := grid.Manhattan(pos, h); d <= HazardRadius {
			risk += (HazardRadius + 1 - d) * HazardStep
		}
	}

	return float64(risk)
}

// PathScore is the composite priority of standing on pos having paid cost.
func PathScore(pos, dest grid.Cell, coins, hazards []grid.Cell, cost, k float64) float64 {
	distance := float64(grid.Manhattan(pos, dest)) * k
	return distance - CoinAttraction(pos, coins, k) + HazardRisk(pos, hazards) + cost
}

// Evaluator binds the per-search inputs of PathScore so a search can score
// cells with Score(pos, cost). It produces exactly PathScore's values.
type Evaluator struct {
	Dest    grid.Cell
	Coins   []grid.Cell
	Hazards []grid.Cell
	K       float64
}

// Score returns PathScore(pos, e.Dest, e.Coins, e.Hazards, cost, e.K).
func (e Evaluator) Score(pos grid.Cell, cost float64) float64 {
	return PathScore(pos, e.Dest, e.Coins, e.Hazards, cost, e.K)
}
