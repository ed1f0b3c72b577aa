// Package scoring turns a cell into a scalar cost that blends goal distance,
// coin attraction and hazard proximity. Lower is better.
//
//	PathScore = Manhattan(pos, dest)·k − CoinAttraction + HazardRisk + cost
//
// CoinAttraction sums, for every coin at distance d with value v = 20 − d·k > 0,
// the term v/(d+1). Coins past the break-even radius 20/k contribute nothing.
//
// HazardRisk sums (3 − d)·5 over hazards within distance 2: 15, 10 and 5 for
// distances 0, 1 and 2.
//
// The score is used both as search priority and as per-node cost. Coin
// attraction makes it non-monotonic, so it is not an admissible A* heuristic;
// the search built on it is a greedy best-first search.
package scoring
