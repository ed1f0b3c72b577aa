// Package search implements the cost-augmented best-first search that picks
// the agent's next move on a grid.
//
// The search starts at a cell and expands neighbours produced by
// moves.Legal, ordering its frontier by scoring.PathScore. When the
// destination is popped, the first move of the path that reached it is
// returned; if the frontier runs dry first, the answer is moves.Idle.
//
// Because coin attraction is subtracted from the score, the priority is not an
// admissible heuristic. The result is the best path under this greedy
// ordering, not a guaranteed shortest path.
//
// Frontier ordering (lowest first):
//
//  1. score
//  2. accumulated cost
//  3. cell X
//  4. cell Y
//  5. insertion sequence
//
// Keys 1–4 make equal-score ties favour cheaper, then lexicographically
// smaller cells. Key 5 makes the order total, so every run on the same input
// returns the same move.
//
// Complexity:
//
//   - Time:  O(C log C) where C = |grid cells|; each cell is finalized once
//     and pushes at most five entries.
//   - Space: O(C) for the visited and best-cost slices, the node arena and
//     the heap (lazy decrease-key).
//
// Options:
//
//   - WithCostMultiplier(k): weight of distance and per-step cost (default 1).
//   - WithCoins / WithHazards: the world contents fed to the score.
//   - WithOnExpand(fn):      hook called before each expansion; an error aborts.
//   - WithMaxExpansions(n):  optional cap on expansions (0 = unlimited).
//
// Errors (sentinel):
//
//   - ErrNilGrid          if the grid pointer is nil.
//   - ErrStartOutOfBounds if start is outside the grid.
//   - ErrBadMultiplier    if k is not a finite positive number.
//   - ErrExpansionLimit   if MaxExpansions was reached before the destination.
//   - ErrBadMaxExpansions (panic) if WithMaxExpansions gets a negative value.
//
// Example usage:
//
//	res, err := search.Search(g, start, goal,
//	    search.WithCostMultiplier(1),
//	    search.WithCoins(coins),
//	    search.WithHazards(cars),
//	)
//	if err != nil {
//	    return moves.Idle, err
//	}
//	return res.Move, nil
package search
