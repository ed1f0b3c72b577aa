// Package agent turns a per-tick world snapshot into a single move.
//
// What:
//
//   - Agent owns the two-state mode machine (CollectingCoins → GoingToGoal)
//     and chooses the search destination: the nearest coin while collecting,
//     otherwise the goal.
//   - Decide runs one decision cycle and returns the first move of the
//     best-first path (see package search). Plan returns the full Decision.
//
// Decision cycle:
//
//  1. Validate the snapshot (nil grid, position outside the grid, bad cost
//     multiplier). Malformed input yields moves.Idle and an error wrapping
//     ErrInvalidInput.
//  2. Locate the goal (X outer, Y inner). No goal → moves.Idle, nil error.
//  3. Already on the goal → moves.Idle, nil error.
//  4. While collecting, switch to GoingToGoal when no coin lies within the
//     5×5 window (Chebyshev distance ≤ NearbyRadius) around the agent.
//  5. Destination = nearest coin by Manhattan distance (first in slice order
//     on ties) while collecting, else the goal. Search and return its first move.
//
// Reset policies:
//
//   - ResetNever (default): the transition is one-way; only Reset restores
//     CollectingCoins.
//   - ResetOnArrival: a decision that finds the agent on the goal resets the mode.
//   - ResetOnNearbyCoin: GoingToGoal reverts once a coin is back in the window.
//
// Concurrency:
//
//	Each Agent guards its mode with a mutex, so one Agent may be shared across
//	goroutines. Separate Agents share nothing; every search owns its frontier.
//
// Logging:
//
//	Nothing is logged unless a *log.Logger is supplied via WithLogger. Mode
//	transitions log at Info, decisions at Debug, both tagged with the agent ID.
package agent
