// Package bfs provides breadth-first flood fill over a grid.Grid, returning
// step distances, parent links, and visit order.
//
// What
//
//   - Explore cells in non-decreasing step count from a start cell.
//   - Walls and cells passed via WithBlocked are impassable; the Idle move
//     never adds anything since the current cell is always already seen.
//   - Returns a Result containing:
//   - Order: visit sequence
//   - Depth: map from cell → step count from start
//   - Parent: map from cell → its predecessor in the BFS tree
//   - OnVisit hook (may abort with an error) and a MaxDepth limit.
//
// Why
//
//   - Reachability checks ahead of a run: is the goal reachable at all,
//     which coins are stranded behind walls.
//
// Determinism
//
//	Neighbours are enqueued in moves.All order (Up, Right, Down, Left), so
//	the visit sequence is fully reproducible.
//
// Complexity (C = grid cells)
//
//   - Time:   O(C)
//   - Memory: O(C)
//
// Usage
//
//	res, err := bfs.BFS(g, start, bfs.WithContext(ctx), bfs.WithBlocked(vehicles))
//	if err != nil {
//		// ErrGridNil, ErrStartOutOfBounds, ErrOptionViolation, ctx or hook errors
//	}
//	if !res.Reached(goal) {
//		// goal is walled off
//	}
//
// Errors
//
//   - ErrGridNil          if the grid pointer is nil.
//   - ErrStartOutOfBounds if the start cell is outside the grid.
//   - ErrOptionViolation  if invalid Option (e.g. negative MaxDepth).
//   - ErrUnreached        from PathTo for a cell never reached.
//   - Wrapped user-supplied hook errors from OnVisit.
package bfs
