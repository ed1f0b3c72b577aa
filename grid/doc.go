// Package grid models the static world the agent moves through: a rectangular
// field of tagged cells (empty, wall, goal) addressed by integer coordinates.
//
// What:
//
//   - Cell is a comparable (X, Y) value; X is the first grid index, Y the second.
//   - Grid wraps a validated, deep-copied [][]Tag and answers bounds, tag and
//     passability queries.
//   - Manhattan and Chebyshev are the only distance metrics in the module.
//
// Why:
//
//   - Every other package (moves, scoring, search, agent) reads the same
//     immutable snapshot, so validation happens once, at construction.
//
// Orientation:
//
//	        Y−1 (Up)
//	X−1 (Left)   X+1 (Right)
//	        Y+1 (Down)
//
// Tags[x][y] holds the tag of Cell{X: x, Y: y}; Width is len(Tags) and Height
// is len(Tags[0]).
//
// Complexity:
//
//   - New:      O(W×H) time and memory (deep copy).
//   - Goal:     O(W×H) worst case.
//   - InBounds, At, Passable, Manhattan, Chebyshev: O(1).
//
// Errors:
//
//   - ErrEmptyGrid: the input has no columns or an empty first column.
//   - ErrNonRectangular: columns have differing lengths.
package grid
