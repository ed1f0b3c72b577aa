// Package level reads and writes the plain-text level format used by the
// coinpilot CLI and by tests, and replays moves against a parsed level.
//
// Format: one line per Y row (top row is Y = 0), one rune per X column.
//
//	.  empty cell
//	#  wall
//	G  goal
//	C  coin on an empty cell
//	V  vehicle on an empty cell
//	P  agent start on an empty cell
//
// Example:
//
//	P..#
//	.C.#
//	...G
//
// Blank trailing lines are ignored and a trailing '\r' is stripped. Every
// remaining line must have the same rune count, and exactly one P is required.
//
// Errors:
//
//   - ErrEmpty:          no rows.
//   - ErrRagged:         rows of differing length.
//   - ErrUnknownRune:    a rune outside the table above.
//   - ErrMultipleStarts: more than one P.
//   - ErrNoStart:        no P.
//   - ErrBlocked:        Apply was given a move into a wall, a vehicle or off the grid.
package level
