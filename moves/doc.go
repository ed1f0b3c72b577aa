// Package moves defines the fixed move vocabulary of the agent and the
// enumerator of legal transitions from a cell.
//
// Vocabulary (letter, name, offset):
//
//	W  up     (0, −1)
//	D  right  (+1, 0)
//	S  down   (0, +1)
//	A  left   (−1, 0)
//	I  idle   (0, 0)
//
// All lists the moves in that exact order. Legal preserves it, and the search
// package relies on it for reproducible tie-breaking.
//
// A transition is legal iff its target cell is in bounds, is not a wall and is
// not occupied by a hazard. Idle is legal exactly when the current cell passes
// the same test.
package moves
