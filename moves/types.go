package moves

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/coinpilot/grid"
)

// ErrUnknownMove indicates Parse received neither a move letter nor a move name.
var ErrUnknownMove = errors.New("moves: unknown move")

// Move is one discrete command. The zero value is Idle.
type Move uint8

const (
	// Idle keeps the agent in place.
	Idle Move = iota
	// Up decreases Y.
	Up
	// Right increases X.
	Right
	// Down increases Y.
	Down
	// Left decreases X.
	Left
)

// All is the fixed enumeration order used by Legal.
var All = [...]Move{Up, Right, Down, Left, Idle}

// offsets is indexed by Move.
var offsets = [...][2]int{
	Idle:  {0, 0},
	Up:    {0, -1},
	Right: {1, 0},
	Down:  {0, 1},
	Left:  {-1, 0},
}

var letters = [...]string{Idle: "I", Up: "W", Right: "D", Down: "S", Left: "A"}

var names = [...]string{Idle: "idle", Up: "up", Right: "right", Down: "down", Left: "left"}

// Valid reports whether m is one of the five defined moves.
func (m Move) Valid() bool { return int(m) < len(offsets) }

// String returns the single-letter command (W, D, S, A, I).
func (m Move) String() string {
	if !m.Valid() {
		return fmt.Sprintf("move(%d)", uint8(m))
	}

	return letters[m]
}

// Name returns the lowercase move name.
func (m Move) Name() string {
	if !m.Valid() {
		return m.String()
	}

	return names[m]
}

// Delta returns the (dx, dy) offset of m. Invalid moves have a zero offset.
func (m Move) Delta() (dx, dy int) {
	if !m.Valid() {
		return 0, 0
	}
	d := offsets[m]

	return d[0], d[1]
}

// Apply returns the cell reached from c by m, without any legality check.
func (m Move) Apply(c grid.Cell) grid.Cell {
	dx, dy := m.Delta()

	return c.Add(dx, dy)
}

// Parse accepts a letter ("W") or a name ("up"), case-sensitive.
func Parse(s string) (Move, error) {
	for _, m := range All {
		if s == letters[m] || s == names[m] {
			return m, nil
		}
	}

	return Idle, fmt.Errorf("%w: %q", ErrUnknownMove, s)
}

// Step is one legal transition: the move and the cell it leads to.
type Step struct {
	Move Move
	To   grid.Cell
}
