package level

import (
	"errors"

	"github.com/katalvlaran/coinpilot/grid"
)

// Sentinel errors for parsing and replay.
var (
	// ErrEmpty indicates the input holds no non-blank rows.
	ErrEmpty = errors.New("level: no rows")
	// ErrRagged indicates rows of differing length.
	ErrRagged = errors.New("level: rows must have the same length")
	// ErrUnknownRune indicates a rune outside the level alphabet.
	ErrUnknownRune = errors.New("level: unknown rune")
	// ErrMultipleStarts indicates more than one agent start.
	ErrMultipleStarts = errors.New("level: more than one start")
	// ErrNoStart indicates a level without an agent start.
	ErrNoStart = errors.New("level: no start")
	// ErrBlocked indicates a move that leaves the grid or enters a wall or vehicle.
	ErrBlocked = errors.New("level: move is blocked")
)

// Level alphabet.
const (
	RuneEmpty   = '.'
	RuneWall    = '#'
	RuneGoal    = 'G'
	RuneCoin    = 'C'
	RuneVehicle = 'V'
	RuneStart   = 'P'
)

// Level is a parsed world plus the agent position. Coins and Hazards are in
// reading order (Y outer, X inner).
type Level struct {
	Grid     *grid.Grid
	Position grid.Cell
	Coins    []grid.Cell
	Hazards  []grid.Cell
}
