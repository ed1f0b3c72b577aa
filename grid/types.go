package grid

import (
	"errors"
	"fmt"
)

// Sentinel errors for grid construction.
var (
	// ErrEmptyGrid indicates the input has no columns or no rows.
	ErrEmptyGrid = errors.New("grid: input must have at least one column and one row")
	// ErrNonRectangular indicates columns of differing lengths.
	ErrNonRectangular = errors.New("grid: all columns must have the same length")
)

// Tag classifies a single grid cell.
type Tag uint8

const (
	// Empty is a free, walkable cell.
	Empty Tag = iota
	// Wall blocks movement.
	Wall
	// Goal marks the exit cell. It is walkable.
	Goal
)

// String returns the lowercase tag name used by level files and logs.
func (t Tag) String() string {
	switch t {
	case Empty:
		return "empty"
	case Wall:
		return "wall"
	case Goal:
		return "goal"
	default:
		return fmt.Sprintf("tag(%d)", uint8(t))
	}
}

// ParseTag maps a tag name to a Tag. Only "wall" and "goal" are special;
// every other name, including "", reads as Empty.
func ParseTag(s string) Tag {
	switch s {
	case "wall":
		return Wall
	case "goal":
		return Goal
	default:
		return Empty
	}
}

// Cell is a grid coordinate. It is a plain value and is safe to use as a map key.
type Cell struct {
	X, Y int
}

// String renders the cell as "(x,y)".
func (c Cell) String() string {
	return fmt.Sprintf("(%d,%d)", c.X, c.Y)
}

// Add returns the cell offset by (dx, dy).
func (c Cell) Add(dx, dy int) Cell {
	return Cell{X: c.X + dx, Y: c.Y + dy}
}

// Grid is an immutable rectangular field of tags. Tags[x][y] is the tag of Cell{x, y}.
// Build it with New; the zero value is an empty grid where nothing is in bounds.
type Grid struct {
	tags   [][]Tag
	width  int
	height int
}
