package level

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/katalvlaran/coinpilot/grid"
)

// Parse reads a level from r.
// Complexity: O(W×H).
func Parse(r io.Reader) (*Level, error) {
	// 1) Read rows, dropping a trailing '\r'.
	var rows [][]rune
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		rows = append(rows, []rune(strings.TrimSuffix(sc.Text(), "\r")))
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("level: read: %w", err)
	}

	// 2) Trim blank trailing rows.
	for len(rows) > 0 && len(rows[len(rows)-1]) == 0 {
		rows = rows[:len(rows)-1]
	}
	if len(rows) == 0 {
		return nil, ErrEmpty
	}

	// 3) Check shape; the first row fixes the width.
	w, h := len(rows[0]), len(rows)
	for y, row := range rows {
		if len(row) != w {
			return nil, fmt.Errorf("%w: row %d has %d cells, want %d", ErrRagged, y, len(row), w)
		}
	}

	// 4) Decode runes column-major into tags.
	tags := make([][]grid.Tag, w)
	for x := range tags {
		tags[x] = make([]grid.Tag, h)
	}
	lvl := &Level{}
	starts := 0
	for y, row := range rows {
		for x, ch := range row {
			c := grid.Cell{X: x, Y: y}
			switch ch {
			case RuneEmpty:
			case RuneWall:
				tags[x][y] = grid.Wall
			case RuneGoal:
				tags[x][y] = grid.Goal
			case RuneCoin:
				lvl.Coins = append(lvl.Coins, c)
			case RuneVehicle:
				lvl.Hazards = append(lvl.Hazards, c)
			case RuneStart:
				starts++
				if starts > 1 {
					return nil, fmt.Errorf("%w: second start at %v", ErrMultipleStarts, c)
				}
				lvl.Position = c
			default:
				return nil, fmt.Errorf("%w: %q at %v", ErrUnknownRune, ch, c)
			}
		}
	}
	if starts == 0 {
		return nil, ErrNoStart
	}

	// 5) Build the immutable grid.
	g, err := grid.New(tags)
	if err != nil {
		return nil, fmt.Errorf("level: %w", err)
	}
	lvl.Grid = g

	return lvl, nil
}

// ParseString is Parse over a string.
func ParseString(s string) (*Level, error) {
	return Parse(strings.NewReader(s))
}
