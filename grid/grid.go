package grid

// New constructs a Grid from a non-empty, rectangular 2D slice indexed [x][y].
// It deep-copies the input so later caller mutations are not observed.
// Returns ErrEmptyGrid if there are no columns or the first column is empty,
// ErrNonRectangular if any column length differs.
// Complexity: O(W×H) time and memory.
func New(tags [][]Tag) (*Grid, error) {
	if len(tags) == 0 || len(tags[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	w, h := len(tags), len(tags[0])
	for _, col := range tags {
		if len(col) != h {
			return nil, ErrNonRectangular
		}
	}
	// Deep copy to prevent external mutation
	cells := make([][]Tag, w)
	for x := 0; x < w; x++ {
		cells[x] = make([]Tag, h)
		copy(cells[x], tags[x])
	}

	return &Grid{tags: cells, width: w, height: h}, nil
}

// MustNew is like New but panics on invalid input. Intended for tests and fixtures.
func MustNew(tags [][]Tag) *Grid {
	g, err := New(tags)
	if err != nil {
		panic(err)
	}

	return g
}

// Filled returns a w×h grid with every cell set to Empty.
// Non-positive dimensions yield ErrEmptyGrid.
func Filled(w, h int) (*Grid, error) {
	if w <= 0 || h <= 0 {
		return nil, ErrEmptyGrid
	}
	tags := make([][]Tag, w)
	for x := range tags {
		tags[x] = make([]Tag, h)
	}

	return &Grid{tags: tags, width: w, height: h}, nil
}

// Width is the size of the first axis (number of X values).
func (g *Grid) Width() int { return g.width }

// Height is the size of the second axis (number of Y values).
func (g *Grid) Height() int { return g.height }

// Size returns the total number of cells.
func (g *Grid) Size() int { return g.width * g.height }

// InBounds reports whether c lies within the grid boundaries.
// Complexity: O(1).
func (g *Grid) InBounds(c Cell) bool {
	return c.X >= 0 && c.X < g.width && c.Y >= 0 && c.Y < g.height
}

// At returns the tag at c. Out-of-bounds cells read as Wall so callers that
// forget a bounds check still cannot walk off the map.
func (g *Grid) At(c Cell) Tag {
	if !g.InBounds(c) {
		return Wall
	}

	return g.tags[c.X][c.Y]
}

// Passable reports whether c is in bounds and not a wall.
func (g *Grid) Passable(c Cell) bool {
	return g.InBounds(c) && g.tags[c.X][c.Y] != Wall
}

// Goal scans X outer, Y inner and returns the first Goal cell.
// The boolean is false when the grid has no goal.
// Complexity: O(W×H) worst case.
func (g *Grid) Goal() (Cell, bool) {
	for x := 0; x < g.width; x++ {
		for y := 0; y < g.height; y++ {
			if g.tags[x][y] == Goal {
				return Cell{X: x, Y: y}, true
			}
		}
	}

	return Cell{}, false
}

// Index maps c to a dense index x*Height + y, matching the Goal scan order.
// The result is meaningful only for in-bounds cells.
func (g *Grid) Index(c Cell) int {
	return c.X*g.height + c.Y
}

// Coordinate converts a dense index back to a Cell.
func (g *Grid) Coordinate(idx int) Cell {
	return Cell{X: idx / g.height, Y: idx % g.height}
}

// Tags returns a deep copy of the underlying tag matrix.
func (g *Grid) Tags() [][]Tag {
	out := make([][]Tag, g.width)
	for x := range out {
		out[x] = make([]Tag, g.height)
		copy(out[x], g.tags[x])
	}

	return out
}
