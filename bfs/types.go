package bfs

import (
	"context"
	"errors"
	"fmt"

	"github.com/zyedidia/generic/mapset"

	"github.com/katalvlaran/coinpilot/grid"
	"github.com/katalvlaran/coinpilot/moves"
)

// Sentinel errors for BFS execution.
var (
	// ErrGridNil is returned if a nil grid pointer is passed.
	ErrGridNil = errors.New("bfs: grid is nil")

	// ErrStartOutOfBounds is returned when the start cell lies outside the grid.
	ErrStartOutOfBounds = errors.New("bfs: start cell out of bounds")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("bfs: invalid option supplied")

	// ErrUnreached is returned by PathTo for a cell the traversal never reached.
	ErrUnreached = errors.New("bfs: cell not reached")
)

// Option configures BFS behavior via functional arguments.
// If an Option is invalid (e.g. negative depth), it will be recorded
// internally and surfaced as ErrOptionViolation when BFS is invoked.
type Option func(*Options)

// Options holds parameters and callbacks to customize BFS execution.
type Options struct {
	// Ctx allows cancellation and deadlines.
	Ctx context.Context

	// Blocked cells are treated like walls. The start is never blocked.
	Blocked mapset.Set[grid.Cell]

	// OnVisit is called when visiting a cell. If it returns an error,
	// BFS aborts and propagates that error.
	OnVisit func(c grid.Cell, depth int) error

	// MaxDepth, if > 0, stops exploring beyond this depth.
	// A value of 0 explicitly disables any depth limit.
	MaxDepth int

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with sane defaults:
//   - Context.Background()
//   - no blocked cells
//   - no depth limit (MaxDepth == 0)
//   - no-op OnVisit
func DefaultOptions() Options {
	return Options{
		Ctx:     context.Background(),
		Blocked: mapset.New[grid.Cell](),
		OnVisit: func(grid.Cell, int) error { return nil },
	}
}

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithBlocked marks cells (typically vehicles) as impassable.
func WithBlocked(cells []grid.Cell) Option {
	return func(o *Options) {
		o.Blocked = moves.Occupancy(cells)
	}
}

// WithOnVisit registers a callback to run on visit; returning an error
// from this callback stops the BFS.
func WithOnVisit(fn func(c grid.Cell, depth int) error) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnVisit = fn
		}
	}
}

// WithMaxDepth stops the search at the given depth (inclusive).
//
//	d > 0: limit to depth d
//	d == 0: explicit no depth limit
//	d < 0: invalid option → ErrOptionViolation
func WithMaxDepth(d int) Option {
	return func(o *Options) {
		if d < 0 {
			o.err = fmt.Errorf("%w: MaxDepth cannot be negative (%d)", ErrOptionViolation, d)
			return
		}
		o.MaxDepth = d
	}
}

// Result holds the outcome of a BFS traversal:
//   - Order: cells visited, in visit sequence.
//   - Depth: map from cell to its step count from the start.
//   - Parent: map from cell to its predecessor in the BFS tree.
type Result struct {
	Order  []grid.Cell
	Depth  map[grid.Cell]int
	Parent map[grid.Cell]grid.Cell
}

// Reached reports whether c was reached.
func (r *Result) Reached(c grid.Cell) bool {
	_, ok := r.Depth[c]
	return ok
}

// PathTo reconstructs the cells from the start to dest, both included.
// Returns ErrUnreached if dest was not reached.
func (r *Result) PathTo(dest grid.Cell) ([]grid.Cell, error) {
	if !r.Reached(dest) {
		return nil, fmt.Errorf("%w: %v", ErrUnreached, dest)
	}
	// build reversed path
	path := []grid.Cell{}
	for cur := dest; ; {
		path = append(path, cur)
		prev, ok := r.Parent[cur]
		if !ok {
			break
		}
		cur = prev
	}
	// reverse to get start → dest
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path, nil
}
