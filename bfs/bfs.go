package bfs

import (
	"context"
	"fmt"

	"github.com/katalvlaran/coinpilot/grid"
	"github.com/katalvlaran/coinpilot/moves"
)

// queueItem pairs a cell with its BFS depth.
type queueItem struct {
	cell  grid.Cell
	depth int
}

// walker encapsulates mutable BFS state.
type walker struct {
	grid  *grid.Grid
	opts  Options
	ctx   context.Context
	queue []queueItem
	res   *Result
}

// BFS floods g from start through passable, unblocked cells, expanding
// neighbours in moves.All order. Returns ErrGridNil or ErrStartOutOfBounds
// for invalid input, ErrOptionViolation for bad options, the context error
// on cancellation, or any OnVisit error wrapped.
func BFS(g *grid.Grid, start grid.Cell, opts ...Option) (*Result, error) {
	if g == nil {
		return nil, ErrGridNil
	}
	// Build options and catch any invalid ones immediately
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	if !g.InBounds(start) {
		return nil, fmt.Errorf("%w: %v", ErrStartOutOfBounds, start)
	}

	w := &walker{
		grid:  g,
		opts:  o,
		ctx:   o.Ctx,
		queue: make([]queueItem, 0, g.Size()),
		res: &Result{
			Order:  make([]grid.Cell, 0, g.Size()),
			Depth:  make(map[grid.Cell]int),
			Parent: make(map[grid.Cell]grid.Cell),
		},
	}

	// Seed queue with start cell (no parent)
	w.res.Depth[start] = 0
	w.queue = append(w.queue, queueItem{cell: start})

	return w.res, w.loop()
}

// loop processes the queue until empty, error, or cancellation.
func (w *walker) loop() error {
	for len(w.queue) > 0 {
		// cancellation check (once per loop)
		select {
		case <-w.ctx.Done():
			return w.ctx.Err()
		default:
		}

		item := w.queue[0]
		w.queue = w.queue[1:]
		w.res.Order = append(w.res.Order, item.cell)
		if err := w.opts.OnVisit(item.cell, item.depth); err != nil {
			return fmt.Errorf("bfs: OnVisit error at %v: %w", item.cell, err)
		}
		w.enqueueNeighbors(item)
	}

	return nil
}

// enqueueNeighbors enqueues every legal, unseen neighbour within MaxDepth.
func (w *walker) enqueueNeighbors(item queueItem) {
	next := item.depth + 1
	if w.opts.MaxDepth > 0 && next > w.opts.MaxDepth {
		return
	}
	for _, st := range moves.Legal(w.grid, item.cell, w.opts.Blocked) {
		if w.res.Reached(st.To) {
			continue
		}
		w.res.Depth[st.To] = next
		w.res.Parent[st.To] = item.cell
		w.queue = append(w.queue, queueItem{cell: st.To, depth: next})
	}
}
