package search

import (
	"container/heap"
	"fmt"
	"math"

	"github.com/zyedidia/generic/mapset"

	"github.com/katalvlaran/coinpilot/grid"
	"github.com/katalvlaran/coinpilot/moves"
	"github.com/katalvlaran/coinpilot/scoring"
)

// Search runs a best-first search on g from start to dest and reports the
// first move of the discovered path.
//
// Preconditions and validation (in order):
//  1. g must be non-nil (ErrNilGrid).
//  2. start must be inside g (ErrStartOutOfBounds).
//  3. CostMultiplier must be finite and > 0 (ErrBadMultiplier).
//
// A destination outside the grid, on a wall or under a hazard is simply
// unreachable: the result is moves.Idle with Found == false and a nil error.
// When start == dest the result is moves.Idle with Found == true.
//
// Complexity:
//
//   - Time:  O(C log C), C = g.Size()
//   - Space: O(C)
func Search(g *grid.Grid, start, dest grid.Cell, opts ...Option) (Result, error) {
	// 1) Build Options
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	// 2) Validate inputs
	if g == nil {
		return Result{}, ErrNilGrid
	}
	if !g.InBounds(start) {
		return Result{}, fmt.Errorf("%w: %v in %dx%d", ErrStartOutOfBounds, start, g.Width(), g.Height())
	}
	k := cfg.CostMultiplier
	if k <= 0 || math.IsNaN(k) || math.IsInf(k, 0) {
		return Result{}, fmt.Errorf("%w: got %v", ErrBadMultiplier, k)
	}

	// 3) Prepare per-call state; nothing is shared between calls.
	n := g.Size()
	r := &runner{
		g:       g,
		dest:    dest,
		options: cfg,
		eval: scoring.Evaluator{
			Dest:    dest,
			Coins:   cfg.Coins,
			Hazards: cfg.Hazards,
			K:       k,
		},
		hazards: moves.Occupancy(cfg.Hazards),
		best:    make([]float64, n),
		known:   make([]bool, n),
		visited: make([]bool, n),
		arena:   make([]node, 0, n),
		pq:      make(frontier, 0, n),
	}

	// 4) Seed and run
	r.init(start)
	return r.process()
}

// FirstMove is Search reduced to its move. Any error yields moves.Idle.
func FirstMove(g *grid.Grid, start, dest grid.Cell, opts ...Option) moves.Move {
	res, err := Search(g, start, dest, opts...)
	if err != nil {
		return moves.Idle
	}

	return res.Move
}

// runner holds the mutable state for a single Search execution.
type runner struct {
	g        *grid.Grid            // Read-only world.
	dest     grid.Cell             // Target cell.
	options  Options               // Validated configuration.
	eval     scoring.Evaluator     // Score function bound to dest/coins/hazards/k.
	hazards  mapset.Set[grid.Cell] // Impassable vehicle cells.
	best     []float64             // Best recorded cost per cell index.
	known    []bool                // Whether best[i] has been recorded.
	visited  []bool                // Finalized cells.
	arena    []node                // Every pushed node; parents are arena indices.
	pq       frontier              // Min-heap of frontier entries.
	seq      uint64                // Insertion counter for the last tie-break key.
	expanded int                   // Cells expanded so far.
}

// node is one discovered path prefix, stored once in the arena.
type node struct {
	cell   grid.Cell
	cost   float64
	move   moves.Move // move that produced this node; unused for the root
	parent int        // arena index of the predecessor, -1 for the root
}

// init records the start cell at cost 0 and pushes its root node.
func (r *runner) init(start grid.Cell) {
	i := r.g.Index(start)
	r.best[i] = 0
	r.known[i] = true

	heap.Init(&r.pq)
	r.push(node{cell: start, cost: 0, move: moves.Idle, parent: -1})
}

// push appends n to the arena and adds a scored frontier entry for it.
func (r *runner) push(n node) {
	r.arena = append(r.arena, n)
	heap.Push(&r.pq, &entry{
		score: r.eval.Score(n.cell, n.cost),
		cost:  n.cost,
		cell:  n.cell,
		seq:   r.seq,
		node:  len(r.arena) - 1,
	})
	r.seq++
}

// process is the main loop: pop the best entry, stop at the destination,
// otherwise finalize the cell and relax its legal neighbours.
func (r *runner) process() (Result, error) {
	for r.pq.Len() > 0 {
		// 1) Pop the lowest entry.
		e := heap.Pop(&r.pq).(*entry)

		// 2) Destination reached: rebuild the path from the arena.
		if e.cell == r.dest {
			path := r.path(e.node)
			res := Result{
				Move:     moves.Idle,
				Path:     path,
				Cost:     e.cost,
				Score:    e.score,
				Found:    true,
				Expanded: r.expanded,
			}
			if len(path) > 0 {
				res.Move = path[0]
			}

			return res, nil
		}

		// 3) Stale entry for an already finalized cell.
		i := r.g.Index(e.cell)
		if r.visited[i] {
			continue
		}

		// 4) Optional cap and hook, then finalize.
		if r.options.MaxExpansions > 0 && r.expanded >= r.options.MaxExpansions {
			return r.notFound(), fmt.Errorf("%w: %d", ErrExpansionLimit, r.options.MaxExpansions)
		}
		if r.options.OnExpand != nil {
			if err := r.options.OnExpand(e.cell); err != nil {
				return r.notFound(), fmt.Errorf("search: expand hook at %v: %w", e.cell, err)
			}
		}
		r.visited[i] = true
		r.expanded++

		// 5) Relax neighbours.
		r.relax(e)
	}

	return r.notFound(), nil
}

// relax pushes every legal, unfinalized neighbour of e whose tentative cost
// is new or strictly better than the recorded one.
func (r *runner) relax(e *entry) {
	tentative := e.cost + r.options.CostMultiplier
	for _, step := range moves.Legal(r.g, e.cell, r.hazards) {
		j := r.g.Index(step.To)
		if r.visited[j] {
			continue
		}
		// Strict improvement only; equal costs keep the first discovered path.
		if r.known[j] && tentative >= r.best[j] {
			continue
		}
		r.best[j] = tentative
		r.known[j] = true
		r.push(node{cell: step.To, cost: tentative, move: step.Move, parent: e.node})
	}
}

// path walks parent links from arena index i back to the root and returns
// the moves in travel order.
func (r *runner) path(i int) []moves.Move {
	var out []moves.Move
	for at := i; r.arena[at].parent >= 0; at = r.arena[at].parent {
		out = append(out, r.arena[at].move)
	}
	for a, b := 0, len(out)-1; a < b; a, b = a+1, b-1 {
		out[a], out[b] = out[b], out[a]
	}

	return out
}

func (r *runner) notFound() Result {
	return Result{Move: moves.Idle, Expanded: r.expanded}
}
