package search

import "github.com/katalvlaran/coinpilot/grid"

// entry is one frontier item. The ordered key is (score, cost, cell.X,
// cell.Y, seq); node points into the runner's arena.
type entry struct {
	score float64
	cost  float64
	cell  grid.Cell
	seq   uint64
	node  int
}

// less reports whether a sorts before b under the documented composite key.
func (a *entry) less(b *entry) bool {
	if a.score != b.score {
		return a.score < b.score
	}
	if a.cost != b.cost {
		return a.cost < b.cost
	}
	if a.cell.X != b.cell.X {
		return a.cell.X < b.cell.X
	}
	if a.cell.Y != b.cell.Y {
		return a.cell.Y < b.cell.Y
	}

	return a.seq < b.seq
}

// frontier is a min-heap of *entry using the lazy-decrease-key approach:
// improved costs push a new entry and stale ones are skipped when popped.
type frontier []*entry

// Len returns the number of entries in the heap.
func (pq frontier) Len() int { return len(pq) }

// Less orders entries by the composite key.
func (pq frontier) Less(i, j int) bool { return pq[i].less(pq[j]) }

// Swap swaps two entries in the heap.
func (pq frontier) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

// Push adds a new entry; called by heap.Push, x must be *entry.
func (pq *frontier) Push(x interface{}) { *pq = append(*pq, x.(*entry)) }

// Pop removes and returns the last entry; called by heap.Pop.
func (pq *frontier) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	*pq = old[:n-1]

	return item
}
