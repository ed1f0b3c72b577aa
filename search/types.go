package search

import (
	"errors"

	"github.com/katalvlaran/coinpilot/grid"
	"github.com/katalvlaran/coinpilot/moves"
)

// Sentinel errors returned by Search.
var (
	// ErrNilGrid indicates that a nil *grid.Grid was passed to Search.
	ErrNilGrid = errors.New("search: grid is nil")

	// ErrStartOutOfBounds indicates the start cell lies outside the grid.
	ErrStartOutOfBounds = errors.New("search: start cell out of bounds")

	// ErrBadMultiplier indicates a cost multiplier that is zero, negative, NaN or infinite.
	ErrBadMultiplier = errors.New("search: cost multiplier must be finite and positive")

	// ErrExpansionLimit indicates MaxExpansions cells were expanded without
	// reaching the destination.
	ErrExpansionLimit = errors.New("search: expansion limit reached")

	// ErrBadMaxExpansions indicates WithMaxExpansions was given a negative value.
	ErrBadMaxExpansions = errors.New("search: MaxExpansions must be non-negative")
)

// Options configures one Search call.
//
// CostMultiplier – weight applied to the destination distance and to every step (k).
// Coins          – cells holding coins; their order fixes float summation order.
// Hazards        – cells occupied by vehicles; they are both scored and impassable.
// OnExpand       – optional hook run before a cell is expanded.
// MaxExpansions  – optional cap on expanded cells; 0 means no cap.
type Options struct {
	CostMultiplier float64
	Coins          []grid.Cell
	Hazards        []grid.Cell
	OnExpand       func(cell grid.Cell) error
	MaxExpansions  int
}

// Option represents a functional option for configuring Search.
type Option func(*Options)

// WithCostMultiplier sets k. Validation happens in Search, since k usually
// comes straight from the game snapshot.
func WithCostMultiplier(k float64) Option {
	return func(o *Options) {
		o.CostMultiplier = k
	}
}

// WithCoins sets the coin cells. The slice is read, never modified.
func WithCoins(coins []grid.Cell) Option {
	return func(o *Options) {
		o.Coins = coins
	}
}

// WithHazards sets the vehicle cells. The slice is read, never modified.
func WithHazards(hazards []grid.Cell) Option {
	return func(o *Options) {
		o.Hazards = hazards
	}
}

// WithOnExpand installs a hook invoked with each cell about to be expanded.
// Returning an error aborts the search with that error wrapped.
func WithOnExpand(fn func(cell grid.Cell) error) Option {
	return func(o *Options) {
		o.OnExpand = fn
	}
}

// WithMaxExpansions caps the number of expanded cells.
// Must pass a non-negative value; negative values panic with ErrBadMaxExpansions.
func WithMaxExpansions(n int) Option {
	if n < 0 {
		panic(ErrBadMaxExpansions.Error())
	}

	return func(o *Options) {
		o.MaxExpansions = n
	}
}

// DefaultOptions returns the baseline configuration:
//   - CostMultiplier: 1
//   - Coins, Hazards: none
//   - OnExpand:       nil
//   - MaxExpansions:  0 (no cap; the grid size bounds the search anyway)
func DefaultOptions() Options {
	return Options{
		CostMultiplier: 1,
	}
}

// Result describes the outcome of one Search.
//
// Move     – first move of the found path, or moves.Idle.
// Path     – every move from start to destination; empty when start == dest or not found.
// Cost     – accumulated cost of the path (len(Path)·k).
// Score    – frontier score of the destination node when it was popped.
// Found    – whether the destination was reached.
// Expanded – number of cells finalized and expanded.
type Result struct {
	Move     moves.Move
	Path     []moves.Move
	Cost     float64
	Score    float64
	Found    bool
	Expanded int
}
