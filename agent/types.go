package agent

import (
	"errors"
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/katalvlaran/coinpilot/grid"
	"github.com/katalvlaran/coinpilot/moves"
	"github.com/katalvlaran/coinpilot/search"
)

// Sentinel errors returned by the agent.
var (
	// ErrInvalidInput wraps every malformed-snapshot error. The specific cause
	// (search.ErrNilGrid, search.ErrStartOutOfBounds, search.ErrBadMultiplier)
	// is wrapped alongside it.
	ErrInvalidInput = errors.New("agent: invalid input")

	// ErrUnknownResetPolicy indicates a reset policy value or name that is not defined.
	ErrUnknownResetPolicy = errors.New("agent: unknown reset policy")
)

// NearbyRadius is the Chebyshev radius of the coin window (5×5 for radius 2).
const NearbyRadius = 2

// Mode is the agent's behavioural state.
type Mode uint8

const (
	// CollectingCoins targets the nearest coin. It is the initial mode.
	CollectingCoins Mode = iota
	// GoingToGoal targets the goal cell.
	GoingToGoal
)

// String returns the mode name used in logs.
func (m Mode) String() string {
	switch m {
	case CollectingCoins:
		return "collecting-coins"
	case GoingToGoal:
		return "going-to-goal"
	default:
		return fmt.Sprintf("mode(%d)", uint8(m))
	}
}

// ResetPolicy decides when GoingToGoal may revert to CollectingCoins.
type ResetPolicy uint8

const (
	// ResetNever keeps GoingToGoal until Agent.Reset is called.
	ResetNever ResetPolicy = iota
	// ResetOnArrival resets once a decision finds the agent on the goal.
	ResetOnArrival
	// ResetOnNearbyCoin reverts as soon as a coin is back within NearbyRadius.
	ResetOnNearbyCoin
)

var policyNames = [...]string{
	ResetNever:        "never",
	ResetOnArrival:    "arrival",
	ResetOnNearbyCoin: "nearby-coin",
}

// Valid reports whether p is a defined policy.
func (p ResetPolicy) Valid() bool { return int(p) < len(policyNames) }

// String returns the policy name accepted by ParseResetPolicy.
func (p ResetPolicy) String() string {
	if !p.Valid() {
		return fmt.Sprintf("policy(%d)", uint8(p))
	}

	return policyNames[p]
}

// ParseResetPolicy maps "never", "arrival" or "nearby-coin" to a policy.
func ParseResetPolicy(s string) (ResetPolicy, error) {
	for p, name := range policyNames {
		if s == name {
			return ResetPolicy(p), nil
		}
	}

	return ResetNever, fmt.Errorf("%w: %q", ErrUnknownResetPolicy, s)
}

// Snapshot is the caller-owned world state for one tick. It is read, never modified.
//
// Grid           – static field with exactly one goal expected.
// Position       – current agent cell.
// Coins          – uncollected coins; slice order breaks nearest-coin ties.
// Hazards        – cells occupied by vehicles.
// CostMultiplier – k, finite and > 0.
type Snapshot struct {
	Grid           *grid.Grid
	Position       grid.Cell
	Coins          []grid.Cell
	Hazards        []grid.Cell
	CostMultiplier float64
}

// Decision is the full outcome of Plan.
//
// Move         – the command to issue this tick.
// Mode         – the agent mode after target selection.
// Target       – the search destination (zero when the grid has no goal).
// TargetIsGoal – whether Target is the goal rather than a coin.
// Search       – the raw search result for Target.
type Decision struct {
	Move         moves.Move
	Mode         Mode
	Target       grid.Cell
	TargetIsGoal bool
	Search       search.Result
}

// Options configures an Agent.
//
// ResetPolicy – when the mode machine may leave GoingToGoal.
// Logger      – optional structured logger; nil disables logging.
// ID          – agent identity for logs; uuid.Nil means "generate one".
type Options struct {
	ResetPolicy ResetPolicy
	Logger      *log.Logger
	ID          uuid.UUID
}

// Option represents a functional option for configuring an Agent.
type Option func(*Options)

// WithResetPolicy selects the reset policy.
// Undefined policies panic with ErrUnknownResetPolicy.
func WithResetPolicy(p ResetPolicy) Option {
	if !p.Valid() {
		panic(ErrUnknownResetPolicy.Error())
	}

	return func(o *Options) {
		o.ResetPolicy = p
	}
}

// WithLogger installs a logger. Passing nil disables logging.
func WithLogger(l *log.Logger) Option {
	return func(o *Options) {
		o.Logger = l
	}
}

// WithID fixes the agent identity instead of generating a random one.
func WithID(id uuid.UUID) Option {
	return func(o *Options) {
		o.ID = id
	}
}

// DefaultOptions returns the baseline configuration:
//   - ResetPolicy: ResetNever
//   - Logger:      nil (silent)
//   - ID:          uuid.Nil (New generates a random ID)
func DefaultOptions() Options {
	return Options{ResetPolicy: ResetNever}
}
