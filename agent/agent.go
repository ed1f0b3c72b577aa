package agent

import (
	"fmt"
	"math"
	"sync"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/katalvlaran/coinpilot/moves"
	"github.com/katalvlaran/coinpilot/search"
)

// Agent is one decision maker with its own mode. Create one per agent and
// episode with New; the zero value is not usable.
type Agent struct {
	mu     sync.Mutex
	mode   Mode
	policy ResetPolicy
	id     uuid.UUID
	log    *log.Logger
}

// New returns an Agent in CollectingCoins mode.
func New(opts ...Option) *Agent {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	id := cfg.ID
	if id == uuid.Nil {
		id = uuid.New()
	}
	a := &Agent{
		mode:   CollectingCoins,
		policy: cfg.ResetPolicy,
		id:     id,
	}
	if cfg.Logger != nil {
		a.log = cfg.Logger.With("agent", id)
	}

	return a
}

// ID returns the agent identity.
func (a *Agent) ID() uuid.UUID { return a.id }

// Policy returns the configured reset policy.
func (a *Agent) Policy() ResetPolicy { return a.policy }

// Mode returns the current mode.
func (a *Agent) Mode() Mode {
	a.mu.Lock()
	defer a.mu.Unlock()

	return a.mode
}

// Reset restores CollectingCoins, starting a new episode.
func (a *Agent) Reset() {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.setMode(CollectingCoins, "reset")
}

// Decide runs one decision cycle and returns the move to issue.
// On malformed input it returns moves.Idle and an error wrapping ErrInvalidInput.
func (a *Agent) Decide(s Snapshot) (moves.Move, error) {
	d, err := a.Plan(s)

	return d.Move, err
}

// Plan is Decide with the full Decision exposed.
func (a *Agent) Plan(s Snapshot) (Decision, error) {
	// 1) Validate before touching the mode.
	if err := validate(s); err != nil {
		return Decision{Move: moves.Idle, Mode: a.Mode()}, err
	}

	a.mu.Lock()
	defer a.mu.Unlock()

	// 2) Goal lookup; a grid without a goal has nothing to do.
	goal, ok := s.Grid.Goal()
	if !ok {
		a.debug("no goal on grid", "pos", s.Position)
		return Decision{Move: moves.Idle, Mode: a.mode}, nil
	}

	// 3) Already arrived.
	if s.Position == goal {
		if a.policy == ResetOnArrival {
			a.setMode(CollectingCoins, "arrived")
		}
		a.debug("at goal", "pos", s.Position)
		return Decision{
			Move:         moves.Idle,
			Mode:         a.mode,
			Target:       goal,
			TargetIsGoal: true,
			Search:       search.Result{Move: moves.Idle, Found: true},
		}, nil
	}

	// 4) Mode machine and destination.
	target, isGoal := a.selectTarget(s.Position, goal, s.Coins)

	// 5) Search.
	res, err := search.Search(s.Grid, s.Position, target,
		search.WithCostMultiplier(s.CostMultiplier),
		search.WithCoins(s.Coins),
		search.WithHazards(s.Hazards),
	)
	if err != nil {
		return Decision{Move: moves.Idle, Mode: a.mode}, fmt.Errorf("agent: %w", err)
	}
	a.debug("decided",
		"pos", s.Position,
		"target", target,
		"goal", isGoal,
		"move", res.Move,
		"found", res.Found,
		"expanded", res.Expanded,
	)

	return Decision{
		Move:         res.Move,
		Mode:         a.mode,
		Target:       target,
		TargetIsGoal: isGoal,
		Search:       res,
	}, nil
}

// validate checks the snapshot preconditions in the same order as search.Search.
func validate(s Snapshot) error {
	if s.Grid == nil {
		return fmt.Errorf("%w: %w", ErrInvalidInput, search.ErrNilGrid)
	}
	if !s.Grid.InBounds(s.Position) {
		return fmt.Errorf("%w: %w: %v in %dx%d",
			ErrInvalidInput, search.ErrStartOutOfBounds, s.Position, s.Grid.Width(), s.Grid.Height())
	}
	k := s.CostMultiplier
	if k <= 0 || math.IsNaN(k) || math.IsInf(k, 0) {
		return fmt.Errorf("%w: %w: got %v", ErrInvalidInput, search.ErrBadMultiplier, k)
	}

	return nil
}

// setMode switches the mode and logs real transitions. Callers hold a.mu.
func (a *Agent) setMode(m Mode, reason string) {
	if a.mode == m {
		return
	}
	if a.log != nil {
		a.log.Info("mode changed", "from", a.mode, "to", m, "reason", reason)
	}
	a.mode = m
}

func (a *Agent) debug(msg string, kv ...interface{}) {
	if a.log != nil {
		a.log.Debug(msg, kv...)
	}
}
