// Command coinpilot replays the coin-collecting agent on a level file and
// prints one move letter per tick.
//
//	coinpilot [-k 1] [-steps 100] [-reset never|arrival|nearby-coin] [-log-level info] [-show] <level-file>
//
// Defaults come from COINPILOT_* environment variables, optionally loaded
// from a .env file in the working directory.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"

	"github.com/katalvlaran/coinpilot/agent"
	"github.com/katalvlaran/coinpilot/bfs"
	"github.com/katalvlaran/coinpilot/level"
)

var errUsage = errors.New("usage: coinpilot [flags] <level-file>")

func main() {
	if err := run(context.Background(), os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	fs := flag.NewFlagSet("coinpilot", flag.ContinueOnError)
	fs.SetOutput(stderr)
	k := fs.Float64("k", cfg.CostMultiplier, "cost multiplier applied to distance and every step")
	steps := fs.Int("steps", cfg.Steps, "maximum number of ticks")
	reset := fs.String("reset", cfg.ResetPolicy.String(), "mode reset policy: never|arrival|nearby-coin")
	logLevel := fs.String("log-level", cfg.LogLevel.String(), "log level: debug|info|warn|error")
	show := fs.Bool("show", false, "print the final board after the moves")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() != 1 {
		return errUsage
	}
	if *steps <= 0 {
		return fmt.Errorf("steps must be positive, got %d", *steps)
	}
	policy, err := agent.ParseResetPolicy(*reset)
	if err != nil {
		return err
	}
	lvl, err := log.ParseLevel(*logLevel)
	if err != nil {
		return err
	}

	logger := log.NewWithOptions(stderr, log.Options{
		Level:           lvl,
		Prefix:          "coinpilot",
		ReportTimestamp: true,
	})

	board, err := loadLevel(fs.Arg(0))
	if err != nil {
		return err
	}

	a := agent.New(agent.WithResetPolicy(policy), agent.WithLogger(logger))
	logger.Info("starting",
		"level", fs.Arg(0),
		"size", fmt.Sprintf("%dx%d", board.Grid.Width(), board.Grid.Height()),
		"coins", len(board.Coins),
		"vehicles", len(board.Hazards),
		"k", *k,
		"reset", policy,
	)

	if err := survey(ctx, board, logger); err != nil {
		return err
	}

	res, err := simulate(ctx, a, board, *k, *steps, stdout)
	if err != nil {
		return err
	}
	fmt.Fprintln(stdout)
	if *show {
		fmt.Fprint(stdout, level.Render(*board))
	}
	logger.Info("finished", "ticks", res.ticks, "coins", res.collected, "goal", res.arrived)

	return nil
}

// outcome summarizes one simulation.
type outcome struct {
	ticks     int
	collected int
	arrived   bool
}

// simulate plays up to steps ticks, writing each move letter to w. It stops
// early once the agent stands on the goal.
func simulate(ctx context.Context, a *agent.Agent, board *level.Level, k float64, steps int, w io.Writer) (outcome, error) {
	var res outcome
	for res.ticks < steps && !board.AtGoal() {
		if err := ctx.Err(); err != nil {
			return res, err
		}
		m, err := a.Decide(board.Snapshot(k))
		if err != nil {
			return res, err
		}
		got, err := board.Apply(m)
		if err != nil {
			return res, err
		}
		if got {
			res.collected++
		}
		res.ticks++
		fmt.Fprint(w, m)
	}
	res.arrived = board.AtGoal()

	return res, nil
}

// survey warns about a goal or coins that walls cut off from the start.
// Vehicles are ignored since they move between ticks.
func survey(ctx context.Context, board *level.Level, logger *log.Logger) error {
	reach, err := bfs.BFS(board.Grid, board.Position, bfs.WithContext(ctx))
	if err != nil {
		return err
	}
	goal, ok := board.Grid.Goal()
	switch {
	case !ok:
		logger.Warn("level has no goal")
	case !reach.Reached(goal):
		logger.Warn("goal unreachable from start", "goal", goal)
	default:
		logger.Debug("goal reachable", "goal", goal, "distance", reach.Depth[goal])
	}
	stranded := 0
	for _, c := range board.Coins {
		if !reach.Reached(c) {
			stranded++
		}
	}
	if stranded > 0 {
		logger.Warn("coins unreachable from start", "count", stranded)
	}

	return nil
}

func loadLevel(path string) (*level.Level, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return level.Parse(f)
}
