package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/coinpilot/agent"
	"github.com/katalvlaran/coinpilot/level"
)

const walledLevel = "" +
	"P...#....\n" +
	".C..#.C..\n" +
	"....#....\n" +
	"..V......\n" +
	"........G\n"

// writeLevel stores src in a temp file and returns its path.
func writeLevel(t *testing.T, src string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "level.txt")
	require.NoError(t, os.WriteFile(path, []byte(src), 0o600))

	return path
}

// clearEnv unsets every COINPILOT_* variable for the duration of the test.
func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{envCostMultiplier, envSteps, envResetPolicy, envLogLevel} {
		t.Setenv(key, "")
		require.NoError(t, os.Unsetenv(key))
	}
}

func TestRun_ReachesGoal(t *testing.T) {
	clearEnv(t)
	var stdout, stderr bytes.Buffer
	err := run(context.Background(), []string{"-show", writeLevel(t, "P.C\n..G\n")}, &stdout, &stderr)
	require.NoError(t, err)

	assert.Equal(t, "DDS\n...\n..P\n", stdout.String())
	assert.Contains(t, stderr.String(), "finished")
}

func TestRun_AroundWall(t *testing.T) {
	clearEnv(t)
	var stdout, stderr bytes.Buffer
	err := run(context.Background(), []string{"-log-level", "error", writeLevel(t, walledLevel)}, &stdout, &stderr)
	require.NoError(t, err)
	assert.Equal(t, "SDWDDSSSDDDSDD\n", stdout.String())
	assert.Empty(t, stderr.String())
}

func TestRun_SurveyWarnings(t *testing.T) {
	clearEnv(t)
	var stdout, stderr bytes.Buffer
	err := run(context.Background(), []string{"-steps", "3", writeLevel(t, "P.#C\n.C#.\n..#G\n")}, &stdout, &stderr)
	require.NoError(t, err)
	assert.Contains(t, stderr.String(), "goal unreachable from start")
	assert.Contains(t, stderr.String(), "coins unreachable from start")
	assert.Len(t, strings.TrimSpace(stdout.String()), 3)
}

func TestRun_StepLimit(t *testing.T) {
	clearEnv(t)
	var stdout bytes.Buffer
	err := run(context.Background(), []string{"-steps", "5", writeLevel(t, walledLevel)}, &stdout, &bytes.Buffer{})
	require.NoError(t, err)
	assert.Equal(t, "SDWDD\n", stdout.String())
}

func TestRun_Enclosed(t *testing.T) {
	clearEnv(t)
	var stdout bytes.Buffer
	err := run(context.Background(), []string{"-steps", "4", writeLevel(t, "P#.\n#.G\n")}, &stdout, &bytes.Buffer{})
	require.NoError(t, err)
	assert.Equal(t, "IIII\n", stdout.String())
}

func TestRun_EnvDefaults(t *testing.T) {
	clearEnv(t)
	t.Setenv(envSteps, "5")
	t.Setenv(envLogLevel, "debug")
	var stdout, stderr bytes.Buffer
	err := run(context.Background(), []string{writeLevel(t, walledLevel)}, &stdout, &stderr)
	require.NoError(t, err)
	assert.Equal(t, "SDWDD\n", stdout.String())
	assert.Contains(t, stderr.String(), "decided")

	// Flags override the environment.
	stdout.Reset()
	err = run(context.Background(), []string{"-steps", "2", writeLevel(t, walledLevel)}, &stdout, &bytes.Buffer{})
	require.NoError(t, err)
	assert.Equal(t, "SD\n", stdout.String())
}

func TestRun_Errors(t *testing.T) {
	clearEnv(t)
	good := writeLevel(t, "P.G\n")
	cases := []struct {
		name string
		args []string
		want string
	}{
		{"NoArgs", nil, "usage"},
		{"TwoFiles", []string{good, good}, "usage"},
		{"BadFlag", []string{"-nope", good}, "not defined"},
		{"ZeroSteps", []string{"-steps", "0", good}, "steps must be positive"},
		{"BadReset", []string{"-reset", "sometimes", good}, "unknown reset policy"},
		{"BadLogLevel", []string{"-log-level", "loud", good}, "invalid level"},
		{"MissingFile", []string{filepath.Join(t.TempDir(), "none.txt")}, "no such file"},
		{"BadMultiplier", []string{"-k", "0", good}, "invalid input"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := run(context.Background(), tc.args, &bytes.Buffer{}, &bytes.Buffer{})
			require.Error(t, err)
			assert.Contains(t, err.Error(), tc.want)
		})
	}
}

func TestRun_RaggedLevel(t *testing.T) {
	clearEnv(t)
	err := run(context.Background(), []string{writeLevel(t, "P..\n.G\n")}, &bytes.Buffer{}, &bytes.Buffer{})
	assert.ErrorIs(t, err, level.ErrRagged)
}

func TestSimulate_Cancelled(t *testing.T) {
	board, err := level.ParseString(walledLevel)
	require.NoError(t, err)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var out strings.Builder
	res, err := simulate(ctx, agent.New(), board, 1, 10, &out)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Zero(t, res.ticks)
	assert.Empty(t, out.String())
}

func TestLoadConfig(t *testing.T) {
	t.Run("Defaults", func(t *testing.T) {
		clearEnv(t)
		cfg, err := loadConfig(filepath.Join(t.TempDir(), "missing.env"))
		require.NoError(t, err)
		assert.Equal(t, defaultConfig(), cfg)
	})

	t.Run("EnvFile", func(t *testing.T) {
		clearEnv(t)
		path := filepath.Join(t.TempDir(), "test.env")
		body := "COINPILOT_COST_MULTIPLIER=2.5\nCOINPILOT_STEPS=7\nCOINPILOT_RESET_POLICY=arrival\nCOINPILOT_LOG_LEVEL=warn\n"
		require.NoError(t, os.WriteFile(path, []byte(body), 0o600))

		cfg, err := loadConfig(path)
		require.NoError(t, err)
		assert.Equal(t, 2.5, cfg.CostMultiplier)
		assert.Equal(t, 7, cfg.Steps)
		assert.Equal(t, agent.ResetOnArrival, cfg.ResetPolicy)
		assert.Equal(t, "warn", cfg.LogLevel.String())
	})

	t.Run("EnvironmentWins", func(t *testing.T) {
		clearEnv(t)
		t.Setenv(envSteps, "3")
		path := filepath.Join(t.TempDir(), "test.env")
		require.NoError(t, os.WriteFile(path, []byte("COINPILOT_STEPS=9\n"), 0o600))

		cfg, err := loadConfig(path)
		require.NoError(t, err)
		assert.Equal(t, 3, cfg.Steps)
	})

	t.Run("Malformed", func(t *testing.T) {
		for key, value := range map[string]string{
			envCostMultiplier: "lots",
			envSteps:          "1.5",
			envResetPolicy:    "sometimes",
			envLogLevel:       "loud",
		} {
			clearEnv(t)
			t.Setenv(key, value)
			_, err := loadConfig(filepath.Join(t.TempDir(), "missing.env"))
			assert.Error(t, err, key)
		}
	})
}
