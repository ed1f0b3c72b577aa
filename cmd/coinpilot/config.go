package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"

	"github.com/charmbracelet/log"
	"github.com/joho/godotenv"

	"github.com/katalvlaran/coinpilot/agent"
)

// Environment variables read by loadConfig.
const (
	envCostMultiplier = "COINPILOT_COST_MULTIPLIER"
	envSteps          = "COINPILOT_STEPS"
	envResetPolicy    = "COINPILOT_RESET_POLICY"
	envLogLevel       = "COINPILOT_LOG_LEVEL"
)

// Config holds the CLI defaults; flags override every field.
type Config struct {
	CostMultiplier float64           // k passed to every decision
	Steps          int               // maximum number of ticks
	ResetPolicy    agent.ResetPolicy // mode reset policy
	LogLevel       log.Level         // stderr logger level
}

// defaultConfig is used for every variable that is unset or empty.
func defaultConfig() Config {
	return Config{
		CostMultiplier: 1,
		Steps:          100,
		ResetPolicy:    agent.ResetNever,
		LogLevel:       log.InfoLevel,
	}
}

// loadConfig loads the given .env files (".env" when none are named) into the
// process environment and reads the COINPILOT_* variables. Missing files are
// not an error; variables already set in the environment win over the files.
func loadConfig(files ...string) (Config, error) {
	if err := godotenv.Load(files...); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, fmt.Errorf("config: load env file: %w", err)
	}

	cfg := defaultConfig()
	if v := getEnv(envCostMultiplier); v != "" {
		k, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return Config{}, fmt.Errorf("config: %s must be a number: %w", envCostMultiplier, err)
		}
		cfg.CostMultiplier = k
	}
	if v := getEnv(envSteps); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return Config{}, fmt.Errorf("config: %s must be an integer: %w", envSteps, err)
		}
		cfg.Steps = n
	}
	if v := getEnv(envResetPolicy); v != "" {
		p, err := agent.ParseResetPolicy(v)
		if err != nil {
			return Config{}, fmt.Errorf("config: %s: %w", envResetPolicy, err)
		}
		cfg.ResetPolicy = p
	}
	if v := getEnv(envLogLevel); v != "" {
		lvl, err := log.ParseLevel(v)
		if err != nil {
			return Config{}, fmt.Errorf("config: %s: %w", envLogLevel, err)
		}
		cfg.LogLevel = lvl
	}

	return cfg, nil
}

// getEnv returns the variable value, or "" when it is unset.
func getEnv(key string) string {
	value, _ := os.LookupEnv(key)
	return value
}
