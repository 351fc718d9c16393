package scheduler

import (
	"errors"
	"fmt"
)

// ErrUnknownStrategy reports a strategy name the factory does not know.
var ErrUnknownStrategy = errors.New("unknown scheduling strategy")

const (
	// StrategyGreedy is the single-pass weighted greedy scheduler.
	StrategyGreedy = "greedy"
	// StrategyOptimized runs greedy plus a bounded improvement pass.
	StrategyOptimized = "optimized"
)

// Config defines scheduling parameters loaded from configuration.
type Config struct {
	Strategy string `json:"strategy"`
	// The weighting flags are pointers so an absent key defaults to true
	// while an explicit false still disables the term.
	BalanceWorkload  *bool `json:"balance_workload"`
	MinimizeOvertime *bool `json:"minimize_overtime"`
	// Seed feeds the run-scoped tie-break generator. Zero means derive a
	// seed from the wall clock.
	Seed int64 `json:"seed"`
	// MaxIterations bounds the improvement pass of the optimized strategy.
	MaxIterations int `json:"max_iterations"`
}

// SetDefaults applies sane defaults.
func (c *Config) SetDefaults() {
	if c.Strategy == "" {
		c.Strategy = StrategyGreedy
	}
	if c.BalanceWorkload == nil {
		on := true
		c.BalanceWorkload = &on
	}
	if c.MinimizeOvertime == nil {
		on := true
		c.MinimizeOvertime = &on
	}
	if c.MaxIterations == 0 {
		c.MaxIterations = 100
	}
}

func enabled(flag *bool) bool { return flag != nil && *flag }

// Validate checks the strategy name before any work begins.
func (c Config) Validate() error {
	switch c.Strategy {
	case StrategyGreedy, StrategyOptimized:
		return nil
	default:
		return fmt.Errorf("%w: %q", ErrUnknownStrategy, c.Strategy)
	}
}
