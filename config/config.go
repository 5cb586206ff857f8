// Package config holds the orchestration budgets consumed (not owned) by
// the orchestrator: round ceiling, per-role retry ceiling, per-call timeout
// and the overall run deadline. Values can be set programmatically or
// loaded from a YAML file; unset fields keep their documented defaults.
package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Config carries the budgets for one orchestrator instance. All runs of the
// instance share the same budgets; per-request state is constructed fresh
// inside each run.
type Config struct {
	// MaxRounds is the refinement round ceiling. Round numbers run from 0 to
	// MaxRounds-1; a Critic rework verdict at the ceiling forces termination.
	// Default: 3.
	MaxRounds int

	// MaxRetries is the per-role retry budget within a round. Exceeding it
	// writes a failed placeholder artifact and the pipeline proceeds.
	// Default: 2.
	MaxRetries int

	// CallTimeout bounds a single agent invocation. A timed-out call is a
	// retryable failure. Default: 60s.
	CallTimeout time.Duration

	// Deadline bounds the whole run. On expiry the controller stops
	// enqueuing tasks and finalizes with whatever artifacts exist.
	// Default: 5m.
	Deadline time.Duration

	// MaxAgentCalls is a hard ceiling on agent invocations per run,
	// a backstop alongside the round and retry budgets. 0 means unlimited.
	// Default: 32.
	MaxAgentCalls int

	// PoolSize bounds concurrent agent invocations across all requests
	// sharing the orchestrator's worker pool. Default: 8.
	PoolSize int
}

// Default returns the documented default budgets.
func Default() Config {
	return Config{
		MaxRounds:     3,
		MaxRetries:    2,
		CallTimeout:   60 * time.Second,
		Deadline:      5 * time.Minute,
		MaxAgentCalls: 32,
		PoolSize:      8,
	}
}

// Validate checks that the budgets can drive the state machine to
// termination.
func (c Config) Validate() error {
	if c.MaxRounds < 1 {
		return fmt.Errorf("max_rounds must be at least 1, got %d", c.MaxRounds)
	}
	if c.MaxRetries < 0 {
		return fmt.Errorf("max_retries must not be negative, got %d", c.MaxRetries)
	}
	if c.CallTimeout <= 0 {
		return fmt.Errorf("call_timeout must be positive, got %s", c.CallTimeout)
	}
	if c.Deadline <= 0 {
		return fmt.Errorf("deadline must be positive, got %s", c.Deadline)
	}
	if c.MaxAgentCalls < 0 {
		return fmt.Errorf("max_agent_calls must not be negative, got %d", c.MaxAgentCalls)
	}
	if c.PoolSize < 1 {
		return fmt.Errorf("pool_size must be at least 1, got %d", c.PoolSize)
	}

	return nil
}

// fileConfig is the YAML shape; durations are strings ("90s", "2m") so the
// file stays readable.
type fileConfig struct {
	MaxRounds     *int    `yaml:"max_rounds"`
	MaxRetries    *int    `yaml:"max_retries"`
	CallTimeout   *string `yaml:"call_timeout"`
	Deadline      *string `yaml:"deadline"`
	MaxAgentCalls *int    `yaml:"max_agent_calls"`
	PoolSize      *int    `yaml:"pool_size"`
}

// Load reads budgets from a YAML file, layering present fields over the
// defaults and validating the result.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}

	return Parse(data)
}

// Parse decodes YAML bytes, layering present fields over the defaults.
func Parse(data []byte) (Config, error) {
	var fc fileConfig
	if err := yaml.Unmarshal(data, &fc); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}

	cfg := Default()
	if fc.MaxRounds != nil {
		cfg.MaxRounds = *fc.MaxRounds
	}
	if fc.MaxRetries != nil {
		cfg.MaxRetries = *fc.MaxRetries
	}
	if fc.CallTimeout != nil {
		d, err := time.ParseDuration(*fc.CallTimeout)
		if err != nil {
			return Config{}, fmt.Errorf("parse call_timeout: %w", err)
		}
		cfg.CallTimeout = d
	}
	if fc.Deadline != nil {
		d, err := time.ParseDuration(*fc.Deadline)
		if err != nil {
			return Config{}, fmt.Errorf("parse deadline: %w", err)
		}
		cfg.Deadline = d
	}
	if fc.MaxAgentCalls != nil {
		cfg.MaxAgentCalls = *fc.MaxAgentCalls
	}
	if fc.PoolSize != nil {
		cfg.PoolSize = *fc.PoolSize
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}
