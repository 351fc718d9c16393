// Package config loads the service configuration from YAML or JSON files
// with optional environment overrides.
package config

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/knadh/koanf/parsers/json"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"github.com/kilianp07/crewsched/core/generator"
	"github.com/kilianp07/crewsched/core/metrics"
	"github.com/kilianp07/crewsched/core/scheduler"
)

// APIConfig defines settings for the HTTP API server.
type APIConfig struct {
	// Address is the listen address of the API server.
	Address string `json:"address"`
	// AnalysisPeriodDays sets the capacity analysis window in eight-hour days.
	AnalysisPeriodDays int `json:"analysis_period_days"`
}

// SetDefaults applies sane defaults.
func (c *APIConfig) SetDefaults() {
	if c.Address == "" {
		c.Address = ":8080"
	}
	if c.AnalysisPeriodDays == 0 {
		c.AnalysisPeriodDays = 365
	}
}

// Validate checks mandatory fields.
func (c APIConfig) Validate() error {
	if c.Address == "" {
		return fmt.Errorf("api address is required")
	}
	if c.AnalysisPeriodDays < 0 {
		return fmt.Errorf("analysis period must be positive, got %d", c.AnalysisPeriodDays)
	}
	return nil
}

// Config is the root service configuration.
type Config struct {
	API       APIConfig        `json:"api"`
	Scheduler scheduler.Config `json:"scheduler"`
	Metrics   metrics.Config   `json:"metrics"`
	Generator generator.Config `json:"generator"`
}

// Default returns a configuration with every default applied, used when no
// config file is given.
func Default() *Config {
	var cfg Config
	cfg.applyDefaults()
	return &cfg
}

func (c *Config) applyDefaults() {
	c.API.SetDefaults()
	c.Scheduler.SetDefaults()
	c.Metrics.SetDefaults()
	c.Generator.SetDefaults()
}

// Validate checks every section.
func (c *Config) Validate() error {
	if err := c.API.Validate(); err != nil {
		return err
	}
	if err := c.Scheduler.Validate(); err != nil {
		return err
	}
	return c.Generator.Validate()
}

// Load reads the configuration file at path. The format follows the file
// extension; CS_-prefixed environment variables override file values, with
// double underscores separating nested keys.
func Load(path string) (*Config, error) {
	k := koanf.New(".")
	ext := strings.ToLower(filepath.Ext(path))
	var parser koanf.Parser
	switch ext {
	case ".yaml", ".yml":
		parser = yaml.Parser()
	case ".json":
		parser = json.Parser()
	default:
		return nil, fmt.Errorf("unsupported config format: %s", ext)
	}
	if err := k.Load(file.Provider(path), parser); err != nil {
		return nil, err
	}
	if err := k.Load(env.Provider("CS_", "__", func(s string) string {
		s = strings.TrimPrefix(strings.ToLower(s), "cs_")
		return strings.ReplaceAll(s, "__", ".")
	}), nil); err != nil {
		return nil, err
	}
	var cfg Config
	if err := k.UnmarshalWithConf("", &cfg, koanf.UnmarshalConf{Tag: "json"}); err != nil {
		return nil, err
	}
	cfg.applyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}
