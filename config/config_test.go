package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	data := `api:
  address: ":9999"
scheduler:
  strategy: "optimized"
  balance_workload: true
  minimize_overtime: false
  seed: 42
  max_iterations: 25
metrics:
  prometheus_enabled: true
  prometheus_port: ":9100"
generator:
  num_employees: 50
  num_projects: 40
  seed: 7
`
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load error: %v", err)
	}
	checks := []struct {
		name string
		got  any
		want any
	}{
		{"api.address", cfg.API.Address, ":9999"},
		{"api.analysis_period_days default", cfg.API.AnalysisPeriodDays, 365},
		{"scheduler.strategy", cfg.Scheduler.Strategy, "optimized"},
		{"scheduler.balance_workload", *cfg.Scheduler.BalanceWorkload, true},
		{"scheduler.minimize_overtime", *cfg.Scheduler.MinimizeOvertime, false},
		{"scheduler.seed", cfg.Scheduler.Seed, int64(42)},
		{"scheduler.max_iterations", cfg.Scheduler.MaxIterations, 25},
		{"metrics.prometheus_enabled", cfg.Metrics.PrometheusEnabled, true},
		{"metrics.prometheus_port", cfg.Metrics.PrometheusPort, ":9100"},
		{"generator.num_employees", cfg.Generator.NumEmployees, 50},
		{"generator.num_projects", cfg.Generator.NumProjects, 40},
		{"generator.seed", cfg.Generator.Seed, int64(7)},
	}
	for _, c := range checks {
		if c.got != c.want {
			t.Errorf("%s mismatch: %v", c.name, c.got)
		}
	}
}

func TestLoadDefaultsWeightingWithExplicitStrategy(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	data := `scheduler:
  strategy: "greedy"
`
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load error: %v", err)
	}
	if !*cfg.Scheduler.BalanceWorkload || !*cfg.Scheduler.MinimizeOvertime {
		t.Errorf("weighting flags must default to true: %+v", cfg.Scheduler)
	}
}

func TestLoadRejectsUnknownStrategy(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	data := `scheduler:
  strategy: "exhaustive"
`
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	if _, err := Load(path); err == nil {
		t.Fatal("expected error for unknown strategy")
	}
}

func TestLoadRejectsUnknownExtension(t *testing.T) {
	if _, err := Load("config.toml"); err == nil {
		t.Fatal("expected error for unsupported format")
	}
}

func TestEnvOverride(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	data := `api:
  address: ":8080"
`
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	t.Setenv("CS_API__ADDRESS", ":7070")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load error: %v", err)
	}
	if cfg.API.Address != ":7070" {
		t.Errorf("address %q, want env override", cfg.API.Address)
	}
}

func TestDefaultIsValid(t *testing.T) {
	cfg := Default()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("default config invalid: %v", err)
	}
	if cfg.Scheduler.Strategy == "" || cfg.API.Address == "" {
		t.Errorf("defaults not applied: %+v", cfg)
	}
}
