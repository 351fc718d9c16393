package generator

import (
	"fmt"
	"time"
)

// Config controls synthetic data generation.
type Config struct {
	NumEmployees int       `json:"num_employees"`
	NumProjects  int       `json:"num_projects"`
	Seed         int64     `json:"seed"`
	StartDate    time.Time `json:"start_date"`
	EndDate      time.Time `json:"end_date"`
}

// SetDefaults fills unset fields with the standard test-data profile.
func (c *Config) SetDefaults() {
	if c.NumEmployees == 0 {
		c.NumEmployees = 100
	}
	if c.NumProjects == 0 {
		c.NumProjects = 100
	}
	if c.Seed == 0 {
		c.Seed = DefaultSeed
	}
	if c.StartDate.IsZero() {
		c.StartDate = time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	}
	if c.EndDate.IsZero() {
		c.EndDate = time.Date(2026, 12, 31, 0, 0, 0, 0, time.UTC)
	}
}

// Validate checks the configuration for consistency.
func (c *Config) Validate() error {
	if c.NumEmployees < 0 || c.NumProjects < 0 {
		return fmt.Errorf("generator: negative entity counts (%d employees, %d projects)", c.NumEmployees, c.NumProjects)
	}
	if !c.EndDate.After(c.StartDate) {
		return fmt.Errorf("generator: end date %s not after start date %s", c.EndDate.Format(time.DateOnly), c.StartDate.Format(time.DateOnly))
	}
	return nil
}
