package generator

import (
	"errors"
	"fmt"

	"github.com/kilianp07/crewsched/core/model"
)

// ErrUnknownScenario indicates a scenario name with no preset.
var ErrUnknownScenario = errors.New("unknown scenario")

// Scenario is a named staffing-vs-demand preset.
type Scenario struct {
	Name         string `json:"name"`
	Description  string `json:"description"`
	NumEmployees int    `json:"numEmployees"`
	NumProjects  int    `json:"numProjects"`
}

// Metadata describes a generated scenario run.
type Metadata struct {
	ScenarioName string `json:"scenarioName"`
	Description  string `json:"description"`
	NumEmployees int    `json:"numEmployees"`
	NumProjects  int    `json:"numProjects"`
	Seed         int64  `json:"seed"`
}

// Scenarios returns the presets in a stable order.
func Scenarios() []Scenario {
	return []Scenario{
		{Name: "balanced", NumEmployees: 100, NumProjects: 100,
			Description: "Balanced scenario with equal employees and projects"},
		{Name: "understaffed", NumEmployees: 80, NumProjects: 100,
			Description: "Understaffed scenario with more projects than optimal"},
		{Name: "overstaffed", NumEmployees: 120, NumProjects: 100,
			Description: "Overstaffed scenario with excess capacity"},
		{Name: "peak_season", NumEmployees: 100, NumProjects: 150,
			Description: "Peak season with high project volume"},
		{Name: "low_season", NumEmployees: 100, NumProjects: 60,
			Description: "Low season with reduced project volume"},
	}
}

// ScenarioByName resolves a preset by name.
func ScenarioByName(name string) (Scenario, error) {
	for _, sc := range Scenarios() {
		if sc.Name == name {
			return sc, nil
		}
	}
	return Scenario{}, fmt.Errorf("%q: %w", name, ErrUnknownScenario)
}

// GenerateScenario builds the schedule for a named preset. The base config
// supplies the date range and seed; the preset fixes the entity counts.
func (g *DataGenerator) GenerateScenario(name string, base Config) (*model.Schedule, Metadata, error) {
	sc, err := ScenarioByName(name)
	if err != nil {
		return nil, Metadata{}, err
	}

	cfg := base
	cfg.NumEmployees = sc.NumEmployees
	cfg.NumProjects = sc.NumProjects
	s, err := g.Schedule(cfg)
	if err != nil {
		return nil, Metadata{}, err
	}

	return s, Metadata{
		ScenarioName: sc.Name,
		Description:  sc.Description,
		NumEmployees: sc.NumEmployees,
		NumProjects:  sc.NumProjects,
		Seed:         g.seed,
	}, nil
}
