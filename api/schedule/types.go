package schedule

import (
	"github.com/kilianp07/crewsched/core/analyzer"
	"github.com/kilianp07/crewsched/core/generator"
	"github.com/kilianp07/crewsched/core/model"
	"github.com/kilianp07/crewsched/core/scheduler"
	"github.com/kilianp07/crewsched/store"
)

// ScenarioRequest selects a scenario preset and strategy for a complete
// analysis run. Zero entity counts keep the preset's counts.
type ScenarioRequest struct {
	Scenario     string `json:"scenario"`
	Strategy     string `json:"strategy"`
	NumEmployees int    `json:"num_employees"`
	NumProjects  int    `json:"num_projects"`
}

// AnalysisResult is the outcome of a complete generate-schedule-analyze run.
type AnalysisResult struct {
	Metadata        generator.Metadata      `json:"metadata"`
	Scheduling      *scheduler.Result       `json:"schedulingResults"`
	CapacityReport  analyzer.CapacityReport `json:"capacityReport"`
	Recommendations []string                `json:"recommendations"`
}

// DocumentRequest carries an uploaded schedule document and the strategy to
// run over it.
type DocumentRequest struct {
	Strategy string         `json:"strategy"`
	Schedule store.Document `json:"schedule"`
}

// DocumentResult returns the scheduling outcome together with the scheduled
// document and its validation.
type DocumentResult struct {
	Scheduling *scheduler.Result      `json:"schedulingResults"`
	Validation model.ValidationResult `json:"validation"`
	Schedule   store.Document         `json:"schedule"`
}

// Runner executes scheduling runs on behalf of the API.
type Runner interface {
	// RunScenario generates a scenario, schedules it and analyzes the outcome.
	RunScenario(req ScenarioRequest) (*AnalysisResult, error)
	// ScheduleDocument runs the strategy over an uploaded document.
	ScheduleDocument(req DocumentRequest) (*DocumentResult, error)
	// LatestResult returns the most recent analysis, if any.
	LatestResult() (*AnalysisResult, bool)
}
