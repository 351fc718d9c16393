package metrics

import "time"

// RunEvent captures the outcome of one scheduling run for observability.
type RunEvent struct {
	RunID             string
	Strategy          string
	Success           bool
	ScheduledProjects int
	FailedProjects    int
	TotalCost         float64
	RegularHours      float64
	OvertimeHours     float64
	Duration          time.Duration
	Time              time.Time
}

// RunSink records scheduling run outcomes.
type RunSink interface {
	RecordRun(ev RunEvent) error
}

// ProjectOutcomeEvent records the terminal state of a single project.
type ProjectOutcomeEvent struct {
	RunID     string
	ProjectID int
	Name      string
	Outcome   string // "scheduled" or "failed"
	Time      time.Time
}

// ProjectOutcomeRecorder records per-project terminal states.
type ProjectOutcomeRecorder interface {
	RecordProjectOutcome(ev ProjectOutcomeEvent) error
}

// NopSink implements RunSink and ProjectOutcomeRecorder with no-op methods.
type NopSink struct{}

func (NopSink) RecordRun(RunEvent) error                       { return nil }
func (NopSink) RecordProjectOutcome(ProjectOutcomeEvent) error { return nil }
