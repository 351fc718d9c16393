package scheduler

import "github.com/kilianp07/crewsched/core/model"

// ProjectScheduledEvent is published on the event bus when a project
// reaches full skill coverage.
type ProjectScheduledEvent struct {
	RunID     string
	ProjectID int
	Name      string
	Assignees int
}

// ProjectFailedEvent is published when a missing skill has no candidates
// left. Partial assignments made before the failure are kept.
type ProjectFailedEvent struct {
	RunID         string
	ProjectID     int
	Name          string
	MissingSkills []model.SkillType
}
