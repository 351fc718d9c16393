package scheduler

import (
	"fmt"

	"github.com/kilianp07/crewsched/core/logger"
	"github.com/kilianp07/crewsched/core/model"
)

// Strategy produces a staffing for a populated schedule.
type Strategy interface {
	Schedule(s *model.Schedule) (*Result, error)
}

// FailedProject identifies a project that could not be fully staffed and
// the skills still missing when processing stopped.
type FailedProject struct {
	ID            int               `json:"id"`
	Name          string            `json:"name"`
	MissingSkills []model.SkillType `json:"missingSkills"`
}

// Statistics aggregates the final state of a run. All values are pure folds
// over the schedule, not incrementally mutated counters.
type Statistics struct {
	TotalEmployees        int     `json:"totalEmployees"`
	TotalProjects         int     `json:"totalProjects"`
	FullyStaffedProjects  int     `json:"fullyStaffedProjects"`
	TotalCost             float64 `json:"totalCost"`
	TotalRegularHours     float64 `json:"totalRegularHours"`
	TotalOvertimeHours    float64 `json:"totalOvertimeHours"`
	EmployeesWithOvertime int     `json:"employeesWithOvertime"`
	AverageUtilization    float64 `json:"averageUtilization"`
	UtilizationStdDev     float64 `json:"utilizationStdDev"`
}

// Optimization reports the effect of the improvement pass.
type Optimization struct {
	InitialCost           float64 `json:"initialCost"`
	FinalCost             float64 `json:"finalCost"`
	Improvement           float64 `json:"improvement"`
	ImprovementPercentage float64 `json:"improvementPercentage"`
	ImprovementsMade      int     `json:"improvementsMade"`
}

// Result enumerates the outcome of every project in the run. No project is
// silently dropped: each one is either counted in ScheduledProjects or
// listed in FailedProjects.
type Result struct {
	RunID             string          `json:"runId"`
	Success           bool            `json:"success"`
	ScheduledProjects int             `json:"scheduledProjects"`
	FailedProjects    []FailedProject `json:"failedProjects"`
	Warnings          []string        `json:"warnings"`
	Statistics        Statistics      `json:"statistics"`
	Optimization      *Optimization   `json:"optimization,omitempty"`
}

// New builds the strategy selected by cfg. The strategy name is checked
// before any scheduling work starts.
func New(cfg Config, log logger.Logger) (Strategy, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	switch cfg.Strategy {
	case StrategyGreedy:
		return NewGreedy(cfg, log), nil
	case StrategyOptimized:
		return NewOptimized(cfg, log), nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownStrategy, cfg.Strategy)
}
