package scheduler

import (
	"sort"

	"github.com/kilianp07/crewsched/core/model"
)

// Conflict is a pair of assignments of one employee whose slots overlap.
type Conflict struct {
	First  model.Assignment `json:"first"`
	Second model.Assignment `json:"second"`
}

// EmployeeConflicts returns every adjacent overlapping pair after sorting
// the employee's assignments by start time. Read-only and idempotent.
func EmployeeConflicts(e *model.Employee) []Conflict {
	sorted := make([]model.Assignment, len(e.Assignments))
	copy(sorted, e.Assignments)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].TimeSlot.Start.Before(sorted[j].TimeSlot.Start)
	})

	var conflicts []Conflict
	for i := 0; i+1 < len(sorted); i++ {
		if sorted[i].TimeSlot.Overlaps(sorted[i+1].TimeSlot) {
			conflicts = append(conflicts, Conflict{First: sorted[i], Second: sorted[i+1]})
		}
	}
	return conflicts
}

// AllConflicts maps employee ids to their conflicts, omitting employees
// without any.
func AllConflicts(s *model.Schedule) map[int][]Conflict {
	all := make(map[int][]Conflict)
	for _, e := range s.Employees() {
		if conflicts := EmployeeConflicts(e); len(conflicts) > 0 {
			all[e.ID] = conflicts
		}
	}
	return all
}

// StaffingCheck reports the per-project side of a validation pass.
type StaffingCheck struct {
	Valid         bool              `json:"valid"`
	Assignees     int               `json:"assignees"`
	MissingSkills []model.SkillType `json:"missingSkills"`
}

// CheckProjectStaffing verifies assignee count and skill coverage for one
// project.
func CheckProjectStaffing(s *model.Schedule, p *model.Project) StaffingCheck {
	check := StaffingCheck{
		Assignees:     len(p.AssignedEmployeeIDs),
		MissingSkills: s.MissingSkills(p),
	}
	check.Valid = p.IsFullyStaffed() && len(check.MissingSkills) == 0
	return check
}
