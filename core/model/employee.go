package model

import (
	"fmt"
	"time"
)

const (
	// MaxRegularHoursPerDay is the daily cap before hours count as overtime.
	MaxRegularHoursPerDay = 8.0
	// RegularRate is the cost multiplier for regular hours.
	RegularRate = 1.0
	// OvertimeRate is the cost multiplier for overtime hours.
	OvertimeRate = 1.3
)

// Employee holds the skills, committed assignments and running hour totals
// of a single crew member. Hour totals always equal the sum of the
// per-assignment splits recorded at commit time.
type Employee struct {
	ID                  int
	Name                string
	Skills              []SkillType
	RegularHoursWorked  float64
	OvertimeHoursWorked float64
	Assignments         []Assignment
	UnavailableSlots    []TimeSlot
}

// NewEmployee builds an employee with no committed work.
func NewEmployee(id int, name string, skills []SkillType) *Employee {
	return &Employee{ID: id, Name: name, Skills: skills}
}

// HasSkill reports whether the employee holds the given skill.
func (e *Employee) HasSkill(skill SkillType) bool {
	for _, s := range e.Skills {
		if s == skill {
			return true
		}
	}
	return false
}

// IsAvailable reports whether the slot is free of both unavailability
// windows and committed assignments. Pure, no mutation.
func (e *Employee) IsAvailable(slot TimeSlot) bool {
	for _, u := range e.UnavailableSlots {
		if slot.Overlaps(u) {
			return false
		}
	}
	for _, a := range e.Assignments {
		if slot.Overlaps(a.TimeSlot) {
			return false
		}
	}
	return true
}

// DailyHours sums the durations of assignments already committed on the
// calendar date of day.
func (e *Employee) DailyHours(day time.Time) float64 {
	total := 0.0
	for _, a := range e.Assignments {
		if sameDay(a.TimeSlot.Start, day) {
			total += a.TimeSlot.DurationHours()
		}
	}
	return total
}

// commit atomically checks availability, records the assignment and
// accumulates the regular/overtime split. The split uses the hours already
// committed on the same day: it is order-dependent per assignment although
// the same-day totals are not. No state changes on error.
func (e *Employee) commit(a *Assignment) error {
	if !e.IsAvailable(a.TimeSlot) {
		return fmt.Errorf("employee %d (%s) for %s: %w", e.ID, e.Name, a.TimeSlot, ErrEmployeeUnavailable)
	}

	hours := a.TimeSlot.DurationHours()
	prior := e.DailyHours(a.TimeSlot.Start)

	var regular, overtime float64
	if prior <= MaxRegularHoursPerDay {
		regular = MaxRegularHoursPerDay - prior
		if regular > hours {
			regular = hours
		}
		overtime = hours - regular
	} else {
		overtime = hours
	}

	a.RegularHours = regular
	a.OvertimeHours = overtime
	e.Assignments = append(e.Assignments, *a)
	e.RegularHoursWorked += regular
	e.OvertimeHoursWorked += overtime
	return nil
}

// TotalHours returns regular plus overtime hours.
func (e *Employee) TotalHours() float64 {
	return e.RegularHoursWorked + e.OvertimeHoursWorked
}

// TotalCost returns the cost of all committed hours.
func (e *Employee) TotalCost() float64 {
	return e.RegularHoursWorked*RegularRate + e.OvertimeHoursWorked*OvertimeRate
}

// UtilizationRate returns worked hours as a percentage of the available
// hours in the analysis period.
func (e *Employee) UtilizationRate(totalAvailableHours float64) float64 {
	if totalAvailableHours <= 0 {
		return 0
	}
	return e.TotalHours() / totalAvailableHours * 100
}

// OvertimePercentage returns the overtime share of all worked hours.
func (e *Employee) OvertimePercentage() float64 {
	total := e.TotalHours()
	if total <= 0 {
		return 0
	}
	return e.OvertimeHoursWorked / total * 100
}

func (e *Employee) String() string {
	return fmt.Sprintf("Employee(id=%d, name=%q, skills=%d)", e.ID, e.Name, len(e.Skills))
}
