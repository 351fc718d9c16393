package scheduler

import (
	"gonum.org/v1/gonum/stat"

	"github.com/kilianp07/crewsched/core/model"
)

// Collect folds the final schedule state into run statistics. Utilization
// here is raw worked hours per employee; the spread uses the population
// standard deviation over the whole workforce.
func Collect(s *model.Schedule) Statistics {
	employees := s.Employees()
	stats := Statistics{
		TotalEmployees: len(employees),
		TotalProjects:  len(s.Projects()),
		TotalCost:      s.TotalCost(),
	}

	for _, p := range s.Projects() {
		if p.IsFullyStaffed() {
			stats.FullyStaffedProjects++
		}
	}

	hours := make([]float64, 0, len(employees))
	for _, e := range employees {
		stats.TotalRegularHours += e.RegularHoursWorked
		stats.TotalOvertimeHours += e.OvertimeHoursWorked
		if e.OvertimeHoursWorked > 0 {
			stats.EmployeesWithOvertime++
		}
		hours = append(hours, e.TotalHours())
	}

	if len(hours) > 0 {
		stats.AverageUtilization = stat.Mean(hours, nil)
	}
	if len(hours) > 1 {
		stats.UtilizationStdDev = stat.PopStdDev(hours, nil)
	}
	return stats
}

type nopLogger struct{}

func (nopLogger) Debugf(string, ...any)         {}
func (nopLogger) Debugw(string, map[string]any) {}
func (nopLogger) Infof(string, ...any)          {}
func (nopLogger) Warnf(string, ...any)          {}
func (nopLogger) Errorf(string, ...any)         {}
