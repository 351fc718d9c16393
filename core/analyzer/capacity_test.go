package analyzer

import (
	"math"
	"testing"
	"time"

	"github.com/kilianp07/crewsched/core/model"
)

func addWorker(t *testing.T, s *model.Schedule, id int, name string, regular, overtime float64, assignments int) *model.Employee {
	t.Helper()
	e := model.NewEmployee(id, name, []model.SkillType{model.SkillEditor})
	e.RegularHoursWorked = regular
	e.OvertimeHoursWorked = overtime
	base := time.Date(2026, 6, 1, 9, 0, 0, 0, time.UTC)
	for i := 0; i < assignments; i++ {
		slot, err := model.NewTimeSlot(base.AddDate(0, 0, i), base.AddDate(0, 0, i).Add(4*time.Hour))
		if err != nil {
			t.Fatalf("slot: %v", err)
		}
		e.Assignments = append(e.Assignments, model.Assignment{EmployeeID: id, ProjectID: 1, TimeSlot: slot})
	}
	if err := s.AddEmployee(e); err != nil {
		t.Fatalf("add employee: %v", err)
	}
	return e
}

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestEmployeeUtilization(t *testing.T) {
	s := model.NewSchedule()
	e := addWorker(t, s, 1, "Alice", 40, 10, 3)

	a := NewCapacityAnalyzer(s, 10) // 80 available hours
	m := a.EmployeeUtilization(e)

	if m.TotalHours != 50 {
		t.Errorf("total hours %v", m.TotalHours)
	}
	if !almostEqual(m.UtilizationRate, 62.5) {
		t.Errorf("utilization %v, want 62.5", m.UtilizationRate)
	}
	if !almostEqual(m.OvertimePercentage, 20) {
		t.Errorf("overtime pct %v, want 20", m.OvertimePercentage)
	}
	if !almostEqual(m.TotalCost, 40+10*model.OvertimeRate) {
		t.Errorf("cost %v", m.TotalCost)
	}
}

func TestTeamUtilizationCountsIdleEmployees(t *testing.T) {
	s := model.NewSchedule()
	addWorker(t, s, 1, "Alice", 40, 0, 2)
	addWorker(t, s, 2, "Bob", 0, 0, 0)

	m := NewCapacityAnalyzer(s, 10).TeamUtilization()
	if m.TotalEmployees != 2 || m.ActiveEmployees != 1 || m.IdleEmployees != 1 {
		t.Errorf("headcounts %d/%d/%d", m.TotalEmployees, m.ActiveEmployees, m.IdleEmployees)
	}
	if m.TotalHoursWorked != 40 {
		t.Errorf("hours %v", m.TotalHoursWorked)
	}
	if !almostEqual(m.AverageUtilization, 25) {
		t.Errorf("avg utilization %v, want 25", m.AverageUtilization)
	}
	if m.UtilizationStdDev <= 0 {
		t.Errorf("stddev %v, want > 0", m.UtilizationStdDev)
	}
}

func TestTeamUtilizationEmptySchedule(t *testing.T) {
	m := NewCapacityAnalyzer(model.NewSchedule(), 0).TeamUtilization()
	if m != (TeamMetrics{}) {
		t.Errorf("expected zero metrics, got %+v", m)
	}
}

func TestAnalyzeCostsSplitsRates(t *testing.T) {
	s := model.NewSchedule()
	addWorker(t, s, 1, "Alice", 100, 20, 1)

	c := NewCapacityAnalyzer(s, 0).AnalyzeCosts()
	if !almostEqual(c.RegularCost, 100) || !almostEqual(c.OvertimeCost, 26) {
		t.Errorf("costs %v/%v", c.RegularCost, c.OvertimeCost)
	}
	if !almostEqual(c.TotalCost, 126) {
		t.Errorf("total %v", c.TotalCost)
	}
	if !almostEqual(c.CostPerHour, 126.0/120.0) {
		t.Errorf("cost per hour %v", c.CostPerHour)
	}
	if c.CostPerProject != 0 {
		t.Errorf("cost per project %v with no staffed projects", c.CostPerProject)
	}
}

func TestUnderutilizedAndOverworked(t *testing.T) {
	s := model.NewSchedule()
	addWorker(t, s, 1, "Idle", 4, 0, 1)
	addWorker(t, s, 2, "Busy", 60, 30, 5)

	a := NewCapacityAnalyzer(s, 10)
	under := a.UnderutilizedEmployees(DefaultUnderutilizationThreshold)
	if len(under) != 1 || under[0].EmployeeName != "Idle" {
		t.Errorf("underutilized %+v", under)
	}
	over := a.OverworkedEmployees(DefaultOvertimeThreshold)
	if len(over) != 1 || over[0].EmployeeName != "Busy" {
		t.Errorf("overworked %+v", over)
	}
}

func TestCompareOvertimeVsHiring(t *testing.T) {
	s := model.NewSchedule()
	addWorker(t, s, 1, "Alice", 70, 30, 4)

	// 5-day period: one hire adds 40 regular hours.
	cmp := NewCapacityAnalyzer(s, 5).CompareOvertimeVsHiring(1)
	if !almostEqual(cmp.Current.OvertimeHours, 30) {
		t.Errorf("overtime hours %v", cmp.Current.OvertimeHours)
	}
	if !almostEqual(cmp.Hiring.OvertimeEliminatedHours, 30) {
		t.Errorf("eliminated %v, want all 30", cmp.Hiring.OvertimeEliminatedHours)
	}
	wantSavings := 30 * (model.OvertimeRate - model.RegularRate)
	if !almostEqual(cmp.Hiring.OvertimeSavings, wantSavings) {
		t.Errorf("savings %v, want %v", cmp.Hiring.OvertimeSavings, wantSavings)
	}
	if !almostEqual(cmp.Hiring.HiringCost, 40) {
		t.Errorf("hiring cost %v", cmp.Hiring.HiringCost)
	}
	if cmp.Recommendation != "overtime" {
		t.Errorf("recommendation %q", cmp.Recommendation)
	}
}

func TestRecommendWorkforceSizeHighOvertime(t *testing.T) {
	s := model.NewSchedule()
	addWorker(t, s, 1, "Alice", 60, 40, 4)

	// 5-day period: 40% of 100 worked hours is overtime.
	rec := NewCapacityAnalyzer(s, 5).RecommendWorkforceSize()
	if rec.RecommendedHeadcount <= rec.CurrentHeadcount {
		t.Errorf("expected hiring recommendation, got %+v", rec)
	}
	if rec.ConfidenceLevel != "high" {
		t.Errorf("confidence %q, want high for 40%% overtime", rec.ConfidenceLevel)
	}
}

func TestRecommendWorkforceSizeBalanced(t *testing.T) {
	s := model.NewSchedule()
	addWorker(t, s, 1, "Alice", 60, 0, 4)

	// 10-day period: 75% utilization, no overtime.
	rec := NewCapacityAnalyzer(s, 10).RecommendWorkforceSize()
	if rec.RecommendedHeadcount != rec.CurrentHeadcount {
		t.Errorf("expected steady headcount, got %+v", rec)
	}
}

func TestReportBundlesAllSections(t *testing.T) {
	s := model.NewSchedule()
	for i := 0; i < 7; i++ {
		addWorker(t, s, i+1, "Worker", float64(10*i), 0, i)
	}

	r := NewCapacityAnalyzer(s, 30).Report()
	if r.Summary.TotalEmployees != 7 {
		t.Errorf("summary employees %d", r.Summary.TotalEmployees)
	}
	if len(r.TopUtilized) != 5 {
		t.Errorf("top utilized %d, want capped at 5", len(r.TopUtilized))
	}
	for i := 0; i+1 < len(r.TopUtilized); i++ {
		if r.TopUtilized[i].UtilizationRate < r.TopUtilized[i+1].UtilizationRate {
			t.Errorf("top utilized not sorted descending")
		}
	}
	if r.Summary.TotalCost != r.CostAnalysis.TotalCost {
		t.Errorf("summary cost mismatch")
	}
}
