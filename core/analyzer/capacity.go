// Package analyzer derives capacity, cost and workload insights from a
// scheduled arena. All folds are read-only.
package analyzer

import (
	"fmt"
	"sort"

	"gonum.org/v1/gonum/stat"

	"github.com/kilianp07/crewsched/core/model"
)

const (
	// DefaultAnalysisPeriodDays spans a full year of eight-hour days.
	DefaultAnalysisPeriodDays = 365
	// DefaultUnderutilizationThreshold flags employees below this utilization percentage.
	DefaultUnderutilizationThreshold = 50.0
	// DefaultOvertimeThreshold flags employees above this overtime share percentage.
	DefaultOvertimeThreshold = 20.0

	highOvertimeSharePct = 15.0
	lowUtilizationPct    = 60.0
	reportTopN           = 5
)

// UtilizationMetrics summarises one employee's workload over the analysis period.
type UtilizationMetrics struct {
	EmployeeID         int     `json:"employeeId"`
	EmployeeName       string  `json:"employeeName"`
	TotalHours         float64 `json:"totalHours"`
	RegularHours       float64 `json:"regularHours"`
	OvertimeHours      float64 `json:"overtimeHours"`
	UtilizationRate    float64 `json:"utilizationRate"`
	OvertimePercentage float64 `json:"overtimePercentage"`
	NumAssignments     int     `json:"numAssignments"`
	TotalCost          float64 `json:"totalCost"`
}

// TeamMetrics aggregates utilization across the whole workforce.
type TeamMetrics struct {
	TotalEmployees         int     `json:"totalEmployees"`
	ActiveEmployees        int     `json:"activeEmployees"`
	IdleEmployees          int     `json:"idleEmployees"`
	TotalHoursWorked       float64 `json:"totalHoursWorked"`
	TotalRegularHours      float64 `json:"totalRegularHours"`
	TotalOvertimeHours     float64 `json:"totalOvertimeHours"`
	AverageUtilization     float64 `json:"averageUtilization"`
	UtilizationStdDev      float64 `json:"utilizationStdDev"`
	TotalCost              float64 `json:"totalCost"`
	AverageCostPerEmployee float64 `json:"averageCostPerEmployee"`
}

// CostAnalysis breaks the total cost into regular and overtime components.
type CostAnalysis struct {
	TotalCost              float64 `json:"totalCost"`
	RegularCost            float64 `json:"regularCost"`
	OvertimeCost           float64 `json:"overtimeCost"`
	OvertimeCostPercentage float64 `json:"overtimeCostPercentage"`
	CostPerProject         float64 `json:"costPerProject"`
	CostPerHour            float64 `json:"costPerHour"`
}

// ScenarioCosts describes the cost picture of one staffing scenario.
type ScenarioCosts struct {
	TotalCost     float64 `json:"totalCost"`
	OvertimeCost  float64 `json:"overtimeCost"`
	OvertimeHours float64 `json:"overtimeHours"`
}

// HiringScenario projects the effect of adding employees at regular rates.
type HiringScenario struct {
	AdditionalEmployees     int     `json:"additionalEmployees"`
	HiringCost              float64 `json:"hiringCost"`
	OvertimeEliminatedHours float64 `json:"overtimeEliminatedHours"`
	OvertimeSavings         float64 `json:"overtimeSavings"`
	NetCostDifference       float64 `json:"netCostDifference"`
	TotalCost               float64 `json:"totalCost"`
}

// OvertimeComparison weighs paying overtime against hiring additional staff.
// BreakevenEmployees is zero when there is no overtime to eliminate.
type OvertimeComparison struct {
	Current            ScenarioCosts  `json:"currentScenario"`
	Hiring             HiringScenario `json:"hiringScenario"`
	Recommendation     string         `json:"recommendation"`
	BreakevenEmployees float64        `json:"breakevenEmployees"`
	CostBenefitRatio   float64        `json:"costBenefitRatio"`
}

// WorkforceRecommendation is a sizing suggestion with its justification.
type WorkforceRecommendation struct {
	CurrentHeadcount          int     `json:"currentHeadcount"`
	RecommendedHeadcount      int     `json:"recommendedHeadcount"`
	Reasoning                 string  `json:"reasoning"`
	ExpectedCostImpact        float64 `json:"expectedCostImpact"`
	ExpectedOvertimeReduction float64 `json:"expectedOvertimeReduction"`
	ConfidenceLevel           string  `json:"confidenceLevel"`
}

// ReportSummary is the headline block of a capacity report.
type ReportSummary struct {
	AnalysisPeriodDays     int     `json:"analysisPeriodDays"`
	TotalEmployees         int     `json:"totalEmployees"`
	ActiveEmployees        int     `json:"activeEmployees"`
	IdleEmployees          int     `json:"idleEmployees"`
	AverageUtilization     float64 `json:"averageUtilization"`
	TotalCost              float64 `json:"totalCost"`
	OvertimeCostPercentage float64 `json:"overtimeCostPercentage"`
}

// CapacityReport bundles every capacity fold into one document.
type CapacityReport struct {
	Summary          ReportSummary           `json:"summary"`
	TeamMetrics      TeamMetrics             `json:"teamMetrics"`
	CostAnalysis     CostAnalysis            `json:"costAnalysis"`
	WorkforceSizing  WorkforceRecommendation `json:"workforceSizing"`
	TopUtilized      []UtilizationMetrics    `json:"topUtilizedEmployees"`
	Underutilized    []UtilizationMetrics    `json:"underutilizedEmployees"`
	Overworked       []UtilizationMetrics    `json:"overworkedEmployees"`
	OvertimeVsHiring OvertimeComparison      `json:"overtimeVsHiring"`
}

// CapacityAnalyzer folds capacity metrics over a schedule for a fixed
// analysis period of eight-hour days.
type CapacityAnalyzer struct {
	schedule    *model.Schedule
	periodDays  int
	periodHours float64
}

// NewCapacityAnalyzer builds an analyzer over the schedule. A non-positive
// period falls back to DefaultAnalysisPeriodDays.
func NewCapacityAnalyzer(s *model.Schedule, periodDays int) *CapacityAnalyzer {
	if periodDays <= 0 {
		periodDays = DefaultAnalysisPeriodDays
	}
	return &CapacityAnalyzer{
		schedule:    s,
		periodDays:  periodDays,
		periodHours: float64(periodDays) * model.MaxRegularHoursPerDay,
	}
}

// EmployeeUtilization computes the utilization metrics for one employee.
func (a *CapacityAnalyzer) EmployeeUtilization(e *model.Employee) UtilizationMetrics {
	return UtilizationMetrics{
		EmployeeID:         e.ID,
		EmployeeName:       e.Name,
		TotalHours:         e.TotalHours(),
		RegularHours:       e.RegularHoursWorked,
		OvertimeHours:      e.OvertimeHoursWorked,
		UtilizationRate:    e.UtilizationRate(a.periodHours),
		OvertimePercentage: e.OvertimePercentage(),
		NumAssignments:     len(e.Assignments),
		TotalCost:          e.TotalCost(),
	}
}

// TeamUtilization aggregates utilization across all employees. The standard
// deviation is the sample deviation and zero for fewer than two employees.
func (a *CapacityAnalyzer) TeamUtilization() TeamMetrics {
	employees := a.schedule.Employees()
	if len(employees) == 0 {
		return TeamMetrics{}
	}

	var m TeamMetrics
	m.TotalEmployees = len(employees)
	rates := make([]float64, 0, len(employees))
	for _, e := range employees {
		if len(e.Assignments) > 0 {
			m.ActiveEmployees++
		}
		m.TotalRegularHours += e.RegularHoursWorked
		m.TotalOvertimeHours += e.OvertimeHoursWorked
		rates = append(rates, e.UtilizationRate(a.periodHours))
	}
	m.IdleEmployees = m.TotalEmployees - m.ActiveEmployees
	m.TotalHoursWorked = m.TotalRegularHours + m.TotalOvertimeHours
	m.AverageUtilization = stat.Mean(rates, nil)
	if len(rates) > 1 {
		m.UtilizationStdDev = stat.StdDev(rates, nil)
	}
	m.TotalCost = a.schedule.TotalCost()
	m.AverageCostPerEmployee = m.TotalCost / float64(m.TotalEmployees)
	return m
}

// UnderutilizedEmployees returns employees below the utilization threshold,
// least utilized first.
func (a *CapacityAnalyzer) UnderutilizedEmployees(threshold float64) []UtilizationMetrics {
	var out []UtilizationMetrics
	for _, e := range a.schedule.Employees() {
		if m := a.EmployeeUtilization(e); m.UtilizationRate < threshold {
			out = append(out, m)
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].UtilizationRate < out[j].UtilizationRate })
	return out
}

// OverworkedEmployees returns employees above the overtime-share threshold,
// highest share first.
func (a *CapacityAnalyzer) OverworkedEmployees(overtimeThreshold float64) []UtilizationMetrics {
	var out []UtilizationMetrics
	for _, e := range a.schedule.Employees() {
		if m := a.EmployeeUtilization(e); m.OvertimePercentage > overtimeThreshold {
			out = append(out, m)
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].OvertimePercentage > out[j].OvertimePercentage })
	return out
}

// AnalyzeCosts breaks the schedule cost into regular and overtime parts.
// Cost per project divides by fully staffed projects only.
func (a *CapacityAnalyzer) AnalyzeCosts() CostAnalysis {
	var regularHours, overtimeHours float64
	for _, e := range a.schedule.Employees() {
		regularHours += e.RegularHoursWorked
		overtimeHours += e.OvertimeHoursWorked
	}

	c := CostAnalysis{
		RegularCost:  regularHours * model.RegularRate,
		OvertimeCost: overtimeHours * model.OvertimeRate,
	}
	c.TotalCost = c.RegularCost + c.OvertimeCost
	if c.TotalCost > 0 {
		c.OvertimeCostPercentage = c.OvertimeCost / c.TotalCost * 100
	}

	staffed := 0
	for _, p := range a.schedule.Projects() {
		if p.IsFullyStaffed() {
			staffed++
		}
	}
	if staffed > 0 {
		c.CostPerProject = c.TotalCost / float64(staffed)
	}
	if totalHours := regularHours + overtimeHours; totalHours > 0 {
		c.CostPerHour = c.TotalCost / totalHours
	}
	return c
}

// CompareOvertimeVsHiring projects the cost of hiring additional employees
// against the current overtime bill.
func (a *CapacityAnalyzer) CompareOvertimeVsHiring(additionalEmployees int) OvertimeComparison {
	costs := a.AnalyzeCosts()

	var overtimeHours float64
	for _, e := range a.schedule.Employees() {
		overtimeHours += e.OvertimeHoursWorked
	}

	eliminated := overtimeHours
	if limit := float64(additionalEmployees) * a.periodHours; eliminated > limit {
		eliminated = limit
	}
	savings := eliminated * (model.OvertimeRate - model.RegularRate)
	hiringCost := float64(additionalEmployees) * a.periodHours * model.RegularRate
	netDifference := hiringCost - savings

	cmp := OvertimeComparison{
		Current: ScenarioCosts{
			TotalCost:     costs.TotalCost,
			OvertimeCost:  costs.OvertimeCost,
			OvertimeHours: overtimeHours,
		},
		Hiring: HiringScenario{
			AdditionalEmployees:     additionalEmployees,
			HiringCost:              hiringCost,
			OvertimeEliminatedHours: eliminated,
			OvertimeSavings:         savings,
			NetCostDifference:       netDifference,
			TotalCost:               costs.TotalCost + netDifference,
		},
		Recommendation: "overtime",
	}
	if netDifference < 0 {
		cmp.Recommendation = "hire"
	}
	if savings > 0 {
		cmp.BreakevenEmployees = costs.OvertimeCost / (a.periodHours * model.RegularRate)
	}
	if hiringCost > 0 {
		cmp.CostBenefitRatio = savings / hiringCost
	}
	return cmp
}

// RecommendWorkforceSize suggests a headcount change. High overtime share
// suggests hiring, low average utilization suggests reduction, and a
// balanced workforce is confirmed as-is.
func (a *CapacityAnalyzer) RecommendWorkforceSize() WorkforceRecommendation {
	headcount := len(a.schedule.Employees())
	team := a.TeamUtilization()
	costs := a.AnalyzeCosts()

	if team.TotalOvertimeHours > 0 && team.TotalHoursWorked > 0 {
		overtimePct := team.TotalOvertimeHours / team.TotalHoursWorked * 100
		if overtimePct > highOvertimeSharePct {
			additional := int(team.TotalOvertimeHours/a.periodHours + 0.5)
			recommended := headcount + additional
			cmp := a.CompareOvertimeVsHiring(additional)
			confidence := "medium"
			if overtimePct > 20 {
				confidence = "high"
			}
			return WorkforceRecommendation{
				CurrentHeadcount:     headcount,
				RecommendedHeadcount: recommended,
				Reasoning: fmt.Sprintf("High overtime (%.1f%%) detected. Hiring %d additional employees would reduce overtime and potentially lower costs.",
					overtimePct, recommended-headcount),
				ExpectedCostImpact:        cmp.Hiring.NetCostDifference,
				ExpectedOvertimeReduction: cmp.Hiring.OvertimeEliminatedHours,
				ConfidenceLevel:           confidence,
			}
		}
	}

	if team.AverageUtilization < lowUtilizationPct {
		optimal := int(team.TotalHoursWorked/a.periodHours + 0.5)
		if reduction := headcount - optimal; reduction > 0 {
			return WorkforceRecommendation{
				CurrentHeadcount:     headcount,
				RecommendedHeadcount: optimal,
				Reasoning: fmt.Sprintf("Low average utilization (%.1f%%). Workforce could be reduced by %d employees.",
					team.AverageUtilization, reduction),
				ExpectedCostImpact: -float64(reduction) * team.AverageCostPerEmployee,
				ConfidenceLevel:    "medium",
			}
		}
	}

	return WorkforceRecommendation{
		CurrentHeadcount:     headcount,
		RecommendedHeadcount: headcount,
		Reasoning: fmt.Sprintf("Current workforce size is appropriate. Average utilization is %.1f%% with %.1f%% overtime costs.",
			team.AverageUtilization, costs.OvertimeCostPercentage),
		ConfidenceLevel: "high",
	}
}

// Report assembles the full capacity report.
func (a *CapacityAnalyzer) Report() CapacityReport {
	team := a.TeamUtilization()
	costs := a.AnalyzeCosts()
	sizing := a.RecommendWorkforceSize()

	all := make([]UtilizationMetrics, 0, len(a.schedule.Employees()))
	for _, e := range a.schedule.Employees() {
		all = append(all, a.EmployeeUtilization(e))
	}
	sort.SliceStable(all, func(i, j int) bool { return all[i].UtilizationRate > all[j].UtilizationRate })

	top := all
	if len(top) > reportTopN {
		top = top[:reportTopN]
	}

	return CapacityReport{
		Summary: ReportSummary{
			AnalysisPeriodDays:     a.periodDays,
			TotalEmployees:         team.TotalEmployees,
			ActiveEmployees:        team.ActiveEmployees,
			IdleEmployees:          team.IdleEmployees,
			AverageUtilization:     team.AverageUtilization,
			TotalCost:              costs.TotalCost,
			OvertimeCostPercentage: costs.OvertimeCostPercentage,
		},
		TeamMetrics:      team,
		CostAnalysis:     costs,
		WorkforceSizing:  sizing,
		TopUtilized:      top,
		Underutilized:    a.UnderutilizedEmployees(DefaultUnderutilizationThreshold),
		Overworked:       a.OverworkedEmployees(DefaultOvertimeThreshold),
		OvertimeVsHiring: a.CompareOvertimeVsHiring(1),
	}
}
