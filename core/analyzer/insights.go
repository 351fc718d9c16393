package analyzer

import (
	"fmt"
	"sort"
	"time"

	"github.com/kilianp07/crewsched/core/model"
)

const (
	skillShortageRatio   = 1.5
	dailyProjectCapacity = 5
	imbalanceFactor      = 1.5
	overtimeSharePct     = 10.0
)

// EmployeeWorkload is one row of the workload distribution.
type EmployeeWorkload struct {
	EmployeeID         int     `json:"employeeId"`
	EmployeeName       string  `json:"employeeName"`
	TotalHours         float64 `json:"totalHours"`
	RegularHours       float64 `json:"regularHours"`
	OvertimeHours      float64 `json:"overtimeHours"`
	OvertimePercentage float64 `json:"overtimePercentage"`
	NumAssignments     int     `json:"numAssignments"`
}

// WorkloadDistribution summarises how hours spread across the workforce,
// sorted by total hours descending.
type WorkloadDistribution struct {
	Distribution []EmployeeWorkload `json:"distribution"`
	TotalHours   float64            `json:"totalHours"`
	AverageHours float64            `json:"averageHours"`
	MaxHours     float64            `json:"maxHours"`
	MinHours     float64            `json:"minHours"`
}

// AnalyzeWorkload folds per-employee hours into a distribution. An empty
// workforce yields a zero distribution.
func AnalyzeWorkload(s *model.Schedule) WorkloadDistribution {
	employees := s.Employees()
	if len(employees) == 0 {
		return WorkloadDistribution{}
	}

	var d WorkloadDistribution
	for _, e := range employees {
		d.Distribution = append(d.Distribution, EmployeeWorkload{
			EmployeeID:         e.ID,
			EmployeeName:       e.Name,
			TotalHours:         e.TotalHours(),
			RegularHours:       e.RegularHoursWorked,
			OvertimeHours:      e.OvertimeHoursWorked,
			OvertimePercentage: e.OvertimePercentage(),
			NumAssignments:     len(e.Assignments),
		})
		d.TotalHours += e.TotalHours()
	}
	sort.SliceStable(d.Distribution, func(i, j int) bool {
		return d.Distribution[i].TotalHours > d.Distribution[j].TotalHours
	})
	d.AverageHours = d.TotalHours / float64(len(d.Distribution))
	d.MaxHours = d.Distribution[0].TotalHours
	d.MinHours = d.Distribution[len(d.Distribution)-1].TotalHours
	return d
}

// SkillDemand counts project demand against workforce supply for one skill.
// Utilized counts employees holding the skill with at least one assignment.
type SkillDemand struct {
	Required  int `json:"required"`
	Available int `json:"available"`
	Utilized  int `json:"utilized"`
}

// AnalyzeSkillDemand tallies demand and supply per skill.
func AnalyzeSkillDemand(s *model.Schedule) map[model.SkillType]SkillDemand {
	demand := make(map[model.SkillType]SkillDemand)
	for _, p := range s.Projects() {
		for _, skill := range p.RequiredSkills {
			d := demand[skill]
			d.Required++
			demand[skill] = d
		}
	}
	for _, e := range s.Employees() {
		for _, skill := range e.Skills {
			d := demand[skill]
			d.Available++
			if len(e.Assignments) > 0 {
				d.Utilized++
			}
			demand[skill] = d
		}
	}
	return demand
}

// BottleneckType classifies a scheduling bottleneck.
type BottleneckType string

const (
	BottleneckSkillShortage  BottleneckType = "skill_shortage"
	BottleneckTimeCongestion BottleneckType = "time_congestion"
)

// Bottleneck flags a skill shortage or a congested day. Skill fields are set
// for shortages, date fields for congestion.
type Bottleneck struct {
	Type            BottleneckType  `json:"type"`
	Skill           model.SkillType `json:"skill,omitempty"`
	Required        int             `json:"required,omitempty"`
	Available       int             `json:"available,omitempty"`
	Ratio           float64         `json:"ratio,omitempty"`
	Date            string          `json:"date,omitempty"`
	NumProjects     int             `json:"numProjects,omitempty"`
	EmployeesNeeded int             `json:"totalEmployeesNeeded,omitempty"`
}

// IdentifyBottlenecks flags skills whose demand exceeds supply by more than
// half and days with more projects than the workforce can plausibly cover.
// Output order is deterministic: skills in canonical order, then days sorted.
func IdentifyBottlenecks(s *model.Schedule) []Bottleneck {
	var out []Bottleneck

	demand := AnalyzeSkillDemand(s)
	for _, skill := range model.AllSkills() {
		d := demand[skill]
		if d.Available == 0 {
			continue
		}
		ratio := float64(d.Required) / float64(d.Available)
		if ratio > skillShortageRatio {
			out = append(out, Bottleneck{
				Type:      BottleneckSkillShortage,
				Skill:     skill,
				Required:  d.Required,
				Available: d.Available,
				Ratio:     ratio,
			})
		}
	}

	perDay := make(map[string]int)
	for _, p := range s.Projects() {
		day := p.TimeSlot.Start.Format(time.DateOnly)
		perDay[day]++
	}
	days := make([]string, 0, len(perDay))
	for day := range perDay {
		days = append(days, day)
	}
	sort.Strings(days)
	for _, day := range days {
		if n := perDay[day]; n > dailyProjectCapacity {
			out = append(out, Bottleneck{
				Type:            BottleneckTimeCongestion,
				Date:            day,
				NumProjects:     n,
				EmployeesNeeded: n * model.RequiredProjectSkills,
			})
		}
	}
	return out
}

// Recommendations turns workload, overtime, bottleneck and idle-staff
// findings into human-readable suggestions.
func Recommendations(s *model.Schedule) []string {
	var recs []string

	workload := AnalyzeWorkload(s)
	if len(workload.Distribution) > 0 && workload.MaxHours > workload.AverageHours*imbalanceFactor {
		recs = append(recs, fmt.Sprintf(
			"Workload imbalance detected: Top employee has %.1f hours vs average of %.1f hours. Consider redistributing assignments.",
			workload.MaxHours, workload.AverageHours))
	}

	var regular, overtime float64
	for _, e := range s.Employees() {
		regular += e.RegularHoursWorked
		overtime += e.OvertimeHoursWorked
	}
	if overtime > 0 {
		pct := overtime / (regular + overtime) * 100
		if pct > overtimeSharePct {
			recs = append(recs, fmt.Sprintf(
				"High overtime usage (%.1f%%). Consider hiring additional staff to reduce overtime costs.", pct))
		}
	}

	for _, b := range IdentifyBottlenecks(s) {
		switch b.Type {
		case BottleneckSkillShortage:
			recs = append(recs, fmt.Sprintf(
				"Skill shortage in %s: %d positions needed but only %d available. Consider hiring or training employees in this skill.",
				b.Skill, b.Required, b.Available))
		case BottleneckTimeCongestion:
			recs = append(recs, fmt.Sprintf(
				"Time congestion on %s: %d projects scheduled. Consider rescheduling non-fixed events if possible.",
				b.Date, b.NumProjects))
		}
	}

	idle := 0
	for _, e := range s.Employees() {
		if len(e.Assignments) == 0 {
			idle++
		}
	}
	if idle > 0 {
		recs = append(recs, fmt.Sprintf(
			"%d employees have no assignments. Consider reducing workforce or finding additional projects.", idle))
	}

	return recs
}
