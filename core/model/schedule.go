package model

import (
	"fmt"
	"sort"
)

// Schedule is the aggregate root owning every employee and project of one
// scheduling run, keyed by unique integer id. All assignment commits go
// through the arena so both back-references stay consistent.
type Schedule struct {
	employees     map[int]*Employee
	projects      map[int]*Project
	employeeOrder []int
	projectOrder  []int
}

// NewSchedule returns an empty arena.
func NewSchedule() *Schedule {
	return &Schedule{
		employees: make(map[int]*Employee),
		projects:  make(map[int]*Project),
	}
}

// AddEmployee registers an employee, rejecting duplicate ids.
func (s *Schedule) AddEmployee(e *Employee) error {
	if _, ok := s.employees[e.ID]; ok {
		return fmt.Errorf("employee %d: %w", e.ID, ErrDuplicateEntityID)
	}
	s.employees[e.ID] = e
	s.employeeOrder = append(s.employeeOrder, e.ID)
	return nil
}

// AddProject registers a project, rejecting duplicate ids.
func (s *Schedule) AddProject(p *Project) error {
	if _, ok := s.projects[p.ID]; ok {
		return fmt.Errorf("project %d: %w", p.ID, ErrDuplicateEntityID)
	}
	s.projects[p.ID] = p
	s.projectOrder = append(s.projectOrder, p.ID)
	return nil
}

// EmployeeByID returns the employee or nil.
func (s *Schedule) EmployeeByID(id int) *Employee { return s.employees[id] }

// ProjectByID returns the project or nil.
func (s *Schedule) ProjectByID(id int) *Project { return s.projects[id] }

// Employees returns all employees in insertion order.
func (s *Schedule) Employees() []*Employee {
	out := make([]*Employee, 0, len(s.employeeOrder))
	for _, id := range s.employeeOrder {
		out = append(out, s.employees[id])
	}
	return out
}

// Projects returns all projects in insertion order.
func (s *Schedule) Projects() []*Project {
	out := make([]*Project, 0, len(s.projectOrder))
	for _, id := range s.projectOrder {
		out = append(out, s.projects[id])
	}
	return out
}

// EmployeesWithSkillAvailableAt returns the employees holding the skill and
// free for the slot, in insertion order.
func (s *Schedule) EmployeesWithSkillAvailableAt(skill SkillType, slot TimeSlot) []*Employee {
	var out []*Employee
	for _, id := range s.employeeOrder {
		e := s.employees[id]
		if e.HasSkill(skill) && e.IsAvailable(slot) {
			out = append(out, e)
		}
	}
	return out
}

// UnscheduledProjects returns the projects that are not fully staffed.
func (s *Schedule) UnscheduledProjects() []*Project {
	var out []*Project
	for _, id := range s.projectOrder {
		if p := s.projects[id]; !p.IsFullyStaffed() {
			out = append(out, p)
		}
	}
	return out
}

// MissingSkills returns the required skills not yet covered by any assigned
// employee, in declaration order. One employee may cover several skills.
func (s *Schedule) MissingSkills(p *Project) []SkillType {
	var missing []SkillType
	for _, skill := range p.RequiredSkills {
		covered := false
		for _, id := range p.AssignedEmployeeIDs {
			if e := s.employees[id]; e != nil && e.HasSkill(skill) {
				covered = true
				break
			}
		}
		if !covered {
			missing = append(missing, skill)
		}
	}
	return missing
}

// CanAssign reports whether the employee may join the project: not already
// assigned, project not full, employee covers a currently missing skill and
// is free for the project's slot.
func (s *Schedule) CanAssign(p *Project, e *Employee) bool {
	if p.HasAssignee(e.ID) || p.IsFullyStaffed() {
		return false
	}
	covers := false
	for _, skill := range s.MissingSkills(p) {
		if e.HasSkill(skill) {
			covers = true
			break
		}
	}
	if !covers {
		return false
	}
	return e.IsAvailable(p.TimeSlot)
}

// Assign commits the employee to the project for the project's slot. The
// availability check and the mutation form one atomic step: nothing changes
// on rejection. The project flips to Scheduled exactly when the fifth
// employee joins.
func (s *Schedule) Assign(projectID, employeeID int) (Assignment, error) {
	p := s.projects[projectID]
	e := s.employees[employeeID]
	if p == nil || e == nil {
		return Assignment{}, fmt.Errorf("project %d / employee %d not in schedule: %w",
			projectID, employeeID, ErrAssignmentNotPermitted)
	}
	if !s.CanAssign(p, e) {
		return Assignment{}, fmt.Errorf("employee %d (%s) to project %d (%s): %w",
			e.ID, e.Name, p.ID, p.Name, ErrAssignmentNotPermitted)
	}

	a := Assignment{EmployeeID: e.ID, ProjectID: p.ID, TimeSlot: p.TimeSlot}
	if err := e.commit(&a); err != nil {
		return Assignment{}, err
	}
	p.AssignedEmployeeIDs = append(p.AssignedEmployeeIDs, e.ID)
	if p.IsFullyStaffed() {
		p.Status = StatusScheduled
	}
	return a, nil
}

// RestoreAssignment replays a persisted assignment record. It commits on the
// employee side with the usual availability check and hours split, and
// attaches the employee to the project without re-running the coverage rule,
// which only holds in the original commit order.
func (s *Schedule) RestoreAssignment(employeeID, projectID int, slot TimeSlot) (Assignment, error) {
	p := s.projects[projectID]
	e := s.employees[employeeID]
	if p == nil || e == nil {
		return Assignment{}, fmt.Errorf("project %d / employee %d not in schedule: %w",
			projectID, employeeID, ErrAssignmentNotPermitted)
	}
	if !p.HasAssignee(employeeID) && len(p.AssignedEmployeeIDs) >= RequiredProjectSkills {
		return Assignment{}, fmt.Errorf("project %d (%s) already has %d assignees: %w",
			p.ID, p.Name, len(p.AssignedEmployeeIDs), ErrAssignmentNotPermitted)
	}
	a := Assignment{EmployeeID: employeeID, ProjectID: projectID, TimeSlot: slot}
	if err := e.commit(&a); err != nil {
		return Assignment{}, err
	}
	if !p.HasAssignee(employeeID) {
		p.AssignedEmployeeIDs = append(p.AssignedEmployeeIDs, employeeID)
		if p.IsFullyStaffed() {
			p.Status = StatusScheduled
		}
	}
	return a, nil
}

// ProjectCost sums the total cost of all employees assigned to the project.
func (s *Schedule) ProjectCost(p *Project) float64 {
	total := 0.0
	for _, id := range p.AssignedEmployeeIDs {
		if e := s.employees[id]; e != nil {
			total += e.TotalCost()
		}
	}
	return total
}

// TotalCost sums the cost of every employee in the schedule.
func (s *Schedule) TotalCost() float64 {
	total := 0.0
	for _, e := range s.employees {
		total += e.TotalCost()
	}
	return total
}

// ValidationStats summarises a validation pass.
type ValidationStats struct {
	TotalEmployees       int `json:"totalEmployees"`
	TotalProjects        int `json:"totalProjects"`
	FullyStaffedProjects int `json:"fullyStaffedProjects"`
	TotalAssignments     int `json:"totalAssignments"`
}

// ValidationResult reports the outcome of Validate.
type ValidationResult struct {
	Valid    bool            `json:"valid"`
	Errors   []string        `json:"errors"`
	Warnings []string        `json:"warnings"`
	Stats    ValidationStats `json:"stats"`
}

// Validate runs a read-only consistency check over the whole schedule. It is
// idempotent and may be re-run any number of times. Every adjacent
// overlapping assignment pair is reported, not just the first.
func (s *Schedule) Validate() ValidationResult {
	res := ValidationResult{Valid: true}

	for _, id := range s.employeeOrder {
		e := s.employees[id]
		sorted := make([]Assignment, len(e.Assignments))
		copy(sorted, e.Assignments)
		sort.Slice(sorted, func(i, j int) bool {
			return sorted[i].TimeSlot.Start.Before(sorted[j].TimeSlot.Start)
		})
		for i := 0; i+1 < len(sorted); i++ {
			if sorted[i].TimeSlot.Overlaps(sorted[i+1].TimeSlot) {
				res.Valid = false
				res.Errors = append(res.Errors, fmt.Sprintf(
					"employee %s has overlapping assignments: %s and %s",
					e.Name, s.projectName(sorted[i].ProjectID), s.projectName(sorted[i+1].ProjectID)))
			}
		}
	}

	staffed := 0
	for _, id := range s.projectOrder {
		p := s.projects[id]
		if p.IsFullyStaffed() {
			staffed++
			for _, skill := range s.MissingSkills(p) {
				res.Valid = false
				res.Errors = append(res.Errors, fmt.Sprintf(
					"project %s is fully staffed but skill %s is not covered", p.Name, skill))
			}
		}
	}
	if unstaffed := len(s.projectOrder) - staffed; unstaffed > 0 {
		res.Warnings = append(res.Warnings, fmt.Sprintf("%d projects are not fully staffed", unstaffed))
	}

	assignments := 0
	for _, e := range s.employees {
		assignments += len(e.Assignments)
	}
	res.Stats = ValidationStats{
		TotalEmployees:       len(s.employees),
		TotalProjects:        len(s.projects),
		FullyStaffedProjects: staffed,
		TotalAssignments:     assignments,
	}
	return res
}

func (s *Schedule) projectName(id int) string {
	if p := s.projects[id]; p != nil {
		return p.Name
	}
	return fmt.Sprintf("project %d", id)
}

func (s *Schedule) String() string {
	return fmt.Sprintf("Schedule(employees=%d, projects=%d)", len(s.employees), len(s.projects))
}
