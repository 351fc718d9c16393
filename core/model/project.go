package model

import "fmt"

// RequiredProjectSkills is the number of distinct skills every project needs.
const RequiredProjectSkills = 5

// Project is a production that needs one employee per required skill within
// a fixed time window. Assigned employees are referenced by id; the Schedule
// arena owns both sides.
type Project struct {
	ID                  int
	Name                string
	TimeSlot            TimeSlot
	RequiredSkills      []SkillType
	AssignedEmployeeIDs []int
	Status              ProjectStatus
	Priority            int
	IsFixed             bool
}

// NewProject builds a validated project in Pending state. The skill set must
// contain exactly five distinct skills and the slot must be well formed; no
// partial entity is created otherwise.
func NewProject(id int, name string, slot TimeSlot, required []SkillType, priority int, fixed bool) (*Project, error) {
	if err := slot.Validate(); err != nil {
		return nil, fmt.Errorf("project %d: %w", id, err)
	}
	if len(required) != RequiredProjectSkills {
		return nil, fmt.Errorf("project %d: got %d skills: %w", id, len(required), ErrInvalidProjectSkillSet)
	}
	seen := make(map[SkillType]bool, RequiredProjectSkills)
	for _, s := range required {
		if seen[s] {
			return nil, fmt.Errorf("project %d: duplicate skill %s: %w", id, s, ErrInvalidProjectSkillSet)
		}
		seen[s] = true
	}
	return &Project{
		ID:             id,
		Name:           name,
		TimeSlot:       slot,
		RequiredSkills: required,
		Status:         StatusPending,
		Priority:       priority,
		IsFixed:        fixed,
	}, nil
}

// IsFullyStaffed reports whether all five positions are filled.
func (p *Project) IsFullyStaffed() bool {
	return len(p.AssignedEmployeeIDs) == RequiredProjectSkills
}

// HasAssignee reports whether the employee is already assigned.
func (p *Project) HasAssignee(employeeID int) bool {
	for _, id := range p.AssignedEmployeeIDs {
		if id == employeeID {
			return true
		}
	}
	return false
}

func (p *Project) String() string {
	return fmt.Sprintf("Project(id=%d, name=%q, staffed=%d/%d)", p.ID, p.Name, len(p.AssignedEmployeeIDs), RequiredProjectSkills)
}
