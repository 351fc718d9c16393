// Package store persists schedules as JSON interchange documents and
// exports them in tabular form.
package store

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/kilianp07/crewsched/core/model"
)

// Document is the top-level interchange format for a schedule.
type Document struct {
	Employees []EmployeeRecord `json:"employees"`
	Projects  []ProjectRecord  `json:"projects"`
}

// TimeSlotRecord serialises a time window.
type TimeSlotRecord struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

// AssignmentRecord serialises one committed assignment.
type AssignmentRecord struct {
	EmployeeID    int       `json:"employeeId"`
	ProjectID     int       `json:"projectId"`
	TimeSlotStart time.Time `json:"timeSlotStart"`
	TimeSlotEnd   time.Time `json:"timeSlotEnd"`
}

// EmployeeRecord serialises an employee with committed work.
type EmployeeRecord struct {
	ID                  int                `json:"id"`
	Name                string             `json:"name"`
	Skills              []string           `json:"skills"`
	RegularHoursWorked  float64            `json:"regularHoursWorked"`
	OvertimeHoursWorked float64            `json:"overtimeHoursWorked"`
	Assignments         []AssignmentRecord `json:"assignments"`
	UnavailableSlots    []TimeSlotRecord   `json:"unavailableSlots"`
}

// ProjectRecord serialises a project.
type ProjectRecord struct {
	ID                  int            `json:"id"`
	Name                string         `json:"name"`
	TimeSlot            TimeSlotRecord `json:"timeSlot"`
	RequiredSkills      []string       `json:"requiredSkills"`
	AssignedEmployeeIDs []int          `json:"assignedEmployeeIds"`
	Status              string         `json:"status"`
	Priority            int            `json:"priority"`
	IsFixed             bool           `json:"isFixed"`
}

// Snapshot captures the schedule as an interchange document.
func Snapshot(s *model.Schedule) Document {
	doc := Document{
		Employees: make([]EmployeeRecord, 0, len(s.Employees())),
		Projects:  make([]ProjectRecord, 0, len(s.Projects())),
	}
	for _, e := range s.Employees() {
		rec := EmployeeRecord{
			ID:                  e.ID,
			Name:                e.Name,
			Skills:              skillStrings(e.Skills),
			RegularHoursWorked:  e.RegularHoursWorked,
			OvertimeHoursWorked: e.OvertimeHoursWorked,
			Assignments:         make([]AssignmentRecord, 0, len(e.Assignments)),
			UnavailableSlots:    make([]TimeSlotRecord, 0, len(e.UnavailableSlots)),
		}
		for _, a := range e.Assignments {
			rec.Assignments = append(rec.Assignments, AssignmentRecord{
				EmployeeID:    a.EmployeeID,
				ProjectID:     a.ProjectID,
				TimeSlotStart: a.TimeSlot.Start,
				TimeSlotEnd:   a.TimeSlot.End,
			})
		}
		for _, u := range e.UnavailableSlots {
			rec.UnavailableSlots = append(rec.UnavailableSlots, TimeSlotRecord{Start: u.Start, End: u.End})
		}
		doc.Employees = append(doc.Employees, rec)
	}
	for _, p := range s.Projects() {
		doc.Projects = append(doc.Projects, ProjectRecord{
			ID:                  p.ID,
			Name:                p.Name,
			TimeSlot:            TimeSlotRecord{Start: p.TimeSlot.Start, End: p.TimeSlot.End},
			RequiredSkills:      skillStrings(p.RequiredSkills),
			AssignedEmployeeIDs: append([]int(nil), p.AssignedEmployeeIDs...),
			Status:              string(p.Status),
			Priority:            p.Priority,
			IsFixed:             p.IsFixed,
		})
	}
	return doc
}

// Build reconstructs a schedule from an interchange document. Assignments are
// replayed through the arena in stored order so the hour accounting is
// recomputed rather than trusted from the document.
func Build(doc Document) (*model.Schedule, error) {
	s := model.NewSchedule()

	for _, rec := range doc.Projects {
		slot, err := model.NewTimeSlot(rec.TimeSlot.Start, rec.TimeSlot.End)
		if err != nil {
			return nil, fmt.Errorf("project %d: %w", rec.ID, err)
		}
		skills, err := parseSkills(rec.RequiredSkills)
		if err != nil {
			return nil, fmt.Errorf("project %d: %w", rec.ID, err)
		}
		p, err := model.NewProject(rec.ID, rec.Name, slot, skills, rec.Priority, rec.IsFixed)
		if err != nil {
			return nil, err
		}
		if err := s.AddProject(p); err != nil {
			return nil, err
		}
	}

	for _, rec := range doc.Employees {
		skills, err := parseSkills(rec.Skills)
		if err != nil {
			return nil, fmt.Errorf("employee %d: %w", rec.ID, err)
		}
		e := model.NewEmployee(rec.ID, rec.Name, skills)
		for _, u := range rec.UnavailableSlots {
			slot, err := model.NewTimeSlot(u.Start, u.End)
			if err != nil {
				return nil, fmt.Errorf("employee %d unavailable slot: %w", rec.ID, err)
			}
			e.UnavailableSlots = append(e.UnavailableSlots, slot)
		}
		if err := s.AddEmployee(e); err != nil {
			return nil, err
		}
	}

	for _, rec := range doc.Employees {
		for _, a := range rec.Assignments {
			slot, err := model.NewTimeSlot(a.TimeSlotStart, a.TimeSlotEnd)
			if err != nil {
				return nil, fmt.Errorf("assignment employee %d project %d: %w", a.EmployeeID, a.ProjectID, err)
			}
			if _, err := s.RestoreAssignment(a.EmployeeID, a.ProjectID, slot); err != nil {
				return nil, err
			}
		}
	}

	// Stored statuses win over the replayed ones so manual lifecycle
	// transitions (In Progress, Completed, Cancelled) survive a round trip.
	for _, rec := range doc.Projects {
		status, err := model.ParseStatus(rec.Status)
		if err != nil {
			return nil, fmt.Errorf("project %d: %w", rec.ID, err)
		}
		s.ProjectByID(rec.ID).Status = status
	}

	return s, nil
}

// WriteJSON writes the schedule to w as an indented interchange document.
func WriteJSON(w io.Writer, s *model.Schedule) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(Snapshot(s))
}

// ReadJSON rebuilds a schedule from an interchange document read from r.
func ReadJSON(r io.Reader) (*model.Schedule, error) {
	var doc Document
	if err := json.NewDecoder(r).Decode(&doc); err != nil {
		return nil, fmt.Errorf("decode schedule document: %w", err)
	}
	return Build(doc)
}

// SaveFile writes the schedule to a JSON file at path.
func SaveFile(path string, s *model.Schedule) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := WriteJSON(f, s); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// LoadFile reads a schedule from a JSON file at path.
func LoadFile(path string) (*model.Schedule, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return ReadJSON(f)
}

func skillStrings(skills []model.SkillType) []string {
	out := make([]string, 0, len(skills))
	for _, s := range skills {
		out = append(out, string(s))
	}
	return out
}

func parseSkills(raw []string) ([]model.SkillType, error) {
	out := make([]model.SkillType, 0, len(raw))
	for _, r := range raw {
		skill, err := model.ParseSkill(r)
		if err != nil {
			return nil, err
		}
		out = append(out, skill)
	}
	return out, nil
}
