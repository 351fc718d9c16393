package model

import (
	"errors"
	"testing"
)

func newTestSchedule(t *testing.T) (*Schedule, *Project) {
	t.Helper()
	s := NewSchedule()
	p, err := NewProject(1, "Evening News", slot(t, 9, 13), AllSkills(), 5, true)
	if err != nil {
		t.Fatalf("project: %v", err)
	}
	if err := s.AddProject(p); err != nil {
		t.Fatalf("add project: %v", err)
	}
	return s, p
}

func TestAddRejectsDuplicateIDs(t *testing.T) {
	s, _ := newTestSchedule(t)
	if err := s.AddEmployee(NewEmployee(1, "Alex Smith", []SkillType{SkillEditor})); err != nil {
		t.Fatalf("add employee: %v", err)
	}
	if err := s.AddEmployee(NewEmployee(1, "Jordan Lee", []SkillType{SkillColorist})); !errors.Is(err, ErrDuplicateEntityID) {
		t.Fatalf("expected ErrDuplicateEntityID, got %v", err)
	}
	p2, _ := NewProject(1, "Late Show", slot(t, 14, 18), AllSkills(), 3, true)
	if err := s.AddProject(p2); !errors.Is(err, ErrDuplicateEntityID) {
		t.Fatalf("expected ErrDuplicateEntityID, got %v", err)
	}
}

func TestMissingSkillsFollowsDeclarationOrder(t *testing.T) {
	s, p := newTestSchedule(t)
	multi := NewEmployee(1, "Alex Smith", []SkillType{SkillProducer, SkillColorist})
	if err := s.AddEmployee(multi); err != nil {
		t.Fatalf("add employee: %v", err)
	}
	if _, err := s.Assign(p.ID, multi.ID); err != nil {
		t.Fatalf("assign: %v", err)
	}
	missing := s.MissingSkills(p)
	want := []SkillType{SkillEditor, SkillGraphicsDesigner, SkillAudioEngineer}
	if len(missing) != len(want) {
		t.Fatalf("missing %v, want %v", missing, want)
	}
	for i := range want {
		if missing[i] != want[i] {
			t.Fatalf("missing %v, want %v", missing, want)
		}
	}
}

func TestCanAssignRules(t *testing.T) {
	s, p := newTestSchedule(t)
	editor := NewEmployee(1, "Alex Smith", []SkillType{SkillEditor})
	busy := NewEmployee(2, "Jordan Lee", []SkillType{SkillColorist})
	noSkill := NewEmployee(3, "Casey Kim", nil)
	for _, e := range []*Employee{editor, busy, noSkill} {
		if err := s.AddEmployee(e); err != nil {
			t.Fatalf("add employee: %v", err)
		}
	}
	busy.UnavailableSlots = []TimeSlot{slot(t, 10, 11)}

	if !s.CanAssign(p, editor) {
		t.Fatalf("editor should be assignable")
	}
	if s.CanAssign(p, busy) {
		t.Fatalf("unavailable employee must be rejected")
	}
	if s.CanAssign(p, noSkill) {
		t.Fatalf("employee covering no missing skill must be rejected")
	}

	if _, err := s.Assign(p.ID, editor.ID); err != nil {
		t.Fatalf("assign: %v", err)
	}
	if s.CanAssign(p, editor) {
		t.Fatalf("already assigned employee must be rejected")
	}
}

func TestAssignFlipsStatusAtFiveAssignees(t *testing.T) {
	s, p := newTestSchedule(t)
	for i, skill := range AllSkills() {
		e := NewEmployee(i+1, "Crew Member", []SkillType{skill})
		if err := s.AddEmployee(e); err != nil {
			t.Fatalf("add employee: %v", err)
		}
	}
	for i := range AllSkills() {
		if p.Status != StatusPending {
			t.Fatalf("status flipped early at %d assignees", i)
		}
		if _, err := s.Assign(p.ID, i+1); err != nil {
			t.Fatalf("assign %d: %v", i+1, err)
		}
	}
	if p.Status != StatusScheduled {
		t.Fatalf("expected Scheduled after 5 assignees, got %s", p.Status)
	}
	if len(s.MissingSkills(p)) != 0 {
		t.Fatalf("all skills must be covered")
	}
	if got := len(s.UnscheduledProjects()); got != 0 {
		t.Fatalf("expected no unscheduled projects, got %d", got)
	}
}

func TestAssignIsAtomicOnRejection(t *testing.T) {
	s, p := newTestSchedule(t)
	e := NewEmployee(1, "Alex Smith", []SkillType{SkillEditor})
	if err := s.AddEmployee(e); err != nil {
		t.Fatalf("add employee: %v", err)
	}
	e.UnavailableSlots = []TimeSlot{p.TimeSlot}

	if _, err := s.Assign(p.ID, e.ID); !errors.Is(err, ErrAssignmentNotPermitted) {
		t.Fatalf("expected ErrAssignmentNotPermitted, got %v", err)
	}
	if len(p.AssignedEmployeeIDs) != 0 || len(e.Assignments) != 0 {
		t.Fatalf("rejected assign must not mutate either side")
	}
}

func TestRestoreAssignmentRejectsOverfullProject(t *testing.T) {
	s, p := newTestSchedule(t)
	for i, skill := range AllSkills() {
		e := NewEmployee(i+1, "Crew Member", []SkillType{skill})
		if err := s.AddEmployee(e); err != nil {
			t.Fatalf("add employee: %v", err)
		}
		if _, err := s.RestoreAssignment(e.ID, p.ID, p.TimeSlot); err != nil {
			t.Fatalf("restore %d: %v", e.ID, err)
		}
	}
	extra := NewEmployee(6, "Sixth Wheel", []SkillType{SkillEditor})
	if err := s.AddEmployee(extra); err != nil {
		t.Fatalf("add employee: %v", err)
	}
	if _, err := s.RestoreAssignment(extra.ID, p.ID, p.TimeSlot); !errors.Is(err, ErrAssignmentNotPermitted) {
		t.Fatalf("expected ErrAssignmentNotPermitted, got %v", err)
	}
	if len(p.AssignedEmployeeIDs) != RequiredProjectSkills || len(extra.Assignments) != 0 {
		t.Fatalf("rejected restore must not mutate either side")
	}
}

func TestEmployeesWithSkillAvailableAt(t *testing.T) {
	s, p := newTestSchedule(t)
	a := NewEmployee(1, "Alex Smith", []SkillType{SkillEditor})
	b := NewEmployee(2, "Jordan Lee", []SkillType{SkillEditor})
	c := NewEmployee(3, "Casey Kim", []SkillType{SkillColorist})
	for _, e := range []*Employee{a, b, c} {
		if err := s.AddEmployee(e); err != nil {
			t.Fatalf("add employee: %v", err)
		}
	}
	b.UnavailableSlots = []TimeSlot{p.TimeSlot}

	got := s.EmployeesWithSkillAvailableAt(SkillEditor, p.TimeSlot)
	if len(got) != 1 || got[0].ID != a.ID {
		t.Fatalf("expected only employee 1, got %v", got)
	}
}

func TestValidateFlagsOverlapsAndCoverage(t *testing.T) {
	s, p := newTestSchedule(t)
	e := NewEmployee(1, "Alex Smith", []SkillType{SkillEditor})
	if err := s.AddEmployee(e); err != nil {
		t.Fatalf("add employee: %v", err)
	}
	// Force an inconsistent state the arena would normally prevent.
	e.Assignments = []Assignment{
		{EmployeeID: 1, ProjectID: p.ID, TimeSlot: slot(t, 9, 13)},
		{EmployeeID: 1, ProjectID: p.ID, TimeSlot: slot(t, 12, 15)},
	}

	res := s.Validate()
	if res.Valid {
		t.Fatalf("expected invalid schedule")
	}
	if len(res.Errors) != 1 {
		t.Fatalf("expected one overlap error, got %v", res.Errors)
	}
	if len(res.Warnings) != 1 {
		t.Fatalf("expected unstaffed warning, got %v", res.Warnings)
	}
	if res.Stats.TotalAssignments != 2 || res.Stats.TotalProjects != 1 {
		t.Fatalf("bad stats %+v", res.Stats)
	}

	// Re-running must give the same answer.
	again := s.Validate()
	if again.Valid || len(again.Errors) != 1 {
		t.Fatalf("validation is not idempotent: %+v", again)
	}
}
