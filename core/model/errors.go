package model

import "errors"

var (
	// ErrInvalidTimeSlot reports a slot whose end does not come after its start.
	ErrInvalidTimeSlot = errors.New("time slot end must be after start")
	// ErrInvalidProjectSkillSet reports a project requiring anything other
	// than five distinct skills.
	ErrInvalidProjectSkillSet = errors.New("project must require exactly 5 distinct skills")
	// ErrDuplicateEntityID reports an id collision when adding to a schedule.
	ErrDuplicateEntityID = errors.New("duplicate entity id")
	// ErrEmployeeUnavailable reports a commit attempt on an occupied or
	// blocked time slot.
	ErrEmployeeUnavailable = errors.New("employee unavailable for time slot")
	// ErrAssignmentNotPermitted reports an assignment rejected by the
	// project-side rules.
	ErrAssignmentNotPermitted = errors.New("assignment not permitted")
)
