package model

import "fmt"

// Assignment links an employee to a project for the project's time slot.
// It is immutable once committed and is referenced from both sides by id.
// RegularHours and OvertimeHours record the split computed at commit time;
// the split depends on the commit order within a day.
type Assignment struct {
	EmployeeID    int      `json:"employeeId"`
	ProjectID     int      `json:"projectId"`
	TimeSlot      TimeSlot `json:"-"`
	RegularHours  float64  `json:"-"`
	OvertimeHours float64  `json:"-"`
}

// Cost returns the cost of this assignment using the recorded split.
func (a Assignment) Cost() float64 {
	return a.RegularHours*RegularRate + a.OvertimeHours*OvertimeRate
}

func (a Assignment) String() string {
	return fmt.Sprintf("Assignment(employee=%d project=%d %s)", a.EmployeeID, a.ProjectID, a.TimeSlot)
}
