package store

import (
	"encoding/csv"
	"io"
	"strconv"
	"time"

	"github.com/kilianp07/crewsched/core/model"
)

// WriteAssignmentsCSV writes every committed assignment to w in CSV format.
func WriteAssignmentsCSV(w io.Writer, s *model.Schedule) error {
	cw := csv.NewWriter(w)
	header := []string{"employee_id", "employee_name", "project_id", "project_name", "start", "end", "regular_hours", "overtime_hours"}
	if err := cw.Write(header); err != nil {
		return err
	}
	for _, e := range s.Employees() {
		for _, a := range e.Assignments {
			name := ""
			if p := s.ProjectByID(a.ProjectID); p != nil {
				name = p.Name
			}
			rec := []string{
				strconv.Itoa(a.EmployeeID),
				e.Name,
				strconv.Itoa(a.ProjectID),
				name,
				a.TimeSlot.Start.Format(time.RFC3339),
				a.TimeSlot.End.Format(time.RFC3339),
				strconv.FormatFloat(a.RegularHours, 'f', -1, 64),
				strconv.FormatFloat(a.OvertimeHours, 'f', -1, 64),
			}
			if err := cw.Write(rec); err != nil {
				return err
			}
		}
	}
	cw.Flush()
	return cw.Error()
}
