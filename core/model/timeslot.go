package model

import (
	"fmt"
	"time"
)

// TimeSlot is a half-open [Start, End) interval.
type TimeSlot struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

// NewTimeSlot builds a validated time slot.
func NewTimeSlot(start, end time.Time) (TimeSlot, error) {
	s := TimeSlot{Start: start, End: end}
	if err := s.Validate(); err != nil {
		return TimeSlot{}, err
	}
	return s, nil
}

// Validate checks the end>start invariant.
func (s TimeSlot) Validate() error {
	if !s.End.After(s.Start) {
		return fmt.Errorf("%w: start=%s end=%s", ErrInvalidTimeSlot,
			s.Start.Format(time.RFC3339), s.End.Format(time.RFC3339))
	}
	return nil
}

// DurationHours returns the slot length in hours.
func (s TimeSlot) DurationHours() float64 {
	return s.End.Sub(s.Start).Hours()
}

// Overlaps reports whether two slots intersect. Intervals are half-open,
// so slots that merely touch do not overlap.
func (s TimeSlot) Overlaps(o TimeSlot) bool {
	return s.Start.Before(o.End) && o.Start.Before(s.End)
}

// Contains reports whether t falls inside the slot.
func (s TimeSlot) Contains(t time.Time) bool {
	return !t.Before(s.Start) && t.Before(s.End)
}

func (s TimeSlot) String() string {
	return fmt.Sprintf("%s - %s", s.Start.Format("2006-01-02 15:04"), s.End.Format("2006-01-02 15:04"))
}

// sameDay reports whether two instants share a calendar date.
func sameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}
