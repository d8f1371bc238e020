package domain

import "time"

// Timeslot is a contiguous time range within one calendar day, From <= To.
// Free slots produced by availability computation are disjoint and ordered.
type Timeslot struct {
	From time.Time
	To   time.Time
}

// Contains returns true if [from, to] lies fully inside the slot,
// boundaries included
func (s Timeslot) Contains(from, to time.Time) bool {
	return !from.Before(s.From) && !to.After(s.To)
}

// IsEmpty returns true for a zero-length slot
func (s Timeslot) IsEmpty() bool {
	return !s.From.Before(s.To)
}
