package domain

import (
	"time"

	"github.com/m04kA/SMC-CleaningService/pkg/types"
)

// Schedule holds the working-calendar rules: the daily shift window, the
// mandatory break between two bookings of the same cleaner, and the one
// weekday nobody works. The values come from configuration so tests and
// deployments can vary them.
type Schedule struct {
	ShiftStart    types.TimeString
	ShiftEnd      types.TimeString
	BreakMinutes  int
	NonWorkingDay time.Weekday
}

// DefaultSchedule returns the reference schedule: 08:00-22:00, 30 minute
// break, Fridays off.
func DefaultSchedule() Schedule {
	return Schedule{
		ShiftStart:    types.TimeString(DefaultShiftStart),
		ShiftEnd:      types.TimeString(DefaultShiftEnd),
		BreakMinutes:  DefaultBreakMinutes,
		NonWorkingDay: time.Friday,
	}
}

// Break returns the break buffer as a duration
func (s Schedule) Break() time.Duration {
	return time.Duration(s.BreakMinutes) * time.Minute
}

// IsWorkingDay returns false only for the designated non-working weekday
func (s Schedule) IsWorkingDay(date time.Time) bool {
	return date.Weekday() != s.NonWorkingDay
}

// ShiftWindow returns the shift bounds as points in time on the given date
func (s Schedule) ShiftWindow(date time.Time) (time.Time, time.Time) {
	return s.ShiftStart.OnDate(date), s.ShiftEnd.OnDate(date)
}

// ValidateWindow checks the request against the calendar rules. The day check
// always runs first and fails with ErrNonWorkingDay. The hours check runs only
// when both startTime and durationHours are present: a date-only query has no
// interval to range-check. Fails with ErrOutsideWorkingHours when the interval
// [start, start+duration) is not fully inside the shift window.
func (s Schedule) ValidateWindow(date time.Time, startTime *types.TimeString, durationHours *int) error {
	if !s.IsWorkingDay(date) {
		return ErrNonWorkingDay
	}

	if startTime == nil || durationHours == nil {
		return nil
	}

	start := startTime.OnDate(date)
	end := start.Add(time.Duration(*durationHours) * time.Hour)

	shiftStart, shiftEnd := s.ShiftWindow(date)
	if start.Before(shiftStart) || end.After(shiftEnd) {
		return ErrOutsideWorkingHours
	}

	return nil
}
