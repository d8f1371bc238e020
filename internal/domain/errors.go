package domain

import "errors"

var (
	// ErrNonWorkingDay is returned when the requested date falls on the
	// designated non-working weekday
	ErrNonWorkingDay = errors.New("domain: no cleaners working on this day")

	// ErrOutsideWorkingHours is returned when the requested interval does not
	// fit inside the shift window
	ErrOutsideWorkingHours = errors.New("domain: provided time is outside working hours")

	// ErrInvalidDuration is returned when the booking duration is not one of
	// the allowed values
	ErrInvalidDuration = errors.New("domain: booking duration must be either 2 or 4 hours")

	// ErrInvalidCleanerCount is returned when the requested cleaner count is
	// out of bounds
	ErrInvalidCleanerCount = errors.New("domain: cleaner count must be between 1 and 3")
)
