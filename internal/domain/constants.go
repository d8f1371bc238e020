package domain

// Business validation constants
const (
	MinBookingDurationHours = 2
	MaxBookingDurationHours = 4

	MinCleanersPerBooking = 1
	MaxCleanersPerBooking = 3
)

// Default schedule values (used when the config omits the [schedule] section)
const (
	DefaultShiftStart    = "08:00"
	DefaultShiftEnd      = "22:00"
	DefaultBreakMinutes  = 30
	DefaultNonWorkingDay = "Friday"
)

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// AllowedDurationsHours allowed booking durations in hours
var AllowedDurationsHours = []int{2, 4}

// IsAllowedDuration returns true if the duration is one of the allowed values
func IsAllowedDuration(hours int) bool {
	for _, d := range AllowedDurationsHours {
		if hours == d {
			return true
		}
	}
	return false
}

// IsAllowedCleanerCount returns true if the cleaner count is within bounds
func IsAllowedCleanerCount(count int) bool {
	return count >= MinCleanersPerBooking && count <= MaxCleanersPerBooking
}
