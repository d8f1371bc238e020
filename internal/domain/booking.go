package domain

import (
	"time"

	"github.com/m04kA/SMC-CleaningService/pkg/types"
)

// Booking represents a confirmed cleaning appointment. A booking occupies one
// contiguous interval on a single calendar day and is staffed by 1-3 cleaners.
type Booking struct {
	ID            int64
	Date          time.Time        // calendar day, time part ignored
	StartTime     types.TimeString // wall-clock start, e.g. "10:00"
	DurationHours int              // 2 or 4
	Cleaners      []Cleaner

	CreatedAt time.Time
	UpdatedAt time.Time
}

// StartAt returns the booking start as a point in time on the booking date
func (b *Booking) StartAt() time.Time {
	return b.StartTime.OnDate(b.Date)
}

// EndAt returns the booking end (start + duration)
func (b *Booking) EndAt() time.Time {
	return b.StartAt().Add(time.Duration(b.DurationHours) * time.Hour)
}

// HasCleaner returns true if the cleaner is assigned to this booking
func (b *Booking) HasCleaner(cleanerID int64) bool {
	for _, c := range b.Cleaners {
		if c.ID == cleanerID {
			return true
		}
	}
	return false
}

// CleanerIDs returns the IDs of all assigned cleaners in assignment order
func (b *Booking) CleanerIDs() []int64 {
	ids := make([]int64, len(b.Cleaners))
	for i, c := range b.Cleaners {
		ids[i] = c.ID
	}
	return ids
}
