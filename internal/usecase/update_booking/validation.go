package update_booking

import (
	"fmt"

	"github.com/m04kA/SMC-CleaningService/internal/domain"
)

// validateRequest валидирует входные данные запроса переноса
func validateRequest(req *Request) error {
	if req.BookingID <= 0 {
		return fmt.Errorf("%w: bookingID must be positive", ErrInvalidInput)
	}

	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	if req.StartTime.IsZero() {
		return fmt.Errorf("%w: startTime is required", ErrInvalidInput)
	}

	if err := req.StartTime.Validate(); err != nil {
		return fmt.Errorf("%w: invalid startTime format: %v", ErrInvalidInput, err)
	}

	if !domain.IsAllowedDuration(req.DurationHours) {
		return ErrInvalidDuration
	}

	return nil
}
