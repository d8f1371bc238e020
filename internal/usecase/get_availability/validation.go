package get_availability

import (
	"fmt"

	"github.com/m04kA/SMC-CleaningService/internal/domain"
)

// validateRequest валидирует входные данные запроса.
// startTime и durationHours опциональны, но только парой: интервал без
// длительности (или наоборот) проверить нечем.
func validateRequest(req *Request) error {
	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	if (req.StartTime == nil) != (req.DurationHours == nil) {
		return fmt.Errorf("%w: startTime and durationHours must be provided together", ErrInvalidInput)
	}

	if req.StartTime != nil {
		if err := req.StartTime.Validate(); err != nil {
			return fmt.Errorf("%w: invalid startTime format: %v", ErrInvalidInput, err)
		}
	}

	if req.DurationHours != nil && !domain.IsAllowedDuration(*req.DurationHours) {
		return ErrInvalidDuration
	}

	return nil
}
