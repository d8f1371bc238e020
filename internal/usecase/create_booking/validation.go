package create_booking

import (
	"fmt"

	"github.com/m04kA/SMC-CleaningService/internal/domain"
)

// validateRequest валидирует входные данные запроса.
// Формат полей проверяется на транспортном слое; здесь защитная проверка
// доменных правил (длительность, количество клинеров).
func validateRequest(req *Request) error {
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

	if !domain.IsAllowedCleanerCount(req.CleanerCount) {
		return ErrInvalidCleanerCount
	}

	return nil
}
