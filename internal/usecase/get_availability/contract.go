package get_availability

import (
	"context"
	"time"

	"github.com/m04kA/SMC-CleaningService/internal/service/availability"
	"github.com/m04kA/SMC-CleaningService/pkg/types"
)

// AvailabilityService интерфейс сервиса доступности
type AvailabilityService interface {
	ListAvailableCleaners(ctx context.Context, date time.Time, startTime *types.TimeString, durationHours *int) ([]availability.CleanerAvailability, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
