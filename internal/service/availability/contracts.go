package availability

import (
	"context"
	"time"

	"github.com/m04kA/SMC-CleaningService/internal/domain"
)

// CleanerRepository интерфейс репозитория клинеров
type CleanerRepository interface {
	ListAll(ctx context.Context) ([]domain.Cleaner, error)
}

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	// GetByDateAndCleaner получает все бронирования клинера на конкретную дату,
	// отсортированные по времени начала
	GetByDateAndCleaner(ctx context.Context, date time.Time, cleanerID int64) ([]*domain.Booking, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
