package create_booking

import (
	"context"
	"time"

	"github.com/m04kA/SMC-CleaningService/internal/domain"
	"github.com/m04kA/SMC-CleaningService/pkg/types"
)

// AvailabilityService интерфейс сервиса доступности
type AvailabilityService interface {
	ListFreeCleaners(ctx context.Context, date time.Time, startTime types.TimeString, durationHours int) ([]domain.Cleaner, error)
}

// AllocationService интерфейс сервиса подбора группы
type AllocationService interface {
	SelectGroup(cleaners []domain.Cleaner, requiredCount int) ([]domain.Cleaner, error)
}

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	Create(ctx context.Context, booking *domain.Booking) (*domain.Booking, error)
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
