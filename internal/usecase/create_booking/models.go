package create_booking

import (
	"time"

	"github.com/m04kA/SMC-CleaningService/internal/domain"
	"github.com/m04kA/SMC-CleaningService/pkg/types"
)

// Request модель запроса на создание бронирования
type Request struct {
	Date          time.Time        // Дата бронирования (без времени)
	StartTime     types.TimeString // Время начала (например, "10:00")
	DurationHours int              // Длительность в часах (2 или 4)
	CleanerCount  int              // Требуемое количество клинеров (1-3)
}

// CleanerInfo краткая информация о назначенном клинере
type CleanerInfo struct {
	ID   int64
	Name string
}

// Response модель ответа с созданным бронированием
type Response struct {
	ID            int64
	Date          time.Time
	StartTime     types.TimeString
	DurationHours int
	CleanerCount  int
	Cleaners      []CleanerInfo
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// fromDomainBooking конвертирует сохраненное бронирование в ответ
func fromDomainBooking(b *domain.Booking) *Response {
	cleaners := make([]CleanerInfo, 0, len(b.Cleaners))
	for _, c := range b.Cleaners {
		cleaners = append(cleaners, CleanerInfo{ID: c.ID, Name: c.Name})
	}

	return &Response{
		ID:            b.ID,
		Date:          b.Date,
		StartTime:     b.StartTime,
		DurationHours: b.DurationHours,
		CleanerCount:  len(b.Cleaners),
		Cleaners:      cleaners,
		CreatedAt:     b.CreatedAt,
		UpdatedAt:     b.UpdatedAt,
	}
}
