package update_booking

import (
	"time"

	"github.com/m04kA/SMC-CleaningService/internal/domain"
	"github.com/m04kA/SMC-CleaningService/pkg/types"
)

// Request модель запроса на перенос бронирования.
// Количество клинеров не меняется при переносе: бронирование сохраняет
// исходный состав по числу, даже если конкретные клинеры заменяются.
type Request struct {
	BookingID     int64
	Date          time.Time        // Новая дата
	StartTime     types.TimeString // Новое время начала
	DurationHours int              // Новая длительность (2 или 4)
}

// CleanerInfo краткая информация о назначенном клинере
type CleanerInfo struct {
	ID   int64
	Name string
}

// Response модель ответа с обновленным бронированием
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

// fromDomainBooking конвертирует обновленное бронирование в ответ
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
