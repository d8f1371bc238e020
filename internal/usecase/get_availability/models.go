package get_availability

import (
	"time"

	"github.com/m04kA/SMC-CleaningService/internal/domain"
	"github.com/m04kA/SMC-CleaningService/internal/service/availability"
	"github.com/m04kA/SMC-CleaningService/pkg/types"
)

// Request модель запроса доступности клинеров
type Request struct {
	Date          time.Time         // Дата (обязательна)
	StartTime     *types.TimeString // Время начала (опционально, вместе с DurationHours)
	DurationHours *int              // Длительность в часах (опционально, вместе с StartTime)
}

// Timeslot временной интервал в ответе
type Timeslot struct {
	From time.Time
	To   time.Time
}

// CleanerAvailability доступность клинера в ответе
type CleanerAvailability struct {
	CleanerID      int64
	CleanerName    string
	SlotsAvailable []Timeslot // свободные интервалы
	Bookings       []Timeslot // занятые интервалы (для отображения)
}

// Response модель ответа со списком доступных клинеров
type Response struct {
	Date     time.Time
	Cleaners []CleanerAvailability
}

// fromServiceResult конвертирует результат сервиса доступности в ответ
func fromServiceResult(date time.Time, result []availability.CleanerAvailability) *Response {
	cleaners := make([]CleanerAvailability, 0, len(result))
	for _, ca := range result {
		cleaners = append(cleaners, CleanerAvailability{
			CleanerID:      ca.Cleaner.ID,
			CleanerName:    ca.Cleaner.Name,
			SlotsAvailable: toTimeslots(ca.SlotsAvailable),
			Bookings:       toTimeslots(ca.Bookings),
		})
	}
	return &Response{Date: date, Cleaners: cleaners}
}

func toTimeslots(slots []domain.Timeslot) []Timeslot {
	result := make([]Timeslot, 0, len(slots))
	for _, s := range slots {
		result = append(result, Timeslot{From: s.From, To: s.To})
	}
	return result
}
