package create_booking

import (
	"time"

	"github.com/m04kA/SMC-CleaningService/internal/domain"
	createBooking "github.com/m04kA/SMC-CleaningService/internal/usecase/create_booking"
	"github.com/m04kA/SMC-CleaningService/pkg/types"
)

// CreateBookingRequest HTTP request model
type CreateBookingRequest struct {
	Date          string `json:"date"`      // "2026-03-02"
	StartTime     string `json:"startTime"` // "10:00"
	DurationHours int    `json:"durationHours"`
	CleanerCount  int    `json:"cleanerCount"`
}

// CleanerResponse назначенный клинер в HTTP ответе
type CleanerResponse struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// BookingResponse HTTP response model
type BookingResponse struct {
	ID            int64             `json:"id"`
	Date          string            `json:"date"`
	StartTime     string            `json:"startTime"`
	DurationHours int               `json:"durationHours"`
	CleanerCount  int               `json:"cleanerCount"`
	Cleaners      []CleanerResponse `json:"cleaners"`
	CreatedAt     string            `json:"createdAt"`
	UpdatedAt     string            `json:"updatedAt"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CreateBookingRequest) ToUseCaseRequest() (*createBooking.Request, error) {
	// Парсим дату
	date, err := time.Parse(domain.DateFormat, r.Date)
	if err != nil {
		return nil, err
	}

	// Парсим время
	startTime, err := types.NewTimeStringFromString(r.StartTime)
	if err != nil {
		return nil, err
	}

	return &createBooking.Request{
		Date:          date,
		StartTime:     startTime,
		DurationHours: r.DurationHours,
		CleanerCount:  r.CleanerCount,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createBooking.Response) *BookingResponse {
	cleaners := make([]CleanerResponse, 0, len(resp.Cleaners))
	for _, c := range resp.Cleaners {
		cleaners = append(cleaners, CleanerResponse{ID: c.ID, Name: c.Name})
	}

	return &BookingResponse{
		ID:            resp.ID,
		Date:          resp.Date.Format(domain.DateFormat),
		StartTime:     resp.StartTime.String(),
		DurationHours: resp.DurationHours,
		CleanerCount:  resp.CleanerCount,
		Cleaners:      cleaners,
		CreatedAt:     resp.CreatedAt.Format(time.RFC3339),
		UpdatedAt:     resp.UpdatedAt.Format(time.RFC3339),
	}
}
