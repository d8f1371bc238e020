package models

import (
	"time"

	"github.com/m04kA/SMC-CleaningService/internal/domain"
)

// CleanerInfo краткая информация о клинере в составе бронирования
type CleanerInfo struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// BookingResponse проекция бронирования для чтения
type BookingResponse struct {
	ID            int64         `json:"id"`
	Date          string        `json:"date"`      // "2026-03-02"
	StartTime     string        `json:"startTime"` // "10:00"
	DurationHours int           `json:"durationHours"`
	CleanerCount  int           `json:"cleanerCount"`
	Cleaners      []CleanerInfo `json:"cleaners"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// BookingListResponse ответ со списком бронирований
type BookingListResponse struct {
	Bookings []BookingResponse `json:"bookings"`
}

// FromDomainBooking конвертирует domain.Booking в проекцию
func FromDomainBooking(b *domain.Booking) *BookingResponse {
	cleaners := make([]CleanerInfo, 0, len(b.Cleaners))
	for _, c := range b.Cleaners {
		cleaners = append(cleaners, CleanerInfo{ID: c.ID, Name: c.Name})
	}

	return &BookingResponse{
		ID:            b.ID,
		Date:          b.Date.Format(domain.DateFormat),
		StartTime:     b.StartTime.String(),
		DurationHours: b.DurationHours,
		CleanerCount:  len(b.Cleaners),
		Cleaners:      cleaners,
		CreatedAt:     b.CreatedAt,
		UpdatedAt:     b.UpdatedAt,
	}
}

// FromDomainBookingList конвертирует список бронирований
func FromDomainBookingList(bookings []*domain.Booking) *BookingListResponse {
	result := make([]BookingResponse, 0, len(bookings))
	for _, b := range bookings {
		result = append(result, *FromDomainBooking(b))
	}
	return &BookingListResponse{Bookings: result}
}
