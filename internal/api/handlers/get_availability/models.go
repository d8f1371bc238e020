package get_availability

import (
	"strconv"
	"time"

	"github.com/m04kA/SMC-CleaningService/internal/domain"
	getAvailability "github.com/m04kA/SMC-CleaningService/internal/usecase/get_availability"
	"github.com/m04kA/SMC-CleaningService/pkg/types"
)

// TimeslotResponse временной интервал в HTTP ответе
type TimeslotResponse struct {
	From string `json:"from"` // "08:00"
	To   string `json:"to"`   // "12:30"
}

// CleanerAvailabilityResponse доступность клинера в HTTP ответе
type CleanerAvailabilityResponse struct {
	CleanerID      int64              `json:"cleanerId"`
	CleanerName    string             `json:"cleanerName"`
	SlotsAvailable []TimeslotResponse `json:"slotsAvailable"`
	Bookings       []TimeslotResponse `json:"bookings"`
}

// AvailabilityResponse HTTP response model
type AvailabilityResponse struct {
	Date     string                        `json:"date"` // "2026-03-02"
	Cleaners []CleanerAvailabilityResponse `json:"cleaners"`
}

// ToUseCaseRequest формирует запрос к use case из query параметров
func ToUseCaseRequest(dateStr, startTimeStr, durationStr string) (*getAvailability.Request, error) {
	date, err := time.Parse(domain.DateFormat, dateStr)
	if err != nil {
		return nil, err
	}

	req := &getAvailability.Request{Date: date}

	if startTimeStr != "" {
		startTime, err := types.NewTimeStringFromString(startTimeStr)
		if err != nil {
			return nil, err
		}
		req.StartTime = &startTime
	}

	if durationStr != "" {
		duration, err := strconv.Atoi(durationStr)
		if err != nil {
			return nil, err
		}
		req.DurationHours = &duration
	}

	return req, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getAvailability.Response) *AvailabilityResponse {
	cleaners := make([]CleanerAvailabilityResponse, 0, len(resp.Cleaners))
	for _, c := range resp.Cleaners {
		cleaners = append(cleaners, CleanerAvailabilityResponse{
			CleanerID:      c.CleanerID,
			CleanerName:    c.CleanerName,
			SlotsAvailable: toTimeslotResponses(c.SlotsAvailable),
			Bookings:       toTimeslotResponses(c.Bookings),
		})
	}

	return &AvailabilityResponse{
		Date:     resp.Date.Format(domain.DateFormat),
		Cleaners: cleaners,
	}
}

func toTimeslotResponses(slots []getAvailability.Timeslot) []TimeslotResponse {
	result := make([]TimeslotResponse, 0, len(slots))
	for _, s := range slots {
		result = append(result, TimeslotResponse{
			From: s.From.Format(domain.TimeFormat),
			To:   s.To.Format(domain.TimeFormat),
		})
	}
	return result
}
