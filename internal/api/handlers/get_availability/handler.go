package get_availability

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-CleaningService/internal/api/handlers"
	"github.com/m04kA/SMC-CleaningService/internal/domain"
	getAvailability "github.com/m04kA/SMC-CleaningService/internal/usecase/get_availability"
)

const (
	msgMissingDate         = "дата обязательна"
	msgInvalidParams       = "некорректные параметры запроса, ожидается date=YYYY-MM-DD, startTime=HH:MM, durationHours=2|4"
	msgInvalidDuration     = "длительность уборки должна быть 2 или 4 часа"
	msgNonWorkingDay       = "выбранная дата является выходным днем"
	msgOutsideWorkingHours = "запрошенный интервал выходит за рамки рабочего дня"
)

type Handler struct {
	useCase GetAvailabilityUseCase
	logger  Logger
}

func NewHandler(useCase GetAvailabilityUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/availability
// Query params: date (обязателен, YYYY-MM-DD), startTime + durationHours (опционально, парой)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	dateStr := r.URL.Query().Get("date")
	if dateStr == "" {
		h.logger.Warn("GET /availability - Missing date")
		handlers.RespondBadRequest(w, msgMissingDate)
		return
	}

	startTimeStr := r.URL.Query().Get("startTime")
	durationStr := r.URL.Query().Get("durationHours")

	// Формируем запрос к use case (с парсингом даты и времени)
	useCaseReq, err := ToUseCaseRequest(dateStr, startTimeStr, durationStr)
	if err != nil {
		h.logger.Warn("GET /availability - Invalid parameters: %v", err)
		handlers.RespondBadRequest(w, msgInvalidParams)
		return
	}

	// Вызываем use case
	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, getAvailability.ErrInvalidInput):
			h.logger.Warn("GET /availability - Invalid input: date=%s, error=%v", dateStr, err)
			handlers.RespondBadRequest(w, msgInvalidParams)

		case errors.Is(err, getAvailability.ErrInvalidDuration):
			h.logger.Warn("GET /availability - Invalid duration: date=%s, duration=%s", dateStr, durationStr)
			handlers.RespondBadRequest(w, msgInvalidDuration)

		case errors.Is(err, domain.ErrNonWorkingDay):
			h.logger.Warn("GET /availability - Non-working day: date=%s", dateStr)
			handlers.RespondBadRequest(w, msgNonWorkingDay)

		case errors.Is(err, domain.ErrOutsideWorkingHours):
			h.logger.Warn("GET /availability - Outside working hours: date=%s, start_time=%s", dateStr, startTimeStr)
			handlers.RespondBadRequest(w, msgOutsideWorkingHours)

		default:
			h.logger.Error("GET /availability - Failed to get availability: date=%s, error=%v", dateStr, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	// Формируем HTTP ответ
	response := FromUseCaseResponse(result)

	h.logger.Info("GET /availability - Availability retrieved successfully: date=%s, cleaners_count=%d",
		dateStr, len(result.Cleaners))
	handlers.RespondJSON(w, http.StatusOK, response)
}
