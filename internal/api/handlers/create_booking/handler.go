package create_booking

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-CleaningService/internal/api/handlers"
	"github.com/m04kA/SMC-CleaningService/internal/domain"
	createBooking "github.com/m04kA/SMC-CleaningService/internal/usecase/create_booking"
)

const (
	msgInvalidRequestBody  = "некорректное тело запроса"
	msgInvalidDateTime     = "некорректный формат даты или времени, ожидается date=YYYY-MM-DD, startTime=HH:MM"
	msgInvalidInput        = "некорректные параметры бронирования"
	msgInvalidDuration     = "длительность уборки должна быть 2 или 4 часа"
	msgInvalidCleanerCount = "количество клинеров должно быть от 1 до 3"
	msgNonWorkingDay       = "выбранная дата является выходным днем"
	msgOutsideWorkingHours = "запрошенный интервал выходит за рамки рабочего дня"
	msgNoCleanersAvailable = "на выбранное время нет свободных клинеров"
	msgNotEnoughCleaners   = "недостаточно свободных клинеров на выбранное время"
)

type Handler struct {
	useCase CreateBookingUseCase
	logger  Logger
}

func NewHandler(useCase CreateBookingUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/bookings
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CreateBookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /bookings - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	// Конвертируем HTTP запрос в модель use case (с парсингом даты и времени)
	useCaseReq, err := req.ToUseCaseRequest()
	if err != nil {
		h.logger.Warn("POST /bookings - Failed to parse request: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDateTime)
		return
	}

	// Вызываем use case
	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		// Обработка ошибок use case
		switch {
		case errors.Is(err, createBooking.ErrInvalidInput):
			h.logger.Warn("POST /bookings - Invalid input: date=%s, start_time=%s", req.Date, req.StartTime)
			handlers.RespondBadRequest(w, msgInvalidInput)

		case errors.Is(err, createBooking.ErrInvalidDuration):
			h.logger.Warn("POST /bookings - Invalid duration: duration=%d", req.DurationHours)
			handlers.RespondBadRequest(w, msgInvalidDuration)

		case errors.Is(err, createBooking.ErrInvalidCleanerCount):
			h.logger.Warn("POST /bookings - Invalid cleaner count: count=%d", req.CleanerCount)
			handlers.RespondBadRequest(w, msgInvalidCleanerCount)

		case errors.Is(err, domain.ErrNonWorkingDay):
			h.logger.Warn("POST /bookings - Non-working day: date=%s", req.Date)
			handlers.RespondBadRequest(w, msgNonWorkingDay)

		case errors.Is(err, domain.ErrOutsideWorkingHours):
			h.logger.Warn("POST /bookings - Outside working hours: date=%s, start_time=%s", req.Date, req.StartTime)
			handlers.RespondBadRequest(w, msgOutsideWorkingHours)

		case errors.Is(err, createBooking.ErrNoCleanersAvailable):
			h.logger.Warn("POST /bookings - No cleaners available: date=%s, start_time=%s", req.Date, req.StartTime)
			handlers.RespondError(w, http.StatusConflict, msgNoCleanersAvailable)

		case errors.Is(err, createBooking.ErrNotEnoughCleaners):
			h.logger.Warn("POST /bookings - Not enough cleaners: date=%s, start_time=%s, count=%d",
				req.Date, req.StartTime, req.CleanerCount)
			handlers.RespondError(w, http.StatusConflict, msgNotEnoughCleaners)

		default:
			h.logger.Error("POST /bookings - Failed to create booking: date=%s, start_time=%s, error=%v",
				req.Date, req.StartTime, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	// Формируем HTTP ответ
	response := FromUseCaseResponse(result)

	h.logger.Info("POST /bookings - Booking created successfully: booking_id=%d, date=%s, cleaners=%d",
		result.ID, req.Date, result.CleanerCount)
	handlers.RespondJSON(w, http.StatusCreated, response)
}
