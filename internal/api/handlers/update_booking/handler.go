package update_booking

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-CleaningService/internal/api/handlers"
	"github.com/m04kA/SMC-CleaningService/internal/domain"
	updateBooking "github.com/m04kA/SMC-CleaningService/internal/usecase/update_booking"
)

const (
	msgInvalidBookingID    = "некорректный ID бронирования"
	msgInvalidRequestBody  = "некорректное тело запроса"
	msgInvalidDateTime     = "некорректный формат даты или времени, ожидается date=YYYY-MM-DD, startTime=HH:MM"
	msgInvalidInput        = "некорректные параметры бронирования"
	msgInvalidDuration     = "длительность уборки должна быть 2 или 4 часа"
	msgNonWorkingDay       = "выбранная дата является выходным днем"
	msgOutsideWorkingHours = "запрошенный интервал выходит за рамки рабочего дня"
	msgNotFound            = "бронирование не найдено"
	msgNotEnoughCleaners   = "недостаточно свободных клинеров на новое время"
)

type Handler struct {
	useCase UpdateBookingUseCase
	logger  Logger
}

func NewHandler(useCase UpdateBookingUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle PUT /api/v1/bookings/{bookingId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	// Извлекаем bookingId из URL
	vars := mux.Vars(r)
	bookingIDStr := vars["bookingId"]

	bookingID, err := strconv.ParseInt(bookingIDStr, 10, 64)
	if err != nil {
		h.logger.Warn("PUT /bookings/{id} - Invalid booking ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBookingID)
		return
	}

	var req UpdateBookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /bookings/{id} - Invalid request body: booking_id=%d, error=%v", bookingID, err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	// Конвертируем HTTP запрос в модель use case (с парсингом даты и времени)
	useCaseReq, err := req.ToUseCaseRequest(bookingID)
	if err != nil {
		h.logger.Warn("PUT /bookings/{id} - Failed to parse request: booking_id=%d, error=%v", bookingID, err)
		handlers.RespondBadRequest(w, msgInvalidDateTime)
		return
	}

	// Вызываем use case
	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		// Обработка ошибок use case
		switch {
		case errors.Is(err, updateBooking.ErrInvalidInput):
			h.logger.Warn("PUT /bookings/{id} - Invalid input: booking_id=%d", bookingID)
			handlers.RespondBadRequest(w, msgInvalidInput)

		case errors.Is(err, updateBooking.ErrInvalidDuration):
			h.logger.Warn("PUT /bookings/{id} - Invalid duration: booking_id=%d, duration=%d", bookingID, req.DurationHours)
			handlers.RespondBadRequest(w, msgInvalidDuration)

		case errors.Is(err, domain.ErrNonWorkingDay):
			h.logger.Warn("PUT /bookings/{id} - Non-working day: booking_id=%d, date=%s", bookingID, req.Date)
			handlers.RespondBadRequest(w, msgNonWorkingDay)

		case errors.Is(err, domain.ErrOutsideWorkingHours):
			h.logger.Warn("PUT /bookings/{id} - Outside working hours: booking_id=%d, date=%s, start_time=%s",
				bookingID, req.Date, req.StartTime)
			handlers.RespondBadRequest(w, msgOutsideWorkingHours)

		case errors.Is(err, updateBooking.ErrBookingNotFound):
			h.logger.Warn("PUT /bookings/{id} - Booking not found: booking_id=%d", bookingID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, updateBooking.ErrNotEnoughCleaners):
			h.logger.Warn("PUT /bookings/{id} - Not enough cleaners: booking_id=%d, date=%s, start_time=%s",
				bookingID, req.Date, req.StartTime)
			handlers.RespondError(w, http.StatusConflict, msgNotEnoughCleaners)

		default:
			h.logger.Error("PUT /bookings/{id} - Failed to update booking: booking_id=%d, error=%v", bookingID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	// Формируем HTTP ответ
	response := FromUseCaseResponse(result)

	h.logger.Info("PUT /bookings/{id} - Booking updated successfully: booking_id=%d, date=%s, cleaners=%d",
		bookingID, req.Date, result.CleanerCount)
	handlers.RespondJSON(w, http.StatusOK, response)
}
