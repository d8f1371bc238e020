package update_booking

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("update_booking: invalid input data")

	// ErrInvalidDuration возвращается при недопустимой длительности бронирования
	ErrInvalidDuration = errors.New("update_booking: booking duration must be either 2 or 4 hours")

	// ErrBookingNotFound возвращается, когда бронирование не найдено
	ErrBookingNotFound = errors.New("update_booking: booking not found")

	// ErrNotEnoughCleaners возвращается, когда после переноса не удается
	// укомплектовать бронирование исходным количеством клинеров
	ErrNotEnoughCleaners = errors.New("update_booking: not enough cleaners available for requested time slot")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("update_booking: internal error")
)
