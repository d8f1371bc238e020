package get_availability

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("get_availability: invalid input data")

	// ErrInvalidDuration возвращается при недопустимой длительности
	ErrInvalidDuration = errors.New("get_availability: booking duration must be either 2 or 4 hours")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("get_availability: internal error")
)
