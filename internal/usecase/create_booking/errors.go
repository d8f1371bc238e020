package create_booking

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("create_booking: invalid input data")

	// ErrInvalidDuration возвращается при недопустимой длительности бронирования
	ErrInvalidDuration = errors.New("create_booking: booking duration must be either 2 or 4 hours")

	// ErrInvalidCleanerCount возвращается при недопустимом количестве клинеров
	ErrInvalidCleanerCount = errors.New("create_booking: cleaner count must be between 1 and 3")

	// ErrNoCleanersAvailable возвращается, когда на запрошенный интервал нет
	// ни одного свободного клинера
	ErrNoCleanersAvailable = errors.New("create_booking: no cleaners available for requested time")

	// ErrNotEnoughCleaners возвращается, когда свободных клинеров с общим
	// автомобилем меньше запрошенного количества
	ErrNotEnoughCleaners = errors.New("create_booking: not enough cleaners available for requested time")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_booking: internal error")
)
