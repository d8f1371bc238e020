package availability

import "github.com/m04kA/SMC-CleaningService/internal/domain"

// CleanerAvailability доступность одного клинера на запрошенную дату
type CleanerAvailability struct {
	Cleaner domain.Cleaner

	// SlotsAvailable свободные интервалы внутри смены (с учетом перерывов
	// вокруг существующих бронирований), дизъюнктные, по возрастанию времени
	SlotsAvailable []domain.Timeslot

	// Bookings занятые интервалы по существующим бронированиям, без перерывов.
	// Используются только для отображения, не для решений о доступности.
	Bookings []domain.Timeslot
}
