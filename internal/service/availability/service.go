package availability

import (
	"context"
	"fmt"
	"time"

	"github.com/m04kA/SMC-CleaningService/internal/domain"
	"github.com/m04kA/SMC-CleaningService/pkg/types"
)

// Service сервис расчета доступности клинеров.
// Не хранит состояния между вызовами: все методы — чистые вычисления поверх
// данных, прочитанных из репозиториев.
type Service struct {
	cleanerRepo CleanerRepository
	bookingRepo BookingRepository
	schedule    domain.Schedule
	logger      Logger
}

// NewService создает сервис доступности
func NewService(
	cleanerRepo CleanerRepository,
	bookingRepo BookingRepository,
	schedule domain.Schedule,
	logger Logger,
) *Service {
	return &Service{
		cleanerRepo: cleanerRepo,
		bookingRepo: bookingRepo,
		schedule:    schedule,
		logger:      logger,
	}
}

// Schedule возвращает действующие правила рабочего календаря
func (s *Service) Schedule() domain.Schedule {
	return s.schedule
}

// ValidateSlot проверяет запрошенный интервал по правилам календаря:
// сначала день недели (domain.ErrNonWorkingDay), затем рабочие часы
// (domain.ErrOutsideWorkingHours). Хранилище не читается.
func (s *Service) ValidateSlot(date time.Time, startTime types.TimeString, durationHours int) error {
	return s.schedule.ValidateWindow(date, &startTime, &durationHours)
}

// ListAvailableCleaners возвращает клинеров, у которых есть хотя бы один
// свободный интервал на дату, вместе с их свободными и занятыми интервалами.
// Если переданы startTime и durationHours, результат дополнительно сужается
// до клинеров, у которых запрошенный интервал помещается в свободный.
//
// Валидация календаря выполняется до обращения к хранилищу: некорректный
// запрос не порождает ни одного чтения.
func (s *Service) ListAvailableCleaners(
	ctx context.Context,
	date time.Time,
	startTime *types.TimeString,
	durationHours *int,
) ([]CleanerAvailability, error) {
	if err := s.schedule.ValidateWindow(date, startTime, durationHours); err != nil {
		return nil, err
	}

	cleaners, err := s.cleanerRepo.ListAll(ctx)
	if err != nil {
		s.logger.Error("ListAvailableCleaners: failed to list cleaners: %v", err)
		return nil, fmt.Errorf("%w: ListAvailableCleaners - list cleaners: %v", ErrInternal, err)
	}

	result := make([]CleanerAvailability, 0, len(cleaners))

	for _, cleaner := range cleaners {
		bookings, err := s.bookingRepo.GetByDateAndCleaner(ctx, date, cleaner.ID)
		if err != nil {
			s.logger.Error("ListAvailableCleaners: failed to load bookings for cleaner=%d: %v", cleaner.ID, err)
			return nil, fmt.Errorf("%w: ListAvailableCleaners - load bookings: %v", ErrInternal, err)
		}

		freeSlots := FreeSlots(date, bookings, s.schedule)
		if len(freeSlots) == 0 {
			// Клинер полностью занят на весь день
			continue
		}

		result = append(result, CleanerAvailability{
			Cleaner:        cleaner,
			SlotsAvailable: freeSlots,
			Bookings:       busySlots(date, bookings),
		})
	}

	// Сужение до конкретного запрошенного интервала
	if startTime != nil && durationHours != nil {
		requestedFrom := startTime.OnDate(date)
		requestedTo := requestedFrom.Add(time.Duration(*durationHours) * time.Hour)

		filtered := make([]CleanerAvailability, 0, len(result))
		for _, ca := range result {
			if SlotFits(ca.SlotsAvailable, requestedFrom, requestedTo) {
				filtered = append(filtered, ca)
			}
		}
		result = filtered
	}

	s.logger.Info("ListAvailableCleaners: date=%s, %d cleaner(s) available",
		date.Format(domain.DateFormat), len(result))
	return result, nil
}

// ListFreeCleaners возвращает клинеров, свободных для запрошенного интервала.
// Доступность определяется попарной проверкой конфликтов по списку
// бронирований клинера, независимо от FreeSlots/SlotFits. Клинер без
// бронирований свободен тривиально.
func (s *Service) ListFreeCleaners(
	ctx context.Context,
	date time.Time,
	startTime types.TimeString,
	durationHours int,
) ([]domain.Cleaner, error) {
	if err := s.schedule.ValidateWindow(date, &startTime, &durationHours); err != nil {
		return nil, err
	}

	cleaners, err := s.cleanerRepo.ListAll(ctx)
	if err != nil {
		s.logger.Error("ListFreeCleaners: failed to list cleaners: %v", err)
		return nil, fmt.Errorf("%w: ListFreeCleaners - list cleaners: %v", ErrInternal, err)
	}

	requestedFrom := startTime.OnDate(date)
	requestedTo := requestedFrom.Add(time.Duration(durationHours) * time.Hour)
	buffer := s.schedule.Break()

	free := make([]domain.Cleaner, 0, len(cleaners))

	for _, cleaner := range cleaners {
		bookings, err := s.bookingRepo.GetByDateAndCleaner(ctx, date, cleaner.ID)
		if err != nil {
			s.logger.Error("ListFreeCleaners: failed to load bookings for cleaner=%d: %v", cleaner.ID, err)
			return nil, fmt.Errorf("%w: ListFreeCleaners - load bookings: %v", ErrInternal, err)
		}

		if hasConflict(bookings, requestedFrom, requestedTo, buffer) {
			continue
		}
		free = append(free, cleaner)
	}

	s.logger.Info("ListFreeCleaners: date=%s, time=%s, duration=%dh, %d of %d cleaner(s) free",
		date.Format(domain.DateFormat), startTime, durationHours, len(free), len(cleaners))
	return free, nil
}

// CanMoveCleaner проверяет, может ли клинер быть переназначен на новый
// интервал. Бронирования загружаются заново, и бронирование с
// excludeBookingID исключается из рассмотрения, чтобы переносимое
// бронирование не конфликтовало само с собой.
func (s *Service) CanMoveCleaner(
	ctx context.Context,
	cleaner domain.Cleaner,
	date time.Time,
	startTime types.TimeString,
	durationHours int,
	excludeBookingID int64,
) (bool, error) {
	bookings, err := s.bookingRepo.GetByDateAndCleaner(ctx, date, cleaner.ID)
	if err != nil {
		s.logger.Error("CanMoveCleaner: failed to load bookings for cleaner=%d: %v", cleaner.ID, err)
		return false, fmt.Errorf("%w: CanMoveCleaner - load bookings: %v", ErrInternal, err)
	}

	remaining := make([]*domain.Booking, 0, len(bookings))
	for _, b := range bookings {
		if b.ID == excludeBookingID {
			continue
		}
		remaining = append(remaining, b)
	}

	freeSlots := FreeSlots(date, remaining, s.schedule)
	if len(freeSlots) == 0 {
		return false, nil
	}

	requestedFrom := startTime.OnDate(date)
	requestedTo := requestedFrom.Add(time.Duration(durationHours) * time.Hour)

	return SlotFits(freeSlots, requestedFrom, requestedTo), nil
}

// busySlots строит занятые интервалы по бронированиям: один интервал на
// бронирование, без перерывов (для отображения)
func busySlots(date time.Time, bookings []*domain.Booking) []domain.Timeslot {
	slots := make([]domain.Timeslot, 0, len(bookings))
	for _, b := range bookings {
		from := b.StartTime.OnDate(date)
		slots = append(slots, domain.Timeslot{
			From: from,
			To:   from.Add(time.Duration(b.DurationHours) * time.Hour),
		})
	}
	return slots
}

// hasConflict возвращает true, если хотя бы одно бронирование конфликтует
// с запрошенным интервалом
func hasConflict(bookings []*domain.Booking, from, to time.Time, buffer time.Duration) bool {
	for _, b := range bookings {
		if conflictsWith(b, from, to, buffer) {
			return true
		}
	}
	return false
}
