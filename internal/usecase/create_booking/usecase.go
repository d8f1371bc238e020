package create_booking

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-CleaningService/internal/domain"
	"github.com/m04kA/SMC-CleaningService/internal/service/allocation"
)

// UseCase use case для создания бронирования
type UseCase struct {
	availability AvailabilityService
	allocation   AllocationService
	bookingRepo  BookingRepository
	txManager    TransactionManager
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	availabilitySvc AvailabilityService,
	allocationSvc AllocationService,
	bookingRepo BookingRepository,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		availability: availabilitySvc,
		allocation:   allocationSvc,
		bookingRepo:  bookingRepo,
		txManager:    txManager,
		logger:       logger,
	}
}

// Execute выполняет use case создания бронирования.
// Чтение доступности и запись выполняются в одной сериализуемой транзакции:
// два конкурентных запроса на пересекающийся интервал по одному клинеру не
// могут оба пройти проверку и зафиксироваться.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateBooking: date=%s, time=%s, duration=%dh, cleaners=%d",
		req.Date.Format(domain.DateFormat), req.StartTime, req.DurationHours, req.CleanerCount)

	// 1. Валидация входных данных (защитная, поверх транспортной)
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateBooking: validation failed: %v", err)
		return nil, err
	}

	var result *domain.Booking

	// 2. Проверка доступности и запись в одной транзакции
	err := uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 2.1. Свободные клинеры на запрошенный интервал.
		// Валидация календаря (день недели, рабочие часы) выполняется внутри
		// и возвращает доменные ошибки без обращения к хранилищу.
		freeCleaners, err := uc.availability.ListFreeCleaners(txCtx, req.Date, req.StartTime, req.DurationHours)
		if err != nil {
			if errors.Is(err, domain.ErrNonWorkingDay) || errors.Is(err, domain.ErrOutsideWorkingHours) {
				uc.logger.Warn("CreateBooking: calendar validation failed: %v", err)
				return err
			}
			uc.logger.Error("CreateBooking: failed to list free cleaners: %v", err)
			return fmt.Errorf("%w: failed to list free cleaners: %v", ErrInternal, err)
		}

		if len(freeCleaners) == 0 {
			uc.logger.Warn("CreateBooking: no cleaners available for date=%s time=%s",
				req.Date.Format(domain.DateFormat), req.StartTime)
			return ErrNoCleanersAvailable
		}

		// 2.2. Подбор группы с общим автомобилем
		group, err := uc.allocation.SelectGroup(freeCleaners, req.CleanerCount)
		if err != nil {
			if errors.Is(err, allocation.ErrNotEnoughCleaners) {
				uc.logger.Warn("CreateBooking: not enough cleaners sharing one vehicle, requested=%d, free=%d",
					req.CleanerCount, len(freeCleaners))
				return ErrNotEnoughCleaners
			}
			uc.logger.Error("CreateBooking: failed to select group: %v", err)
			return fmt.Errorf("%w: failed to select group: %v", ErrInternal, err)
		}

		if len(group) != req.CleanerCount {
			uc.logger.Warn("CreateBooking: group size %d does not match requested count %d",
				len(group), req.CleanerCount)
			return ErrNotEnoughCleaners
		}

		// 2.3. Сохраняем бронирование
		booking := &domain.Booking{
			Date:          req.Date,
			StartTime:     req.StartTime,
			DurationHours: req.DurationHours,
			Cleaners:      group,
		}

		created, err := uc.bookingRepo.Create(txCtx, booking)
		if err != nil {
			uc.logger.Error("CreateBooking: failed to create booking: %v", err)
			return fmt.Errorf("%w: failed to create booking: %v", ErrInternal, err)
		}

		result = created
		return nil
	})
	if err != nil {
		return nil, err
	}

	uc.logger.Info("CreateBooking: successfully created booking id=%d with %d cleaner(s)",
		result.ID, len(result.Cleaners))
	return fromDomainBooking(result), nil
}
