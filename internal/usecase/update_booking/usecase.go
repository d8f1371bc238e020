package update_booking

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-CleaningService/internal/domain"
	bookingRepo "github.com/m04kA/SMC-CleaningService/internal/infra/storage/booking"
	"github.com/m04kA/SMC-CleaningService/internal/service/allocation"
)

// UseCase use case переноса бронирования на новый интервал
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

// Execute выполняет перенос бронирования.
//
// Клинеры текущего состава, помещающиеся в новый интервал, сохраняются;
// выбывшие замещаются из свежего подбора группы. Если укомплектовать
// исходное количество не удается, транзакция откатывается целиком —
// частичное изменение состава никогда не фиксируется.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("UpdateBooking: id=%d, date=%s, time=%s, duration=%dh",
		req.BookingID, req.Date.Format(domain.DateFormat), req.StartTime, req.DurationHours)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("UpdateBooking: validation failed: %v", err)
		return nil, err
	}

	// 2. Валидация нового интервала по календарю — до открытия транзакции
	// и каких-либо чтений хранилища
	if err := uc.availability.ValidateSlot(req.Date, req.StartTime, req.DurationHours); err != nil {
		uc.logger.Warn("UpdateBooking: calendar validation failed: %v", err)
		return nil, err
	}

	var result *domain.Booking

	// 3. Вся проверка состава и запись в одной сериализуемой транзакции
	err := uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 3.1. Загружаем существующее бронирование (с блокировкой строки)
		booking, err := uc.bookingRepo.GetByID(txCtx, req.BookingID)
		if err != nil {
			if errors.Is(err, bookingRepo.ErrBookingNotFound) {
				uc.logger.Warn("UpdateBooking: booking id=%d not found", req.BookingID)
				return ErrBookingNotFound
			}
			uc.logger.Error("UpdateBooking: failed to load booking id=%d: %v", req.BookingID, err)
			return fmt.Errorf("%w: failed to load booking: %v", ErrInternal, err)
		}

		originalCount := len(booking.Cleaners)

		// 3.2. Проверяем, кто из текущего состава помещается в новый интервал.
		// Переносимое бронирование исключается из рассмотрения, чтобы не
		// конфликтовать само с собой.
		retained := make([]domain.Cleaner, 0, originalCount)
		for _, cleaner := range booking.Cleaners {
			ok, err := uc.availability.CanMoveCleaner(txCtx, cleaner, req.Date, req.StartTime, req.DurationHours, booking.ID)
			if err != nil {
				uc.logger.Error("UpdateBooking: failed to check cleaner=%d: %v", cleaner.ID, err)
				return fmt.Errorf("%w: failed to check cleaner availability: %v", ErrInternal, err)
			}
			if ok {
				retained = append(retained, cleaner)
			}
		}

		// 3.3. Если часть состава выбыла — добираем из свежего подбора
		if len(retained) < originalCount {
			uc.logger.Info("UpdateBooking: id=%d, %d of %d cleaner(s) retained, searching replacements",
				req.BookingID, len(retained), originalCount)

			if err := uc.topUp(txCtx, req, &retained, originalCount); err != nil {
				return err
			}
		}

		if len(retained) != originalCount {
			uc.logger.Warn("UpdateBooking: id=%d, only %d of %d cleaner(s) after top-up",
				req.BookingID, len(retained), originalCount)
			return ErrNotEnoughCleaners
		}

		// 3.4. Перезаписываем бронирование
		booking.Date = req.Date
		booking.StartTime = req.StartTime
		booking.DurationHours = req.DurationHours
		booking.Cleaners = retained

		updated, err := uc.bookingRepo.Update(txCtx, booking)
		if err != nil {
			uc.logger.Error("UpdateBooking: failed to update booking id=%d: %v", req.BookingID, err)
			return fmt.Errorf("%w: failed to update booking: %v", ErrInternal, err)
		}

		result = updated
		return nil
	})
	if err != nil {
		return nil, err
	}

	uc.logger.Info("UpdateBooking: successfully updated booking id=%d", result.ID)
	return fromDomainBooking(result), nil
}

// topUp добирает недостающих клинеров из свежего подбора группы на новый
// интервал. Кандидаты, уже присутствующие в retained, пропускаются.
func (uc *UseCase) topUp(ctx context.Context, req *Request, retained *[]domain.Cleaner, originalCount int) error {
	freeCleaners, err := uc.availability.ListFreeCleaners(ctx, req.Date, req.StartTime, req.DurationHours)
	if err != nil {
		uc.logger.Error("UpdateBooking: failed to list free cleaners: %v", err)
		return fmt.Errorf("%w: failed to list free cleaners: %v", ErrInternal, err)
	}

	group, err := uc.allocation.SelectGroup(freeCleaners, originalCount)
	if err != nil {
		if errors.Is(err, allocation.ErrNotEnoughCleaners) {
			uc.logger.Warn("UpdateBooking: no vehicle group of size %d for top-up", originalCount)
			return ErrNotEnoughCleaners
		}
		uc.logger.Error("UpdateBooking: failed to select group: %v", err)
		return fmt.Errorf("%w: failed to select group: %v", ErrInternal, err)
	}

	for _, candidate := range group {
		if len(*retained) == originalCount {
			break
		}
		if containsCleaner(*retained, candidate.ID) {
			continue
		}
		*retained = append(*retained, candidate)
	}

	return nil
}

// containsCleaner проверяет наличие клинера в составе по ID
func containsCleaner(cleaners []domain.Cleaner, id int64) bool {
	for _, c := range cleaners {
		if c.ID == id {
			return true
		}
	}
	return false
}
