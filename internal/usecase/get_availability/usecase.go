package get_availability

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-CleaningService/internal/domain"
)

// UseCase use case получения доступности клинеров на дату
type UseCase struct {
	availability AvailabilityService
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(availabilitySvc AvailabilityService, logger Logger) *UseCase {
	return &UseCase{
		availability: availabilitySvc,
		logger:       logger,
	}
}

// Execute выполняет use case получения доступности
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetAvailability: date=%s, startTime=%v, duration=%v",
		req.Date.Format(domain.DateFormat), req.StartTime, req.DurationHours)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetAvailability: validation failed: %v", err)
		return nil, err
	}

	// 2. Расчет доступности (календарь валидируется внутри сервиса)
	result, err := uc.availability.ListAvailableCleaners(ctx, req.Date, req.StartTime, req.DurationHours)
	if err != nil {
		if errors.Is(err, domain.ErrNonWorkingDay) || errors.Is(err, domain.ErrOutsideWorkingHours) {
			uc.logger.Warn("GetAvailability: calendar validation failed: %v", err)
			return nil, err
		}
		uc.logger.Error("GetAvailability: failed to list available cleaners: %v", err)
		return nil, fmt.Errorf("%w: failed to list available cleaners: %v", ErrInternal, err)
	}

	uc.logger.Info("GetAvailability: date=%s, %d cleaner(s) in response",
		req.Date.Format(domain.DateFormat), len(result))
	return fromServiceResult(req.Date, result), nil
}
