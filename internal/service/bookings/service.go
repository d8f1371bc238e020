package bookings

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/SMC-CleaningService/internal/domain"
	bookingRepo "github.com/m04kA/SMC-CleaningService/internal/infra/storage/booking"
	"github.com/m04kA/SMC-CleaningService/internal/service/bookings/models"
)

// Service сервис чтения бронирований
type Service struct {
	bookingRepo BookingRepository
	logger      Logger
}

// NewService создает сервис бронирований
func NewService(bookingRepo BookingRepository, logger Logger) *Service {
	return &Service{
		bookingRepo: bookingRepo,
		logger:      logger,
	}
}

// GetByID получает бронирование по ID
func (s *Service) GetByID(ctx context.Context, id int64) (*models.BookingResponse, error) {
	s.logger.Info("GetByID: fetching booking id=%d", id)

	booking, err := s.bookingRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("GetByID: booking id=%d not found", id)
			return nil, ErrBookingNotFound
		}
		s.logger.Error("GetByID: repository error for booking id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainBooking(booking), nil
}

// ListByDate получает все бронирования на дату, по возрастанию времени начала
func (s *Service) ListByDate(ctx context.Context, date time.Time) (*models.BookingListResponse, error) {
	s.logger.Info("ListByDate: fetching bookings for date=%s", date.Format(domain.DateFormat))

	bookings, err := s.bookingRepo.ListByDate(ctx, date)
	if err != nil {
		s.logger.Error("ListByDate: repository error for date=%s: %v", date.Format(domain.DateFormat), err)
		return nil, fmt.Errorf("%w: ListByDate - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("ListByDate: fetched %d booking(s) for date=%s", len(bookings), date.Format(domain.DateFormat))
	return models.FromDomainBookingList(bookings), nil
}
