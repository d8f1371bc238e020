package get_bookings

import (
	"context"
	"time"

	"github.com/m04kA/SMC-CleaningService/internal/service/bookings/models"
)

type BookingService interface {
	ListByDate(ctx context.Context, date time.Time) (*models.BookingListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
