package availability

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-CleaningService/internal/domain"
	"github.com/m04kA/SMC-CleaningService/pkg/ptr"
	"github.com/m04kA/SMC-CleaningService/pkg/types"
)

var friday = time.Date(2026, 3, 6, 0, 0, 0, 0, time.UTC)

// --- фейки ---

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

type fakeCleanerRepo struct {
	cleaners []domain.Cleaner
	err      error
}

func (f *fakeCleanerRepo) ListAll(ctx context.Context) ([]domain.Cleaner, error) {
	return f.cleaners, f.err
}

type fakeBookingRepo struct {
	// бронирования по ID клинера
	byCleaner map[int64][]*domain.Booking
	err       error
}

func (f *fakeBookingRepo) GetByDateAndCleaner(ctx context.Context, date time.Time, cleanerID int64) ([]*domain.Booking, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.byCleaner[cleanerID], nil
}

func cleaner(id int64, name string, vehicleID int64) domain.Cleaner {
	return domain.Cleaner{
		ID:      id,
		Name:    name,
		Vehicle: domain.Vehicle{ID: vehicleID},
	}
}

func bookingFor(id int64, start string, hours int, cleaners ...domain.Cleaner) *domain.Booking {
	return &domain.Booking{
		ID:            id,
		Date:          monday,
		StartTime:     types.TimeString(start),
		DurationHours: hours,
		Cleaners:      cleaners,
	}
}

func newService(cleaners []domain.Cleaner, byCleaner map[int64][]*domain.Booking) *Service {
	return NewService(
		&fakeCleanerRepo{cleaners: cleaners},
		&fakeBookingRepo{byCleaner: byCleaner},
		domain.DefaultSchedule(),
		nopLogger{},
	)
}

// --- ListAvailableCleaners ---

func TestListAvailableCleaners_DateOnly(t *testing.T) {
	anna := cleaner(1, "Anna", 1)
	boris := cleaner(2, "Boris", 1)

	svc := newService(
		[]domain.Cleaner{anna, boris},
		map[int64][]*domain.Booking{
			1: {bookingFor(10, "09:00", 2, anna)},
		},
	)

	result, err := svc.ListAvailableCleaners(context.Background(), monday, nil, nil)
	require.NoError(t, err)
	require.Len(t, result, 2)

	// У Anna бронирование 09:00-11:00: два свободных окна и одно занятое
	assert.Equal(t, anna, result[0].Cleaner)
	require.Len(t, result[0].SlotsAvailable, 2)
	require.Len(t, result[0].Bookings, 1)
	assert.Equal(t, at(9, 0), result[0].Bookings[0].From)
	assert.Equal(t, at(11, 0), result[0].Bookings[0].To)

	// Boris свободен весь день
	assert.Equal(t, boris, result[1].Cleaner)
	require.Len(t, result[1].SlotsAvailable, 1)
	assert.Empty(t, result[1].Bookings)
}

func TestListAvailableCleaners_NarrowedByInterval(t *testing.T) {
	anna := cleaner(1, "Anna", 1)
	boris := cleaner(2, "Boris", 1)

	svc := newService(
		[]domain.Cleaner{anna, boris},
		map[int64][]*domain.Booking{
			1: {bookingFor(10, "09:00", 2, anna)},
		},
	)

	start := types.TimeString("10:00")

	result, err := svc.ListAvailableCleaners(context.Background(), monday, &start, ptr.Ptr(2))
	require.NoError(t, err)

	// Интервал 10:00-12:00 пересекается с бронированием Anna
	require.Len(t, result, 1)
	assert.Equal(t, boris, result[0].Cleaner)
}

func TestListAvailableCleaners_NonWorkingDay(t *testing.T) {
	repo := &fakeCleanerRepo{cleaners: []domain.Cleaner{cleaner(1, "Anna", 1)}}
	svc := NewService(repo, &fakeBookingRepo{}, domain.DefaultSchedule(), nopLogger{})

	_, err := svc.ListAvailableCleaners(context.Background(), friday, nil, nil)
	assert.ErrorIs(t, err, domain.ErrNonWorkingDay)
}

func TestListAvailableCleaners_OutsideWorkingHours(t *testing.T) {
	svc := newService([]domain.Cleaner{cleaner(1, "Anna", 1)}, nil)

	start := types.TimeString("21:00")

	_, err := svc.ListAvailableCleaners(context.Background(), monday, &start, ptr.Ptr(2))
	assert.ErrorIs(t, err, domain.ErrOutsideWorkingHours)
}

func TestListAvailableCleaners_RepoError(t *testing.T) {
	svc := NewService(
		&fakeCleanerRepo{err: errors.New("connection refused")},
		&fakeBookingRepo{},
		domain.DefaultSchedule(),
		nopLogger{},
	)

	_, err := svc.ListAvailableCleaners(context.Background(), monday, nil, nil)
	assert.ErrorIs(t, err, ErrInternal)
}

// Повторный вызов с теми же данными дает тот же результат
func TestListAvailableCleaners_Idempotent(t *testing.T) {
	anna := cleaner(1, "Anna", 1)
	svc := newService(
		[]domain.Cleaner{anna},
		map[int64][]*domain.Booking{1: {bookingFor(10, "09:00", 2, anna)}},
	)

	first, err := svc.ListAvailableCleaners(context.Background(), monday, nil, nil)
	require.NoError(t, err)
	second, err := svc.ListAvailableCleaners(context.Background(), monday, nil, nil)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

// --- ListFreeCleaners ---

func TestListFreeCleaners(t *testing.T) {
	anna := cleaner(1, "Anna", 1)
	boris := cleaner(2, "Boris", 1)
	vera := cleaner(3, "Vera", 2)

	svc := newService(
		[]domain.Cleaner{anna, boris, vera},
		map[int64][]*domain.Booking{
			1: {bookingFor(10, "10:00", 2, anna)}, // пересекается с запросом
			3: {bookingFor(11, "15:00", 2, vera)}, // не пересекается
		},
	)

	free, err := svc.ListFreeCleaners(context.Background(), monday, types.TimeString("10:00"), 2)
	require.NoError(t, err)

	require.Len(t, free, 2)
	assert.Equal(t, boris, free[0])
	assert.Equal(t, vera, free[1])
}

func TestListFreeCleaners_BufferBoundary(t *testing.T) {
	anna := cleaner(1, "Anna", 1)

	svc := newService(
		[]domain.Cleaner{anna},
		map[int64][]*domain.Booking{
			1: {bookingFor(10, "08:00", 2, anna)}, // 08:00 - 10:00
		},
	)

	// 10:30 — ровно через перерыв после конца бронирования
	free, err := svc.ListFreeCleaners(context.Background(), monday, types.TimeString("10:30"), 2)
	require.NoError(t, err)
	assert.Len(t, free, 1)

	// 10:29 — на минуту раньше, конфликт
	free, err = svc.ListFreeCleaners(context.Background(), monday, types.TimeString("10:29"), 2)
	require.NoError(t, err)
	assert.Empty(t, free)
}

func TestListFreeCleaners_NonWorkingDay(t *testing.T) {
	svc := newService([]domain.Cleaner{cleaner(1, "Anna", 1)}, nil)

	_, err := svc.ListFreeCleaners(context.Background(), friday, types.TimeString("10:00"), 2)
	assert.ErrorIs(t, err, domain.ErrNonWorkingDay)
}

// --- CanMoveCleaner ---

func TestCanMoveCleaner_ExcludesOwnBooking(t *testing.T) {
	anna := cleaner(1, "Anna", 1)

	svc := newService(
		[]domain.Cleaner{anna},
		map[int64][]*domain.Booking{
			1: {bookingFor(42, "10:00", 2, anna)},
		},
	)

	// Без исключения собственного бронирования перенос на то же время
	// конфликтовал бы сам с собой
	ok, err := svc.CanMoveCleaner(context.Background(), anna, monday, types.TimeString("10:00"), 2, 42)
	require.NoError(t, err)
	assert.True(t, ok)

	// Чужое бронирование не исключается
	ok, err = svc.CanMoveCleaner(context.Background(), anna, monday, types.TimeString("10:00"), 2, 99)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestCanMoveCleaner_OtherBookingsStillBlock(t *testing.T) {
	anna := cleaner(1, "Anna", 1)

	svc := newService(
		[]domain.Cleaner{anna},
		map[int64][]*domain.Booking{
			1: {
				bookingFor(42, "10:00", 2, anna),
				bookingFor(43, "14:00", 2, anna),
			},
		},
	)

	// Бронирование 42 исключено, но 14:00-16:00 остается и блокирует 13:00
	ok, err := svc.CanMoveCleaner(context.Background(), anna, monday, types.TimeString("13:00"), 2, 42)
	require.NoError(t, err)
	assert.False(t, ok)

	// Утро свободно
	ok, err = svc.CanMoveCleaner(context.Background(), anna, monday, types.TimeString("08:00"), 2, 42)
	require.NoError(t, err)
	assert.True(t, ok)
}
