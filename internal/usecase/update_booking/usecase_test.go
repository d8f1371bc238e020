package update_booking

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-CleaningService/internal/domain"
	bookingRepo "github.com/m04kA/SMC-CleaningService/internal/infra/storage/booking"
	"github.com/m04kA/SMC-CleaningService/internal/service/allocation"
	"github.com/m04kA/SMC-CleaningService/internal/service/availability"
	"github.com/m04kA/SMC-CleaningService/pkg/types"
)

var (
	monday = time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)
	friday = time.Date(2026, 3, 6, 0, 0, 0, 0, time.UTC)
)

// --- фейки ---

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

type passTxManager struct{}

func (passTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type fakeCleanerRepo struct {
	cleaners []domain.Cleaner
}

func (f *fakeCleanerRepo) ListAll(ctx context.Context) ([]domain.Cleaner, error) {
	return f.cleaners, nil
}

// fakeBookingRepo хранит бронирования в памяти и считает вызовы Update
type fakeBookingRepo struct {
	bookings    map[int64]*domain.Booking
	getByIDHits int
	updated     []*domain.Booking
}

func (f *fakeBookingRepo) GetByID(ctx context.Context, id int64) (*domain.Booking, error) {
	f.getByIDHits++
	b, ok := f.bookings[id]
	if !ok {
		return nil, bookingRepo.ErrBookingNotFound
	}
	copied := *b
	return &copied, nil
}

func (f *fakeBookingRepo) Update(ctx context.Context, booking *domain.Booking) (*domain.Booking, error) {
	stored := *booking
	stored.UpdatedAt = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	f.bookings[booking.ID] = &stored
	f.updated = append(f.updated, &stored)
	return &stored, nil
}

func (f *fakeBookingRepo) GetByDateAndCleaner(ctx context.Context, date time.Time, cleanerID int64) ([]*domain.Booking, error) {
	result := make([]*domain.Booking, 0)
	for _, b := range f.bookings {
		if b.Date.Equal(date) && b.HasCleaner(cleanerID) {
			result = append(result, b)
		}
	}
	return result, nil
}

func cleaner(id int64, name string, vehicleID int64) domain.Cleaner {
	return domain.Cleaner{
		ID:      id,
		Name:    name,
		Vehicle: domain.Vehicle{ID: vehicleID},
	}
}

func newUseCase(cleaners []domain.Cleaner, bookings ...*domain.Booking) (*UseCase, *fakeBookingRepo) {
	repo := &fakeBookingRepo{bookings: make(map[int64]*domain.Booking)}
	for _, b := range bookings {
		repo.bookings[b.ID] = b
	}

	availabilitySvc := availability.NewService(
		&fakeCleanerRepo{cleaners: cleaners},
		repo,
		domain.DefaultSchedule(),
		nopLogger{},
	)
	allocationSvc := allocation.NewService(nopLogger{})

	return NewUseCase(availabilitySvc, allocationSvc, repo, passTxManager{}, nopLogger{}), repo
}

func existingBooking(id int64, date time.Time, start string, hours int, cleaners ...domain.Cleaner) *domain.Booking {
	return &domain.Booking{
		ID:            id,
		Date:          date,
		StartTime:     types.TimeString(start),
		DurationHours: hours,
		Cleaners:      cleaners,
	}
}

// --- тесты ---

func TestExecute_NotFound(t *testing.T) {
	uc, _ := newUseCase([]domain.Cleaner{cleaner(1, "Anna", 1)})

	_, err := uc.Execute(context.Background(), &Request{
		BookingID:     99,
		Date:          monday,
		StartTime:     types.TimeString("10:00"),
		DurationHours: 2,
	})

	assert.ErrorIs(t, err, ErrBookingNotFound)
}

func TestExecute_AllCleanersRetained(t *testing.T) {
	anna := cleaner(1, "Anna", 1)
	boris := cleaner(2, "Boris", 1)

	uc, repo := newUseCase(
		[]domain.Cleaner{anna, boris},
		existingBooking(42, monday, "10:00", 2, anna, boris),
	)

	resp, err := uc.Execute(context.Background(), &Request{
		BookingID:     42,
		Date:          monday,
		StartTime:     types.TimeString("14:00"),
		DurationHours: 4,
	})
	require.NoError(t, err)

	assert.Equal(t, int64(42), resp.ID)
	assert.Equal(t, types.TimeString("14:00"), resp.StartTime)
	assert.Equal(t, 4, resp.DurationHours)
	assert.Equal(t, []int64{1, 2}, cleanerIDs(resp.Cleaners))

	require.Len(t, repo.updated, 1)
	assert.Equal(t, []int64{1, 2}, repo.updated[0].CleanerIDs())
}

func TestExecute_TopUpReplacesBusyCleaner(t *testing.T) {
	anna := cleaner(1, "Anna", 1)
	boris := cleaner(2, "Boris", 1)
	vera := cleaner(3, "Vera", 1)

	// Boris занят другим бронированием на новое время
	uc, repo := newUseCase(
		[]domain.Cleaner{anna, boris, vera},
		existingBooking(42, monday, "10:00", 2, anna, boris),
		existingBooking(43, monday, "14:00", 2, boris),
	)

	resp, err := uc.Execute(context.Background(), &Request{
		BookingID:     42,
		Date:          monday,
		StartTime:     types.TimeString("14:00"),
		DurationHours: 2,
	})
	require.NoError(t, err)

	// Anna сохраняется, Boris замещается Верой
	assert.Equal(t, []int64{1, 3}, cleanerIDs(resp.Cleaners))
	require.Len(t, repo.updated, 1)
}

func TestExecute_TopUpFailureRollsBackWhole(t *testing.T) {
	anna := cleaner(1, "Anna", 1)
	boris := cleaner(2, "Boris", 1)

	// Замещать Boris некем: других свободных клинеров нет
	uc, repo := newUseCase(
		[]domain.Cleaner{anna, boris},
		existingBooking(42, monday, "10:00", 2, anna, boris),
		existingBooking(43, monday, "14:00", 2, boris),
	)

	_, err := uc.Execute(context.Background(), &Request{
		BookingID:     42,
		Date:          monday,
		StartTime:     types.TimeString("14:00"),
		DurationHours: 2,
	})

	// Состав целиком или ничего: частичное обновление не записывается
	assert.ErrorIs(t, err, ErrNotEnoughCleaners)
	assert.Empty(t, repo.updated)
	assert.Equal(t, []int64{1, 2}, repo.bookings[42].CleanerIDs())
	assert.Equal(t, types.TimeString("10:00"), repo.bookings[42].StartTime)
}

func TestExecute_MoveToSameSlotSucceeds(t *testing.T) {
	anna := cleaner(1, "Anna", 1)

	// Перенос на то же время не конфликтует с самим переносимым бронированием
	uc, repo := newUseCase(
		[]domain.Cleaner{anna},
		existingBooking(42, monday, "10:00", 2, anna),
	)

	resp, err := uc.Execute(context.Background(), &Request{
		BookingID:     42,
		Date:          monday,
		StartTime:     types.TimeString("10:00"),
		DurationHours: 4,
	})
	require.NoError(t, err)

	assert.Equal(t, []int64{1}, cleanerIDs(resp.Cleaners))
	require.Len(t, repo.updated, 1)
	assert.Equal(t, 4, repo.updated[0].DurationHours)
}

func TestExecute_CalendarValidationBeforeLoad(t *testing.T) {
	anna := cleaner(1, "Anna", 1)

	uc, repo := newUseCase(
		[]domain.Cleaner{anna},
		existingBooking(42, monday, "10:00", 2, anna),
	)

	_, err := uc.Execute(context.Background(), &Request{
		BookingID:     42,
		Date:          friday,
		StartTime:     types.TimeString("10:00"),
		DurationHours: 2,
	})

	// Календарь проверяется до открытия транзакции и чтения бронирования
	assert.ErrorIs(t, err, domain.ErrNonWorkingDay)
	assert.Zero(t, repo.getByIDHits)
	assert.Empty(t, repo.updated)
}

func TestExecute_Validation(t *testing.T) {
	uc, _ := newUseCase([]domain.Cleaner{cleaner(1, "Anna", 1)})

	_, err := uc.Execute(context.Background(), &Request{
		BookingID:     0,
		Date:          monday,
		StartTime:     types.TimeString("10:00"),
		DurationHours: 2,
	})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = uc.Execute(context.Background(), &Request{
		BookingID:     42,
		Date:          monday,
		StartTime:     types.TimeString("10:00"),
		DurationHours: 3,
	})
	assert.ErrorIs(t, err, ErrInvalidDuration)
}

func cleanerIDs(cleaners []CleanerInfo) []int64 {
	ids := make([]int64, len(cleaners))
	for i, c := range cleaners {
		ids[i] = c.ID
	}
	return ids
}
