package create_booking

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-CleaningService/internal/domain"
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

// passTxManager выполняет функцию без настоящей транзакции
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

// fakeBookingRepo обслуживает и сервис доступности, и запись нового бронирования
type fakeBookingRepo struct {
	byCleaner map[int64][]*domain.Booking
	created   []*domain.Booking
}

func (f *fakeBookingRepo) GetByDateAndCleaner(ctx context.Context, date time.Time, cleanerID int64) ([]*domain.Booking, error) {
	return f.byCleaner[cleanerID], nil
}

func (f *fakeBookingRepo) Create(ctx context.Context, booking *domain.Booking) (*domain.Booking, error) {
	stored := *booking
	stored.ID = int64(len(f.created) + 1)
	stored.CreatedAt = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	stored.UpdatedAt = stored.CreatedAt
	f.created = append(f.created, &stored)
	return &stored, nil
}

func cleaner(id int64, name string, vehicleID int64) domain.Cleaner {
	return domain.Cleaner{
		ID:      id,
		Name:    name,
		Vehicle: domain.Vehicle{ID: vehicleID},
	}
}

func newUseCase(cleaners []domain.Cleaner, byCleaner map[int64][]*domain.Booking) (*UseCase, *fakeBookingRepo) {
	repo := &fakeBookingRepo{byCleaner: byCleaner}
	availabilitySvc := availability.NewService(
		&fakeCleanerRepo{cleaners: cleaners},
		repo,
		domain.DefaultSchedule(),
		nopLogger{},
	)
	allocationSvc := allocation.NewService(nopLogger{})

	return NewUseCase(availabilitySvc, allocationSvc, repo, passTxManager{}, nopLogger{}), repo
}

// --- тесты ---

func TestExecute_CreatesBooking(t *testing.T) {
	uc, repo := newUseCase(
		[]domain.Cleaner{cleaner(1, "Anna", 1), cleaner(2, "Boris", 1)},
		nil,
	)

	resp, err := uc.Execute(context.Background(), &Request{
		Date:          monday,
		StartTime:     types.TimeString("10:00"),
		DurationHours: 2,
		CleanerCount:  2,
	})
	require.NoError(t, err)

	assert.Equal(t, int64(1), resp.ID)
	assert.Equal(t, monday, resp.Date)
	assert.Equal(t, types.TimeString("10:00"), resp.StartTime)
	assert.Equal(t, 2, resp.DurationHours)
	assert.Equal(t, 2, resp.CleanerCount)
	require.Len(t, resp.Cleaners, 2)
	assert.Equal(t, int64(1), resp.Cleaners[0].ID)
	assert.Equal(t, int64(2), resp.Cleaners[1].ID)

	require.Len(t, repo.created, 1)
	assert.Equal(t, []int64{1, 2}, repo.created[0].CleanerIDs())
}

func TestExecute_NonWorkingDay(t *testing.T) {
	uc, repo := newUseCase([]domain.Cleaner{cleaner(1, "Anna", 1)}, nil)

	_, err := uc.Execute(context.Background(), &Request{
		Date:          friday,
		StartTime:     types.TimeString("10:00"),
		DurationHours: 2,
		CleanerCount:  1,
	})

	assert.ErrorIs(t, err, domain.ErrNonWorkingDay)
	assert.Empty(t, repo.created)
}

func TestExecute_OutsideWorkingHours(t *testing.T) {
	uc, repo := newUseCase([]domain.Cleaner{cleaner(1, "Anna", 1)}, nil)

	_, err := uc.Execute(context.Background(), &Request{
		Date:          monday,
		StartTime:     types.TimeString("21:00"),
		DurationHours: 2,
		CleanerCount:  1,
	})

	assert.ErrorIs(t, err, domain.ErrOutsideWorkingHours)
	assert.Empty(t, repo.created)
}

func TestExecute_RespectsBreakBuffer(t *testing.T) {
	anna := cleaner(1, "Anna", 1)
	existing := &domain.Booking{
		ID:            10,
		Date:          monday,
		StartTime:     types.TimeString("09:00"),
		DurationHours: 2, // 09:00 - 11:00
		Cleaners:      []domain.Cleaner{anna},
	}

	newRequest := func(start string) *Request {
		return &Request{
			Date:          monday,
			StartTime:     types.TimeString(start),
			DurationHours: 2,
			CleanerCount:  1,
		}
	}

	// 11:20 — меньше 30 минут после конца существующего бронирования
	uc, repo := newUseCase([]domain.Cleaner{anna}, map[int64][]*domain.Booking{1: {existing}})
	_, err := uc.Execute(context.Background(), newRequest("11:20"))
	assert.ErrorIs(t, err, ErrNoCleanersAvailable)
	assert.Empty(t, repo.created)

	// 11:30 — ровно через перерыв, бронирование проходит
	uc, repo = newUseCase([]domain.Cleaner{anna}, map[int64][]*domain.Booking{1: {existing}})
	resp, err := uc.Execute(context.Background(), newRequest("11:30"))
	require.NoError(t, err)
	require.Len(t, repo.created, 1)
	assert.Equal(t, []int64{1}, repo.created[0].CleanerIDs())
	assert.Equal(t, types.TimeString("11:30"), resp.StartTime)
}

func TestExecute_NotEnoughCleanersOnOneVehicle(t *testing.T) {
	// Трое свободных, но максимум двое делят один автомобиль
	uc, repo := newUseCase(
		[]domain.Cleaner{cleaner(1, "Anna", 1), cleaner(2, "Boris", 1), cleaner(3, "Vera", 2)},
		nil,
	)

	_, err := uc.Execute(context.Background(), &Request{
		Date:          monday,
		StartTime:     types.TimeString("10:00"),
		DurationHours: 2,
		CleanerCount:  3,
	})

	assert.ErrorIs(t, err, ErrNotEnoughCleaners)
	assert.Empty(t, repo.created)
}

func TestExecute_Validation(t *testing.T) {
	uc, _ := newUseCase([]domain.Cleaner{cleaner(1, "Anna", 1)}, nil)

	_, err := uc.Execute(context.Background(), &Request{
		Date:          monday,
		StartTime:     types.TimeString("10:00"),
		DurationHours: 3,
		CleanerCount:  1,
	})
	assert.ErrorIs(t, err, ErrInvalidDuration)

	_, err = uc.Execute(context.Background(), &Request{
		Date:          monday,
		StartTime:     types.TimeString("10:00"),
		DurationHours: 2,
		CleanerCount:  0,
	})
	assert.ErrorIs(t, err, ErrInvalidCleanerCount)

	_, err = uc.Execute(context.Background(), &Request{
		StartTime:     types.TimeString("10:00"),
		DurationHours: 2,
		CleanerCount:  1,
	})
	assert.ErrorIs(t, err, ErrInvalidInput)
}
