package booking

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/SMC-CleaningService/internal/domain"
	"github.com/m04kA/SMC-CleaningService/pkg/dbmetrics"
	"github.com/m04kA/SMC-CleaningService/pkg/psqlbuilder"
)

// Repository репозиторий для работы с бронированиями.
// Состав клинеров хранится в junction-таблице booking_cleaners.
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория бронирований
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает бронирование вместе с назначенными клинерами.
// Если в контексте передана активная транзакция, использует её — при создании
// бронирования с проверкой доступности это обязательно, иначе возможна гонка
// между проверкой и вставкой.
func (r *Repository) Create(ctx context.Context, booking *domain.Booking) (*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("bookings").
		Columns("booking_date", "start_time", "duration_hours").
		Values(booking.Date, booking.StartTime, booking.DurationHours).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&booking.ID,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	booking.CreatedAt = createdAt.Time
	booking.UpdatedAt = updatedAt.Time

	if err := r.insertCleaners(ctx, executor, booking.ID, booking.Cleaners); err != nil {
		return nil, err
	}

	return booking, nil
}

// Update перезаписывает дату, время, длительность и состав клинеров
// существующего бронирования. Вызывается только внутри транзакции
// (см. usecase обновления): перезапись состава выполняется как
// delete + insert в junction-таблице и не должна быть видна частично.
func (r *Repository) Update(ctx context.Context, booking *domain.Booking) (*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("bookings").
		Set("booking_date", booking.Date).
		Set("start_time", booking.StartTime).
		Set("duration_hours", booking.DurationHours).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": booking.ID}).
		Suffix("RETURNING created_at, updated_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Update - build update query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(&createdAt, &updatedAt)
	if err == sql.ErrNoRows {
		return nil, ErrBookingNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: Update - execute update: %v", ErrExecQuery, err)
	}

	booking.CreatedAt = createdAt.Time
	booking.UpdatedAt = updatedAt.Time

	deleteQuery, deleteArgs, err := psqlbuilder.Delete("booking_cleaners").
		Where(squirrel.Eq{"booking_id": booking.ID}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Update - build delete query: %v", ErrBuildQuery, err)
	}

	if _, err := executor.ExecContext(ctx, deleteQuery, deleteArgs...); err != nil {
		return nil, fmt.Errorf("%w: Update - delete cleaners: %v", ErrExecQuery, err)
	}

	if err := r.insertCleaners(ctx, executor, booking.ID, booking.Cleaners); err != nil {
		return nil, err
	}

	return booking, nil
}

// GetByID получает бронирование по ID вместе с составом клинеров.
// Внутри транзакции строка бронирования блокируется (FOR UPDATE), чтобы
// конкурентное обновление того же бронирования ждало завершения текущего.
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(
		"id",
		"booking_date",
		"start_time",
		"duration_hours",
		"created_at",
		"updated_at",
	).
		From("bookings").
		Where(squirrel.Eq{"id": id})

	if dbmetrics.IsInTransaction(ctx) {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	booking, err := r.scanBooking(executor.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, ErrBookingNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan booking: %v", ErrScanRow, err)
	}

	cleaners, err := r.loadCleaners(ctx, executor, booking.ID)
	if err != nil {
		return nil, err
	}
	booking.Cleaners = cleaners

	return booking, nil
}

// GetByDateAndCleaner получает бронирования клинера на дату, по возрастанию
// времени начала. Состав клинеров не загружается — для расчёта доступности
// нужны только интервалы и ID бронирования.
//
// Внутри транзакции строки блокируются (FOR UPDATE OF b): на время принятия
// решения о доступности конкурентное создание/перенос по тому же клинеру
// сериализуется.
func (r *Repository) GetByDateAndCleaner(ctx context.Context, date time.Time, cleanerID int64) ([]*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(
		"b.id",
		"b.booking_date",
		"b.start_time",
		"b.duration_hours",
		"b.created_at",
		"b.updated_at",
	).
		From("bookings b").
		Join("booking_cleaners bc ON bc.booking_id = b.id").
		Where(squirrel.Eq{"b.booking_date": date, "bc.cleaner_id": cleanerID}).
		OrderBy("b.start_time ASC")

	if dbmetrics.IsInTransaction(ctx) {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE OF b")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByDateAndCleaner - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetByDateAndCleaner - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return r.scanBookings(rows)
}

// ListByDate получает все бронирования на дату с составом клинеров
func (r *Repository) ListByDate(ctx context.Context, date time.Time) ([]*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"id",
		"booking_date",
		"start_time",
		"duration_hours",
		"created_at",
		"updated_at",
	).
		From("bookings").
		Where(squirrel.Eq{"booking_date": date}).
		OrderBy("start_time ASC, id ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: ListByDate - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListByDate - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	bookings, err := r.scanBookings(rows)
	if err != nil {
		return nil, err
	}

	for _, b := range bookings {
		cleaners, err := r.loadCleaners(ctx, executor, b.ID)
		if err != nil {
			return nil, err
		}
		b.Cleaners = cleaners
	}

	return bookings, nil
}

// insertCleaners вставляет записи junction-таблицы для состава бронирования
func (r *Repository) insertCleaners(ctx context.Context, executor DBExecutor, bookingID int64, cleaners []domain.Cleaner) error {
	if len(cleaners) == 0 {
		return nil
	}

	insertBuilder := psqlbuilder.Insert("booking_cleaners").
		Columns("booking_id", "cleaner_id")
	for _, cleaner := range cleaners {
		insertBuilder = insertBuilder.Values(bookingID, cleaner.ID)
	}

	query, args, err := insertBuilder.ToSql()
	if err != nil {
		return fmt.Errorf("%w: insertCleaners - build insert query: %v", ErrBuildQuery, err)
	}

	if _, err := executor.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: insertCleaners - execute insert: %v", ErrExecQuery, err)
	}

	return nil
}

// loadCleaners загружает состав клинеров бронирования вместе с их автомобилями
func (r *Repository) loadCleaners(ctx context.Context, executor DBExecutor, bookingID int64) ([]domain.Cleaner, error) {
	query, args, err := psqlbuilder.Select(
		"c.id",
		"c.name",
		"v.id",
		"v.name",
	).
		From("booking_cleaners bc").
		Join("cleaners c ON c.id = bc.cleaner_id").
		Join("vehicles v ON v.id = c.vehicle_id").
		Where(squirrel.Eq{"bc.booking_id": bookingID}).
		OrderBy("c.id ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: loadCleaners - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: loadCleaners - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	cleaners := make([]domain.Cleaner, 0)
	for rows.Next() {
		var cleaner domain.Cleaner
		if err := rows.Scan(&cleaner.ID, &cleaner.Name, &cleaner.Vehicle.ID, &cleaner.Vehicle.Name); err != nil {
			return nil, fmt.Errorf("%w: loadCleaners - scan row: %v", ErrScanRow, err)
		}
		cleaners = append(cleaners, cleaner)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: loadCleaners - rows error: %v", ErrScanRow, err)
	}

	return cleaners, nil
}

// scanBooking сканирует одну строку бронирования
func (r *Repository) scanBooking(row *sql.Row) (*domain.Booking, error) {
	var booking domain.Booking
	var createdAt, updatedAt sql.NullTime

	err := row.Scan(
		&booking.ID,
		&booking.Date,
		&booking.StartTime,
		&booking.DurationHours,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	booking.CreatedAt = createdAt.Time
	booking.UpdatedAt = updatedAt.Time

	return &booking, nil
}

// scanBookings сканирует результаты запроса в слайс бронирований
func (r *Repository) scanBookings(rows *sql.Rows) ([]*domain.Booking, error) {
	bookings := make([]*domain.Booking, 0)

	for rows.Next() {
		var booking domain.Booking
		var createdAt, updatedAt sql.NullTime

		err := rows.Scan(
			&booking.ID,
			&booking.Date,
			&booking.StartTime,
			&booking.DurationHours,
			&createdAt,
			&updatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("%w: scanBookings - scan row: %v", ErrScanRow, err)
		}

		booking.CreatedAt = createdAt.Time
		booking.UpdatedAt = updatedAt.Time

		bookings = append(bookings, &booking)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: scanBookings - rows error: %v", ErrScanRow, err)
	}

	return bookings, nil
}
