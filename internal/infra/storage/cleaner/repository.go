package cleaner

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/SMC-CleaningService/internal/domain"
	"github.com/m04kA/SMC-CleaningService/pkg/dbmetrics"
	"github.com/m04kA/SMC-CleaningService/pkg/psqlbuilder"
)

// Repository репозиторий для работы с клинерами и их автомобилями.
// Клинеры и автомобили создаются вне сервиса (справочные данные), поэтому
// репозиторий только читает.
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория клинеров
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// ListAll получает всех клинеров с их автомобилями, по возрастанию ID
func (r *Repository) ListAll(ctx context.Context) ([]domain.Cleaner, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"c.id",
		"c.name",
		"v.id",
		"v.name",
	).
		From("cleaners c").
		Join("vehicles v ON v.id = c.vehicle_id").
		OrderBy("c.id ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: ListAll - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListAll - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	cleaners := make([]domain.Cleaner, 0)
	for rows.Next() {
		var cleaner domain.Cleaner
		if err := rows.Scan(&cleaner.ID, &cleaner.Name, &cleaner.Vehicle.ID, &cleaner.Vehicle.Name); err != nil {
			return nil, fmt.Errorf("%w: ListAll - scan row: %v", ErrScanRow, err)
		}
		cleaners = append(cleaners, cleaner)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListAll - rows error: %v", ErrScanRow, err)
	}

	return cleaners, nil
}

// GetByID получает клинера по ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Cleaner, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"c.id",
		"c.name",
		"v.id",
		"v.name",
	).
		From("cleaners c").
		Join("vehicles v ON v.id = c.vehicle_id").
		Where(squirrel.Eq{"c.id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	var cleaner domain.Cleaner
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&cleaner.ID,
		&cleaner.Name,
		&cleaner.Vehicle.ID,
		&cleaner.Vehicle.Name,
	)
	if err == sql.ErrNoRows {
		return nil, ErrCleanerNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan cleaner: %v", ErrScanRow, err)
	}

	return &cleaner, nil
}
