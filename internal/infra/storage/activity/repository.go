package activity

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	"github.com/m04kA/SMC-TheatreBooking/internal/domain"
	"github.com/m04kA/SMC-TheatreBooking/pkg/psqlbuilder"
)

const table = "booking_activities"

// Repository репозиторий записей воронки бронирования
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает запись воронки и возвращает её id
func (r *Repository) Create(ctx context.Context, activity *domain.BookingActivity) (uuid.UUID, error) {
	query, args, err := psqlbuilder.Insert(table).
		Columns("name", "email", "phone", "step_completed", "last_active").
		Values(activity.Name, activity.Email, activity.Phone, int(activity.StepCompleted), activity.LastActive).
		Suffix("RETURNING id").
		ToSql()

	if err != nil {
		return uuid.Nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var id uuid.UUID
	if err := r.db.QueryRowContext(ctx, query, args...).Scan(&id); err != nil {
		return uuid.Nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	activity.ID = id
	return id, nil
}

// Update обновляет шаг и время активности существующей записи
func (r *Repository) Update(ctx context.Context, activity *domain.BookingActivity) error {
	query, args, err := psqlbuilder.Update(table).
		Set("name", activity.Name).
		Set("email", activity.Email).
		Set("phone", activity.Phone).
		Set("step_completed", int(activity.StepCompleted)).
		Set("last_active", activity.LastActive).
		Where(squirrel.Eq{"id": activity.ID}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Update - build update query: %v", ErrBuildQuery, err)
	}

	return r.exec(ctx, "Update", query, args)
}

// Delete удаляет запись воронки после успешного бронирования
func (r *Repository) Delete(ctx context.Context, id uuid.UUID) error {
	query, args, err := psqlbuilder.Delete(table).
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Delete - build delete query: %v", ErrBuildQuery, err)
	}

	return r.exec(ctx, "Delete", query, args)
}

// List возвращает все записи воронки, свежие первыми
func (r *Repository) List(ctx context.Context) ([]*domain.BookingActivity, error) {
	query, args, err := psqlbuilder.Select("id", "name", "email", "phone", "step_completed", "last_active").
		From(table).
		OrderBy("last_active DESC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: List - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: List - execute select: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	activities := make([]*domain.BookingActivity, 0)
	for rows.Next() {
		var (
			a    domain.BookingActivity
			step int
		)
		if err := rows.Scan(&a.ID, &a.Name, &a.Email, &a.Phone, &step, &a.LastActive); err != nil {
			return nil, fmt.Errorf("%w: List - scan activity: %v", ErrScanRow, err)
		}
		a.StepCompleted = domain.FunnelStep(step)
		activities = append(activities, &a)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: List - rows error: %v", ErrScanRow, err)
	}

	return activities, nil
}

func (r *Repository) exec(ctx context.Context, op, query string, args []interface{}) error {
	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: %s - execute: %v", ErrExecQuery, op, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %s - get rows affected: %v", ErrExecQuery, op, err)
	}

	if rowsAffected == 0 {
		return ErrActivityNotFound
	}

	return nil
}
