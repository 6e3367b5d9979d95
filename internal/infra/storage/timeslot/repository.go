package timeslot

import (
	"context"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/lib/pq"

	"github.com/m04kA/SMC-TheatreBooking/internal/domain"
	"github.com/m04kA/SMC-TheatreBooking/pkg/psqlbuilder"
)

const (
	table = "time_slots"

	// uniqueViolation код ошибки PostgreSQL для нарушения уникальности
	uniqueViolation = "23505"
)

// Repository репозиторий временных слотов
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// List возвращает слоты, при activeOnly только включённые.
// Порядок по sort_order: минуты от полуночи
func (r *Repository) List(ctx context.Context, activeOnly bool) ([]*domain.TimeSlot, error) {
	selectBuilder := psqlbuilder.Select("id", "slot_time", "is_active", "created_at").
		From(table).
		OrderBy("sort_order ASC", "slot_time ASC")

	if activeOnly {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"is_active": true})
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: List - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: List - execute select: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	slots := make([]*domain.TimeSlot, 0)
	for rows.Next() {
		var s domain.TimeSlot
		if err := rows.Scan(&s.ID, &s.SlotTime, &s.IsActive, &s.CreatedAt); err != nil {
			return nil, fmt.Errorf("%w: List - scan slot: %v", ErrScanRow, err)
		}
		slots = append(slots, &s)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: List - rows error: %v", ErrScanRow, err)
	}

	return slots, nil
}

// Create добавляет слот. sortOrder - минуты от полуночи для сортировки
func (r *Repository) Create(ctx context.Context, slot *domain.TimeSlot, sortOrder int) (*domain.TimeSlot, error) {
	query, args, err := psqlbuilder.Insert(table).
		Columns("slot_time", "is_active", "sort_order").
		Values(slot.SlotTime, slot.IsActive, sortOrder).
		Suffix("RETURNING id, created_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	err = r.db.QueryRowContext(ctx, query, args...).Scan(&slot.ID, &slot.CreatedAt)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == uniqueViolation {
			return nil, ErrSlotExists
		}
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	return slot, nil
}

// SetActive включает или выключает слот
func (r *Repository) SetActive(ctx context.Context, id uuid.UUID, active bool) error {
	query, args, err := psqlbuilder.Update(table).
		Set("is_active", active).
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: SetActive - build update query: %v", ErrBuildQuery, err)
	}

	return r.exec(ctx, "SetActive", query, args)
}

// Delete удаляет слот
func (r *Repository) Delete(ctx context.Context, id uuid.UUID) error {
	query, args, err := psqlbuilder.Delete(table).
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Delete - build delete query: %v", ErrBuildQuery, err)
	}

	return r.exec(ctx, "Delete", query, args)
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
		return ErrSlotNotFound
	}

	return nil
}
