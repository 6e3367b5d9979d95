package booking

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	"github.com/m04kA/SMC-TheatreBooking/internal/domain"
	"github.com/m04kA/SMC-TheatreBooking/pkg/psqlbuilder"
)

const table = "bookings"

var columns = []string{
	"id",
	"name",
	"phone",
	"email",
	"address",
	"location",
	"booking_date",
	"booking_time",
	"package",
	"occasion",
	"occasion_details",
	"cake",
	"needs_package",
	"additional_options",
	"total_price",
	"status",
	"created_at",
}

// searchColumns колонки для текстового поиска в админке
var searchColumns = []string{"name", "email", "phone", "location", "occasion"}

// Repository репозиторий для работы с бронированиями
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория бронирований
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create сохраняет бронирование, id и created_at назначает база
func (r *Repository) Create(ctx context.Context, booking *domain.Booking) (*domain.Booking, error) {
	details, err := domain.MarshalOccasionDetails(booking.Occasion)
	if err != nil {
		return nil, fmt.Errorf("%w: Create - occasion details: %v", ErrEncode, err)
	}
	options, err := json.Marshal(booking.AdditionalOptions)
	if err != nil {
		return nil, fmt.Errorf("%w: Create - additional options: %v", ErrEncode, err)
	}

	query, args, err := psqlbuilder.Insert(table).
		Columns(
			"name",
			"phone",
			"email",
			"address",
			"location",
			"booking_date",
			"booking_time",
			"package",
			"occasion",
			"occasion_details",
			"cake",
			"needs_package",
			"additional_options",
			"total_price",
			"status",
		).
		Values(
			booking.Name,
			booking.Phone,
			booking.Email,
			booking.Address,
			booking.Location,
			booking.Date,
			booking.Time,
			booking.Package,
			string(booking.OccasionKind()),
			[]byte(details),
			booking.Cake,
			booking.NeedsPackage,
			options,
			booking.TotalPrice,
			booking.Status,
		).
		Suffix("RETURNING id, created_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	err = r.db.QueryRowContext(ctx, query, args...).Scan(&booking.ID, &booking.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	return booking, nil
}

// GetByID получает бронирование по ID
func (r *Repository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Booking, error) {
	query, args, err := psqlbuilder.Select(columns...).
		From(table).
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	booking, err := scanBooking(r.db.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrBookingNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan booking: %v", ErrScanRow, err)
	}

	return booking, nil
}

// List возвращает бронирования по фильтру, новые первыми
func (r *Repository) List(ctx context.Context, filter domain.BookingsFilter) ([]*domain.Booking, error) {
	selectBuilder := applyFilter(psqlbuilder.Select(columns...).From(table), filter).
		OrderBy("created_at DESC")

	if filter.Limit > 0 {
		selectBuilder = selectBuilder.Limit(filter.Limit)
	}
	if filter.Offset > 0 {
		selectBuilder = selectBuilder.Offset(filter.Offset)
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

	bookings := make([]*domain.Booking, 0)
	for rows.Next() {
		booking, err := scanBooking(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: List - scan booking: %v", ErrScanRow, err)
		}
		bookings = append(bookings, booking)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: List - rows error: %v", ErrScanRow, err)
	}

	return bookings, nil
}

// Count считает бронирования по фильтру без учёта пагинации
func (r *Repository) Count(ctx context.Context, filter domain.BookingsFilter) (int, error) {
	query, args, err := applyFilter(psqlbuilder.Select("COUNT(*)").From(table), filter).ToSql()
	if err != nil {
		return 0, fmt.Errorf("%w: Count - build select query: %v", ErrBuildQuery, err)
	}

	var total int
	if err := r.db.QueryRowContext(ctx, query, args...).Scan(&total); err != nil {
		return 0, fmt.Errorf("%w: Count - scan count: %v", ErrScanRow, err)
	}

	return total, nil
}

// UpdateStatus меняет статус бронирования, последняя запись побеждает
func (r *Repository) UpdateStatus(ctx context.Context, id uuid.UUID, status domain.BookingStatus) error {
	query, args, err := psqlbuilder.Update(table).
		Set("status", status).
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - build update query: %v", ErrBuildQuery, err)
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrBookingNotFound
	}

	return nil
}

func applyFilter(b squirrel.SelectBuilder, filter domain.BookingsFilter) squirrel.SelectBuilder {
	if filter.Status != nil {
		b = b.Where(squirrel.Eq{"status": *filter.Status})
	}

	if search := strings.TrimSpace(filter.Search); search != "" {
		pattern := "%" + escapeLike(search) + "%"
		or := make(squirrel.Or, 0, len(searchColumns))
		for _, col := range searchColumns {
			or = append(or, squirrel.ILike{col: pattern})
		}
		b = b.Where(or)
	}

	return b
}

// escapeLike экранирует спецсимволы LIKE
func escapeLike(s string) string {
	return strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`).Replace(s)
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanBooking(row rowScanner) (*domain.Booking, error) {
	var (
		booking  domain.Booking
		occasion string
		details  []byte
		options  []byte
	)

	err := row.Scan(
		&booking.ID,
		&booking.Name,
		&booking.Phone,
		&booking.Email,
		&booking.Address,
		&booking.Location,
		&booking.Date,
		&booking.Time,
		&booking.Package,
		&occasion,
		&details,
		&booking.Cake,
		&booking.NeedsPackage,
		&options,
		&booking.TotalPrice,
		&booking.Status,
		&booking.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	booking.Occasion, err = domain.UnmarshalOccasionDetails(domain.OccasionKind(occasion), details)
	if err != nil {
		return nil, err
	}

	if len(options) > 0 {
		if err := json.Unmarshal(options, &booking.AdditionalOptions); err != nil {
			return nil, fmt.Errorf("additional options: %w", err)
		}
	}

	return &booking, nil
}
