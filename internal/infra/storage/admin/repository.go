package admin

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	"github.com/m04kA/SMC-TheatreBooking/internal/domain"
	"github.com/m04kA/SMC-TheatreBooking/pkg/psqlbuilder"
)

// Repository репозиторий администраторов
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetByEmail ищет администратора по email без учёта регистра
func (r *Repository) GetByEmail(ctx context.Context, email string) (*domain.Admin, error) {
	return r.get(ctx, "GetByEmail", squirrel.Eq{"lower(email)": strings.ToLower(strings.TrimSpace(email))})
}

// GetByID получает администратора по ID
func (r *Repository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Admin, error) {
	return r.get(ctx, "GetByID", squirrel.Eq{"id": id})
}

func (r *Repository) get(ctx context.Context, op string, where squirrel.Eq) (*domain.Admin, error) {
	query, args, err := psqlbuilder.Select("id", "email", "password_hash", "created_at").
		From("admins").
		Where(where).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: %s - build select query: %v", ErrBuildQuery, op, err)
	}

	var a domain.Admin
	err = r.db.QueryRowContext(ctx, query, args...).Scan(&a.ID, &a.Email, &a.PasswordHash, &a.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrAdminNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %s - scan admin: %v", ErrScanRow, op, err)
	}

	return &a, nil
}
