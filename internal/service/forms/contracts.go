package forms

import (
	"context"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-TheatreBooking/internal/bookingform"
	"github.com/m04kA/SMC-TheatreBooking/internal/domain"
	"github.com/m04kA/SMC-TheatreBooking/internal/usecase/submit_booking"
)

// FormStore хранилище сессий формы с блокировкой
type FormStore interface {
	Save(ctx context.Context, form *bookingform.Form) error
	Load(ctx context.Context, id uuid.UUID) (*bookingform.Form, error)
	Delete(ctx context.Context, id uuid.UUID) error
	AcquireLock(ctx context.Context, id uuid.UUID) (token string, ok bool, err error)
	ReleaseLock(ctx context.Context, id uuid.UUID, token string) error
}

// ActivityRepository интерфейс репозитория воронки
type ActivityRepository interface {
	Create(ctx context.Context, activity *domain.BookingActivity) (uuid.UUID, error)
	Update(ctx context.Context, activity *domain.BookingActivity) error
}

// BookingSubmitter use case сохранения бронирования
type BookingSubmitter interface {
	Execute(ctx context.Context, req *submit_booking.Request) (*submit_booking.Response, error)
}

// Metrics метрики воронки
type Metrics interface {
	FunnelStep(step int)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
