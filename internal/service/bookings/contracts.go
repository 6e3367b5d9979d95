package bookings

import (
	"context"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-TheatreBooking/internal/domain"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Booking, error)
	List(ctx context.Context, filter domain.BookingsFilter) ([]*domain.Booking, error)
	Count(ctx context.Context, filter domain.BookingsFilter) (int, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status domain.BookingStatus) error
}

// ActivityRepository интерфейс репозитория воронки
type ActivityRepository interface {
	List(ctx context.Context) ([]*domain.BookingActivity, error)
}

// Renderer формирует выгрузки для админки
type Renderer interface {
	BookingsXLSX(bookings []*domain.Booking) ([]byte, error)
	ConfirmationPDF(booking *domain.Booking) ([]byte, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
