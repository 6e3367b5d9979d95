package submit_booking

import (
	"context"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-TheatreBooking/internal/domain"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	Create(ctx context.Context, booking *domain.Booking) (*domain.Booking, error)
}

// ActivityRepository интерфейс репозитория воронки
type ActivityRepository interface {
	Delete(ctx context.Context, id uuid.UUID) error
}

// Notifier формирует ссылку для уведомления оператора
type Notifier interface {
	BookingLink(booking *domain.Booking) string
}

// Metrics бизнес-метрики отправки бронирований
type Metrics interface {
	BookingSubmitted()
	BookingSubmitFailed()
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
