package timeslots

import (
	"context"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-TheatreBooking/internal/domain"
)

// TimeSlotRepository интерфейс репозитория временных слотов
type TimeSlotRepository interface {
	List(ctx context.Context, activeOnly bool) ([]*domain.TimeSlot, error)
	Create(ctx context.Context, slot *domain.TimeSlot, sortOrder int) (*domain.TimeSlot, error)
	SetActive(ctx context.Context, id uuid.UUID, active bool) error
	Delete(ctx context.Context, id uuid.UUID) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
