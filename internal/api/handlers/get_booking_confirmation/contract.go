package get_booking_confirmation

import (
	"context"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-TheatreBooking/internal/service/bookings/models"
)

type BookingService interface {
	Confirmation(ctx context.Context, id uuid.UUID) (*models.Document, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
