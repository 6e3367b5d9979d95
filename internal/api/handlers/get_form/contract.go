package get_form

import (
	"context"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-TheatreBooking/internal/bookingform"
)

type FormService interface {
	Get(ctx context.Context, id uuid.UUID) (*bookingform.Form, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
