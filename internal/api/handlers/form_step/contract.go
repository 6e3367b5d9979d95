package form_step

import (
	"context"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-TheatreBooking/internal/bookingform"
)

// Action один переход формы: next, back, submit или reset
type Action func(ctx context.Context, id uuid.UUID) (*bookingform.Form, error)

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
