package create_form

import (
	"context"

	"github.com/m04kA/SMC-TheatreBooking/internal/bookingform"
)

type FormService interface {
	Create(ctx context.Context) (*bookingform.Form, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
