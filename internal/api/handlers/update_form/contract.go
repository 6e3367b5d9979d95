package update_form

import (
	"context"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-TheatreBooking/internal/bookingform"
	"github.com/m04kA/SMC-TheatreBooking/internal/service/forms"
)

type FormService interface {
	Update(ctx context.Context, id uuid.UUID, edits []forms.FieldEdit) (*bookingform.Form, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
