package export_bookings

import (
	"context"

	"github.com/m04kA/SMC-TheatreBooking/internal/service/bookings/models"
)

type BookingService interface {
	Export(ctx context.Context, req *models.ExportRequest) (*models.Document, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
