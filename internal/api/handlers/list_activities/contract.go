package list_activities

import (
	"context"

	"github.com/m04kA/SMC-TheatreBooking/internal/service/bookings/models"
)

type ActivityService interface {
	ListActivities(ctx context.Context) ([]models.ActivityResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
