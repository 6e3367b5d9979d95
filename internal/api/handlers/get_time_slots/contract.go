package get_time_slots

import (
	"context"

	"github.com/m04kA/SMC-TheatreBooking/internal/service/timeslots/models"
)

type TimeSlotService interface {
	ListActive(ctx context.Context) ([]models.SlotResponse, error)
	ListAll(ctx context.Context) ([]models.SlotResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
