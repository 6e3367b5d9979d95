package get_analytics

import (
	"context"

	"github.com/m04kA/SMC-TheatreBooking/internal/domain"
)

type AnalyticsUseCase interface {
	Execute(ctx context.Context) (*domain.Analytics, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
