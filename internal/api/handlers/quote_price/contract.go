package quote_price

import (
	"github.com/m04kA/SMC-TheatreBooking/internal/domain"
	"github.com/m04kA/SMC-TheatreBooking/internal/pricing"
)

// PriceCalculator считает цену выбора
type PriceCalculator interface {
	Breakdown(sel *domain.BookingSelection) []pricing.Line
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
