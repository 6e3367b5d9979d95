package bookingform

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-TheatreBooking/internal/domain"
)

// ActivityTracker stores funnel records
type ActivityTracker interface {
	CreateActivity(ctx context.Context, activity *domain.BookingActivity) (uuid.UUID, error)
	UpdateActivity(ctx context.Context, activity *domain.BookingActivity) error
}

// Submitter persists the validated selection. The activity id, if any,
// is handed over so the record can be cleaned up after a successful save.
type Submitter interface {
	Submit(ctx context.Context, sel *domain.BookingSelection, activityID *uuid.UUID) (*Receipt, error)
}

// SubmitterFunc adapts a function to Submitter
type SubmitterFunc func(ctx context.Context, sel *domain.BookingSelection, activityID *uuid.UUID) (*Receipt, error)

func (f SubmitterFunc) Submit(ctx context.Context, sel *domain.BookingSelection, activityID *uuid.UUID) (*Receipt, error) {
	return f(ctx, sel, activityID)
}

// Catalog answers whether a selected id is on offer
type Catalog interface {
	HasPackage(id string) bool
	HasCake(id string) bool
	HasFogEntry(id string) bool
}

// Receipt is what the customer sees after a successful submission
type Receipt struct {
	BookingID  uuid.UUID `json:"booking_id"`
	TotalPrice int64     `json:"total_price"`
	NotifyURL  string    `json:"notify_url"`
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// TimeProvider интерфейс для получения текущего времени
type TimeProvider interface {
	Now() time.Time
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
