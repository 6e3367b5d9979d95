package forms

import (
	"context"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-TheatreBooking/internal/bookingform"
	"github.com/m04kA/SMC-TheatreBooking/internal/domain"
	"github.com/m04kA/SMC-TheatreBooking/internal/usecase/submit_booking"
)

// activityTracker пишет воронку в репозиторий и считает шаги в метриках
type activityTracker struct {
	repo    ActivityRepository
	metrics Metrics
}

func (t *activityTracker) CreateActivity(ctx context.Context, activity *domain.BookingActivity) (uuid.UUID, error) {
	id, err := t.repo.Create(ctx, activity)
	if err != nil {
		return uuid.Nil, err
	}
	t.metrics.FunnelStep(int(activity.StepCompleted))
	return id, nil
}

func (t *activityTracker) UpdateActivity(ctx context.Context, activity *domain.BookingActivity) error {
	if err := t.repo.Update(ctx, activity); err != nil {
		return err
	}
	t.metrics.FunnelStep(int(activity.StepCompleted))
	return nil
}

func submitterFor(uc BookingSubmitter) bookingform.Submitter {
	return bookingform.SubmitterFunc(func(ctx context.Context, sel *domain.BookingSelection, activityID *uuid.UUID) (*bookingform.Receipt, error) {
		resp, err := uc.Execute(ctx, &submit_booking.Request{
			Selection:  *sel,
			ActivityID: activityID,
		})
		if err != nil {
			return nil, err
		}
		return &bookingform.Receipt{
			BookingID:  resp.BookingID,
			TotalPrice: resp.TotalPrice,
			NotifyURL:  resp.NotifyURL,
		}, nil
	})
}
