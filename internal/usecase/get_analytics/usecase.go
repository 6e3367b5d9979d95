package get_analytics

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/m04kA/SMC-TheatreBooking/internal/domain"
)

// UseCase use case для расчёта аналитики админки
type UseCase struct {
	bookingRepo  BookingRepository
	activityRepo ActivityRepository
	timeProvider TimeProvider
	loc          *time.Location
	logger       Logger
}

// NewUseCase создает новый экземпляр use case. loc - часовой пояс площадки,
// в нём считаются окна выручки и часы пик
func NewUseCase(bookingRepo BookingRepository, activityRepo ActivityRepository, loc *time.Location, logger Logger) *UseCase {
	if loc == nil {
		loc = time.UTC
	}
	return &UseCase{
		bookingRepo:  bookingRepo,
		activityRepo: activityRepo,
		timeProvider: &RealTimeProvider{},
		loc:          loc,
		logger:       logger,
	}
}

// WithTimeProvider подменяет источник времени (для тестов)
func (uc *UseCase) WithTimeProvider(tp TimeProvider) *UseCase {
	uc.timeProvider = tp
	return uc
}

// Execute читает бронирования и воронку параллельно и считает сводку.
// Ничего не сохраняет: каждый вызов пересчитывает всё заново
func (uc *UseCase) Execute(ctx context.Context) (*domain.Analytics, error) {
	var (
		bookings   []*domain.Booking
		activities []*domain.BookingActivity
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		bookings, err = uc.bookingRepo.List(gctx, domain.BookingsFilter{})
		if err != nil {
			return fmt.Errorf("list bookings: %v", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		activities, err = uc.activityRepo.List(gctx)
		if err != nil {
			return fmt.Errorf("list activities: %v", err)
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		uc.logger.Error("GetAnalytics: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrInternal, err)
	}

	analytics := Aggregate(bookings, activities, uc.timeProvider.Now().In(uc.loc))
	uc.logger.Info("GetAnalytics: bookings=%d, activities=%d, revenue=%d",
		analytics.TotalBookings, analytics.TotalVisitors, analytics.TotalRevenue)

	return &analytics, nil
}
