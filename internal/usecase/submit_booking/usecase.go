package submit_booking

import (
	"context"
	"fmt"

	"github.com/m04kA/SMC-TheatreBooking/internal/domain"
	"github.com/m04kA/SMC-TheatreBooking/internal/pricing"
)

// UseCase use case для сохранения бронирования
type UseCase struct {
	bookingRepo  BookingRepository
	activityRepo ActivityRepository
	catalog      *pricing.Catalog
	notifier     Notifier
	metrics      Metrics
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepo BookingRepository,
	activityRepo ActivityRepository,
	catalog *pricing.Catalog,
	notifier Notifier,
	metrics Metrics,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo:  bookingRepo,
		activityRepo: activityRepo,
		catalog:      catalog,
		notifier:     notifier,
		metrics:      metrics,
		logger:       logger,
	}
}

// Execute сохраняет бронирование. Повторных попыток нет: при ошибке
// клиент отправляет форму ещё раз
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	sel := &req.Selection
	uc.logger.Info("SubmitBooking: phone=%s, location=%s, date=%s, time=%s, package=%s",
		sel.Phone, sel.Location, sel.Date, sel.Time, sel.Package)

	// 1. Валидация входных данных
	if err := validateRequest(req, uc.catalog); err != nil {
		uc.logger.Warn("SubmitBooking: validation failed: %v", err)
		uc.metrics.BookingSubmitFailed()
		return nil, err
	}

	// 2. Считаем цену заново, ранее показанной сумме не доверяем
	booking := &domain.Booking{
		PersonalDetails:   sel.PersonalDetails,
		Location:          sel.Location,
		Date:              sel.Date,
		Time:              sel.Time,
		Package:           sel.Package,
		Occasion:          sel.Occasion,
		Cake:              sel.Cake,
		NeedsPackage:      sel.NeedsPackage.Bool(),
		AdditionalOptions: sel.AdditionalOptions,
		TotalPrice:        uc.catalog.Calculate(sel),
		Status:            domain.StatusPending,
	}

	// 3. Сохраняем бронирование
	created, err := uc.bookingRepo.Create(ctx, booking)
	if err != nil {
		uc.logger.Error("SubmitBooking: failed to create booking: %v", err)
		uc.metrics.BookingSubmitFailed()
		return nil, fmt.Errorf("%w: failed to create booking: %v", ErrInternal, err)
	}
	uc.metrics.BookingSubmitted()

	// 4. Удаляем запись воронки, ошибка не влияет на результат
	if req.ActivityID != nil {
		if err := uc.activityRepo.Delete(ctx, *req.ActivityID); err != nil {
			uc.logger.Warn("SubmitBooking: failed to delete activity id=%s: %v", *req.ActivityID, err)
		}
	}

	uc.logger.Info("SubmitBooking: created booking id=%s, total=%d", created.ID, created.TotalPrice)

	return &Response{
		BookingID:  created.ID,
		TotalPrice: created.TotalPrice,
		Status:     created.Status,
		CreatedAt:  created.CreatedAt,
		NotifyURL:  uc.notifier.BookingLink(created),
	}, nil
}
