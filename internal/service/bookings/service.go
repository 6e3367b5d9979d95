package bookings

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-TheatreBooking/internal/domain"
	bookingRepo "github.com/m04kA/SMC-TheatreBooking/internal/infra/storage/booking"
	"github.com/m04kA/SMC-TheatreBooking/internal/service/bookings/models"
)

const (
	contentTypeXLSX = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	contentTypePDF  = "application/pdf"
)

// Service сервис админки для работы с бронированиями
type Service struct {
	bookingRepo  BookingRepository
	activityRepo ActivityRepository
	renderer     Renderer
	now          func() time.Time
	logger       Logger
}

// NewService создает новый экземпляр сервиса бронирований
func NewService(
	bookingRepo BookingRepository,
	activityRepo ActivityRepository,
	renderer Renderer,
	logger Logger,
) *Service {
	return &Service{
		bookingRepo:  bookingRepo,
		activityRepo: activityRepo,
		renderer:     renderer,
		now:          time.Now,
		logger:       logger,
	}
}

// List возвращает страницу бронирований, новые первыми
func (s *Service) List(ctx context.Context, req *models.ListBookingsRequest) (*models.BookingListResponse, error) {
	status, err := models.ParseStatusFilter(req.Status)
	if err != nil {
		s.logger.Warn("List: invalid status filter=%q", req.Status)
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	page := req.Page
	if page < 1 {
		page = 1
	}
	pageSize := req.PageSize
	if pageSize <= 0 {
		pageSize = domain.DefaultPageSize
	}
	if pageSize > domain.MaxPageSize {
		pageSize = domain.MaxPageSize
	}

	filter := domain.BookingsFilter{Status: status, Search: req.Search}

	total, err := s.bookingRepo.Count(ctx, filter)
	if err != nil {
		s.logger.Error("List: failed to count bookings: %v", err)
		return nil, fmt.Errorf("%w: List - count bookings: %v", ErrInternal, err)
	}

	// Страница за пределами выборки пуста, смещение для неё не считаем
	totalPages := (total + pageSize - 1) / pageSize
	bookings := []*domain.Booking{}
	if page == 1 || page <= totalPages {
		filter.Limit = uint64(pageSize)
		filter.Offset = uint64((page - 1) * pageSize)

		bookings, err = s.bookingRepo.List(ctx, filter)
		if err != nil {
			s.logger.Error("List: failed to list bookings: %v", err)
			return nil, fmt.Errorf("%w: List - list bookings: %v", ErrInternal, err)
		}
	}

	s.logger.Info("List: page=%d returned %d of %d bookings", page, len(bookings), total)
	return &models.BookingListResponse{
		Bookings:   models.FromDomainBookingList(bookings),
		Total:      total,
		Page:       page,
		PageSize:   pageSize,
		TotalPages: totalPages,
	}, nil
}

// GetByID получает бронирование по ID
func (s *Service) GetByID(ctx context.Context, id uuid.UUID) (*models.BookingResponse, error) {
	booking, err := s.get(ctx, "GetByID", id)
	if err != nil {
		return nil, err
	}
	return models.FromDomainBooking(booking), nil
}

// UpdateStatus меняет статус и возвращает обновлённое бронирование
func (s *Service) UpdateStatus(ctx context.Context, id uuid.UUID, req *models.UpdateStatusRequest) (*models.BookingResponse, error) {
	newStatus, err := domain.ParseBookingStatus(req.Status)
	if err != nil {
		s.logger.Warn("UpdateStatus: invalid status=%q for booking id=%s", req.Status, id)
		return nil, ErrInvalidStatus
	}

	if err := s.bookingRepo.UpdateStatus(ctx, id, newStatus); err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("UpdateStatus: booking id=%s not found", id)
			return nil, ErrBookingNotFound
		}
		s.logger.Error("UpdateStatus: repository error for booking id=%s: %v", id, err)
		return nil, fmt.Errorf("%w: UpdateStatus - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("UpdateStatus: booking id=%s set to %s", id, newStatus)
	return s.GetByID(ctx, id)
}

// ListActivities возвращает воронку, последние активные первыми
func (s *Service) ListActivities(ctx context.Context) ([]models.ActivityResponse, error) {
	activities, err := s.activityRepo.List(ctx)
	if err != nil {
		s.logger.Error("ListActivities: repository error: %v", err)
		return nil, fmt.Errorf("%w: ListActivities - repository error: %v", ErrInternal, err)
	}
	return models.FromDomainActivities(activities), nil
}

// Export выгружает все бронирования по фильтру в XLSX
func (s *Service) Export(ctx context.Context, req *models.ExportRequest) (*models.Document, error) {
	status, err := models.ParseStatusFilter(req.Status)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	bookings, err := s.bookingRepo.List(ctx, domain.BookingsFilter{Status: status, Search: req.Search})
	if err != nil {
		s.logger.Error("Export: failed to list bookings: %v", err)
		return nil, fmt.Errorf("%w: Export - list bookings: %v", ErrInternal, err)
	}

	body, err := s.renderer.BookingsXLSX(bookings)
	if err != nil {
		s.logger.Error("Export: failed to render workbook: %v", err)
		return nil, fmt.Errorf("%w: Export - render: %v", ErrInternal, err)
	}

	s.logger.Info("Export: exported %d bookings", len(bookings))
	return &models.Document{
		Filename:    fmt.Sprintf("bookings_%s.xlsx", s.now().Format(domain.DateFormat)),
		ContentType: contentTypeXLSX,
		Body:        body,
	}, nil
}

// Confirmation формирует PDF подтверждения бронирования
func (s *Service) Confirmation(ctx context.Context, id uuid.UUID) (*models.Document, error) {
	booking, err := s.get(ctx, "Confirmation", id)
	if err != nil {
		return nil, err
	}

	body, err := s.renderer.ConfirmationPDF(booking)
	if err != nil {
		s.logger.Error("Confirmation: failed to render booking id=%s: %v", id, err)
		return nil, fmt.Errorf("%w: Confirmation - render: %v", ErrInternal, err)
	}

	return &models.Document{
		Filename:    fmt.Sprintf("booking-%s.pdf", booking.ID),
		ContentType: contentTypePDF,
		Body:        body,
	}, nil
}

func (s *Service) get(ctx context.Context, op string, id uuid.UUID) (*domain.Booking, error) {
	booking, err := s.bookingRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("%s: booking id=%s not found", op, id)
			return nil, ErrBookingNotFound
		}
		s.logger.Error("%s: repository error for booking id=%s: %v", op, id, err)
		return nil, fmt.Errorf("%w: %s - repository error: %v", ErrInternal, op, err)
	}
	return booking, nil
}
