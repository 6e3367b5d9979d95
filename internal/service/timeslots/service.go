package timeslots

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-TheatreBooking/internal/domain"
	slotRepo "github.com/m04kA/SMC-TheatreBooking/internal/infra/storage/timeslot"
	"github.com/m04kA/SMC-TheatreBooking/internal/service/timeslots/models"
	"github.com/m04kA/SMC-TheatreBooking/pkg/ptr"
)

// Service сервис управления временными слотами
type Service struct {
	repo   TimeSlotRepository
	logger Logger
}

// NewService создает новый экземпляр сервиса слотов
func NewService(repo TimeSlotRepository, logger Logger) *Service {
	return &Service{repo: repo, logger: logger}
}

// ListActive возвращает слоты, доступные для выбора на форме
func (s *Service) ListActive(ctx context.Context) ([]models.SlotResponse, error) {
	return s.list(ctx, "ListActive", true)
}

// ListAll возвращает все слоты для админки
func (s *Service) ListAll(ctx context.Context) ([]models.SlotResponse, error) {
	return s.list(ctx, "ListAll", false)
}

// Create добавляет слот. Время приводится к виду "2:00 PM",
// порядок сортировки - минуты от полуночи
func (s *Service) Create(ctx context.Context, req *models.CreateSlotRequest) (*models.SlotResponse, error) {
	slotTime, minutes, err := NormalizeSlotTime(req.SlotTime)
	if err != nil {
		s.logger.Warn("Create: invalid slot time=%q", req.SlotTime)
		return nil, err
	}

	slot := &domain.TimeSlot{
		SlotTime: slotTime,
		IsActive: req.IsActive == nil || ptr.Value(req.IsActive),
	}

	created, err := s.repo.Create(ctx, slot, minutes)
	if err != nil {
		if errors.Is(err, slotRepo.ErrSlotExists) {
			s.logger.Warn("Create: slot %s already exists", slotTime)
			return nil, ErrSlotExists
		}
		s.logger.Error("Create: repository error for slot %s: %v", slotTime, err)
		return nil, fmt.Errorf("%w: Create - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Create: added slot %s id=%s", created.SlotTime, created.ID)
	resp := models.FromDomainSlot(created)
	return &resp, nil
}

// SetActive включает или выключает слот
func (s *Service) SetActive(ctx context.Context, id uuid.UUID, active bool) error {
	if err := s.repo.SetActive(ctx, id, active); err != nil {
		return s.mapError("SetActive", id, err)
	}
	s.logger.Info("SetActive: slot id=%s active=%t", id, active)
	return nil
}

// Delete удаляет слот
func (s *Service) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return s.mapError("Delete", id, err)
	}
	s.logger.Info("Delete: slot id=%s removed", id)
	return nil
}

// NormalizeSlotTime разбирает "2:00 PM", "2:00pm" или "14:00"
// и возвращает каноничную запись и минуты от полуночи
func NormalizeSlotTime(raw string) (string, int, error) {
	value := strings.ToUpper(strings.Join(strings.Fields(raw), ""))
	for _, layout := range []string{"3:04PM", "15:04"} {
		t, err := time.Parse(layout, value)
		if err == nil {
			return t.Format(domain.SlotTimeFormat), t.Hour()*60 + t.Minute(), nil
		}
	}
	return "", 0, ErrInvalidSlotTime
}

func (s *Service) list(ctx context.Context, op string, activeOnly bool) ([]models.SlotResponse, error) {
	slots, err := s.repo.List(ctx, activeOnly)
	if err != nil {
		s.logger.Error("%s: repository error: %v", op, err)
		return nil, fmt.Errorf("%w: %s - repository error: %v", ErrInternal, op, err)
	}
	return models.FromDomainSlots(slots), nil
}

func (s *Service) mapError(op string, id uuid.UUID, err error) error {
	if errors.Is(err, slotRepo.ErrSlotNotFound) {
		s.logger.Warn("%s: slot id=%s not found", op, id)
		return ErrSlotNotFound
	}
	s.logger.Error("%s: repository error for slot id=%s: %v", op, id, err)
	return fmt.Errorf("%w: %s - repository error: %v", ErrInternal, op, err)
}
