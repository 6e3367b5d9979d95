package models

import (
	"time"

	"github.com/m04kA/SMC-TheatreBooking/internal/domain"
)

// CreateSlotRequest запрос на добавление слота
type CreateSlotRequest struct {
	SlotTime string `json:"slot_time" validate:"required,max=16"`
	IsActive *bool  `json:"is_active,omitempty"` // по умолчанию true
}

// UpdateSlotRequest запрос на включение/выключение слота
type UpdateSlotRequest struct {
	IsActive *bool `json:"is_active" validate:"required"`
}

// SlotResponse слот в ответе
type SlotResponse struct {
	ID        string    `json:"id"`
	SlotTime  string    `json:"slot_time"`
	IsActive  bool      `json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
}

// FromDomainSlot конвертирует domain модель в DTO
func FromDomainSlot(s *domain.TimeSlot) SlotResponse {
	return SlotResponse{
		ID:        s.ID.String(),
		SlotTime:  s.SlotTime,
		IsActive:  s.IsActive,
		CreatedAt: s.CreatedAt,
	}
}

// FromDomainSlots конвертирует список слотов
func FromDomainSlots(slots []*domain.TimeSlot) []SlotResponse {
	result := make([]SlotResponse, 0, len(slots))
	for _, s := range slots {
		result = append(result, FromDomainSlot(s))
	}
	return result
}
