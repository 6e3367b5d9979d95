package models

import (
	"strings"
	"time"

	"github.com/m04kA/SMC-TheatreBooking/internal/domain"
)

// StatusAll значение фильтра без ограничения по статусу
const StatusAll = "all"

// Request модели

// ListBookingsRequest запрос админского списка
type ListBookingsRequest struct {
	Status   string // all, pending, confirmed, cancelled; пусто = all
	Search   string
	Page     int // с 1
	PageSize int // 0 - domain.DefaultPageSize
}

// ExportRequest фильтр выгрузки, без пагинации
type ExportRequest struct {
	Status string
	Search string
}

// UpdateStatusRequest запрос на смену статуса
type UpdateStatusRequest struct {
	Status string `json:"status"`
}

// Response модели

// BookingResponse бронирование в ответе админки
type BookingResponse struct {
	ID                string                   `json:"id"`
	Name              string                   `json:"name"`
	Phone             string                   `json:"phone"`
	Email             string                   `json:"email"`
	Address           string                   `json:"address"`
	Location          string                   `json:"location"`
	Date              string                   `json:"date"`
	Time              string                   `json:"time"`
	Package           string                   `json:"package"`
	Occasion          string                   `json:"occasion"`
	OccasionDetails   map[string]string        `json:"occasion_details"`
	Cake              string                   `json:"cake"`
	NeedsPackage      bool                     `json:"needs_package"`
	AdditionalOptions domain.AdditionalOptions `json:"additional_options"`
	TotalPrice        int64                    `json:"total_price"`
	Status            string                   `json:"status"`
	CreatedAt         time.Time                `json:"created_at"`
}

// BookingListResponse страница списка бронирований
type BookingListResponse struct {
	Bookings   []BookingResponse `json:"bookings"`
	Total      int               `json:"total"`
	Page       int               `json:"page"`
	PageSize   int               `json:"page_size"`
	TotalPages int               `json:"total_pages"`
}

// ActivityResponse запись воронки
type ActivityResponse struct {
	ID            string    `json:"id"`
	Name          string    `json:"name"`
	Email         string    `json:"email"`
	Phone         string    `json:"phone"`
	StepCompleted int       `json:"step_completed"`
	LastActive    time.Time `json:"last_active"`
}

// Document готовый файл выгрузки
type Document struct {
	Filename    string
	ContentType string
	Body        []byte
}

// Методы конвертации

// ParseStatusFilter переводит значение фильтра в domain. all и пустая строка дают nil
func ParseStatusFilter(raw string) (*domain.BookingStatus, error) {
	raw = strings.ToLower(strings.TrimSpace(raw))
	if raw == "" || raw == StatusAll {
		return nil, nil
	}
	status, err := domain.ParseBookingStatus(raw)
	if err != nil {
		return nil, err
	}
	return &status, nil
}

// FromDomainBooking конвертирует domain модель в DTO
func FromDomainBooking(b *domain.Booking) *BookingResponse {
	if b == nil {
		return nil
	}

	details := map[string]string{}
	if b.Occasion != nil {
		details = b.Occasion.Fields()
	}

	return &BookingResponse{
		ID:                b.ID.String(),
		Name:              b.Name,
		Phone:             b.Phone,
		Email:             b.Email,
		Address:           b.Address,
		Location:          b.Location,
		Date:              b.Date,
		Time:              b.Time,
		Package:           b.Package,
		Occasion:          string(b.OccasionKind()),
		OccasionDetails:   details,
		Cake:              b.Cake,
		NeedsPackage:      b.NeedsPackage,
		AdditionalOptions: b.AdditionalOptions,
		TotalPrice:        b.TotalPrice,
		Status:            string(b.Status),
		CreatedAt:         b.CreatedAt,
	}
}

// FromDomainBookingList конвертирует список бронирований
func FromDomainBookingList(bookings []*domain.Booking) []BookingResponse {
	result := make([]BookingResponse, 0, len(bookings))
	for _, b := range bookings {
		result = append(result, *FromDomainBooking(b))
	}
	return result
}

// FromDomainActivities конвертирует записи воронки
func FromDomainActivities(activities []*domain.BookingActivity) []ActivityResponse {
	result := make([]ActivityResponse, 0, len(activities))
	for _, a := range activities {
		result = append(result, ActivityResponse{
			ID:            a.ID.String(),
			Name:          a.Name,
			Email:         a.Email,
			Phone:         a.Phone,
			StepCompleted: int(a.StepCompleted),
			LastActive:    a.LastActive,
		})
	}
	return result
}
