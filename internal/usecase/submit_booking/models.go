package submit_booking

import (
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-TheatreBooking/internal/domain"
)

// Request модель запроса на сохранение бронирования
type Request struct {
	Selection  domain.BookingSelection
	ActivityID *uuid.UUID // запись воронки, удаляется после успешного сохранения
}

// Response модель ответа с сохранённым бронированием
type Response struct {
	BookingID  uuid.UUID
	TotalPrice int64
	Status     domain.BookingStatus
	CreatedAt  time.Time
	NotifyURL  string // ссылка на чат с оператором
}
