package domain

import (
	"time"

	"github.com/google/uuid"
)

// TimeSlot is a bookable start time shown on the form, e.g. "2:00 PM"
type TimeSlot struct {
	ID        uuid.UUID
	SlotTime  string
	IsActive  bool
	CreatedAt time.Time
}
