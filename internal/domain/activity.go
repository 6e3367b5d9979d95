package domain

import (
	"time"

	"github.com/google/uuid"
)

// FunnelStep is the last form step a visitor completed
type FunnelStep int

const (
	FunnelStepPersonalDetails FunnelStep = 1
	FunnelStepBookingDetails  FunnelStep = 2
)

// IsValid returns true for the two tracked steps
func (s FunnelStep) IsValid() bool {
	return s == FunnelStepPersonalDetails || s == FunnelStepBookingDetails
}

// BookingActivity is a funnel record for a visitor who has not booked yet.
// It is deleted once the booking is submitted.
type BookingActivity struct {
	ID            uuid.UUID
	Name          string
	Email         string
	Phone         string
	StepCompleted FunnelStep
	LastActive    time.Time
}
