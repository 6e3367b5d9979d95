package domain

import (
	"time"

	"github.com/google/uuid"
)

// Admin is a staff account allowed into the dashboard
type Admin struct {
	ID           uuid.UUID
	Email        string
	PasswordHash string
	CreatedAt    time.Time
}
