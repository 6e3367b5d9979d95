package activity

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-TheatreBooking/internal/domain"
)

func newMock(t *testing.T) (*Repository, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return NewRepository(db), mock
}

var lastActive = time.Date(2026, 3, 14, 19, 5, 0, 0, time.UTC)

func TestCreate(t *testing.T) {
	repo, mock := newMock(t)
	id := uuid.New()

	mock.ExpectQuery(`INSERT INTO booking_activities \(name,email,phone,step_completed,last_active\)`).
		WithArgs("Asha Rao", "asha@example.com", "9876543210", 1, lastActive).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(id.String()))

	a := &domain.BookingActivity{
		Name:          "Asha Rao",
		Email:         "asha@example.com",
		Phone:         "9876543210",
		StepCompleted: domain.FunnelStepPersonalDetails,
		LastActive:    lastActive,
	}
	got, err := repo.Create(context.Background(), a)

	require.NoError(t, err)
	assert.Equal(t, id, got)
	assert.Equal(t, id, a.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdate(t *testing.T) {
	repo, mock := newMock(t)
	id := uuid.New()

	mock.ExpectExec(`UPDATE booking_activities SET .+ WHERE id = \$6`).
		WithArgs("Asha Rao", "asha@example.com", "9876543210", 2, lastActive, id).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.Update(context.Background(), &domain.BookingActivity{
		ID:            id,
		Name:          "Asha Rao",
		Email:         "asha@example.com",
		Phone:         "9876543210",
		StepCompleted: domain.FunnelStepBookingDetails,
		LastActive:    lastActive,
	})

	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDelete_NotFound(t *testing.T) {
	repo, mock := newMock(t)
	mock.ExpectExec(`DELETE FROM booking_activities WHERE id = \$1`).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.Delete(context.Background(), uuid.New())

	assert.ErrorIs(t, err, ErrActivityNotFound)
}

func TestList(t *testing.T) {
	repo, mock := newMock(t)
	id := uuid.New()

	mock.ExpectQuery(`SELECT id, name, email, phone, step_completed, last_active FROM booking_activities ORDER BY last_active DESC`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "email", "phone", "step_completed", "last_active"}).
			AddRow(id.String(), "Asha Rao", "asha@example.com", "9876543210", 2, lastActive))

	activities, err := repo.List(context.Background())

	require.NoError(t, err)
	require.Len(t, activities, 1)
	assert.Equal(t, domain.FunnelStepBookingDetails, activities[0].StepCompleted)
	assert.Equal(t, lastActive, activities[0].LastActive)
	assert.NoError(t, mock.ExpectationsWereMet())
}
