package timeslot

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/lib/pq"
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

func TestList_ActiveOnly(t *testing.T) {
	repo, mock := newMock(t)
	id := uuid.New()
	created := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)

	mock.ExpectQuery(`SELECT id, slot_time, is_active, created_at FROM time_slots WHERE is_active = \$1 ORDER BY sort_order ASC, slot_time ASC`).
		WithArgs(true).
		WillReturnRows(sqlmock.NewRows([]string{"id", "slot_time", "is_active", "created_at"}).
			AddRow(id.String(), "2:00 PM", true, created))

	slots, err := repo.List(context.Background(), true)

	require.NoError(t, err)
	require.Len(t, slots, 1)
	assert.Equal(t, "2:00 PM", slots[0].SlotTime)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreate_Duplicate(t *testing.T) {
	repo, mock := newMock(t)
	mock.ExpectQuery(`INSERT INTO time_slots`).
		WithArgs("2:00 PM", true, 840).
		WillReturnError(&pq.Error{Code: "23505"})

	_, err := repo.Create(context.Background(), &domain.TimeSlot{SlotTime: "2:00 PM", IsActive: true}, 840)

	assert.ErrorIs(t, err, ErrSlotExists)
}

func TestSetActive(t *testing.T) {
	repo, mock := newMock(t)
	id := uuid.New()

	mock.ExpectExec(`UPDATE time_slots SET is_active = \$1 WHERE id = \$2`).
		WithArgs(false, id).
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, repo.SetActive(context.Background(), id, false))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDelete_NotFound(t *testing.T) {
	repo, mock := newMock(t)
	mock.ExpectExec(`DELETE FROM time_slots`).WillReturnResult(sqlmock.NewResult(0, 0))

	assert.ErrorIs(t, repo.Delete(context.Background(), uuid.New()), ErrSlotNotFound)
}
