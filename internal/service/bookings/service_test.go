package bookings

import (
	"context"
	"errors"
	"math"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-TheatreBooking/internal/domain"
	bookingRepo "github.com/m04kA/SMC-TheatreBooking/internal/infra/storage/booking"
	"github.com/m04kA/SMC-TheatreBooking/internal/service/bookings/models"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type fakeBookings struct {
	items     map[uuid.UUID]*domain.Booking
	total     int
	lastList  domain.BookingsFilter
	lastCount domain.BookingsFilter
	err       error
}

func (f *fakeBookings) GetByID(_ context.Context, id uuid.UUID) (*domain.Booking, error) {
	if f.err != nil {
		return nil, f.err
	}
	b, ok := f.items[id]
	if !ok {
		return nil, bookingRepo.ErrBookingNotFound
	}
	copied := *b
	return &copied, nil
}

func (f *fakeBookings) List(_ context.Context, filter domain.BookingsFilter) ([]*domain.Booking, error) {
	f.lastList = filter
	if f.err != nil {
		return nil, f.err
	}
	out := make([]*domain.Booking, 0, len(f.items))
	for _, b := range f.items {
		out = append(out, b)
	}
	return out, nil
}

func (f *fakeBookings) Count(_ context.Context, filter domain.BookingsFilter) (int, error) {
	f.lastCount = filter
	return f.total, f.err
}

func (f *fakeBookings) UpdateStatus(_ context.Context, id uuid.UUID, status domain.BookingStatus) error {
	b, ok := f.items[id]
	if !ok {
		return bookingRepo.ErrBookingNotFound
	}
	b.Status = status
	return nil
}

type fakeActivities struct{ items []*domain.BookingActivity }

func (f *fakeActivities) List(context.Context) ([]*domain.BookingActivity, error) {
	return f.items, nil
}

type fakeRenderer struct {
	rendered int
	err      error
}

func (r *fakeRenderer) BookingsXLSX(bookings []*domain.Booking) ([]byte, error) {
	r.rendered = len(bookings)
	return []byte("xlsx"), r.err
}

func (r *fakeRenderer) ConfirmationPDF(*domain.Booking) ([]byte, error) {
	return []byte("%PDF"), r.err
}

func newBooking() *domain.Booking {
	return &domain.Booking{
		ID:              uuid.New(),
		PersonalDetails: domain.PersonalDetails{Name: "Asha Rao", Phone: "9876543210", Email: "asha@example.com"},
		Location:        "RR Nagar",
		Occasion:        &domain.BirthdayDetails{BirthdayPerson: "Ravi", Age: "30"},
		TotalPrice:      3611,
		Status:          domain.StatusPending,
		CreatedAt:       time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC),
	}
}

func newTestService(repo *fakeBookings, renderer *fakeRenderer) *Service {
	svc := NewService(repo, &fakeActivities{}, renderer, nopLogger{})
	svc.now = func() time.Time { return time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC) }
	return svc
}

func TestList_Pagination(t *testing.T) {
	repo := &fakeBookings{items: map[uuid.UUID]*domain.Booking{}, total: 23}
	svc := newTestService(repo, &fakeRenderer{})

	resp, err := svc.List(context.Background(), &models.ListBookingsRequest{Status: "confirmed", Search: "asha", Page: 3})

	require.NoError(t, err)
	assert.Equal(t, 3, resp.Page)
	assert.Equal(t, domain.DefaultPageSize, resp.PageSize)
	assert.Equal(t, 3, resp.TotalPages)
	assert.Equal(t, 23, resp.Total)

	require.NotNil(t, repo.lastList.Status)
	assert.Equal(t, domain.StatusConfirmed, *repo.lastList.Status)
	assert.Equal(t, "asha", repo.lastList.Search)
	assert.Equal(t, uint64(10), repo.lastList.Limit)
	assert.Equal(t, uint64(20), repo.lastList.Offset)
	assert.Zero(t, repo.lastCount.Limit)
}

func TestList_PageBeyondLastIsEmpty(t *testing.T) {
	for _, page := range []int{4, math.MaxInt} {
		repo := &fakeBookings{items: map[uuid.UUID]*domain.Booking{uuid.New(): newBooking()}, total: 23}
		svc := newTestService(repo, &fakeRenderer{})

		resp, err := svc.List(context.Background(), &models.ListBookingsRequest{Status: "all", Page: page, PageSize: math.MaxInt})

		require.NoError(t, err)
		assert.Equal(t, page, resp.Page)
		assert.Equal(t, domain.MaxPageSize, resp.PageSize)
		assert.Equal(t, 1, resp.TotalPages)
		assert.Empty(t, resp.Bookings)
		assert.Zero(t, repo.lastList.Limit, "List must not be called")
	}
}

func TestList_StatusAll(t *testing.T) {
	repo := &fakeBookings{items: map[uuid.UUID]*domain.Booking{}}
	svc := newTestService(repo, &fakeRenderer{})

	resp, err := svc.List(context.Background(), &models.ListBookingsRequest{Status: "all", Page: 0})

	require.NoError(t, err)
	assert.Nil(t, repo.lastList.Status)
	assert.Equal(t, 1, resp.Page)
	assert.Zero(t, resp.TotalPages)
	assert.NotNil(t, resp.Bookings)
}

func TestList_InvalidStatus(t *testing.T) {
	svc := newTestService(&fakeBookings{}, &fakeRenderer{})

	_, err := svc.List(context.Background(), &models.ListBookingsRequest{Status: "archived"})

	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestGetByID(t *testing.T) {
	b := newBooking()
	repo := &fakeBookings{items: map[uuid.UUID]*domain.Booking{b.ID: b}}
	svc := newTestService(repo, &fakeRenderer{})

	resp, err := svc.GetByID(context.Background(), b.ID)
	require.NoError(t, err)
	assert.Equal(t, "Birthday", resp.Occasion)
	assert.Equal(t, map[string]string{"birthdayPerson": "Ravi", "age": "30"}, resp.OccasionDetails)

	_, err = svc.GetByID(context.Background(), uuid.New())
	assert.ErrorIs(t, err, ErrBookingNotFound)
}

func TestGetByID_RepositoryError(t *testing.T) {
	svc := newTestService(&fakeBookings{err: errors.New("db down")}, &fakeRenderer{})

	_, err := svc.GetByID(context.Background(), uuid.New())

	assert.ErrorIs(t, err, ErrInternal)
}

func TestUpdateStatus(t *testing.T) {
	b := newBooking()
	repo := &fakeBookings{items: map[uuid.UUID]*domain.Booking{b.ID: b}}
	svc := newTestService(repo, &fakeRenderer{})

	resp, err := svc.UpdateStatus(context.Background(), b.ID, &models.UpdateStatusRequest{Status: "cancelled"})
	require.NoError(t, err)
	assert.Equal(t, "cancelled", resp.Status)

	_, err = svc.UpdateStatus(context.Background(), b.ID, &models.UpdateStatusRequest{Status: "done"})
	assert.ErrorIs(t, err, ErrInvalidStatus)

	_, err = svc.UpdateStatus(context.Background(), uuid.New(), &models.UpdateStatusRequest{Status: "confirmed"})
	assert.ErrorIs(t, err, ErrBookingNotFound)
}

func TestExport(t *testing.T) {
	b := newBooking()
	repo := &fakeBookings{items: map[uuid.UUID]*domain.Booking{b.ID: b}}
	renderer := &fakeRenderer{}
	svc := newTestService(repo, renderer)

	doc, err := svc.Export(context.Background(), &models.ExportRequest{Status: "pending"})

	require.NoError(t, err)
	assert.Equal(t, "bookings_2026-03-15.xlsx", doc.Filename)
	assert.Equal(t, 1, renderer.rendered)
	assert.Zero(t, repo.lastList.Limit)
}

func TestConfirmation(t *testing.T) {
	b := newBooking()
	repo := &fakeBookings{items: map[uuid.UUID]*domain.Booking{b.ID: b}}
	svc := newTestService(repo, &fakeRenderer{})

	doc, err := svc.Confirmation(context.Background(), b.ID)
	require.NoError(t, err)
	assert.Equal(t, "booking-"+b.ID.String()+".pdf", doc.Filename)
	assert.Equal(t, "application/pdf", doc.ContentType)

	svc = newTestService(repo, &fakeRenderer{err: errors.New("font missing")})
	_, err = svc.Confirmation(context.Background(), b.ID)
	assert.ErrorIs(t, err, ErrInternal)
}
