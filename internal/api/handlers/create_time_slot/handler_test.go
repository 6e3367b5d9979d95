package create_time_slot

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/m04kA/SMC-TheatreBooking/internal/service/timeslots"
	"github.com/m04kA/SMC-TheatreBooking/internal/service/timeslots/models"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type fakeService struct {
	err error
}

func (f *fakeService) Create(_ context.Context, req *models.CreateSlotRequest) (*models.SlotResponse, error) {
	if f.err != nil {
		return nil, f.err
	}
	return &models.SlotResponse{SlotTime: req.SlotTime, IsActive: true}, nil
}

func TestHandle(t *testing.T) {
	tests := []struct {
		name string
		body string
		err  error
		want int
	}{
		{name: "created", body: `{"slot_time":"10:00 AM"}`, want: http.StatusCreated},
		{name: "missing time", body: `{}`, want: http.StatusBadRequest},
		{name: "bad time", body: `{"slot_time":"noon"}`, err: timeslots.ErrInvalidSlotTime, want: http.StatusBadRequest},
		{name: "duplicate", body: `{"slot_time":"10:00 AM"}`, err: timeslots.ErrSlotExists, want: http.StatusConflict},
		{name: "internal", body: `{"slot_time":"10:00 AM"}`, err: timeslots.ErrInternal, want: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			r := httptest.NewRequest(http.MethodPost, "/admin/time-slots", strings.NewReader(tt.body))
			NewHandler(&fakeService{err: tt.err}, nopLogger{}).Handle(w, r)
			assert.Equal(t, tt.want, w.Code)
		})
	}
}
