package update_booking_status

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"

	"github.com/m04kA/SMC-TheatreBooking/internal/service/bookings"
	"github.com/m04kA/SMC-TheatreBooking/internal/service/bookings/models"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type fakeService struct {
	err    error
	status string
}

func (f *fakeService) UpdateStatus(_ context.Context, id uuid.UUID, req *models.UpdateStatusRequest) (*models.BookingResponse, error) {
	if f.err != nil {
		return nil, f.err
	}
	f.status = req.Status
	return &models.BookingResponse{ID: id.String(), Status: req.Status}, nil
}

func patch(svc *fakeService, id, body string) *httptest.ResponseRecorder {
	router := mux.NewRouter()
	router.HandleFunc("/admin/bookings/{bookingId}/status", NewHandler(svc, nopLogger{}).Handle).Methods(http.MethodPatch)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodPatch, "/admin/bookings/"+id+"/status", strings.NewReader(body)))
	return w
}

func TestHandle(t *testing.T) {
	svc := &fakeService{}
	w := patch(svc, uuid.NewString(), `{"status":"confirmed"}`)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "confirmed", svc.status)
	assert.Contains(t, w.Body.String(), `"status":"confirmed"`)
}

func TestHandle_Rejected(t *testing.T) {
	tests := []struct {
		name string
		id   string
		body string
		err  error
		want int
	}{
		{name: "bad id", id: "42", body: `{"status":"confirmed"}`, want: http.StatusBadRequest},
		{name: "unknown status", id: uuid.NewString(), body: `{"status":"archived"}`, want: http.StatusBadRequest},
		{name: "not found", id: uuid.NewString(), body: `{"status":"cancelled"}`, err: bookings.ErrBookingNotFound, want: http.StatusNotFound},
		{name: "internal", id: uuid.NewString(), body: `{"status":"cancelled"}`, err: bookings.ErrInternal, want: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := &fakeService{err: tt.err}
			w := patch(svc, tt.id, tt.body)
			assert.Equal(t, tt.want, w.Code)
			assert.Empty(t, svc.status)
		})
	}
}
