package form_step

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-TheatreBooking/internal/api/handlers/formview"
	"github.com/m04kA/SMC-TheatreBooking/internal/bookingform"
	"github.com/m04kA/SMC-TheatreBooking/internal/pricing"
	"github.com/m04kA/SMC-TheatreBooking/internal/service/forms"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func serve(t *testing.T, action Action, path string) *httptest.ResponseRecorder {
	t.Helper()
	h := NewHandler("submit", action, formview.NewPresenter(pricing.Default()), nopLogger{})

	router := mux.NewRouter()
	router.HandleFunc("/forms/{formId}/submit", h.Handle).Methods(http.MethodPost)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodPost, path, nil))
	return w
}

func confirmedForm(id uuid.UUID) *bookingform.Form {
	f := bookingform.New(id, false, time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC))
	f.State = bookingform.StateConfirmed
	f.Selection.Package = pricing.CouplesTheatrePackage
	f.Receipt = &bookingform.Receipt{BookingID: uuid.New(), TotalPrice: 1111, NotifyURL: "https://wa.me/91"}
	return f
}

func TestHandle_Success(t *testing.T) {
	id := uuid.New()
	action := func(_ context.Context, got uuid.UUID) (*bookingform.Form, error) {
		assert.Equal(t, id, got)
		return confirmedForm(id), nil
	}

	w := serve(t, action, "/forms/"+id.String()+"/submit")

	require.Equal(t, http.StatusOK, w.Code)
	var resp formview.FormResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "confirmed", resp.State)
	assert.Equal(t, 3, resp.Step)
	assert.Equal(t, int64(1111), resp.Price.Total)
	require.NotNil(t, resp.Receipt)
	assert.Equal(t, "https://wa.me/91", resp.Receipt.NotifyURL)
}

func TestHandle_Errors(t *testing.T) {
	id := uuid.New()
	step2 := bookingform.New(id, false, time.Now())
	step2.State = bookingform.StateStep2OccasionAndPackage
	step2.Error = bookingform.MsgBookingDetailsIncomplete
	step2.FieldErrors = bookingform.FieldErrors{"cake": "This field is required"}

	tests := []struct {
		name     string
		form     *bookingform.Form
		err      error
		want     int
		withForm bool
	}{
		{name: "not found", err: forms.ErrFormNotFound, want: http.StatusNotFound},
		{name: "in progress", err: bookingform.ErrSubmitInProgress, want: http.StatusConflict},
		{name: "already submitted", err: bookingform.ErrAlreadySubmitted, want: http.StatusConflict},
		{name: "validation", form: step2, err: bookingform.ErrValidation, want: http.StatusUnprocessableEntity, withForm: true},
		{name: "store failure", form: step2, err: bookingform.ErrSubmitFailed, want: http.StatusInternalServerError, withForm: true},
		{name: "internal", err: forms.ErrInternal, want: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			action := func(context.Context, uuid.UUID) (*bookingform.Form, error) {
				return tt.form, tt.err
			}

			w := serve(t, action, "/forms/"+id.String()+"/submit")

			assert.Equal(t, tt.want, w.Code)
			var resp formview.ErrorResponse
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
			if tt.withForm {
				require.NotNil(t, resp.Form)
				assert.Equal(t, bookingform.MsgBookingDetailsIncomplete, resp.Error)
				assert.Equal(t, "This field is required", resp.Form.FieldErrors["cake"])
			} else {
				assert.Nil(t, resp.Form)
			}
		})
	}
}

func TestHandle_InvalidID(t *testing.T) {
	called := false
	action := func(context.Context, uuid.UUID) (*bookingform.Form, error) {
		called = true
		return nil, nil
	}

	w := serve(t, action, "/forms/not-a-uuid/submit")

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.False(t, called)
}
