package update_form

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"

	"github.com/m04kA/SMC-TheatreBooking/internal/api/handlers/formview"
	"github.com/m04kA/SMC-TheatreBooking/internal/bookingform"
	"github.com/m04kA/SMC-TheatreBooking/internal/pricing"
	"github.com/m04kA/SMC-TheatreBooking/internal/service/forms"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type fakeService struct {
	edits []forms.FieldEdit
	err   error
}

func (f *fakeService) Update(_ context.Context, id uuid.UUID, edits []forms.FieldEdit) (*bookingform.Form, error) {
	f.edits = edits
	if f.err != nil {
		return nil, f.err
	}
	form := bookingform.New(id, false, time.Now())
	for _, e := range edits {
		if err := form.Set(e.Field, e.Value); err != nil {
			return nil, err
		}
	}
	return form, nil
}

func patch(svc *fakeService, body string) *httptest.ResponseRecorder {
	h := NewHandler(svc, formview.NewPresenter(pricing.Default()), nopLogger{})
	router := mux.NewRouter()
	router.HandleFunc("/forms/{formId}", h.Handle).Methods(http.MethodPatch)

	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodPatch, "/forms/"+uuid.NewString(), strings.NewReader(body))
	router.ServeHTTP(w, r)
	return w
}

func TestHandle(t *testing.T) {
	svc := &fakeService{}

	w := patch(svc, `{"edits":[{"field":"name","value":"Asha Rao"},{"field":"phone","value":"123"}]}`)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, []forms.FieldEdit{{Field: "name", Value: "Asha Rao"}, {Field: "phone", Value: "123"}}, svc.edits)
	assert.Contains(t, w.Body.String(), `"phone":"Please enter a valid 10-digit mobile number"`)
}

func TestHandle_BadBodies(t *testing.T) {
	for _, body := range []string{``, `{"edits":[]}`, `{"edits":[{"value":"x"}]}`, `{"fields":{}}`} {
		svc := &fakeService{}
		w := patch(svc, body)
		assert.Equal(t, http.StatusBadRequest, w.Code, body)
		assert.Nil(t, svc.edits, body)
	}
}

func TestHandle_StepErrors(t *testing.T) {
	w := patch(&fakeService{}, `{"edits":[{"field":"package","value":"x"}]}`)
	assert.Equal(t, http.StatusConflict, w.Code)

	w = patch(&fakeService{err: bookingform.ErrUnknownField}, `{"edits":[{"field":"nickname","value":"x"}]}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = patch(&fakeService{err: forms.ErrFormBusy}, `{"edits":[{"field":"name","value":"x"}]}`)
	assert.Equal(t, http.StatusConflict, w.Code)
}
