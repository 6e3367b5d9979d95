// Package formview renders booking form sessions for the public API and
// maps form errors to HTTP responses.
package formview

import (
	"errors"
	"net/http"
	"time"

	"github.com/m04kA/SMC-TheatreBooking/internal/api/handlers"
	"github.com/m04kA/SMC-TheatreBooking/internal/bookingform"
	"github.com/m04kA/SMC-TheatreBooking/internal/domain"
	"github.com/m04kA/SMC-TheatreBooking/internal/pricing"
	"github.com/m04kA/SMC-TheatreBooking/internal/service/forms"
)

const (
	msgFormNotFound  = "booking form not found"
	msgFormBusy      = "booking form is being updated, please retry"
	msgInvalidEdit   = "invalid field edit"
	msgNotEditable   = "field cannot be edited at this step"
	msgInvalidStep   = "action is not available at this step"
	msgInProgress    = "booking is already being submitted"
	msgAlreadyBooked = "booking has already been submitted"
)

// PriceResponse живая цена текущего выбора
type PriceResponse struct {
	Total     int64          `json:"total"`
	Breakdown []pricing.Line `json:"breakdown"`
}

// FormResponse состояние формы для клиента
type FormResponse struct {
	ID          string                  `json:"id"`
	State       string                  `json:"state"`
	Step        int                     `json:"step"`
	Selection   domain.BookingSelection `json:"selection"`
	Error       string                  `json:"error,omitempty"`
	FieldErrors map[string]string       `json:"field_errors"`
	Price       PriceResponse           `json:"price"`
	Receipt     *bookingform.Receipt    `json:"receipt,omitempty"`
	CreatedAt   time.Time               `json:"created_at"`
	UpdatedAt   time.Time               `json:"updated_at"`
}

// ErrorResponse ошибка перехода вместе с сохранённым состоянием формы
type ErrorResponse struct {
	Error string        `json:"error"`
	Form  *FormResponse `json:"form,omitempty"`
}

// Presenter рендерит формы по каталогу
type Presenter struct {
	catalog *pricing.Catalog
}

func NewPresenter(catalog *pricing.Catalog) *Presenter {
	return &Presenter{catalog: catalog}
}

// Render конвертирует форму в ответ
func (p *Presenter) Render(f *bookingform.Form) *FormResponse {
	fieldErrors := map[string]string{}
	for k, v := range f.FieldErrors {
		fieldErrors[k] = v
	}

	breakdown := p.catalog.Breakdown(&f.Selection)
	var total int64
	for _, line := range breakdown {
		total += line.Amount
	}

	return &FormResponse{
		ID:          f.ID.String(),
		State:       f.State.String(),
		Step:        step(f.State),
		Selection:   f.Selection,
		Error:       f.Error,
		FieldErrors: fieldErrors,
		Price:       PriceResponse{Total: total, Breakdown: breakdown},
		Receipt:     f.Receipt,
		CreatedAt:   f.CreatedAt,
		UpdatedAt:   f.UpdatedAt,
	}
}

// RespondForm пишет форму с заданным статусом
func (p *Presenter) RespondForm(w http.ResponseWriter, status int, f *bookingform.Form) {
	handlers.RespondJSON(w, status, p.Render(f))
}

// RespondError переводит ошибку сервиса форм в HTTP. form может быть nil;
// если форма сохранена вместе с ошибкой, она возвращается в теле.
// Возвращает true, если ошибка ожидаемая и не требует логирования как Error
func (p *Presenter) RespondError(w http.ResponseWriter, err error, form *bookingform.Form) bool {
	switch {
	case errors.Is(err, forms.ErrFormNotFound):
		handlers.RespondNotFound(w, msgFormNotFound)
	case errors.Is(err, forms.ErrFormBusy):
		handlers.RespondConflict(w, msgFormBusy)
	case errors.Is(err, bookingform.ErrSubmitInProgress):
		handlers.RespondConflict(w, msgInProgress)
	case errors.Is(err, bookingform.ErrAlreadySubmitted):
		handlers.RespondConflict(w, msgAlreadyBooked)
	case errors.Is(err, bookingform.ErrFieldNotEditable):
		handlers.RespondConflict(w, msgNotEditable)
	case errors.Is(err, bookingform.ErrInvalidTransition):
		handlers.RespondConflict(w, msgInvalidStep)
	case errors.Is(err, bookingform.ErrUnknownField),
		errors.Is(err, bookingform.ErrInvalidValue),
		errors.Is(err, bookingform.ErrNoOccasion):
		handlers.RespondBadRequest(w, msgInvalidEdit+": "+err.Error())
	case errors.Is(err, bookingform.ErrValidation) && form != nil:
		handlers.RespondJSON(w, http.StatusUnprocessableEntity, ErrorResponse{Error: form.Error, Form: p.Render(form)})
	case errors.Is(err, bookingform.ErrSubmitFailed) && form != nil:
		handlers.RespondJSON(w, http.StatusInternalServerError, ErrorResponse{Error: form.Error, Form: p.Render(form)})
		return false
	default:
		handlers.RespondInternalError(w)
		return false
	}
	return true
}

func step(s bookingform.State) int {
	switch s {
	case bookingform.StateStep1PersonalDetails:
		return 1
	case bookingform.StateConfirmed:
		return 3
	default:
		return 2
	}
}
