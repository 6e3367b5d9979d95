// Package bookingform implements the two-step booking wizard.
//
// Form holds the data and the current step and is safe to serialize
// between requests. Machine performs the guarded transitions that talk
// to storage.
package bookingform

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-TheatreBooking/internal/domain"
)

// Field names accepted by Form.Set
const (
	FieldName    = "name"
	FieldPhone   = "phone"
	FieldEmail   = "email"
	FieldAddress = "address"

	FieldLocation     = "location"
	FieldDate         = "date"
	FieldTime         = "time"
	FieldPackage      = "package"
	FieldCake         = "cake"
	FieldNeedsPackage = "needs_package"
	FieldOccasion     = "occasion"

	OccasionDetailPrefix   = "occasion_details."
	AdditionalOptionPrefix = "additional_options."

	OptionDecoration  = "decoration"
	OptionFogEntry    = "fogEntry"
	OptionPhotography = "photography"
)

// Form is one customer's booking session
type Form struct {
	ID             uuid.UUID               `json:"id"`
	State          State                   `json:"state"`
	Selection      domain.BookingSelection `json:"selection"`
	Tracking       TrackingRef             `json:"tracking"`
	RequireAddress bool                    `json:"require_address"`

	// Error is the message of the last failed transition, cleared by any edit
	Error       string      `json:"error,omitempty"`
	FieldErrors FieldErrors `json:"field_errors,omitempty"`

	Receipt   *Receipt  `json:"receipt,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// New returns an empty form at the first step
func New(id uuid.UUID, requireAddress bool, now time.Time) *Form {
	return &Form{
		ID:             id,
		State:          StateStep1PersonalDetails,
		Tracking:       NoTracking(),
		RequireAddress: requireAddress,
		FieldErrors:    FieldErrors{},
		CreatedAt:      now,
		UpdatedAt:      now,
	}
}

// Set applies a single field edit. Occasion details and add-ons are
// addressed as "occasion_details.<field>" and "additional_options.<option>".
func (f *Form) Set(field, value string) error {
	switch {
	case strings.HasPrefix(field, OccasionDetailPrefix):
		return f.SetOccasionDetail(strings.TrimPrefix(field, OccasionDetailPrefix), value)
	case strings.HasPrefix(field, AdditionalOptionPrefix):
		return f.SetAdditionalOption(strings.TrimPrefix(field, AdditionalOptionPrefix), value)
	}

	switch field {
	case FieldName, FieldPhone, FieldEmail, FieldAddress:
		return f.SetPersonalField(field, value)
	case FieldOccasion:
		return f.SetOccasion(domain.OccasionKind(value))
	default:
		return f.SetBookingField(field, value)
	}
}

// SetPersonalField edits a step-1 field and refreshes its inline error
func (f *Form) SetPersonalField(field, value string) error {
	if err := f.editable(StateStep1PersonalDetails, field); err != nil {
		return err
	}

	value = strings.TrimSpace(value)
	p := &f.Selection.PersonalDetails
	switch field {
	case FieldName:
		p.Name = value
	case FieldPhone:
		p.Phone = value
	case FieldEmail:
		p.Email = value
	case FieldAddress:
		p.Address = value
	default:
		return fmt.Errorf("%w: %q", ErrUnknownField, field)
	}

	f.touched()
	if msg := validatePersonalField(field, value, f.RequireAddress); msg != "" {
		f.FieldErrors[field] = msg
	} else {
		delete(f.FieldErrors, field)
	}
	return nil
}

// SetBookingField edits a scalar step-2 field
func (f *Form) SetBookingField(field, value string) error {
	if err := f.editable(StateStep2OccasionAndPackage, field); err != nil {
		return err
	}

	sel := &f.Selection
	switch field {
	case FieldLocation:
		sel.Location = value
	case FieldDate:
		sel.Date = value
	case FieldTime:
		sel.Time = value
	case FieldPackage:
		sel.Package = value
	case FieldCake:
		sel.Cake = value
	case FieldNeedsPackage:
		choice, err := domain.ParseNeedsPackage(value)
		if err != nil {
			return fmt.Errorf("%w: %v", ErrInvalidValue, err)
		}
		sel.NeedsPackage = choice
	default:
		return fmt.Errorf("%w: %q", ErrUnknownField, field)
	}

	f.touched()
	delete(f.FieldErrors, field)
	return nil
}

// SetOccasion switches the occasion and always starts from empty details.
// An empty kind clears the occasion.
func (f *Form) SetOccasion(kind domain.OccasionKind) error {
	if err := f.editable(StateStep2OccasionAndPackage, FieldOccasion); err != nil {
		return err
	}

	if kind == domain.OccasionNone {
		f.Selection.Occasion = nil
	} else {
		details, err := domain.NewOccasionDetails(kind)
		if err != nil {
			return fmt.Errorf("%w: %v", ErrInvalidValue, err)
		}
		f.Selection.Occasion = details
	}

	f.touched()
	delete(f.FieldErrors, FieldOccasion)
	return nil
}

// SetOccasionDetail edits a field of the current occasion
func (f *Form) SetOccasionDetail(field, value string) error {
	if err := f.editable(StateStep2OccasionAndPackage, OccasionDetailPrefix+field); err != nil {
		return err
	}
	if f.Selection.Occasion == nil {
		return ErrNoOccasion
	}
	if err := f.Selection.Occasion.Set(field, value); err != nil {
		return fmt.Errorf("%w: %v", ErrUnknownField, err)
	}

	f.touched()
	return nil
}

// SetAdditionalOption edits one add-on. Decoration and photography take a boolean
// ("true", "false", "Yes", "No"), fogEntry takes a catalog id or "".
func (f *Form) SetAdditionalOption(option, value string) error {
	if err := f.editable(StateStep2OccasionAndPackage, AdditionalOptionPrefix+option); err != nil {
		return err
	}

	opts := &f.Selection.AdditionalOptions
	switch option {
	case OptionDecoration, OptionPhotography:
		on, err := parseToggle(value)
		if err != nil {
			return fmt.Errorf("%w: %s=%q", ErrInvalidValue, option, value)
		}
		if option == OptionDecoration {
			opts.Decoration = on
		} else {
			opts.Photography = on
		}
	case OptionFogEntry:
		opts.FogEntry = value
	default:
		return fmt.Errorf("%w: %q", ErrUnknownField, AdditionalOptionPrefix+option)
	}

	f.touched()
	return nil
}

// Back returns to step 1 keeping everything entered so far
func (f *Form) Back() error {
	if !f.State.CanTransitionTo(StateStep1PersonalDetails) {
		return fmt.Errorf("%w: back from %s", ErrInvalidTransition, f.State)
	}
	f.State = StateStep1PersonalDetails
	f.touched()
	return nil
}

// Reset discards the session data and starts over at step 1.
// The form id is kept; a held tracking reference is dropped with the data.
func (f *Form) Reset(now time.Time) {
	*f = *New(f.ID, f.RequireAddress, now)
}

// touched clears the transient error after an edit
func (f *Form) touched() {
	f.Error = ""
	if f.FieldErrors == nil {
		f.FieldErrors = FieldErrors{}
	}
}

func (f *Form) editable(step State, field string) error {
	switch f.State {
	case StateSubmitting:
		return ErrSubmitInProgress
	case StateConfirmed:
		return ErrAlreadySubmitted
	}
	if f.State != step {
		return fmt.Errorf("%w: %q at %s", ErrFieldNotEditable, field, f.State)
	}
	return nil
}

func parseToggle(value string) (bool, error) {
	switch value {
	case "Yes":
		return true, nil
	case "No", "":
		return false, nil
	}
	return strconv.ParseBool(value)
}
