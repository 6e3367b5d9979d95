package bookingform

import "errors"

var (
	ErrValidation        = errors.New("bookingform: validation failed")
	ErrInvalidTransition = errors.New("bookingform: transition not allowed from current state")
	ErrSubmitInProgress  = errors.New("bookingform: submission already in progress")
	ErrAlreadySubmitted  = errors.New("bookingform: booking already submitted")
	ErrSubmitFailed      = errors.New("bookingform: booking could not be saved")
	ErrFieldNotEditable  = errors.New("bookingform: field cannot be edited at this step")
	ErrUnknownField      = errors.New("bookingform: unknown field")
	ErrInvalidValue      = errors.New("bookingform: invalid field value")
	ErrNoOccasion        = errors.New("bookingform: occasion not selected")
	ErrUnknownState      = errors.New("bookingform: unknown state")
)

// Messages shown to the customer
const (
	MsgPersonalDetailsIncomplete = "Please fill in all personal details"
	MsgBookingDetailsIncomplete  = "Please fill in all booking details"
	MsgSubmitFailed              = "Failed to save booking. Please try again."
)
