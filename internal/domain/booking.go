package domain

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// BookingStatus represents the status of a booking
type BookingStatus string

const (
	StatusPending   BookingStatus = "pending"
	StatusConfirmed BookingStatus = "confirmed"
	StatusCancelled BookingStatus = "cancelled"
)

var ErrInvalidStatus = errors.New("domain: invalid booking status")

// AllStatuses lists every status an admin can assign
var AllStatuses = []BookingStatus{
	StatusPending,
	StatusConfirmed,
	StatusCancelled,
}

// IsValid returns true if the status is one of the known values
func (s BookingStatus) IsValid() bool {
	for _, known := range AllStatuses {
		if s == known {
			return true
		}
	}
	return false
}

// ParseBookingStatus converts a raw string into a BookingStatus
func ParseBookingStatus(raw string) (BookingStatus, error) {
	s := BookingStatus(raw)
	if !s.IsValid() {
		return "", fmt.Errorf("%w: %q", ErrInvalidStatus, raw)
	}
	return s, nil
}

// NeedsPackage is the gold-package choice made in step 2.
// Unset until the customer picks an answer.
type NeedsPackage uint8

const (
	NeedsPackageUnset NeedsPackage = iota
	NeedsPackageYes
	NeedsPackageNo
)

var ErrInvalidNeedsPackage = errors.New("domain: invalid gold package choice")

// ParseNeedsPackage accepts "", "Yes" and "No"
func ParseNeedsPackage(raw string) (NeedsPackage, error) {
	switch raw {
	case "":
		return NeedsPackageUnset, nil
	case "Yes":
		return NeedsPackageYes, nil
	case "No":
		return NeedsPackageNo, nil
	default:
		return NeedsPackageUnset, fmt.Errorf("%w: %q", ErrInvalidNeedsPackage, raw)
	}
}

func (n NeedsPackage) String() string {
	switch n {
	case NeedsPackageYes:
		return "Yes"
	case NeedsPackageNo:
		return "No"
	default:
		return ""
	}
}

// IsSet returns true once the customer answered the question
func (n NeedsPackage) IsSet() bool {
	return n == NeedsPackageYes || n == NeedsPackageNo
}

// Bool is the persisted form of the choice
func (n NeedsPackage) Bool() bool {
	return n == NeedsPackageYes
}

func (n NeedsPackage) MarshalJSON() ([]byte, error) {
	return json.Marshal(n.String())
}

func (n *NeedsPackage) UnmarshalJSON(data []byte) error {
	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	parsed, err := ParseNeedsPackage(raw)
	if err != nil {
		return err
	}
	*n = parsed
	return nil
}

// AdditionalOptions are the individual add-ons, priced only without the gold package
type AdditionalOptions struct {
	Decoration  bool   `json:"decoration"`
	FogEntry    string `json:"fogEntry"`
	Photography bool   `json:"photography"`
}

// PersonalDetails are the step-1 fields of the booking form
type PersonalDetails struct {
	Name    string `json:"name"`
	Phone   string `json:"phone"`
	Email   string `json:"email"`
	Address string `json:"address"`
}

// BookingSelection is the in-progress booking held by the form
type BookingSelection struct {
	PersonalDetails

	Location          string
	Date              string
	Time              string
	Package           string
	Occasion          OccasionDetails // nil until an occasion is chosen
	Cake              string
	NeedsPackage      NeedsPackage
	AdditionalOptions AdditionalOptions
}

// OccasionKind returns the chosen occasion or OccasionNone
func (s *BookingSelection) OccasionKind() OccasionKind {
	if s.Occasion == nil {
		return OccasionNone
	}
	return s.Occasion.Kind()
}

type bookingSelectionJSON struct {
	PersonalDetails
	Location          string            `json:"location"`
	Date              string            `json:"date"`
	Time              string            `json:"time"`
	Package           string            `json:"package"`
	Occasion          OccasionKind      `json:"occasion"`
	OccasionDetails   json.RawMessage   `json:"occasion_details"`
	Cake              string            `json:"cake"`
	NeedsPackage      NeedsPackage      `json:"needs_package"`
	AdditionalOptions AdditionalOptions `json:"additional_options"`
}

func (s BookingSelection) MarshalJSON() ([]byte, error) {
	details, err := MarshalOccasionDetails(s.Occasion)
	if err != nil {
		return nil, err
	}
	return json.Marshal(bookingSelectionJSON{
		PersonalDetails:   s.PersonalDetails,
		Location:          s.Location,
		Date:              s.Date,
		Time:              s.Time,
		Package:           s.Package,
		Occasion:          s.OccasionKind(),
		OccasionDetails:   details,
		Cake:              s.Cake,
		NeedsPackage:      s.NeedsPackage,
		AdditionalOptions: s.AdditionalOptions,
	})
}

func (s *BookingSelection) UnmarshalJSON(data []byte) error {
	var raw bookingSelectionJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	occasion, err := UnmarshalOccasionDetails(raw.Occasion, raw.OccasionDetails)
	if err != nil {
		return err
	}
	*s = BookingSelection{
		PersonalDetails:   raw.PersonalDetails,
		Location:          raw.Location,
		Date:              raw.Date,
		Time:              raw.Time,
		Package:           raw.Package,
		Occasion:          occasion,
		Cake:              raw.Cake,
		NeedsPackage:      raw.NeedsPackage,
		AdditionalOptions: raw.AdditionalOptions,
	}
	return nil
}

// Booking represents a persisted theatre booking
type Booking struct {
	ID uuid.UUID
	PersonalDetails

	Location          string
	Date              string
	Time              string
	Package           string
	Occasion          OccasionDetails
	Cake              string
	NeedsPackage      bool
	AdditionalOptions AdditionalOptions

	// TotalPrice snapshot taken at submission, never recomputed
	TotalPrice int64
	Status     BookingStatus
	CreatedAt  time.Time
}

// OccasionKind returns the booked occasion or OccasionNone
func (b *Booking) OccasionKind() OccasionKind {
	if b.Occasion == nil {
		return OccasionNone
	}
	return b.Occasion.Kind()
}

// IsCancelled returns true if the booking has been cancelled
func (b *Booking) IsCancelled() bool {
	return b.Status == StatusCancelled
}

// BookingsFilter фильтр для админского списка бронирований
type BookingsFilter struct {
	Status *BookingStatus // nil - все статусы
	Search string         // подстрока по имени, email, телефону, локации, поводу
	Limit  uint64         // 0 - без ограничения
	Offset uint64
}

// isNullJSON отличает отсутствующие детали повода от пустого объекта
func isNullJSON(raw []byte) bool {
	trimmed := bytes.TrimSpace(raw)
	return len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null"))
}
