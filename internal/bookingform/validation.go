package bookingform

import (
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/m04kA/SMC-TheatreBooking/internal/domain"
)

var (
	nameRegex  = regexp.MustCompile(`^[a-zA-Z\s]+$`)
	phoneRegex = regexp.MustCompile(`^[6-9]\d{9}$`)
	emailRegex = regexp.MustCompile(`(?i)^[A-Z0-9._%+-]+@[A-Z0-9.-]+\.[A-Z]{2,}$`)
)

// FieldErrors maps a form field to the message shown next to it
type FieldErrors map[string]string

// validatePersonalField returns "" when the value is acceptable
func validatePersonalField(field, value string, requireAddress bool) string {
	value = strings.TrimSpace(value)

	switch field {
	case FieldName:
		if value == "" {
			return "Name is required"
		}
		if utf8.RuneCountInString(value) < domain.MinNameLength {
			return "Name must be at least 3 characters"
		}
		if utf8.RuneCountInString(value) > domain.MaxNameLength {
			return "Name is too long"
		}
		if !nameRegex.MatchString(value) {
			return "Name can only contain letters and spaces"
		}
	case FieldPhone:
		if value == "" {
			return "Phone number is required"
		}
		if !phoneRegex.MatchString(value) {
			return "Please enter a valid 10-digit mobile number"
		}
	case FieldEmail:
		if value == "" {
			return "Email is required"
		}
		if !emailRegex.MatchString(value) {
			return "Please enter a valid email address"
		}
	case FieldAddress:
		if requireAddress && value == "" {
			return "Address is required"
		}
		if utf8.RuneCountInString(value) > domain.MaxTextLength {
			return "Address is too long"
		}
	}
	return ""
}

// validatePersonalDetails проверяет все поля первого шага
func validatePersonalDetails(p domain.PersonalDetails, requireAddress bool) FieldErrors {
	errs := FieldErrors{}
	for field, value := range map[string]string{
		FieldName:    p.Name,
		FieldPhone:   p.Phone,
		FieldEmail:   p.Email,
		FieldAddress: p.Address,
	} {
		if msg := validatePersonalField(field, value, requireAddress); msg != "" {
			errs[field] = msg
		}
	}
	return errs
}

// validateBookingDetails проверяет заполненность второго шага и позиции каталога
func validateBookingDetails(sel *domain.BookingSelection, catalog Catalog) FieldErrors {
	errs := FieldErrors{}
	required := func(field, value string) {
		if strings.TrimSpace(value) == "" {
			errs[field] = "This field is required"
		}
	}

	required(FieldLocation, sel.Location)
	required(FieldDate, sel.Date)
	required(FieldTime, sel.Time)
	required(FieldPackage, sel.Package)
	required(FieldOccasion, string(sel.OccasionKind()))
	required(FieldCake, sel.Cake)
	if !sel.NeedsPackage.IsSet() {
		errs[FieldNeedsPackage] = "Please choose whether you want the gold package"
	}

	known := func(field, value string, has func(string) bool) {
		if _, missing := errs[field]; missing || value == "" {
			return
		}
		if !has(value) {
			errs[field] = "Please choose a valid option"
		}
	}
	known(FieldPackage, sel.Package, catalog.HasPackage)
	known(FieldCake, sel.Cake, catalog.HasCake)
	known(AdditionalOptionPrefix+OptionFogEntry, sel.AdditionalOptions.FogEntry, catalog.HasFogEntry)
	return errs
}
