// Package whatsapp builds wa.me deep links that open a chat with the
// operator pre-filled with a booking summary. No messages are sent from here.
package whatsapp

import (
	"errors"
	"fmt"
	"net/url"
	"strings"

	"github.com/m04kA/SMC-TheatreBooking/internal/domain"
	"github.com/m04kA/SMC-TheatreBooking/internal/pricing"
)

const baseURL = "https://wa.me/"

var ErrInvalidNumber = errors.New("whatsapp: operator number must contain digits only")

// LinkBuilder формирует ссылки на чат с оператором
type LinkBuilder struct {
	number string
}

// NewLinkBuilder принимает номер в международном формате без "+", например 919606993278
func NewLinkBuilder(number string) (*LinkBuilder, error) {
	number = strings.TrimPrefix(strings.TrimSpace(number), "+")
	if number == "" || strings.Trim(number, "0123456789") != "" {
		return nil, fmt.Errorf("%w: %q", ErrInvalidNumber, number)
	}
	return &LinkBuilder{number: number}, nil
}

// ChatLink opens the chat with the given text
func (b *LinkBuilder) ChatLink(text string) string {
	if text == "" {
		return baseURL + b.number
	}
	return baseURL + b.number + "?text=" + url.QueryEscape(text)
}

// BookingLink announces a new booking to the operator
func (b *LinkBuilder) BookingLink(booking *domain.Booking) string {
	return b.ChatLink(BookingMessage(booking))
}

// BookingMessage renders the booking summary sent to the operator
func BookingMessage(booking *domain.Booking) string {
	var sb strings.Builder

	sb.WriteString("New Booking Alert!\n\n")
	fmt.Fprintf(&sb, "Booking ID: %s\n", booking.ID)
	fmt.Fprintf(&sb, "Customer: %s\n", booking.Name)
	fmt.Fprintf(&sb, "Phone: %s\n", booking.Phone)
	fmt.Fprintf(&sb, "Email: %s\n", booking.Email)
	fmt.Fprintf(&sb, "Location: %s\n", booking.Location)
	fmt.Fprintf(&sb, "Date: %s\n", booking.Date)
	fmt.Fprintf(&sb, "Time: %s\n", booking.Time)
	fmt.Fprintf(&sb, "Package: %s\n", booking.Package)
	fmt.Fprintf(&sb, "Occasion: %s\n", booking.OccasionKind())
	fmt.Fprintf(&sb, "Cake: %s\n", booking.Cake)
	fmt.Fprintf(&sb, "Gold Package: %s\n", yesNo(booking.NeedsPackage))

	if !booking.NeedsPackage {
		if addOns := AddOnLines(booking.AdditionalOptions); len(addOns) > 0 {
			sb.WriteString("\nAdditional Options:\n")
			for _, line := range addOns {
				fmt.Fprintf(&sb, "- %s\n", line)
			}
		}
	}

	fmt.Fprintf(&sb, "\nTotal Price: Rs. %s", pricing.FormatRupees(booking.TotalPrice))
	return sb.String()
}

// AddOnLines lists the chosen individual add-ons
func AddOnLines(opts domain.AdditionalOptions) []string {
	var lines []string
	if opts.Decoration {
		lines = append(lines, "Decoration")
	}
	if opts.FogEntry != "" {
		lines = append(lines, opts.FogEntry)
	}
	if opts.Photography {
		lines = append(lines, "Photography & Videography")
	}
	return lines
}

func yesNo(v bool) string {
	if v {
		return "Yes"
	}
	return "No"
}
