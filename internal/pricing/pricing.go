// Package pricing prices a booking selection against the static catalog.
// Every function here is pure and total: unset or unknown identifiers add 0.
package pricing

import "github.com/m04kA/SMC-TheatreBooking/internal/domain"

// Line is one row of the price summary
type Line struct {
	Label  string `json:"label"`
	Amount int64  `json:"amount"`
}

// Calculate prices the selection with the default catalog
func Calculate(sel *domain.BookingSelection) int64 {
	return defaultCatalog.Calculate(sel)
}

// Calculate returns the total in rupees for a complete or partial selection
func (c *Catalog) Calculate(sel *domain.BookingSelection) int64 {
	var total int64
	for _, line := range c.Breakdown(sel) {
		total += line.Amount
	}
	return total
}

// Breakdown itemises the selection. Zero-priced lines are omitted.
// With the gold package chosen, individual add-ons are never listed.
func (c *Catalog) Breakdown(sel *domain.BookingSelection) []Line {
	if sel == nil {
		return nil
	}

	lines := make([]Line, 0, 5)
	add := func(label string, amount int64) {
		if amount > 0 {
			lines = append(lines, Line{Label: label, Amount: amount})
		}
	}

	add(sel.Package, c.PackagePrice(sel.Package))
	add(sel.Cake, c.CakePrice(sel.Cake))

	if sel.NeedsPackage == domain.NeedsPackageYes {
		add("Gold Package", c.GoldPackagePrice(sel.Package))
		return lines
	}

	opts := sel.AdditionalOptions
	if opts.Decoration {
		add("Decoration", DecorationPrice)
	}
	if opts.Photography {
		add("Photography & Videography", PhotographyPrice)
	}
	add("Fog Entry: "+opts.FogEntry, c.FogEntryPrice(opts.FogEntry))

	return lines
}
