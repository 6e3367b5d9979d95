package submit_booking

import (
	"fmt"
	"strings"

	"github.com/m04kA/SMC-TheatreBooking/internal/pricing"
)

// validateRequest повторяет проверки формы на стороне сервера
func validateRequest(req *Request, catalog *pricing.Catalog) error {
	sel := &req.Selection

	for name, value := range map[string]string{
		"name":     sel.Name,
		"phone":    sel.Phone,
		"email":    sel.Email,
		"location": sel.Location,
		"date":     sel.Date,
		"time":     sel.Time,
		"package":  sel.Package,
		"cake":     sel.Cake,
	} {
		if strings.TrimSpace(value) == "" {
			return fmt.Errorf("%w: %s is required", ErrInvalidInput, name)
		}
	}
	if sel.Occasion == nil {
		return fmt.Errorf("%w: occasion is required", ErrInvalidInput)
	}
	if !sel.NeedsPackage.IsSet() {
		return fmt.Errorf("%w: gold package choice is required", ErrInvalidInput)
	}

	if !catalog.HasPackage(sel.Package) {
		return fmt.Errorf("%w: package %q", ErrUnknownCatalogItem, sel.Package)
	}
	if !catalog.HasCake(sel.Cake) {
		return fmt.Errorf("%w: cake %q", ErrUnknownCatalogItem, sel.Cake)
	}
	fog := sel.AdditionalOptions.FogEntry
	if fog != "" && !catalog.HasFogEntry(fog) {
		return fmt.Errorf("%w: fog entry %q", ErrUnknownCatalogItem, fog)
	}
	return nil
}
