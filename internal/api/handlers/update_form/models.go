package update_form

import "github.com/m04kA/SMC-TheatreBooking/internal/service/forms"

// UpdateFormRequest правки применяются по порядку
type UpdateFormRequest struct {
	Edits []FieldEdit `json:"edits" validate:"required,min=1,max=50,dive"`
}

// FieldEdit field - имя поля формы, например "name",
// "occasion_details.partnerName" или "additional_options.decoration"
type FieldEdit struct {
	Field string `json:"field" validate:"required,max=64"`
	Value string `json:"value" validate:"max=500"`
}

// ToServiceEdits конвертирует HTTP request в модель сервиса
func (r *UpdateFormRequest) ToServiceEdits() []forms.FieldEdit {
	edits := make([]forms.FieldEdit, 0, len(r.Edits))
	for _, e := range r.Edits {
		edits = append(edits, forms.FieldEdit{Field: e.Field, Value: e.Value})
	}
	return edits
}
