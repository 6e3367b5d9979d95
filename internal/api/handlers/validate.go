package handlers

import (
	"errors"
	"net/http"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

const msgValidationFailed = "validation failed"

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	// в сообщениях используем имена полей из json тегов
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// Validate проверяет структуру по тегам validate
func Validate(dst interface{}) error {
	return validate.Struct(dst)
}

// DecodeAndValidate читает тело и проверяет его. Ошибку пишет в ответ сам,
// возвращает false если обработку нужно прервать
func DecodeAndValidate(w http.ResponseWriter, r *http.Request, dst interface{}) bool {
	if err := DecodeJSON(r, dst); err != nil {
		RespondBadRequest(w, "invalid request body")
		return false
	}
	if err := Validate(dst); err != nil {
		RespondFieldErrors(w, http.StatusBadRequest, msgValidationFailed, FieldErrors(err))
		return false
	}
	return true
}

// FieldErrors переводит ошибки validator в map поле -> правило
func FieldErrors(err error) map[string]string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return nil
	}

	fields := make(map[string]string, len(verrs))
	for _, fe := range verrs {
		msg := "failed " + fe.Tag()
		if fe.Param() != "" {
			msg += "=" + fe.Param()
		}
		fields[fe.Field()] = msg
	}
	return fields
}
