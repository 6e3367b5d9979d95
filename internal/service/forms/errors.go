package forms

import "errors"

var (
	// ErrFormNotFound возвращается, когда сессия формы истекла или не существует
	ErrFormNotFound = errors.New("form not found")

	// ErrFormBusy возвращается, когда форму одновременно меняет другой запрос
	ErrFormBusy = errors.New("form is being updated by another request")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)
