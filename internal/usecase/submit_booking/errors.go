package submit_booking

import "errors"

var (
	// ErrInvalidInput возвращается, когда выборка неполная
	ErrInvalidInput = errors.New("submit_booking: incomplete booking selection")

	// ErrUnknownCatalogItem возвращается, когда пакет, торт или дым не из каталога
	ErrUnknownCatalogItem = errors.New("submit_booking: unknown catalog item")

	// ErrInternal возвращается при ошибке сохранения
	ErrInternal = errors.New("submit_booking: internal error")
)
