package formsession

import "errors"

var (
	// ErrSessionNotFound возвращается, когда сессия истекла или не существовала
	ErrSessionNotFound = errors.New("formsession.store: session not found")

	// ErrEncode возвращается при ошибке сериализации формы
	ErrEncode = errors.New("formsession.store: failed to encode form")

	// ErrDecode возвращается при ошибке чтения сохранённой формы
	ErrDecode = errors.New("formsession.store: failed to decode form")

	// ErrRedis возвращается при ошибке обращения к Redis
	ErrRedis = errors.New("formsession.store: redis error")
)
