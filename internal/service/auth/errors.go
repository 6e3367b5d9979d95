package auth

import "errors"

var (
	// ErrInvalidCredentials неверный email или пароль
	ErrInvalidCredentials = errors.New("invalid email or password")

	// ErrInvalidToken токен не прошёл проверку или истёк
	ErrInvalidToken = errors.New("invalid or expired token")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)
