package timeslots

import "errors"

var (
	// ErrSlotNotFound возвращается, когда слот не найден
	ErrSlotNotFound = errors.New("time slot not found")

	// ErrSlotExists возвращается, когда такое время уже есть
	ErrSlotExists = errors.New("time slot already exists")

	// ErrInvalidSlotTime возвращается при неверном формате времени
	ErrInvalidSlotTime = errors.New("invalid slot time, expected format like 2:00 PM")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)
