package get_analytics

import "errors"

var (
	// ErrInternal возвращается, когда не удалось прочитать данные
	ErrInternal = errors.New("get_analytics: internal error")
)
