package cache

import "fmt"

const ns = "theatre:v1"

// KeyFormSession ключ состояния формы бронирования
func KeyFormSession(formID string) string {
	return fmt.Sprintf("%s:form:%s", ns, formID)
}

// KeyFormLock ключ блокировки изменения формы
func KeyFormLock(formID string) string {
	return fmt.Sprintf("%s:form:%s:lock", ns, formID)
}

// KeyRateLimit ключ счётчика ограничения запросов
func KeyRateLimit(scope, id string) string {
	return fmt.Sprintf("%s:rl:%s:%s", ns, scope, id)
}
