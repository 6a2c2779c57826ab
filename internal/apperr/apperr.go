// Package apperr описывает классы ошибок приложения.
// Обработчики HTTP различают их через errors.As / errors.Is и выбирают код ответа.
package apperr

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound: геокодирование не дало координат.
	ErrNotFound = errors.New("location not found")
	// ErrRecordNotFound: запись в хранилище отсутствует.
	ErrRecordNotFound = errors.New("record not found")
	// ErrConflict: запись с таким именем уже существует.
	ErrConflict = errors.New("record already exists")
)

// ConfigurationError сообщает об отсутствующем обязательном параметре (обычно ключе API).
type ConfigurationError struct {
	Key string
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("%s is not configured", e.Key)
}

// ValidationError сообщает о некорректном поле запроса.
// Message предназначено для пользователя.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Message)
}

// UpstreamError сообщает о неуспешном ответе внешнего API.
type UpstreamError struct {
	Provider string
	Status   int
	Detail   string
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("%s API error %d - %s", e.Provider, e.Status, e.Detail)
}
