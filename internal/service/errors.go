package service

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound - запрошенная запись отсутствует
	ErrNotFound = errors.New("not found")
	// ErrConflict - имя пользователя или email уже заняты
	ErrConflict = errors.New("already exists")
	// ErrInvalidCredentials - единое сообщение для неизвестного email и неверного пароля
	ErrInvalidCredentials = errors.New("invalid credentials")
	// ErrInvalidTransition - переход статуса отсутствует в таблице переходов
	ErrInvalidTransition = errors.New("invalid status transition")
)

// ValidationError описывает нарушенное ограничение входных данных
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

func newValidationError(field, format string, args ...any) *ValidationError {
	return &ValidationError{Field: field, Message: fmt.Sprintf(format, args...)}
}

// isValidation сообщает, является ли ошибка ошибкой валидации
func isValidation(err error) bool {
	var vErr *ValidationError
	return errors.As(err, &vErr)
}
