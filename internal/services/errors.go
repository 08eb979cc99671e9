package services

import "errors"

var (
	ErrUnknown          = errors.New("[service]: unknown error")
	ErrRecordNotFound   = errors.New("[service]: record not found")
	ErrDuplicateKey     = errors.New("[service]: duplicate key")
	ErrWrongCredentials = errors.New("[service]: wrong credentials")
)

// ValidationError ошибка валидации входных данных.
// Message предназначен для показа клиенту.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// ConflictError нарушение уникальности. Message предназначен для показа клиенту.
type ConflictError struct {
	Message string
}

func (e *ConflictError) Error() string {
	return e.Message
}

func (e *ConflictError) Unwrap() error {
	return ErrDuplicateKey
}
