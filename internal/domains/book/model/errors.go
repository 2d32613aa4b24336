package model

import "fmt"

// Error codes
const (
	ErrCodeValidation         = "BOK001"
	ErrCodeCatalogUnavailable = "BOK002"
)

// BookError follows the coded-error shape used by the other domains.
type BookError struct {
	Code    string
	Message string
	Err     error
}

func (e *BookError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *BookError) Unwrap() error {
	return e.Err
}

func NewValidationError(message string) *BookError {
	return &BookError{
		Code:    ErrCodeValidation,
		Message: message,
	}
}

func NewCatalogUnavailableError(err error) *BookError {
	return &BookError{
		Code:    ErrCodeCatalogUnavailable,
		Message: "Book catalog unavailable",
		Err:     err,
	}
}
