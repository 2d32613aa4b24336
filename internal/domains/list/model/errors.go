package model

import (
	"errors"
	"fmt"
)

// Error codes
const (
	ErrCodeValidation       = "LST001"
	ErrCodeStoreUnavailable = "LST002"
)

var ErrStoreUnavailable = errors.New("list store unavailable")

// ListError mirrors the comment domain's coded error type so handlers
// map statuses the same way everywhere.
type ListError struct {
	Code    string
	Message string
	Err     error
}

func (e *ListError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *ListError) Unwrap() error {
	return e.Err
}

func NewValidationError(message string) *ListError {
	return &ListError{
		Code:    ErrCodeValidation,
		Message: message,
	}
}

func NewStoreUnavailableError(err error) *ListError {
	return &ListError{
		Code:    ErrCodeStoreUnavailable,
		Message: "List store unavailable",
		Err:     err,
	}
}
