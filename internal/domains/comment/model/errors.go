package model

import (
	"errors"
	"fmt"
)

// Error codes
const (
	ErrCodeValidation       = "CMT001"
	ErrCodeCommentNotFound  = "CMT002"
	ErrCodeNotOwner         = "CMT003"
	ErrCodeStoreUnavailable = "CMT004"
)

// Errors
var (
	ErrCommentNotFound  = errors.New("comment not found")
	ErrNotOwner         = errors.New("comment belongs to another user")
	ErrStoreUnavailable = errors.New("comment store unavailable")
)

// CommentError carries a machine-readable code alongside the message so
// the handler can map it to an HTTP status without string matching.
type CommentError struct {
	Code    string
	Message string
	Err     error
}

func (e *CommentError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *CommentError) Unwrap() error {
	return e.Err
}

// Error constructors
func NewValidationError(message string) *CommentError {
	return &CommentError{
		Code:    ErrCodeValidation,
		Message: message,
	}
}

func NewCommentNotFoundError() *CommentError {
	return &CommentError{
		Code:    ErrCodeCommentNotFound,
		Message: "Comment not found",
		Err:     ErrCommentNotFound,
	}
}

func NewNotOwnerError() *CommentError {
	return &CommentError{
		Code:    ErrCodeNotOwner,
		Message: "You can only modify your own comments",
		Err:     ErrNotOwner,
	}
}

func NewStoreUnavailableError(err error) *CommentError {
	return &CommentError{
		Code:    ErrCodeStoreUnavailable,
		Message: "Comment store unavailable",
		Err:     err,
	}
}
