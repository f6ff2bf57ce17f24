package models

import (
	"errors"
	"fmt"
)

var (
	ErrNotFound          = errors.New("record not found")
	ErrInsufficientStock = errors.New("insufficient stock")
	ErrInvalidTransition = errors.New("invalid order status transition")
	ErrDuplicate         = errors.New("duplicate value for unique field")
	ErrEmptyCart         = errors.New("cart is empty")
)

// ValidationError reports an invariant violation on a write, such as a
// negative stock quantity. It is a hard failure with no retry.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation failed on %s: %s", e.Field, e.Message)
}

func NewValidationError(field, message string) error {
	return &ValidationError{Field: field, Message: message}
}
