package domain

import (
	"errors"
	"fmt"
)

var (
	ErrValidation      = errors.New("validation failed")
	ErrInvalidArgument = errors.New("invalid argument")
	ErrEmptyOrder      = errors.New("order must contain at least one item")
	ErrDuplicateClient = errors.New("client already exists")
	ErrStoreNotFound   = errors.New("client store not found")
)

// ValidationError names the field that failed entity validation.
type ValidationError struct {
	Field string
	Msg   string
}

func NewValidationError(field, msg string) *ValidationError {
	return &ValidationError{Field: field, Msg: msg}
}

func (e *ValidationError) Error() string {
	if e == nil {
		return "<nil>"
	}
	return fmt.Sprintf("%s: %s", e.Field, e.Msg)
}

func (e *ValidationError) Is(target error) bool {
	return target == ErrValidation
}

// InvalidArgument wraps ErrInvalidArgument with the offending argument.
func InvalidArgument(arg string, value any) error {
	return fmt.Errorf("%w: %s must not be negative (got %v)", ErrInvalidArgument, arg, value)
}
