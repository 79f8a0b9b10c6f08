package application

import (
	"errors"
	"fmt"

	"github.com/oksasatya/go-diary-api/pkg/validation"
)

var (
	ErrValidation         = errors.New("validation error")
	ErrWeakPassword       = errors.New("password must be at least 6 characters")
	ErrDuplicateUser      = errors.New("user already exists")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUnauthenticated    = errors.New("unauthenticated")
	ErrInternal           = errors.New("internal error")
	ErrEntryNotFound      = errors.New("entry not found")
	ErrTrackNotFound      = errors.New("track not found")
)

// ValidationError is a user-correctable input problem. Details maps field
// names to messages and may be nil.
type ValidationError struct {
	Message string
	Details map[string]string
}

func (e *ValidationError) Error() string { return e.Message }

func (e *ValidationError) Is(target error) bool { return target == ErrValidation }

func invalid(message string) error {
	return &ValidationError{Message: message}
}

func invalidFields(message string, err error) error {
	return &ValidationError{Message: message, Details: validation.ToDetails(err)}
}

// internal marks err as an unexpected failure while keeping the cause for logs.
func internal(op string, err error) error {
	return fmt.Errorf("%s: %w: %w", op, ErrInternal, err)
}
