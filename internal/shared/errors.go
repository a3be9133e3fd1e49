package shared

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound indicates resource not found.
	ErrNotFound = errors.New("not found")
	// ErrProtectedRecord indicates an attempt to delete or alter an anchor record.
	ErrProtectedRecord = errors.New("protected record")
	// ErrMissingRequiredField indicates a required identifier such as a ref no or a date is absent.
	ErrMissingRequiredField = errors.New("missing required field")
	// ErrCapabilityRequired occurs when a destructive command lacks authorization.
	ErrCapabilityRequired = errors.New("capability required")
)

// MissingField wraps ErrMissingRequiredField with the offending field name.
func MissingField(name string) error {
	return fmt.Errorf("%w: %s", ErrMissingRequiredField, name)
}
