package models

import (
	"errors"
	"fmt"
)

var (
	// ErrValidation marks client input that can never succeed as sent.
	ErrValidation = errors.New("validation failed")
	// ErrNotFound marks a referenced record that does not exist.
	ErrNotFound = errors.New("not found")
	// ErrUpstream marks a failure of the payment provider or another remote dependency.
	ErrUpstream = errors.New("upstream integration failed")
	// ErrConfiguration marks a server-side misconfiguration detected at request time.
	ErrConfiguration = errors.New("configuration error")
)

// ValidationError wraps ErrValidation with a user-facing message
func ValidationError(format string, args ...interface{}) error {
	return fmt.Errorf("%w: %s", ErrValidation, fmt.Sprintf(format, args...))
}

// NotFoundError wraps ErrNotFound with the missing entity name
func NotFoundError(entity string) error {
	return fmt.Errorf("%w: %s", ErrNotFound, entity)
}

// UpstreamError wraps ErrUpstream around the cause
func UpstreamError(op string, err error) error {
	return fmt.Errorf("%w: %s: %v", ErrUpstream, op, err)
}
