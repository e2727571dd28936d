package domain

import "fmt"

// ValidationError reports input that violates a field or cross-entity
// constraint. The message is user-visible; the transport layer surfaces it
// verbatim with HTTP 400.
type ValidationError struct {
	Msg string
}

func (e *ValidationError) Error() string { return e.Msg }

// Validationf builds a ValidationError from a format string.
func Validationf(format string, args ...any) error {
	return &ValidationError{Msg: fmt.Sprintf(format, args...)}
}

// NotFoundError reports that a referenced entity does not exist or is
// outside the caller's scoping key. Mapped to HTTP 404.
type NotFoundError struct {
	Entity string
	ID     string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %s not found", e.Entity, e.ID)
}

// ConflictError reports a uniqueness violation within a scope. No current
// rule raises it; it exists so the transport mapping (HTTP 409) is already
// in place when one does.
type ConflictError struct {
	Msg string
}

func (e *ConflictError) Error() string { return e.Msg }
