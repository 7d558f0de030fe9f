package apperror

import (
	"errors"
	"fmt"
)

// Kind is a coarse-grained, machine-readable error category.
type Kind string

const (
	KindValidation     Kind = "validation"
	KindNotFound       Kind = "not_found"
	KindConflict       Kind = "conflict"
	KindAuthentication Kind = "authentication"
	KindStore          Kind = "store"
)

// Error is returned by the service layer for every failed operation.
// Message is safe to show to callers; Err is kept for logs only.
type Error struct {
	Kind    Kind
	Field   string
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e == nil {
		return "<nil>"
	}

	base := fmt.Sprintf("%s: %s", e.Kind, e.Message)
	if e.Field != "" {
		base += fmt.Sprintf(" (field=%s)", e.Field)
	}
	if e.Err != nil {
		base += fmt.Sprintf(": %v", e.Err)
	}
	return base
}

func (e *Error) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// Validation reports a missing or malformed field.
func Validation(field, message string) *Error {
	return &Error{Kind: KindValidation, Field: field, Message: message}
}

// NotFound reports a referenced id that does not exist.
func NotFound(field, message string) *Error {
	return &Error{Kind: KindNotFound, Field: field, Message: message}
}

// Conflict reports a duplicate unique field.
func Conflict(field, message string) *Error {
	return &Error{Kind: KindConflict, Field: field, Message: message}
}

// Authentication reports bad credentials. The message never says which part was wrong.
func Authentication(message string) *Error {
	return &Error{Kind: KindAuthentication, Message: message}
}

// Store wraps an underlying persistence failure behind a generic message.
func Store(err error) *Error {
	return &Error{Kind: KindStore, Message: "Internal server error", Err: err}
}

// KindOf returns the kind of err, or KindStore for errors that did not come from this package.
func KindOf(err error) Kind {
	var ae *Error
	if errors.As(err, &ae) {
		return ae.Kind
	}
	return KindStore
}

// IsKind helps callers classify errors without inspecting messages.
func IsKind(err error, kind Kind) bool {
	var ae *Error
	if errors.As(err, &ae) {
		return ae.Kind == kind
	}
	return false
}
