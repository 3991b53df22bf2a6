// Package apperrors defines the error taxonomy shared by all services.
// Errors carry a kind, not a transport code; handlers map kinds to HTTP
// statuses at the boundary.
package apperrors

import (
	"errors"
	"fmt"
)

// Kind classifies an error for the caller's retry/recovery decision
type Kind string

const (
	// KindValidation is malformed or missing required input
	KindValidation Kind = "validation"
	// KindAuthorization is a role or binding the actor does not hold
	KindAuthorization Kind = "authorization"
	// KindNotFound is a referenced ride or driver that does not exist
	KindNotFound Kind = "not_found"
	// KindInvalidTransition is a status change not reachable from the current status
	KindInvalidTransition Kind = "invalid_transition"
	// KindConflict is a lost race: ride already taken or rating slot already filled
	KindConflict Kind = "conflict"
	// KindStoreUnavailable is a backing-store failure; the only retryable kind
	KindStoreUnavailable Kind = "store_unavailable"
)

// Error is a kind-tagged application error
type Error struct {
	Kind    Kind
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Err
}

// New creates an error with the given kind and message
func New(kind Kind, message string) *Error {
	return &Error{Kind: kind, Message: message}
}

// Wrap creates an error with the given kind wrapping an underlying cause
func Wrap(kind Kind, message string, err error) *Error {
	return &Error{Kind: kind, Message: message, Err: err}
}

// Validation creates a validation error
func Validation(message string) *Error {
	return New(KindValidation, message)
}

// Authorization creates an authorization error
func Authorization(message string) *Error {
	return New(KindAuthorization, message)
}

// NotFound creates a not-found error
func NotFound(message string) *Error {
	return New(KindNotFound, message)
}

// InvalidTransition creates an invalid-transition error
func InvalidTransition(message string) *Error {
	return New(KindInvalidTransition, message)
}

// Conflict creates a conflict error
func Conflict(message string) *Error {
	return New(KindConflict, message)
}

// StoreUnavailable wraps a backing-store failure
func StoreUnavailable(err error) *Error {
	return Wrap(KindStoreUnavailable, "backing store unavailable", err)
}

// KindOf returns the kind of err, or an empty Kind for untagged errors
func KindOf(err error) Kind {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr.Kind
	}
	return ""
}

// IsKind reports whether err carries the given kind
func IsKind(err error, kind Kind) bool {
	return KindOf(err) == kind
}
