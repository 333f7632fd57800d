// Package apperrors defines the application's error taxonomy. Every
// failure that crosses a service boundary is an *Error carrying one of a
// fixed set of kinds, so handlers can map errors to HTTP statuses
// without inspecting message strings.
package apperrors

import "errors"

// Kind classifies an error into the fixed taxonomy.
type Kind int

const (
	KindInternal Kind = iota
	KindValidation
	KindUnauthorized
	KindNotFound
	KindConflict
)

// Error is a tagged application error. Message is safe to return to
// clients; Details optionally names the first violated constraint; Err
// holds the underlying cause for logging only.
type Error struct {
	Kind    Kind
	Message string
	Details string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Validation builds a 400-class error; details names the first violated
// constraint.
func Validation(message, details string) *Error {
	return &Error{Kind: KindValidation, Message: message, Details: details}
}

// Unauthorized builds a 401-class error.
func Unauthorized(message string) *Error {
	return &Error{Kind: KindUnauthorized, Message: message}
}

// NotFound builds a 404-class error.
func NotFound(message string) *Error {
	return &Error{Kind: KindNotFound, Message: message}
}

// Conflict builds a 409-class error.
func Conflict(message string) *Error {
	return &Error{Kind: KindConflict, Message: message}
}

// Internal wraps an unexpected failure. The cause is kept for server-side
// logging; clients only ever see the generic message.
func Internal(err error) *Error {
	return &Error{Kind: KindInternal, Message: "Internal server error", Err: err}
}

// KindOf resolves any error to its Kind. Errors that are not *Error
// (or do not wrap one) are treated as internal.
func KindOf(err error) Kind {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr.Kind
	}
	return KindInternal
}
