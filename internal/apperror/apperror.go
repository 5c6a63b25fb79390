// Package apperror carries the error kinds that callers are expected to
// branch on. Messages are user visible and their wording is stable.
package apperror

import "errors"

type Kind string

const (
	KindBadRequest Kind = "BadRequest"
	KindNotFound   Kind = "NotFound"
	KindConflict   Kind = "Conflict"
	KindForbidden  Kind = "Forbidden"
	KindInternal   Kind = "InternalServerError"
)

// Error is a classified failure with a user visible message.
type Error struct {
	Kind    Kind   `json:"kind"`
	Message string `json:"message"`
	Err     error  `json:"-"`
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

func New(kind Kind, message string) *Error {
	return &Error{Kind: kind, Message: message}
}

// Wrap attaches kind and message to err.
func Wrap(kind Kind, message string, err error) *Error {
	return &Error{Kind: kind, Message: message, Err: err}
}

func BadRequest(message string) *Error { return New(KindBadRequest, message) }
func NotFound(message string) *Error   { return New(KindNotFound, message) }
func Conflict(message string) *Error   { return New(KindConflict, message) }
func Forbidden(message string) *Error  { return New(KindForbidden, message) }

// Internal hides err behind a generic message.
func Internal(err error) *Error {
	return Wrap(KindInternal, "internal server error", err)
}

// As returns the first *Error in err's chain.
func As(err error) (*Error, bool) {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr, true
	}
	return nil, false
}

// KindOf classifies err. Unclassified errors are internal.
func KindOf(err error) Kind {
	if appErr, ok := As(err); ok {
		return appErr.Kind
	}
	return KindInternal
}
