package services

import "errors"

// Kind classifies service failures for the transport layer. Every failure
// leaving the service layer carries exactly one of these kinds; anything
// else is a programming defect caught at the transport boundary.
type Kind int

const (
	KindValidation Kind = iota + 1
	KindNotFound
	KindForbidden
	KindUnauthenticated
)

// Error is a terminal, locally-detected failure. None of the kinds
// represent transient conditions, so nothing is retried.
type Error struct {
	Kind    Kind
	Message string
}

func (e *Error) Error() string {
	return e.Message
}

func newError(kind Kind, message string) *Error {
	return &Error{Kind: kind, Message: message}
}

// ErrValidation reports missing or invalid input the caller must correct.
func ErrValidation(message string) *Error {
	return newError(KindValidation, message)
}

// ErrNotFound reports an identifier that does not resolve.
func ErrNotFound(message string) *Error {
	return newError(KindNotFound, message)
}

// ErrForbidden reports an authenticated caller that is not the owner.
func ErrForbidden(message string) *Error {
	return newError(KindForbidden, message)
}

// ErrUnauthenticated reports a missing or invalid credential.
func ErrUnauthenticated(message string) *Error {
	return newError(KindUnauthenticated, message)
}

// KindOf returns the kind of a service error, or 0 for any other error.
func KindOf(err error) Kind {
	var svcErr *Error
	if errors.As(err, &svcErr) {
		return svcErr.Kind
	}
	return 0
}

// IsNotFound reports whether err is a NotFound service error.
func IsNotFound(err error) bool {
	return KindOf(err) == KindNotFound
}

// IsValidation reports whether err is a Validation service error.
func IsValidation(err error) bool {
	return KindOf(err) == KindValidation
}

// IsForbidden reports whether err is a Forbidden service error.
func IsForbidden(err error) bool {
	return KindOf(err) == KindForbidden
}
