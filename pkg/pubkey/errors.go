package pubkey

import "errors"

// ErrorKind identifies a kind of validation error.
type ErrorKind string

// These constants are used to identify a specific Error. Every kind
// collapses to a plain "invalid" verdict at the Validate boundary; the
// distinction exists for diagnostics and tests.
const (
	// ErrMalformedHex is returned when the input cannot be decoded as a
	// hexadecimal string.
	ErrMalformedHex = ErrorKind("ErrMalformedHex")

	// ErrUnsupportedLength is returned when the decoded byte length is
	// neither that of a compressed nor an uncompressed public key.
	ErrUnsupportedLength = ErrorKind("ErrUnsupportedLength")

	// ErrUnsupportedPrefix is returned when the header byte is not one of
	// the allowed values for the given length.
	ErrUnsupportedPrefix = ErrorKind("ErrUnsupportedPrefix")

	// ErrNotOnCurve is returned when the coordinates are well formed but do
	// not satisfy the curve equation.
	ErrNotOnCurve = ErrorKind("ErrNotOnCurve")

	// ErrParityMismatch is returned when the recovered y coordinate does
	// not match the oddness requested by a compressed header byte. The
	// root selection step makes this unreachable in practice; it exists as
	// an invariant guard.
	ErrParityMismatch = ErrorKind("ErrParityMismatch")
)

// Error satisfies the error interface and prints human-readable errors.
func (e ErrorKind) Error() string {
	return string(e)
}

// Error identifies a validation failure. It has full support for
// errors.Is and errors.As, so the caller can ascertain the specific
// failure by checking the underlying error kind.
type Error struct {
	Err         error
	Description string
}

// Error satisfies the error interface and prints human-readable errors.
func (e Error) Error() string {
	return e.Description
}

// Unwrap returns the underlying wrapped error kind.
func (e Error) Unwrap() error {
	return e.Err
}

// Is implements the interface to work with the standard library's
// errors.Is.
func (e Error) Is(target error) bool {
	switch target := target.(type) {
	case Error:
		return errors.Is(e.Err, target.Err)
	case ErrorKind:
		return errors.Is(e.Err, target)
	default:
		return false
	}
}

// validationError creates an Error given a set of arguments.
func validationError(kind ErrorKind, desc string) Error {
	return Error{Err: kind, Description: desc}
}
