// Package fault defines the error kinds every layer returns and the
// single place where a kind becomes an HTTP status and a client-safe
// message. Handlers and middleware never invent their own mapping.
package fault

import (
	"errors"
	"net/http"
)

var (
	ErrValidationFailed      = errors.New("validation failed")
	ErrDuplicateEmail        = errors.New("user already exists")
	ErrNotFound              = errors.New("user not found")
	ErrMissingToken          = errors.New("not authorized, no token")
	ErrInvalidToken          = errors.New("invalid token")
	ErrUnknownSubject        = errors.New("token subject no longer exists")
	ErrInsufficientPrivilege = errors.New("admin privileges required")
	ErrConstraintViolation   = errors.New("constraint violation")
	ErrStoreUnavailable      = errors.New("storage unavailable")
	ErrInvalidState          = errors.New("invalid user data")
)

// Status maps an error kind to its HTTP status. Anything unrecognized
// is treated as an infrastructure failure.
func Status(err error) int {
	switch {
	case errors.Is(err, ErrValidationFailed),
		errors.Is(err, ErrDuplicateEmail),
		errors.Is(err, ErrConstraintViolation):
		return http.StatusBadRequest
	case errors.Is(err, ErrMissingToken),
		errors.Is(err, ErrInvalidToken),
		errors.Is(err, ErrUnknownSubject):
		return http.StatusUnauthorized
	case errors.Is(err, ErrInsufficientPrivilege):
		return http.StatusForbidden
	case errors.Is(err, ErrNotFound):
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

// Public returns the message that may appear in a response body.
// Store and transport detail stays in the logs.
func Public(err error) string {
	for _, kind := range []error{
		ErrValidationFailed,
		ErrDuplicateEmail,
		ErrNotFound,
		ErrMissingToken,
		ErrInvalidToken,
		ErrUnknownSubject,
		ErrInsufficientPrivilege,
		ErrConstraintViolation,
		ErrInvalidState,
	} {
		if errors.Is(err, kind) {
			return kind.Error()
		}
	}
	return ErrStoreUnavailable.Error()
}
