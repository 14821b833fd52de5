package fault

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestStatus(t *testing.T) {
	cases := []struct {
		err  error
		want int
	}{
		{ErrValidationFailed, http.StatusBadRequest},
		{ErrDuplicateEmail, http.StatusBadRequest},
		{ErrConstraintViolation, http.StatusBadRequest},
		{ErrMissingToken, http.StatusUnauthorized},
		{ErrInvalidToken, http.StatusUnauthorized},
		{ErrUnknownSubject, http.StatusUnauthorized},
		{ErrInsufficientPrivilege, http.StatusForbidden},
		{ErrNotFound, http.StatusNotFound},
		{ErrStoreUnavailable, http.StatusInternalServerError},
		{ErrInvalidState, http.StatusInternalServerError},
		{errors.New("connection refused"), http.StatusInternalServerError},
	}
	for _, tc := range cases {
		require.Equal(t, tc.want, Status(tc.err), tc.err.Error())
	}
}

func TestStatusWrapped(t *testing.T) {
	err := fmt.Errorf("RegisterUser: %w", ErrDuplicateEmail)
	require.Equal(t, http.StatusBadRequest, Status(err))
}

func TestPublic(t *testing.T) {
	require.Equal(t, "user not found", Public(fmt.Errorf("GetUser: %w", ErrNotFound)))
	require.Equal(t, "validation failed", Public(ErrValidationFailed))

	// raw infrastructure errors never leak their detail
	raw := errors.New("dial tcp 10.0.0.5:5432: connect: connection refused")
	require.Equal(t, "storage unavailable", Public(raw))
	require.Equal(t, "storage unavailable", Public(fmt.Errorf("ListUsers: %w: %v", ErrStoreUnavailable, raw)))
}
