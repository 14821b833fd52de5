package service

import (
	"testing"
	"time"

	"userhub/internal/fault"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"
)

func TestIssueAndVerifyAccessToken(t *testing.T) {
	t.Setenv("JWT_SECRET", "testsecret")

	tok, err := IssueAccessToken(7, time.Minute)
	require.NoError(t, err)
	require.NotEmpty(t, tok)

	claims, err := VerifyAccessToken(tok)
	require.NoError(t, err)
	require.Equal(t, 7, claims.UserID)
	require.Equal(t, "7", claims.Subject)
	require.NotEmpty(t, claims.ID)
}

func TestIssueAccessTokenNoSecret(t *testing.T) {
	t.Setenv("JWT_SECRET", "")
	_, err := IssueAccessToken(1, time.Minute)
	require.Error(t, err)
}

func TestVerifyAccessTokenFailures(t *testing.T) {
	t.Setenv("JWT_SECRET", "testsecret")

	t.Run("malformed", func(t *testing.T) {
		_, err := VerifyAccessToken("not-a-token")
		require.ErrorIs(t, err, fault.ErrInvalidToken)
	})

	t.Run("expired", func(t *testing.T) {
		tok, err := IssueAccessToken(7, -time.Minute)
		require.NoError(t, err)
		_, err = VerifyAccessToken(tok)
		require.ErrorIs(t, err, fault.ErrInvalidToken)
	})

	t.Run("wrong secret", func(t *testing.T) {
		tok, err := IssueAccessToken(7, time.Minute)
		require.NoError(t, err)
		t.Setenv("JWT_SECRET", "othersecret")
		_, err = VerifyAccessToken(tok)
		require.ErrorIs(t, err, fault.ErrInvalidToken)
	})

	t.Run("wrong algorithm", func(t *testing.T) {
		unsigned := jwt.NewWithClaims(jwt.SigningMethodNone, CustomClaims{UserID: 7})
		tok, err := unsigned.SignedString(jwt.UnsafeAllowNoneSignatureType)
		require.NoError(t, err)
		_, err = VerifyAccessToken(tok)
		require.ErrorIs(t, err, fault.ErrInvalidToken)
	})

	t.Run("no secret", func(t *testing.T) {
		t.Setenv("JWT_SECRET", "")
		_, err := VerifyAccessToken("whatever")
		require.Error(t, err)
	})
}
