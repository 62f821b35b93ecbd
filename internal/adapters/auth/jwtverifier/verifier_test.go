package jwtverifier

import (
	"context"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const secret = "super-secret-jwt-token-with-at-least-32-characters"

func sign(t *testing.T, method jwt.SigningMethod, key any, claims UserClaims) string {
	t.Helper()
	s, err := jwt.NewWithClaims(method, claims).SignedString(key)
	require.NoError(t, err)
	return s
}

func validClaims() UserClaims {
	return UserClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   "8f14e45f-ceea-467f-a0e6-1f8a1f2b7c11",
			Audience:  jwt.ClaimStrings{"authenticated"},
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
		Email: "farmer@example.com",
		Role:  "authenticated",
	}
}

func TestVerify_ValidToken(t *testing.T) {
	v, err := New(secret, "authenticated")
	require.NoError(t, err)

	c, err := v.Verify(context.Background(), sign(t, jwt.SigningMethodHS256, []byte(secret), validClaims()))
	require.NoError(t, err)
	assert.Equal(t, "8f14e45f-ceea-467f-a0e6-1f8a1f2b7c11", c.UserID)
	assert.Equal(t, "farmer@example.com", c.Email)
}

func TestVerify_Rejects(t *testing.T) {
	v, err := New(secret, "authenticated")
	require.NoError(t, err)

	expired := validClaims()
	expired.ExpiresAt = jwt.NewNumericDate(time.Now().Add(-time.Minute))

	wrongAud := validClaims()
	wrongAud.Audience = jwt.ClaimStrings{"anon"}

	noSub := validClaims()
	noSub.Subject = ""

	noExp := validClaims()
	noExp.ExpiresAt = nil

	cases := map[string]string{
		"wrong secret": sign(t, jwt.SigningMethodHS256, []byte("another-secret-another-secret-xx"), validClaims()),
		"wrong alg":    sign(t, jwt.SigningMethodHS512, []byte(secret), validClaims()),
		"expired":      sign(t, jwt.SigningMethodHS256, []byte(secret), expired),
		"audience":     sign(t, jwt.SigningMethodHS256, []byte(secret), wrongAud),
		"missing sub":  sign(t, jwt.SigningMethodHS256, []byte(secret), noSub),
		"missing exp":  sign(t, jwt.SigningMethodHS256, []byte(secret), noExp),
		"garbage":      "not-a-jwt",
		"empty":        "  ",
	}
	for name, tok := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := v.Verify(context.Background(), tok)
			assert.Error(t, err)
		})
	}
}

func TestNew_RequiresSecret(t *testing.T) {
	_, err := New(" ", "")
	assert.ErrorIs(t, err, ErrNotConfigured)
}
