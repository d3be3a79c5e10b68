package jwt

import (
	"testing"
	"time"

	"recipe-service/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateAndReadToken(t *testing.T) {
	svc := NewJWTServiceWith("secret", "RECIPES")
	require.True(t, svc.Enabled())

	token, err := svc.GenerateToken("editor", time.Minute)
	require.NoError(t, err)

	subject, err := svc.GetSubjectByToken(token)
	require.NoError(t, err)
	assert.Equal(t, "editor", subject)
}

func TestTokenFailures(t *testing.T) {
	svc := NewJWTServiceWith("secret", "RECIPES")

	fallback, err := svc.GenerateToken("editor", -time.Minute)
	require.NoError(t, err)
	// a non-positive ttl falls back to the default lifetime
	_, err = svc.GetSubjectByToken(fallback)
	assert.NoError(t, err)

	other, err := NewJWTServiceWith("other-secret", "RECIPES").GenerateToken("editor", time.Minute)
	require.NoError(t, err)
	_, err = svc.GetSubjectByToken(other)
	assert.ErrorIs(t, err, domain.ErrTokenInvalid)

	foreign, err := NewJWTServiceWith("secret", "SOMEONE-ELSE").GenerateToken("editor", time.Minute)
	require.NoError(t, err)
	_, err = svc.GetSubjectByToken(foreign)
	assert.ErrorIs(t, err, domain.ErrTokenInvalid)

	_, err = svc.GetSubjectByToken("garbage")
	assert.ErrorIs(t, err, domain.ErrTokenInvalid)
}

func TestExpiredToken(t *testing.T) {
	svc := NewJWTServiceWith("secret", "RECIPES")

	token, err := svc.GenerateToken("editor", time.Nanosecond)
	require.NoError(t, err)
	time.Sleep(1100 * time.Millisecond)

	_, err = svc.GetSubjectByToken(token)
	assert.ErrorIs(t, err, domain.ErrTokenExpired)
}

func TestDisabledWithoutSecret(t *testing.T) {
	svc := NewJWTServiceWith("", "RECIPES")
	assert.False(t, svc.Enabled())

	_, err := svc.GenerateToken("editor", time.Minute)
	assert.Error(t, err)
}
