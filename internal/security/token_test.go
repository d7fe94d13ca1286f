package security

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
)

func TestTokenRoundTrip(t *testing.T) {
	m := NewTokenManager("test-secret", time.Hour, 7*24*time.Hour)

	access, err := m.GenerateAccessToken("user-1", "u1@campus.edu")
	assert.NoError(t, err)
	refresh, err := m.GenerateRefreshToken("user-1", "u1@campus.edu")
	assert.NoError(t, err)
	assert.NotEqual(t, access, refresh)

	claims, err := m.ValidateToken(access)
	assert.NoError(t, err)
	assert.Equal(t, "user-1", claims.UserID)
	assert.Equal(t, "u1@campus.edu", claims.Email)
	assert.Equal(t, TokenTypeAccess, claims.Type)

	claims, err = m.ValidateToken(refresh)
	assert.NoError(t, err)
	assert.Equal(t, TokenTypeRefresh, claims.Type)
}

func TestValidateToken_Expired(t *testing.T) {
	m := NewTokenManager("test-secret", time.Hour, 7*24*time.Hour)

	// Sign a token that expired a minute ago with the same secret.
	claims := UserClaims{
		UserID: "user-1",
		Type:   TokenTypeAccess,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   "user-1",
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Minute)),
			IssuedAt:  jwt.NewNumericDate(time.Now().Add(-time.Hour)),
		},
	}
	stale, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("test-secret"))
	assert.NoError(t, err)

	_, err = m.ValidateToken(stale)
	assert.ErrorIs(t, err, ErrExpiredToken)
}

func TestValidateToken_WrongSecret(t *testing.T) {
	issuer := NewTokenManager("secret-a", time.Hour, time.Hour)
	verifier := NewTokenManager("secret-b", time.Hour, time.Hour)

	token, err := issuer.GenerateAccessToken("user-1", "u1@campus.edu")
	assert.NoError(t, err)

	_, err = verifier.ValidateToken(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestValidateToken_Garbage(t *testing.T) {
	m := NewTokenManager("test-secret", time.Hour, time.Hour)

	_, err := m.ValidateToken("not.a.token")
	assert.ErrorIs(t, err, ErrInvalidToken)
}
