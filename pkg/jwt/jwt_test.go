package jwt

import (
	"errors"
	"testing"
	"time"

	gojwt "github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestGenerateAndValidateSessionToken(t *testing.T) {
	svc := NewJWTService("test-secret", 24*time.Hour)
	sessionID := uuid.New()

	token, err := svc.GenerateSessionToken(sessionID, "admin@event.dev", "admin")
	assert.NoError(t, err)
	assert.NotEmpty(t, token)

	claims, err := svc.ValidateToken(token)
	assert.NoError(t, err)
	assert.Equal(t, sessionID, claims.SessionID)
	assert.Equal(t, "admin@event.dev", claims.Email)
	assert.Equal(t, "admin", claims.Role)
}

func TestValidateToken_Expired(t *testing.T) {
	svc := NewJWTService("test-secret", -1*time.Minute)

	token, err := svc.GenerateSessionToken(uuid.New(), "admin@event.dev", "admin")
	assert.NoError(t, err)

	_, err = svc.ValidateToken(token)
	assert.ErrorIs(t, err, ErrExpiredToken)
}

func TestValidateToken_WrongSecret(t *testing.T) {
	svc := NewJWTService("secret-a", 24*time.Hour)
	other := NewJWTService("secret-b", 24*time.Hour)

	token, err := svc.GenerateSessionToken(uuid.New(), "admin@event.dev", "admin")
	assert.NoError(t, err)

	_, err = other.ValidateToken(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestValidateToken_WrongSigningMethod(t *testing.T) {
	svc := NewJWTService("test-secret", 24*time.Hour)

	token := gojwt.NewWithClaims(gojwt.SigningMethodNone, gojwt.MapClaims{"sessionId": uuid.New().String()})
	signed, err := token.SignedString(gojwt.UnsafeAllowNoneSignatureType)
	assert.NoError(t, err)

	_, err = svc.ValidateToken(signed)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestGenerateSessionToken_SignError(t *testing.T) {
	orig := signJWTToken
	t.Cleanup(func() { signJWTToken = orig })
	signJWTToken = func(*gojwt.Token, []byte) (string, error) {
		return "", errors.New("sign failed")
	}

	svc := NewJWTService("test-secret", 24*time.Hour)
	_, err := svc.GenerateSessionToken(uuid.New(), "admin@event.dev", "admin")
	assert.Error(t, err)
}
