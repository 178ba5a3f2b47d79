package auth

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/yourusername/biohack-api/internal/pkg/errors"
)

func TestJWTService_GenerateAndParse(t *testing.T) {
	// Arrange
	svc, err := NewJWTService("test-secret", 1)
	require.NoError(t, err)

	// Act
	token, err := svc.GenerateToken(42, "bob@example.com")
	require.NoError(t, err)
	claims, err := svc.ParseToken(token)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, uint(42), claims.UserID)
	assert.Equal(t, "bob@example.com", claims.Email)
}

func TestJWTService_ParseToken_WrongSecret(t *testing.T) {
	// Arrange: токен подписан другим секретом
	issuer, err := NewJWTService("secret-a", 1)
	require.NoError(t, err)
	verifier, err := NewJWTService("secret-b", 1)
	require.NoError(t, err)

	token, err := issuer.GenerateToken(42, "bob@example.com")
	require.NoError(t, err)

	// Act
	_, err = verifier.ParseToken(token)

	// Assert
	assert.ErrorIs(t, err, apperrors.ErrUnauthorized)
}

func TestJWTService_ParseToken_Expired(t *testing.T) {
	// Arrange: токен с истекшим сроком, подписанный тем же секретом
	svc, err := NewJWTService("test-secret", 1)
	require.NoError(t, err)

	expired := JWTCustomClaims{
		UserID: 42,
		Email:  "bob@example.com",
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(time.Now().Add(-2 * time.Hour)),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Hour)),
		},
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, expired).SignedString([]byte("test-secret"))
	require.NoError(t, err)

	// Act
	_, err = svc.ParseToken(signed)

	// Assert
	assert.ErrorIs(t, err, apperrors.ErrUnauthorized)
}

func TestJWTService_ParseToken_RejectsNoneAlgorithm(t *testing.T) {
	// Arrange: токен без подписи
	svc, err := NewJWTService("test-secret", 1)
	require.NoError(t, err)

	unsigned := jwt.NewWithClaims(jwt.SigningMethodNone, JWTCustomClaims{
		UserID: 42,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	})
	token, err := unsigned.SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	// Act
	_, err = svc.ParseToken(token)

	// Assert: подмена алгоритма не проходит
	assert.ErrorIs(t, err, apperrors.ErrUnauthorized)
}

func TestNewJWTService_RequiresSecret(t *testing.T) {
	// Act
	_, err := NewJWTService("", 24)

	// Assert
	assert.Error(t, err)
}
