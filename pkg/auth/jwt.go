package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v4"

	apperrors "github.com/yourusername/biohack-api/internal/pkg/errors"
)

// JWTCustomClaims содержит пользовательские поля для токена
type JWTCustomClaims struct {
	UserID uint   `json:"user_id"`
	Email  string `json:"email"`
	jwt.RegisteredClaims
}

// JWTService предоставляет методы для выпуска и проверки JWT
type JWTService struct {
	secret        []byte
	expirationHrs int
}

// NewJWTService создает новый сервис JWT и возвращает ошибку при проблемах
func NewJWTService(secret string, expirationHrs int) (*JWTService, error) {
	if secret == "" {
		return nil, fmt.Errorf("JWT secret is required")
	}
	if expirationHrs <= 0 {
		expirationHrs = 24 // По умолчанию сутки
	}
	return &JWTService{
		secret:        []byte(secret),
		expirationHrs: expirationHrs,
	}, nil
}

// GenerateToken выпускает подписанный access-токен для пользователя
func (s *JWTService) GenerateToken(userID uint, email string) (string, error) {
	now := time.Now()
	claims := JWTCustomClaims{
		UserID: userID,
		Email:  email,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(time.Duration(s.expirationHrs) * time.Hour)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}
	return signed, nil
}

// ExpiresIn возвращает время жизни токена в секундах (для ответа клиенту)
func (s *JWTService) ExpiresIn() int {
	return s.expirationHrs * 3600
}

// ParseToken проверяет подпись и срок действия токена и возвращает claims
func (s *JWTService) ParseToken(tokenString string) (*JWTCustomClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &JWTCustomClaims{}, func(t *jwt.Token) (interface{}, error) {
		// Принимаем только HMAC, чтобы исключить подмену алгоритма
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return s.secret, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, fmt.Errorf("%w: token is expired", apperrors.ErrUnauthorized)
		}
		return nil, fmt.Errorf("%w: %v", apperrors.ErrUnauthorized, err)
	}

	claims, ok := token.Claims.(*JWTCustomClaims)
	if !ok || !token.Valid {
		return nil, fmt.Errorf("%w: invalid token claims", apperrors.ErrUnauthorized)
	}
	return claims, nil
}
