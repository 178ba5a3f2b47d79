package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/mail"
	"strings"

	"github.com/yourusername/biohack-api/internal/domain/entity"
	"github.com/yourusername/biohack-api/internal/domain/repository"
	apperrors "github.com/yourusername/biohack-api/internal/pkg/errors"
	"github.com/yourusername/biohack-api/pkg/auth"
)

// AuthService предоставляет методы для регистрации и входа пользователей
type AuthService struct {
	userRepo   repository.UserRepository
	jwtService *auth.JWTService
}

// RegisterInput содержит все данные для регистрации
type RegisterInput struct {
	Username string
	Email    string
	Password string
}

// LoginResult содержит данные успешного входа
type LoginResult struct {
	User        *entity.User
	AccessToken string
	ExpiresIn   int
}

// NewAuthService создает новый сервис аутентификации и возвращает ошибку при проблемах
func NewAuthService(userRepo repository.UserRepository, jwtService *auth.JWTService) (*AuthService, error) {
	if userRepo == nil {
		return nil, fmt.Errorf("UserRepository is required for AuthService")
	}
	if jwtService == nil {
		return nil, fmt.Errorf("JWTService is required for AuthService")
	}
	return &AuthService{
		userRepo:   userRepo,
		jwtService: jwtService,
	}, nil
}

// RegisterUser регистрирует нового пользователя со счётом 0.
// Учётная запись и счёт - одна строка в БД, поэтому частичная регистрация
// (identity есть, счёта нет) невозможна.
func (s *AuthService) RegisterUser(ctx context.Context, input RegisterInput) (*entity.User, error) {
	// Нормализуем
	input.Email = normalizeEmail(input.Email)
	input.Username = strings.TrimSpace(input.Username)

	if input.Username == "" {
		return nil, fmt.Errorf("%w: username is required", apperrors.ErrValidation)
	}
	if _, err := mail.ParseAddress(input.Email); err != nil {
		return nil, fmt.Errorf("%w: malformed email", apperrors.ErrValidation)
	}
	if len(input.Password) < 6 {
		return nil, fmt.Errorf("%w: password must be at least 6 characters", apperrors.ErrValidation)
	}

	// Проверяем, существует ли пользователь с таким email
	_, err := s.userRepo.GetByEmail(ctx, input.Email)
	if err == nil {
		return nil, fmt.Errorf("%w: user with this email already exists", apperrors.ErrConflict)
	}
	if !errors.Is(err, apperrors.ErrNotFound) {
		return nil, fmt.Errorf("failed to check email existence: %w", err)
	}

	// Проверяем, существует ли пользователь с таким username
	_, err = s.userRepo.GetByUsername(ctx, input.Username)
	if err == nil {
		return nil, fmt.Errorf("%w: user with this username already exists", apperrors.ErrConflict)
	}
	if !errors.Is(err, apperrors.ErrNotFound) {
		return nil, fmt.Errorf("failed to check username existence: %w", err)
	}

	user := &entity.User{
		Username: input.Username,
		Email:    input.Email,
		Password: input.Password, // Хешируется в BeforeSave
		Score:    0,
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	log.Printf("[AuthService] Пользователь ID=%d (%s) зарегистрирован", user.ID, user.Email)
	return user, nil
}

// LoginUser выполняет вход по email и паролю.
// Неизвестный email возвращает ErrNotFound (это не внутренняя ошибка),
// неверный пароль - ErrUnauthorized. Пароль проверяется всегда.
func (s *AuthService) LoginUser(ctx context.Context, email, password string) (*LoginResult, error) {
	email = normalizeEmail(email)

	user, err := s.userRepo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to look up user by email: %w", err)
	}

	if !user.CheckPassword(password) {
		return nil, fmt.Errorf("%w: invalid credentials", apperrors.ErrUnauthorized)
	}

	token, err := s.jwtService.GenerateToken(user.ID, user.Email)
	if err != nil {
		return nil, fmt.Errorf("failed to generate access token: %w", err)
	}

	return &LoginResult{
		User:        user,
		AccessToken: token,
		ExpiresIn:   s.jwtService.ExpiresIn(),
	}, nil
}

// GetUserByID возвращает пользователя по ID
func (s *AuthService) GetUserByID(ctx context.Context, id uint) (*entity.User, error) {
	return s.userRepo.GetByID(ctx, id)
}

// normalizeEmail приводит email к каноническому виду
func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
