package postgres

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/yourusername/biohack-api/internal/domain/entity"
	apperrors "github.com/yourusername/biohack-api/internal/pkg/errors"
)

// UserRepo реализует repository.UserRepository
type UserRepo struct {
	db *gorm.DB
}

// NewUserRepo создает новый репозиторий пользователей
func NewUserRepo(db *gorm.DB) *UserRepo {
	return &UserRepo{db: db}
}

// Create создает нового пользователя (учётная запись и счёт - одна строка)
func (r *UserRepo) Create(ctx context.Context, user *entity.User) error {
	return r.db.WithContext(ctx).Create(user).Error
}

// GetByID возвращает пользователя по ID
func (r *UserRepo) GetByID(ctx context.Context, id uint) (*entity.User, error) {
	var user entity.User
	err := r.db.WithContext(ctx).First(&user, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrNotFound
		}
		return nil, err
	}
	return &user, nil
}

// GetByEmail возвращает пользователя по email
func (r *UserRepo) GetByEmail(ctx context.Context, email string) (*entity.User, error) {
	var user entity.User
	err := r.db.WithContext(ctx).Where("email = ?", email).First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrNotFound
		}
		return nil, err
	}
	return &user, nil
}

// GetByUsername возвращает пользователя по имени пользователя
func (r *UserRepo) GetByUsername(ctx context.Context, username string) (*entity.User, error) {
	var user entity.User
	err := r.db.WithContext(ctx).Where("username = ?", username).First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrNotFound
		}
		return nil, err
	}
	return &user, nil
}

// GetScore возвращает текущий счёт пользователя
func (r *UserRepo) GetScore(ctx context.Context, userID uint) (int64, error) {
	var user entity.User
	err := r.db.WithContext(ctx).
		Select("score").
		First(&user, userID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return 0, apperrors.ErrNotFound
		}
		return 0, err
	}
	return user.Score, nil
}

// IncrementScore атомарно увеличивает счёт пользователя и возвращает новое значение.
// Одно SQL-выражение вместо чтения-перед-записью: конкурентные инкременты
// (несколько вкладок одного пользователя) не теряют обновления.
func (r *UserRepo) IncrementScore(ctx context.Context, userID uint, delta int64) (int64, error) {
	var newScore int64
	result := r.db.WithContext(ctx).Raw(
		"UPDATE users SET score = score + ?, updated_at = NOW() WHERE id = ? RETURNING score",
		delta, userID,
	).Scan(&newScore)
	if result.Error != nil {
		return 0, result.Error
	}
	if result.RowsAffected == 0 {
		return 0, apperrors.ErrNotFound
	}
	return newScore, nil
}

// GetLeaderboard возвращает до limit пользователей для лидерборда.
// Сортируем по score DESC, затем id ASC для стабильности при равных счетах.
func (r *UserRepo) GetLeaderboard(ctx context.Context, limit int) ([]entity.User, error) {
	var users []entity.User
	err := r.db.WithContext(ctx).
		Order("score DESC, id ASC").
		Limit(limit).
		Select("id", "username", "score"). // Выбираем только нужные поля
		Find(&users).Error
	if err != nil {
		return nil, err
	}
	return users, nil
}
