package repository

import (
	"context"

	"github.com/yourusername/biohack-api/internal/domain/entity"
)

// UserRepository определяет методы для работы с пользователями и их счетами
type UserRepository interface {
	Create(ctx context.Context, user *entity.User) error
	GetByID(ctx context.Context, id uint) (*entity.User, error)
	GetByEmail(ctx context.Context, email string) (*entity.User, error)
	GetByUsername(ctx context.Context, username string) (*entity.User, error)

	// GetScore возвращает текущий счёт пользователя
	GetScore(ctx context.Context, userID uint) (int64, error)

	// IncrementScore атомарно увеличивает счёт на delta и возвращает новое значение.
	// Одним SQL-выражением, без чтения-перед-записью: конкурентные инкременты не теряются.
	IncrementScore(ctx context.Context, userID uint, delta int64) (int64, error)

	// GetLeaderboard возвращает до limit пользователей, отсортированных
	// по score DESC; при равенстве счёта стабильно по id ASC.
	GetLeaderboard(ctx context.Context, limit int) ([]entity.User, error)
}
