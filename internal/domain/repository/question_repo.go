package repository

import (
	"context"

	"github.com/yourusername/biohack-api/internal/domain/entity"
)

// QuestionRepository определяет методы для чтения контента викторины.
// Контент иммутабелен и загружается миграцией, поэтому интерфейс только читающий.
type QuestionRepository interface {
	GetByID(ctx context.Context, id uint) (*entity.Question, error)
	GetRandom(ctx context.Context) (*entity.Question, error)
	Count(ctx context.Context) (int64, error)
	List(ctx context.Context) ([]entity.Question, error)
}
