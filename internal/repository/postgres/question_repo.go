package postgres

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/yourusername/biohack-api/internal/domain/entity"
	apperrors "github.com/yourusername/biohack-api/internal/pkg/errors"
)

// QuestionRepo реализует repository.QuestionRepository
type QuestionRepo struct {
	db *gorm.DB
}

// NewQuestionRepo создает новый репозиторий вопросов
func NewQuestionRepo(db *gorm.DB) *QuestionRepo {
	return &QuestionRepo{db: db}
}

// GetByID возвращает вопрос по ID
func (r *QuestionRepo) GetByID(ctx context.Context, id uint) (*entity.Question, error) {
	var question entity.Question
	err := r.db.WithContext(ctx).First(&question, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrNotFound
		}
		return nil, err
	}
	return &question, nil
}

// GetRandom возвращает один случайный вопрос.
// Контента ~20 записей, ORDER BY RANDOM() здесь дешевле любых оптимизаций выборки.
func (r *QuestionRepo) GetRandom(ctx context.Context) (*entity.Question, error) {
	var question entity.Question
	err := r.db.WithContext(ctx).
		Order("RANDOM()").
		First(&question).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrNotFound
		}
		return nil, err
	}
	return &question, nil
}

// Count возвращает количество вопросов в контенте
func (r *QuestionRepo) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&entity.Question{}).Count(&count).Error
	return count, err
}

// List возвращает все вопросы, отсортированные по ID
func (r *QuestionRepo) List(ctx context.Context) ([]entity.Question, error) {
	var questions []entity.Question
	err := r.db.WithContext(ctx).Order("id").Find(&questions).Error
	if err != nil {
		return nil, err
	}
	return questions, nil
}
