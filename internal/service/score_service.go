package service

import (
	"context"
	"fmt"
	"log"

	"github.com/yourusername/biohack-api/internal/domain/repository"
	"github.com/yourusername/biohack-api/internal/handler/dto"
)

// LeaderboardNotifier получает свежий топ после каждого изменения счёта.
// Реализуется websocket-хабом; nil-реализация допустима.
type LeaderboardNotifier interface {
	NotifyLeaderboard(entries []*dto.LeaderboardEntryDTO)
}

// LeaderboardSize - размер отображаемого рейтинга
const LeaderboardSize = 5

// ScoreService предоставляет операции счёта: чтение, начисление, рейтинг
type ScoreService struct {
	userRepo repository.UserRepository
	notifier LeaderboardNotifier
}

// NewScoreService создает новый сервис счёта
func NewScoreService(userRepo repository.UserRepository, notifier LeaderboardNotifier) *ScoreService {
	return &ScoreService{
		userRepo: userRepo,
		notifier: notifier,
	}
}

// GetScore возвращает текущий счёт пользователя
func (s *ScoreService) GetScore(ctx context.Context, userID uint) (int64, error) {
	return s.userRepo.GetScore(ctx, userID)
}

// IncrementScore атомарно начисляет пользователю delta очков и возвращает новый счёт.
// После успешного начисления рассылает обновлённый топ подписчикам.
func (s *ScoreService) IncrementScore(ctx context.Context, userID uint, delta int64) (int64, error) {
	if delta <= 0 {
		return 0, fmt.Errorf("score delta must be positive, got %d", delta)
	}

	newScore, err := s.userRepo.IncrementScore(ctx, userID, delta)
	if err != nil {
		return 0, err
	}

	log.Printf("[ScoreService] Пользователю ID=%d начислено %d очков, новый счёт: %d", userID, delta, newScore)

	if s.notifier != nil {
		// Рассылка не должна ломать начисление: ошибку рейтинга только логируем
		entries, lbErr := s.GetLeaderboard(ctx, LeaderboardSize)
		if lbErr != nil {
			log.Printf("[ScoreService] Не удалось получить рейтинг для рассылки: %v", lbErr)
		} else {
			s.notifier.NotifyLeaderboard(entries)
		}
	}

	return newScore, nil
}

// GetLeaderboard возвращает до n лучших игроков.
// Порядок: score DESC, при равенстве стабильно по id ASC (документированный tie-break).
func (s *ScoreService) GetLeaderboard(ctx context.Context, n int) ([]*dto.LeaderboardEntryDTO, error) {
	if n < 1 {
		n = LeaderboardSize
	} else if n > 100 {
		n = 100 // Максимальный лимит
	}

	users, err := s.userRepo.GetLeaderboard(ctx, n)
	if err != nil {
		log.Printf("[ScoreService] Ошибка при получении лидерборда из репозитория: %v", err)
		return nil, err
	}

	entries := make([]*dto.LeaderboardEntryDTO, len(users))
	for i, user := range users {
		entries[i] = &dto.LeaderboardEntryDTO{
			Rank:     i + 1,
			Username: user.Username,
			Score:    user.Score,
		}
	}
	return entries, nil
}
