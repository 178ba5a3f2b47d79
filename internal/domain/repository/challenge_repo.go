package repository

import (
	"context"
	"time"

	"github.com/yourusername/biohack-api/internal/domain/entity"
)

// ChallengeRepository хранит закреплённые экземпляры выданных челленджей.
// Экземпляр живёт от выдачи до ответа (или до истечения TTL).
type ChallengeRepository interface {
	// Save сохраняет челлендж под его ID с временем жизни ttl
	Save(ctx context.Context, challenge *entity.Challenge, ttl time.Duration) error

	// Get возвращает закреплённый челлендж; ErrNotFound если истёк или уже отвечен
	Get(ctx context.Context, id string) (*entity.Challenge, error)

	// Delete удаляет челлендж (вызывается после принятого ответа)
	Delete(ctx context.Context, id string) error
}
