package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"

	"github.com/yourusername/biohack-api/internal/domain/entity"
	apperrors "github.com/yourusername/biohack-api/internal/pkg/errors"
)

// challengeKeyPrefix - префикс ключей закреплённых челленджей
const challengeKeyPrefix = "challenge:"

// ChallengeRepo реализует repository.ChallengeRepository поверх Redis.
// Челлендж живёт под своим ID от выдачи до ответа; TTL страхует от
// брошенных сессий.
type ChallengeRepo struct {
	client redis.UniversalClient
}

// NewChallengeRepo создает новый репозиторий челленджей и возвращает ошибку при проблемах
func NewChallengeRepo(client redis.UniversalClient) (*ChallengeRepo, error) {
	if client == nil {
		return nil, fmt.Errorf("Redis client cannot be nil for ChallengeRepo")
	}
	return &ChallengeRepo{client: client}, nil
}

// Save сохраняет челлендж под его ID с временем жизни ttl
func (r *ChallengeRepo) Save(ctx context.Context, challenge *entity.Challenge, ttl time.Duration) error {
	data, err := json.Marshal(challenge)
	if err != nil {
		return fmt.Errorf("failed to marshal challenge: %w", err)
	}
	return r.client.Set(ctx, challengeKey(challenge.ID), data, ttl).Err()
}

// Get возвращает закреплённый челлендж по ID
func (r *ChallengeRepo) Get(ctx context.Context, id string) (*entity.Challenge, error) {
	data, err := r.client.Get(ctx, challengeKey(id)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, apperrors.ErrNotFound
		}
		return nil, err
	}

	var challenge entity.Challenge
	if err := json.Unmarshal(data, &challenge); err != nil {
		return nil, fmt.Errorf("failed to unmarshal challenge %s: %w", id, err)
	}
	return &challenge, nil
}

// Delete удаляет челлендж после принятого ответа
func (r *ChallengeRepo) Delete(ctx context.Context, id string) error {
	return r.client.Del(ctx, challengeKey(id)).Err()
}

func challengeKey(id string) string {
	return challengeKeyPrefix + id
}
