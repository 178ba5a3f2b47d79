package redis

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/go-redis/redis/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yourusername/biohack-api/internal/domain/entity"
	apperrors "github.com/yourusername/biohack-api/internal/pkg/errors"
)

// setupChallengeRepo поднимает miniredis и репозиторий поверх него
func setupChallengeRepo(t *testing.T) (*ChallengeRepo, *miniredis.Miniredis) {
	t.Helper()

	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })

	repo, err := NewChallengeRepo(client)
	require.NoError(t, err)
	return repo, mr
}

func TestChallengeRepo_SaveAndGet(t *testing.T) {
	// Arrange
	repo, _ := setupChallengeRepo(t)
	ctx := context.Background()

	challenge := &entity.Challenge{
		ID:         "ch-1",
		Kind:       entity.ChallengeQuiz,
		QuestionID: 7,
		IssuedAt:   time.Now().UTC().Truncate(time.Second),
	}

	// Act
	err := repo.Save(ctx, challenge, 15*time.Minute)
	require.NoError(t, err)
	got, err := repo.Get(ctx, "ch-1")

	// Assert: закреплённый экземпляр возвращается целиком
	require.NoError(t, err)
	assert.Equal(t, challenge.ID, got.ID)
	assert.Equal(t, entity.ChallengeQuiz, got.Kind)
	assert.Equal(t, uint(7), got.QuestionID)
}

func TestChallengeRepo_GetMissing(t *testing.T) {
	// Arrange
	repo, _ := setupChallengeRepo(t)

	// Act
	_, err := repo.Get(context.Background(), "no-such-challenge")

	// Assert
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestChallengeRepo_TTLExpiry(t *testing.T) {
	// Arrange
	repo, mr := setupChallengeRepo(t)
	ctx := context.Background()

	challenge := &entity.Challenge{
		ID:        "ch-dna",
		Kind:      entity.ChallengeDNA,
		Scrambled: "GTACATCG",
		IssuedAt:  time.Now(),
	}
	require.NoError(t, repo.Save(ctx, challenge, time.Minute))

	// Act: проматываем время за пределы TTL
	mr.FastForward(time.Minute + time.Second)
	_, err := repo.Get(ctx, "ch-dna")

	// Assert: брошенный челлендж истёк
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestChallengeRepo_DeleteConsumesChallenge(t *testing.T) {
	// Arrange
	repo, _ := setupChallengeRepo(t)
	ctx := context.Background()

	challenge := &entity.Challenge{
		ID:        "ch-pcr",
		Kind:      entity.ChallengePCR,
		StageName: "Annealing",
		IssuedAt:  time.Now(),
	}
	require.NoError(t, repo.Save(ctx, challenge, time.Minute))

	// Act
	require.NoError(t, repo.Delete(ctx, "ch-pcr"))
	_, err := repo.Get(ctx, "ch-pcr")

	// Assert: повторный ответ на тот же челлендж невозможен
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}
