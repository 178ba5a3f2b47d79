package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/yourusername/biohack-api/internal/domain/entity"
	"github.com/yourusername/biohack-api/internal/handler/dto"
)

// recordingNotifier запоминает последнюю рассылку для проверки в тестах
type recordingNotifier struct {
	calls   int
	entries []*dto.LeaderboardEntryDTO
}

func (n *recordingNotifier) NotifyLeaderboard(entries []*dto.LeaderboardEntryDTO) {
	n.calls++
	n.entries = entries
}

func TestScoreService_IncrementScore_SequentialAwards(t *testing.T) {
	// Arrange
	userRepo := new(MockUserRepo)
	svc := NewScoreService(userRepo, nil)

	userRepo.On("IncrementScore", mock.Anything, uint(1), int64(10)).Return(int64(10), nil).Once()
	userRepo.On("IncrementScore", mock.Anything, uint(1), int64(10)).Return(int64(20), nil).Once()

	// Act: два правильных ответа подряд
	first, err1 := svc.IncrementScore(context.Background(), 1, 10)
	second, err2 := svc.IncrementScore(context.Background(), 1, 10)

	// Assert: 0 -> 10 -> 20
	require.NoError(t, err1)
	require.NoError(t, err2)
	assert.Equal(t, int64(10), first)
	assert.Equal(t, int64(20), second)
	userRepo.AssertExpectations(t)
}

func TestScoreService_IncrementScore_RejectsNonPositiveDelta(t *testing.T) {
	// Arrange
	userRepo := new(MockUserRepo)
	svc := NewScoreService(userRepo, nil)

	// Act & Assert: счёт только растёт
	for _, delta := range []int64{0, -10} {
		_, err := svc.IncrementScore(context.Background(), 1, delta)
		assert.Error(t, err, "Дельта %d должна отклоняться", delta)
	}
	userRepo.AssertNotCalled(t, "IncrementScore", mock.Anything, mock.Anything, mock.Anything)
}

func TestScoreService_IncrementScore_NotifiesSubscribers(t *testing.T) {
	// Arrange
	userRepo := new(MockUserRepo)
	notifier := new(recordingNotifier)
	svc := NewScoreService(userRepo, notifier)

	userRepo.On("IncrementScore", mock.Anything, uint(2), int64(10)).Return(int64(50), nil)
	userRepo.On("GetLeaderboard", mock.Anything, LeaderboardSize).Return([]entity.User{
		{ID: 2, Username: "bob", Score: 50},
		{ID: 1, Username: "alice", Score: 30},
	}, nil)

	// Act
	_, err := svc.IncrementScore(context.Background(), 2, 10)

	// Assert: подписчики получили свежий топ
	require.NoError(t, err)
	assert.Equal(t, 1, notifier.calls)
	require.Len(t, notifier.entries, 2)
	assert.Equal(t, "bob", notifier.entries[0].Username)
}

func TestScoreService_IncrementScore_NotifyFailureDoesNotBreakAward(t *testing.T) {
	// Arrange
	userRepo := new(MockUserRepo)
	notifier := new(recordingNotifier)
	svc := NewScoreService(userRepo, notifier)

	userRepo.On("IncrementScore", mock.Anything, uint(2), int64(10)).Return(int64(50), nil)
	userRepo.On("GetLeaderboard", mock.Anything, LeaderboardSize).Return(nil, assert.AnError)

	// Act
	newScore, err := svc.IncrementScore(context.Background(), 2, 10)

	// Assert: начисление прошло, рассылки не было
	require.NoError(t, err)
	assert.Equal(t, int64(50), newScore)
	assert.Zero(t, notifier.calls)
}

func TestScoreService_GetLeaderboard_AssignsRanks(t *testing.T) {
	// Arrange: две ничьи по 40 очков, репозиторий уже отсортировал по id
	userRepo := new(MockUserRepo)
	svc := NewScoreService(userRepo, nil)

	userRepo.On("GetLeaderboard", mock.Anything, 5).Return([]entity.User{
		{ID: 2, Username: "bob", Score: 40},
		{ID: 4, Username: "dana", Score: 40},
		{ID: 1, Username: "alice", Score: 10},
	}, nil)

	// Act
	entries, err := svc.GetLeaderboard(context.Background(), 5)

	// Assert: ранги 1..n в порядке репозитория
	require.NoError(t, err)
	require.Len(t, entries, 3)
	for i, entry := range entries {
		assert.Equal(t, i+1, entry.Rank)
	}
	assert.Equal(t, "bob", entries[0].Username)
	assert.Equal(t, "dana", entries[1].Username)
}

func TestScoreService_GetLeaderboard_ClampsLimit(t *testing.T) {
	// Arrange
	userRepo := new(MockUserRepo)
	svc := NewScoreService(userRepo, nil)

	userRepo.On("GetLeaderboard", mock.Anything, LeaderboardSize).Return([]entity.User{}, nil).Once()
	userRepo.On("GetLeaderboard", mock.Anything, 100).Return([]entity.User{}, nil).Once()

	// Act: некорректный и завышенный лимиты
	_, err1 := svc.GetLeaderboard(context.Background(), 0)
	_, err2 := svc.GetLeaderboard(context.Background(), 5000)

	// Assert
	require.NoError(t, err1)
	require.NoError(t, err2)
	userRepo.AssertExpectations(t)
}
