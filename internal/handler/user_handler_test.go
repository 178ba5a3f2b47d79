package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/yourusername/biohack-api/internal/domain/entity"
	"github.com/yourusername/biohack-api/internal/handler/dto"
	"github.com/yourusername/biohack-api/internal/service"
)

// MockUserRepoForHandler реализует repository.UserRepository;
// в этих тестах важен только GetLeaderboard
type MockUserRepoForHandler struct {
	mock.Mock
}

func (m *MockUserRepoForHandler) Create(ctx context.Context, user *entity.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepoForHandler) GetByID(ctx context.Context, id uint) (*entity.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.User), args.Error(1)
}

func (m *MockUserRepoForHandler) GetByEmail(ctx context.Context, email string) (*entity.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.User), args.Error(1)
}

func (m *MockUserRepoForHandler) GetByUsername(ctx context.Context, username string) (*entity.User, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.User), args.Error(1)
}

func (m *MockUserRepoForHandler) GetScore(ctx context.Context, userID uint) (int64, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockUserRepoForHandler) IncrementScore(ctx context.Context, userID uint, delta int64) (int64, error) {
	args := m.Called(ctx, userID, delta)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockUserRepoForHandler) GetLeaderboard(ctx context.Context, limit int) ([]entity.User, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.User), args.Error(1)
}

func setupLeaderboardRouter(userRepo *MockUserRepoForHandler) *gin.Engine {
	gin.SetMode(gin.TestMode)

	scoreService := service.NewScoreService(userRepo, nil)
	userHandler := NewUserHandler(scoreService)

	router := gin.New()
	router.GET("/api/leaderboard", userHandler.GetLeaderboard)
	return router
}

func TestUserHandler_GetLeaderboard_Success(t *testing.T) {
	// Arrange
	userRepo := new(MockUserRepoForHandler)
	userRepo.On("GetLeaderboard", mock.Anything, 5).Return([]entity.User{
		{ID: 2, Username: "bob", Score: 40},
		{ID: 1, Username: "alice", Score: 10},
	}, nil)
	router := setupLeaderboardRouter(userRepo)

	// Act
	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, "/api/leaderboard", nil)
	router.ServeHTTP(w, req)

	// Assert
	require.Equal(t, http.StatusOK, w.Code)
	var resp dto.LeaderboardResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp.Entries, 2)
	assert.Equal(t, 1, resp.Entries[0].Rank)
	assert.Equal(t, "bob", resp.Entries[0].Username)
	assert.Empty(t, resp.Warning)
}

func TestUserHandler_GetLeaderboard_DegradesOnStorageFailure(t *testing.T) {
	// Arrange: хранилище недоступно
	userRepo := new(MockUserRepoForHandler)
	userRepo.On("GetLeaderboard", mock.Anything, mock.Anything).Return(nil, assert.AnError)
	router := setupLeaderboardRouter(userRepo)

	// Act
	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, "/api/leaderboard", nil)
	router.ServeHTTP(w, req)

	// Assert: HTTP 200 с пустым списком и предупреждением, а не 500
	require.Equal(t, http.StatusOK, w.Code)
	var resp dto.LeaderboardResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Empty(t, resp.Entries)
	assert.NotEmpty(t, resp.Warning)
}

func TestUserHandler_GetLeaderboard_BadLimitFallsBack(t *testing.T) {
	// Arrange
	userRepo := new(MockUserRepoForHandler)
	userRepo.On("GetLeaderboard", mock.Anything, 5).Return([]entity.User{}, nil)
	router := setupLeaderboardRouter(userRepo)

	// Act: некорректный limit подменяется дефолтным
	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, "/api/leaderboard?limit=abc", nil)
	router.ServeHTTP(w, req)

	// Assert
	require.Equal(t, http.StatusOK, w.Code)
	userRepo.AssertCalled(t, "GetLeaderboard", mock.Anything, 5)
}
