package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/yourusername/biohack-api/internal/domain/entity"
	"github.com/yourusername/biohack-api/internal/middleware"
	apperrors "github.com/yourusername/biohack-api/internal/pkg/errors"
	"github.com/yourusername/biohack-api/internal/service"
)

// gameTimeout ограничивает время обращений к хранилищам при выдаче/проверке
const gameTimeout = 5 * time.Second

// GameHandler обрабатывает выдачу челленджей и проверку ответов
type GameHandler struct {
	gameService *service.GameService
}

// NewGameHandler создает новый игровой обработчик
func NewGameHandler(gameService *service.GameService) *GameHandler {
	return &GameHandler{gameService: gameService}
}

// CreateChallengeRequest представляет запрос на выдачу челленджа
type CreateChallengeRequest struct {
	Kind string `json:"kind" binding:"required"`
}

// AnswerRequest представляет ответ на челлендж.
// Заполняется поле, соответствующее типу челленджа.
type AnswerRequest struct {
	// Selected - отмеченные варианты для викторины
	Selected []string `json:"selected"`

	// Sequence - комплементарная последовательность для ДНК-игры
	Sequence string `json:"sequence"`

	// Temperature - температура для симулятора ПЦР
	Temperature *int `json:"temperature"`
}

// CreateChallenge выдаёт новый челлендж указанного типа
func (h *GameHandler) CreateChallenge(c *gin.Context) {
	var req CreateChallengeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request data", "details": err.Error()})
		return
	}

	if !entity.IsValidChallengeKind(req.Kind) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Unknown challenge kind, expected quiz, dna or pcr"})
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), gameTimeout)
	defer cancel()

	challenge, err := h.gameService.IssueChallenge(ctx, entity.ChallengeKind(req.Kind))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, challenge)
}

// SubmitAnswer проверяет ответ на закреплённый челлендж.
// Личность берётся из токена, если он передан; анонимные ответы допустимы,
// но очки за них не начисляются.
func (h *GameHandler) SubmitAnswer(c *gin.Context) {
	challengeID := c.Param("id")
	if challengeID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Challenge id is required"})
		return
	}

	var req AnswerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request data", "details": err.Error()})
		return
	}

	// Явный параметр личности: nil - анонимная попытка
	var userID *uint
	if id, ok := middleware.CurrentUserID(c); ok {
		userID = &id
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), gameTimeout)
	defer cancel()

	switch {
	case req.Temperature != nil:
		result, err := h.gameService.SubmitPCR(ctx, challengeID, *req.Temperature)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, result)

	case req.Sequence != "":
		result, err := h.gameService.SubmitDNA(ctx, challengeID, req.Sequence)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, result)

	case req.Selected != nil:
		result, err := h.gameService.SubmitQuiz(ctx, challengeID, req.Selected, userID)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, result)

	default:
		respondError(c, apperrors.ErrValidation)
	}
}
