package handler

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/xuri/excelize/v2"

	"github.com/yourusername/biohack-api/internal/handler/dto"
	"github.com/yourusername/biohack-api/internal/service"
)

// leaderboardTimeout ограничивает время запроса рейтинга
const leaderboardTimeout = 5 * time.Second

// UserHandler обрабатывает запросы, связанные с рейтингом игроков
type UserHandler struct {
	scoreService *service.ScoreService
}

// NewUserHandler создает новый обработчик пользователей
func NewUserHandler(scoreService *service.ScoreService) *UserHandler {
	return &UserHandler{scoreService: scoreService}
}

// GetLeaderboard обрабатывает запрос на получение топа игроков.
// Недоступность хранилища деградирует до пустого списка с предупреждением,
// а не до ошибки: интерфейс остаётся работоспособным.
func (h *UserHandler) GetLeaderboard(c *gin.Context) {
	limitStr := c.DefaultQuery("limit", strconv.Itoa(service.LeaderboardSize))
	limit, err := strconv.Atoi(limitStr)
	if err != nil || limit < 1 {
		limit = service.LeaderboardSize
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), leaderboardTimeout)
	defer cancel()

	entries, err := h.scoreService.GetLeaderboard(ctx, limit)
	if err != nil {
		log.Printf("[UserHandler] Ошибка получения лидерборда: %v", err)
		c.JSON(http.StatusOK, dto.LeaderboardResponse{
			Entries: []*dto.LeaderboardEntryDTO{},
			Warning: "Leaderboard is temporarily unavailable",
		})
		return
	}

	c.JSON(http.StatusOK, dto.LeaderboardResponse{Entries: entries})
}

// ExportLeaderboard экспортирует топ игроков в Excel
func (h *UserHandler) ExportLeaderboard(c *gin.Context) {
	limitStr := c.DefaultQuery("limit", "100")
	limit, err := strconv.Atoi(limitStr)
	if err != nil || limit < 1 {
		limit = 100
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), leaderboardTimeout)
	defer cancel()

	entries, err := h.scoreService.GetLeaderboard(ctx, limit)
	if err != nil {
		respondError(c, err)
		return
	}

	h.exportXLSX(c, entries, "leaderboard")
}

// exportXLSX записывает рейтинг в Excel с использованием StreamWriter
func (h *UserHandler) exportXLSX(c *gin.Context, entries []*dto.LeaderboardEntryDTO, filename string) {
	c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=\"%s.xlsx\"", filename))

	f := excelize.NewFile()
	defer f.Close()

	sheetName := "Рейтинг"
	f.SetSheetName("Sheet1", sheetName)

	sw, err := f.NewStreamWriter(sheetName)
	if err != nil {
		log.Printf("[UserHandler] Ошибка создания StreamWriter: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create Excel file"})
		return
	}

	// Заголовки
	headers := []interface{}{"Место", "Игрок", "Очки"}
	if err := sw.SetRow("A1", headers); err != nil {
		log.Printf("[UserHandler] Ошибка записи заголовков: %v", err)
	}

	// Данные
	for i, entry := range entries {
		rowNum := i + 2 // Начинаем с 2 строки (1 - заголовки)
		cell := fmt.Sprintf("A%d", rowNum)
		row := []interface{}{entry.Rank, entry.Username, entry.Score}
		if err := sw.SetRow(cell, row); err != nil {
			log.Printf("[UserHandler] Ошибка записи строки %d: %v", rowNum, err)
		}
	}

	if err := sw.Flush(); err != nil {
		log.Printf("[UserHandler] Ошибка завершения StreamWriter: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to finalize Excel file"})
		return
	}

	if err := f.Write(c.Writer); err != nil {
		log.Printf("[UserHandler] Ошибка отправки Excel файла: %v", err)
	}
}
