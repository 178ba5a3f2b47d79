package handler

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	gorilla "github.com/gorilla/websocket"

	"github.com/yourusername/biohack-api/internal/handler/dto"
	"github.com/yourusername/biohack-api/internal/service"
	ws "github.com/yourusername/biohack-api/internal/websocket"
)

// WSHandler отдаёт обновления рейтинга по websocket
type WSHandler struct {
	hub          *ws.Hub
	scoreService *service.ScoreService
	upgrader     gorilla.Upgrader
}

// NewWSHandler создает новый websocket-обработчик
func NewWSHandler(hub *ws.Hub, scoreService *service.ScoreService) *WSHandler {
	return &WSHandler{
		hub:          hub,
		scoreService: scoreService,
		upgrader: gorilla.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin:     func(r *http.Request) bool { return true },
		},
	}
}

// leaderboardSnapshot - первое сообщение после подключения
type leaderboardSnapshot struct {
	Type    string                     `json:"type"`
	Entries []*dto.LeaderboardEntryDTO `json:"entries"`
}

// HandleLeaderboard апгрейдит соединение и стримит клиенту топ игроков:
// сразу текущий срез, далее обновления после каждого изменения счёта.
func (h *WSHandler) HandleLeaderboard(c *gin.Context) {
	conn, err := h.upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.Printf("[WSHandler] Ошибка апгрейда соединения: %v", err)
		return
	}
	defer conn.Close()

	// Отправляем текущий срез сразу после подключения
	ctx, cancel := context.WithTimeout(c.Request.Context(), leaderboardTimeout)
	entries, err := h.scoreService.GetLeaderboard(ctx, service.LeaderboardSize)
	cancel()
	if err != nil {
		log.Printf("[WSHandler] Не удалось получить начальный рейтинг: %v", err)
		entries = []*dto.LeaderboardEntryDTO{}
	}
	snapshot, err := json.Marshal(leaderboardSnapshot{Type: "leaderboard", Entries: entries})
	if err == nil {
		if err := conn.WriteMessage(gorilla.TextMessage, snapshot); err != nil {
			return
		}
	}

	updates, unsubscribe := h.hub.Subscribe()
	defer unsubscribe()

	// Читаем входящие только чтобы заметить закрытие со стороны клиента
	done := make(chan struct{})
	go func() {
		defer close(done)
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()

	for {
		select {
		case data, ok := <-updates:
			if !ok {
				return
			}
			conn.SetWriteDeadline(time.Now().Add(10 * time.Second))
			if err := conn.WriteMessage(gorilla.TextMessage, data); err != nil {
				return
			}
		case <-done:
			return
		}
	}
}
