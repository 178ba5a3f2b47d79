package websocket

import (
	"encoding/json"
	"log"
	"sync"

	"github.com/yourusername/biohack-api/internal/handler/dto"
)

// Hub рассылает обновления рейтинга подписанным клиентам.
// Реализует service.LeaderboardNotifier.
type Hub struct {
	mu          sync.RWMutex
	subscribers map[chan []byte]struct{}
}

// NewHub создает новый хаб рассылки рейтинга
func NewHub() *Hub {
	return &Hub{
		subscribers: make(map[chan []byte]struct{}),
	}
}

// leaderboardMessage - формат сообщения, уходящего в сокет
type leaderboardMessage struct {
	Type    string                     `json:"type"`
	Entries []*dto.LeaderboardEntryDTO `json:"entries"`
}

// NotifyLeaderboard рассылает свежий топ всем подписчикам.
// Медленный клиент не блокирует рассылку: его устаревшее сообщение вытесняется.
func (h *Hub) NotifyLeaderboard(entries []*dto.LeaderboardEntryDTO) {
	data, err := json.Marshal(leaderboardMessage{Type: "leaderboard", Entries: entries})
	if err != nil {
		log.Printf("[Hub] Ошибка сериализации рейтинга: %v", err)
		return
	}

	h.mu.RLock()
	defer h.mu.RUnlock()
	for ch := range h.subscribers {
		select {
		case ch <- data:
		default:
			// Буфер занят: выталкиваем устаревшее сообщение и кладём свежее
			select {
			case <-ch:
			default:
			}
			select {
			case ch <- data:
			default:
			}
		}
	}
}

// Subscribe возвращает канал обновлений и функцию отписки.
// Вызывающий обязан вызвать cancel, иначе канал утечёт.
func (h *Hub) Subscribe() (<-chan []byte, func()) {
	ch := make(chan []byte, 8)

	h.mu.Lock()
	h.subscribers[ch] = struct{}{}
	h.mu.Unlock()

	cancel := func() {
		h.mu.Lock()
		if _, ok := h.subscribers[ch]; ok {
			delete(h.subscribers, ch)
			close(ch)
		}
		h.mu.Unlock()
	}
	return ch, cancel
}

// SubscriberCount возвращает число активных подписчиков
func (h *Hub) SubscriberCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.subscribers)
}
