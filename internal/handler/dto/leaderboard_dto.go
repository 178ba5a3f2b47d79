package dto

// LeaderboardEntryDTO представляет одного игрока в топе
type LeaderboardEntryDTO struct {
	Rank     int    `json:"rank"`     // Место игрока в рейтинге
	Username string `json:"username"` // Имя игрока
	Score    int64  `json:"score"`    // Счёт игрока
}

// LeaderboardResponse представляет ответ для лидерборда.
// При недоступности хранилища Entries пустой, а Warning объясняет причину.
type LeaderboardResponse struct {
	Entries []*LeaderboardEntryDTO `json:"entries"`
	Warning string                 `json:"warning,omitempty"`
}
