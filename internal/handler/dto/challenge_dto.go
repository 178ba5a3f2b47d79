package dto

// QuestionDTO представляет вопрос викторины без правильного ответа
type QuestionDTO struct {
	ID      uint     `json:"id"`
	Text    string   `json:"text"`
	Options []string `json:"options"`
}

// ChallengeDTO представляет выданный челлендж для отображения.
// Правильные ответы в ответ не попадают.
type ChallengeDTO struct {
	ID   string `json:"id"`
	Kind string `json:"kind"`

	// Для kind=quiz
	Question *QuestionDTO `json:"question,omitempty"`

	// Для kind=dna: перемешанная последовательность-подсказка
	Scrambled string `json:"scrambled,omitempty"`

	// Для kind=pcr
	StageName string `json:"stage_name,omitempty"`
	TempMin   int    `json:"temp_min,omitempty"`
	TempMax   int    `json:"temp_max,omitempty"`
}

// Итоги проверки ответа
const (
	OutcomeSuccess   = "success"   // Правильный ответ
	OutcomeWrong     = "wrong"     // Неправильный ответ, правильный раскрыт
	OutcomeAmbiguous = "ambiguous" // Выбрано несколько вариантов - предупреждение, не ошибка
)

// SubmissionResultDTO представляет результат проверки ответа
type SubmissionResultDTO struct {
	Outcome string `json:"outcome"`

	// CorrectAnswer раскрывается при неправильном ответе (quiz, dna)
	CorrectAnswer string `json:"correct_answer,omitempty"`

	// CorrectTemp раскрывается при неправильном ответе (pcr)
	CorrectTemp *int `json:"correct_temp,omitempty"`

	// NewScore заполнен, если за ответ начислены очки
	NewScore *int64 `json:"new_score,omitempty"`

	// Warning - нефатальная проблема (например, счёт не удалось сохранить)
	Warning string `json:"warning,omitempty"`
}
