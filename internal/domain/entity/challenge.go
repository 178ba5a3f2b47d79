package entity

import "time"

// ChallengeKind определяет тип мини-игры
type ChallengeKind string

const (
	ChallengeQuiz ChallengeKind = "quiz"
	ChallengeDNA  ChallengeKind = "dna"
	ChallengePCR  ChallengeKind = "pcr"
)

// IsValidChallengeKind проверяет, что строка является известным типом челленджа
func IsValidChallengeKind(kind string) bool {
	switch ChallengeKind(kind) {
	case ChallengeQuiz, ChallengeDNA, ChallengePCR:
		return true
	}
	return false
}

// Challenge - закреплённый экземпляр выданного задания.
// Случайный выбор (вопрос, перемешанная последовательность, стадия ПЦР)
// фиксируется в момент выдачи и хранится до ответа, поэтому показанное
// и проверяемое задание всегда совпадают.
type Challenge struct {
	ID   string        `json:"id"`
	Kind ChallengeKind `json:"kind"`

	// QuestionID заполнен для kind=quiz
	QuestionID uint `json:"question_id,omitempty"`

	// Scrambled - перемешанная последовательность-подсказка для kind=dna
	Scrambled string `json:"scrambled,omitempty"`

	// StageName заполнен для kind=pcr
	StageName string `json:"stage_name,omitempty"`

	IssuedAt time.Time `json:"issued_at"`
}
