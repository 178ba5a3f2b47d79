package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"math/rand"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/yourusername/biohack-api/internal/domain/entity"
	"github.com/yourusername/biohack-api/internal/domain/repository"
	"github.com/yourusername/biohack-api/internal/handler/dto"
	apperrors "github.com/yourusername/biohack-api/internal/pkg/errors"
)

// GameService выдаёт челленджи и проверяет ответы трёх мини-игр:
// викторина, комплементарная ДНК и температуры ПЦР.
// Случайный экземпляр фиксируется при выдаче и хранится до ответа,
// поэтому показанное и проверяемое задание не могут разойтись.
type GameService struct {
	questionRepo  repository.QuestionRepository
	challengeRepo repository.ChallengeRepository
	scoreService  *ScoreService
	quizPoints    int64
	challengeTTL  time.Duration
}

// NewGameService создает новый игровой сервис и возвращает ошибку при проблемах
func NewGameService(
	questionRepo repository.QuestionRepository,
	challengeRepo repository.ChallengeRepository,
	scoreService *ScoreService,
	quizPoints int64,
	challengeTTL time.Duration,
) (*GameService, error) {
	if questionRepo == nil {
		return nil, fmt.Errorf("QuestionRepository is required for GameService")
	}
	if challengeRepo == nil {
		return nil, fmt.Errorf("ChallengeRepository is required for GameService")
	}
	if scoreService == nil {
		return nil, fmt.Errorf("ScoreService is required for GameService")
	}
	if quizPoints <= 0 {
		quizPoints = 10
	}
	if challengeTTL <= 0 {
		challengeTTL = 15 * time.Minute
	}
	return &GameService{
		questionRepo:  questionRepo,
		challengeRepo: challengeRepo,
		scoreService:  scoreService,
		quizPoints:    quizPoints,
		challengeTTL:  challengeTTL,
	}, nil
}

// IssueChallenge выдаёт новый челлендж указанного типа: делает случайный выбор,
// закрепляет его под uuid и возвращает представление без правильных ответов.
func (s *GameService) IssueChallenge(ctx context.Context, kind entity.ChallengeKind) (*dto.ChallengeDTO, error) {
	challenge := &entity.Challenge{
		ID:       uuid.NewString(),
		Kind:     kind,
		IssuedAt: time.Now(),
	}
	view := &dto.ChallengeDTO{
		ID:   challenge.ID,
		Kind: string(kind),
	}

	switch kind {
	case entity.ChallengeQuiz:
		question, err := s.questionRepo.GetRandom(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to pick quiz question: %w", err)
		}
		challenge.QuestionID = question.ID
		view.Question = &dto.QuestionDTO{
			ID:      question.ID,
			Text:    question.Text,
			Options: question.Options,
		}

	case entity.ChallengeDNA:
		challenge.Scrambled = scrambleSequence(entity.DNASequence)
		view.Scrambled = challenge.Scrambled

	case entity.ChallengePCR:
		stage := entity.PCRStages[rand.Intn(len(entity.PCRStages))]
		challenge.StageName = stage.Name
		view.StageName = stage.Name
		view.TempMin = entity.PCRTempMin
		view.TempMax = entity.PCRTempMax

	default:
		return nil, fmt.Errorf("%w: unknown challenge kind %q", apperrors.ErrValidation, kind)
	}

	if err := s.challengeRepo.Save(ctx, challenge, s.challengeTTL); err != nil {
		return nil, fmt.Errorf("failed to pin challenge: %w", err)
	}
	return view, nil
}

// SubmitQuiz проверяет ответ викторины.
// Ровно один правильный вариант - успех (+quizPoints залогиненному пользователю),
// несколько вариантов - предупреждение без мутации состояния,
// иначе - неудача с раскрытием правильного ответа.
// userID передаётся явно: nil означает анонимную попытку, успех без начисления.
func (s *GameService) SubmitQuiz(ctx context.Context, challengeID string, selected []string, userID *uint) (*dto.SubmissionResultDTO, error) {
	challenge, err := s.getChallenge(ctx, challengeID, entity.ChallengeQuiz)
	if err != nil {
		return nil, err
	}

	question, err := s.questionRepo.GetByID(ctx, challenge.QuestionID)
	if err != nil {
		return nil, fmt.Errorf("failed to load pinned question %d: %w", challenge.QuestionID, err)
	}

	// Несколько отмеченных вариантов - неоднозначный ввод, а не неправильный ответ.
	// Челлендж остаётся закреплённым: пользователь может исправить выбор.
	if len(selected) > 1 {
		return &dto.SubmissionResultDTO{Outcome: dto.OutcomeAmbiguous}, nil
	}

	// Ответ принят - челлендж считается использованным
	s.consumeChallenge(ctx, challengeID)

	if len(selected) == 1 && question.IsCorrect(selected[0]) {
		result := &dto.SubmissionResultDTO{Outcome: dto.OutcomeSuccess}
		if userID != nil {
			newScore, scoreErr := s.scoreService.IncrementScore(ctx, *userID, s.quizPoints)
			if scoreErr != nil {
				// Начисление не должно скрывать успех ответа: деградируем до предупреждения
				log.Printf("[GameService] Не удалось начислить очки пользователю ID=%d: %v", *userID, scoreErr)
				result.Warning = "score could not be saved"
			} else {
				result.NewScore = &newScore
			}
		}
		return result, nil
	}

	return &dto.SubmissionResultDTO{
		Outcome:       dto.OutcomeWrong,
		CorrectAnswer: question.CorrectAnswer,
	}, nil
}

// SubmitDNA проверяет комплементарную последовательность.
// Сравнение точное, без частичного зачёта; регистр нормализуется.
// Очки не начисляются: счёт мутирует только викторина.
func (s *GameService) SubmitDNA(ctx context.Context, challengeID, candidate string) (*dto.SubmissionResultDTO, error) {
	if _, err := s.getChallenge(ctx, challengeID, entity.ChallengeDNA); err != nil {
		return nil, err
	}

	expected := entity.ComplementDNA(entity.DNASequence)
	s.consumeChallenge(ctx, challengeID)

	if strings.ToUpper(strings.TrimSpace(candidate)) == expected {
		return &dto.SubmissionResultDTO{Outcome: dto.OutcomeSuccess}, nil
	}
	return &dto.SubmissionResultDTO{
		Outcome:       dto.OutcomeWrong,
		CorrectAnswer: expected,
	}, nil
}

// SubmitPCR проверяет температуру стадии ПЦР.
// Успех только при точном совпадении, без допусков.
func (s *GameService) SubmitPCR(ctx context.Context, challengeID string, temp int) (*dto.SubmissionResultDTO, error) {
	if temp < entity.PCRTempMin || temp > entity.PCRTempMax {
		return nil, fmt.Errorf("%w: temperature must be between %d and %d",
			apperrors.ErrValidation, entity.PCRTempMin, entity.PCRTempMax)
	}

	challenge, err := s.getChallenge(ctx, challengeID, entity.ChallengePCR)
	if err != nil {
		return nil, err
	}

	stage, ok := entity.PCRStageByName(challenge.StageName)
	if !ok {
		return nil, fmt.Errorf("pinned challenge %s references unknown PCR stage %q", challengeID, challenge.StageName)
	}

	s.consumeChallenge(ctx, challengeID)

	if temp == stage.Temp {
		return &dto.SubmissionResultDTO{Outcome: dto.OutcomeSuccess}, nil
	}
	correct := stage.Temp
	return &dto.SubmissionResultDTO{
		Outcome:       dto.OutcomeWrong,
		CorrectAnswer: stage.Name,
		CorrectTemp:   &correct,
	}, nil
}

// getChallenge достаёт закреплённый челлендж и проверяет его тип
func (s *GameService) getChallenge(ctx context.Context, id string, kind entity.ChallengeKind) (*entity.Challenge, error) {
	challenge, err := s.challengeRepo.Get(ctx, id)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, fmt.Errorf("%w: challenge expired or already answered", apperrors.ErrNotFound)
		}
		return nil, err
	}
	if challenge.Kind != kind {
		return nil, fmt.Errorf("%w: challenge %s is %q, not %q", apperrors.ErrValidation, id, challenge.Kind, kind)
	}
	return challenge, nil
}

// consumeChallenge удаляет отвеченный челлендж; ошибка удаления не фатальна
func (s *GameService) consumeChallenge(ctx context.Context, id string) {
	if err := s.challengeRepo.Delete(ctx, id); err != nil {
		log.Printf("[GameService] Не удалось удалить челлендж %s: %v", id, err)
	}
}

// scrambleSequence возвращает перемешанную копию последовательности (подсказка для игрока)
func scrambleSequence(sequence string) string {
	letters := []rune(sequence)
	rand.Shuffle(len(letters), func(i, j int) {
		letters[i], letters[j] = letters[j], letters[i]
	})
	return string(letters)
}
