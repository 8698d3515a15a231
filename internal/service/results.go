package service

import (
	"sync"
	"time"

	"github.com/Yippine/QuizForge-AI/internal/models"
	"github.com/Yippine/QuizForge-AI/internal/timer"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// ResultsS holds the outcome of the last completed quiz for the results view.
// It is not persisted.
type ResultsS struct {
	log *zap.Logger
	now func() time.Time

	mu       sync.RWMutex
	snapshot models.QuizSnapshot
}

func NewResultsService(log *zap.Logger) *ResultsS {
	return &ResultsS{
		log: log,
		now: time.Now,
	}
}

func (r *ResultsS) SaveResults(results models.QuizResults, cfg models.QuizConfig) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.snapshot = models.QuizSnapshot{
		Results:   results,
		Config:    cfg,
		Timestamp: r.now(),
	}

	r.log.Info("quiz results saved",
		zap.String("session_id", cfg.SessionID),
		zap.Int("total", results.TotalQuestions),
		zap.Int("correct", results.CorrectCount),
		zap.Int("accuracy", results.Accuracy),
		zap.String("time", results.FormattedTime),
	)
}

func (r *ResultsS) Results() models.QuizSnapshot {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.snapshot
}

func (r *ResultsS) ClearResults() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.snapshot = models.QuizSnapshot{}
}

func (r *ResultsS) HasResults() bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.snapshot.Results.TotalQuestions > 0
}

func (r *ResultsS) IsPerfectScore() bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.snapshot.Results.TotalQuestions > 0 && r.snapshot.Results.Accuracy == 100
}

func (r *ResultsS) WrongResultsCount() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.snapshot.Results.WrongQuestions)
}

// NewQuizConfig starts a session configuration with a fresh session id.
func NewQuizConfig(mode models.QuizMode, topicID string, questions []models.Question, limit time.Duration) models.QuizConfig {
	ids := make([]string, 0, len(questions))
	for _, q := range questions {
		ids = append(ids, q.QuestionID)
	}
	return models.QuizConfig{
		SessionID:     uuid.NewString(),
		TopicID:       topicID,
		Mode:          mode,
		QuestionIDs:   ids,
		QuestionCount: len(questions),
		TimeLimit:     limit,
	}
}

// BuildResults scores a finished session. answers maps question id to the chosen
// label; an unanswered question counts as incorrect.
func BuildResults(questions []models.Question, answers map[string]string, elapsed time.Duration, timedOut bool) models.QuizResults {
	results := models.QuizResults{
		TotalQuestions:  len(questions),
		Elapsed:         elapsed,
		FormattedTime:   timer.FormatElapsed(elapsed),
		TimedOut:        timedOut,
		QuestionResults: make([]models.QuestionResult, 0, len(questions)),
		WrongQuestions:  []models.QuestionResult{},
	}

	for _, q := range questions {
		userAnswer := answers[q.QuestionID]
		qr := models.QuestionResult{
			Question:      q,
			UserAnswer:    userAnswer,
			CorrectAnswer: q.Answer,
			IsCorrect:     userAnswer != "" && userAnswer == q.Answer,
		}
		results.QuestionResults = append(results.QuestionResults, qr)
		if qr.IsCorrect {
			results.CorrectCount++
		} else {
			results.WrongQuestions = append(results.WrongQuestions, qr)
		}
	}

	results.IncorrectCount = results.TotalQuestions - results.CorrectCount
	results.Accuracy = Accuracy(results.CorrectCount, results.TotalQuestions)

	return results
}
