package service

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"time"

	"github.com/Yippine/QuizForge-AI/internal/models"
	"go.uber.org/zap"
)

const (
	AnswerHistoryKey  = "quizforge_answer_history"
	WrongQuestionsKey = "quizforge_wrong_questions"
)

var ErrMissingQuestionID = errors.New("answer record has no question id")

type StorageI interface {
	Load(ctx context.Context, key string) ([]byte, bool, error)
	Save(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
}

// TrackingS keeps the answer history and the wrong-question ledger in memory
// and writes the affected collection in full after every change. A failed write
// is logged and the in-memory state is kept.
type TrackingS struct {
	storage StorageI
	log     *zap.Logger
	now     func() time.Time

	mu      sync.RWMutex
	history []models.AnswerRecord
	wrong   []models.WrongQuestionRecord
}

// NewTrackingService reads both collections eagerly. Unreadable or corrupt data
// starts the collection empty.
func NewTrackingService(ctx context.Context, storage StorageI, log *zap.Logger) *TrackingS {
	t := &TrackingS{
		storage: storage,
		log:     log,
		now:     time.Now,
		history: []models.AnswerRecord{},
		wrong:   []models.WrongQuestionRecord{},
	}

	loadCollection(ctx, t, AnswerHistoryKey, &t.history)
	loadCollection(ctx, t, WrongQuestionsKey, &t.wrong)

	return t
}

func loadCollection[T any](ctx context.Context, t *TrackingS, key string, dest *[]T) {
	data, found, err := t.storage.Load(ctx, key)
	if err != nil {
		t.log.Error("failed to read stored collection", zap.String("key", key), zap.Error(err))
		return
	}
	if !found {
		return
	}

	var items []T
	if err := json.Unmarshal(data, &items); err != nil {
		t.log.Error("stored collection is corrupt, starting empty", zap.String("key", key), zap.Error(err))
		return
	}
	if items != nil {
		*dest = items
	}
}

// SaveAnswer appends the record to the history and updates the ledger. It returns
// false only when the record has no question id.
func (t *TrackingS) SaveAnswer(ctx context.Context, record models.AnswerRecord) bool {
	if record.QuestionID == "" {
		t.log.Warn("rejected answer record", zap.Error(ErrMissingQuestionID))
		return false
	}
	if record.Timestamp.IsZero() {
		record.Timestamp = t.now()
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	t.history = append(t.history, record)
	t.persist(ctx, AnswerHistoryKey, t.history)

	idx := t.wrongIndex(record.QuestionID)

	switch {
	case !record.IsCorrect && idx < 0:
		t.wrong = append(t.wrong, models.WrongQuestionRecord{
			QuestionID:    record.QuestionID,
			WrongCount:    1,
			LastWrongTime: record.Timestamp,
			Topic:         record.Topic,
			Difficulty:    record.Difficulty,
			Attempts: []models.Attempt{{
				Timestamp:  record.Timestamp,
				IsCorrect:  false,
				UserAnswer: record.UserAnswer,
			}},
		})
	case !record.IsCorrect:
		entry := &t.wrong[idx]
		entry.WrongCount++
		entry.LastWrongTime = record.Timestamp
		entry.Attempts = append(entry.Attempts, models.Attempt{
			Timestamp:  record.Timestamp,
			IsCorrect:  false,
			UserAnswer: record.UserAnswer,
		})
	case idx >= 0:
		entry := &t.wrong[idx]
		entry.Attempts = append(entry.Attempts, models.Attempt{
			Timestamp:  record.Timestamp,
			IsCorrect:  true,
			UserAnswer: record.UserAnswer,
		})
	default:
		return true
	}

	t.persist(ctx, WrongQuestionsKey, t.wrong)

	return true
}

func (t *TrackingS) wrongIndex(questionID string) int {
	for i := range t.wrong {
		if t.wrong[i].QuestionID == questionID {
			return i
		}
	}
	return -1
}

func (t *TrackingS) persist(ctx context.Context, key string, value any) {
	data, err := json.Marshal(value)
	if err != nil {
		t.log.Error("failed to encode collection", zap.String("key", key), zap.Error(err))
		return
	}
	if err := t.storage.Save(ctx, key, data); err != nil {
		t.log.Error("failed to persist collection", zap.String("key", key), zap.Error(err))
	}
}

func (t *TrackingS) drop(ctx context.Context, key string) {
	if err := t.storage.Delete(ctx, key); err != nil {
		t.log.Error("failed to delete collection", zap.String("key", key), zap.Error(err))
	}
}

func (t *TrackingS) AnswerHistory() []models.AnswerRecord {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return append([]models.AnswerRecord{}, t.history...)
}

func (t *TrackingS) AnswerCount() int {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return len(t.history)
}

// WrongQuestions returns the ledger entries whose latest attempt was incorrect.
func (t *TrackingS) WrongQuestions() []models.WrongQuestionRecord {
	t.mu.RLock()
	defer t.mu.RUnlock()
	out := make([]models.WrongQuestionRecord, 0, len(t.wrong))
	for _, w := range t.wrong {
		if w.IsActive() {
			out = append(out, cloneWrong(w))
		}
	}
	return out
}

// AllWrongQuestions includes entries that were answered correctly since.
func (t *TrackingS) AllWrongQuestions() []models.WrongQuestionRecord {
	t.mu.RLock()
	defer t.mu.RUnlock()
	out := make([]models.WrongQuestionRecord, 0, len(t.wrong))
	for _, w := range t.wrong {
		out = append(out, cloneWrong(w))
	}
	return out
}

func (t *TrackingS) WrongQuestionsCount() int {
	return len(t.WrongQuestions())
}

func (t *TrackingS) RemoveFromWrongQuestions(ctx context.Context, questionID string) bool {
	t.mu.Lock()
	defer t.mu.Unlock()

	idx := t.wrongIndex(questionID)
	if idx < 0 {
		return false
	}
	t.wrong = append(t.wrong[:idx], t.wrong[idx+1:]...)
	t.persist(ctx, WrongQuestionsKey, t.wrong)

	return true
}

// ClearWrongQuestions drops the whole ledger and its stored key.
func (t *TrackingS) ClearWrongQuestions(ctx context.Context) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.wrong = []models.WrongQuestionRecord{}
	t.drop(ctx, WrongQuestionsKey)
}

// ClearAnswerHistory drops the whole history and its stored key.
func (t *TrackingS) ClearAnswerHistory(ctx context.Context) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.history = []models.AnswerRecord{}
	t.drop(ctx, AnswerHistoryKey)
}

func (t *TrackingS) Summary() models.AnswerSummary {
	t.mu.RLock()
	defer t.mu.RUnlock()

	summary := models.AnswerSummary{Total: len(t.history)}
	for _, r := range t.history {
		if r.IsCorrect {
			summary.Correct++
		}
	}
	summary.Incorrect = summary.Total - summary.Correct
	summary.Accuracy = Accuracy(summary.Correct, summary.Total)

	return summary
}

func cloneWrong(w models.WrongQuestionRecord) models.WrongQuestionRecord {
	w.Attempts = append([]models.Attempt(nil), w.Attempts...)
	return w
}
