package service

import (
	"testing"
	"time"

	"github.com/Yippine/QuizForge-AI/internal/models"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestBuildResults(t *testing.T) {
	t.Parallel()

	q1 := newQuestion("L21101_001", 1, models.SubjectL21, "L21101", models.DifficultySimple)
	q2 := newQuestion("L21101_002", 2, models.SubjectL21, "L21101", models.DifficultyMedium)
	q3 := newQuestion("L21101_003", 3, models.SubjectL21, "L21101", models.DifficultyHard)

	results := BuildResults(
		[]models.Question{q1, q2, q3},
		map[string]string{"L21101_001": "A", "L21101_002": "D"},
		3*time.Minute+25*time.Second,
		false,
	)

	assert.Equal(t, 3, results.TotalQuestions)
	assert.Equal(t, 1, results.CorrectCount)
	assert.Equal(t, 2, results.IncorrectCount)
	assert.Equal(t, 33, results.Accuracy)
	assert.Equal(t, "3分25秒", results.FormattedTime)
	require.Len(t, results.QuestionResults, 3)
	assert.True(t, results.QuestionResults[0].IsCorrect)
	require.Len(t, results.WrongQuestions, 2)
	assert.Equal(t, "D", results.WrongQuestions[0].UserAnswer)
	assert.Equal(t, "", results.WrongQuestions[1].UserAnswer)
	assert.Equal(t, "A", results.WrongQuestions[1].CorrectAnswer)

	empty := BuildResults(nil, nil, 0, true)
	assert.Equal(t, 0, empty.Accuracy)
	assert.Equal(t, "0秒", empty.FormattedTime)
	assert.True(t, empty.TimedOut)
}

func TestResultsS(t *testing.T) {
	t.Parallel()

	r := NewResultsService(zap.NewNop())
	at := time.Date(2026, 3, 1, 8, 0, 0, 0, time.UTC)
	r.now = func() time.Time { return at }

	assert.False(t, r.HasResults())
	assert.False(t, r.IsPerfectScore())

	q := newQuestion("L21101_001", 1, models.SubjectL21, "L21101", models.DifficultySimple)
	cfg := NewQuizConfig(models.ModeExam, "L21101", []models.Question{q}, 10*time.Minute)
	_, err := uuid.Parse(cfg.SessionID)
	require.NoError(t, err)
	assert.Equal(t, []string{"L21101_001"}, cfg.QuestionIDs)
	assert.Equal(t, 1, cfg.QuestionCount)

	r.SaveResults(BuildResults([]models.Question{q}, map[string]string{"L21101_001": "A"}, time.Second, false), cfg)

	assert.True(t, r.HasResults())
	assert.True(t, r.IsPerfectScore())
	assert.Equal(t, 0, r.WrongResultsCount())

	snap := r.Results()
	assert.Equal(t, at, snap.Timestamp)
	assert.Equal(t, cfg, snap.Config)

	r.ClearResults()
	assert.False(t, r.HasResults())
	assert.Equal(t, models.QuizSnapshot{}, r.Results())
}
