package console

import (
	"bytes"
	"context"
	"io"
	"strings"
	"testing"
	"time"

	mock_console "github.com/Yippine/QuizForge-AI/internal/console/mock"
	"github.com/Yippine/QuizForge-AI/internal/models"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newQuizTMock(t *testing.T, ctrl *gomock.Controller, setupMock func(*mock_console.MockServiceI)) *QuizT {
	mockService := mock_console.NewMockServiceI(ctrl)
	if setupMock != nil {
		setupMock(mockService)
	}

	return NewQuizT(mockService, time.Millisecond, time.Minute, zap.NewNop())
}

func testQuestion(id, answer string) models.Question {
	return models.Question{
		QuestionID:  id,
		Subject:     models.SubjectL21,
		Topic:       "L21101_自然語言處理",
		Difficulty:  models.DifficultySimple,
		Question:    "題目 " + id,
		Options:     models.Options{A: "選項A", B: "選項B", C: "選項C", D: "選項D"},
		Answer:      answer,
		Explanation: "解析 " + id,
		Keywords:    []string{},
	}
}

func TestQuizT_Run(t *testing.T) {
	t.Parallel()

	q1 := testQuestion("L21101_001", "A")
	q2 := testQuestion("L21101_002", "C")

	tests := []struct {
		name       string
		input      string
		opts       QuizOptions
		f          func(*testing.T, *mock_console.MockServiceI)
		wantErr    error
		assertFunc func(*testing.T, models.QuizResults, string)
	}{
		{
			name:  "practice answers every question",
			input: "a\nX\nB\n",
			opts:  QuizOptions{Mode: models.ModePractice, Count: 2},
			f: func(t *testing.T, ms *mock_console.MockServiceI) {
				gomock.InOrder(
					ms.EXPECT().RandomQuestions(2).Return([]models.Question{q1, q2}),
					ms.EXPECT().SetShuffledOverride([]models.Question{q1, q2}),
					ms.EXPECT().SaveAnswer(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, r models.AnswerRecord) bool {
						assert.Equal(t, "L21101_001", r.QuestionID)
						assert.True(t, r.IsCorrect)
						assert.Equal(t, "simple", r.Difficulty)
						return true
					}),
					ms.EXPECT().SaveAnswer(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, r models.AnswerRecord) bool {
						assert.Equal(t, "B", r.UserAnswer)
						assert.False(t, r.IsCorrect)
						return true
					}),
					ms.EXPECT().SaveResults(gomock.Any(), gomock.Any()).Do(func(r models.QuizResults, cfg models.QuizConfig) {
						assert.Equal(t, []string{"L21101_001", "L21101_002"}, cfg.QuestionIDs)
						assert.NotEmpty(t, cfg.SessionID)
						assert.Equal(t, 50, r.Accuracy)
					}),
					ms.EXPECT().ClearShuffledOverride(),
				)
			},
			assertFunc: func(t *testing.T, r models.QuizResults, out string) {
				assert.Equal(t, 1, r.CorrectCount)
				assert.Equal(t, 1, r.IncorrectCount)
				assert.Contains(t, out, "❓ 第 1/2 題")
				assert.Contains(t, out, "✅ 答對了！")
				assert.Contains(t, out, "請輸入 A、B、C 或 D")
				assert.Contains(t, out, "❌ 答錯了，正確答案是 C. 選項C")
				assert.Contains(t, out, "💡 解析 L21101_002")
				assert.Contains(t, out, "答對率: 50%")
			},
		},
		{
			name:  "exam mode hides feedback",
			input: "A\nC\n",
			opts:  QuizOptions{Mode: models.ModeExam, Count: 2, TimeLimit: time.Hour},
			f: func(t *testing.T, ms *mock_console.MockServiceI) {
				ms.EXPECT().RandomQuestions(2).Return([]models.Question{q1, q2})
				ms.EXPECT().SetShuffledOverride(gomock.Any())
				ms.EXPECT().SaveAnswer(gomock.Any(), gomock.Any()).Return(true).Times(2)
				ms.EXPECT().SaveResults(gomock.Any(), gomock.Any())
				ms.EXPECT().ClearShuffledOverride()
			},
			assertFunc: func(t *testing.T, r models.QuizResults, out string) {
				assert.Equal(t, 100, r.Accuracy)
				assert.False(t, r.TimedOut)
				assert.NotContains(t, out, "答對了")
				assert.Contains(t, out, "⏱️ 60:00")
				assert.Contains(t, out, "🎉 全對！")
			},
		},
		{
			name:  "quit early",
			input: "q\n",
			opts:  QuizOptions{Mode: models.ModePractice, Count: 2},
			f: func(t *testing.T, ms *mock_console.MockServiceI) {
				ms.EXPECT().RandomQuestions(2).Return([]models.Question{q1, q2})
				ms.EXPECT().SetShuffledOverride(gomock.Any())
				ms.EXPECT().SaveResults(gomock.Any(), gomock.Any())
				ms.EXPECT().ClearShuffledOverride()
			},
			assertFunc: func(t *testing.T, r models.QuizResults, out string) {
				assert.Equal(t, 2, r.TotalQuestions)
				assert.Equal(t, 0, r.CorrectCount)
				assert.Len(t, r.WrongQuestions, 2)
				assert.Contains(t, out, "未作答")
			},
		},
		{
			name:  "input ends",
			input: "D\n",
			opts:  QuizOptions{Mode: models.ModePractice, Count: 2},
			f: func(t *testing.T, ms *mock_console.MockServiceI) {
				ms.EXPECT().RandomQuestions(2).Return([]models.Question{q1, q2})
				ms.EXPECT().SetShuffledOverride(gomock.Any())
				ms.EXPECT().SaveAnswer(gomock.Any(), gomock.Any()).Return(true)
				ms.EXPECT().SaveResults(gomock.Any(), gomock.Any())
				ms.EXPECT().ClearShuffledOverride()
			},
			assertFunc: func(t *testing.T, r models.QuizResults, out string) {
				assert.Equal(t, "D", r.QuestionResults[0].UserAnswer)
				assert.Equal(t, "", r.QuestionResults[1].UserAnswer)
			},
		},
		{
			name:  "no questions",
			input: "",
			opts:  QuizOptions{Count: 5},
			f: func(t *testing.T, ms *mock_console.MockServiceI) {
				ms.EXPECT().RandomQuestions(5).Return(nil)
			},
			wantErr: ErrEmptyQuiz,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			quiz := newQuizTMock(t, ctrl, func(ms *mock_console.MockServiceI) { tt.f(t, ms) })

			var out bytes.Buffer
			results, err := quiz.Run(context.Background(), strings.NewReader(tt.input), &out, tt.opts)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}

			require.NoError(t, err)
			tt.assertFunc(t, results, out.String())
		})
	}
}

func TestQuizT_Run_TimeUp(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	q1 := testQuestion("L21101_001", "A")

	quiz := newQuizTMock(t, ctrl, func(ms *mock_console.MockServiceI) {
		ms.EXPECT().RandomQuestions(1).Return([]models.Question{q1})
		ms.EXPECT().SetShuffledOverride(gomock.Any())
		ms.EXPECT().SaveResults(gomock.Any(), gomock.Any()).Do(func(r models.QuizResults, _ models.QuizConfig) {
			assert.True(t, r.TimedOut)
		})
		ms.EXPECT().ClearShuffledOverride()
	})

	in, w := io.Pipe()
	defer w.Close()

	var out bytes.Buffer
	results, err := quiz.Run(context.Background(), in, &out, QuizOptions{Mode: models.ModeExam, Count: 1, TimeLimit: 20 * time.Millisecond})

	require.NoError(t, err)
	assert.True(t, results.TimedOut)
	assert.Equal(t, 0, results.CorrectCount)
	assert.Contains(t, out.String(), "⏰ 時間到")
}

func TestQuizT_Run_Cancelled(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	q1 := testQuestion("L21101_001", "A")

	quiz := newQuizTMock(t, ctrl, func(ms *mock_console.MockServiceI) {
		ms.EXPECT().RandomQuestions(1).Return([]models.Question{q1})
		ms.EXPECT().SetShuffledOverride(gomock.Any())
		ms.EXPECT().ClearShuffledOverride()
	})

	in, w := io.Pipe()
	defer w.Close()

	ctx, cancel := context.WithCancel(context.Background())
	go func() {
		time.Sleep(10 * time.Millisecond)
		cancel()
	}()

	_, err := quiz.Run(ctx, in, io.Discard, QuizOptions{Mode: models.ModeExam, Count: 1, TimeLimit: time.Hour})
	require.ErrorIs(t, err, context.Canceled)
}

func TestReadLines_ClosingInputReleasesReader(t *testing.T) {
	t.Parallel()

	r, w := io.Pipe()
	ctx, cancel := context.WithCancel(context.Background())
	lines := readLines(ctx, r)

	go func() {
		_, _ = w.Write([]byte("A\n"))
	}()
	assert.Equal(t, "A", <-lines)

	cancel()
	require.NoError(t, w.Close())

	select {
	case _, ok := <-lines:
		assert.False(t, ok)
	case <-time.After(time.Second):
		t.Fatal("reader goroutine did not exit after its input was closed")
	}
}
