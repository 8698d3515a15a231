package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/Yippine/QuizForge-AI/internal/models"
	mock_service "github.com/Yippine/QuizForge-AI/internal/service/mock"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newQuestion(id string, seq int, subject models.Subject, topic string, d models.Difficulty) models.Question {
	return models.Question{
		QuestionID: id,
		Sequence:   seq,
		Subject:    subject,
		Topic:      topic,
		Difficulty: d,
		Question:   "question " + id,
		Options:    models.Options{A: "a", B: "b", C: "c", D: "d"},
		Answer:     "A",
		Keywords:   []string{},
	}
}

func ids(questions []models.Question) []string {
	out := make([]string, 0, len(questions))
	for _, q := range questions {
		out = append(out, q.QuestionID)
	}
	return out
}

func newSourceMock(ctrl *gomock.Controller, name string, body string, err error, delay time.Duration) *mock_service.MockSourceI {
	src := mock_service.NewMockSourceI(ctrl)
	src.EXPECT().Name().Return(name).AnyTimes()
	src.EXPECT().Fetch(gomock.Any()).DoAndReturn(func(context.Context) ([]byte, error) {
		time.Sleep(delay)
		if err != nil {
			return nil, err
		}
		return []byte(body), nil
	})
	return src
}

func TestMergeQuestions(t *testing.T) {
	t.Parallel()

	a := newQuestion("L21101_002", 0, models.SubjectL21, "L21101", models.DifficultySimple)
	a.Question = "from first"
	b := newQuestion("L21101_002", 0, models.SubjectL21, "L21101", models.DifficultySimple)
	b.Question = "from second"
	c := newQuestion("L21101_001", 0, models.SubjectL21, "L21101", models.DifficultyHard)

	merged := MergeQuestions([][]models.Question{{a}, {b, c}})
	require.Equal(t, []string{"L21101_001", "L21101_002"}, ids(merged))
	assert.Equal(t, "from first", merged[1].Question)

	again := MergeQuestions([][]models.Question{{a}, {b, c}})
	assert.Equal(t, merged, again)

	assert.Empty(t, MergeQuestions(nil))
}

func TestMergeQuestions_SequenceOrder(t *testing.T) {
	t.Parallel()

	merged := MergeQuestions([][]models.Question{
		{newQuestion("Q1", 2, models.SubjectL21, "", "")},
		{newQuestion("Q1", 1, models.SubjectL21, "", ""), newQuestion("Q2", 3, models.SubjectL21, "", "")},
	})

	require.Equal(t, []string{"Q1", "Q2"}, ids(merged))
	assert.Equal(t, 2, merged[0].Sequence)
}

func TestQuestionBankS_LoadAllQuestions(t *testing.T) {
	t.Parallel()

	first := `{"questions":[{"question_id":"Q1","sequence":2}]}`
	second := `{"questions":[{"question_id":"Q1","sequence":1},{"question_id":"Q2","sequence":3}]}`

	tests := []struct {
		name    string
		sources func(*gomock.Controller) []SourceI
		want     []string
		wantSeq  []int
		rejected []string
		wantErr  error
	}{
		{
			name: "first source wins even when it finishes last",
			sources: func(ctrl *gomock.Controller) []SourceI {
				return []SourceI{
					newSourceMock(ctrl, "a", first, nil, 20*time.Millisecond),
					newSourceMock(ctrl, "b", second, nil, 0),
				}
			},
			want:     []string{"Q1", "Q2"},
			wantSeq:  []int{2, 3},
		},
		{
			name: "failing source degrades to empty",
			sources: func(ctrl *gomock.Controller) []SourceI {
				return []SourceI{
					newSourceMock(ctrl, "a", "", errors.New("connection refused"), 0),
					newSourceMock(ctrl, "b", second, nil, 0),
					newSourceMock(ctrl, "c", `{"items":[]}`, nil, 0),
				}
			},
			want:     []string{"Q1", "Q2"},
			wantSeq:  []int{1, 3},
		},
		{
			name: "malformed record is skipped",
			sources: func(ctrl *gomock.Controller) []SourceI {
				return []SourceI{
					newSourceMock(ctrl, "a", `{"questions":["oops",{"question_id":"Q9"}]}`, nil, 0),
				}
			},
			want:     []string{"Q9"},
			wantSeq:  []int{0},
			rejected: []string{"a question #1: record is not an object"},
		},
		{
			name: "nothing loaded",
			sources: func(ctrl *gomock.Controller) []SourceI {
				return []SourceI{
					newSourceMock(ctrl, "a", "", errors.New("boom"), 0),
					newSourceMock(ctrl, "b", `not json`, nil, 0),
				}
			},
			wantErr:  ErrNoQuestions,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			bank := NewQuestionBankService(tt.sources(ctrl), zap.NewNop())

			got, err := bank.LoadAllQuestions(context.Background())
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				assert.Empty(t, bank.Questions())
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, ids(got))
			for i, q := range got {
				assert.Equal(t, tt.wantSeq[i], q.Sequence)
			}
			assert.Equal(t, got, bank.Questions())

			var rejected []string
			for _, r := range bank.Rejected() {
				rejected = append(rejected, r.Error())
			}
			assert.Equal(t, tt.rejected, rejected)
		})
	}
}

func TestQuestionBankS_LoadedPerSource(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	bank := NewQuestionBankService([]SourceI{
		newSourceMock(ctrl, "L21-mock-exam", `{"questions":[{"question_id":"L21101_001"},{"question_id":"L21101_002"}]}`, nil, 0),
		newSourceMock(ctrl, "official-questions", "", errors.New("404"), 0),
	}, zap.NewNop())

	_, err := bank.LoadAllQuestions(context.Background())
	require.NoError(t, err)
	assert.Equal(t, map[string]int{"L21-mock-exam": 2, "official-questions": 0}, bank.LoadedPerSource())
}

func TestBankStats(t *testing.T) {
	t.Parallel()

	off := newQuestion("OFF_L21_CH3_001", 0, models.SubjectL21, "L21101_NLP", models.DifficultySimple)
	off.Source = "講義練習題-科目1-第3章-第1題"

	stats := BankStats([]models.Question{
		newQuestion("L21101_001", 1, models.SubjectL21, "L21101_NLP", models.DifficultySimple),
		newQuestion("L23201_001", 2, models.SubjectL23, "L23201_ML", models.DifficultyHard),
		off,
	})

	assert.Equal(t, 3, stats.Total)
	assert.Equal(t, map[string]int{"L21": 2, "L23": 1}, stats.BySubject)
	assert.Equal(t, map[string]int{"L21101_NLP": 2, "L23201_ML": 1}, stats.ByTopic)
	assert.Equal(t, map[string]int{"simple": 2, "hard": 1}, stats.ByDifficulty)
	assert.Equal(t, map[string]int{"": 2, "講義練習題-科目1-第3章-第1題": 1}, stats.BySource)
}
