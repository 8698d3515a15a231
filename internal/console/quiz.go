package console

import (
	"bufio"
	"context"
	"errors"
	"io"
	"strings"
	"time"

	"github.com/Yippine/QuizForge-AI/internal/models"
	"github.com/Yippine/QuizForge-AI/internal/service"
	"github.com/Yippine/QuizForge-AI/internal/timer"
	"go.uber.org/zap"
)

var ErrEmptyQuiz = errors.New("no questions match the current filters")

type QuizSI interface {
	RandomQuestions(count int) []models.Question
	SetShuffledOverride(questions []models.Question)
	ClearShuffledOverride()
	SaveAnswer(ctx context.Context, record models.AnswerRecord) bool
	SaveResults(results models.QuizResults, cfg models.QuizConfig)
}

type QuizOptions struct {
	Mode      models.QuizMode
	TopicID   string
	Count     int
	TimeLimit time.Duration
}

type QuizT struct {
	service  QuizSI
	interval time.Duration
	warnAt   time.Duration
	log      *zap.Logger
}

func NewQuizT(service QuizSI, interval, warnAt time.Duration, log *zap.Logger) *QuizT {
	return &QuizT{
		service:  service,
		interval: interval,
		warnAt:   warnAt,
		log:      log,
	}
}

// Run asks a random sample of the current questions one by one. Every submitted
// answer is recorded. The session ends when all questions are answered, the
// player enters Q, input ends or the time limit runs out; the results are then
// stored. Cancelling ctx abandons the session without storing results.
func (t *QuizT) Run(ctx context.Context, in io.Reader, out io.Writer, opts QuizOptions) (models.QuizResults, error) {
	questions := t.service.RandomQuestions(opts.Count)
	if len(questions) == 0 {
		return models.QuizResults{}, ErrEmptyQuiz
	}

	t.service.SetShuffledOverride(questions)
	defer t.service.ClearShuffledOverride()

	cfg := service.NewQuizConfig(opts.Mode, opts.TopicID, questions, opts.TimeLimit)

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	lines := readLines(ctx, in)

	stopwatch := timer.NewStopwatch()
	stopwatch.Start()
	defer stopwatch.Stop()

	countdown := timer.NewCountdown(t.interval, t.warnAt, t.log)
	timeUp := make(chan struct{})
	if opts.TimeLimit > 0 {
		countdown.Start(ctx, opts.TimeLimit, func() { close(timeUp) })
	}
	defer countdown.Stop()

	answers := make(map[string]string, len(questions))
	timedOut := false

loop:
	for i, q := range questions {
		sendMessage(out, t.log, formatQuestion(i, len(questions), q, countdown.Formatted()))
		shown := time.Now()

		for {
			var line string
			var ok bool

			select {
			case <-ctx.Done():
				return models.QuizResults{}, ctx.Err()
			case <-timeUp:
				timedOut = true
				break loop
			case line, ok = <-lines:
				if !ok {
					break loop
				}
			}

			choice := strings.ToUpper(strings.TrimSpace(line))
			if choice == "Q" {
				break loop
			}
			if !isLabel(choice) {
				sendMessage(out, t.log, "請輸入 A、B、C 或 D: ")
				continue
			}

			answers[q.QuestionID] = choice
			isCorrect := choice == q.Answer
			t.service.SaveAnswer(ctx, models.AnswerRecord{
				QuestionID:    q.QuestionID,
				UserAnswer:    choice,
				CorrectAnswer: q.Answer,
				IsCorrect:     isCorrect,
				Timestamp:     time.Now(),
				Topic:         q.Topic,
				Difficulty:    string(q.Difficulty),
				TimeSpentMs:   time.Since(shown).Milliseconds(),
			})

			if opts.Mode != models.ModeExam {
				sendMessage(out, t.log, formatFeedback(q, isCorrect))
			}
			break
		}
	}

	countdown.Stop()
	elapsed := stopwatch.Stop()

	results := service.BuildResults(questions, answers, elapsed, timedOut)
	t.service.SaveResults(results, cfg)
	sendMessage(out, t.log, formatResults(results))

	return results, nil
}

func isLabel(s string) bool {
	for _, label := range models.OptionLabels {
		if s == label {
			return true
		}
	}
	return false
}

// readLines feeds in line by line. The goroutine exits at EOF, or at the first
// line read after ctx is done: a blocked Scan is not interrupted, so in stays
// owned by the caller and closing it is what releases the reader.
func readLines(ctx context.Context, in io.Reader) <-chan string {
	lines := make(chan string)

	go func() {
		defer close(lines)
		scanner := bufio.NewScanner(in)
		for scanner.Scan() {
			select {
			case lines <- scanner.Text():
			case <-ctx.Done():
				return
			}
		}
	}()

	return lines
}
