// Package console is the terminal front-end: it runs quiz sessions and prints
// statistics, the wrong-question ledger and bank reports.
package console

import (
	"context"
	"io"

	"github.com/Yippine/QuizForge-AI/internal/config"
	"github.com/Yippine/QuizForge-AI/internal/models"
	"go.uber.org/zap"
)

type ReportSI interface {
	StatisticsData() models.Statistics
	Summary() models.AnswerSummary
	WrongQuestions() []models.WrongQuestionRecord
	QuestionByID(id string) (models.Question, bool)
}

type ServiceI interface {
	QuizSI
	ReportSI
}

type Console struct {
	out     io.Writer
	service ReportSI
	quiz    *QuizT
	log     *zap.Logger
}

func NewConsole(out io.Writer, service ServiceI, cfg config.QuizConfig, log *zap.Logger) *Console {
	return &Console{
		out:     out,
		service: service,
		quiz:    NewQuizT(service, cfg.TimerInterval, cfg.WarningThreshold, log),
		log:     log,
	}
}

func (c *Console) Practice(ctx context.Context, in io.Reader, opts QuizOptions) (models.QuizResults, error) {
	return c.quiz.Run(ctx, in, c.out, opts)
}

func (c *Console) ShowStatistics() {
	sendMessage(c.out, c.log, formatStatistics(c.service.StatisticsData()))
}

func (c *Console) ShowWrongQuestions() {
	sendMessage(c.out, c.log, formatWrongQuestions(c.service.WrongQuestions(), c.service.QuestionByID))
}

func (c *Console) ShowReport(report models.ValidationReport) {
	sendMessage(c.out, c.log, formatReport(report))
}

func (c *Console) ShowBank(stats models.BankStats, perSource map[string]int) {
	sendMessage(c.out, c.log, formatBank(stats, perSource))
}

func sendMessage(out io.Writer, log *zap.Logger, text string) {
	if _, err := io.WriteString(out, text); err != nil {
		log.Warn("failed to write output", zap.Error(err))
	}
}
