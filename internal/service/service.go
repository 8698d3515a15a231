package service

import (
	"context"
	"math/rand"
	"time"

	"github.com/Yippine/QuizForge-AI/internal/models"
	"go.uber.org/zap"
)

type Service struct {
	*QuestionBankS
	*FilterS
	*TrackingS
	*StatisticsS
	*ResultsS
}

func InitServices(ctx context.Context, sources []SourceI, storage StorageI, staleAfter time.Duration, log *zap.Logger) *Service {
	tracking := NewTrackingService(ctx, storage, log)

	return &Service{
		QuestionBankS: NewQuestionBankService(sources, log),
		FilterS:       NewFilterService(rand.New(rand.NewSource(time.Now().UnixNano()))),
		TrackingS:     tracking,
		StatisticsS:   NewStatisticsService(tracking, staleAfter, log),
		ResultsS:      NewResultsService(log),
	}
}

// LoadBank loads every source, hands the merged bank to the filter store and
// validates it. The report is advisory.
func (s *Service) LoadBank(ctx context.Context) ([]models.Question, models.ValidationReport, error) {
	questions, err := s.LoadAllQuestions(ctx)
	if err != nil {
		return nil, models.ValidationReport{}, err
	}

	s.SetQuestions(questions)

	report := AddRejected(ValidateQuestionIntegrity(questions), s.Rejected())
	if !report.IsValid {
		s.QuestionBankS.log.Warn("question bank has integrity errors",
			zap.Int("failed", report.Stats.Failed),
			zap.Int("warnings", len(report.Warnings)),
		)
	}

	return questions, report, nil
}
