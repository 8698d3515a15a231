package service

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"sync"

	"github.com/Yippine/QuizForge-AI/internal/client"
	"github.com/Yippine/QuizForge-AI/internal/models"
	"go.uber.org/zap"
)

var ErrNoQuestions = errors.New("no questions loaded from any source")

type SourceI interface {
	Name() string
	Fetch(ctx context.Context) ([]byte, error)
}

// QuestionBankS loads and merges the configured question banks. Sources are
// kept in precedence order. Concurrent LoadAllQuestions calls are not guarded.
type QuestionBankS struct {
	sources []SourceI
	log     *zap.Logger

	mu        sync.RWMutex
	questions []models.Question
	loaded    map[string]int
	rejected  []*ShapeError
}

func NewQuestionBankService(sources []SourceI, log *zap.Logger) *QuestionBankS {
	return &QuestionBankS{
		sources: sources,
		log:     log,
		loaded:  make(map[string]int),
	}
}

// LoadAllQuestions fetches every source concurrently and merges the results once
// all of them have finished. A failing source contributes nothing; records that
// fit neither shape are kept aside and reported by Rejected.
func (b *QuestionBankS) LoadAllQuestions(ctx context.Context) ([]models.Question, error) {
	results := make([][]models.Question, len(b.sources))
	skipped := make([][]*ShapeError, len(b.sources))

	var wg sync.WaitGroup
	for i, src := range b.sources {
		wg.Add(1)
		go func(i int, src SourceI) {
			defer wg.Done()

			questions, rejected, err := b.loadSource(ctx, src)
			if err != nil {
				b.log.Warn("failed to load question source", zap.String("source", src.Name()), zap.Error(err))
				return
			}
			results[i] = questions
			skipped[i] = rejected
		}(i, src)
	}
	wg.Wait()

	loaded := make(map[string]int, len(b.sources))
	var rejected []*ShapeError
	for i, src := range b.sources {
		loaded[src.Name()] = len(results[i])
		rejected = append(rejected, skipped[i]...)
	}

	merged := MergeQuestions(results)

	b.mu.Lock()
	b.questions = merged
	b.loaded = loaded
	b.rejected = rejected
	b.mu.Unlock()

	if len(merged) == 0 {
		b.log.Error("question bank is empty", zap.Int("sources", len(b.sources)))
		return nil, ErrNoQuestions
	}

	b.log.Info("question bank loaded", zap.Int("total", len(merged)), zap.Any("per_source", loaded))

	return merged, nil
}

func (b *QuestionBankS) loadSource(ctx context.Context, src SourceI) ([]models.Question, []*ShapeError, error) {
	body, err := src.Fetch(ctx)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to fetch: %w", err)
	}

	raws, err := client.DecodeDocument(src.Name(), body)
	if err != nil {
		return nil, nil, err
	}

	questions := make([]models.Question, 0, len(raws))
	var rejected []*ShapeError
	for i, raw := range raws {
		rq, err := DecodeRaw(i, raw)
		if err != nil {
			var shapeErr *ShapeError
			if !errors.As(err, &shapeErr) {
				shapeErr = &ShapeError{Index: i, Reason: err.Error()}
			}
			shapeErr.Source = src.Name()
			b.log.Warn("skipping malformed question record", zap.String("source", src.Name()), zap.Error(shapeErr))
			rejected = append(rejected, shapeErr)
			continue
		}
		questions = append(questions, Normalize(rq))
	}

	return questions, rejected, nil
}

// Questions returns the last merged bank.
func (b *QuestionBankS) Questions() []models.Question {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return append([]models.Question(nil), b.questions...)
}

// Rejected returns the records of the last load that fit neither shape, in
// source order.
func (b *QuestionBankS) Rejected() []*ShapeError {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return append([]*ShapeError(nil), b.rejected...)
}

// LoadedPerSource reports how many records each source contributed before dedup.
func (b *QuestionBankS) LoadedPerSource() map[string]int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	out := make(map[string]int, len(b.loaded))
	for k, v := range b.loaded {
		out[k] = v
	}
	return out
}

// MergeQuestions flattens the lists in order, keeps the first question seen for
// each id and sorts by sequence when both sides have one, else by id.
func MergeQuestions(sources [][]models.Question) []models.Question {
	seen := make(map[string]struct{})
	merged := make([]models.Question, 0)

	for _, list := range sources {
		for _, q := range list {
			if _, ok := seen[q.QuestionID]; ok {
				continue
			}
			seen[q.QuestionID] = struct{}{}
			merged = append(merged, q)
		}
	}

	sort.SliceStable(merged, func(i, j int) bool {
		a, b := merged[i], merged[j]
		if a.Sequence != 0 && b.Sequence != 0 {
			return a.Sequence < b.Sequence
		}
		return a.QuestionID < b.QuestionID
	})

	return merged
}

func BankStats(questions []models.Question) models.BankStats {
	stats := models.BankStats{
		Total:        len(questions),
		BySource:     make(map[string]int),
		BySubject:    make(map[string]int),
		ByTopic:      make(map[string]int),
		ByDifficulty: make(map[string]int),
	}

	for _, q := range questions {
		stats.BySource[q.Source]++
		stats.BySubject[string(q.Subject)]++
		stats.ByTopic[q.Topic]++
		stats.ByDifficulty[string(q.Difficulty)]++
	}

	return stats
}
