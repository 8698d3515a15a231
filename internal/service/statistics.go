package service

import (
	"fmt"
	"math"
	"sort"
	"sync"
	"time"

	"github.com/Yippine/QuizForge-AI/internal/models"
	"go.uber.org/zap"
)

const (
	DefaultStaleAfter = 5 * time.Minute

	dailyBuckets  = 30
	weeklyBuckets = 12

	unknownDifficulty = "unknown"
	unknownTopic      = "unknown"
)

type HistoryI interface {
	AnswerHistory() []models.AnswerRecord
}

// StatisticsS caches the statistics derived from the answer history. The cache
// is rebuilt when the history length changes or it is older than staleAfter.
type StatisticsS struct {
	history    HistoryI
	staleAfter time.Duration
	now        func() time.Time
	log        *zap.Logger

	mu    sync.Mutex
	cache *models.Statistics
}

func NewStatisticsService(history HistoryI, staleAfter time.Duration, log *zap.Logger) *StatisticsS {
	if staleAfter <= 0 {
		staleAfter = DefaultStaleAfter
	}
	return &StatisticsS{
		history:    history,
		staleAfter: staleAfter,
		now:        time.Now,
		log:        log,
	}
}

func (s *StatisticsS) StatisticsData() models.Statistics {
	history := s.history.AnswerHistory()
	now := s.now()

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.cache != nil &&
		s.cache.UserStats.TotalAnswered == len(history) &&
		now.Sub(s.cache.LastUpdated) <= s.staleAfter {
		return cloneStatistics(*s.cache)
	}

	stats := ComputeStatistics(history, now)
	s.cache = &stats
	s.log.Debug("statistics recomputed", zap.Int("answers", len(history)))

	return cloneStatistics(stats)
}

func cloneStatistics(s models.Statistics) models.Statistics {
	s.TopicPerformance = append([]models.TopicPerformance(nil), s.TopicPerformance...)
	s.DifficultyPerformance = append([]models.DifficultyPerformance(nil), s.DifficultyPerformance...)
	s.TimeSeries.Daily = append([]models.TimeBucket(nil), s.TimeSeries.Daily...)
	s.TimeSeries.Weekly = append([]models.TimeBucket(nil), s.TimeSeries.Weekly...)
	s.TimeSeries.Monthly = append([]models.TimeBucket(nil), s.TimeSeries.Monthly...)
	return s
}

// Invalidate drops the cache so the next read recomputes.
func (s *StatisticsS) Invalidate() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cache = nil
}

// Accuracy is round(correct/total*100), or 0 for an empty total.
func Accuracy(correct, total int) int {
	if total == 0 {
		return 0
	}
	return int(math.Round(float64(correct) / float64(total) * 100))
}

// Streaks returns the trailing run of correct answers and the longest run anywhere.
// history must be in chronological order.
func Streaks(history []models.AnswerRecord) (current, best int) {
	run := 0
	for _, r := range history {
		if r.IsCorrect {
			run++
			if run > best {
				best = run
			}
		} else {
			run = 0
		}
	}
	return run, best
}

// ComputeStatistics is a pure function of the history and the reference time.
// Calendar buckets use now's location.
func ComputeStatistics(history []models.AnswerRecord, now time.Time) models.Statistics {
	sorted := append([]models.AnswerRecord(nil), history...)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Timestamp.Before(sorted[j].Timestamp)
	})

	return models.Statistics{
		UserStats:             userStats(sorted, now.Location()),
		TopicPerformance:      topicPerformance(sorted),
		DifficultyPerformance: difficultyPerformance(sorted),
		TimeSeries: models.TimeSeries{
			Daily:   dailySeries(sorted, now),
			Weekly:  weeklySeries(sorted, now),
			Monthly: monthlySeries(sorted, now.Location()),
		},
		LastUpdated: now,
	}
}

func userStats(history []models.AnswerRecord, loc *time.Location) models.UserStats {
	stats := models.UserStats{TotalAnswered: len(history)}

	days := make(map[string]struct{})
	var timed, spent int64

	for _, r := range history {
		if r.IsCorrect {
			stats.CorrectAnswers++
		}
		if r.TimeSpentMs > 0 {
			timed++
			spent += r.TimeSpentMs
		}
		days[r.Timestamp.In(loc).Format(time.DateOnly)] = struct{}{}
		if r.Timestamp.After(stats.LastStudyTime) {
			stats.LastStudyTime = r.Timestamp
		}
	}

	stats.IncorrectAnswers = stats.TotalAnswered - stats.CorrectAnswers
	stats.Accuracy = Accuracy(stats.CorrectAnswers, stats.TotalAnswered)
	stats.AverageTimeSeconds = averageSeconds(spent, timed)
	stats.CurrentStreak, stats.BestStreak = Streaks(history)
	stats.StudyDays = len(days)

	return stats
}

func averageSeconds(totalMs, count int64) float64 {
	if count == 0 {
		return 0
	}
	return math.Round(float64(totalMs)/float64(count)/100) / 10
}

func topicPerformance(history []models.AnswerRecord) []models.TopicPerformance {
	type acc struct {
		total, correct int
		timed, spent   int64
	}
	byTopic := make(map[string]*acc)

	for _, r := range history {
		topic := r.Topic
		if topic == "" {
			topic = unknownTopic
		}
		a, ok := byTopic[topic]
		if !ok {
			a = &acc{}
			byTopic[topic] = a
		}
		a.total++
		if r.IsCorrect {
			a.correct++
		}
		if r.TimeSpentMs > 0 {
			a.timed++
			a.spent += r.TimeSpentMs
		}
	}

	out := make([]models.TopicPerformance, 0, len(byTopic))
	for topic, a := range byTopic {
		out = append(out, models.TopicPerformance{
			Topic:              topic,
			Total:              a.total,
			Correct:            a.correct,
			Accuracy:           Accuracy(a.correct, a.total),
			AverageTimeSeconds: averageSeconds(a.spent, a.timed),
		})
	}

	sort.Slice(out, func(i, j int) bool {
		if out[i].Total != out[j].Total {
			return out[i].Total > out[j].Total
		}
		return out[i].Topic < out[j].Topic
	})

	return out
}

func difficultyPerformance(history []models.AnswerRecord) []models.DifficultyPerformance {
	order := []string{
		string(models.DifficultySimple),
		string(models.DifficultyMedium),
		string(models.DifficultyHard),
		unknownDifficulty,
	}
	totals := make(map[string]int)
	correct := make(map[string]int)

	for _, r := range history {
		d := r.Difficulty
		if !models.Difficulty(d).Valid() {
			d = unknownDifficulty
		}
		totals[d]++
		if r.IsCorrect {
			correct[d]++
		}
	}

	out := make([]models.DifficultyPerformance, 0, len(order))
	for _, d := range order {
		if totals[d] == 0 {
			continue
		}
		out = append(out, models.DifficultyPerformance{
			Difficulty: d,
			Total:      totals[d],
			Correct:    correct[d],
			Accuracy:   Accuracy(correct[d], totals[d]),
		})
	}

	return out
}

func tally(bucket *models.TimeBucket, r models.AnswerRecord) {
	bucket.Total++
	if r.IsCorrect {
		bucket.Correct++
	} else {
		bucket.Incorrect++
	}
}

func dailySeries(history []models.AnswerRecord, now time.Time) []models.TimeBucket {
	loc := now.Location()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, loc)

	buckets := make([]models.TimeBucket, dailyBuckets)
	index := make(map[string]int, dailyBuckets)
	for i := 0; i < dailyBuckets; i++ {
		label := today.AddDate(0, 0, i-dailyBuckets+1).Format(time.DateOnly)
		buckets[i].Label = label
		index[label] = i
	}

	for _, r := range history {
		if i, ok := index[r.Timestamp.In(loc).Format(time.DateOnly)]; ok {
			tally(&buckets[i], r)
		}
	}

	return buckets
}

func weekLabel(t time.Time) string {
	year, week := t.ISOWeek()
	return fmt.Sprintf("%d-W%02d", year, week)
}

func weeklySeries(history []models.AnswerRecord, now time.Time) []models.TimeBucket {
	loc := now.Location()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, loc)

	buckets := make([]models.TimeBucket, weeklyBuckets)
	index := make(map[string]int, weeklyBuckets)
	for i := 0; i < weeklyBuckets; i++ {
		label := weekLabel(today.AddDate(0, 0, 7*(i-weeklyBuckets+1)))
		buckets[i].Label = label
		index[label] = i
	}

	for _, r := range history {
		if i, ok := index[weekLabel(r.Timestamp.In(loc))]; ok {
			tally(&buckets[i], r)
		}
	}

	return buckets
}

func monthlySeries(history []models.AnswerRecord, loc *time.Location) []models.TimeBucket {
	byMonth := make(map[string]*models.TimeBucket)
	labels := make([]string, 0)

	for _, r := range history {
		label := r.Timestamp.In(loc).Format("2006-01")
		b, ok := byMonth[label]
		if !ok {
			b = &models.TimeBucket{Label: label}
			byMonth[label] = b
			labels = append(labels, label)
		}
		tally(b, r)
	}

	sort.Strings(labels)

	out := make([]models.TimeBucket, 0, len(labels))
	for _, label := range labels {
		out = append(out, *byMonth[label])
	}
	return out
}
