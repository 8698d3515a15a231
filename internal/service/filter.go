package service

import (
	"math/rand"
	"strings"
	"sync"
	"time"

	"github.com/Yippine/QuizForge-AI/internal/catalog"
	"github.com/Yippine/QuizForge-AI/internal/models"
)

// Selection is the current filter state. Empty fields are inactive.
type Selection struct {
	Topic      string
	Difficulty models.Difficulty
	// Difficulties takes precedence over Difficulty when non-empty.
	Difficulties []models.Difficulty
	Subject      models.Subject
	Source       models.SourceFilter
}

func (s Selection) Active() bool {
	return s.Topic != "" ||
		s.Difficulty != "" ||
		len(s.Difficulties) > 0 ||
		s.Subject != "" ||
		(s.Source != "" && s.Source != models.SourceAll)
}

// ApplyFilters keeps the questions matching every active predicate of sel.
// Subject and source are independent: a subject filter does not drop official questions.
func ApplyFilters(questions []models.Question, sel Selection) []models.Question {
	out := make([]models.Question, 0, len(questions))
	for _, q := range questions {
		if matches(q, sel) {
			out = append(out, q)
		}
	}
	return out
}

func matches(q models.Question, sel Selection) bool {
	if sel.Subject != "" && q.Subject != sel.Subject {
		return false
	}
	if sel.Topic != "" && !matchTopic(q, sel.Topic) {
		return false
	}
	if !matchDifficulty(q, sel) {
		return false
	}
	switch sel.Source {
	case models.SourceOfficial:
		return catalog.IsOfficial(q.QuestionID)
	case models.SourceAIGenerated:
		return !catalog.IsOfficial(q.QuestionID)
	}
	return true
}

func matchTopic(q models.Question, topic string) bool {
	if topic == catalog.OfficialTopicID {
		return catalog.IsOfficial(q.QuestionID)
	}

	if sub, ok := catalog.OfficialSubTopic(topic); ok {
		return sub.SourcePattern != "" && strings.Contains(q.Source, sub.SourcePattern)
	}

	target := catalog.ExtractTopicID(topic)
	if target == "" {
		return q.Topic == topic
	}
	return catalog.QuestionTopicID(q) == target
}

func matchDifficulty(q models.Question, sel Selection) bool {
	if len(sel.Difficulties) > 0 {
		for _, d := range sel.Difficulties {
			if q.Difficulty == d {
				return true
			}
		}
		return false
	}
	if sel.Difficulty != "" {
		return q.Difficulty == sel.Difficulty
	}
	return true
}

// FilterS owns the loaded questions, the filter selection and the shuffled
// override pinned by a running quiz. One instance lives for the whole session.
type FilterS struct {
	mu        sync.Mutex
	questions []models.Question
	filtered  []models.Question
	selection Selection
	override  []models.Question
	rnd       *rand.Rand
}

func NewFilterService(rnd *rand.Rand) *FilterS {
	if rnd == nil {
		rnd = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &FilterS{
		selection: Selection{Source: models.SourceAll},
		rnd:       rnd,
	}
}

// SetQuestions replaces the whole bank and recomputes the filtered view.
func (f *FilterS) SetQuestions(questions []models.Question) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.questions = append([]models.Question(nil), questions...)
	f.recompute()
}

func (f *FilterS) SetTopic(topic string) {
	f.update(func(s *Selection) { s.Topic = topic })
}

func (f *FilterS) SetDifficulty(d models.Difficulty) {
	f.update(func(s *Selection) { s.Difficulty = d })
}

func (f *FilterS) SetDifficulties(ds []models.Difficulty) {
	f.update(func(s *Selection) { s.Difficulties = append([]models.Difficulty(nil), ds...) })
}

func (f *FilterS) SetSubject(subject models.Subject) {
	f.update(func(s *Selection) { s.Subject = subject })
}

func (f *FilterS) SetSource(source models.SourceFilter) {
	f.update(func(s *Selection) {
		if source == "" {
			source = models.SourceAll
		}
		s.Source = source
	})
}

// Reset clears every filter and the shuffled override.
func (f *FilterS) Reset() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.selection = Selection{Source: models.SourceAll}
	f.override = nil
	f.recompute()
}

func (f *FilterS) update(apply func(*Selection)) {
	f.mu.Lock()
	defer f.mu.Unlock()
	apply(&f.selection)
	f.recompute()
}

// recompute must be called with mu held. The override is left untouched.
func (f *FilterS) recompute() {
	if !f.selection.Active() {
		f.filtered = nil
		return
	}
	f.filtered = ApplyFilters(f.questions, f.selection)
}

// SetShuffledOverride pins a working set that CurrentQuestions returns until it is
// cleared, regardless of later filter changes.
func (f *FilterS) SetShuffledOverride(questions []models.Question) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.override = append([]models.Question{}, questions...)
}

func (f *FilterS) ClearShuffledOverride() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.override = nil
}

func (f *FilterS) HasShuffledOverride() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.override != nil
}

func (f *FilterS) Selection() Selection {
	f.mu.Lock()
	defer f.mu.Unlock()
	sel := f.selection
	sel.Difficulties = append([]models.Difficulty(nil), sel.Difficulties...)
	return sel
}

func (f *FilterS) HasActiveFilters() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.selection.Active()
}

func (f *FilterS) AllQuestions() []models.Question {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]models.Question(nil), f.questions...)
}

// FilteredQuestions is empty when no filter is active.
func (f *FilterS) FilteredQuestions() []models.Question {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]models.Question{}, f.filtered...)
}

// CurrentQuestions is the override if pinned, else the filtered view when any
// filter is active (possibly empty), else the whole bank.
func (f *FilterS) CurrentQuestions() []models.Question {
	f.mu.Lock()
	defer f.mu.Unlock()
	switch {
	case f.override != nil:
		return append([]models.Question{}, f.override...)
	case f.selection.Active():
		return append([]models.Question{}, f.filtered...)
	default:
		return append([]models.Question{}, f.questions...)
	}
}

func (f *FilterS) QuestionByID(id string) (models.Question, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, q := range f.questions {
		if q.QuestionID == id {
			return q, true
		}
	}
	return models.Question{}, false
}

// RandomQuestions returns min(count, available) questions drawn uniformly from the
// filtered view when a filter is active, else from the whole bank.
func (f *FilterS) RandomQuestions(count int) []models.Question {
	f.mu.Lock()
	defer f.mu.Unlock()

	pool := f.questions
	if f.selection.Active() {
		pool = f.filtered
	}

	shuffled := append([]models.Question{}, pool...)
	f.rnd.Shuffle(len(shuffled), func(i, j int) {
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	})

	if count < 0 {
		count = 0
	}
	if count < len(shuffled) {
		shuffled = shuffled[:count]
	}
	return shuffled
}
