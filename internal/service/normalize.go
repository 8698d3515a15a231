package service

import (
	"encoding/json"
	"fmt"

	"github.com/Yippine/QuizForge-AI/internal/catalog"
	"github.com/Yippine/QuizForge-AI/internal/models"
)

type RawKind int

const (
	KindMockExam RawKind = iota + 1
	KindOfficial
)

func (k RawKind) String() string {
	switch k {
	case KindMockExam:
		return "mock-exam"
	case KindOfficial:
		return "official"
	}
	return "unknown"
}

// OptionalFields are the fields either record shape may carry. Whatever is
// present is kept, regardless of the shape.
type OptionalFields struct {
	Sequence     int    `json:"sequence"`
	SubjectName  string `json:"subject_name"`
	Chapter      string `json:"chapter"`
	QuestionType string `json:"question_type"`
	AnswerText   string `json:"answer_text"`
	Source       string `json:"source"`
	Reference    string `json:"reference"`
}

// MockExamRecord is the shape of the generated mock-exam banks.
type MockExamRecord struct {
	QuestionID  string         `json:"question_id"`
	Subject     string         `json:"subject"`
	Topic       string         `json:"topic"`
	Difficulty  string         `json:"difficulty"`
	Question    string         `json:"question"`
	Options     models.Options `json:"options"`
	Answer      string         `json:"answer"`
	Explanation string         `json:"explanation"`
	Keywords    []string       `json:"keywords"`
	OptionalFields
}

// OfficialRecord is the shape of the official bank. Its topic is a full topic
// name and its provenance lives in Source.
type OfficialRecord struct {
	QuestionID  string         `json:"question_id"`
	Subject     string         `json:"subject"`
	Topic       string         `json:"topic"`
	Difficulty  string         `json:"difficulty"`
	Question    string         `json:"question"`
	Options     models.Options `json:"options"`
	Answer      string         `json:"answer"`
	Explanation string         `json:"explanation"`
	Keywords    []string       `json:"keywords"`
	OptionalFields
}

// RawQuestion holds exactly one of Mock or Official, selected by Kind.
type RawQuestion struct {
	Kind     RawKind
	Mock     *MockExamRecord
	Official *OfficialRecord
}

// ShapeError reports a raw record that fits neither known shape.
// Source is set once the record is attributed to a question-bank source.
type ShapeError struct {
	Source string
	Index  int
	Reason string
}

func (e *ShapeError) Error() string {
	if e.Source != "" {
		return fmt.Sprintf("%s question #%d: %s", e.Source, e.Index+1, e.Reason)
	}
	return fmt.Sprintf("question #%d: %s", e.Index+1, e.Reason)
}

// DecodeRaw classifies one raw record. Records with an official id prefix, or
// carrying a source, chapter or answer_text field, are official. Missing fields
// are not an error here; a field of the wrong JSON type is.
func DecodeRaw(index int, raw json.RawMessage) (RawQuestion, error) {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(raw, &fields); err != nil || fields == nil {
		return RawQuestion{}, &ShapeError{Index: index, Reason: "record is not an object"}
	}

	var id string
	if v, ok := fields["question_id"]; ok {
		if err := json.Unmarshal(v, &id); err != nil {
			return RawQuestion{}, &ShapeError{Index: index, Reason: "question_id is not a string"}
		}
	}

	_, hasSource := fields["source"]
	_, hasChapter := fields["chapter"]
	_, hasAnswerText := fields["answer_text"]

	if catalog.IsOfficial(id) || hasSource || hasChapter || hasAnswerText {
		var rec OfficialRecord
		if err := json.Unmarshal(raw, &rec); err != nil {
			return RawQuestion{}, &ShapeError{Index: index, Reason: err.Error()}
		}
		return RawQuestion{Kind: KindOfficial, Official: &rec}, nil
	}

	var rec MockExamRecord
	if err := json.Unmarshal(raw, &rec); err != nil {
		return RawQuestion{}, &ShapeError{Index: index, Reason: err.Error()}
	}
	return RawQuestion{Kind: KindMockExam, Mock: &rec}, nil
}

// Normalize converts a classified record into the canonical question. It never
// fails; malformed content is left for ValidateQuestionIntegrity to report.
func Normalize(raw RawQuestion) models.Question {
	switch raw.Kind {
	case KindMockExam:
		if raw.Mock != nil {
			return normalizeMock(*raw.Mock)
		}
	case KindOfficial:
		if raw.Official != nil {
			return normalizeOfficial(*raw.Official)
		}
	}
	return models.Question{Keywords: []string{}}
}

func normalizeMock(r MockExamRecord) models.Question {
	return normalizeFields(r.QuestionID, r.Subject, r.Topic, r.Difficulty, r.Question,
		r.Options, r.Answer, r.Explanation, r.Keywords, r.OptionalFields)
}

func normalizeOfficial(r OfficialRecord) models.Question {
	return normalizeFields(r.QuestionID, r.Subject, r.Topic, r.Difficulty, r.Question,
		r.Options, r.Answer, r.Explanation, r.Keywords, r.OptionalFields)
}

func normalizeFields(id, subject, topic, difficulty, question string, options models.Options,
	answer, explanation string, keywords []string, opt OptionalFields) models.Question {
	if explanation == "" {
		explanation = opt.AnswerText
	}

	return models.Question{
		QuestionID:   id,
		Sequence:     opt.Sequence,
		Subject:      subjectOf(subject, id),
		SubjectName:  opt.SubjectName,
		Topic:        topic,
		Chapter:      opt.Chapter,
		Difficulty:   models.Difficulty(difficulty),
		QuestionType: opt.QuestionType,
		Question:     question,
		Options:      options,
		Answer:       answer,
		AnswerText:   opt.AnswerText,
		Explanation:  explanation,
		Keywords:     keywordsOf(keywords),
		Source:       opt.Source,
		Reference:    opt.Reference,
	}
}

// subjectOf keeps an explicit subject, else derives it from the id prefix and
// finally defaults to L21.
func subjectOf(subject, questionID string) models.Subject {
	if subject != "" {
		return models.Subject(subject)
	}
	if s := catalog.ExtractSubjectID(questionID); s != "" {
		return s
	}
	return models.SubjectL21
}

func keywordsOf(keywords []string) []string {
	if keywords == nil {
		return []string{}
	}
	return keywords
}
