package models

type Difficulty string

const (
	DifficultySimple Difficulty = "simple"
	DifficultyMedium Difficulty = "medium"
	DifficultyHard   Difficulty = "hard"
)

// Difficulties lists the known difficulty levels in presentation order.
var Difficulties = []Difficulty{DifficultySimple, DifficultyMedium, DifficultyHard}

func (d Difficulty) Valid() bool {
	switch d {
	case DifficultySimple, DifficultyMedium, DifficultyHard:
		return true
	}
	return false
}

type Subject string

const (
	SubjectL21      Subject = "L21"
	SubjectL23      Subject = "L23"
	SubjectOfficial Subject = "OFFICIAL"
)

// SourceFilter selects questions by provenance.
type SourceFilter string

const (
	SourceAll         SourceFilter = "all"
	SourceOfficial    SourceFilter = "official"
	SourceAIGenerated SourceFilter = "ai-generated"
)

type Options struct {
	A string `json:"A" validate:"required"`
	B string `json:"B" validate:"required"`
	C string `json:"C" validate:"required"`
	D string `json:"D" validate:"required"`
}

// Label returns the option text for a label, or "" when the label is unknown.
func (o Options) Label(label string) string {
	switch label {
	case "A":
		return o.A
	case "B":
		return o.B
	case "C":
		return o.C
	case "D":
		return o.D
	}
	return ""
}

// OptionLabels are the four answer labels in display order.
var OptionLabels = []string{"A", "B", "C", "D"}

// Question is the canonical quiz item every source is normalized into.
// It is never mutated after the bank is merged.
type Question struct {
	QuestionID   string     `json:"question_id" validate:"required"`
	Sequence     int        `json:"sequence,omitempty"`
	Subject      Subject    `json:"subject" validate:"required,oneof=L21 L23"`
	SubjectName  string     `json:"subject_name,omitempty"`
	Topic        string     `json:"topic" validate:"required"`
	Chapter      string     `json:"chapter,omitempty"`
	Difficulty   Difficulty `json:"difficulty" validate:"required,oneof=simple medium hard"`
	QuestionType string     `json:"question_type,omitempty"`
	Question     string     `json:"question" validate:"required"`
	Options      Options    `json:"options"`
	Answer       string     `json:"answer" validate:"required,oneof=A B C D"`
	AnswerText   string     `json:"answer_text,omitempty"`
	Explanation  string     `json:"explanation"`
	Keywords     []string   `json:"keywords"`
	Source       string     `json:"source,omitempty"`
	Reference    string     `json:"reference,omitempty"`
}

// BankStats counts a loaded question bank along each classification axis.
type BankStats struct {
	Total        int            `json:"totalQuestions"`
	BySource     map[string]int `json:"bySource"`
	BySubject    map[string]int `json:"bySubject"`
	ByTopic      map[string]int `json:"byTopic"`
	ByDifficulty map[string]int `json:"byDifficulty"`
}

type ValidationStats struct {
	TotalValidated int `json:"totalValidated"`
	Passed         int `json:"passed"`
	Failed         int `json:"failed"`
}

// ValidationReport separates errors, which fail a record, from warnings, which do not.
type ValidationReport struct {
	IsValid  bool            `json:"isValid"`
	Errors   []string        `json:"errors"`
	Warnings []string        `json:"warnings"`
	Stats    ValidationStats `json:"stats"`
}
