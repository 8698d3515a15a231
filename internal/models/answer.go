package models

import "time"

// AnswerRecord is one answer submission. History is append-only.
type AnswerRecord struct {
	QuestionID    string    `json:"questionId"`
	UserAnswer    string    `json:"userAnswer"`
	CorrectAnswer string    `json:"correctAnswer"`
	IsCorrect     bool      `json:"isCorrect"`
	Timestamp     time.Time `json:"timestamp"`
	Topic         string    `json:"topic"`
	Difficulty    string    `json:"difficulty"`
	// TimeSpentMs is zero when the caller did not measure the answer.
	TimeSpentMs int64 `json:"timeSpentMs,omitempty"`
}

type Attempt struct {
	Timestamp  time.Time `json:"timestamp"`
	IsCorrect  bool      `json:"isCorrect"`
	UserAnswer string    `json:"userAnswer,omitempty"`
}

// WrongQuestionRecord is the ledger entry of a question answered incorrectly at least once.
type WrongQuestionRecord struct {
	QuestionID    string    `json:"questionId"`
	WrongCount    int       `json:"wrongCount"`
	LastWrongTime time.Time `json:"lastWrongTime"`
	Topic         string    `json:"topic"`
	Difficulty    string    `json:"difficulty"`
	Attempts      []Attempt `json:"attempts"`
}

// IsActive reports whether the most recent attempt was incorrect.
func (w WrongQuestionRecord) IsActive() bool {
	if len(w.Attempts) == 0 {
		return false
	}
	return !w.Attempts[len(w.Attempts)-1].IsCorrect
}

type AnswerSummary struct {
	Total     int `json:"total"`
	Correct   int `json:"correct"`
	Incorrect int `json:"incorrect"`
	Accuracy  int `json:"accuracy"`
}
