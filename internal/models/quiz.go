package models

import "time"

type QuizMode string

const (
	ModePractice QuizMode = "practice"
	ModeExam     QuizMode = "exam"
)

// QuizConfig is the configuration a quiz session was started with, kept so it can be retaken.
type QuizConfig struct {
	SessionID     string        `json:"sessionId"`
	TopicID       string        `json:"topicId,omitempty"`
	Mode          QuizMode      `json:"mode"`
	QuestionIDs   []string      `json:"questionIds"`
	QuestionCount int           `json:"questionCount,omitempty"`
	TimeLimit     time.Duration `json:"timeLimit,omitempty"`
}

type QuestionResult struct {
	Question      Question `json:"question"`
	UserAnswer    string   `json:"userAnswer"`
	CorrectAnswer string   `json:"correctAnswer"`
	IsCorrect     bool     `json:"isCorrect"`
}

type QuizResults struct {
	TotalQuestions  int              `json:"totalQuestions"`
	CorrectCount    int              `json:"correctCount"`
	IncorrectCount  int              `json:"incorrectCount"`
	Accuracy        int              `json:"accuracy"`
	Elapsed         time.Duration    `json:"elapsedTime"`
	FormattedTime   string           `json:"formattedTime"`
	TimedOut        bool             `json:"timedOut"`
	QuestionResults []QuestionResult `json:"questionResults"`
	WrongQuestions  []QuestionResult `json:"wrongQuestions"`
}

// QuizSnapshot is what the results page reads after a session completes.
type QuizSnapshot struct {
	Results   QuizResults `json:"results"`
	Config    QuizConfig  `json:"quizConfig"`
	Timestamp time.Time   `json:"timestamp"`
}
