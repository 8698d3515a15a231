package models

import "time"

type UserStats struct {
	TotalAnswered    int `json:"totalAnswered"`
	CorrectAnswers   int `json:"correctAnswers"`
	IncorrectAnswers int `json:"incorrectAnswers"`
	Accuracy         int `json:"accuracy"`
	// AverageTimeSeconds covers only records that carry a measured time.
	AverageTimeSeconds float64   `json:"averageTime"`
	CurrentStreak      int       `json:"currentStreak"`
	BestStreak         int       `json:"bestStreak"`
	StudyDays          int       `json:"studyDays"`
	LastStudyTime      time.Time `json:"lastStudyTime,omitempty"`
}

type TopicPerformance struct {
	Topic              string  `json:"topic"`
	Total              int     `json:"total"`
	Correct            int     `json:"correct"`
	Accuracy           int     `json:"accuracy"`
	AverageTimeSeconds float64 `json:"averageTime"`
}

type DifficultyPerformance struct {
	Difficulty string `json:"difficulty"`
	Total      int    `json:"total"`
	Correct    int    `json:"correct"`
	Accuracy   int    `json:"accuracy"`
}

type TimeBucket struct {
	Label     string `json:"label"`
	Correct   int    `json:"correct"`
	Incorrect int    `json:"incorrect"`
	Total     int    `json:"total"`
}

type TimeSeries struct {
	Daily   []TimeBucket `json:"daily"`
	Weekly  []TimeBucket `json:"weekly"`
	Monthly []TimeBucket `json:"monthly"`
}

// Statistics is derived from the answer history and never a source of truth.
type Statistics struct {
	UserStats             UserStats               `json:"userStats"`
	TopicPerformance      []TopicPerformance      `json:"topicPerformance"`
	DifficultyPerformance []DifficultyPerformance `json:"difficultyPerformance"`
	TimeSeries            TimeSeries              `json:"timeSeriesData"`
	LastUpdated           time.Time               `json:"lastUpdated"`
}
