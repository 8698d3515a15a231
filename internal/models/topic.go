package models

type Topic struct {
	ID          string  `json:"id"`
	SubjectID   Subject `json:"subjectId"`
	Name        string  `json:"name"`
	FullName    string  `json:"fullName"`
	Description string  `json:"description,omitempty"`
	Sequence    int     `json:"sequence"`
	Icon        string  `json:"icon,omitempty"`
	// SourcePattern is matched against Question.Source for official sub-topics.
	SourcePattern string `json:"sourcePattern,omitempty"`
}
