package service

import (
	"fmt"

	"github.com/Yippine/QuizForge-AI/internal/catalog"
	"github.com/Yippine/QuizForge-AI/internal/models"
	"github.com/Yippine/QuizForge-AI/pkg/validator"
)

// ValidateQuestionIntegrity checks every question without modifying it. Errors
// fail a question; warnings (id format, unknown topic) do not.
func ValidateQuestionIntegrity(questions []models.Question) models.ValidationReport {
	report := models.ValidationReport{
		Errors:   []string{},
		Warnings: []string{},
		Stats:    models.ValidationStats{TotalValidated: len(questions)},
	}

	for i, q := range questions {
		errs := questionErrors(i, q)
		report.Errors = append(report.Errors, errs...)
		report.Warnings = append(report.Warnings, questionWarnings(q)...)

		if len(errs) > 0 {
			report.Stats.Failed++
		} else {
			report.Stats.Passed++
		}
	}

	report.IsValid = len(report.Errors) == 0

	return report
}

func questionErrors(index int, q models.Question) []string {
	failed := make(map[string]bool)

	fieldErrs, err := validator.FieldErrors(q)
	if err != nil {
		return []string{fmt.Sprintf("Question #%d: %v", index+1, err)}
	}
	for _, fe := range fieldErrs {
		switch fe.Namespace {
		case "Question.Options.A", "Question.Options.B", "Question.Options.C", "Question.Options.D":
			failed["Options"] = true
		default:
			failed[fe.Field] = true
		}
	}

	var errs []string
	id := q.QuestionID

	if failed["QuestionID"] {
		errs = append(errs, fmt.Sprintf("Question #%d: Missing question_id", index+1))
	}
	if failed["Subject"] {
		errs = append(errs, fmt.Sprintf("Question %s: Invalid subject %q", id, q.Subject))
	}
	if failed["Topic"] {
		errs = append(errs, fmt.Sprintf("Question %s: Missing topic", id))
	}
	if failed["Difficulty"] {
		errs = append(errs, fmt.Sprintf("Question %s: Invalid difficulty %q", id, q.Difficulty))
	}
	if failed["Question"] {
		errs = append(errs, fmt.Sprintf("Question %s: Missing question text", id))
	}
	if failed["Options"] {
		errs = append(errs, fmt.Sprintf("Question %s: Invalid options", id))
	}
	if failed["Answer"] {
		errs = append(errs, fmt.Sprintf("Question %s: Invalid answer %q", id, q.Answer))
	}

	return errs
}

func questionWarnings(q models.Question) []string {
	var warnings []string
	id := q.QuestionID

	if !catalog.ValidIDFormat(id) {
		warnings = append(warnings, fmt.Sprintf("Question %s: Unusual ID format", id))
	}

	if !catalog.IsOfficial(id) {
		if topicID := catalog.TopicIDFromQuestionID(id); topicID != "" {
			if _, ok := catalog.TopicByID(topicID); !ok {
				warnings = append(warnings, fmt.Sprintf("Question %s: Topic %s not found in topic list", id, topicID))
			}
		}
		return warnings
	}

	if !officialTopicKnown(q.Topic) {
		warnings = append(warnings, fmt.Sprintf("Question %s: Topic %q not found in topic list", id, q.Topic))
	}

	return warnings
}

// officialTopicKnown accepts an official question's topic by its code, e.g.
// "L21201_AI導入評估", or by an exact full name.
func officialTopicKnown(topic string) bool {
	if topicID := catalog.ExtractTopicID(topic); topicID != "" {
		if _, ok := catalog.TopicByID(topicID); ok {
			return true
		}
	}
	_, ok := catalog.TopicByFullName(topic)
	return ok
}

// AddRejected counts records dropped before normalization as failed questions.
func AddRejected(report models.ValidationReport, rejected []*ShapeError) models.ValidationReport {
	for _, r := range rejected {
		report.Errors = append(report.Errors, r.Error())
		report.Stats.TotalValidated++
		report.Stats.Failed++
	}
	report.IsValid = len(report.Errors) == 0
	return report
}
