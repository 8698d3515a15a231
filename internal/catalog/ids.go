package catalog

import (
	"regexp"
	"strings"

	"github.com/Yippine/QuizForge-AI/internal/models"
)

const officialPrefix = "OFF_"

var (
	topicCodeRe      = regexp.MustCompile(`^(L2[13]\d{3})`)
	mockQuestionIDRe = regexp.MustCompile(`^(L2[13]\d{3})_\d+$`)
	subjectRe        = regexp.MustCompile(`^(?:OFF_)?(L2[13])`)
	questionIDRe     = regexp.MustCompile(`^(L2[13]\d{3}_\d+|OFF_L2[13]_CH\d+_\d+)$`)
)

// ExtractTopicID canonicalizes a topic string: "L21101_name", "L21101-name" and
// "L21101" all yield "L21101". It returns "" when no code is present.
func ExtractTopicID(topic string) string {
	m := topicCodeRe.FindStringSubmatch(topic)
	if m == nil {
		return ""
	}
	return m[1]
}

// TopicIDFromQuestionID derives the topic code of a mock-exam id such as "L21101_001".
// Official ids do not encode a topic.
func TopicIDFromQuestionID(questionID string) string {
	m := mockQuestionIDRe.FindStringSubmatch(questionID)
	if m == nil {
		return ""
	}
	return m[1]
}

func ExtractSubjectID(questionID string) models.Subject {
	m := subjectRe.FindStringSubmatch(questionID)
	if m == nil {
		return ""
	}
	return models.Subject(m[1])
}

func IsOfficial(questionID string) bool {
	return strings.HasPrefix(questionID, officialPrefix)
}

func ValidIDFormat(questionID string) bool {
	return questionIDRe.MatchString(questionID)
}

// QuestionTopicID is the topic code of a question: from its topic field when that
// carries one, otherwise from its id.
func QuestionTopicID(q models.Question) string {
	if id := ExtractTopicID(q.Topic); id != "" {
		return id
	}
	return TopicIDFromQuestionID(q.QuestionID)
}
