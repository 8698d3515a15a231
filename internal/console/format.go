package console

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/Yippine/QuizForge-AI/internal/catalog"
	"github.com/Yippine/QuizForge-AI/internal/models"
)

var difficultyNames = map[string]string{
	"simple":  "簡單",
	"medium":  "中等",
	"hard":    "困難",
	"unknown": "未分類",
}

func difficultyName(d string) string {
	if name, ok := difficultyNames[d]; ok {
		return name
	}
	return d
}

func topicName(topic string) string {
	if t, ok := catalog.TopicByID(catalog.ExtractTopicID(topic)); ok {
		return t.FullName
	}
	return topic
}

func formatQuestion(index, total int, q models.Question, clock string) string {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("❓ 第 %d/%d 題", index+1, total))
	sb.WriteString(fmt.Sprintf(" [%s]", difficultyName(string(q.Difficulty))))
	if clock != "" {
		sb.WriteString(" ⏱️ ")
		sb.WriteString(clock)
	}
	sb.WriteString("\n")
	sb.WriteString(q.Question)
	sb.WriteString("\n")
	for _, label := range models.OptionLabels {
		sb.WriteString(fmt.Sprintf("  %s. %s\n", label, q.Options.Label(label)))
	}
	sb.WriteString("請作答 (A-D，Q 結束): ")

	return sb.String()
}

func formatFeedback(q models.Question, isCorrect bool) string {
	var sb strings.Builder

	if isCorrect {
		sb.WriteString("✅ 答對了！\n")
	} else {
		sb.WriteString(fmt.Sprintf("❌ 答錯了，正確答案是 %s. %s\n", q.Answer, q.Options.Label(q.Answer)))
	}
	if q.Explanation != "" {
		sb.WriteString("💡 ")
		sb.WriteString(q.Explanation)
		sb.WriteString("\n")
	}

	return sb.String()
}

func formatResults(r models.QuizResults) string {
	var sb strings.Builder

	if r.TimedOut {
		sb.WriteString("⏰ 時間到，自動交卷\n")
	}
	sb.WriteString("📋 測驗結果\n")
	sb.WriteString("  總題數: " + strconv.Itoa(r.TotalQuestions) + "\n")
	sb.WriteString("  答對: " + strconv.Itoa(r.CorrectCount) + "\n")
	sb.WriteString("  答錯: " + strconv.Itoa(r.IncorrectCount) + "\n")
	sb.WriteString("  答對率: " + strconv.Itoa(r.Accuracy) + "%\n")
	sb.WriteString("  用時: " + r.FormattedTime + "\n")

	if r.TotalQuestions > 0 && r.Accuracy == 100 {
		sb.WriteString("🎉 全對！\n")
	}

	for _, w := range r.WrongQuestions {
		answer := w.UserAnswer
		if answer == "" {
			answer = "未作答"
		}
		sb.WriteString(fmt.Sprintf("  ✗ %s 你的答案: %s，正確答案: %s\n", w.Question.QuestionID, answer, w.CorrectAnswer))
	}

	return sb.String()
}

func formatStatistics(s models.Statistics) string {
	var sb strings.Builder
	u := s.UserStats

	sb.WriteString("📊 學習統計\n")
	sb.WriteString(fmt.Sprintf("  作答數: %d (答對 %d / 答錯 %d)\n", u.TotalAnswered, u.CorrectAnswers, u.IncorrectAnswers))
	sb.WriteString(fmt.Sprintf("  答對率: %d%%\n", u.Accuracy))
	if u.AverageTimeSeconds > 0 {
		sb.WriteString(fmt.Sprintf("  平均作答時間: %.1f 秒\n", u.AverageTimeSeconds))
	}
	sb.WriteString(fmt.Sprintf("  目前連續答對: %d，最佳紀錄: %d\n", u.CurrentStreak, u.BestStreak))
	sb.WriteString(fmt.Sprintf("  學習天數: %d\n", u.StudyDays))

	if len(s.TopicPerformance) > 0 {
		sb.WriteString("\n📚 主題表現\n")
		for _, t := range s.TopicPerformance {
			sb.WriteString(fmt.Sprintf("  %s: %d 題，答對率 %d%%\n", topicName(t.Topic), t.Total, t.Accuracy))
		}
	}

	if len(s.DifficultyPerformance) > 0 {
		sb.WriteString("\n🎯 難度表現\n")
		for _, d := range s.DifficultyPerformance {
			sb.WriteString(fmt.Sprintf("  %s: %d 題，答對率 %d%%\n", difficultyName(d.Difficulty), d.Total, d.Accuracy))
		}
	}

	if len(s.TimeSeries.Monthly) > 0 {
		sb.WriteString("\n📅 每月作答\n")
		for _, m := range s.TimeSeries.Monthly {
			sb.WriteString(fmt.Sprintf("  %s: %d 題 (答對 %d)\n", m.Label, m.Total, m.Correct))
		}
	}

	return sb.String()
}

func formatWrongQuestions(records []models.WrongQuestionRecord, lookup func(string) (models.Question, bool)) string {
	if len(records) == 0 {
		return "🎉 目前沒有錯題\n"
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("📕 錯題本 (%d 題)\n", len(records)))

	for _, r := range records {
		sb.WriteString(fmt.Sprintf("  %s 錯 %d 次，最近 %s", r.QuestionID, r.WrongCount, r.LastWrongTime.Format("2006-01-02 15:04")))
		if q, ok := lookup(r.QuestionID); ok {
			sb.WriteString("\n    ")
			sb.WriteString(q.Question)
		}
		sb.WriteString("\n")
	}

	return sb.String()
}

func formatReport(r models.ValidationReport) string {
	var sb strings.Builder

	status := "✅"
	if !r.IsValid {
		status = "❌"
	}
	sb.WriteString(fmt.Sprintf("%s 題庫檢查: %d 題，通過 %d，失敗 %d，警告 %d\n",
		status, r.Stats.TotalValidated, r.Stats.Passed, r.Stats.Failed, len(r.Warnings)))

	for _, e := range r.Errors {
		sb.WriteString("  ERROR " + e + "\n")
	}
	for _, w := range r.Warnings {
		sb.WriteString("  WARN  " + w + "\n")
	}

	return sb.String()
}

func formatBank(stats models.BankStats, perSource map[string]int) string {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("📚 題庫共 %d 題\n", stats.Total))
	writeCounts(&sb, "來源檔案", perSource)
	writeCounts(&sb, "科目", stats.BySubject)
	writeCounts(&sb, "難度", stats.ByDifficulty)
	writeCounts(&sb, "主題", stats.ByTopic)

	return sb.String()
}

func writeCounts(sb *strings.Builder, title string, counts map[string]int) {
	if len(counts) == 0 {
		return
	}
	keys := make([]string, 0, len(counts))
	for k := range counts {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	sb.WriteString(title + ":\n")
	for _, k := range keys {
		name := k
		if name == "" {
			name = "(無)"
		}
		sb.WriteString(fmt.Sprintf("  %s: %d\n", name, counts[k]))
	}
}
