package render

import "fmt"

// reminderText is the fixed, language-keyed copy rendered for
// evaluation reminders. Reminders carry no content reference, so the
// copy lives here rather than in a translations table.
type reminderCopy struct {
	Title   string
	Content string
}

var reminderTexts = map[string]reminderCopy{
	"en": {Title: "Evaluation reminder", Content: "You have evaluations waiting to be submitted."},
	"cn": {Title: "评估提醒", Content: "您有待提交的评估。"},
	"tc": {Title: "評估提醒", Content: "您有待提交的評估。"},
	"fr": {Title: "Rappel d'évaluation", Content: "Des évaluations attendent votre envoi."},
	"jp": {Title: "評価リマインダー", Content: "提出待ちの評価があります。"},
	"kr": {Title: "평가 알림", Content: "제출 대기 중인 평가가 있습니다."},
}

// reminderText returns the reminder copy for a wire language code,
// falling back to English.
func reminderText(code string) reminderCopy {
	if text, ok := reminderTexts[code]; ok {
		return text
	}
	return reminderTexts["en"]
}

var levelUpTitles = map[string]string{
	"en": "%s reached level %d",
	"cn": "%s 达到了等级 %d",
	"tc": "%s 達到了等級 %d",
	"fr": "%s a atteint le niveau %d",
	"jp": "%sがレベル%dに到達しました",
	"kr": "%s님이 레벨 %d에 도달했습니다",
}

// levelUpTitle renders the legacy detail-view title for a level-up.
func levelUpTitle(code, name string, level int) string {
	format, ok := levelUpTitles[code]
	if !ok {
		format = levelUpTitles["en"]
	}
	return fmt.Sprintf(format, name, level)
}

var quizTitles = map[string]string{
	"en": "%s completed the quiz for %s",
	"cn": "%s 完成了「%s」的测验",
	"tc": "%s 完成了「%s」的測驗",
	"fr": "%s a terminé le quiz de %s",
	"jp": "%sが「%s」のクイズを完了しました",
	"kr": "%s님이 %s 퀴즈를 완료했습니다",
}

// quizTitle renders the legacy detail-view title for a peer quiz
// completion against a localized article title.
func quizTitle(code, name, articleTitle string) string {
	format, ok := quizTitles[code]
	if !ok {
		format = quizTitles["en"]
	}
	return fmt.Sprintf(format, name, articleTitle)
}
