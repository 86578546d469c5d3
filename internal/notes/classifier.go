package notes

import (
	"strings"

	"luna-assistant-backend/internal/remindtime"
)

// Classification carries the decided kind plus a rough confidence the client
// uses to decide whether to show a "change category" chip.
type Classification struct {
	Kind       Kind    `json:"kind"`
	Confidence float64 `json:"confidence"`
	// TimeExpression is set when the text carries a schedulable phrase.
	TimeExpression string `json:"time_expression,omitempty"`
}

var taskVerbs = []string{
	"buy", "call", "email", "text", "send", "finish", "fix", "clean",
	"pay", "book", "schedule", "pick up", "submit", "order", "renew",
	"return", "cancel", "print", "prepare", "water", "walk",
}

var journalCues = []string{
	"i feel", "i felt", "feeling", "today was", "today i", "grateful",
	"i think", "i realized", "i noticed", "i'm so", "i am so",
}

// Classify decides whether a captured note is a reminder, a task, or a plain
// journal entry. Order matters: a schedulable time phrase wins over task
// verbs, task verbs win over journal cues, and journal is the default.
func Classify(text string) Classification {
	t := strings.ToLower(strings.TrimSpace(text))
	if t == "" {
		return Classification{Kind: KindJournal, Confidence: 0.3}
	}

	if expr, ok := remindtime.ExtractTimeExpression(t); ok {
		return Classification{Kind: KindReminder, Confidence: 0.9, TimeExpression: expr}
	}

	for _, v := range taskVerbs {
		if strings.HasPrefix(t, v+" ") || strings.Contains(t, " "+v+" ") {
			return Classification{Kind: KindTask, Confidence: 0.7}
		}
	}

	for _, c := range journalCues {
		if strings.Contains(t, c) {
			return Classification{Kind: KindJournal, Confidence: 0.8}
		}
	}

	return Classification{Kind: KindJournal, Confidence: 0.5}
}
