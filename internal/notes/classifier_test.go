package notes

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name string
		text string
		kind Kind
	}{
		{"time phrase wins", "call the dentist tomorrow at 3pm", KindReminder},
		{"duration phrase", "check the oven in 20 minutes", KindReminder},
		{"weekday phrase", "gym on friday", KindReminder},
		{"task verb without time", "buy milk and eggs", KindTask},
		{"task verb mid-sentence", "need to fix the bike tire", KindTask},
		{"journal cue", "i feel drained after that meeting", KindJournal},
		{"plain thought defaults to journal", "that podcast about cities was great", KindJournal},
		{"empty", "", KindJournal},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Classify(tt.text)
			assert.Equal(t, tt.kind, got.Kind)
		})
	}
}

func TestClassifyReminderCarriesExpression(t *testing.T) {
	got := Classify("water the plants tonight")
	assert.Equal(t, KindReminder, got.Kind)
	assert.Equal(t, "tonight", got.TimeExpression)
	assert.Greater(t, got.Confidence, 0.8)
}

func TestClassifyTaskVerbAtStart(t *testing.T) {
	got := Classify("pay the electricity bill")
	assert.Equal(t, KindTask, got.Kind)
}
