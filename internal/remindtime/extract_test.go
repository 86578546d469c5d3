package remindtime

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtractTimeExpression(t *testing.T) {
	tests := []struct {
		name string
		text string
		want string
	}{
		{"duration minutes", "call mom in 30 minutes please", "in 30 minutes"},
		{"duration hours", "check the oven in 2 hrs", "in 2 hrs"},
		{"duration one hour", "leave in an hour", "in an hour"},
		{"duration half hour", "tea in half an hour", "in half an hour"},
		{"qualified clock time", "dentist tomorrow at 3pm", "at 3pm"},
		{"qualified without meridiem", "meet around 7", "around 7"},
		{"bare clock time", "dinner 6:30 pm with anna", "6:30 pm"},
		{"day word", "finish the report tomorrow", "tomorrow"},
		{"tonight", "water the plants tonight", "tonight"},
		{"this weekend", "hike this weekend", "this weekend"},
		{"next week", "follow up next week", "next week"},
		{"next weekday", "dentist next thursday", "next thursday"},
		{"bare weekday", "gym on friday", "friday"},
		{"abbreviated weekday", "standup on wed", "wed"},
		{"day of month", "rent is on the 15th", "on the 15th"},
		{"month and day", "flight january 22", "january 22"},
		{"bare day part", "go for a run in the morning", "morning"},
		{"end of day deadline", "submit by end of day", "by end of day"},
		{"deadline phrase", "finish before the review, then rest", "before the review"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ExtractTimeExpression(tt.text)
			assert.True(t, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestExtractTimeExpressionPriority(t *testing.T) {
	// Durations beat clock times, clock times beat day words.
	got, ok := ExtractTimeExpression("tomorrow at 3pm or in 10 minutes")
	assert.True(t, ok)
	assert.Equal(t, "in 10 minutes", got)

	got, ok = ExtractTimeExpression("tomorrow at 3pm")
	assert.True(t, ok)
	assert.Equal(t, "at 3pm", got)
}

func TestExtractTimeExpressionNoMatch(t *testing.T) {
	for _, text := range []string{"water the plants", "had a great talk with sam", ""} {
		got, ok := ExtractTimeExpression(text)
		assert.False(t, ok, "text %q", text)
		assert.Empty(t, got)
	}
}
