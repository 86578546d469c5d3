package patterns

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func noteAt(hour int, kind, text string) NoteSample {
	return NoteSample{
		Kind:      kind,
		Text:      text,
		CreatedAt: time.Date(2024, 1, 10, hour, 0, 0, 0, time.UTC),
	}
}

func findType(ps []Pattern, typ string) (Pattern, bool) {
	for _, p := range ps {
		if p.Type == typ {
			return p, true
		}
	}
	return Pattern{}, false
}

func TestDetectCaptureTime(t *testing.T) {
	notes := []NoteSample{
		noteAt(19, "journal", "long walk"),
		noteAt(20, "journal", "dinner thoughts"),
		noteAt(21, "task", "plan trip"),
		noteAt(18, "journal", "reading"),
		noteAt(9, "task", "emails"),
		noteAt(20, "journal", "wind down"),
	}

	p, ok := findType(Detect(notes, 0, 0), "capture_time")
	require.True(t, ok)
	assert.Contains(t, p.Label, "evening")
	assert.Greater(t, p.Confidence, 0.5)
}

func TestDetectDominantKind(t *testing.T) {
	notes := []NoteSample{
		noteAt(9, "journal", "a"),
		noteAt(10, "journal", "b"),
		noteAt(11, "journal", "c"),
		noteAt(12, "journal", "d"),
		noteAt(13, "task", "e"),
	}

	p, ok := findType(Detect(notes, 0, 0), "dominant_kind")
	require.True(t, ok)
	assert.Equal(t, "You mostly journal", p.Label)
}

func TestDetectRecurringTopics(t *testing.T) {
	notes := []NoteSample{
		noteAt(9, "task", "book the climbing gym"),
		noteAt(10, "journal", "great climbing session"),
		noteAt(11, "task", "buy climbing shoes"),
		noteAt(12, "journal", "sore from climbing"),
		noteAt(13, "task", "laundry"),
	}

	p, ok := findType(Detect(notes, 0, 0), "recurring_topic")
	require.True(t, ok)
	assert.Contains(t, p.Label, "climbing")
	assert.Contains(t, p.Label, "4")
}

func TestDetectTopicCountsNotesNotOccurrences(t *testing.T) {
	notes := []NoteSample{
		noteAt(9, "journal", "running running running running"),
		noteAt(10, "task", "a"),
		noteAt(11, "task", "b"),
		noteAt(12, "task", "c"),
		noteAt(13, "task", "d"),
	}

	_, ok := findType(Detect(notes, 0, 0), "recurring_topic")
	assert.False(t, ok)
}

func TestDetectCompletion(t *testing.T) {
	p, ok := completionPattern(1, 10)
	require.True(t, ok)
	assert.Contains(t, p.Label, "slip")

	p, ok = completionPattern(9, 10)
	require.True(t, ok)
	assert.Contains(t, p.Label, "follow through")

	_, ok = completionPattern(6, 10)
	assert.False(t, ok)

	_, ok = completionPattern(0, 2)
	assert.False(t, ok)
}

func TestDetectNeedsEnoughSamples(t *testing.T) {
	notes := []NoteSample{
		noteAt(19, "journal", "one"),
		noteAt(20, "journal", "two"),
	}
	assert.Empty(t, Detect(notes, 0, 0))
}
