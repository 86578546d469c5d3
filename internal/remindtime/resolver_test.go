package remindtime

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Wednesday, mid-afternoon.
var wed = time.Date(2024, 1, 10, 14, 0, 0, 0, time.UTC)

func TestResolveDayPhrases(t *testing.T) {
	tests := []struct {
		name    string
		phrase  string
		now     time.Time
		want    time.Time
		display string
		precise bool
	}{
		{
			name:    "tomorrow with explicit time",
			phrase:  "remind me to call the dentist tomorrow at 3pm",
			now:     wed,
			want:    time.Date(2024, 1, 11, 15, 0, 0, 0, time.UTC),
			display: "Tomorrow at 3:00 PM",
			precise: true,
		},
		{
			name:    "tomorrow defaults to nine",
			phrase:  "tomorrow",
			now:     wed,
			want:    time.Date(2024, 1, 11, 9, 0, 0, 0, time.UTC),
			display: "Tomorrow at 9:00 AM",
			precise: true,
		},
		{
			name:    "today with future time",
			phrase:  "today at 4pm",
			now:     wed,
			want:    time.Date(2024, 1, 10, 16, 0, 0, 0, time.UTC),
			display: "Today at 4:00 PM",
			precise: true,
		},
		{
			name:    "today with past time rolls over",
			phrase:  "today at 9am",
			now:     wed,
			want:    time.Date(2024, 1, 11, 9, 0, 0, 0, time.UTC),
			display: "Tomorrow at 9:00 AM",
			precise: true,
		},
		{
			name:    "today with 24h time",
			phrase:  "today at 18:30",
			now:     wed,
			want:    time.Date(2024, 1, 10, 18, 30, 0, 0, time.UTC),
			display: "Today at 6:30 PM",
			precise: true,
		},
		{
			name:    "tonight defaults to eight pm",
			phrase:  "tonight",
			now:     wed,
			want:    time.Date(2024, 1, 10, 20, 0, 0, 0, time.UTC),
			display: "Tonight at 8:00 PM",
			precise: true,
		},
		{
			name:    "tonight after eight rolls over",
			phrase:  "tonight",
			now:     time.Date(2024, 1, 10, 21, 0, 0, 0, time.UTC),
			want:    time.Date(2024, 1, 11, 20, 0, 0, 0, time.UTC),
			display: "Tomorrow at 8:00 PM",
			precise: true,
		},
		{
			name:    "tonight with explicit time",
			phrase:  "take out the trash tonight at 10pm",
			now:     wed,
			want:    time.Date(2024, 1, 10, 22, 0, 0, 0, time.UTC),
			display: "Tonight at 10:00 PM",
			precise: true,
		},
		{
			name:    "bare weekday resolves to upcoming",
			phrase:  "Friday",
			now:     wed,
			want:    time.Date(2024, 1, 12, 9, 0, 0, 0, time.UTC),
			display: "Friday at 9:00 AM",
			precise: true,
		},
		{
			name:    "bare weekday never means today",
			phrase:  "wednesday",
			now:     wed,
			want:    time.Date(2024, 1, 17, 9, 0, 0, 0, time.UTC),
			display: "Wednesday at 9:00 AM",
			precise: true,
		},
		{
			name:    "next weekday skips a week",
			phrase:  "next Friday",
			now:     wed,
			want:    time.Date(2024, 1, 19, 9, 0, 0, 0, time.UTC),
			display: "Next Friday at 9:00 AM",
			precise: true,
		},
		{
			name:    "abbreviated weekday",
			phrase:  "pick up the dry cleaning thu at 5:30pm",
			now:     wed,
			want:    time.Date(2024, 1, 11, 17, 30, 0, 0, time.UTC),
			display: "Thursday at 5:30 PM",
			precise: true,
		},
		{
			name:    "this weekend from a weekday",
			phrase:  "this weekend",
			now:     wed,
			want:    time.Date(2024, 1, 13, 9, 0, 0, 0, time.UTC),
			display: "Saturday at 9:00 AM",
			precise: true,
		},
		{
			name:    "this weekend on a Saturday goes to the next one",
			phrase:  "this weekend",
			now:     time.Date(2024, 1, 13, 10, 0, 0, 0, time.UTC),
			want:    time.Date(2024, 1, 20, 9, 0, 0, 0, time.UTC),
			display: "Saturday at 9:00 AM",
			precise: true,
		},
		{
			name:    "next week adds seven days",
			phrase:  "follow up next week",
			now:     wed,
			want:    time.Date(2024, 1, 17, 9, 0, 0, 0, time.UTC),
			display: "Next Wednesday at 9:00 AM",
			precise: true,
		},
		{
			name:    "no pattern falls back to tomorrow",
			phrase:  "buy groceries",
			now:     wed,
			want:    time.Date(2024, 1, 11, 9, 0, 0, 0, time.UTC),
			display: "Tomorrow at 9:00 AM",
			precise: false,
		},
		{
			name:    "time without a day keeps the fallback day",
			phrase:  "at 7:30pm",
			now:     wed,
			want:    time.Date(2024, 1, 11, 19, 30, 0, 0, time.UTC),
			display: "Tomorrow at 7:30 PM",
			precise: false,
		},
		{
			name:    "next month is not a day rule",
			phrase:  "renew the passport next month",
			now:     wed,
			want:    time.Date(2024, 1, 11, 9, 0, 0, 0, time.UTC),
			display: "Tomorrow at 9:00 AM",
			precise: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Resolve(tt.phrase, tt.now)
			assert.True(t, got.ResolvedAt.Equal(tt.want), "got %v, want %v", got.ResolvedAt, tt.want)
			assert.Equal(t, tt.display, got.DisplayText)
			assert.Equal(t, tt.precise, got.IsPrecise)
		})
	}
}

func TestResolveDurations(t *testing.T) {
	tests := []struct {
		phrase  string
		offset  time.Duration
		display string
	}{
		{"in 30 minutes", 30 * time.Minute, "In 30 minutes"},
		{"in half an hour", 30 * time.Minute, "In 30 minutes"},
		{"in an hour", time.Hour, "In 1 hour"},
		{"in one hour", time.Hour, "In 1 hour"},
		{"in 1 hour", time.Hour, "In 1 hour"},
		{"in 2 hours", 2 * time.Hour, "In 2 hours"},
		{"in 45 minutes", 45 * time.Minute, "In 45 minutes"},
		{"in 1 minute", time.Minute, "In 1 minute"},
	}

	for _, tt := range tests {
		t.Run(tt.phrase, func(t *testing.T) {
			got := Resolve(tt.phrase, wed)
			assert.True(t, got.ResolvedAt.Equal(wed.Add(tt.offset)))
			assert.Equal(t, tt.display, got.DisplayText)
			assert.True(t, got.IsPrecise)
		})
	}
}

func TestResolveDurationIgnoresSurroundingText(t *testing.T) {
	got := Resolve("call mom in 30 minutes please", wed)
	require.True(t, got.ResolvedAt.Equal(wed.Add(30*time.Minute)))
	assert.Equal(t, "In 30 minutes", got.DisplayText)
}

func TestResolveAlwaysReturnsSomething(t *testing.T) {
	phrases := []string{"x", "???", "call the bank", "later maybe", "  "}
	for _, p := range phrases {
		got := Resolve(p, wed)
		require.False(t, got.ResolvedAt.IsZero(), "phrase %q", p)
		require.True(t, got.ResolvedAt.After(wed), "phrase %q", p)
		require.NotEmpty(t, got.DisplayText, "phrase %q", p)
	}
}

func TestResolveTodayTonightAlwaysFuture(t *testing.T) {
	// Every hour of the day, the today/tonight rules must land in the future.
	for h := 0; h < 24; h++ {
		now := time.Date(2024, 1, 10, h, 30, 0, 0, time.UTC)
		for _, phrase := range []string{"today at 9am", "tonight"} {
			got := Resolve(phrase, now)
			assert.True(t, got.ResolvedAt.After(now), "phrase %q at hour %d", phrase, h)
		}
	}
}

func TestResolveNoonAndMidnight(t *testing.T) {
	got := Resolve("tomorrow at 12pm", wed)
	assert.Equal(t, 12, got.ResolvedAt.Hour())
	assert.Equal(t, "Tomorrow at 12:00 PM", got.DisplayText)

	got = Resolve("tomorrow at 12am", wed)
	assert.Equal(t, 0, got.ResolvedAt.Hour())
	assert.Equal(t, "Tomorrow at 12:00 AM", got.DisplayText)
}
