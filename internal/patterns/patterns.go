package patterns

import (
	"fmt"
	"regexp"
	"sort"
	"strings"
	"time"
)

// NoteSample is the slice of a note the heuristics look at.
type NoteSample struct {
	Kind      string
	Text      string
	CreatedAt time.Time
}

type Pattern struct {
	Type       string  `json:"type"`
	Label      string  `json:"label"`
	Confidence float64 `json:"confidence"`
}

const minSamples = 5

// Detect runs the rule-based heuristics over recent notes. Pure function of
// its inputs; callers fetch the data.
func Detect(notes []NoteSample, doneReminders, deliveredReminders int) []Pattern {
	var out []Pattern

	if p, ok := captureTimePattern(notes); ok {
		out = append(out, p)
	}
	if p, ok := dominantKindPattern(notes); ok {
		out = append(out, p)
	}
	out = append(out, topicPatterns(notes)...)
	if p, ok := completionPattern(doneReminders, deliveredReminders); ok {
		out = append(out, p)
	}

	return out
}

// captureTimePattern finds the day band the user records most notes in.
func captureTimePattern(notes []NoteSample) (Pattern, bool) {
	if len(notes) < minSamples {
		return Pattern{}, false
	}

	bands := map[string]int{}
	for _, n := range notes {
		bands[dayBand(n.CreatedAt.Hour())]++
	}

	best, count := "", 0
	for band, c := range bands {
		if c > count {
			best, count = band, c
		}
	}

	share := float64(count) / float64(len(notes))
	if share < 0.4 {
		return Pattern{}, false
	}

	return Pattern{
		Type:       "capture_time",
		Label:      "You capture most notes in the " + best,
		Confidence: share,
	}, true
}

func dayBand(hour int) string {
	switch {
	case hour >= 5 && hour < 12:
		return "morning"
	case hour >= 12 && hour < 17:
		return "afternoon"
	case hour >= 17 && hour < 22:
		return "evening"
	default:
		return "night"
	}
}

func dominantKindPattern(notes []NoteSample) (Pattern, bool) {
	if len(notes) < minSamples {
		return Pattern{}, false
	}

	kinds := map[string]int{}
	for _, n := range notes {
		kinds[n.Kind]++
	}

	best, count := "", 0
	for k, c := range kinds {
		if c > count {
			best, count = k, c
		}
	}

	share := float64(count) / float64(len(notes))
	if share < 0.5 {
		return Pattern{}, false
	}

	label := map[string]string{
		"task":     "Most of your notes turn into tasks",
		"reminder": "You mainly use notes to set reminders",
		"journal":  "You mostly journal",
	}[best]
	if label == "" {
		return Pattern{}, false
	}

	return Pattern{Type: "dominant_kind", Label: label, Confidence: share}, true
}

var wordRe = regexp.MustCompile(`[a-z']+`)

var stopwords = map[string]bool{
	"the": true, "and": true, "for": true, "with": true, "that": true,
	"this": true, "have": true, "about": true, "from": true, "need": true,
	"tomorrow": true, "today": true, "tonight": true, "next": true,
	"remind": true, "reminder": true, "don't": true, "i'm": true,
	"was": true, "were": true, "will": true, "would": true, "should": true,
}

// topicPatterns surfaces words that keep coming back across notes.
func topicPatterns(notes []NoteSample) []Pattern {
	if len(notes) < minSamples {
		return nil
	}

	// count notes a word appears in, not raw occurrences
	seen := map[string]int{}
	for _, n := range notes {
		inNote := map[string]bool{}
		for _, w := range wordRe.FindAllString(strings.ToLower(n.Text), -1) {
			if len(w) <= 3 || stopwords[w] || inNote[w] {
				continue
			}
			inNote[w] = true
			seen[w]++
		}
	}

	type wc struct {
		word  string
		count int
	}
	var frequent []wc
	for w, c := range seen {
		if c >= 3 {
			frequent = append(frequent, wc{w, c})
		}
	}
	sort.Slice(frequent, func(i, j int) bool {
		if frequent[i].count != frequent[j].count {
			return frequent[i].count > frequent[j].count
		}
		return frequent[i].word < frequent[j].word
	})

	if len(frequent) > 3 {
		frequent = frequent[:3]
	}

	var out []Pattern
	for _, f := range frequent {
		out = append(out, Pattern{
			Type:       "recurring_topic",
			Label:      fmt.Sprintf("%q comes up in %d of your recent notes", f.word, f.count),
			Confidence: float64(f.count) / float64(len(notes)),
		})
	}
	return out
}

func completionPattern(done, delivered int) (Pattern, bool) {
	if delivered < 4 {
		return Pattern{}, false
	}

	ratio := float64(done) / float64(delivered)
	if ratio < 0.5 {
		return Pattern{
			Type:       "reminder_follow_through",
			Label:      "Reminders often slip — shorter lead times might help",
			Confidence: 1 - ratio,
		}, true
	}
	if ratio > 0.8 {
		return Pattern{
			Type:       "reminder_follow_through",
			Label:      "You follow through on almost every reminder",
			Confidence: ratio,
		}, true
	}
	return Pattern{}, false
}
