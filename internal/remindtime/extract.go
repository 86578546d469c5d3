package remindtime

import (
	"regexp"
	"strings"
)

// expressionPatterns is the extraction priority list. Earlier classes win over
// later ones regardless of position in the text; within one class the leftmost
// match wins. Extraction is wider than resolution on purpose: deadline and
// calendar-date phrases are surfaced to the caller even though the resolver
// handles them through its fallback.
var expressionPatterns = []*regexp.Regexp{
	// relative short durations
	regexp.MustCompile(`(?i)\bin\s+\d+\s+min(?:ute)?s?\b`),
	regexp.MustCompile(`(?i)\bin\s+\d+\s+(?:hours?|hrs?)\b`),
	regexp.MustCompile(`(?i)\bin\s+(?:an|one)\s+hour\b`),
	regexp.MustCompile(`(?i)\bin\s+half\s+an\s+hour\b`),
	// clock time with qualifier, then bare clock time
	regexp.MustCompile(`(?i)\b(?:at|by|around)\s+\d{1,2}(?::\d{2})?\s*(?:am|pm)?\b`),
	regexp.MustCompile(`(?i)\b\d{1,2}(?::\d{2})?\s*(?:am|pm)\b`),
	// day-part references
	regexp.MustCompile(`(?i)\b(?:today|tonight|tomorrow|this\s+(?:evening|morning|afternoon|weekend)|next\s+(?:week|month))\b`),
	// weekdays, optionally "next"-prefixed
	regexp.MustCompile(`(?i)\b(?:next\s+)?(?:monday|tuesday|wednesday|thursday|friday|saturday|sunday|mon|tues?|wed|thur?s?|fri|sat|sun)\b`),
	// calendar dates
	regexp.MustCompile(`(?i)\bon\s+the\s+\d{1,2}(?:st|nd|rd|th)\b`),
	regexp.MustCompile(`(?i)\b(?:january|february|march|april|may|june|july|august|september|october|november|december)\s+\d{1,2}\b`),
	// bare day parts
	regexp.MustCompile(`(?i)\b(?:morning|afternoon|evening|night)\b`),
	// deadline phrases
	regexp.MustCompile(`(?i)\bby\s+end\s+of\s+(?:the\s+)?(?:day|week|month)\b`),
	regexp.MustCompile(`(?i)\b(?:before|until|due)\b[^.,;!?]*`),
}

// ExtractTimeExpression scans free text for the first recognizable time
// expression. The second return is false when the text carries no expression
// at all, in which case there is nothing to schedule.
func ExtractTimeExpression(text string) (string, bool) {
	for _, re := range expressionPatterns {
		if m := re.FindString(text); m != "" {
			return strings.TrimSpace(m), true
		}
	}
	return "", false
}
