package ai

import "strings"

// BuildWeekendPrompt assembles the user message for plan generation.
func BuildWeekendPrompt(city string, patternLabels, placeNames []string) string {
	var b strings.Builder

	b.WriteString("city: ")
	if city == "" {
		city = "unknown"
	}
	b.WriteString(city)
	b.WriteString("\n")

	b.WriteString("behavioral_patterns:\n")
	if len(patternLabels) == 0 {
		b.WriteString("- none detected yet\n")
	}
	for _, p := range patternLabels {
		b.WriteString("- ")
		b.WriteString(p)
		b.WriteString("\n")
	}

	b.WriteString("nearby_places:\n")
	if len(placeNames) == 0 {
		b.WriteString("- none available\n")
	}
	for _, p := range placeNames {
		b.WriteString("- ")
		b.WriteString(p)
		b.WriteString("\n")
	}

	return b.String()
}
