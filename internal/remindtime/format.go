package remindtime

import (
	"fmt"
	"time"
)

// FormatForDisplay re-renders an already-resolved time relative to now, for
// list views and push payloads. Unlike the resolver's labels, zero minutes are
// dropped here ("3 PM", not "3:00 PM").
func FormatForDisplay(t, now time.Time) string {
	day := ""
	switch {
	case sameDate(t, now):
		day = "Today"
	case sameDate(t, now.AddDate(0, 0, 1)):
		day = "Tomorrow"
	default:
		day = t.Weekday().String()
	}
	return day + " at " + shortClockLabel(t)
}

func sameDate(a, b time.Time) bool {
	return a.Year() == b.Year() && a.Month() == b.Month() && a.Day() == b.Day()
}

func shortClockLabel(t time.Time) string {
	h := t.Hour() % 12
	if h == 0 {
		h = 12
	}
	ampm := "AM"
	if t.Hour() >= 12 {
		ampm = "PM"
	}
	if t.Minute() == 0 {
		return fmt.Sprintf("%d %s", h, ampm)
	}
	return fmt.Sprintf("%d:%02d %s", h, t.Minute(), ampm)
}
