package remindtime

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// ReminderInfo is the resolver output: a concrete future moment plus the label
// the client shows next to the note.
type ReminderInfo struct {
	ResolvedAt  time.Time `json:"resolved_at"`
	DisplayText string    `json:"display_text"`
	IsPrecise   bool      `json:"is_precise"`
}

type clockTime struct {
	hour     int
	minute   int
	explicit bool
}

// A dayRule pairs a phrase predicate with its resolution. Rules are evaluated
// in table order; the first match wins, so precedence lives in the table and
// not in control flow.
type dayRule struct {
	name    string
	matches func(p string) bool
	resolve func(p string, now time.Time, tod clockTime) ReminderInfo
}

var (
	reClockMinAMPM = regexp.MustCompile(`\b(\d{1,2}):(\d{2})\s*(am|pm)\b`)
	reClockAMPM    = regexp.MustCompile(`\b(\d{1,2})\s*(am|pm)\b`)
	reClock24      = regexp.MustCompile(`\b(\d{1,2}):(\d{2})\b`)

	reInOneHour   = regexp.MustCompile(`\bin\s+(?:an|one|1)\s+hour\b`)
	reInHalfHour  = regexp.MustCompile(`\bin\s+(?:half\s+an\s+hour|30\s+min(?:ute)?s?)\b`)
	reInNHours    = regexp.MustCompile(`\bin\s+(\d+)\s+(?:hours?|hrs?)\b`)
	reInNMinutes  = regexp.MustCompile(`\bin\s+(\d+)\s+min(?:ute)?s?\b`)
	reNextWeekday = regexp.MustCompile(`\bnext\s+(monday|tuesday|wednesday|thursday|friday|saturday|sunday|mon|tues?|wed|thur?s?|fri|sat|sun)\b`)
	reBareWeekday = regexp.MustCompile(`\b(monday|tuesday|wednesday|thursday|friday|saturday|sunday|mon|tues?|wed|thur?s?|fri|sat|sun)\b`)
)

// dayRules is the precedence table for day resolution. Order matters: "next
// week" must run before the weekday rules, and the duration short-circuits sit
// between the calendar words and the weekday arithmetic.
var dayRules = []dayRule{
	{
		name:    "today",
		matches: contains("today"),
		resolve: func(p string, now time.Time, tod clockTime) ReminderInfo {
			return rollSameDay(now, tod, "Today")
		},
	},
	{
		name:    "tonight",
		matches: contains("tonight"),
		resolve: func(p string, now time.Time, tod clockTime) ReminderInfo {
			if !tod.explicit {
				tod = clockTime{hour: 20, minute: 0}
			}
			return rollSameDay(now, tod, "Tonight")
		},
	},
	{
		name:    "tomorrow",
		matches: contains("tomorrow"),
		resolve: func(p string, now time.Time, tod clockTime) ReminderInfo {
			return onDay(now, 1, "Tomorrow", tod)
		},
	},
	{
		name:    "next week",
		matches: contains("next week"),
		resolve: func(p string, now time.Time, tod clockTime) ReminderInfo {
			target := now.AddDate(0, 0, 7)
			return onDay(now, 7, "Next "+target.Weekday().String(), tod)
		},
	},
	{
		name:    "in one hour",
		matches: reInOneHour.MatchString,
		resolve: func(p string, now time.Time, tod clockTime) ReminderInfo {
			return durationInfo(now, time.Hour, "In 1 hour")
		},
	},
	{
		name:    "in half an hour",
		matches: reInHalfHour.MatchString,
		resolve: func(p string, now time.Time, tod clockTime) ReminderInfo {
			return durationInfo(now, 30*time.Minute, "In 30 minutes")
		},
	},
	{
		name:    "in n hours",
		matches: reInNHours.MatchString,
		resolve: func(p string, now time.Time, tod clockTime) ReminderInfo {
			n, _ := strconv.Atoi(reInNHours.FindStringSubmatch(p)[1])
			return durationInfo(now, time.Duration(n)*time.Hour, "In "+plural(n, "hour"))
		},
	},
	{
		name:    "in n minutes",
		matches: reInNMinutes.MatchString,
		resolve: func(p string, now time.Time, tod clockTime) ReminderInfo {
			n, _ := strconv.Atoi(reInNMinutes.FindStringSubmatch(p)[1])
			return durationInfo(now, time.Duration(n)*time.Minute, "In "+plural(n, "minute"))
		},
	},
	{
		name:    "this weekend",
		matches: contains("this weekend"),
		resolve: func(p string, now time.Time, tod clockTime) ReminderInfo {
			days := int(time.Saturday-now.Weekday()+7) % 7
			if days == 0 {
				days = 7 // already Saturday: always the next one, never today
			}
			return onDay(now, days, "Saturday", tod)
		},
	},
	{
		name:    "next weekday",
		matches: reNextWeekday.MatchString,
		resolve: func(p string, now time.Time, tod clockTime) ReminderInfo {
			target := weekdayFromToken(reNextWeekday.FindStringSubmatch(p)[1])
			days := int(target-now.Weekday()+7) % 7
			if days == 0 {
				days = 7
			}
			days += 7 // "next Monday" is the Monday after the upcoming one
			return onDay(now, days, "Next "+target.String(), tod)
		},
	},
	{
		name:    "bare weekday",
		matches: reBareWeekday.MatchString,
		resolve: func(p string, now time.Time, tod clockTime) ReminderInfo {
			target := weekdayFromToken(reBareWeekday.FindStringSubmatch(p)[1])
			days := int(target-now.Weekday()+7) % 7
			if days == 0 {
				days = 7 // a bare weekday never means today
			}
			return onDay(now, days, target.String(), tod)
		},
	},
}

// Resolve converts a natural-language reminder phrase into a concrete future
// time. It is a pure function of (phrase, now); callers pass the clock in.
// Every input resolves to something: when no rule matches, the fallback is
// tomorrow at the default hour with IsPrecise=false so the client can ask the
// user to confirm.
func Resolve(phrase string, now time.Time) ReminderInfo {
	p := strings.ToLower(phrase)
	tod := extractClockTime(p)

	for _, rule := range dayRules {
		if rule.matches(p) {
			return rule.resolve(p, now, tod)
		}
	}

	info := onDay(now, 1, "Tomorrow", tod)
	info.IsPrecise = false
	return info
}

// extractClockTime pulls an explicit time of day out of the phrase. Lookup
// order: "3:15pm", then "3pm", then bare 24-hour "15:15". Defaults to 09:00.
func extractClockTime(p string) clockTime {
	if m := reClockMinAMPM.FindStringSubmatch(p); m != nil {
		h, _ := strconv.Atoi(m[1])
		min, _ := strconv.Atoi(m[2])
		return clockTime{hour: to24(h, m[3]), minute: min, explicit: true}
	}
	if m := reClockAMPM.FindStringSubmatch(p); m != nil {
		h, _ := strconv.Atoi(m[1])
		return clockTime{hour: to24(h, m[2]), explicit: true}
	}
	if m := reClock24.FindStringSubmatch(p); m != nil {
		h, _ := strconv.Atoi(m[1])
		min, _ := strconv.Atoi(m[2])
		if h < 24 && min < 60 {
			return clockTime{hour: h, minute: min, explicit: true}
		}
	}
	return clockTime{hour: 9}
}

func to24(h int, ampm string) int {
	if ampm == "pm" && h != 12 {
		return h + 12
	}
	if ampm == "am" && h == 12 {
		return 0
	}
	return h
}

// onDay combines a day offset with the time of day and builds the label.
func onDay(now time.Time, days int, label string, tod clockTime) ReminderInfo {
	d := now.AddDate(0, 0, days)
	at := time.Date(d.Year(), d.Month(), d.Day(), tod.hour, tod.minute, 0, 0, now.Location())
	return ReminderInfo{
		ResolvedAt:  at,
		DisplayText: label + " at " + clockLabel(at),
		IsPrecise:   true,
	}
}

// rollSameDay resolves onto the current date, then rolls forward one day when
// the moment has already passed. Rollover is deliberately limited to the
// today/tonight rules; other rules can still land in the past at week
// boundaries and are left alone.
func rollSameDay(now time.Time, tod clockTime, label string) ReminderInfo {
	info := onDay(now, 0, label, tod)
	if !info.ResolvedAt.After(now) {
		info.ResolvedAt = info.ResolvedAt.AddDate(0, 0, 1)
		info.DisplayText = "Tomorrow at " + clockLabel(info.ResolvedAt)
	}
	return info
}

func durationInfo(now time.Time, d time.Duration, label string) ReminderInfo {
	return ReminderInfo{ResolvedAt: now.Add(d), DisplayText: label, IsPrecise: true}
}

func plural(n int, unit string) string {
	if n == 1 {
		return fmt.Sprintf("1 %s", unit)
	}
	return fmt.Sprintf("%d %ss", n, unit)
}

// weekdayFromToken maps a (possibly abbreviated) weekday token to time.Weekday.
func weekdayFromToken(token string) time.Weekday {
	switch token[:3] {
	case "sun":
		return time.Sunday
	case "mon":
		return time.Monday
	case "tue":
		return time.Tuesday
	case "wed":
		return time.Wednesday
	case "thu":
		return time.Thursday
	case "fri":
		return time.Friday
	default:
		return time.Saturday
	}
}

// clockLabel renders the resolver's clock labels: 12-hour, minutes always
// shown, e.g. "9:00 AM", "3:15 PM".
func clockLabel(t time.Time) string {
	h := t.Hour() % 12
	if h == 0 {
		h = 12
	}
	ampm := "AM"
	if t.Hour() >= 12 {
		ampm = "PM"
	}
	return fmt.Sprintf("%d:%02d %s", h, t.Minute(), ampm)
}

func contains(sub string) func(string) bool {
	return func(p string) bool { return strings.Contains(p, sub) }
}
