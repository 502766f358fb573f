// File: utils/conversion.go
package utils

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Date and clock parsing for the scheduling boundary. Callers and
// legacy records present dates as "YYYY-MM-DD" or "DD-MM-YYYY" and
// times as 24-hour "HH:MM" or "h:mm AM/PM"; everything is normalized
// here once, so nothing downstream ever re-sniffs formats.

const (
	// DateLayout is the canonical wire format for calendar dates.
	DateLayout = "2006-01-02"

	legacyDateLayout = "02-01-2006"
)

// ParseDate parses a calendar date in either supported textual form
// and returns it normalized to midnight UTC.
func ParseDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, fmt.Errorf("empty date")
	}

	layout := DateLayout
	if len(s) == len(legacyDateLayout) && strings.IndexByte(s, '-') == 2 {
		layout = legacyDateLayout
	}
	t, err := time.Parse(layout, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q: %w", s, err)
	}
	return t, nil
}

// FormatDate renders a date in the canonical "YYYY-MM-DD" form.
func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}

// DateOnly strips the time-of-day component, keeping the calendar date
// as observed in t's own location but pinned to midnight UTC so that
// date equality never shifts across timezones.
func DateOnly(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// ParseClock parses a time of day into minutes from midnight.
// Accepted forms: "09:30", "9:30", "14:05", "9:30 AM", "12:00 PM".
func ParseClock(s string) (int, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, fmt.Errorf("empty time")
	}

	meridiem := ""
	upper := strings.ToUpper(s)
	for _, suffix := range []string{"AM", "PM"} {
		if strings.HasSuffix(upper, suffix) {
			meridiem = suffix
			s = strings.TrimSpace(s[:len(s)-len(suffix)])
			break
		}
	}

	parts := strings.Split(s, ":")
	if len(parts) != 2 {
		return 0, fmt.Errorf("invalid time %q", s)
	}
	hour, err := strconv.Atoi(strings.TrimSpace(parts[0]))
	if err != nil {
		return 0, fmt.Errorf("invalid hour in %q", s)
	}
	minute, err := strconv.Atoi(strings.TrimSpace(parts[1]))
	if err != nil {
		return 0, fmt.Errorf("invalid minute in %q", s)
	}
	if minute < 0 || minute > 59 {
		return 0, fmt.Errorf("minute out of range in %q", s)
	}

	switch meridiem {
	case "AM":
		if hour < 1 || hour > 12 {
			return 0, fmt.Errorf("hour out of range in %q", s)
		}
		if hour == 12 {
			hour = 0
		}
	case "PM":
		if hour < 1 || hour > 12 {
			return 0, fmt.Errorf("hour out of range in %q", s)
		}
		if hour != 12 {
			hour += 12
		}
	default:
		if hour < 0 || hour > 23 {
			return 0, fmt.Errorf("hour out of range in %q", s)
		}
	}

	return hour*60 + minute, nil
}

// FormatClock renders minutes-from-midnight as zero-padded 24-hour
// "HH:MM". Lexicographic order of the output matches chronological
// order of the input.
func FormatClock(minutes int) string {
	return fmt.Sprintf("%02d:%02d", minutes/60, minutes%60)
}

// MinuteOfDay returns t's time of day in minutes from midnight.
func MinuteOfDay(t time.Time) int {
	return t.Hour()*60 + t.Minute()
}
