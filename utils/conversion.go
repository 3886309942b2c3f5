package utils

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

const (
	DateLayout  = "2006-01-02"
	ClockLayout = "15:04"
)

// ParseDate parses a "YYYY-MM-DD" date at midnight in loc.
func ParseDate(date string, loc *time.Location) (time.Time, error) {
	if loc == nil {
		loc = time.UTC
	}
	d, err := time.ParseInLocation(DateLayout, date, loc)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q: %w", date, err)
	}
	return d, nil
}

// ClockMinutes converts "HH:MM" into minutes from midnight. "24:00" is accepted as end of day.
func ClockMinutes(clock string) (int, error) {
	parts := strings.Split(clock, ":")
	if len(parts) != 2 || len(parts[0]) != 2 || len(parts[1]) != 2 {
		return 0, fmt.Errorf("invalid clock %q: expected HH:MM", clock)
	}
	h, err := strconv.Atoi(parts[0])
	if err != nil {
		return 0, fmt.Errorf("invalid clock %q: %w", clock, err)
	}
	m, err := strconv.Atoi(parts[1])
	if err != nil {
		return 0, fmt.Errorf("invalid clock %q: %w", clock, err)
	}
	if m < 0 || m > 59 || h < 0 || h > 24 || (h == 24 && m != 0) {
		return 0, fmt.Errorf("invalid clock %q: out of range", clock)
	}
	return h*60 + m, nil
}

// IsClock reports whether s is a valid "HH:MM" wall-clock time.
func IsClock(s string) bool {
	_, err := ClockMinutes(s)
	return err == nil
}

// IsDate reports whether s is a valid "YYYY-MM-DD" date.
func IsDate(s string) bool {
	_, err := time.Parse(DateLayout, s)
	return err == nil
}

// AtClock returns the wall-clock time on day (which must be midnight) for "HH:MM".
func AtClock(day time.Time, clock string) (time.Time, error) {
	mins, err := ClockMinutes(clock)
	if err != nil {
		return time.Time{}, err
	}
	return time.Date(day.Year(), day.Month(), day.Day(), 0, mins, 0, 0, day.Location()), nil
}

// FormatClock renders t as "HH:MM".
func FormatClock(t time.Time) string {
	return t.Format(ClockLayout)
}

// FormatEndClock renders the end of a range that began at start. An end at the following
// midnight is "24:00" so the range still reads as same-day.
func FormatEndClock(start, end time.Time) string {
	sy, sm, sd := start.Date()
	ey, em, ed := end.Date()
	nextDay := time.Date(sy, sm, sd+1, 0, 0, 0, 0, start.Location())
	if (ey != sy || em != sm || ed != sd) && end.Equal(nextDay) {
		return "24:00"
	}
	return FormatClock(end)
}
