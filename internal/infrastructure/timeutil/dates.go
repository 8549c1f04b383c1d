package timeutil

import (
	"fmt"
	"time"
)

// DateLayout is the zero-padded calendar date format used across the service.
const DateLayout = "2006-01-02"

// ParseDate parses a YYYY-MM-DD calendar date at midnight UTC.
func ParseDate(value string) (time.Time, error) {
	t, err := time.Parse(DateLayout, value)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q: expected YYYY-MM-DD", value)
	}
	return t, nil
}

// FormatDate renders the calendar date of t as YYYY-MM-DD in t's own location.
func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}

// Today returns the current calendar date of the clock in UTC.
func Today(c Clock) string {
	return FormatDate(c.Now().UTC())
}

// AddDays shifts a YYYY-MM-DD date by n calendar days.
func AddDays(date string, n int) (string, error) {
	t, err := ParseDate(date)
	if err != nil {
		return "", err
	}
	return FormatDate(t.AddDate(0, 0, n)), nil
}

// DaysBetween returns the number of calendar days from one date to another.
// The result is negative when to precedes from.
func DaysBetween(from, to string) (int, error) {
	start, err := ParseDate(from)
	if err != nil {
		return 0, err
	}
	end, err := ParseDate(to)
	if err != nil {
		return 0, err
	}
	return int(end.Sub(start).Hours() / 24), nil
}

// DateRange lists every date from one date to another, both inclusive.
// An inverted range yields no dates.
func DateRange(from, to string) ([]string, error) {
	n, err := DaysBetween(from, to)
	if err != nil {
		return nil, err
	}
	if n < 0 {
		return []string{}, nil
	}

	start, _ := ParseDate(from)
	dates := make([]string, 0, n+1)
	for i := 0; i <= n; i++ {
		dates = append(dates, FormatDate(start.AddDate(0, 0, i)))
	}
	return dates, nil
}
