package normalize

import (
	"fmt"
	"strings"
	"time"
)

// dateTimeLayouts are tried in order when parsing upstream timestamps.
var dateTimeLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"2006-01-02 15:04:05",
	"2006-01-02 15:04",
	"2006-01-02 3:04 PM",
	"2006-01-02",
}

// ParseDateTime parses an upstream date-time string. Timestamps with an
// offset keep it; timestamps without one are read as UTC wall-clock time.
func ParseDateTime(raw string) (time.Time, error) {
	s := strings.TrimSpace(raw)
	for _, layout := range dateTimeLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unable to parse datetime %q", raw)
}

// IsPlusOneDay reports whether the arrival calendar date is strictly after
// the departure calendar date. Each date is read in its own offset, so an
// arrival that looks earlier only because of a time zone change on the same
// date is not a next-day arrival. Unparseable input yields false.
func IsPlusOneDay(departure, arrival string) bool {
	plusOne, _ := plusOneDay(departure, arrival)
	return plusOne
}

func plusOneDay(departure, arrival string) (bool, error) {
	dep, err := ParseDateTime(departure)
	if err != nil {
		return false, err
	}
	arr, err := ParseDateTime(arrival)
	if err != nil {
		return false, err
	}
	return calendarDate(arr).After(calendarDate(dep)), nil
}

// calendarDate strips the clock while keeping the local calendar day.
func calendarDate(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
