package normalize

import (
	"errors"
	"math"
	"regexp"
	"strconv"
	"strings"
)

const (
	minutesPerHour = 60
	minutesPerDay  = 24 * minutesPerHour
)

var (
	errEmptyDuration        = errors.New("empty duration")
	errMalformedColon       = errors.New("malformed colon duration")
	errUnrecognizedDuration = errors.New("no day, hour or minute token")
)

// Human-readable duration tokens, each optional.
var (
	dayTokenPattern    = regexp.MustCompile(`(?i)(\d+)\s*days?`)
	hourTokenPattern   = regexp.MustCompile(`(?i)(\d+)\s*(?:hours?|hrs?)`)
	minuteTokenPattern = regexp.MustCompile(`(?i)(\d+)\s*min`)
)

// ParseDurationMinutes converts a raw duration string to total minutes.
//
// Colon-delimited strings ("D.HH:MM:SS", "HH:MM:SS", "HH:MM") are tried
// first; a '.' in the hour component separates days from hours. Otherwise
// the string is scanned for "N day(s)", "N hr(s)" and "N min" tokens and
// the present ones are summed. Anything unparseable yields 0.
func ParseDurationMinutes(raw string) int {
	minutes, _ := parseDuration(raw)
	return minutes
}

func parseDuration(raw string) (int, error) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return 0, errEmptyDuration
	}
	if strings.Contains(s, ":") {
		return parseColonDuration(s)
	}
	return parseHumanDuration(s)
}

// parseColonDuration handles "D.HH:MM[:SS]" style strings. Seconds are ignored.
func parseColonDuration(s string) (int, error) {
	parts := strings.Split(s, ":")
	if len(parts) < 2 {
		return 0, errMalformedColon
	}

	hourPart := strings.TrimSpace(parts[0])
	days := 0
	if dot := strings.Index(hourPart, "."); dot >= 0 {
		d, err := parseNonNegative(hourPart[:dot])
		if err != nil {
			return 0, errMalformedColon
		}
		days = d
		hourPart = hourPart[dot+1:]
	}

	hours, err := parseNonNegative(hourPart)
	if err != nil {
		return 0, errMalformedColon
	}
	minutes, err := parseNonNegative(parts[1])
	if err != nil {
		return 0, errMalformedColon
	}

	total, ok := addScaled(0, days, minutesPerDay)
	if ok {
		total, ok = addScaled(total, hours, minutesPerHour)
	}
	if ok {
		total, ok = addScaled(total, minutes, 1)
	}
	if !ok {
		return 0, errMalformedColon
	}
	return total, nil
}

func parseHumanDuration(s string) (int, error) {
	total := 0
	matched := false

	for _, tok := range []struct {
		pattern *regexp.Regexp
		factor  int
	}{
		{dayTokenPattern, minutesPerDay},
		{hourTokenPattern, minutesPerHour},
		{minuteTokenPattern, 1},
	} {
		m := tok.pattern.FindStringSubmatch(s)
		if m == nil {
			continue
		}
		n, err := strconv.Atoi(m[1])
		if err != nil {
			continue
		}
		var ok bool
		if total, ok = addScaled(total, n, tok.factor); !ok {
			return 0, errUnrecognizedDuration
		}
		matched = true
	}

	if !matched {
		return 0, errUnrecognizedDuration
	}
	return total, nil
}

// addScaled returns total + n*factor, or false when the result would not fit
// in an int. n and factor must be non-negative.
func addScaled(total, n, factor int) (int, bool) {
	if n > (math.MaxInt-total)/factor {
		return 0, false
	}
	return total + n*factor, true
}

func parseNonNegative(s string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, err
	}
	if n < 0 {
		return 0, errMalformedColon
	}
	return n, nil
}

// FormatDurationLabel renders a colon duration as "H hrs M min", omitting a
// zero segment and returning "0 min" when both are zero. Days fold into the
// hour count. Strings without a colon are returned unchanged.
func FormatDurationLabel(raw string) string {
	if !strings.Contains(raw, ":") {
		return raw
	}

	total, err := parseColonDuration(strings.TrimSpace(raw))
	if err != nil {
		total = 0
	}
	return FormatMinutes(total)
}

// FormatMinutes renders total minutes as "H hrs M min".
func FormatMinutes(total int) string {
	if total < 0 {
		total = 0
	}
	hours, mins := total/minutesPerHour, total%minutesPerHour

	var parts []string
	if hours > 0 {
		parts = append(parts, strconv.Itoa(hours)+" hrs")
	}
	if mins > 0 {
		parts = append(parts, strconv.Itoa(mins)+" min")
	}
	if len(parts) == 0 {
		return "0 min"
	}
	return strings.Join(parts, " ")
}
