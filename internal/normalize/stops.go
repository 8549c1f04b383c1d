package normalize

import (
	"errors"
	"regexp"
	"strconv"
	"strings"
)

// DefaultStops is assumed when the source does not state a stop count.
// A missing "nonstop" marker is treated as at least one stop.
const DefaultStops = 1

var (
	nonstopPattern = regexp.MustCompile(`(?i)\bnon-?stop\b`)
	integerPattern = regexp.MustCompile(`\d+`)

	errUnrecognizedStops = errors.New("no stop count")
)

// NormalizeStops converts a raw stop description to a count.
// "Nonstop" (any case) and "0" yield 0, otherwise the first integer in the
// text is used, and text without one yields DefaultStops.
func NormalizeStops(raw string) int {
	n, _ := parseStops(raw)
	return n
}

func parseStops(raw string) (int, error) {
	s := strings.TrimSpace(raw)
	if s == "0" || nonstopPattern.MatchString(s) {
		return 0, nil
	}

	m := integerPattern.FindString(s)
	if m == "" {
		return DefaultStops, errUnrecognizedStops
	}
	n, err := strconv.Atoi(m)
	if err != nil {
		return DefaultStops, errUnrecognizedStops
	}
	return n, nil
}
