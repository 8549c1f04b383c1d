// Package calendar answers whether a calendar day falls inside a GoWild
// blackout period.
//
// A Calendar holds an immutable table of inclusive periods. Membership is
// tested by lexical comparison of zero-padded YYYY-MM-DD strings, which is
// only correct because every date in the table is validated to that format.
package calendar

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/flight-search/flight-normalization-service/internal/domain"
	"github.com/flight-search/flight-normalization-service/internal/infrastructure/timeutil"
)

// MaxRangeDays is the largest number of days Range will annotate.
const MaxRangeDays = 366

var errEmptyTable = errors.New("blackout table is empty")

// Calendar is a read-only blackout table. It is safe for concurrent use.
type Calendar struct {
	periods []domain.BlackoutPeriod
}

// New validates periods and builds a Calendar over a private copy of them.
func New(periods []domain.BlackoutPeriod) (*Calendar, error) {
	for i, p := range periods {
		if err := validatePeriod(p); err != nil {
			return nil, fmt.Errorf("blackout period %d: %w", i, err)
		}
	}

	owned := make([]domain.BlackoutPeriod, len(periods))
	copy(owned, periods)
	return &Calendar{periods: owned}, nil
}

// Default returns the calendar over the built-in table.
func Default() *Calendar {
	c, err := New(defaultPeriods)
	if err != nil {
		panic("calendar: invalid built-in table: " + err.Error())
	}
	return c
}

type tableFile struct {
	BlackoutPeriods []domain.BlackoutPeriod `yaml:"blackout_periods"`
}

// LoadFile reads a YAML table of the form
//
//	blackout_periods:
//	  - start_date: "2025-01-01"
//	    end_date: "2025-01-01"
//	    description: New Year's Day
//
// and returns a Calendar over it. An empty table is rejected.
func LoadFile(path string) (*Calendar, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read blackout table: %w", err)
	}

	var file tableFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("parse blackout table %s: %w", path, err)
	}
	if len(file.BlackoutPeriods) == 0 {
		return nil, fmt.Errorf("%s: %w", path, errEmptyTable)
	}

	return New(file.BlackoutPeriods)
}

// IsBlackout reports whether date falls inside any period. Only the first ten
// characters are considered, so full ISO timestamps are accepted. Empty or
// malformed input is never blacked out.
func (c *Calendar) IsBlackout(date string) bool {
	_, ok := c.Lookup(date)
	return ok
}

// Lookup returns the first period containing date.
func (c *Calendar) Lookup(date string) (domain.BlackoutPeriod, bool) {
	day := dayPrefix(date)
	if day == "" {
		return domain.BlackoutPeriod{}, false
	}

	for _, p := range c.periods {
		if p.Contains(day) {
			return p, true
		}
	}
	return domain.BlackoutPeriod{}, false
}

// Day annotates a single date.
func (c *Calendar) Day(date string) domain.DayEntry {
	entry := domain.DayEntry{Date: dayPrefix(date)}
	if p, ok := c.Lookup(date); ok {
		entry.Blackout = true
		entry.Description = p.Description
	}
	return entry
}

// Range annotates every day from one date to another, both inclusive.
func (c *Calendar) Range(from, to string) ([]domain.DayEntry, error) {
	days, err := timeutil.DaysBetween(from, to)
	if err != nil {
		return nil, domain.WrapInvalidRequest("%v", err)
	}
	if days < 0 {
		return nil, domain.WrapInvalidRequest("from %s is after to %s", from, to)
	}
	if days+1 > MaxRangeDays {
		return nil, domain.WrapInvalidRequest("range of %d days exceeds the maximum of %d", days+1, MaxRangeDays)
	}

	dates, err := timeutil.DateRange(from, to)
	if err != nil {
		return nil, domain.WrapInvalidRequest("%v", err)
	}

	entries := make([]domain.DayEntry, 0, len(dates))
	for _, d := range dates {
		entries = append(entries, c.Day(d))
	}
	return entries, nil
}

// Periods returns a copy of the table.
func (c *Calendar) Periods() []domain.BlackoutPeriod {
	out := make([]domain.BlackoutPeriod, len(c.periods))
	copy(out, c.periods)
	return out
}

func dayPrefix(date string) string {
	if len(date) < len(timeutil.DateLayout) {
		return ""
	}
	return date[:len(timeutil.DateLayout)]
}

func validatePeriod(p domain.BlackoutPeriod) error {
	if _, err := timeutil.ParseDate(p.StartDate); err != nil {
		return fmt.Errorf("start_date: %w", err)
	}
	if _, err := timeutil.ParseDate(p.EndDate); err != nil {
		return fmt.Errorf("end_date: %w", err)
	}
	if p.StartDate > p.EndDate {
		return fmt.Errorf("start_date %s is after end_date %s", p.StartDate, p.EndDate)
	}
	return nil
}
