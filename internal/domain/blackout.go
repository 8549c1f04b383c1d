package domain

// BlackoutPeriod is an inclusive range of calendar days during which GoWild
// fares cannot be redeemed. Dates are zero-padded YYYY-MM-DD strings.
type BlackoutPeriod struct {
	StartDate   string `json:"start_date" yaml:"start_date"`
	EndDate     string `json:"end_date" yaml:"end_date"`
	Description string `json:"description" yaml:"description"`
}

// Contains reports whether the YYYY-MM-DD day lies inside the period.
// Lexical comparison equals chronological order for zero-padded dates.
func (p BlackoutPeriod) Contains(day string) bool {
	return p.StartDate <= day && day <= p.EndDate
}

// DayEntry is a calendar-annotated day for date pickers.
type DayEntry struct {
	Date        string `json:"date"`
	Blackout    bool   `json:"blackout"`
	Description string `json:"description,omitempty"`
}
