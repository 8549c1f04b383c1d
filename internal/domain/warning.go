package domain

import "fmt"

// ParseWarning records a field that was defaulted during normalization.
type ParseWarning struct {
	Field  string `json:"field"`
	Value  string `json:"value"`
	Reason string `json:"reason"`
}

// String implements fmt.Stringer.
func (w ParseWarning) String() string {
	return fmt.Sprintf("%s=%q: %s", w.Field, w.Value, w.Reason)
}
