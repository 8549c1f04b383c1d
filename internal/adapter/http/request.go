// Package http provides the HTTP handler layer for the flight normalization API.
// It handles request parsing, validation, and response formatting.
package http

import (
	"errors"
	"fmt"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/flight-search/flight-normalization-service/internal/domain"
)

// ValidationError represents a field-level validation error.
type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationErrors holds multiple validation errors.
type ValidationErrors struct {
	Errors []ValidationError `json:"errors"`
}

// Error implements the error interface.
func (v *ValidationErrors) Error() string {
	if len(v.Errors) == 0 {
		return "validation failed"
	}
	return v.Errors[0].Message
}

// Add adds a validation error.
func (v *ValidationErrors) Add(field, message string) {
	v.Errors = append(v.Errors, ValidationError{
		Field:   field,
		Message: message,
	})
}

// HasErrors returns true if there are validation errors.
func (v *ValidationErrors) HasErrors() bool {
	return len(v.Errors) > 0
}

// ToMap converts validation errors to a map for API response.
func (v *ValidationErrors) ToMap() map[string]string {
	result := make(map[string]string, len(v.Errors))
	for _, e := range v.Errors {
		result[e.Field] = e.Message
	}
	return result
}

// errOrNil returns v as an error, or nil when it holds no errors.
func (v *ValidationErrors) errOrNil() error {
	if v.HasErrors() {
		return v
	}
	return nil
}

// bindPipelineParams reads the filter and sort query parameters.
func bindPipelineParams(c echo.Context) (PipelineParams, error) {
	var (
		p           PipelineParams
		maxStops    int
		maxDuration int
	)

	b := echo.QueryParamsBinder(c).
		String(paramSort, &p.Sort).
		Bool(paramNonstopOnly, &p.NonstopOnly).
		Bool(paramGoWildOnly, &p.GoWildOnly).
		Bool(paramExcludeBlackout, &p.ExcludeBlackout).
		Int(paramMaxStops, &maxStops).
		Int(paramMaxDuration, &maxDuration)

	errs := &ValidationErrors{}
	for _, err := range b.BindErrors() {
		addBindingError(errs, err)
	}

	if c.QueryParam(paramMaxStops) != "" {
		p.MaxStops = &maxStops
	}
	if c.QueryParam(paramMaxDuration) != "" {
		p.MaxDurationMinutes = &maxDuration
	}

	p.validate(errs)
	return p, errs.errOrNil()
}

// bindSearchParams reads the search query parameters.
func bindSearchParams(c echo.Context) (SearchParams, error) {
	errs := &ValidationErrors{}

	pp, err := bindPipelineParams(c)
	if err != nil {
		mergeValidationErrors(errs, err)
	}

	p := SearchParams{
		PipelineParams: pp,
		Origin:         strings.ToUpper(strings.TrimSpace(c.QueryParam(paramOrigin))),
		Destination:    strings.ToUpper(strings.TrimSpace(c.QueryParam(paramDestination))),
		Date:           strings.TrimSpace(c.QueryParam(paramDate)),
	}
	p.validate(errs)
	return p, errs.errOrNil()
}

// bindRangeParams reads the from and to query parameters.
func bindRangeParams(c echo.Context) (RangeParams, error) {
	p := RangeParams{
		From: strings.TrimSpace(c.QueryParam(paramFrom)),
		To:   strings.TrimSpace(c.QueryParam(paramTo)),
	}

	errs := &ValidationErrors{}
	validateDate(errs, paramFrom, p.From)
	validateDate(errs, paramTo, p.To)
	return p, errs.errOrNil()
}

func (p *PipelineParams) validate(errs *ValidationErrors) {
	if _, err := domain.ParseSortOption(p.Sort); err != nil {
		errs.Add(paramSort, "sort must be one of: departure, duration, fare, stops")
	}
	if p.MaxStops != nil && *p.MaxStops < 0 {
		errs.Add(paramMaxStops, "max_stops must be a non-negative number")
	}
	if p.MaxDurationMinutes != nil && *p.MaxDurationMinutes < 0 {
		errs.Add(paramMaxDuration, "max_duration must be a non-negative number")
	}
}

func (p *SearchParams) validate(errs *ValidationErrors) {
	switch {
	case p.Origin == "":
		errs.Add(paramOrigin, "origin is required")
	case !domain.IsIATACode(p.Origin):
		errs.Add(paramOrigin, "origin must be a valid 3-letter IATA airport code")
	}

	if p.Destination != "" {
		switch {
		case !domain.IsIATACode(p.Destination):
			errs.Add(paramDestination, "destination must be a valid 3-letter IATA airport code")
		case p.Destination == p.Origin:
			errs.Add(paramDestination, "origin and destination must be different")
		}
	}

	validateDate(errs, paramDate, p.Date)
}

func validateDate(errs *ValidationErrors, field, value string) {
	switch {
	case value == "":
		errs.Add(field, field+" is required")
	case !domain.IsCalendarDate(value):
		errs.Add(field, field+" must be a valid date in YYYY-MM-DD format")
	}
}

func addBindingError(errs *ValidationErrors, err error) {
	var bindErr *echo.BindingError
	if errors.As(err, &bindErr) {
		errs.Add(bindErr.Field, fmt.Sprintf("%s has an invalid value", bindErr.Field))
		return
	}
	errs.Add("query", err.Error())
}

func mergeValidationErrors(errs *ValidationErrors, err error) {
	var verrs *ValidationErrors
	if errors.As(err, &verrs) {
		errs.Errors = append(errs.Errors, verrs.Errors...)
		return
	}
	errs.Add("query", err.Error())
}
