package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors for the service boundary. The normalization core itself
// never returns errors; these cover request validation and upstream access.
var (
	// ErrInvalidRequest indicates the request parameters failed validation.
	ErrInvalidRequest = errors.New("invalid request")

	// ErrSourceUnavailable indicates the flight source could not be reached.
	ErrSourceUnavailable = errors.New("flight source unavailable")

	// ErrSourceTimeout indicates the flight source did not answer in time.
	ErrSourceTimeout = errors.New("flight source timeout")
)

// SourceError wraps an error returned by a flight source.
type SourceError struct {
	Source    string
	Err       error
	Retryable bool
}

// Error implements the error interface.
func (e *SourceError) Error() string {
	return fmt.Sprintf("source %s: %v", e.Source, e.Err)
}

// Unwrap returns the underlying error.
func (e *SourceError) Unwrap() error {
	return e.Err
}

// NewSourceError creates a non-retryable SourceError.
func NewSourceError(source string, err error) *SourceError {
	return &SourceError{Source: source, Err: err}
}

// NewRetryableSourceError creates a SourceError that may succeed on retry.
func NewRetryableSourceError(source string, err error) *SourceError {
	return &SourceError{Source: source, Err: err, Retryable: true}
}

// NewSourceTimeoutError creates a retryable timeout error for the source.
func NewSourceTimeoutError(source string) *SourceError {
	return NewRetryableSourceError(source, ErrSourceTimeout)
}

// NewSourceUnavailableError creates a retryable unavailability error for the source.
func NewSourceUnavailableError(source string) *SourceError {
	return NewRetryableSourceError(source, ErrSourceUnavailable)
}

// ValidationError describes a single invalid request field.
type ValidationError struct {
	Field   string
	Message string
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	return e.Field + ": " + e.Message
}

// Unwrap ties every ValidationError to ErrInvalidRequest.
func (e *ValidationError) Unwrap() error {
	return ErrInvalidRequest
}

// NewValidationError creates a ValidationError for the given field.
func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{Field: field, Message: message}
}

// WrapInvalidRequest formats a message wrapped around ErrInvalidRequest.
func WrapInvalidRequest(format string, args ...interface{}) error {
	return fmt.Errorf("%w: %s", ErrInvalidRequest, fmt.Sprintf(format, args...))
}

// IsInvalidRequest reports whether err is an invalid request error.
func IsInvalidRequest(err error) bool {
	return errors.Is(err, ErrInvalidRequest)
}

// IsSourceTimeout reports whether err is a source timeout.
func IsSourceTimeout(err error) bool {
	return errors.Is(err, ErrSourceTimeout)
}

// IsSourceUnavailable reports whether err is a source availability failure,
// including any SourceError that is not a timeout.
func IsSourceUnavailable(err error) bool {
	if errors.Is(err, ErrSourceUnavailable) {
		return true
	}
	var srcErr *SourceError
	return errors.As(err, &srcErr) && !errors.Is(err, ErrSourceTimeout)
}
