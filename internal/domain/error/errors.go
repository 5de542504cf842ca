package error

import (
	"errors"
	"fmt"
)

// Error codes for standardized API responses
const (
	// 4xxx - Client errors
	CodeInvalidRequest      = 4000
	CodeInvalidInstant      = 4001
	CodeUnsupportedProvider = 4002
	CodeInvalidTimezone     = 4003
	CodeInvalidDuration     = 4004
	CodeInvalidNumber       = 4005
	CodeWebinarNotFound     = 4040
	CodeNoUpcomingWebinar   = 4041

	// 5xxx - Server errors
	CodeInternalServer  = 5000
	CodeInvalidSchedule = 5001
)

// Base error types
var (
	// ErrInvalidInstant is returned when a timestamp string cannot be parsed
	ErrInvalidInstant = errors.New("invalid instant")

	// ErrUnsupportedProvider is returned when a calendar provider is not google, outlook or apple
	ErrUnsupportedProvider = errors.New("unsupported calendar provider")

	// ErrInvalidTimezone is returned when a timezone identifier cannot be loaded
	ErrInvalidTimezone = errors.New("invalid timezone")

	// ErrInvalidDuration is returned when a minute count is missing or not an integer
	ErrInvalidDuration = errors.New("invalid duration")

	// ErrInvalidNumber is returned when a number to format is missing or not an integer
	ErrInvalidNumber = errors.New("invalid number")

	// ErrWebinarNotFound is returned when the requested webinar doesn't exist
	ErrWebinarNotFound = errors.New("webinar not found")

	// ErrNoUpcomingWebinar is returned when no active webinar is scheduled in the future
	ErrNoUpcomingWebinar = errors.New("no upcoming webinar")

	// ErrInvalidSchedule is returned when the configured webinar schedule is inconsistent
	ErrInvalidSchedule = errors.New("invalid webinar schedule")

	// ErrInvalidRequest is returned when the request format is invalid
	ErrInvalidRequest = errors.New("invalid request")

	// ErrInternalServer is returned for unexpected server-side errors
	ErrInternalServer = errors.New("internal server error")
)

// ErrorCode returns standardized error codes for known errors.
// Schedule errors are server-side even when they wrap a client sentinel.
func ErrorCode(err error) int {
	switch {
	case errors.Is(err, ErrInvalidSchedule):
		return CodeInvalidSchedule
	case errors.Is(err, ErrInvalidInstant):
		return CodeInvalidInstant
	case errors.Is(err, ErrUnsupportedProvider):
		return CodeUnsupportedProvider
	case errors.Is(err, ErrInvalidTimezone):
		return CodeInvalidTimezone
	case errors.Is(err, ErrInvalidDuration):
		return CodeInvalidDuration
	case errors.Is(err, ErrInvalidNumber):
		return CodeInvalidNumber
	case errors.Is(err, ErrWebinarNotFound):
		return CodeWebinarNotFound
	case errors.Is(err, ErrNoUpcomingWebinar):
		return CodeNoUpcomingWebinar
	case errors.Is(err, ErrInvalidRequest):
		return CodeInvalidRequest
	default:
		return CodeInternalServer
	}
}

// ParseError reports an instant string that could not be parsed
type ParseError struct {
	Input string
	Err   error
}

// Error implements the error interface for ParseError
func (e *ParseError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("cannot parse %q as an instant", e.Input)
	}
	return fmt.Sprintf("cannot parse %q as an instant: %v", e.Input, e.Err)
}

// Unwrap returns the underlying parser error
func (e *ParseError) Unwrap() error {
	return e.Err
}

// Is checks if the target error is an ErrInvalidInstant
func (e *ParseError) Is(target error) bool {
	return target == ErrInvalidInstant
}

// LogFields returns a map of fields for structured logging
func (e *ParseError) LogFields() map[string]any {
	fields := map[string]any{
		"error_type": "parse_error",
		"input":      e.Input,
		"error_code": CodeInvalidInstant,
	}
	if e.Err != nil {
		fields["error"] = e.Err.Error()
	}
	return fields
}

// NewParseError creates a new instant parse error
func NewParseError(input string, err error) error {
	return &ParseError{
		Input: input,
		Err:   err,
	}
}

// ScheduleError describes a configured webinar that could not be placed on the schedule
type ScheduleError struct {
	WebinarID string
	Field     string
	Reason    string
	Err       error
}

// Error implements the error interface for ScheduleError
func (e *ScheduleError) Error() string {
	return fmt.Sprintf("webinar %q has invalid %s: %s: %v", e.WebinarID, e.Field, e.Reason, e.Err)
}

// Unwrap returns the underlying error
func (e *ScheduleError) Unwrap() error {
	return e.Err
}

// Is checks if the target error is an ErrInvalidSchedule
func (e *ScheduleError) Is(target error) bool {
	return target == ErrInvalidSchedule
}

// LogFields returns a map of fields for structured logging
func (e *ScheduleError) LogFields() map[string]any {
	return map[string]any{
		"error_type": "schedule_error",
		"webinar_id": e.WebinarID,
		"field":      e.Field,
		"reason":     e.Reason,
		"error":      fmt.Sprint(e.Err),
		"error_code": CodeInvalidSchedule,
	}
}

// NewScheduleError creates a new schedule error
func NewScheduleError(webinarID, field, reason string, err error) error {
	return &ScheduleError{
		WebinarID: webinarID,
		Field:     field,
		Reason:    reason,
		Err:       err,
	}
}

// NewInvalidTimezoneError wraps a zone loading failure for name
func NewInvalidTimezoneError(name string, err error) error {
	return fmt.Errorf("%w %q: %v", ErrInvalidTimezone, name, err)
}

// IsParseError checks if the error is an instant parse error
func IsParseError(err error) bool {
	return errors.Is(err, ErrInvalidInstant)
}

// IsNotFoundError checks if the error is any "not found" type of error
func IsNotFoundError(err error) bool {
	return errors.Is(err, ErrWebinarNotFound) ||
		errors.Is(err, ErrNoUpcomingWebinar)
}

// IsClientError checks if the error maps to a 4xxx code
func IsClientError(err error) bool {
	code := ErrorCode(err)
	return code >= 4000 && code < 5000
}
