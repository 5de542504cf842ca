package error

import (
	"errors"
	"fmt"
	"testing"
	"time"
)

func TestBaseErrorTypes(t *testing.T) {
	if ErrInvalidInstant.Error() != "invalid instant" {
		t.Errorf("ErrInvalidInstant has unexpected message: %s", ErrInvalidInstant.Error())
	}
	if ErrUnsupportedProvider.Error() != "unsupported calendar provider" {
		t.Errorf("ErrUnsupportedProvider has unexpected message: %s", ErrUnsupportedProvider.Error())
	}
}

func TestErrorCode(t *testing.T) {
	testCases := []struct {
		name     string
		err      error
		expected int
	}{
		{"InvalidRequest", ErrInvalidRequest, 4000},
		{"InvalidInstant", ErrInvalidInstant, 4001},
		{"UnsupportedProvider", ErrUnsupportedProvider, 4002},
		{"InvalidTimezone", ErrInvalidTimezone, 4003},
		{"InvalidDuration", ErrInvalidDuration, 4004},
		{"InvalidNumber", ErrInvalidNumber, 4005},
		{"WebinarNotFound", ErrWebinarNotFound, 4040},
		{"NoUpcomingWebinar", ErrNoUpcomingWebinar, 4041},
		{"InvalidSchedule", ErrInvalidSchedule, 5001},
		{"UnknownError", errors.New("unknown error"), 5000},
		{"WrappedError", fmt.Errorf("wrapped: %w", ErrWebinarNotFound), 4040},
		{"ParseError", NewParseError("tomorrow", nil), 4001},
		{"ScheduleWrapsParseError", NewScheduleError("react", "scheduledAt", "unparseable", NewParseError("soon", nil)), 5001},
		{"ScheduleWrapsInvalidRequest", NewScheduleError("react", "id", "duplicate", ErrInvalidRequest), 5001},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			code := ErrorCode(tc.err)
			if code != tc.expected {
				t.Errorf("ErrorCode(%v) = %d, want %d", tc.err, code, tc.expected)
			}
		})
	}
}

func TestParseError(t *testing.T) {
	_, cause := time.Parse(time.RFC3339, "not-a-date")
	err := NewParseError("not-a-date", cause)

	// Test Error method
	expectedPrefix := `cannot parse "not-a-date" as an instant: `
	if got := err.Error(); len(got) <= len(expectedPrefix) || got[:len(expectedPrefix)] != expectedPrefix {
		t.Errorf("ParseError.Error() = %s, want prefix %s", got, expectedPrefix)
	}

	// Test Is method through errors.Is
	if !errors.Is(err, ErrInvalidInstant) {
		t.Errorf("errors.Is(err, ErrInvalidInstant) = false, want true")
	}

	// Test Unwrap
	var timeErr *time.ParseError
	if !errors.As(err, &timeErr) {
		t.Errorf("errors.As(err, *time.ParseError) = false, want true")
	}

	// Test through helper function
	if !IsParseError(fmt.Errorf("wrapped: %w", err)) {
		t.Errorf("IsParseError(wrapped) = false, want true")
	}

	var parseErr *ParseError
	if !errors.As(err, &parseErr) {
		t.Fatalf("errors.As failed: not a *ParseError")
	}
	fields := parseErr.LogFields()
	if fields["input"] != "not-a-date" {
		t.Errorf("LogFields()[input] = %v, want not-a-date", fields["input"])
	}
	if fields["error_code"] != CodeInvalidInstant {
		t.Errorf("LogFields()[error_code] = %v, want %d", fields["error_code"], CodeInvalidInstant)
	}
}

func TestParseErrorWithoutCause(t *testing.T) {
	err := NewParseError("", nil)
	if err.Error() != `cannot parse "" as an instant` {
		t.Errorf("ParseError.Error() = %s", err.Error())
	}
	if !errors.Is(err, ErrInvalidInstant) {
		t.Errorf("errors.Is(err, ErrInvalidInstant) = false, want true")
	}
}

func TestScheduleError(t *testing.T) {
	err := NewScheduleError("typescript", "scheduledAt", "unparseable", ErrInvalidInstant)

	expectedErrMsg := `webinar "typescript" has invalid scheduledAt: unparseable: invalid instant`
	if err.Error() != expectedErrMsg {
		t.Errorf("ScheduleError.Error() = %s, want %s", err.Error(), expectedErrMsg)
	}

	if !errors.Is(err, ErrInvalidSchedule) {
		t.Errorf("errors.Is(err, ErrInvalidSchedule) = false, want true")
	}

	if !errors.Is(err, ErrInvalidInstant) {
		t.Errorf("errors.Is(err, ErrInvalidInstant) = false, want true")
	}
}

func TestErrorHelperFunctions(t *testing.T) {
	if IsNotFoundError(ErrInvalidInstant) {
		t.Errorf("IsNotFoundError(ErrInvalidInstant) = true, want false")
	}

	if !IsNotFoundError(fmt.Errorf("wrapped: %w", ErrNoUpcomingWebinar)) {
		t.Errorf("IsNotFoundError(wrapped ErrNoUpcomingWebinar) = false, want true")
	}

	if !IsClientError(ErrUnsupportedProvider) {
		t.Errorf("IsClientError(ErrUnsupportedProvider) = false, want true")
	}

	if IsClientError(ErrInternalServer) {
		t.Errorf("IsClientError(ErrInternalServer) = true, want false")
	}
}
