package entity

import (
	"errors"
	"testing"
	"time"

	errs "github.com/amirhossein-jamali/webinar-hub/internal/domain/error"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseInstantIn(t *testing.T) {
	ny, err := time.LoadLocation("America/New_York")
	require.NoError(t, err)

	testCases := []struct {
		name     string
		input    string
		expected time.Time
	}{
		{"RFC3339 UTC", "2025-01-23T14:00:00Z", time.Date(2025, 1, 23, 14, 0, 0, 0, time.UTC)},
		{"RFC3339 offset", "2025-01-23T16:00:00+02:00", time.Date(2025, 1, 23, 14, 0, 0, 0, time.UTC)},
		{"RFC3339 fractional", "2025-01-23T14:00:00.250Z", time.Date(2025, 1, 23, 14, 0, 0, 250_000_000, time.UTC)},
		{"Surrounding whitespace", "  2025-01-23T14:00:00Z\n", time.Date(2025, 1, 23, 14, 0, 0, 0, time.UTC)},
		{"Zone-less seconds", "2025-01-23T09:00:00", time.Date(2025, 1, 23, 14, 0, 0, 0, time.UTC)},
		{"Zone-less minutes", "2025-01-23T09:00", time.Date(2025, 1, 23, 14, 0, 0, 0, time.UTC)},
		{"Space separated", "2025-01-23 09:00", time.Date(2025, 1, 23, 14, 0, 0, 0, time.UTC)},
		{"Date only is UTC midnight", "2025-01-23", time.Date(2025, 1, 23, 0, 0, 0, 0, time.UTC)},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := ParseInstantIn(tc.input, ny)
			require.NoError(t, err)
			assert.True(t, tc.expected.Equal(got), "expected %s, got %s", tc.expected, got)
		})
	}
}

func TestParseInstantInvalid(t *testing.T) {
	for _, input := range []string{"", "   ", "tomorrow", "2025-13-45", "23/01/2025"} {
		t.Run(input, func(t *testing.T) {
			_, err := ParseInstant(input)
			require.Error(t, err)
			assert.True(t, errs.IsParseError(err))

			var parseErr *errs.ParseError
			require.True(t, errors.As(err, &parseErr))
			assert.Equal(t, input, parseErr.Input)
		})
	}
}
