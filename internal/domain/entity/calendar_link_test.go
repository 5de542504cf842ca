package entity

import (
	"net/url"
	"regexp"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleCalendarEvent() CalendarEvent {
	return CalendarEvent{
		Title:       "Mastering Modern React Patterns",
		Description: "Hooks, compound components & more",
		Location:    "Online Webinar",
		Start:       time.Date(2025, 1, 23, 14, 0, 0, 0, time.UTC),
		End:         time.Date(2025, 1, 23, 15, 0, 0, 0, time.UTC),
	}
}

func TestCompactTimestamp(t *testing.T) {
	ts := time.Date(2025, 1, 23, 14, 0, 0, 123_000_000, time.UTC)
	assert.Equal(t, "20250123T140000Z", CompactTimestamp(ts))
	assert.Equal(t, "2025-01-23T14:00:00.123Z", ISOTimestamp(ts))

	ny, err := time.LoadLocation("America/New_York")
	require.NoError(t, err)
	assert.Equal(t, "20250123T140000Z", CompactTimestamp(ts.In(ny)))
}

func TestBuildCalendarLink(t *testing.T) {
	event := sampleCalendarEvent()

	t.Run("Google", func(t *testing.T) {
		link := BuildCalendarLink(event, ProviderGoogle)

		assert.Equal(t,
			"https://calendar.google.com/calendar/render?action=TEMPLATE"+
				"&text=Mastering%20Modern%20React%20Patterns"+
				"&dates=20250123T140000Z/20250123T150000Z"+
				"&details=Hooks%2C%20compound%20components%20%26%20more"+
				"&location=Online%20Webinar",
			link)

		parsed, err := url.Parse(link)
		require.NoError(t, err)
		query := parsed.Query()
		assert.Equal(t, "TEMPLATE", query.Get("action"))
		assert.Equal(t, event.Title, query.Get("text"))
		assert.Equal(t, event.Description, query.Get("details"))
		assert.Equal(t, event.Location, query.Get("location"))
		assert.Regexp(t, regexp.MustCompile(`^\d{8}T\d{6}Z/\d{8}T\d{6}Z$`), query.Get("dates"))
		assert.Equal(t, "20250123T140000Z/20250123T150000Z", query.Get("dates"))
	})

	t.Run("Outlook", func(t *testing.T) {
		link := BuildCalendarLink(event, ProviderOutlook)

		assert.Equal(t,
			"https://outlook.live.com/calendar/0/deeplink/compose"+
				"?subject=Mastering%20Modern%20React%20Patterns"+
				"&startdt=2025-01-23T14:00:00.000Z"+
				"&enddt=2025-01-23T15:00:00.000Z"+
				"&body=Hooks%2C%20compound%20components%20%26%20more"+
				"&location=Online%20Webinar",
			link)
	})

	t.Run("Apple", func(t *testing.T) {
		link := BuildCalendarLink(event, ProviderApple)
		require.True(t, strings.HasPrefix(link, "data:text/calendar;charset=utf-8,"))

		payload, err := url.PathUnescape(strings.TrimPrefix(link, "data:text/calendar;charset=utf-8,"))
		require.NoError(t, err)
		assert.Equal(t, strings.Join([]string{
			"BEGIN:VCALENDAR",
			"VERSION:2.0",
			"BEGIN:VEVENT",
			"DTSTART:20250123T140000Z",
			"DTEND:20250123T150000Z",
			"SUMMARY:Mastering Modern React Patterns",
			"DESCRIPTION:Hooks, compound components & more",
			"LOCATION:Online Webinar",
			"END:VEVENT",
			"END:VCALENDAR",
		}, "\n"), payload)
		assert.Contains(t, link, "BEGIN%3AVCALENDAR%0AVERSION%3A2.0")
	})

	t.Run("Unknown provider yields empty string", func(t *testing.T) {
		assert.Equal(t, "", BuildCalendarLink(event, CalendarProvider("bogus")))
		assert.Equal(t, "", BuildCalendarLink(event, CalendarProvider("")))
		assert.Equal(t, "", BuildCalendarLink(event, CalendarProvider("Google")))
	})

	t.Run("End before start is not validated", func(t *testing.T) {
		reversed := event
		reversed.Start, reversed.End = event.End, event.Start
		link := BuildCalendarLink(reversed, ProviderGoogle)
		assert.Contains(t, link, "&dates=20250123T150000Z/20250123T140000Z&")
	})
}

func TestBuildCalendarLinks(t *testing.T) {
	links := BuildCalendarLinks(sampleCalendarEvent())

	require.Len(t, links, 3)
	for _, p := range CalendarProviders() {
		assert.NotEmpty(t, links[p], "provider %s", p)
		assert.True(t, p.IsSupported())
	}
	assert.False(t, CalendarProvider("yahoo").IsSupported())
}

func TestNewCalendarEvent(t *testing.T) {
	start := time.Date(2025, 1, 23, 14, 0, 0, 0, time.UTC)
	event := NewCalendarEvent("Title", "Body", "Online Webinar", start, 90)

	assert.Equal(t, start, event.Start)
	assert.Equal(t, start.Add(90*time.Minute), event.End)
}

func TestEncodeURIComponent(t *testing.T) {
	testCases := []struct {
		input    string
		expected string
	}{
		{"", ""},
		{"abcXYZ019", "abcXYZ019"},
		{"-_.!~*'()", "-_.!~*'()"},
		{"a b", "a%20b"},
		{"a+b=c&d", "a%2Bb%3Dc%26d"},
		{"/?#:@", "%2F%3F%23%3A%40"},
		{"line1\nline2", "line1%0Aline2"},
		{"café", "caf%C3%A9"},
		{"日本", "%E6%97%A5%E6%9C%AC"},
		{"100%", "100%25"},
	}

	for _, tc := range testCases {
		t.Run(tc.input, func(t *testing.T) {
			assert.Equal(t, tc.expected, EncodeURIComponent(tc.input))
		})
	}
}
