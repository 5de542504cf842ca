package entity

import (
	"strings"
	"time"
)

// CalendarProvider names a calendar application that can import an event
type CalendarProvider string

// Supported calendar providers
const (
	ProviderGoogle  CalendarProvider = "google"
	ProviderOutlook CalendarProvider = "outlook"
	ProviderApple   CalendarProvider = "apple"
)

// Provider endpoints
const (
	googleRenderURL    = "https://calendar.google.com/calendar/render"
	outlookComposeURL  = "https://outlook.live.com/calendar/0/deeplink/compose"
	appleDataURIPrefix = "data:text/calendar;charset=utf-8,"
)

// Timestamp layouts used by the providers
const (
	CompactTimestampLayout = "20060102T150405Z"
	ISOTimestampLayout     = "2006-01-02T15:04:05.000Z"
)

// CalendarProviders lists the supported providers in display order
func CalendarProviders() []CalendarProvider {
	return []CalendarProvider{ProviderGoogle, ProviderOutlook, ProviderApple}
}

// IsSupported reports whether p is one of the known providers
func (p CalendarProvider) IsSupported() bool {
	switch p {
	case ProviderGoogle, ProviderOutlook, ProviderApple:
		return true
	default:
		return false
	}
}

// CalendarEvent is the data exported to a calendar application
type CalendarEvent struct {
	Title       string
	Description string
	Location    string
	Start       time.Time
	End         time.Time
}

// NewCalendarEvent builds an event lasting durationMinutes from start
func NewCalendarEvent(title, description, location string, start time.Time, durationMinutes int) CalendarEvent {
	return CalendarEvent{
		Title:       title,
		Description: description,
		Location:    location,
		Start:       start,
		End:         start.Add(time.Duration(durationMinutes) * time.Minute),
	}
}

// CompactTimestamp renders t in UTC without separators or fractional seconds
func CompactTimestamp(t time.Time) string {
	return t.UTC().Format(CompactTimestampLayout)
}

// ISOTimestamp renders t in UTC with millisecond precision
func ISOTimestamp(t time.Time) string {
	return t.UTC().Format(ISOTimestampLayout)
}

// BuildCalendarLink returns the link that opens event in provider.
// An unknown provider yields an empty string; callers must check for it.
// End is not validated against Start.
func BuildCalendarLink(event CalendarEvent, provider CalendarProvider) string {
	switch provider {
	case ProviderGoogle:
		return googleRenderURL +
			"?action=TEMPLATE" +
			"&text=" + EncodeURIComponent(event.Title) +
			"&dates=" + CompactTimestamp(event.Start) + "/" + CompactTimestamp(event.End) +
			"&details=" + EncodeURIComponent(event.Description) +
			"&location=" + EncodeURIComponent(event.Location)
	case ProviderOutlook:
		return outlookComposeURL +
			"?subject=" + EncodeURIComponent(event.Title) +
			"&startdt=" + ISOTimestamp(event.Start) +
			"&enddt=" + ISOTimestamp(event.End) +
			"&body=" + EncodeURIComponent(event.Description) +
			"&location=" + EncodeURIComponent(event.Location)
	case ProviderApple:
		return appleDataURIPrefix + EncodeURIComponent(ICSContent(event))
	default:
		return ""
	}
}

// BuildCalendarLinks returns the link for every supported provider
func BuildCalendarLinks(event CalendarEvent) map[CalendarProvider]string {
	links := make(map[CalendarProvider]string, 3)
	for _, p := range CalendarProviders() {
		links[p] = BuildCalendarLink(event, p)
	}
	return links
}

// ICSContent renders the single-event calendar file embedded in the Apple link.
// Lines are joined with "\n" and text fields are written verbatim.
func ICSContent(event CalendarEvent) string {
	lines := []string{
		"BEGIN:VCALENDAR",
		"VERSION:2.0",
		"BEGIN:VEVENT",
		"DTSTART:" + CompactTimestamp(event.Start),
		"DTEND:" + CompactTimestamp(event.End),
		"SUMMARY:" + event.Title,
		"DESCRIPTION:" + event.Description,
		"LOCATION:" + event.Location,
		"END:VEVENT",
		"END:VCALENDAR",
	}
	return strings.Join(lines, "\n")
}

// EncodeURIComponent percent-encodes s the way JavaScript's encodeURIComponent does:
// every UTF-8 byte except A-Z a-z 0-9 - _ . ! ~ * ' ( ) becomes %XX (upper-case hex).
func EncodeURIComponent(s string) string {
	const hex = "0123456789ABCDEF"

	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		c := s[i]
		if isURIUnreserved(c) {
			b.WriteByte(c)
			continue
		}
		b.WriteByte('%')
		b.WriteByte(hex[c>>4])
		b.WriteByte(hex[c&0x0f])
	}
	return b.String()
}

func isURIUnreserved(c byte) bool {
	switch {
	case 'A' <= c && c <= 'Z', 'a' <= c && c <= 'z', '0' <= c && c <= '9':
		return true
	}
	switch c {
	case '-', '_', '.', '!', '~', '*', '\'', '(', ')':
		return true
	}
	return false
}
