package dto

import "github.com/amirhossein-jamali/webinar-hub/internal/domain/entity"

// DateTimeResponse is the display rendering of one instant
type DateTimeResponse struct {
	Date     string `json:"date"`
	Time     string `json:"time"`
	DateTime string `json:"dateTime"`
	Timezone string `json:"timezone"`
}

// RelativeTimeResponse holds a "time ago" string
type RelativeTimeResponse struct {
	Relative string `json:"relative"`
}

// FormattedResponse holds a formatted duration or number
type FormattedResponse struct {
	Formatted string `json:"formatted"`
}

// TimezoneResponse is one catalog entry
type TimezoneResponse struct {
	Value string `json:"value"`
	Label string `json:"label"`
}

// TimezonesResponse lists the catalog and the server's detected zone
type TimezonesResponse struct {
	Detected  string             `json:"detected"`
	Timezones []TimezoneResponse `json:"timezones"`
}

// NewTimezonesResponse maps catalog entries to the API shape
func NewTimezonesResponse(detected string, zones []entity.Timezone) TimezonesResponse {
	out := make([]TimezoneResponse, 0, len(zones))
	for _, tz := range zones {
		out = append(out, TimezoneResponse{Value: tz.Value, Label: tz.Label})
	}
	return TimezonesResponse{Detected: detected, Timezones: out}
}
