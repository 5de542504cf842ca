package entity

import (
	"os"
	"path/filepath"
	"strings"
	"time"
	// Embedded zone database so catalog zones resolve in minimal containers
	_ "time/tzdata"

	errs "github.com/amirhossein-jamali/webinar-hub/internal/domain/error"
)

// DefaultTimezone is reported when the process zone cannot be named
const DefaultTimezone = "UTC"

// Timezone pairs an IANA identifier with its display label
type Timezone struct {
	Value string `json:"value"`
	Label string `json:"label"`
}

// timezoneCatalog is in display order
var timezoneCatalog = []Timezone{
	{Value: "America/New_York", Label: "Eastern Time (ET)"},
	{Value: "America/Chicago", Label: "Central Time (CT)"},
	{Value: "America/Denver", Label: "Mountain Time (MT)"},
	{Value: "America/Los_Angeles", Label: "Pacific Time (PT)"},
	{Value: "America/Anchorage", Label: "Alaska Time (AKT)"},
	{Value: "Pacific/Honolulu", Label: "Hawaii Time (HT)"},
	{Value: "Europe/London", Label: "Greenwich Mean Time (GMT)"},
	{Value: "Europe/Paris", Label: "Central European Time (CET)"},
	{Value: "Europe/Moscow", Label: "Moscow Time (MSK)"},
	{Value: "Asia/Dubai", Label: "Gulf Standard Time (GST)"},
	{Value: "Asia/Kolkata", Label: "India Standard Time (IST)"},
	{Value: "Asia/Singapore", Label: "Singapore Time (SGT)"},
	{Value: "Asia/Tokyo", Label: "Japan Standard Time (JST)"},
	{Value: "Australia/Sydney", Label: "Australian Eastern Time (AET)"},
}

// ListTimezones returns a copy of the curated catalog in display order
func ListTimezones() []Timezone {
	out := make([]Timezone, len(timezoneCatalog))
	copy(out, timezoneCatalog)
	return out
}

// LookupTimezone finds a catalog entry by IANA identifier
func LookupTimezone(value string) (Timezone, bool) {
	for _, tz := range timezoneCatalog {
		if tz.Value == value {
			return tz, true
		}
	}
	return Timezone{}, false
}

// LoadTimezone resolves any IANA identifier, not only catalog ones.
// An empty name resolves to the local zone.
func LoadTimezone(name string) (*time.Location, error) {
	if name == "" {
		return time.Local, nil
	}
	loc, err := time.LoadLocation(name)
	if err != nil {
		return nil, errs.NewInvalidTimezoneError(name, err)
	}
	return loc, nil
}

// DetectTimezone returns the IANA name of the process zone.
// It checks TZ, then the name of time.Local, then the /etc/localtime link.
func DetectTimezone() string {
	return detectTimezone(os.Getenv("TZ"), time.Local, "/etc/localtime")
}

func detectTimezone(tzEnv string, local *time.Location, localtimePath string) string {
	if name := strings.TrimPrefix(tzEnv, ":"); name != "" {
		if _, err := time.LoadLocation(name); err == nil && name != "Local" {
			return name
		}
	}

	if local != nil {
		if name := local.String(); name != "" && name != "Local" {
			return name
		}
	}

	if target, err := os.Readlink(localtimePath); err == nil {
		if name := zoneFromPath(target); name != "" {
			return name
		}
	}

	return DefaultTimezone
}

// zoneFromPath extracts "Europe/Paris" from ".../zoneinfo/Europe/Paris"
func zoneFromPath(path string) string {
	path = filepath.ToSlash(path)
	const marker = "zoneinfo/"
	idx := strings.LastIndex(path, marker)
	if idx < 0 {
		return ""
	}
	name := path[idx+len(marker):]
	if _, err := time.LoadLocation(name); err != nil {
		return ""
	}
	return name
}
