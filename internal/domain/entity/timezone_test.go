package entity

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	errs "github.com/amirhossein-jamali/webinar-hub/internal/domain/error"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListTimezones(t *testing.T) {
	zones := ListTimezones()

	require.Len(t, zones, 14)
	assert.Equal(t, Timezone{Value: "America/New_York", Label: "Eastern Time (ET)"}, zones[0])
	assert.Equal(t, Timezone{Value: "Australia/Sydney", Label: "Australian Eastern Time (AET)"}, zones[13])

	seen := make(map[string]bool, len(zones))
	for _, tz := range zones {
		assert.False(t, seen[tz.Value], "duplicate zone %s", tz.Value)
		seen[tz.Value] = true

		_, err := time.LoadLocation(tz.Value)
		assert.NoError(t, err, "zone %s should load", tz.Value)
	}

	// Callers get a copy.
	zones[0].Label = "changed"
	assert.Equal(t, "Eastern Time (ET)", ListTimezones()[0].Label)
}

func TestLookupTimezone(t *testing.T) {
	tz, ok := LookupTimezone("Asia/Tokyo")
	assert.True(t, ok)
	assert.Equal(t, "Japan Standard Time (JST)", tz.Label)

	_, ok = LookupTimezone("Europe/Berlin")
	assert.False(t, ok)
}

func TestLoadTimezone(t *testing.T) {
	loc, err := LoadTimezone("Europe/Berlin")
	require.NoError(t, err)
	assert.Equal(t, "Europe/Berlin", loc.String())

	loc, err = LoadTimezone("")
	require.NoError(t, err)
	assert.Equal(t, time.Local, loc)

	_, err = LoadTimezone("Mars/Olympus_Mons")
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrInvalidTimezone)
	assert.Contains(t, err.Error(), "Mars/Olympus_Mons")
}

func TestDetectTimezone(t *testing.T) {
	localNamedLocal := time.FixedZone("Local", 0)
	missing := filepath.Join(t.TempDir(), "missing")

	t.Run("TZ variable wins", func(t *testing.T) {
		assert.Equal(t, "Asia/Tokyo", detectTimezone("Asia/Tokyo", time.UTC, missing))
	})

	t.Run("TZ variable with colon prefix", func(t *testing.T) {
		assert.Equal(t, "Europe/Paris", detectTimezone(":Europe/Paris", localNamedLocal, missing))
	})

	t.Run("Invalid TZ falls back to local name", func(t *testing.T) {
		ny, err := time.LoadLocation("America/New_York")
		require.NoError(t, err)
		assert.Equal(t, "America/New_York", detectTimezone("Not/AZone", ny, missing))
	})

	t.Run("Localtime symlink", func(t *testing.T) {
		link := filepath.Join(t.TempDir(), "localtime")
		require.NoError(t, os.Symlink("/usr/share/zoneinfo/America/Chicago", link))

		assert.Equal(t, "America/Chicago", detectTimezone("", localNamedLocal, link))
	})

	t.Run("Unknown everywhere", func(t *testing.T) {
		assert.Equal(t, DefaultTimezone, detectTimezone("", localNamedLocal, missing))
		assert.Equal(t, DefaultTimezone, detectTimezone("", nil, missing))
	})

	t.Run("Process zone is never empty", func(t *testing.T) {
		assert.NotEmpty(t, DetectTimezone())
	})
}

func TestZoneFromPath(t *testing.T) {
	assert.Equal(t, "Europe/Paris", zoneFromPath("/usr/share/zoneinfo/Europe/Paris"))
	assert.Equal(t, "America/Argentina/Buenos_Aires", zoneFromPath("../zoneinfo/America/Argentina/Buenos_Aires"))
	assert.Equal(t, "", zoneFromPath("/etc/timezone"))
	assert.Equal(t, "", zoneFromPath("/usr/share/zoneinfo/Nowhere/Land"))
}
