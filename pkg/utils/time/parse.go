// ABOUTME: Timestamp parsing and formatting for serialized documents
// ABOUTME: Tries strict RFC 3339 profiles first, then a locale-invariant fuzzy fallback

package time

import (
	"strings"
	"time"

	"github.com/araddon/dateparse"
)

// Primary profiles attempted before falling back to fuzzy parsing. Exported
// blog archives typically carry RFC 3339 timestamps with or without an
// offset or sub-second precision.
var timeFormats = []string{
	time.RFC3339,
	time.RFC3339Nano,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// ParseFlexibleTime parses a timestamp string, returning the zero time when
// no format matches. The primary RFC 3339 profiles are tried in order before
// handing the string to a locale-invariant fuzzy parser that covers RFC 1123
// and the other date shapes found in the wild.
func ParseFlexibleTime(timeStr string) time.Time {
	timeStr = strings.TrimSpace(timeStr)
	if timeStr == "" {
		return time.Time{}
	}

	for _, format := range timeFormats {
		if t, err := time.Parse(format, timeStr); err == nil {
			return t
		}
	}

	if t, err := dateparse.ParseAny(timeStr); err == nil {
		return t
	}

	return time.Time{}
}

// FormatWire renders a timestamp for serialized output as RFC 3339 in UTC.
func FormatWire(t time.Time) string {
	return t.UTC().Format(time.RFC3339)
}
