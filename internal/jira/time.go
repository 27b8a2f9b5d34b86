package jira

import (
	"strings"
	"time"
)

const (
	layoutSeconds = "2006-01-02T15:04:05"
	layoutMillis  = "2006-01-02T15:04:05.000"
)

// ParseTime parses the tracker's ISO-8601-like timestamps: optional
// fractional seconds, optional trailing UTC marker, timezone offsets ignored.
// Anything unparseable yields nil; a missing timestamp is no signal, never
// epoch zero.
func ParseTime(s string) *time.Time {
	s = strings.TrimSuffix(strings.TrimSpace(s), "Z")
	if len(s) < len(layoutSeconds) {
		return nil
	}
	if t, err := time.Parse(layoutSeconds, s[:len(layoutSeconds)]); err == nil {
		return &t
	}
	if len(s) >= len(layoutMillis) {
		if t, err := time.Parse(layoutMillis, s[:len(layoutMillis)]); err == nil {
			return &t
		}
	}
	return nil
}
