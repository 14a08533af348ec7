package ical

import (
	"fmt"
	"regexp"
	"time"
)

var (
	dateValueRe     = regexp.MustCompile(`^\d{8}$`)
	localDateTimeRe = regexp.MustCompile(`^\d{8}T\d{6}$`)
	utcDateTimeRe   = regexp.MustCompile(`^\d{8}T\d{6}Z$`)
)

// parseDateTime reads an iCalendar date or date-time value as local wall
// clock time. A trailing Z or a TZID parameter is tolerated but the zone
// itself is not applied: this tool works in the local system zone only.
func parseDateTime(value string) (time.Time, error) {
	switch {
	case dateValueRe.MatchString(value):
		return time.ParseInLocation("20060102", value, time.Local)
	case localDateTimeRe.MatchString(value):
		return time.ParseInLocation("20060102T150405", value, time.Local)
	case utcDateTimeRe.MatchString(value):
		return time.ParseInLocation("20060102T150405Z", value, time.Local)
	default:
		return time.Time{}, fmt.Errorf("parseDateTime: bad date-time %q", value)
	}
}

// formatDateTime writes an instant as a floating local date-time, the form
// the sync tool's storage backend exchanges.
func formatDateTime(t time.Time) string {
	return t.Format("20060102T150405")
}
