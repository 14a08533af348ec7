package dateexpr

import (
	"regexp"
	"strconv"
	"strings"
	"time"
)

// TimeOfDay is a wall-clock time with no date attached.
type TimeOfDay struct {
	Hour   int
	Minute int
	Second int
}

// At anchors the time of day to the given date, in that date's location.
func (t TimeOfDay) At(date time.Time) time.Time {
	return time.Date(date.Year(), date.Month(), date.Day(), t.Hour, t.Minute, t.Second, 0, date.Location())
}

var (
	clockRe    = regexp.MustCompile(`^(\d{1,2}):(\d{2})(?::(\d{2}))?$`)
	bareHourRe = regexp.MustCompile(`^\d{1,2}$`)
)

// ParseTime reads a wall-clock expression: "HH:MM", "HH:MM:SS" or a bare
// hour like "2" meaning 02:00. Out-of-range values are errors, never
// clamped.
func ParseTime(text string) (TimeOfDay, error) {
	raw := strings.TrimSpace(text)
	if m := clockRe.FindStringSubmatch(raw); m != nil {
		hour := atoi(m[1])
		minute := atoi(m[2])
		second := 0
		if m[3] != "" {
			second = atoi(m[3])
		}
		if hour > 23 || minute > 59 || second > 59 {
			return TimeOfDay{}, &ParseError{Input: raw, Kind: InvalidTime}
		}
		return TimeOfDay{Hour: hour, Minute: minute, Second: second}, nil
	}
	if bareHourRe.MatchString(raw) {
		hour := atoi(raw)
		if hour > 23 {
			return TimeOfDay{}, &ParseError{Input: raw, Kind: InvalidTime}
		}
		return TimeOfDay{Hour: hour}, nil
	}
	return TimeOfDay{}, &ParseError{Input: raw, Kind: UnrecognizedFormat}
}

func atoi(s string) int {
	n, _ := strconv.Atoi(s)
	return n
}
