// Package recur implements the repetition vocabulary for events: a
// frequency, an interval, an optional until date and an optional count,
// serialized as an RFC 5545 style RRULE value. Rules carrying properties
// outside this vocabulary still parse and round trip, but report themselves
// as non-native so callers can hand them to a full RFC 5545 engine.
package recur

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Frequency is how often a series repeats.
type Frequency string

const (
	Daily   Frequency = "DAILY"
	Weekly  Frequency = "WEEKLY"
	Monthly Frequency = "MONTHLY"
	Yearly  Frequency = "YEARLY"
)

// ParseFrequency reads a frequency name like "weekly", case-insensitively.
func ParseFrequency(s string) (Frequency, error) {
	switch f := Frequency(strings.ToUpper(strings.TrimSpace(s))); f {
	case Daily, Weekly, Monthly, Yearly:
		return f, nil
	default:
		return "", fmt.Errorf("ParseFrequency: unknown frequency %q", s)
	}
}

type prop struct {
	key   string
	value string
}

// Rule describes how an event repeats, starting from the event's own first
// occurrence. A zero Until means no end date, a zero Count no occurrence
// limit. Until is a date: occurrences anywhere on that day still belong to
// the series.
type Rule struct {
	Freq     Frequency
	Interval int
	Until    time.Time
	Count    int

	foreign []prop
}

// Native reports whether the rule uses only the native vocabulary. Foreign
// rules must be expanded by an RFC 5545 engine, not by Expand.
func (r *Rule) Native() bool {
	return len(r.foreign) == 0
}

// Validate checks the rule on its own. Until against the first occurrence
// is the owning event's check.
func (r *Rule) Validate() error {
	switch {
	case r.Freq != Daily && r.Freq != Weekly && r.Freq != Monthly && r.Freq != Yearly:
		return fmt.Errorf("(*Rule).Validate: unknown frequency %q", r.Freq)
	case r.Interval < 1:
		return fmt.Errorf("(*Rule).Validate: interval must be at least 1, got %d", r.Interval)
	case r.Count < 0:
		return fmt.Errorf("(*Rule).Validate: count can't be negative, got %d", r.Count)
	}
	return nil
}

// ParseRule reads an RRULE value like
// "FREQ=MONTHLY;INTERVAL=2;UNTIL=20241231". Properties outside the native
// vocabulary are retained in order and survive a String round trip.
func ParseRule(text string) (*Rule, error) {
	rule := &Rule{Interval: 1}
	seenFreq := false
	for _, part := range strings.Split(strings.TrimSpace(text), ";") {
		if part == "" {
			continue
		}
		key, value, found := strings.Cut(part, "=")
		if !found {
			return nil, fmt.Errorf("ParseRule: malformed property %q", part)
		}
		key = strings.ToUpper(strings.TrimSpace(key))
		value = strings.TrimSpace(value)
		switch key {
		case "FREQ":
			freq, err := ParseFrequency(value)
			if err != nil {
				return nil, fmt.Errorf("ParseRule: %w", err)
			}
			rule.Freq = freq
			seenFreq = true
		case "INTERVAL":
			n, err := strconv.Atoi(value)
			if err != nil || n < 1 {
				return nil, fmt.Errorf("ParseRule: bad interval %q", value)
			}
			rule.Interval = n
		case "COUNT":
			n, err := strconv.Atoi(value)
			if err != nil || n < 1 {
				return nil, fmt.Errorf("ParseRule: bad count %q", value)
			}
			rule.Count = n
		case "UNTIL":
			until, err := parseUntil(value)
			if err != nil {
				return nil, fmt.Errorf("ParseRule: %w", err)
			}
			rule.Until = until
		default:
			rule.foreign = append(rule.foreign, prop{key: key, value: value})
		}
	}
	if !seenFreq {
		return nil, fmt.Errorf("ParseRule: missing FREQ in %q", text)
	}
	return rule, nil
}

// parseUntil accepts a plain date and, for files written by other clients,
// the date-time forms. The clock part is dropped: until is a date here.
func parseUntil(value string) (time.Time, error) {
	for _, layout := range []string{"20060102", "20060102T150405Z", "20060102T150405"} {
		if t, err := time.ParseInLocation(layout, value, time.Local); err == nil {
			return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.Local), nil
		}
	}
	return time.Time{}, fmt.Errorf("parseUntil: bad date %q", value)
}

// String serializes the rule as an RRULE value. Native properties come
// first, retained foreign properties follow in their original order.
func (r *Rule) String() string {
	parts := []string{"FREQ=" + string(r.Freq)}
	if r.Interval > 1 {
		parts = append(parts, "INTERVAL="+strconv.Itoa(r.Interval))
	}
	if r.Count > 0 {
		parts = append(parts, "COUNT="+strconv.Itoa(r.Count))
	}
	if !r.Until.IsZero() {
		parts = append(parts, "UNTIL="+r.Until.Format("20060102"))
	}
	for _, p := range r.foreign {
		parts = append(parts, p.key+"="+p.value)
	}
	return strings.Join(parts, ";")
}
