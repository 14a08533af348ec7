package ical

import (
	"bufio"
	"fmt"
	"io"
	"strings"
	"time"

	"caldr/model"
	"caldr/recur"
)

// DecodeEvent reads a single-VEVENT iCalendar file. Properties outside the
// codec's vocabulary, including whole nested blocks like VALARM, are kept
// verbatim in Extra so a later rewrite does not lose them. A missing DTEND
// defaults to one hour after the start.
func DecodeEvent(r io.Reader) (*model.Event, error) {
	lines, err := unfold(r)
	if err != nil {
		return nil, fmt.Errorf("DecodeEvent: %w", err)
	}

	ev := &model.Event{}
	inEvent := false
	seenEvent := false
	nestDepth := 0
	for _, line := range lines {
		key, value, found := strings.Cut(line, ":")
		if !found {
			continue
		}
		name, _, _ := strings.Cut(key, ";")
		name = strings.ToUpper(strings.TrimSpace(name))

		if nestDepth > 0 {
			ev.Extra = append(ev.Extra, line)
			switch name {
			case "BEGIN":
				nestDepth++
			case "END":
				nestDepth--
			}
			continue
		}

		switch name {
		case "BEGIN":
			switch strings.ToUpper(value) {
			case "VEVENT":
				if seenEvent {
					return nil, fmt.Errorf("DecodeEvent: more than one event in file")
				}
				inEvent = true
				seenEvent = true
			default:
				if inEvent {
					ev.Extra = append(ev.Extra, line)
					nestDepth++
				}
			}
		case "END":
			if strings.EqualFold(value, "VEVENT") {
				inEvent = false
			}
		case "UID":
			if inEvent {
				ev.ID = strings.TrimSpace(value)
			}
		case "SUMMARY":
			if inEvent {
				ev.Summary = unescapeText(value)
			}
		case "LOCATION":
			if inEvent {
				ev.Location = unescapeText(value)
			}
		case "DESCRIPTION":
			if inEvent {
				ev.Description = unescapeText(value)
			}
		case "DTSTART":
			if inEvent {
				start, err := parseDateTime(value)
				if err != nil {
					return nil, fmt.Errorf("DecodeEvent: %w", err)
				}
				ev.Start = start
			}
		case "DTEND":
			if inEvent {
				end, err := parseDateTime(value)
				if err != nil {
					return nil, fmt.Errorf("DecodeEvent: %w", err)
				}
				ev.End = end
			}
		case "RRULE":
			if inEvent {
				rule, err := recur.ParseRule(value)
				if err != nil {
					return nil, fmt.Errorf("DecodeEvent: %w", err)
				}
				ev.Recurrence = rule
			}
		default:
			if inEvent {
				ev.Extra = append(ev.Extra, line)
			}
		}
	}

	switch {
	case !seenEvent:
		return nil, fmt.Errorf("DecodeEvent: no VEVENT in file")
	case ev.ID == "":
		return nil, fmt.Errorf("DecodeEvent: missing UID")
	case ev.Summary == "":
		return nil, fmt.Errorf("DecodeEvent: missing SUMMARY")
	case ev.Start.IsZero():
		return nil, fmt.Errorf("DecodeEvent: missing DTSTART")
	}
	if ev.End.IsZero() {
		ev.End = ev.Start.Add(time.Hour)
	}
	return ev, nil
}

// unfold reads content lines, joining continuation lines that start with a
// space or tab onto the line before them.
func unfold(r io.Reader) ([]string, error) {
	scanner := bufio.NewScanner(r)
	var lines []string
	for scanner.Scan() {
		line := strings.TrimRight(scanner.Text(), "\r")
		if line == "" {
			continue
		}
		if line[0] == ' ' || line[0] == '\t' {
			if len(lines) == 0 {
				return nil, fmt.Errorf("unfold: continuation line with nothing before it")
			}
			lines[len(lines)-1] += line[1:]
			continue
		}
		lines = append(lines, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("unfold: %w", err)
	}
	return lines, nil
}
