// Package dateexpr turns loose human date and time expressions like
// "tom@14", "31-01" or "monday" into concrete instants. Every resolving
// function takes the reference instant explicitly; nothing here reads the
// clock.
package dateexpr

import (
	"strings"
	"time"

	"github.com/olebedev/when"
	"github.com/olebedev/when/rules/common"
	"github.com/olebedev/when/rules/en"
)

// dateFn is one grammar class: matched reports whether the class applies to
// the text at all, ok whether the matched values form a real date.
type dateFn func(text string, ref time.Time) (date time.Time, matched, ok bool)

// Parser resolves date expressions through an ordered list of recognizers.
// The first one that matches decides the outcome; a match with out-of-range
// values is an InvalidDate error, not a fallthrough to later classes.
type Parser struct {
	dates []dateFn
}

// Option configures a Parser.
type Option func(*Parser)

// New builds a Parser trying the grammar classes in priority order: full
// numeric dates, short numeric dates, relative keywords, weekday names,
// month names, month-year pairs, day-month pairs.
func New(opts ...Option) *Parser {
	p := &Parser{
		dates: []dateFn{
			fullDate,
			shortDate,
			relativeKeyword,
			weekdayName,
			monthAlone,
			monthYear,
			dayMonth,
		},
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// WithNatural appends a natural language recognizer backed by
// github.com/olebedev/when after all grammar classes, so input like "next
// friday" resolves without changing what the classes above accept.
func WithNatural() Option {
	return func(p *Parser) {
		w := when.New(nil)
		w.Add(en.All...)
		w.Add(common.All...)
		p.dates = append(p.dates, func(text string, ref time.Time) (time.Time, bool, bool) {
			result, err := w.Parse(text, ref)
			if err != nil || result == nil {
				return time.Time{}, false, false
			}
			return Midnight(result.Time), true, true
		})
	}
}

// ParseDate resolves a date expression against the reference instant. The
// result is the matched day at local midnight.
func (p *Parser) ParseDate(text string, ref time.Time) (time.Time, error) {
	raw := strings.TrimSpace(text)
	lowered := strings.ToLower(raw)
	for _, recognize := range p.dates {
		date, matched, ok := recognize(lowered, ref)
		if !matched {
			continue
		}
		if !ok {
			return time.Time{}, &ParseError{Input: raw, Kind: InvalidDate}
		}
		return date, nil
	}
	return time.Time{}, &ParseError{Input: raw, Kind: UnrecognizedFormat}
}

// ParseTime reads a wall-clock expression. It does not depend on the
// recognizer list or the reference instant.
func (p *Parser) ParseTime(text string) (TimeOfDay, error) {
	return ParseTime(text)
}

// ParseDateTime resolves "<date>@<time>" against the reference instant.
// Without the "@" separator the whole input is read as a date at midnight.
func (p *Parser) ParseDateTime(text string, ref time.Time) (time.Time, error) {
	return p.parseDateTime(text, ref, false)
}

// ParseDateTimeStrict is ParseDateTime with a mandatory time part: a plain
// date yields a MissingTime error.
func (p *Parser) ParseDateTimeStrict(text string, ref time.Time) (time.Time, error) {
	return p.parseDateTime(text, ref, true)
}

func (p *Parser) parseDateTime(text string, ref time.Time, needTime bool) (time.Time, error) {
	raw := strings.TrimSpace(text)
	parts := strings.Split(raw, "@")
	switch len(parts) {
	case 1:
		date, err := p.ParseDate(parts[0], ref)
		if err != nil {
			return time.Time{}, err
		}
		if needTime {
			return time.Time{}, &ParseError{Input: raw, Kind: MissingTime}
		}
		return date, nil
	case 2:
		datePart := strings.TrimSpace(parts[0])
		timePart := strings.TrimSpace(parts[1])
		if datePart == "" {
			return time.Time{}, &ParseError{Input: raw, Kind: UnrecognizedFormat}
		}
		if timePart == "" {
			return time.Time{}, &ParseError{Input: raw, Kind: MissingTime}
		}
		date, err := p.ParseDate(datePart, ref)
		if err != nil {
			return time.Time{}, err
		}
		tod, err := ParseTime(timePart)
		if err != nil {
			return time.Time{}, err
		}
		return tod.At(date), nil
	default:
		return time.Time{}, &ParseError{Input: raw, Kind: UnrecognizedFormat}
	}
}

var defaultParser = New()

// ParseDate resolves a date expression with the default Parser.
func ParseDate(text string, ref time.Time) (time.Time, error) {
	return defaultParser.ParseDate(text, ref)
}

// ParseDateTime resolves a "<date>@<time>" expression with the default
// Parser.
func ParseDateTime(text string, ref time.Time) (time.Time, error) {
	return defaultParser.ParseDateTime(text, ref)
}

// ParseDateTimeStrict resolves a "<date>@<time>" expression with the
// default Parser, requiring the time part.
func ParseDateTimeStrict(text string, ref time.Time) (time.Time, error) {
	return defaultParser.ParseDateTimeStrict(text, ref)
}
