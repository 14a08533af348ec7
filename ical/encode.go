// Package ical encodes and decodes one event per iCalendar file, the
// layout the external sync tool's filesystem backend exchanges. The codec
// covers UID, SUMMARY, DTSTART, DTEND, LOCATION, DESCRIPTION and RRULE;
// everything else in a VEVENT rides along untouched.
package ical

import (
	"io"

	"caldr/model"
)

// ProdID identifies this tool in the files it writes.
const ProdID = "-//caldr//EN"

// EncodeEvent writes one event as a single-VEVENT iCalendar file.
func EncodeEvent(w io.Writer, ev *model.Event) error {
	lw := &lineWriter{w: w}
	lw.line("BEGIN:VCALENDAR")
	lw.line("VERSION:2.0")
	lw.line("PRODID:" + ProdID)
	lw.line("BEGIN:VEVENT")
	lw.line("UID:" + ev.ID)
	lw.line("SUMMARY:" + escapeText(ev.Summary))
	lw.line("DTSTART:" + formatDateTime(ev.Start))
	lw.line("DTEND:" + formatDateTime(ev.End))
	if ev.Location != "" {
		lw.line("LOCATION:" + escapeText(ev.Location))
	}
	if ev.Description != "" {
		lw.line("DESCRIPTION:" + escapeText(ev.Description))
	}
	if ev.Recurrence != nil {
		lw.line("RRULE:" + ev.Recurrence.String())
	}
	for _, extra := range ev.Extra {
		lw.line(extra)
	}
	lw.line("END:VEVENT")
	lw.line("END:VCALENDAR")
	return lw.err
}

// lineWriter emits CRLF-terminated content lines, folding anything over 75
// octets with a single-space continuation. The first write error sticks.
type lineWriter struct {
	w   io.Writer
	err error
}

func (lw *lineWriter) line(s string) {
	if lw.err != nil {
		return
	}
	chunk := s
	if len(chunk) > 75 {
		chunk = s[:75]
	}
	lw.raw(chunk + "\r\n")
	for rest := s[len(chunk):]; len(rest) > 0; {
		chunk = rest
		if len(chunk) > 74 {
			chunk = rest[:74]
		}
		rest = rest[len(chunk):]
		lw.raw(" " + chunk + "\r\n")
	}
}

func (lw *lineWriter) raw(s string) {
	if lw.err != nil {
		return
	}
	if _, err := io.WriteString(lw.w, s); err != nil {
		lw.err = err
	}
}
