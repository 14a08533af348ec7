package ical

import "strings"

// TEXT escaping per the RFC 5545 subset. Both directions run as one
// simultaneous pass, so an escaped backslash can never be re-read as the
// start of another escape sequence.
var (
	escaper   = strings.NewReplacer("\\", "\\\\", "\r\n", "\\n", "\n", "\\n", ";", "\\;", ",", "\\,")
	unescaper = strings.NewReplacer("\\\\", "\\", "\\n", "\n", "\\N", "\n", "\\;", ";", "\\,", ",")
)

func escapeText(s string) string {
	return escaper.Replace(s)
}

func unescapeText(s string) string {
	return unescaper.Replace(s)
}
