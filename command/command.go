// Package command is the boundary between the terminal front end and the
// calendar core. Every operation takes the shared State, an explicit
// reference instant and raw option strings, and returns records, instances
// or typed errors. Flag parsing, rendering and prompting stay on the other
// side of this boundary.
package command

import (
	"strconv"
	"strings"

	"github.com/google/uuid"

	"caldr/utils"
)

// calendarOr falls back to the store's default calendar.
func calendarOr(st *utils.State, calendar string) string {
	if calendar == "" {
		return st.Store.Default()
	}
	return calendar
}

// ResolveID splits an instance reference like "<uuid>-2" into the record
// id and the instance ordinal. Only ids whose prefix parses as a UUID are
// instance references; every other id passes through whole, so record ids
// that merely end in digits are never misread.
func ResolveID(id string) (base string, instance int, ok bool) {
	cut := strings.LastIndex(id, "-")
	if cut < 0 {
		return id, 0, false
	}
	prefix, suffix := id[:cut], id[cut+1:]
	if suffix == "" {
		return id, 0, false
	}
	for _, r := range suffix {
		if r < '0' || r > '9' {
			return id, 0, false
		}
	}
	if _, err := uuid.Parse(prefix); err != nil {
		return id, 0, false
	}
	n, err := strconv.Atoi(suffix)
	if err != nil {
		return id, 0, false
	}
	return prefix, n, true
}
