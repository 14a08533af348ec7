// Package model holds the event record, its invariants, and the expansion
// of a record into concrete display instances.
package model

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"caldr/recur"
)

// ValidationError rejects an event whose fields break the record
// invariants. The operation that produced it leaves no partial change
// behind.
type ValidationError struct {
	Reason string
	Err    error
}

func (e *ValidationError) Error() string {
	if e.Err != nil {
		return "invalid event: " + e.Reason + ": " + e.Err.Error()
	}
	return "invalid event: " + e.Reason
}

func (e *ValidationError) Unwrap() error {
	return e.Err
}

// Event is the persisted record of a calendar entry. Start and End are
// wall-clock instants in the local zone with End always after Start. A nil
// Recurrence means a single occurrence. Extra carries VEVENT lines outside
// this tool's vocabulary so files written by other clients survive a
// rewrite.
type Event struct {
	ID          string
	Calendar    string
	Summary     string
	Start       time.Time
	End         time.Time
	Location    string
	Description string
	Recurrence  *recur.Rule
	Extra       []string
}

// NewEvent returns an event with a fresh random id.
func NewEvent() *Event {
	return &Event{ID: uuid.NewString()}
}

// Validate checks the record invariants.
func (e *Event) Validate() error {
	switch {
	case strings.TrimSpace(e.Summary) == "":
		return &ValidationError{Reason: "summary is blank"}
	case e.Start.IsZero():
		return &ValidationError{Reason: "start date is blank"}
	case e.End.IsZero():
		return &ValidationError{Reason: "end date is blank"}
	case !e.End.After(e.Start):
		return &ValidationError{Reason: "end date must be after start date"}
	}
	if e.Recurrence != nil {
		if err := e.Recurrence.Validate(); err != nil {
			return &ValidationError{Reason: "recurrence rule is invalid", Err: err}
		}
		startDay := time.Date(e.Start.Year(), e.Start.Month(), e.Start.Day(), 0, 0, 0, 0, e.Start.Location())
		if until := e.Recurrence.Until; !until.IsZero() && until.Before(startDay) {
			return &ValidationError{Reason: "until date is before the first occurrence"}
		}
	}
	return nil
}

// Duration is the elapsed time between start and end. Every expanded
// occurrence keeps it, including across daylight saving shifts.
func (e *Event) Duration() time.Duration {
	return e.End.Sub(e.Start)
}

func (e *Event) clone() *Event {
	out := *e
	if e.Recurrence != nil {
		rule := *e.Recurrence
		out.Recurrence = &rule
	}
	out.Extra = append([]string(nil), e.Extra...)
	return &out
}
