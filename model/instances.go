package model

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/xyedo/rrule"

	"caldr/recur"
)

// Occurrence is one concrete (start, end) pair of an event, derived on
// demand and never persisted.
type Occurrence struct {
	Start time.Time
	End   time.Time
}

// Instance is an occurrence tied back to its record. Index is the ordinal
// of the occurrence within the whole series, starting at 0.
type Instance struct {
	Occurrence
	Index int
	Event *Event
}

// InstanceID references one occurrence of a recurring event, like
// "<event-id>-2". For a non-recurring event it is the event id itself.
func (in Instance) InstanceID() string {
	if in.Event.Recurrence == nil {
		return in.Event.ID
	}
	return fmt.Sprintf("%s-%d", in.Event.ID, in.Index)
}

// InstancesIn expands the record against a window. A non-recurring event
// yields itself when it overlaps the window; a recurring one yields every
// occurrence that starts inside it, each keeping the event's elapsed
// duration. Rules outside the native vocabulary are expanded by the
// RFC 5545 engine instead.
func (e *Event) InstancesIn(w recur.Window) []Instance {
	if e.Recurrence == nil {
		if e.Start.Before(w.End) && e.End.After(w.Start) {
			return []Instance{{Occurrence: Occurrence{Start: e.Start, End: e.End}, Event: e}}
		}
		return nil
	}
	if e.Recurrence.Native() {
		duration := e.Duration()
		var out []Instance
		e.Recurrence.Expand(e.Start, w, func(i int, start time.Time) bool {
			out = append(out, Instance{
				Occurrence: Occurrence{Start: start, End: start.Add(duration)},
				Index:      i,
				Event:      e,
			})
			return true
		})
		return out
	}
	return e.foreignInstances(w)
}

// foreignInstances walks the whole series from the event start so instance
// ordinals stay stable no matter where the window begins.
func (e *Event) foreignInstances(w recur.Window) []Instance {
	r, err := rrule.StrToRRule(e.Recurrence.String())
	if err != nil {
		slog.Warn("can't expand recurrence rule", "id", e.ID, "rrule", e.Recurrence.String(), "error", err)
		return nil
	}
	set := &rrule.Set{}
	set.RRule(r)
	set.DTStart(e.Start)

	duration := e.Duration()
	var out []Instance
	for i, start := range set.Between(e.Start, w.End, true) {
		if start.Before(w.Start) || !start.Before(w.End) {
			continue
		}
		out = append(out, Instance{
			Occurrence: Occurrence{Start: start, End: start.Add(duration)},
			Index:      i,
			Event:      e,
		})
	}
	return out
}
