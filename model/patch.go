package model

import "time"

// Patch is a partial update: nil fields keep the stored value. The
// recurrence rule is not editable in place; replacing it means recreating
// the event.
type Patch struct {
	Summary     *string
	Start       *time.Time
	End         *time.Time
	Location    *string
	Description *string
}

// IsZero reports whether the patch changes nothing.
func (p Patch) IsZero() bool {
	return p.Summary == nil && p.Start == nil && p.End == nil &&
		p.Location == nil && p.Description == nil
}

// Apply returns a copy of the event with the patch's fields set, after
// re-validating every invariant. The receiver is never modified, so a
// rejected patch leaves no partial change visible.
func (e *Event) Apply(p Patch) (*Event, error) {
	out := e.clone()
	if p.Summary != nil {
		out.Summary = *p.Summary
	}
	if p.Start != nil {
		out.Start = *p.Start
	}
	if p.End != nil {
		out.End = *p.End
	}
	if p.Location != nil {
		out.Location = *p.Location
	}
	if p.Description != nil {
		out.Description = *p.Description
	}
	if err := out.Validate(); err != nil {
		return nil, err
	}
	return out, nil
}
