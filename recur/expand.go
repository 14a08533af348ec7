package recur

import "time"

// Window is a half-open time range [Start, End).
type Window struct {
	Start time.Time
	End   time.Time
}

// Contains reports whether t falls inside the window.
func (w Window) Contains(t time.Time) bool {
	return !t.Before(w.Start) && t.Before(w.End)
}

// Expand walks the occurrence start times of a series whose first
// occurrence is first, calling yield with the series ordinal and start of
// every occurrence inside the window, in ascending order. Expansion is
// lazy: it stops at the window end, after Count occurrences, or past the
// Until day, whichever comes first.
//
// Monthly and yearly advancement keeps the first occurrence's day of month
// as the nominal day and clamps it to each target month independently, so
// Jan 31 repeating monthly lands on Feb 29 and then back on Mar 31.
func (r *Rule) Expand(first time.Time, w Window, yield func(i int, start time.Time) bool) {
	var untilLimit time.Time
	if !r.Until.IsZero() {
		untilLimit = dayAfter(r.Until)
	}
	for i := 0; ; i++ {
		if r.Count > 0 && i >= r.Count {
			return
		}
		start := r.occurrence(first, i)
		if !untilLimit.IsZero() && !start.Before(untilLimit) {
			return
		}
		if !start.Before(w.End) {
			return
		}
		if !start.Before(w.Start) {
			if !yield(i, start) {
				return
			}
		}
	}
}

// Occurrences collects the Expand starts into a slice.
func (r *Rule) Occurrences(first time.Time, w Window) []time.Time {
	var out []time.Time
	r.Expand(first, w, func(_ int, start time.Time) bool {
		out = append(out, start)
		return true
	})
	return out
}

// occurrence computes occurrence i of the series from the first occurrence,
// never from the previous one, so clamping in a short month does not stick.
func (r *Rule) occurrence(first time.Time, i int) time.Time {
	switch r.Freq {
	case Weekly:
		return first.AddDate(0, 0, 7*i*r.Interval)
	case Monthly:
		return addMonths(first, i*r.Interval)
	case Yearly:
		return addMonths(first, 12*i*r.Interval)
	default:
		return first.AddDate(0, 0, i*r.Interval)
	}
}

// addMonths advances by whole months, clamping the day to the last valid
// day of the target month instead of rolling over.
func addMonths(t time.Time, months int) time.Time {
	total := int(t.Month()) - 1 + months
	year := t.Year() + total/12
	month := time.Month(total%12 + 1)
	day := t.Day()
	if last := daysIn(year, month); day > last {
		day = last
	}
	return time.Date(year, month, day, t.Hour(), t.Minute(), t.Second(), t.Nanosecond(), t.Location())
}

func daysIn(year int, month time.Month) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

func dayAfter(d time.Time) time.Time {
	return time.Date(d.Year(), d.Month(), d.Day(), 0, 0, 0, 0, d.Location()).AddDate(0, 0, 1)
}
