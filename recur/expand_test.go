package recur_test

import (
	"testing"
	"time"

	"caldr/recur"
)

func at(y int, m time.Month, d, hour, min int) time.Time {
	return time.Date(y, m, d, hour, min, 0, 0, time.Local)
}

func window(start, end time.Time) recur.Window {
	return recur.Window{Start: start, End: end}
}

func sameTimes(got, want []time.Time) bool {
	if len(got) != len(want) {
		return false
	}
	for i := range got {
		if !got[i].Equal(want[i]) {
			return false
		}
	}
	return true
}

func TestExpandMonthlyClampsPerMonth(t *testing.T) {
	rule := recur.Rule{
		Freq:     recur.Monthly,
		Interval: 1,
		Until:    at(2024, time.April, 30, 0, 0),
	}
	first := at(2024, time.January, 31, 0, 0)
	w := window(at(2024, time.January, 1, 0, 0), at(2024, time.May, 1, 0, 0))

	got := rule.Occurrences(first, w)
	want := []time.Time{
		at(2024, time.January, 31, 0, 0),
		at(2024, time.February, 29, 0, 0),
		at(2024, time.March, 31, 0, 0),
		at(2024, time.April, 30, 0, 0),
	}
	if !sameTimes(got, want) {
		t.Errorf("Occurrences = %v, want %v", got, want)
	}
}

func TestExpandYearlyReturnsToLeapDay(t *testing.T) {
	rule := recur.Rule{Freq: recur.Yearly, Interval: 1}
	first := at(2024, time.February, 29, 9, 0)
	w := window(at(2024, time.January, 1, 0, 0), at(2029, time.January, 1, 0, 0))

	got := rule.Occurrences(first, w)
	want := []time.Time{
		at(2024, time.February, 29, 9, 0),
		at(2025, time.February, 28, 9, 0),
		at(2026, time.February, 28, 9, 0),
		at(2027, time.February, 28, 9, 0),
		at(2028, time.February, 29, 9, 0),
	}
	if !sameTimes(got, want) {
		t.Errorf("Occurrences = %v, want %v", got, want)
	}
}

func TestExpandDailyInterval(t *testing.T) {
	rule := recur.Rule{Freq: recur.Daily, Interval: 3}
	first := at(2024, time.January, 1, 10, 0)
	w := window(at(2024, time.January, 1, 0, 0), at(2024, time.January, 10, 0, 0))

	got := rule.Occurrences(first, w)
	want := []time.Time{
		at(2024, time.January, 1, 10, 0),
		at(2024, time.January, 4, 10, 0),
		at(2024, time.January, 7, 10, 0),
	}
	if !sameTimes(got, want) {
		t.Errorf("Occurrences = %v, want %v", got, want)
	}
}

func TestExpandWeeklyInterval(t *testing.T) {
	rule := recur.Rule{Freq: recur.Weekly, Interval: 2}
	first := at(2024, time.January, 1, 18, 30)
	w := window(at(2024, time.January, 1, 0, 0), at(2024, time.February, 1, 0, 0))

	got := rule.Occurrences(first, w)
	want := []time.Time{
		at(2024, time.January, 1, 18, 30),
		at(2024, time.January, 15, 18, 30),
		at(2024, time.January, 29, 18, 30),
	}
	if !sameTimes(got, want) {
		t.Errorf("Occurrences = %v, want %v", got, want)
	}
}

func TestExpandUntilCoversWholeDay(t *testing.T) {
	rule := recur.Rule{
		Freq:     recur.Daily,
		Interval: 1,
		Until:    at(2024, time.January, 3, 0, 0),
	}
	first := at(2024, time.January, 1, 18, 0)
	w := window(at(2024, time.January, 1, 0, 0), at(2024, time.February, 1, 0, 0))

	got := rule.Occurrences(first, w)
	want := []time.Time{
		at(2024, time.January, 1, 18, 0),
		at(2024, time.January, 2, 18, 0),
		at(2024, time.January, 3, 18, 0),
	}
	if !sameTimes(got, want) {
		t.Errorf("Occurrences = %v, want %v; until day must be included", got, want)
	}
}

func TestExpandCountLimit(t *testing.T) {
	rule := recur.Rule{Freq: recur.Monthly, Interval: 1, Count: 3}
	first := at(2024, time.January, 15, 0, 0)
	w := window(at(2024, time.January, 1, 0, 0), at(2025, time.January, 1, 0, 0))

	got := rule.Occurrences(first, w)
	if len(got) != 3 {
		t.Fatalf("Occurrences returned %d, want 3", len(got))
	}
	if last := at(2024, time.March, 15, 0, 0); !got[2].Equal(last) {
		t.Errorf("last occurrence = %v, want %v", got[2], last)
	}
}

func TestExpandReportsSeriesOrdinals(t *testing.T) {
	rule := recur.Rule{Freq: recur.Monthly, Interval: 1}
	first := at(2024, time.January, 31, 0, 0)
	w := window(at(2024, time.March, 1, 0, 0), at(2024, time.May, 1, 0, 0))

	var ordinals []int
	var starts []time.Time
	rule.Expand(first, w, func(i int, start time.Time) bool {
		ordinals = append(ordinals, i)
		starts = append(starts, start)
		return true
	})

	if len(ordinals) != 2 || ordinals[0] != 2 || ordinals[1] != 3 {
		t.Errorf("ordinals = %v, want [2 3]", ordinals)
	}
	want := []time.Time{at(2024, time.March, 31, 0, 0), at(2024, time.April, 30, 0, 0)}
	if !sameTimes(starts, want) {
		t.Errorf("starts = %v, want %v", starts, want)
	}
}

func TestExpandStopsWhenYieldReturnsFalse(t *testing.T) {
	rule := recur.Rule{Freq: recur.Daily, Interval: 1}
	first := at(2024, time.January, 1, 0, 0)
	w := window(at(2024, time.January, 1, 0, 0), at(2034, time.January, 1, 0, 0))

	calls := 0
	rule.Expand(first, w, func(int, time.Time) bool {
		calls++
		return calls < 5
	})
	if calls != 5 {
		t.Errorf("yield called %d times, want 5", calls)
	}
}

func TestExpandEmptyWindow(t *testing.T) {
	rule := recur.Rule{Freq: recur.Daily, Interval: 1}
	first := at(2024, time.January, 1, 0, 0)
	w := window(at(2024, time.March, 1, 0, 0), at(2024, time.March, 1, 0, 0))

	if got := rule.Occurrences(first, w); len(got) != 0 {
		t.Errorf("Occurrences = %v, want none for an empty window", got)
	}
}

func TestWindowContains(t *testing.T) {
	w := window(at(2024, time.January, 1, 0, 0), at(2024, time.February, 1, 0, 0))
	if !w.Contains(at(2024, time.January, 1, 0, 0)) {
		t.Error("window start must be inside")
	}
	if w.Contains(at(2024, time.February, 1, 0, 0)) {
		t.Error("window end must be outside")
	}
}
