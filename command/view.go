package command

import (
	"fmt"
	"sort"
	"time"

	"caldr/dateexpr"
	"caldr/model"
	"caldr/recur"
	"caldr/utils"
)

// ViewMode picks the bucket size of a calendar view.
type ViewMode string

const (
	ViewDay   ViewMode = "day"
	ViewWeek  ViewMode = "week"
	ViewMonth ViewMode = "month"
)

// ViewRequest describes a calendar view: Count consecutive buckets of Mode
// size, the first one containing Date (default: the reference day).
type ViewRequest struct {
	Date     string
	Mode     ViewMode // default day
	Calendar string
	Count    int // default 1
}

// Bucket is one day, week or month of the view with the instances
// overlapping it, sorted by start. Weeks run Monday through Sunday.
type Bucket struct {
	Start     time.Time
	End       time.Time
	Instances []model.Instance
}

// View expands the calendar into consecutive buckets. An instance spanning
// a bucket boundary appears in every bucket it overlaps.
func View(st *utils.State, now time.Time, req ViewRequest) ([]Bucket, error) {
	anchor := now
	if req.Date != "" {
		day, err := st.Parser.ParseDate(req.Date, now)
		if err != nil {
			return nil, fmt.Errorf("View: can't parse the date: %w", err)
		}
		anchor = day
	}
	mode := req.Mode
	if mode == "" {
		mode = ViewDay
	}
	count := req.Count
	if count < 1 {
		count = 1
	}

	buckets := make([]Bucket, count)
	for i := range buckets {
		start, end, err := bucketBounds(anchor, mode, i)
		if err != nil {
			return nil, err
		}
		buckets[i].Start, buckets[i].End = start, end
	}

	whole := recur.Window{Start: buckets[0].Start, End: buckets[count-1].End}
	events, err := st.Store.List(req.Calendar, whole, "")
	if err != nil {
		return nil, err
	}

	for i := range buckets {
		bw := recur.Window{Start: buckets[i].Start, End: buckets[i].End}
		for _, ev := range events {
			buckets[i].Instances = append(buckets[i].Instances, ev.InstancesIn(bw)...)
		}
		instances := buckets[i].Instances
		sort.SliceStable(instances, func(a, b int) bool {
			return instances[a].Start.Before(instances[b].Start)
		})
	}
	return buckets, nil
}

// bucketBounds returns the i-th bucket after the one containing anchor.
func bucketBounds(anchor time.Time, mode ViewMode, i int) (time.Time, time.Time, error) {
	day := dateexpr.Midnight(anchor)
	switch mode {
	case ViewDay:
		start := day.AddDate(0, 0, i)
		return start, start.AddDate(0, 0, 1), nil
	case ViewWeek:
		monday := day.AddDate(0, 0, -((int(day.Weekday()) + 6) % 7))
		start := monday.AddDate(0, 0, 7*i)
		return start, start.AddDate(0, 0, 7), nil
	case ViewMonth:
		first := time.Date(day.Year(), day.Month(), 1, 0, 0, 0, 0, day.Location())
		start := first.AddDate(0, i, 0)
		return start, start.AddDate(0, 1, 0), nil
	default:
		return time.Time{}, time.Time{}, fmt.Errorf("View: unknown mode %q", mode)
	}
}
