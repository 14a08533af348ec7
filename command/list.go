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

// ListRequest narrows which instances come back. A blank From starts
// today, a blank To ends one month after From, a blank Calendar searches
// every calendar. Query terms must all match a record for it to show.
// Limit <= 0 means no limit.
type ListRequest struct {
	Query    string
	Calendar string
	From     string
	To       string
	Limit    int
}

// List expands every matching record into its instances inside the window
// and returns them sorted by start.
func List(st *utils.State, now time.Time, req ListRequest) ([]model.Instance, error) {
	w, err := listWindow(st, now, req.From, req.To)
	if err != nil {
		return nil, err
	}

	events, err := st.Store.List(req.Calendar, w, req.Query)
	if err != nil {
		return nil, err
	}

	var instances []model.Instance
	for _, ev := range events {
		instances = append(instances, ev.InstancesIn(w)...)
	}
	sort.SliceStable(instances, func(i, j int) bool {
		return instances[i].Start.Before(instances[j].Start)
	})
	if req.Limit > 0 && len(instances) > req.Limit {
		instances = instances[:req.Limit]
	}
	return instances, nil
}

// listWindow builds the half-open instance window from the raw from/to
// options.
func listWindow(st *utils.State, now time.Time, from, to string) (recur.Window, error) {
	start := dateexpr.Midnight(now)
	if from != "" {
		t, err := st.Parser.ParseDateTime(from, now)
		if err != nil {
			return recur.Window{}, fmt.Errorf("List: can't parse the from date: %w", err)
		}
		start = t
	}

	end := dateexpr.AddMonths(start, 1)
	if to != "" {
		t, err := st.Parser.ParseDateTime(to, now)
		if err != nil {
			return recur.Window{}, fmt.Errorf("List: can't parse the to date: %w", err)
		}
		end = t
	}

	if !end.After(start) {
		return recur.Window{}, fmt.Errorf("List: the to date (%s) is not after the from date (%s)",
			end.Format("2006-01-02 15:04"), start.Format("2006-01-02 15:04"))
	}
	return recur.Window{Start: start, End: end}, nil
}
