package command

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"caldr/model"
	"caldr/recur"
	"caldr/utils"
)

// AddRequest carries the raw options for creating an event. Name and At
// are required, everything else is optional.
type AddRequest struct {
	Name        string
	At          string // start, <date>@<time>
	To          string // end, <date>@<time>; defaults to one hour after At
	Calendar    string
	Location    string
	Description string
	Repeat      string // daily, weekly, monthly or yearly
	Every       string // repeat stride, positive integer
	Until       string // last repeat day, date expression
}

// Add validates, stores and returns a new event. now anchors every
// relative date expression in the request.
func Add(st *utils.State, now time.Time, req AddRequest) (*model.Event, error) {
	ev := model.NewEvent()
	ev.Calendar = req.Calendar
	ev.Summary = utils.CleanupString(req.Name)
	ev.Location = utils.CleanupString(req.Location)
	ev.Description = strings.TrimSpace(req.Description)

	start, err := st.Parser.ParseDateTimeStrict(req.At, now)
	if err != nil {
		return nil, fmt.Errorf("Add: can't parse the start date: %w", err)
	}
	ev.Start = start

	if req.To == "" {
		ev.End = start.Add(time.Hour)
	} else {
		end, err := st.Parser.ParseDateTimeStrict(req.To, now)
		if err != nil {
			return nil, fmt.Errorf("Add: can't parse the end date: %w", err)
		}
		ev.End = end
	}

	rule, err := repeatRule(st, now, req.Repeat, req.Every, req.Until)
	if err != nil {
		return nil, err
	}
	ev.Recurrence = rule

	if _, err := st.Store.Insert(ev); err != nil {
		return nil, err
	}
	return ev, nil
}

// repeatRule builds a recurrence rule from the raw repeat options. Every
// and Until without Repeat have nothing to modify and are rejected.
func repeatRule(st *utils.State, now time.Time, repeat, every, until string) (*recur.Rule, error) {
	if repeat == "" {
		switch {
		case every != "":
			return nil, &model.ValidationError{Reason: "every is set but repeat is not"}
		case until != "":
			return nil, &model.ValidationError{Reason: "until is set but repeat is not"}
		}
		return nil, nil
	}

	freq, err := recur.ParseFrequency(repeat)
	if err != nil {
		return nil, &model.ValidationError{Reason: "repeat is not one of daily, weekly, monthly, yearly", Err: err}
	}
	rule := &recur.Rule{Freq: freq, Interval: 1}

	if every != "" {
		n, err := strconv.Atoi(every)
		if err != nil || n < 1 {
			return nil, &model.ValidationError{Reason: fmt.Sprintf("every is %q, want a positive integer", every)}
		}
		rule.Interval = n
	}
	if until != "" {
		day, err := st.Parser.ParseDate(until, now)
		if err != nil {
			return nil, fmt.Errorf("Add: can't parse the until date: %w", err)
		}
		rule.Until = day
	}
	return rule, nil
}
