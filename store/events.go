package store

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/text/cases"

	"caldr/ical"
	"caldr/model"
	"caldr/recur"
)

// Insert validates and writes a new event, assigning a fresh random id
// when none is set. The event's calendar defaults to the store's default
// calendar, which is created on demand; any other calendar must already
// exist.
func (s *Store) Insert(ev *model.Event) (string, error) {
	if ev.Calendar == "" {
		ev.Calendar = s.defaultCalendar
	}
	if ev.ID == "" {
		ev.ID = uuid.NewString()
	}
	if strings.ContainsAny(ev.ID, `/\`) {
		return "", fmt.Errorf("(*Store).Insert: bad event id %q", ev.ID)
	}
	if err := ev.Validate(); err != nil {
		return "", err
	}

	dir, err := s.calendarPath(ev.Calendar)
	if err != nil {
		return "", err
	}
	if _, err := os.Stat(dir); err != nil {
		switch {
		case !os.IsNotExist(err):
			return "", ioErr("stat", dir, err)
		case ev.Calendar != s.defaultCalendar:
			return "", fmt.Errorf("(*Store).Insert: %w: %s", ErrCalendarNotFound, ev.Calendar)
		default:
			if err := os.MkdirAll(dir, 0o755); err != nil {
				return "", ioErr("mkdir", dir, err)
			}
		}
	}

	path := filepath.Join(dir, ev.ID+".ics")
	if _, err := os.Stat(path); err == nil {
		return "", fmt.Errorf("(*Store).Insert: event %s already exists", ev.ID)
	} else if !os.IsNotExist(err) {
		return "", ioErr("stat", path, err)
	}
	if err := s.writeEvent(path, ev); err != nil {
		return "", err
	}
	return ev.ID, nil
}

// Get reads one event by id.
func (s *Store) Get(calendar, id string) (*model.Event, error) {
	path, err := s.findEventFile(calendar, id)
	if err != nil {
		return nil, err
	}
	return s.readEvent(path, calendar)
}

// Update applies a partial change to a stored event and rewrites its file,
// wherever in the calendar tree it lives. A validation failure leaves the
// file untouched.
func (s *Store) Update(calendar, id string, p model.Patch) (*model.Event, error) {
	path, err := s.findEventFile(calendar, id)
	if err != nil {
		return nil, err
	}
	ev, err := s.readEvent(path, calendar)
	if err != nil {
		return nil, err
	}
	updated, err := ev.Apply(p)
	if err != nil {
		return nil, err
	}
	if err := s.writeEvent(path, updated); err != nil {
		return nil, err
	}
	return updated, nil
}

// Delete removes the event file. The calendar directory stays, and a miss
// changes nothing.
func (s *Store) Delete(calendar, id string) error {
	path, err := s.findEventFile(calendar, id)
	if err != nil {
		return err
	}
	if err := os.Remove(path); err != nil {
		return ioErr("remove", path, err)
	}
	return nil
}

// List returns the records with at least one instance inside the window,
// sorted ascending by the start of their first instance there. An empty
// calendar name searches every calendar. Query terms must all match (AND),
// case-folded, against summary, location or description. One unreadable
// file fails the whole listing.
func (s *Store) List(calendar string, w recur.Window, query string) ([]*model.Event, error) {
	var calendars []string
	if calendar == "" {
		names, err := s.ListCalendars()
		if err != nil {
			return nil, err
		}
		calendars = names
	} else {
		calendars = []string{calendar}
	}

	terms := queryTerms(query)
	type entry struct {
		ev    *model.Event
		start time.Time
	}
	var entries []entry
	for _, name := range calendars {
		paths, err := s.eventFiles(name)
		if err != nil {
			return nil, err
		}
		for _, path := range paths {
			ev, err := s.readEvent(path, name)
			if err != nil {
				return nil, err
			}
			instances := ev.InstancesIn(w)
			if len(instances) == 0 || !matchesTerms(ev, terms) {
				continue
			}
			entries = append(entries, entry{ev: ev, start: instances[0].Start})
		}
	}

	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].start.Before(entries[j].start)
	})
	out := make([]*model.Event, len(entries))
	for i, e := range entries {
		out[i] = e.ev
	}
	return out, nil
}

func (s *Store) readEvent(path, calendar string) (*model.Event, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, ioErr("open", path, err)
	}
	defer f.Close()
	ev, err := ical.DecodeEvent(f)
	if err != nil {
		return nil, ioErr("decode", path, err)
	}
	ev.Calendar = calendar
	return ev, nil
}

// writeEvent replaces path atomically: encode into a temp file in the same
// directory, sync, then rename over the target. A crash mid-write never
// leaves a half-written event behind.
func (s *Store) writeEvent(path string, ev *model.Event) error {
	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, ".caldr-*.tmp")
	if err != nil {
		return ioErr("create", dir, err)
	}
	defer os.Remove(tmp.Name())

	if err := ical.EncodeEvent(tmp, ev); err != nil {
		tmp.Close()
		return ioErr("write", tmp.Name(), err)
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		return ioErr("sync", tmp.Name(), err)
	}
	if err := tmp.Chmod(0o644); err != nil {
		tmp.Close()
		return ioErr("chmod", tmp.Name(), err)
	}
	if err := tmp.Close(); err != nil {
		return ioErr("close", tmp.Name(), err)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		return ioErr("rename", path, err)
	}
	return nil
}

var foldCaser = cases.Fold()

func queryTerms(query string) []string {
	fields := strings.Fields(query)
	terms := make([]string, 0, len(fields))
	for _, f := range fields {
		terms = append(terms, foldCaser.String(f))
	}
	return terms
}

// matchesTerms requires every term to appear somewhere in the summary,
// location or description.
func matchesTerms(ev *model.Event, terms []string) bool {
	if len(terms) == 0 {
		return true
	}
	haystack := foldCaser.String(ev.Summary + "\n" + ev.Location + "\n" + ev.Description)
	for _, term := range terms {
		if !strings.Contains(haystack, term) {
			return false
		}
	}
	return true
}
