// Package store persists event records as one iCalendar file per event
// under per-calendar directories, the same tree the external sync tool
// synchronizes. Lookups search calendar trees recursively because synced
// collections may nest; new events are written directly under their
// calendar directory.
package store

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// DefaultCalendar receives events that name no calendar. It is the only
// calendar created on demand; all others must be created explicitly.
const DefaultCalendar = "personal"

var (
	ErrEventNotFound    = errors.New("event not found")
	ErrCalendarNotFound = errors.New("calendar not found")
)

// IOError wraps a persistence failure with the operation and path that
// produced it.
type IOError struct {
	Op   string
	Path string
	Err  error
}

func (e *IOError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Op, e.Path, e.Err)
}

func (e *IOError) Unwrap() error {
	return e.Err
}

// ioErr logs the failure with its path context and wraps it.
func ioErr(op, path string, err error) error {
	slog.Error("store io failure", "op", op, "path", path, "error", err)
	return &IOError{Op: op, Path: path, Err: err}
}

// Store reads and writes the event files under one root directory.
type Store struct {
	root            string
	defaultCalendar string
}

// New opens a store rooted at dir. Nothing is created until the first
// write.
func New(dir string) *Store {
	return &Store{root: dir, defaultCalendar: DefaultCalendar}
}

// Root returns the directory the store works under.
func (s *Store) Root() string {
	return s.root
}

// Default returns the calendar receiving events that name none.
func (s *Store) Default() string {
	return s.defaultCalendar
}

// SetDefaultCalendar renames the on-demand calendar that receives events
// naming none. A blank name keeps the current one.
func (s *Store) SetDefaultCalendar(name string) {
	if name != "" {
		s.defaultCalendar = name
	}
}

func (s *Store) calendarPath(name string) (string, error) {
	if name == "" || name == "." || name == ".." || strings.ContainsAny(name, `/\`) {
		return "", fmt.Errorf("(*Store).calendarPath: bad calendar name %q", name)
	}
	return filepath.Join(s.root, name), nil
}

// CreateCalendar makes a new calendar directory.
func (s *Store) CreateCalendar(name string) error {
	dir, err := s.calendarPath(name)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return ioErr("mkdir", dir, err)
	}
	return nil
}

// EnsureDefault creates the default calendar when missing.
func (s *Store) EnsureDefault() error {
	return s.CreateCalendar(s.defaultCalendar)
}

// ListCalendars returns the sorted names of calendar directories holding
// at least one event file. Hidden directories are skipped.
func (s *Store) ListCalendars() ([]string, error) {
	entries, err := os.ReadDir(s.root)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, ioErr("readdir", s.root, err)
	}
	var names []string
	for _, entry := range entries {
		if !entry.IsDir() || strings.HasPrefix(entry.Name(), ".") {
			continue
		}
		paths, err := s.eventFiles(entry.Name())
		if err != nil {
			return nil, err
		}
		if len(paths) > 0 {
			names = append(names, entry.Name())
		}
	}
	sort.Strings(names)
	return names, nil
}

// eventFiles returns every .ics path under the calendar, nested collection
// directories included, in lexical order.
func (s *Store) eventFiles(calendar string) ([]string, error) {
	dir, err := s.calendarPath(calendar)
	if err != nil {
		return nil, err
	}
	if _, err := os.Stat(dir); err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("(*Store).eventFiles: %w: %s", ErrCalendarNotFound, calendar)
		}
		return nil, ioErr("stat", dir, err)
	}
	var paths []string
	err = filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() && strings.EqualFold(filepath.Ext(path), ".ics") {
			paths = append(paths, path)
		}
		return nil
	})
	if err != nil {
		return nil, ioErr("walk", dir, err)
	}
	return paths, nil
}

// findEventFile locates the file holding the event id inside a calendar
// tree.
func (s *Store) findEventFile(calendar, id string) (string, error) {
	dir, err := s.calendarPath(calendar)
	if err != nil {
		return "", err
	}
	if _, err := os.Stat(dir); err != nil {
		if os.IsNotExist(err) {
			return "", fmt.Errorf("(*Store).findEventFile: %w: %s", ErrCalendarNotFound, calendar)
		}
		return "", ioErr("stat", dir, err)
	}
	filename := id + ".ics"
	var found string
	err = filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() && d.Name() == filename {
			found = path
			return fs.SkipAll
		}
		return nil
	})
	if err != nil {
		return "", ioErr("walk", dir, err)
	}
	if found == "" {
		return "", fmt.Errorf("(*Store).findEventFile: no event %q in calendar %q: %w", id, calendar, ErrEventNotFound)
	}
	return found, nil
}
