package utils

import (
	"log/slog"
	"os"
	"path/filepath"
)

type Config struct {
	calendarDir     string
	defaultCalendar string
	logLevel        slog.Level
	naturalDates    bool
}

func NewConfig() *Config {
	return &Config{
		calendarDir: func() string {
			dir := os.Getenv("CALDR_DIR")
			if dir == "" {
				home, err := os.UserHomeDir()
				if err != nil {
					slog.Error("CALDR_DIR is not set and the home directory is unknown", "error", err)
					os.Exit(1)
				}
				dir = filepath.Join(home, ".calendars")
				slog.Warn("CALDR_DIR is not set, using the default", "dir", dir)
			}
			slog.Debug("env", "CALDR_DIR", dir)
			return filepath.Clean(dir)
		}(),

		defaultCalendar: func() string {
			name := os.Getenv("CALDR_DEFAULT_CALENDAR")
			if name == "" {
				name = "personal"
			}
			slog.Debug("env", "CALDR_DEFAULT_CALENDAR", name)
			return name
		}(),

		logLevel: func() slog.Level {
			levelStr := os.Getenv("CALDR_LOG_LEVEL")
			var level slog.Level
			switch levelStr {
			case "debug":
				level = slog.LevelDebug
			case "", "info":
				level = slog.LevelInfo
			case "warn":
				level = slog.LevelWarn
			case "error":
				level = slog.LevelError
			default:
				slog.Warn("invalid CALDR_LOG_LEVEL, using info", "value", levelStr)
				level = slog.LevelInfo
			}
			slog.Debug("env", "CALDR_LOG_LEVEL", level)
			return level
		}(),

		naturalDates: func() bool {
			naturalStr := os.Getenv("CALDR_NATURAL_DATES")
			natural := naturalStr == "true" || naturalStr == "1"
			slog.Debug("env", "CALDR_NATURAL_DATES", natural)
			return natural
		}(),
	}
}

// Get CALDR_DIR env, default to ~/.calendars
func (c *Config) GetCalendarDir() string {
	return c.calendarDir
}

// Get CALDR_DEFAULT_CALENDAR env, default to personal
func (c *Config) GetDefaultCalendar() string {
	return c.defaultCalendar
}

// Get CALDR_LOG_LEVEL env, default to info
func (c *Config) GetLogLevel() slog.Level {
	return c.logLevel
}

// Get CALDR_NATURAL_DATES env, default to false
func (c *Config) GetNaturalDates() bool {
	return c.naturalDates
}
