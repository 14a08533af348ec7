package dateexpr

import (
	"regexp"
	"strconv"
	"time"
)

const (
	monthPattern   = `january|february|march|april|may|june|july|august|september|october|november|december|jan|feb|mar|apr|jun|jul|aug|sep|oct|nov|dec`
	weekdayPattern = `monday|tuesday|wednesday|thursday|friday|saturday|sunday|mon|tue|wed|thu|fri|sat|sun`
)

var monthsByName = map[string]time.Month{
	"january": time.January, "jan": time.January,
	"february": time.February, "feb": time.February,
	"march": time.March, "mar": time.March,
	"april": time.April, "apr": time.April,
	"may":  time.May,
	"june": time.June, "jun": time.June,
	"july": time.July, "jul": time.July,
	"august": time.August, "aug": time.August,
	"september": time.September, "sep": time.September,
	"october": time.October, "oct": time.October,
	"november": time.November, "nov": time.November,
	"december": time.December, "dec": time.December,
}

var weekdaysByName = map[string]time.Weekday{
	"monday": time.Monday, "mon": time.Monday,
	"tuesday": time.Tuesday, "tue": time.Tuesday,
	"wednesday": time.Wednesday, "wed": time.Wednesday,
	"thursday": time.Thursday, "thu": time.Thursday,
	"friday": time.Friday, "fri": time.Friday,
	"saturday": time.Saturday, "sat": time.Saturday,
	"sunday": time.Sunday, "sun": time.Sunday,
}

var (
	fullYMDRe   = regexp.MustCompile(`^(\d{4})[-/](\d{1,2})[-/](\d{1,2})$`)
	fullDMYRe   = regexp.MustCompile(`^(\d{1,2})[-/](\d{1,2})[-/](\d{4})$`)
	shortDateRe = regexp.MustCompile(`^(\d{1,2})[-/](\d{1,2})$`)
	keywordRe   = regexp.MustCompile(`^(yesterday|yes|today|tomorrow|tom)$`)
	offsetRe    = regexp.MustCompile(`^(\d+)([dwmy])$`)
	weekdayRe   = regexp.MustCompile(`^(` + weekdayPattern + `)$`)
	monthRe     = regexp.MustCompile(`^(` + monthPattern + `)$`)
	monthYearRe = regexp.MustCompile(`^(` + monthPattern + `)[-/](\d{4})$`)
	yearMonthRe = regexp.MustCompile(`^(\d{4})[-/](` + monthPattern + `)$`)
	dayMonthRe  = regexp.MustCompile(`^(\d{1,2})[-/](` + monthPattern + `)$`)
	monthDayRe  = regexp.MustCompile(`^(` + monthPattern + `)[-/](\d{1,2})$`)
)

// fullDate recognizes YYYY-MM-DD and DD-MM-YYYY, with "-" or "/".
func fullDate(text string, ref time.Time) (time.Time, bool, bool) {
	if m := fullYMDRe.FindStringSubmatch(text); m != nil {
		d, ok := makeDate(atoi(m[1]), atoi(m[2]), atoi(m[3]), ref.Location())
		return d, true, ok
	}
	if m := fullDMYRe.FindStringSubmatch(text); m != nil {
		d, ok := makeDate(atoi(m[3]), atoi(m[2]), atoi(m[1]), ref.Location())
		return d, true, ok
	}
	return time.Time{}, false, false
}

// shortDate recognizes DD-MM with no year.
func shortDate(text string, ref time.Time) (time.Time, bool, bool) {
	m := shortDateRe.FindStringSubmatch(text)
	if m == nil {
		return time.Time{}, false, false
	}
	d, ok := upcomingDate(atoi(m[2]), atoi(m[1]), ref)
	return d, true, ok
}

// relativeKeyword recognizes yesterday/yes, today, tomorrow/tom and offsets
// like 3d, 2w, 1m, 1y counted from the reference date.
func relativeKeyword(text string, ref time.Time) (time.Time, bool, bool) {
	if m := keywordRe.FindStringSubmatch(text); m != nil {
		base := Midnight(ref)
		switch m[1] {
		case "yesterday", "yes":
			return base.AddDate(0, 0, -1), true, true
		case "tomorrow", "tom":
			return base.AddDate(0, 0, 1), true, true
		default:
			return base, true, true
		}
	}
	if m := offsetRe.FindStringSubmatch(text); m != nil {
		n, err := strconv.Atoi(m[1])
		if err != nil {
			return time.Time{}, true, false
		}
		base := Midnight(ref)
		switch m[2] {
		case "d":
			return base.AddDate(0, 0, n), true, true
		case "w":
			return base.AddDate(0, 0, 7*n), true, true
		case "m":
			return AddMonths(base, n), true, true
		default:
			return AddMonths(base, 12*n), true, true
		}
	}
	return time.Time{}, false, false
}

// weekdayName recognizes a weekday, full or 3-letter.
func weekdayName(text string, ref time.Time) (time.Time, bool, bool) {
	m := weekdayRe.FindStringSubmatch(text)
	if m == nil {
		return time.Time{}, false, false
	}
	target := weekdaysByName[m[1]]
	days := (int(target) - int(ref.Weekday()) + 7) % 7
	if days == 0 {
		// typing today's weekday means next week, not today
		days = 7
	}
	return Midnight(ref).AddDate(0, 0, days), true, true
}

// monthAlone recognizes a bare month name as the first day of that month,
// this year while the month has not passed yet, otherwise next year.
func monthAlone(text string, ref time.Time) (time.Time, bool, bool) {
	m := monthRe.FindStringSubmatch(text)
	if m == nil {
		return time.Time{}, false, false
	}
	month := monthsByName[m[1]]
	year := ref.Year()
	if ref.Month() > month {
		year++
	}
	return time.Date(year, month, 1, 0, 0, 0, 0, ref.Location()), true, true
}

// monthYear recognizes MMM-YYYY and YYYY-MMM as the first day of that exact
// month.
func monthYear(text string, ref time.Time) (time.Time, bool, bool) {
	var month time.Month
	var year int
	if m := monthYearRe.FindStringSubmatch(text); m != nil {
		month, year = monthsByName[m[1]], atoi(m[2])
	} else if m := yearMonthRe.FindStringSubmatch(text); m != nil {
		year, month = atoi(m[1]), monthsByName[m[2]]
	} else {
		return time.Time{}, false, false
	}
	return time.Date(year, month, 1, 0, 0, 0, 0, ref.Location()), true, true
}

// dayMonth recognizes DD-MMM and MMM-DD, year inferred like shortDate.
func dayMonth(text string, ref time.Time) (time.Time, bool, bool) {
	var month time.Month
	var day int
	if m := dayMonthRe.FindStringSubmatch(text); m != nil {
		day, month = atoi(m[1]), monthsByName[m[2]]
	} else if m := monthDayRe.FindStringSubmatch(text); m != nil {
		month, day = monthsByName[m[1]], atoi(m[2])
	} else {
		return time.Time{}, false, false
	}
	d, ok := upcomingDate(int(month), day, ref)
	return d, true, ok
}

// upcomingDate resolves a month and day with no year to the reference year,
// or to the year after when the date is invalid there or already past. The
// reference day itself counts as not passed.
func upcomingDate(month, day int, ref time.Time) (time.Time, bool) {
	if d, ok := makeDate(ref.Year(), month, day, ref.Location()); ok && !d.Before(Midnight(ref)) {
		return d, true
	}
	return makeDate(ref.Year()+1, month, day, ref.Location())
}

func makeDate(year, month, day int, loc *time.Location) (time.Time, bool) {
	if month < 1 || month > 12 || day < 1 || day > daysIn(year, time.Month(month)) {
		return time.Time{}, false
	}
	return time.Date(year, time.Month(month), day, 0, 0, 0, 0, loc), true
}

// Midnight truncates an instant to 00:00 of its calendar day, keeping the
// location.
func Midnight(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// AddMonths advances by whole months, clamping the day to the last valid
// day of the target month instead of rolling over.
func AddMonths(t time.Time, months int) time.Time {
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
