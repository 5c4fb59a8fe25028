package qif2ledger

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// DateFormat is the canonical format used to render dates in ledger output.
const DateFormat = "2006/01/02"

// Date represents a transaction date with day-level granularity.
type Date struct {
	y int        // year
	m time.Month // month
	d int        // day
}

// NewDate returns a Date for the given year, month, and day.
func NewDate(year int, month time.Month, day int) Date {
	return Date{year, month, day}
}

// Year returns the year of the date.
func (d Date) Year() int { return d.y }

// Month returns the month of the date.
func (d Date) Month() time.Month { return d.m }

// Day returns the day of the month.
func (d Date) Day() int { return d.d }

// String formats the date in the canonical ledger form YYYY/MM/DD.
func (d Date) String() string { return d.time().Format(DateFormat) }

// IsZero returns true if the date is the zero value.
func (d Date) IsZero() bool { return d.y == 0 && d.m == 0 && d.d == 0 }

// Before reports whether the day d is before x.
func (d Date) Before(x Date) bool { return d.time().Before(x.time()) }

// After reports whether the day d is after x.
func (d Date) After(x Date) bool { return d.time().After(x.time()) }

// time returns a time.Time that is a canonical representation of that day (at midnight UTC).
func (d Date) time() time.Time { return time.Date(d.y, d.m, d.d, 0, 0, 0, 0, time.UTC) }

// ParseDate parses a QIF date value.
//
// Quicken exports dates as MM/DD/YYYY or, in older files, MM/DD'YY where the
// two-digit year covers a fifty year window (years up to 50 are 2000s, the
// rest 1900s). Single digit fields may be padded with a space instead of a
// zero (e.g. "11/ 8'16"). The canonical output form YYYY/MM/DD is accepted
// too, so that normalizing an already normalized date is the identity.
func ParseDate(str string) (Date, error) {
	str = strings.TrimSpace(str)
	if str == "" {
		return Date{}, fmt.Errorf("empty date")
	}

	var mm, dd, yy string
	switch {
	case strings.Contains(str, "'"):
		// MM/DD'YY
		md, y, _ := strings.Cut(str, "'")
		var ok bool
		mm, dd, ok = strings.Cut(md, "/")
		if !ok {
			return Date{}, fmt.Errorf("invalid date %q: want MM/DD'YY", str)
		}
		yy = y
	default:
		parts := strings.Split(str, "/")
		if len(parts) != 3 {
			return Date{}, fmt.Errorf("invalid date %q: want MM/DD/YYYY or MM/DD'YY", str)
		}
		if len(strings.TrimSpace(parts[0])) == 4 {
			// already canonical YYYY/MM/DD
			yy, mm, dd = parts[0], parts[1], parts[2]
		} else {
			mm, dd, yy = parts[0], parts[1], parts[2]
		}
	}

	month, err := dateField(mm)
	if err != nil {
		return Date{}, fmt.Errorf("invalid month in date %q: %w", str, err)
	}
	day, err := dateField(dd)
	if err != nil {
		return Date{}, fmt.Errorf("invalid day in date %q: %w", str, err)
	}
	year, err := dateField(yy)
	if err != nil {
		return Date{}, fmt.Errorf("invalid year in date %q: %w", str, err)
	}
	if len(strings.TrimSpace(yy)) <= 2 {
		// short year covers the 1951-2050 window
		if year <= 50 {
			year += 2000
		} else {
			year += 1900
		}
	}

	d := NewDate(year, time.Month(month), day)
	// reject dates that time.Date would silently normalize, like 02/30
	if y, m, dom := d.time().Date(); y != year || m != time.Month(month) || dom != day {
		return Date{}, fmt.Errorf("invalid date %q: no such calendar day", str)
	}
	return d, nil
}

// dateField parses one numeric date component, tolerating the space padding
// Quicken uses in place of a leading zero.
func dateField(s string) (int, error) {
	s = strings.TrimSpace(s)
	n, err := strconv.Atoi(s)
	if err != nil || n < 0 {
		return 0, fmt.Errorf("%q is not a number", s)
	}
	return n, nil
}
