// Package calendar provides a time-free calendar date and the day arithmetic
// countdown needs.
package calendar

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	cderrors "countdown/internal/errors"
)

// Date is a Gregorian calendar day with no time component.
type Date struct {
	Year  int
	Month time.Month
	Day   int
}

// New returns the date for year, month and day without validating it.
func New(year int, month time.Month, day int) Date {
	return Date{Year: year, Month: month, Day: day}
}

// FromTime returns the calendar day of t in t's own location.
func FromTime(t time.Time) Date {
	y, m, d := t.Date()
	return Date{Year: y, Month: m, Day: d}
}

// IsLeapYear reports whether year has a 29th of February.
func IsLeapYear(year int) bool {
	return year%4 == 0 && (year%100 != 0 || year%400 == 0)
}

// DaysInMonth returns the number of days in month of year, or 0 for a month
// outside 1..12.
func DaysInMonth(year int, month time.Month) int {
	switch month {
	case time.January, time.March, time.May, time.July, time.August, time.October, time.December:
		return 31
	case time.April, time.June, time.September, time.November:
		return 30
	case time.February:
		if IsLeapYear(year) {
			return 29
		}
		return 28
	}
	return 0
}

// Valid reports whether d names a real day.
func (d Date) Valid() bool {
	if d.Year < 1 {
		return false
	}
	if d.Month < time.January || d.Month > time.December {
		return false
	}
	return d.Day >= 1 && d.Day <= DaysInMonth(d.Year, d.Month)
}

// DayNumber returns the number of days between the Unix epoch and d.
func (d Date) DayNumber() int {
	t := time.Date(d.Year, d.Month, d.Day, 0, 0, 0, 0, time.UTC)
	return int(t.Unix() / 86400)
}

// DaysUntil returns the whole days from d to other; negative when other is
// earlier.
func (d Date) DaysUntil(other Date) int {
	return other.DayNumber() - d.DayNumber()
}

// String formats d as dd-mm-yyyy.
func (d Date) String() string {
	return fmt.Sprintf("%02d-%02d-%04d", d.Day, int(d.Month), d.Year)
}

// ParseDate parses a dd-mm-yyyy date. Day and month may omit zero padding;
// the year must have four digits.
func ParseDate(text string) (Date, error) {
	parts := strings.Split(strings.TrimSpace(text), "-")
	if len(parts) != 3 {
		return Date{}, cderrors.Newf(cderrors.KindInvalidArgument, "invalid date %q: expected dd-mm-yyyy", text)
	}
	if len(parts[2]) != 4 {
		return Date{}, cderrors.Newf(cderrors.KindInvalidArgument, "invalid date %q: year must have four digits", text)
	}
	var nums [3]int
	for i, p := range parts {
		n, ok := parseDigits(p)
		if !ok {
			return Date{}, cderrors.Newf(cderrors.KindInvalidArgument, "invalid date %q: expected dd-mm-yyyy", text)
		}
		nums[i] = n
	}
	d := Date{Year: nums[2], Month: time.Month(nums[1]), Day: nums[0]}
	if d.Year < 1 {
		return Date{}, cderrors.Newf(cderrors.KindInvalidArgument, "invalid date %q: year must be at least 1", text)
	}
	if d.Month < time.January || d.Month > time.December {
		return Date{}, cderrors.Newf(cderrors.KindInvalidArgument, "invalid date %q: month must be 1-12", text)
	}
	if !d.Valid() {
		return Date{}, cderrors.Newf(cderrors.KindInvalidArgument, "invalid date %q: %s %d has %d days",
			text, d.Month, d.Year, DaysInMonth(d.Year, d.Month))
	}
	return d, nil
}

// parseDigits accepts only ASCII decimal digits, so signs and spaces are
// rejected.
func parseDigits(s string) (int, bool) {
	if s == "" || len(s) > 4 {
		return 0, false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return 0, false
		}
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, false
	}
	return n, true
}
