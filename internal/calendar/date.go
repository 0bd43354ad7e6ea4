// Package calendar holds the date arithmetic behind every fortune lookup:
// the immutable birth-date value, age computation, date-string parsing,
// and the legacy spreadsheet serial numbering that the animal dataset
// and the calibration formulas are keyed on.
package calendar

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// ErrInvalidDate is returned for any input that is not a real calendar date.
// It is never swallowed by a fallback path.
var ErrInvalidDate = errors.New("invalid date")

// Date is a calendar date without time or zone. The zero value is not valid;
// construct dates with New or Parse.
type Date struct {
	Year  int
	Month int
	Day   int
}

// New validates (year, month, day) and returns the Date.
func New(year, month, day int) (Date, error) {
	if month < 1 || month > 12 {
		return Date{}, fmt.Errorf("%w: month %d out of range 1-12", ErrInvalidDate, month)
	}
	if day < 1 || day > daysIn(year, month) {
		return Date{}, fmt.Errorf("%w: %04d-%02d has no day %d", ErrInvalidDate, year, month, day)
	}
	return Date{Year: year, Month: month, Day: day}, nil
}

// MustNew is like New but panics on an invalid date. Intended for
// tables of known-good dates.
func MustNew(year, month, day int) Date {
	d, err := New(year, month, day)
	if err != nil {
		panic(err)
	}
	return d
}

// Parse reads "YYYY-MM-DD", "YYYY/MM/DD" or "YYYY.MM.DD". Zero padding is
// optional and surrounding whitespace is ignored.
func Parse(s string) (Date, error) {
	trimmed := strings.TrimSpace(s)
	normalized := strings.NewReplacer("/", "-", ".", "-").Replace(trimmed)

	parts := strings.Split(normalized, "-")
	if len(parts) != 3 {
		return Date{}, fmt.Errorf("%w: %q (want YYYY-MM-DD or YYYY/MM/DD)", ErrInvalidDate, s)
	}

	nums := make([]int, 3)
	for i, p := range parts {
		n, err := strconv.Atoi(p)
		if err != nil {
			return Date{}, fmt.Errorf("%w: %q: %v", ErrInvalidDate, s, err)
		}
		nums[i] = n
	}

	return New(nums[0], nums[1], nums[2])
}

// String renders the date as YYYY-MM-DD.
func (d Date) String() string {
	return fmt.Sprintf("%04d-%02d-%02d", d.Year, d.Month, d.Day)
}

// monthDayBefore reports whether (month, day) of d comes before that of
// other, ignoring the year.
func (d Date) monthDayBefore(other Date) bool {
	if d.Month != other.Month {
		return d.Month < other.Month
	}
	return d.Day < other.Day
}

// Before reports whether d falls strictly earlier than other.
func (d Date) Before(other Date) bool {
	if d.Year != other.Year {
		return d.Year < other.Year
	}
	return d.monthDayBefore(other)
}

// Age returns the completed years between birth and today. The birthday
// itself counts as reached.
func Age(birth, today Date) int {
	age := today.Year - birth.Year
	if today.monthDayBefore(birth) {
		age--
	}
	return age
}

// Today returns the current local date.
func Today() Date {
	now := timeNow()
	return Date{Year: now.Year(), Month: int(now.Month()), Day: now.Day()}
}

func (d Date) time() time.Time {
	return time.Date(d.Year, time.Month(d.Month), d.Day, 0, 0, 0, 0, time.UTC)
}

func daysIn(year, month int) int {
	// Day 0 of the following month is the last day of this one.
	return time.Date(year, time.Month(month)+1, 0, 0, 0, 0, 0, time.UTC).Day()
}
