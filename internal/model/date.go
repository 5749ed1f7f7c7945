package model

import (
	"fmt"
	"regexp"
	"strconv"
	"time"
)

// Date is a calendar date without a time of day.
type Date struct {
	Year  int
	Month int
	Day   int
}

// Today returns the current local date.
func Today() Date {
	return FromGotime(time.Now())
}

// FromGotime returns the date of the given time in its location.
func FromGotime(t time.Time) Date {
	return Date{Year: t.Year(), Month: int(t.Month()), Day: t.Day()}
}

func (d Date) Prev() Date {
	if d.Day == 1 {
		if d.Month == 1 {
			d.Year--
			d.Month = 12
			d.Day = 31
		} else {
			d.Month--
			d.Day = d.DaysInMonth()
		}
	} else {
		d.Day--
	}
	return d
}

func (d Date) Next() Date {
	if d == d.GetLastOfMonth() {
		d.Day = 1
		if d.Month == 12 {
			d.Month = 1
			d.Year++
		} else {
			d.Month++
		}
	} else {
		d.Day++
	}
	return d
}

// AddDays returns the date n days after the receiver (before, for negative
// n).
func (d Date) AddDays(n int) Date {
	return FromGotime(d.toUTC().AddDate(0, 0, n))
}

// AddWeeks returns the date n weeks after the receiver (before, for negative
// n).
func (d Date) AddWeeks(n int) Date {
	return d.AddDays(7 * n)
}

// AddMonths returns the same day n months after the receiver (before, for
// negative n).
// If the target month is shorter than the receiver's day, the day is clamped
// to the target month's last day, i.E. 2023-01-31 plus one month is
// 2023-02-28.
func (d Date) AddMonths(n int) Date {
	months := d.Year*12 + (d.Month - 1) + n
	year := months / 12
	month := months%12 + 1
	if months < 0 && months%12 != 0 {
		year--
		month += 12
	}
	result := Date{Year: year, Month: month, Day: 1}
	if last := result.DaysInMonth(); d.Day > last {
		result.Day = last
	} else {
		result.Day = d.Day
	}
	return result
}

func (d Date) ToString() string {
	return fmt.Sprintf("%04d-%02d-%02d", d.Year, d.Month, d.Day)
}

// String implements fmt.Stringer, e.g. for logging.
func (d Date) String() string { return d.ToString() }

func (d Date) Valid() bool {
	if d.Month < 1 ||
		d.Month > 12 {
		return false
	}

	if d.Day < 1 ||
		d.Day > d.DaysInMonth() {
		return false
	}

	return true
}

var dateRegex = regexp.MustCompile(`^(\d{4})-(\d{2})-(\d{2})$`)

// FromString parses a date in the YYYY-MM-DD format.
func FromString(s string) (Date, error) {
	parsed := dateRegex.FindStringSubmatch(s)
	if len(parsed) != 4 {
		return Date{}, fmt.Errorf("date string '%s' not in YYYY-MM-DD format", s)
	}

	year, errY := strconv.Atoi(parsed[1])
	month, errM := strconv.Atoi(parsed[2])
	day, errD := strconv.Atoi(parsed[3])
	for _, err := range []error{errY, errM, errD} {
		if err != nil {
			return Date{}, fmt.Errorf("could not convert date string '%s' to integers (%w)", s, err)
		}
	}

	result := Date{Year: year, Month: month, Day: day}
	if !result.Valid() {
		return Date{}, fmt.Errorf("day %s (from string '%s') not valid", result.ToString(), s)
	}
	return result, nil
}

func lastDaysOfMonth() map[int]int {
	return map[int]int{
		1:  31,
		2:  28,
		3:  31,
		4:  30,
		5:  31,
		6:  30,
		7:  31,
		8:  31,
		9:  30,
		10: 31,
		11: 30,
		12: 31,
	}
}

// GetFirstOfMonth returns the first date of the month of the receiver.
func (d Date) GetFirstOfMonth() Date {
	return Date{
		Year:  d.Year,
		Month: d.Month,
		Day:   1,
	}
}

// GetLastOfMonth returns the last date of the month of the receiver.
func (d Date) GetLastOfMonth() Date {
	return Date{Year: d.Year, Month: d.Month, Day: d.DaysInMonth()}
}

// DaysInMonth returns the number of days in the month of the receiver.
func (d Date) DaysInMonth() int {
	if d.Month == 2 && d.isLeapYear() {
		return 29
	}
	return lastDaysOfMonth()[d.Month]
}

// WeekdayOfFirst returns the weekday of the first day of the receiver's month.
func (d Date) WeekdayOfFirst() time.Weekday {
	return d.GetFirstOfMonth().ToWeekday()
}

func (d Date) isLeapYear() bool {
	return d.Year%4 == 0 && (!(d.Year%100 == 0) || d.Year%400 == 0)
}

// Whether a date A is after a date B.
func (a Date) IsAfter(b Date) bool {
	switch {
	case a.Year != b.Year:
		return a.Year > b.Year
	case a.Month != b.Month:
		return a.Month > b.Month
	default:
		return a.Day > b.Day
	}
}

// Whether a date A is before a date B.
func (a Date) IsBefore(b Date) bool {
	return b.IsAfter(a)
}

func (d Date) Is(t time.Time) bool {
	tYear, tMonth, tDay := t.Date()
	return tYear == d.Year && int(tMonth) == d.Month && tDay == d.Day
}

// Week returns the bounds of the week the receiver is in, with weeks starting
// on Monday or Sunday as requested.
func (d Date) Week(firstDayMonday bool) (first Date, last Date) {
	offset := WeekdayIndex(d.ToWeekday(), firstDayMonday)
	first = d.AddDays(-offset)
	return first, first.AddDays(6)
}

// WeekdayIndex returns the column of the given weekday in a week starting on
// Monday (if firstDayMonday) or Sunday.
func WeekdayIndex(w time.Weekday, firstDayMonday bool) int {
	if firstDayMonday {
		return (int(w) + 6) % 7
	}
	return int(w)
}

// WeekdayAtIndex is the inverse of WeekdayIndex.
func WeekdayAtIndex(index int, firstDayMonday bool) time.Weekday {
	if firstDayMonday {
		return time.Weekday((index + 1) % 7)
	}
	return time.Weekday(index % 7)
}

func (d Date) ToWeekday() time.Weekday {
	return d.toUTC().Weekday()
}

func (d Date) ToGotime() time.Time {
	return time.Date(d.Year, time.Month(d.Month), d.Day, 0, 0, 0, 0, time.Now().Location())
}

func (d Date) toUTC() time.Time {
	return time.Date(d.Year, time.Month(d.Month), d.Day, 0, 0, 0, 0, time.UTC)
}
