// Package dateutil provides calendar arithmetic and human-friendly
// time formatting.
package dateutil

import (
	"fmt"
	"strings"
	"time"
)

type interval struct {
	seconds int64
	name    string
}

// Coarse calendar buckets for relative formatting; months are 30 days,
// years 365.
var intervals = []interval{
	{31536000, "year"},
	{2592000, "month"},
	{604800, "week"},
	{86400, "day"},
	{3600, "hour"},
	{60, "minute"},
	{1, "second"},
}

// TimeAgo formats how long ago t was relative to now, like "2 hours
// ago". A future t yields "in the future".
func TimeAgo(t, now time.Time) string {
	seconds := int64(now.Sub(t).Seconds())
	if seconds < 0 {
		return "in the future"
	}
	for _, iv := range intervals {
		count := seconds / iv.seconds
		if count >= 1 {
			return fmt.Sprintf("%d %s%s ago", count, iv.name, plural(count))
		}
	}
	return "just now"
}

// TimeUntil formats how far in the future t is relative to now, like
// "in 2 hours". A past t yields "already passed".
func TimeUntil(t, now time.Time) string {
	seconds := int64(t.Sub(now).Seconds())
	if seconds < 0 {
		return "already passed"
	}
	for _, iv := range intervals {
		count := seconds / iv.seconds
		if count >= 1 {
			return fmt.Sprintf("in %d %s%s", count, iv.name, plural(count))
		}
	}
	return "now"
}

func plural(n int64) string {
	if n != 1 {
		return "s"
	}
	return ""
}

// BusinessDaysBetween counts weekdays in [start, end), excluding the
// given holidays. Dates are compared by calendar day.
func BusinessDaysBetween(start, end time.Time, holidays []time.Time) int {
	days := 0
	for current := startOfDay(start); current.Before(startOfDay(end)); current = current.AddDate(0, 0, 1) {
		if isBusinessDay(current, holidays) {
			days++
		}
	}
	return days
}

// AddBusinessDays returns the date that is the given number of weekdays
// after start, skipping holidays.
func AddBusinessDays(start time.Time, days int, holidays []time.Time) time.Time {
	current := startOfDay(start)
	for added := 0; added < days; {
		current = current.AddDate(0, 0, 1)
		if isBusinessDay(current, holidays) {
			added++
		}
	}
	return current
}

func isBusinessDay(day time.Time, holidays []time.Time) bool {
	if IsWeekend(day) {
		return false
	}
	for _, h := range holidays {
		if sameDay(day, h) {
			return false
		}
	}
	return true
}

func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

func sameDay(a, b time.Time) bool {
	return a.Year() == b.Year() && a.YearDay() == b.YearDay()
}

// FormatDuration renders a duration as its largest units, like
// "1 hour, 1 minute". granularity caps how many units appear.
func FormatDuration(d time.Duration, granularity int) string {
	if granularity <= 0 {
		granularity = 2
	}

	units := []struct {
		name    string
		seconds int64
	}{
		{"day", 86400},
		{"hour", 3600},
		{"minute", 60},
		{"second", 1},
	}

	seconds := int64(d.Seconds())
	var parts []string
	for _, u := range units {
		value := seconds / u.seconds
		if value > 0 {
			seconds -= value * u.seconds
			parts = append(parts, fmt.Sprintf("%d %s%s", value, u.name, plural(value)))
		}
	}

	if len(parts) == 0 {
		return "0 seconds"
	}
	if len(parts) > granularity {
		parts = parts[:granularity]
	}
	return strings.Join(parts, ", ")
}

// WeekDates returns the 7 days of the week containing t, starting
// Monday (or Sunday when startMonday is false).
func WeekDates(t time.Time, startMonday bool) []time.Time {
	day := startOfDay(t)
	weekday := int(day.Weekday()) // Sunday = 0

	var offset int
	if startMonday {
		offset = (weekday + 6) % 7
	} else {
		offset = weekday
	}

	start := day.AddDate(0, 0, -offset)
	dates := make([]time.Time, 7)
	for i := range dates {
		dates[i] = start.AddDate(0, 0, i)
	}
	return dates
}

// MonthDates returns every day of the given month.
func MonthDates(year int, month time.Month) []time.Time {
	first := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	var dates []time.Time
	for d := first; d.Month() == month; d = d.AddDate(0, 0, 1) {
		dates = append(dates, d)
	}
	return dates
}

// IsWeekend reports whether t falls on Saturday or Sunday.
func IsWeekend(t time.Time) bool {
	wd := t.Weekday()
	return wd == time.Saturday || wd == time.Sunday
}

// IsLeapYear reports whether year is a leap year.
func IsLeapYear(year int) bool {
	return year%4 == 0 && (year%100 != 0 || year%400 == 0)
}

// Age returns whole years between birth and reference, accounting for
// whether the birthday has occurred yet in the reference year.
func Age(birth, reference time.Time) int {
	years := reference.Year() - birth.Year()
	if reference.Month() < birth.Month() ||
		(reference.Month() == birth.Month() && reference.Day() < birth.Day()) {
		years--
	}
	return years
}

// Quarter returns the calendar quarter (1-4) containing t.
func Quarter(t time.Time) int {
	return (int(t.Month())-1)/3 + 1
}

// QuarterRange returns the first and last day of a quarter.
func QuarterRange(year, quarter int) (time.Time, time.Time, error) {
	if quarter < 1 || quarter > 4 {
		return time.Time{}, time.Time{}, fmt.Errorf("quarter must be 1-4, got %d", quarter)
	}

	startMonth := time.Month((quarter-1)*3 + 1)
	start := time.Date(year, startMonth, 1, 0, 0, 0, 0, time.UTC)
	end := start.AddDate(0, 3, -1)
	return start, end, nil
}

// defaultLayouts are tried in order by ParseDate.
var defaultLayouts = []string{
	"2006-01-02",
	"02/01/2006",
	"01/02/2006",
	"2006/01/02",
	"02-01-2006",
	"January 2, 2006",
	"Jan 2, 2006",
	"2006-01-02 15:04:05",
	"2006-01-02T15:04:05",
}

// ParseDate tries each layout in turn and returns the first parse that
// succeeds. With no layouts given a standard set is used.
func ParseDate(value string, layouts ...string) (time.Time, error) {
	if len(layouts) == 0 {
		layouts = defaultLayouts
	}
	for _, layout := range layouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("no layout matches %q", value)
}
