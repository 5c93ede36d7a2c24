package utils

import (
	"fmt"
	"math"
	"time"

	"github.com/julianstephens/studydash/internal/constants"
)

const day = 24 * time.Hour

// ParseTimeToMinutes parses a time string (HH:MM) and returns the number of minutes from midnight.
func ParseTimeToMinutes(timeStr string) (int, error) {
	t, err := time.Parse(constants.TimeFormat, timeStr)
	if err != nil {
		return 0, err
	}
	return t.Hour()*60 + t.Minute(), nil
}

// FormatTime renders "HH:MM" as "h:MM AM/PM". Unparseable input is returned unchanged.
func FormatTime(hhmm string) string {
	t, err := time.Parse(constants.TimeFormat, hhmm)
	if err != nil {
		return hhmm
	}
	return t.Format("3:04 PM")
}

// FormatTimeRange renders a class meeting as "9:00 AM - 10:30 AM".
func FormatTimeRange(start, end string) string {
	return fmt.Sprintf("%s - %s", FormatTime(start), FormatTime(end))
}

// FormatDate renders t as "January 2, 2006" in local time.
func FormatDate(t time.Time) string {
	return t.Local().Format("January 2, 2006")
}

// FormatShortDate renders t as "Jan 2" in local time.
func FormatShortDate(t time.Time) string {
	return t.Local().Format("Jan 2")
}

// DayName returns the full English weekday name.
func DayName(d time.Weekday) string {
	return d.String()
}

// ShortDayName returns the three letter weekday abbreviation.
func ShortDayName(d time.Weekday) string {
	return d.String()[:3]
}

// RemainingDays returns the whole days from now until due, rounded up.
// Past due dates give zero or a negative count.
func RemainingDays(due, now time.Time) int {
	return int(math.Ceil(float64(due.Sub(now)) / float64(day)))
}

// sameDay compares calendar dates in local time.
func sameDay(a, b time.Time) bool {
	a, b = a.Local(), b.Local()
	return a.Year() == b.Year() && a.YearDay() == b.YearDay()
}

// IsToday reports whether t falls on the same local calendar date as now.
func IsToday(t, now time.Time) bool {
	return sameDay(t, now)
}

// IsTomorrow reports whether t falls on the local calendar date after now.
func IsTomorrow(t, now time.Time) bool {
	n := now.Local()
	return sameDay(t, time.Date(n.Year(), n.Month(), n.Day()+1, 12, 0, 0, 0, time.Local))
}

// RelativeTimeString describes a due date relative to now: "Overdue",
// "Today", "Tomorrow", "In N days" within a week, else the short date.
func RelativeTimeString(due, now time.Time) string {
	days := RemainingDays(due, now)
	switch {
	case days < 0:
		return "Overdue"
	case IsToday(due, now):
		return "Today"
	case IsTomorrow(due, now):
		return "Tomorrow"
	case days <= 7:
		return fmt.Sprintf("In %d days", days)
	}
	return FormatShortDate(due)
}

// StartOfDay returns midnight of t's local calendar date.
func StartOfDay(t time.Time) time.Time {
	l := t.Local()
	return time.Date(l.Year(), l.Month(), l.Day(), 0, 0, 0, 0, time.Local)
}
