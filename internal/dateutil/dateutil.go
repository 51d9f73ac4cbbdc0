// Package dateutil provides week and date parsing helpers.
package dateutil

import (
	"errors"
	"strconv"
	"strings"
	"time"
)

// Validation errors.
var (
	ErrInvalidDateFormat = errors.New("date must be in YYYY-MM-DD format")
	ErrInvalidWeek       = errors.New("week must be this, next, prev, +N, -N or a YYYY-MM-DD date")
)

// ParseDate parses a date string in YYYY-MM-DD format.
// If the string is empty, returns today's date.
func ParseDate(s string) (time.Time, error) {
	if s == "" {
		return TruncateToDay(time.Now()), nil
	}
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return time.Time{}, ErrInvalidDateFormat
	}
	return t, nil
}

// WeekRange returns the Monday and Sunday of the ISO week containing t.
func WeekRange(t time.Time) (monday, sunday time.Time) {
	t = TruncateToDay(t)
	weekday := int(t.Weekday())
	if weekday == 0 {
		weekday = 7 // Sunday becomes day 7 in ISO week
	}
	monday = t.AddDate(0, 0, -(weekday - 1))
	sunday = monday.AddDate(0, 0, 6)
	return monday, sunday
}

// TruncateToDay returns t with time set to midnight.
func TruncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// ParseWeek resolves a week selector to the Monday of that week:
//   - "" or "this": the week containing relativeTo
//   - "next", "prev" (or "last", "previous")
//   - "+N" / "-N": N weeks after or before
//   - "YYYY-MM-DD": the week containing that date
//
// Input is case-insensitive.
func ParseWeek(s string, relativeTo time.Time) (time.Time, error) {
	monday, _ := WeekRange(relativeTo)
	input := strings.ToLower(strings.TrimSpace(s))

	switch input {
	case "", "this", "this-week":
		return monday, nil
	case "next", "next-week":
		return monday.AddDate(0, 0, 7), nil
	case "prev", "previous", "last", "last-week":
		return monday.AddDate(0, 0, -7), nil
	}

	if strings.HasPrefix(input, "+") || strings.HasPrefix(input, "-") {
		n, err := strconv.Atoi(input)
		if err != nil {
			return time.Time{}, ErrInvalidWeek
		}
		return monday.AddDate(0, 0, 7*n), nil
	}

	t, err := time.Parse("2006-01-02", input)
	if err != nil {
		return time.Time{}, ErrInvalidWeek
	}
	monday, _ = WeekRange(t)
	return monday, nil
}

// Weeks returns n consecutive Mondays starting at the week of start.
func Weeks(start time.Time, n int) []time.Time {
	if n < 1 {
		n = 1
	}
	monday, _ := WeekRange(start)
	out := make([]time.Time, n)
	for i := range out {
		out[i] = monday.AddDate(0, 0, 7*i)
	}
	return out
}
