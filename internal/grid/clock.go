package grid

import (
	"errors"
	"fmt"
	"time"
)

// ErrInvalidClock is returned when a time of day is not in HH:MM format.
var ErrInvalidClock = errors.New("time of day must be in HH:MM format")

const minutesPerDay = 24 * 60

// Clock is a time of day in minutes after midnight.
type Clock int

// NewClock builds a Clock from hours and minutes, wrapping past midnight.
func NewClock(hour, minute int) Clock {
	return Clock(0).Add(time.Duration(hour)*time.Hour + time.Duration(minute)*time.Minute)
}

// ParseClock parses "HH:MM" (24-hour).
func ParseClock(s string) (Clock, error) {
	t, err := time.Parse("15:04", s)
	if err != nil {
		return 0, fmt.Errorf("%w, got %q", ErrInvalidClock, s)
	}
	return NewClock(t.Hour(), t.Minute()), nil
}

// MustParseClock is ParseClock for constants and tests.
func MustParseClock(s string) Clock {
	c, err := ParseClock(s)
	if err != nil {
		panic(err)
	}
	return c
}

// Add returns the clock moved by d, wrapping around midnight.
func (c Clock) Add(d time.Duration) Clock {
	m := (int(c) + int(d/time.Minute)) % minutesPerDay
	if m < 0 {
		m += minutesPerDay
	}
	return Clock(m)
}

// Hour returns the hour component.
func (c Clock) Hour() int { return int(c) / 60 }

// Minute returns the minute component.
func (c Clock) Minute() int { return int(c) % 60 }

// On returns the instant of this clock on the given day.
func (c Clock) On(day time.Time) time.Time {
	return time.Date(day.Year(), day.Month(), day.Day(), c.Hour(), c.Minute(), 0, 0, day.Location())
}

// Format formats the clock with a time layout such as "03:04 PM".
func (c Clock) Format(layout string) string {
	return c.On(time.Date(2000, 1, 1, 0, 0, 0, 0, time.UTC)).Format(layout)
}

func (c Clock) String() string {
	return fmt.Sprintf("%02d:%02d", c.Hour(), c.Minute())
}
