// Package program defines lineup entries and the program sources that feed
// the guide grid.
package program

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/javiermolinar/tvguide/internal/grid"
)

// Validation errors.
var (
	ErrEmptyTitle      = errors.New("title cannot be empty")
	ErrInvalidWeekday  = errors.New("weekday must be mon..sun")
	ErrInvalidSlot     = errors.New("slot must be between 1 and 24")
	ErrInvalidSpan     = errors.New("span must be at least 1")
	ErrMisalignedStart = errors.New("start time must fall on a half-hour slot of the guide day")
)

// Domain errors.
var (
	ErrProgramOverlap  = errors.New("program overlaps with an existing program")
	ErrProgramNotFound = errors.New("program not found")
)

// Program is one entry of the weekly lineup.
type Program struct {
	ID        int64
	Title     string
	Weekday   int // 0=Monday
	Slot      int // first content row, 1..24
	Span      int // rows
	CreatedAt time.Time
}

// New creates a Program with validation. Spans running past the end of the
// guide day are accepted; the grid builder truncates them.
func New(title string, weekday, slot, span int) (*Program, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return nil, ErrEmptyTitle
	}
	if weekday < 0 || weekday >= grid.DaysPerWeek {
		return nil, ErrInvalidWeekday
	}
	if slot < 1 || slot > grid.ContentRows {
		return nil, ErrInvalidSlot
	}
	if span < 1 {
		return nil, ErrInvalidSpan
	}
	return &Program{
		Title:     title,
		Weekday:   weekday,
		Slot:      slot,
		Span:      span,
		CreatedAt: time.Now(),
	}, nil
}

// EndSlot returns the first slot after the program.
func (p *Program) EndSlot() int {
	return p.Slot + p.Span
}

// Overlaps reports whether two programs share a weekday slot.
func (p *Program) Overlaps(o *Program) bool {
	return p.Weekday == o.Weekday && p.Slot < o.EndSlot() && o.Slot < p.EndSlot()
}

// CheckOverlaps returns ErrProgramOverlap for the first pair of programs that
// share a slot on the same weekday.
func CheckOverlaps(programs []*Program) error {
	for i, a := range programs {
		for _, b := range programs[i+1:] {
			if a.Overlaps(b) {
				return fmt.Errorf("%w: %q and %q", ErrProgramOverlap, a.Title, b.Title)
			}
		}
	}
	return nil
}

// Start returns the wall-clock start given the guide day start.
func (p *Program) Start(dayStart grid.Clock) grid.Clock {
	return grid.SlotTime(dayStart, p.Slot)
}

// SlotAt converts a wall-clock start into a content row for the given day
// start. Times before dayStart belong to the tail of the guide day (after
// midnight).
func SlotAt(dayStart, start grid.Clock) (int, error) {
	offset := int(start) - int(dayStart)
	if offset < 0 {
		offset += 24 * 60
	}
	if offset%30 != 0 {
		return 0, fmt.Errorf("%w: %s", ErrMisalignedStart, start)
	}
	slot := offset/30 + 1
	if slot > grid.ContentRows {
		return 0, fmt.Errorf("%w: %s is outside the guide day starting %s", ErrInvalidSlot, start, dayStart)
	}
	return slot, nil
}

var weekdayNames = map[string]int{
	"mon": 0, "monday": 0,
	"tue": 1, "tues": 1, "tuesday": 1,
	"wed": 2, "wednesday": 2,
	"thu": 3, "thur": 3, "thurs": 3, "thursday": 3,
	"fri": 4, "friday": 4,
	"sat": 5, "saturday": 5,
	"sun": 6, "sunday": 6,
}

// ParseWeekday parses a weekday name (case-insensitive, short or long).
func ParseWeekday(s string) (int, error) {
	w, ok := weekdayNames[strings.ToLower(strings.TrimSpace(s))]
	if !ok {
		return 0, fmt.Errorf("%w, got %q", ErrInvalidWeekday, s)
	}
	return w, nil
}

// ParseDays expands a day selector: a weekday name, "daily", "weekdays" or
// "weekend".
func ParseDays(s string) ([]int, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "daily", "everyday":
		return []int{0, 1, 2, 3, 4, 5, 6}, nil
	case "weekdays":
		return []int{0, 1, 2, 3, 4}, nil
	case "weekend":
		return []int{5, 6}, nil
	}
	w, err := ParseWeekday(s)
	if err != nil {
		return nil, err
	}
	return []int{w}, nil
}
