// Package summary aggregates a week's plan into per-day airtime numbers.
package summary

import (
	"time"

	"github.com/javiermolinar/tvguide/internal/grid"
)

// DayStats counts the content slots of one weekday column.
type DayStats struct {
	Label        string
	Date         time.Time
	Programs     int // placements with a real title
	ProgramSlots int // slots covered by those placements
	FillerSlots  int
	EmptySlots   int
}

// Longest is the longest program of the week.
type Longest struct {
	Title   string
	Weekday int
	Time    grid.Clock
	Slots   int
}

// WeekSummary holds aggregated week data.
type WeekSummary struct {
	Start       time.Time
	End         time.Time
	Days        [grid.DaysPerWeek]DayStats
	Longest     Longest
	Adjustments int
}

// TotalPrograms returns the number of scheduled programs across the week.
func (s *WeekSummary) TotalPrograms() int {
	n := 0
	for _, d := range s.Days {
		n += d.Programs
	}
	return n
}

// Coverage returns the share of content slots holding a real program, 0..1.
func (s *WeekSummary) Coverage() float64 {
	slots := 0
	for _, d := range s.Days {
		slots += d.ProgramSlots
	}
	return float64(slots) / float64(grid.DaysPerWeek*grid.ContentRows)
}

// SummarizeWeek builds the summary of plan. Cells labelled filler count as
// filler slots rather than programs.
func SummarizeWeek(plan grid.Plan, filler string) *WeekSummary {
	s := &WeekSummary{
		Start:       plan.WeekStart,
		End:         plan.WeekStart.AddDate(0, 0, grid.DaysPerWeek-1),
		Adjustments: len(plan.Adjustments),
	}

	for _, pl := range plan.Placements {
		if pl.Weekday < 0 || pl.Weekday >= grid.DaysPerWeek {
			continue
		}
		day := &s.Days[pl.Weekday]

		switch {
		case pl.Kind == grid.KindWeekdayHeader:
			day.Label, day.Date = pl.Label, pl.Date
		case pl.Kind == grid.KindEmpty:
			day.EmptySlots += pl.RowSpan
		case filler != "" && pl.Label == filler:
			day.FillerSlots += pl.RowSpan
		default:
			day.Programs++
			day.ProgramSlots += pl.RowSpan
			// Ties keep the earliest in emission order.
			if pl.RowSpan > s.Longest.Slots {
				s.Longest = Longest{Title: pl.Label, Weekday: pl.Weekday, Time: pl.Time, Slots: pl.RowSpan}
			}
		}
	}
	return s
}
