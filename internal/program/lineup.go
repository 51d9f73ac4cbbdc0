package program

import (
	"context"
	"fmt"

	"github.com/javiermolinar/tvguide/internal/grid"
)

// DefaultFiller labels slots without a scheduled program.
const DefaultFiller = "Paid Programming"

type slotKey struct {
	weekday int
	slot    int
}

// Lineup is a fixed weekly schedule. Slots without a program get a one-row
// filler cell, or no program at all when the filler is empty.
type Lineup struct {
	entries map[slotKey]*Program
	filler  string
}

// NewLineup indexes programs by their starting slot. When two programs start
// in the same slot the later one wins.
func NewLineup(programs []*Program, filler string) *Lineup {
	l := &Lineup{
		entries: make(map[slotKey]*Program, len(programs)),
		filler:  filler,
	}
	for _, p := range programs {
		l.entries[slotKey{p.Weekday, p.Slot}] = p
	}
	return l
}

// FromRepository builds a Lineup from the stored programs.
func FromRepository(ctx context.Context, repo Repository, filler string) (*Lineup, error) {
	programs, err := repo.ListPrograms(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing programs: %w", err)
	}
	return NewLineup(programs, filler), nil
}

// Len returns the number of scheduled programs.
func (l *Lineup) Len() int {
	return len(l.entries)
}

// NextProgram implements grid.ProgramLengthProvider.
func (l *Lineup) NextProgram(weekday, slot int) (grid.Program, bool) {
	if p, ok := l.entries[slotKey{weekday, slot}]; ok {
		return grid.Program{Label: p.Title, Span: p.Span}, true
	}
	if l.filler == "" {
		return grid.Program{}, false
	}
	return grid.Program{Label: l.filler, Span: 1}, true
}
