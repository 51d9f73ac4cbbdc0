// Package grid lays out a week of programs into the fixed program-guide table.
//
// The table has 25 rows and 9 columns. Row 0 is the header row, rows 1..24 are
// half-hour slots. Columns 0 and 8 carry time labels and columns 1..7 are the
// weekdays Monday through Sunday. A Builder walks the table once and emits one
// Placement per cell it owns; cells covered by an earlier multi-row program are
// skipped, so the emitted order is exactly the order a fill-cursor renderer
// would visit the open cells.
package grid

import (
	"errors"
	"time"
)

const (
	// Rows is the number of table rows, header included.
	Rows = 25
	// Cols is the number of table columns, time labels included.
	Cols = 9
	// HeaderRow is the row holding weekday names and dates.
	HeaderRow = 0
	// ContentRows is the number of half-hour rows below the header.
	ContentRows = Rows - 1
	// DaysPerWeek is the number of weekday columns.
	DaysPerWeek = 7
	// LeadingLabelCol and TrailingLabelCol repeat the slot times on both sides.
	LeadingLabelCol  = 0
	TrailingLabelCol = Cols - 1
	// SlotDuration is the length of one content row.
	SlotDuration = 30 * time.Minute
)

// Coverage errors reported by Plan.Verify.
var (
	ErrCellGap     = errors.New("cell is not covered by any placement")
	ErrCellOverlap = errors.New("cell is covered by more than one placement")
	ErrOutOfGrid   = errors.New("placement extends outside the grid")
)

// DefaultWeekdays are the header labels for columns 1..7.
var DefaultWeekdays = [DaysPerWeek]string{"Mon", "Tue", "Wed", "Thu", "Fri", "Sat", "Sun"}

// Kind identifies what a placement holds.
type Kind int

const (
	KindEmpty Kind = iota
	KindWeekdayHeader
	KindTimeLabel
	KindProgram
)

func (k Kind) String() string {
	switch k {
	case KindWeekdayHeader:
		return "weekday_header"
	case KindTimeLabel:
		return "time_label"
	case KindProgram:
		return "program"
	default:
		return "empty"
	}
}

// Style is the hint a renderer keys its color policy on.
type Style struct {
	Column int
	Kind   Kind
	Shaded bool // header row and time-label columns
}

// Placement is one cell instruction. Placements are values and are never
// modified after the builder emits them.
type Placement struct {
	Row     int
	Col     int
	RowSpan int
	ColSpan int
	Kind    Kind
	Label   string

	Weekday int       // 0=Monday; -1 for time-label columns
	Date    time.Time // calendar day of weekday cells
	Time    Clock     // slot start for content rows
	Style   Style
}

// EndRow returns the first row after the placement.
func (p Placement) EndRow() int {
	return p.Row + p.RowSpan
}

// Covers reports whether the placement spans the given cell.
func (p Placement) Covers(row, col int) bool {
	return col >= p.Col && col < p.Col+p.ColSpan && row >= p.Row && row < p.EndRow()
}

// IsLabelColumn reports whether col is one of the time-label columns.
func IsLabelColumn(col int) bool {
	return col == LeadingLabelCol || col == TrailingLabelCol
}

// WeekdayColumn returns the table column of weekday w (0=Monday).
func WeekdayColumn(w int) int {
	return w + 1
}

// SlotTime returns the wall-clock start of a content row.
func SlotTime(dayStart Clock, row int) Clock {
	return dayStart.Add(time.Duration(row-1) * SlotDuration)
}
