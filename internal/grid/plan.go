package grid

import (
	"fmt"
	"time"
)

// Plan is the output of one Build: placements in emission order (row-major,
// then column) plus any span normalizations. Renderers must consume
// Placements in order and must not re-sort them.
type Plan struct {
	WeekStart   time.Time // Monday at the day start
	DayStart    Clock
	Placements  []Placement
	Adjustments []Adjustment
}

// ForWeekday returns the content placements of weekday w, top to bottom.
func (p Plan) ForWeekday(w int) []Placement {
	col := WeekdayColumn(w)
	var out []Placement
	for _, pl := range p.Placements {
		if pl.Col == col && pl.Row != HeaderRow {
			out = append(out, pl)
		}
	}
	return out
}

// Row returns the placements that start on the given row.
func (p Plan) Row(row int) []Placement {
	var out []Placement
	for _, pl := range p.Placements {
		if pl.Row == row {
			out = append(out, pl)
		}
	}
	return out
}

// At returns the placement covering (row, col).
func (p Plan) At(row, col int) (Placement, bool) {
	for _, pl := range p.Placements {
		if pl.Covers(row, col) {
			return pl, true
		}
	}
	return Placement{}, false
}

// Verify checks that every cell of the grid is covered exactly once.
func (p Plan) Verify() error {
	var cover [Rows][Cols]int
	for _, pl := range p.Placements {
		if pl.Row < 0 || pl.Col < 0 || pl.RowSpan < 1 || pl.ColSpan < 1 ||
			pl.EndRow() > Rows || pl.Col+pl.ColSpan > Cols {
			return fmt.Errorf("%w: row %d col %d span %dx%d", ErrOutOfGrid, pl.Row, pl.Col, pl.RowSpan, pl.ColSpan)
		}
		for r := pl.Row; r < pl.EndRow(); r++ {
			for c := pl.Col; c < pl.Col+pl.ColSpan; c++ {
				cover[r][c]++
			}
		}
	}
	for r := 0; r < Rows; r++ {
		for c := 0; c < Cols; c++ {
			switch n := cover[r][c]; {
			case n == 0:
				return fmt.Errorf("%w: row %d col %d", ErrCellGap, r, c)
			case n > 1:
				return fmt.Errorf("%w: row %d col %d", ErrCellOverlap, r, c)
			}
		}
	}
	return nil
}
