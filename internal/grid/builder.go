package grid

import (
	"time"

	"github.com/rs/zerolog"

	"github.com/javiermolinar/tvguide/internal/dateutil"
)

// AdjustmentKind names a span normalization.
type AdjustmentKind string

const (
	// InvalidSpan: the provider returned a span below 1; it was raised to 1.
	InvalidSpan AdjustmentKind = "invalid_span"
	// GridOverflow: the span ran past the last row; it was truncated.
	GridOverflow AdjustmentKind = "grid_overflow"
)

// Adjustment records a span the builder had to normalize.
type Adjustment struct {
	Kind      AdjustmentKind
	Weekday   int
	Row       int
	Requested int
	Applied   int
}

// Builder produces the placement plan for one week. A Builder owns its
// occupancy state and must not be shared between goroutines.
type Builder struct {
	weekdays [DaysPerWeek]string
	log      zerolog.Logger
	occ      OccupancyMap
}

// Option configures a Builder.
type Option func(*Builder)

// WithWeekdays sets the header labels. Anything but seven labels is ignored.
func WithWeekdays(labels []string) Option {
	return func(b *Builder) {
		if len(labels) != DaysPerWeek {
			return
		}
		copy(b.weekdays[:], labels)
	}
}

// WithLogger sets the logger used for normalization events.
func WithLogger(l zerolog.Logger) Option {
	return func(b *Builder) {
		b.log = l
	}
}

// New creates a Builder.
func New(opts ...Option) *Builder {
	b := &Builder{
		weekdays: DefaultWeekdays,
		log:      zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// Build sweeps the grid once for the week containing startOfWeek.
// startOfWeek is normalized to its Monday; dayStart is the time of row 1.
func (b *Builder) Build(startOfWeek time.Time, dayStart Clock, src ProgramLengthProvider) Plan {
	monday, _ := dateutil.WeekRange(startOfWeek)
	var dates [DaysPerWeek]time.Time
	for w := range dates {
		dates[w] = monday.AddDate(0, 0, w)
	}

	b.occ.Reset()
	plan := Plan{
		WeekStart:  dayStart.On(monday),
		DayStart:   dayStart,
		Placements: make([]Placement, 0, Rows*Cols),
	}

	for row := 0; row < Rows; row++ {
		slotTime := SlotTime(dayStart, row)
		for col := 0; col < Cols; col++ {
			switch {
			case row == HeaderRow:
				plan.Placements = append(plan.Placements, b.header(col, dates))
			case IsLabelColumn(col):
				plan.Placements = append(plan.Placements, Placement{
					Row: row, Col: col, RowSpan: 1, ColSpan: 1,
					Kind:    KindTimeLabel,
					Label:   slotTime.String(),
					Weekday: -1,
					Time:    slotTime,
					Style:   Style{Column: col, Kind: KindTimeLabel, Shaded: true},
				})
			default:
				w := col - 1
				if b.occ.Covered(w, row) {
					continue
				}
				p := b.program(&plan, src, w, row)
				p.Date = dates[w]
				p.Time = slotTime
				b.occ.Claim(w, p.RowSpan)
				plan.Placements = append(plan.Placements, p)
			}
		}
	}

	return plan
}

func (b *Builder) header(col int, dates [DaysPerWeek]time.Time) Placement {
	p := Placement{
		Row: HeaderRow, Col: col, RowSpan: 1, ColSpan: 1,
		Kind:    KindEmpty,
		Weekday: -1,
		Style:   Style{Column: col, Kind: KindEmpty, Shaded: true},
	}
	if IsLabelColumn(col) {
		return p
	}
	w := col - 1
	p.Kind = KindWeekdayHeader
	p.Style.Kind = KindWeekdayHeader
	p.Label = b.weekdays[w]
	p.Weekday = w
	p.Date = dates[w]
	return p
}

// program asks src for the program at (w, row) and normalizes its span.
func (b *Builder) program(plan *Plan, src ProgramLengthProvider, w, row int) Placement {
	col := WeekdayColumn(w)
	p := Placement{Row: row, Col: col, RowSpan: 1, ColSpan: 1, Weekday: w}

	prog, ok := Program{}, false
	if src != nil {
		prog, ok = src.NextProgram(w, row)
	}
	if !ok {
		p.Kind = KindEmpty
		p.Style = Style{Column: col, Kind: KindEmpty}
		return p
	}

	span := prog.Span
	if span < 1 {
		b.adjust(plan, Adjustment{Kind: InvalidSpan, Weekday: w, Row: row, Requested: span, Applied: 1})
		span = 1
	}
	if limit := Rows - row; span > limit {
		b.adjust(plan, Adjustment{Kind: GridOverflow, Weekday: w, Row: row, Requested: span, Applied: limit})
		span = limit
	}

	p.Kind = KindProgram
	p.Label = prog.Label
	p.RowSpan = span
	p.Style = Style{Column: col, Kind: KindProgram}
	return p
}

func (b *Builder) adjust(plan *Plan, a Adjustment) {
	plan.Adjustments = append(plan.Adjustments, a)
	b.log.Debug().
		Str("kind", string(a.Kind)).
		Int("weekday", a.Weekday).
		Int("row", a.Row).
		Int("requested", a.Requested).
		Int("applied", a.Applied).
		Msg("span normalized")
}
