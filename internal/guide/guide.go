// Package guide wires configuration, program sources and renderers into
// ready-to-print weekly plans. It is shared by the CLI and the TUI.
package guide

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/javiermolinar/tvguide/internal/config"
	"github.com/javiermolinar/tvguide/internal/dateutil"
	"github.com/javiermolinar/tvguide/internal/grid"
	"github.com/javiermolinar/tvguide/internal/logging"
	"github.com/javiermolinar/tvguide/internal/program"
	"github.com/javiermolinar/tvguide/internal/render"
)

// ErrNoRepository is returned when the db source is selected without storage.
var ErrNoRepository = errors.New("db source needs an open repository")

// Guide builds weekly plans from the configured source. Like grid.Builder it
// is not safe for concurrent use.
type Guide struct {
	cfg      *config.Config
	dayStart grid.Clock
	builder  *grid.Builder
	src      grid.ProgramLengthProvider
	sample   *program.SampleProvider
	colors   *render.ColorPolicy // PDF fills
	term     *render.ColorPolicy // terminal fills, off under NO_COLOR
	base     zerolog.Logger
	log      zerolog.Logger
}

// New creates a Guide. repo is only used for the db source and may be nil otherwise.
func New(ctx context.Context, cfg *config.Config, repo program.Repository, log zerolog.Logger) (*Guide, error) {
	dayStart, err := grid.ParseClock(cfg.Guide.DayStart)
	if err != nil {
		return nil, fmt.Errorf("day_start: %w", err)
	}

	palette, err := render.LoadPalette(cfg.Render.Palette)
	if err != nil {
		return nil, err
	}
	colors, err := render.NewColorPolicy(palette, cfg.Render.Color)
	if err != nil {
		return nil, err
	}
	term, err := render.NewColorPolicy(palette, render.ColorEnabled(cfg.Render.Color))
	if err != nil {
		return nil, err
	}

	g := &Guide{
		cfg:      cfg,
		dayStart: dayStart,
		builder: grid.New(
			grid.WithWeekdays(cfg.Guide.Weekdays),
			grid.WithLogger(logging.Component(log, "grid")),
		),
		colors: colors,
		term:   term,
		base:   log,
		log:    logging.Component(log, "guide"),
	}

	switch cfg.Source.Kind {
	case config.SourceFile:
		programs, err := program.LoadScheduleFile(cfg.Source.ScheduleFile, dayStart)
		if err != nil {
			return nil, err
		}
		g.src = program.NewLineup(programs, cfg.Source.Filler)
	case config.SourceDB:
		if repo == nil {
			return nil, ErrNoRepository
		}
		lineup, err := program.FromRepository(ctx, repo, cfg.Source.Filler)
		if err != nil {
			return nil, err
		}
		g.src = lineup
	default:
		g.sample = program.NewSampleProvider(Seed(cfg.Source.Seed))
		g.src = g.sample
	}

	g.log.Debug().Str("source", cfg.Source.Kind).Str("day_start", dayStart.String()).Msg("guide ready")
	return g, nil
}

// Seed returns seed, or a time based seed when seed is 0.
func Seed(seed uint64) uint64 {
	if seed != 0 {
		return seed
	}
	return uint64(time.Now().UnixNano())
}

// Week builds the plan of the week containing day.
func (g *Guide) Week(day time.Time) grid.Plan {
	plan := g.builder.Build(day, g.dayStart, g.src)
	if n := len(plan.Adjustments); n > 0 {
		g.log.Debug().Int("adjusted", n).Time("week_start", plan.WeekStart).Msg("spans normalized")
	}
	return plan
}

// Weeks builds n consecutive weekly plans starting with the week of day.
func (g *Guide) Weeks(day time.Time, n int) []grid.Plan {
	starts := dateutil.Weeks(day, n)
	plans := make([]grid.Plan, 0, len(starts))
	for _, start := range starts {
		plans = append(plans, g.Week(start))
	}
	return plans
}

// Reseed restarts the sample source. It reports false for other sources.
func (g *Guide) Reseed(seed uint64) bool {
	if g.sample == nil {
		return false
	}
	g.sample.Reseed(Seed(seed))
	return true
}

// Filler returns the label the source uses for unscheduled slots. The sample
// source never emits filler, so its titles always count as programs.
func (g *Guide) Filler() string {
	if g.sample != nil {
		return ""
	}
	return g.cfg.Source.Filler
}

// Layouts returns the configured header and label formats.
func (g *Guide) Layouts() render.Layouts {
	return render.Layouts{Date: g.cfg.Guide.DateFormat, Time: g.cfg.Guide.TimeFormat}
}

// PDF returns a PDF renderer. An empty output writes into the configured directory.
func (g *Guide) PDF(output string) *render.PDF {
	return render.NewPDF(render.PDFOptions{
		PageSize:  g.cfg.Render.PageSize,
		FontSize:  g.cfg.Render.FontSize,
		OutputDir: g.cfg.Render.OutputDir,
		Output:    output,
		Layouts:   g.Layouts(),
	}, g.colors, logging.Component(g.base, "render"))
}

// Text returns a terminal renderer for the given width.
func (g *Guide) Text(width int) *render.Text {
	return render.NewText(render.TextOptions{Width: width, Layouts: g.Layouts()}, g.term)
}
