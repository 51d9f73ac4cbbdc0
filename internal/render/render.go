// Package render turns grid plans into printable and terminal artifacts.
//
// Renderers consume Plan.Placements in emission order and compute geometry
// from Row, Col, RowSpan and ColSpan alone; they never reorder placements.
package render

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"time"

	"github.com/javiermolinar/tvguide/internal/grid"
)

// ErrNoPages is returned when a renderer is given no plans.
var ErrNoPages = errors.New("nothing to render")

// Renderer writes one artifact for a run of weekly plans.
// File renderers return the path they wrote; Text returns the rendered grid.
type Renderer interface {
	Render(ctx context.Context, pages []grid.Plan) (string, error)
}

// RenderFailure is the error returned by file renderers.
type RenderFailure struct {
	Op   string // "mkdir", "draw", "write"
	Path string
	Err  error
}

func (e *RenderFailure) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("render %s: %v", e.Op, e.Err)
	}
	return fmt.Sprintf("render %s %s: %v", e.Op, e.Path, e.Err)
}

func (e *RenderFailure) Unwrap() error {
	return e.Err
}

// Layouts holds the date and time formats for header and label cells.
type Layouts struct {
	Date string // e.g. "01/02/2006"
	Time string // e.g. "03:04 PM"
}

// DefaultLayouts match the printed guide.
var DefaultLayouts = Layouts{Date: "01/02/2006", Time: "03:04 PM"}

// CellText returns the text shown in a placement.
func (l Layouts) CellText(p grid.Placement) string {
	switch p.Kind {
	case grid.KindWeekdayHeader:
		if l.Date == "" || p.Date.IsZero() {
			return p.Label
		}
		return p.Label + " " + p.Date.Format(l.Date)
	case grid.KindTimeLabel:
		if l.Time == "" {
			return p.Label
		}
		return p.Time.Format(l.Time)
	default:
		return p.Label
	}
}

// OutputName returns the default artifact name: the Unix millisecond
// timestamp of now with a .pdf extension.
func OutputName(now time.Time) string {
	return fmt.Sprintf("%d.pdf", now.UnixMilli())
}

// ResolveOutputPath returns explicit when set, otherwise OutputName(now) in dir.
func ResolveOutputPath(dir, explicit string, now time.Time) string {
	if explicit != "" {
		return explicit
	}
	if dir == "" {
		dir = "."
	}
	return filepath.Join(dir, OutputName(now))
}
