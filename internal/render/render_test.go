package render

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/javiermolinar/tvguide/internal/grid"
)

var testMonday = time.Date(2025, 1, 6, 0, 0, 0, 0, time.UTC)

// scenarioPlan is a week of one-slot "X" programs with a three-slot "Y"
// on Wednesday at row 10.
func scenarioPlan() grid.Plan {
	src := grid.ProviderFunc(func(weekday, slot int) (grid.Program, bool) {
		if weekday == 2 && slot == 10 {
			return grid.Program{Label: "Y", Span: 3}, true
		}
		return grid.Program{Label: "X", Span: 1}, true
	})
	return grid.New().Build(testMonday, grid.MustParseClock("05:00"), src)
}

func TestOutputName(t *testing.T) {
	now := time.UnixMilli(1736150400123)
	if got := OutputName(now); got != "1736150400123.pdf" {
		t.Errorf("OutputName = %q", got)
	}
}

func TestResolveOutputPath(t *testing.T) {
	now := time.UnixMilli(42)

	tests := []struct {
		name     string
		dir      string
		explicit string
		want     string
	}{
		{"explicit wins", "out", "guide.pdf", "guide.pdf"},
		{"dir", "out", "", filepath.Join("out", "42.pdf")},
		{"empty dir", "", "", "42.pdf"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ResolveOutputPath(tt.dir, tt.explicit, now); got != tt.want {
				t.Errorf("ResolveOutputPath = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestLayouts_CellText(t *testing.T) {
	plan := scenarioPlan()

	header, _ := plan.At(grid.HeaderRow, grid.WeekdayColumn(0))
	if got := DefaultLayouts.CellText(header); got != "Mon 01/06/2025" {
		t.Errorf("header text = %q", got)
	}
	label, _ := plan.At(1, grid.LeadingLabelCol)
	if got := DefaultLayouts.CellText(label); got != "05:00 AM" {
		t.Errorf("time label text = %q", got)
	}
	last, _ := plan.At(24, grid.TrailingLabelCol)
	if got := DefaultLayouts.CellText(last); got != "04:30 PM" {
		t.Errorf("last time label text = %q", got)
	}
	if got := (Layouts{}).CellText(label); got != "05:00" {
		t.Errorf("raw time label text = %q", got)
	}
	prog, _ := plan.At(11, grid.WeekdayColumn(2))
	if got := DefaultLayouts.CellText(prog); got != "Y" {
		t.Errorf("program text = %q", got)
	}
}

func TestRenderFailure(t *testing.T) {
	err := error(&RenderFailure{Op: "write", Path: "/x.pdf", Err: os.ErrPermission})

	var rf *RenderFailure
	if !errors.As(err, &rf) || rf.Op != "write" {
		t.Fatalf("errors.As failed for %v", err)
	}
	if !errors.Is(err, os.ErrPermission) {
		t.Error("expected RenderFailure to unwrap")
	}
	if got := err.Error(); got != "render write /x.pdf: permission denied" {
		t.Errorf("Error() = %q", got)
	}
}
