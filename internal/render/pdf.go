package render

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/go-pdf/fpdf"
	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/javiermolinar/tvguide/internal/grid"
)

const (
	defaultPageSize = "A3"
	defaultFontSize = 6.7
	cellPadding     = 2.0 // points
	lineSpacing     = 1.15
)

// PDFOptions configures the PDF renderer.
type PDFOptions struct {
	PageSize  string  // A3, A4, Letter, Legal
	FontSize  float64 // points
	OutputDir string
	Output    string // explicit path; overrides OutputDir
	Layouts   Layouts
}

// PDF renders one page per weekly plan.
type PDF struct {
	opts   PDFOptions
	colors *ColorPolicy
	log    zerolog.Logger
	now    func() time.Time
}

// NewPDF creates a PDF renderer.
func NewPDF(opts PDFOptions, colors *ColorPolicy, log zerolog.Logger) *PDF {
	if opts.PageSize == "" {
		opts.PageSize = defaultPageSize
	}
	if opts.FontSize <= 0 {
		opts.FontSize = defaultFontSize
	}
	return &PDF{opts: opts, colors: colors, log: log, now: time.Now}
}

// Render writes all pages to a single file and returns its path.
func (r *PDF) Render(ctx context.Context, pages []grid.Plan) (string, error) {
	if len(pages) == 0 {
		return "", &RenderFailure{Op: "draw", Err: ErrNoPages}
	}

	path := ResolveOutputPath(r.opts.OutputDir, r.opts.Output, r.now())
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return "", &RenderFailure{Op: "mkdir", Path: dir, Err: err}
		}
	}

	runID := uuid.New()
	log := r.log.With().Str("run_id", runID.String()).Str("path", path).Logger()

	pdf := fpdf.NewCustom(&fpdf.InitType{
		OrientationStr: "P",
		UnitStr:        "pt",
		SizeStr:        r.opts.PageSize,
	})
	pdf.SetMargins(0, 0, 0)
	pdf.SetAutoPageBreak(false, 0)
	pdf.SetCreator("tvguide", true)
	pdf.SetTitle(fmt.Sprintf("TV Guide - week of %s", pages[0].WeekStart.Format("2006-01-02")), true)
	pdf.SetKeywords("run:"+runID.String(), true)

	tr := pdf.UnicodeTranslatorFromDescriptor("")
	for i, plan := range pages {
		if err := ctx.Err(); err != nil {
			return "", &RenderFailure{Op: "draw", Path: path, Err: err}
		}
		r.drawPage(pdf, plan, tr)
		log.Debug().Int("page", i+1).Time("week_start", plan.WeekStart).Msg("page drawn")
	}
	if err := pdf.Error(); err != nil {
		return "", &RenderFailure{Op: "draw", Path: path, Err: err}
	}

	if err := pdf.OutputFileAndClose(path); err != nil {
		return "", &RenderFailure{Op: "write", Path: path, Err: err}
	}
	log.Debug().Int("pages", len(pages)).Msg("guide written")
	return path, nil
}

func (r *PDF) drawPage(pdf *fpdf.Fpdf, plan grid.Plan, tr func(string) string) {
	pdf.AddPage()
	pdf.SetFont("Times", "", r.opts.FontSize)
	pdf.SetDrawColor(0, 0, 0)
	pdf.SetLineWidth(0.5)

	pageW, pageH := pdf.GetPageSize()
	cellW := pageW / grid.Cols
	cellH := pageH / grid.Rows
	lineH := r.opts.FontSize * lineSpacing

	for _, p := range plan.Placements {
		x := float64(p.Col) * cellW
		y := float64(p.Row) * cellH
		w := float64(p.ColSpan) * cellW
		h := float64(p.RowSpan) * cellH

		cr, cg, cb := r.colors.RGB(p.Style)
		pdf.SetFillColor(int(cr), int(cg), int(cb))
		pdf.Rect(x, y, w, h, "FD")

		text := r.opts.Layouts.CellText(p)
		if text == "" {
			continue
		}
		lines := pdf.SplitLines([]byte(tr(text)), w-2*cellPadding)
		if fit := int(h / lineH); len(lines) > fit {
			lines = lines[:fit]
		}
		top := y + (h-float64(len(lines))*lineH)/2
		for i, line := range lines {
			pdf.SetXY(x+cellPadding, top+float64(i)*lineH)
			pdf.CellFormat(w-2*cellPadding, lineH, string(line), "", 0, "CM", false, 0, "")
		}
	}
}
