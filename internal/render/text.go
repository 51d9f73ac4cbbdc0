package render

import (
	"context"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/charmbracelet/x/ansi"
	"github.com/muesli/reflow/wordwrap"

	"github.com/javiermolinar/tvguide/internal/grid"
)

const (
	defaultTextWidth = 120
	minDayWidth      = 6
	ellipsis         = "…"
)

// TextOptions configures the terminal renderer.
type TextOptions struct {
	Width   int // total width in columns, borders included
	Layouts Layouts
}

// Text renders plans as terminal tables. Multi-row programs continue their
// wrapped label down the rows they span.
type Text struct {
	opts   TextOptions
	colors *ColorPolicy
}

// NewText creates a text renderer. A nil policy renders without colors.
func NewText(opts TextOptions, colors *ColorPolicy) *Text {
	if opts.Width <= 0 {
		opts.Width = defaultTextWidth
	}
	return &Text{opts: opts, colors: colors}
}

// Render returns the text of every page separated by a blank line.
func (r *Text) Render(ctx context.Context, pages []grid.Plan) (string, error) {
	if len(pages) == 0 {
		return "", ErrNoPages
	}
	out := make([]string, 0, len(pages))
	for _, plan := range pages {
		if err := ctx.Err(); err != nil {
			return "", err
		}
		out = append(out, r.RenderPlan(plan))
	}
	return strings.Join(out, "\n\n"), nil
}

// columnWidths splits the available width between the two label columns and
// the seven weekday columns.
func (r *Text) columnWidths() [grid.Cols]int {
	labelW := len(r.opts.Layouts.CellText(grid.Placement{Kind: grid.KindTimeLabel, Label: "00:00"}))
	borders := grid.Cols + 1
	dayW := (r.opts.Width - borders - 2*labelW) / grid.DaysPerWeek
	if dayW < minDayWidth {
		dayW = minDayWidth
	}

	var widths [grid.Cols]int
	for col := range widths {
		if grid.IsLabelColumn(col) {
			widths[col] = labelW
		} else {
			widths[col] = dayW
		}
	}
	return widths
}

// RenderPlan renders a single week.
func (r *Text) RenderPlan(plan grid.Plan) string {
	widths := r.columnWidths()

	headers := make([]string, grid.Cols)
	var cells [grid.ContentRows][grid.Cols]string
	var styles [grid.Rows][grid.Cols]grid.Style

	for _, p := range plan.Placements {
		for row := p.Row; row < p.EndRow() && row < grid.Rows; row++ {
			for col := p.Col; col < p.Col+p.ColSpan && col < grid.Cols; col++ {
				styles[row][col] = p.Style
			}
		}

		text := r.opts.Layouts.CellText(p)
		w := widths[p.Col]
		if p.Row == grid.HeaderRow {
			headers[p.Col] = ansi.Truncate(text, w, ellipsis)
			continue
		}
		lines := strings.Split(wordwrap.String(text, w), "\n")
		for i := 0; i < len(lines) && i < p.RowSpan; i++ {
			cells[p.Row-1+i][p.Col] = ansi.Truncate(lines[i], w, ellipsis)
		}
	}

	rows := make([][]string, grid.ContentRows)
	for i := range cells {
		rows[i] = cells[i][:]
	}

	colored := r.colors != nil && r.colors.Enabled()
	t := table.New().
		Headers(headers...).
		Rows(rows...).
		Border(lipgloss.NormalBorder()).
		BorderRow(false).
		BorderColumn(true).
		BorderHeader(true).
		StyleFunc(func(row, col int) lipgloss.Style {
			s := lipgloss.NewStyle().Width(widths[col])
			if row == table.HeaderRow {
				s = s.Bold(true)
			}
			if !colored {
				return s
			}
			// table.HeaderRow is -1, so row+1 is the grid row
			hex := r.colors.Hex(styles[row+1][col])
			return s.Background(lipgloss.Color(hex)).Foreground(lipgloss.Color("#000000"))
		})

	return t.Render()
}

// Plain strips terminal escape sequences, for clipboard and file output.
func Plain(s string) string {
	return ansi.Strip(s)
}
