// Package commands provides TUI command constructors and message types.
package commands

import (
	"context"
	"time"

	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/javiermolinar/tvguide/internal/grid"
	"github.com/javiermolinar/tvguide/internal/render"
)

// ExportedMsg is sent when a PDF export finishes.
type ExportedMsg struct {
	Path string
	Err  error
}

// CopiedMsg is sent when the grid was put on the clipboard.
type CopiedMsg struct {
	Err error
}

// ClearStatusMsg is sent to clear the status message set with sequence ID.
type ClearStatusMsg struct {
	ID int
}

// Export renders the plans to a PDF in the background.
func Export(r render.Renderer, plans ...grid.Plan) tea.Cmd {
	return func() tea.Msg {
		path, err := r.Render(context.Background(), plans)
		return ExportedMsg{Path: path, Err: err}
	}
}

// Copy writes text to the system clipboard.
func Copy(text string) tea.Cmd {
	return func() tea.Msg {
		return CopiedMsg{Err: clipboard.WriteAll(text)}
	}
}

// ClearStatusAfter clears status id after d.
func ClearStatusAfter(d time.Duration, id int) tea.Cmd {
	return tea.Tick(d, func(time.Time) tea.Msg {
		return ClearStatusMsg{ID: id}
	})
}
