package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/javiermolinar/tvguide/internal/render"
	"github.com/javiermolinar/tvguide/internal/tui/commands"
)

// keyMap holds the browser key bindings.
type keyMap struct {
	Prev   key.Binding
	Next   key.Binding
	Today  key.Binding
	Reseed key.Binding
	Export key.Binding
	Copy   key.Binding
	Quit   key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Prev:   key.NewBinding(key.WithKeys("h", "left"), key.WithHelp("h/←", "prev week")),
		Next:   key.NewBinding(key.WithKeys("l", "right"), key.WithHelp("l/→", "next week")),
		Today:  key.NewBinding(key.WithKeys("t"), key.WithHelp("t", "this week")),
		Reseed: key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "reshuffle")),
		Export: key.NewBinding(key.WithKeys("e"), key.WithHelp("e", "export pdf")),
		Copy:   key.NewBinding(key.WithKeys("c"), key.WithHelp("c", "copy")),
		Quit:   key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

// ShortHelp implements help.KeyMap.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Prev, k.Next, k.Today, k.Reseed, k.Export, k.Copy, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}

// handleKeyMsg handles keyboard input.
func (m Model) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	m.log.Debug().Str("key", msg.String()).Msg("key press")

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	// Navigation
	case key.Matches(msg, m.keys.Prev):
		m.showWeek(m.weekStart.AddDate(0, 0, -7))
		return m, nil
	case key.Matches(msg, m.keys.Next):
		m.showWeek(m.weekStart.AddDate(0, 0, 7))
		return m, nil
	case key.Matches(msg, m.keys.Today):
		m.showWeek(m.today)
		return m, nil

	case key.Matches(msg, m.keys.Reseed):
		if !m.src.Reseed(uint64(time.Now().UnixNano())) {
			cmd := m.setStatus("reshuffle only works with the sample source", true)
			return m, cmd
		}
		m.resetPlans()
		m.showWeek(m.weekStart)
		cmd := m.setStatus("lineup reshuffled", false)
		return m, cmd

	case key.Matches(msg, m.keys.Export):
		m.setPending("exporting...")
		return m, commands.Export(m.src.PDF(""), m.plan)

	case key.Matches(msg, m.keys.Copy):
		text := m.src.Text(m.width).RenderPlan(m.plan)
		return m, commands.Copy(render.Plain(text))
	}

	// Scrolling
	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}
