// Package tui provides the interactive week browser for tvguide.
package tui

import (
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"

	"github.com/javiermolinar/tvguide/internal/dateutil"
	"github.com/javiermolinar/tvguide/internal/grid"
	"github.com/javiermolinar/tvguide/internal/logging"
	"github.com/javiermolinar/tvguide/internal/render"
	"github.com/javiermolinar/tvguide/internal/tui/commands"
)

const (
	// title, status and help lines around the viewport
	chromeHeight = 3
	statusTTL    = 3 * time.Second
)

// Source builds and renders weekly plans. *guide.Guide implements it.
type Source interface {
	Week(day time.Time) grid.Plan
	Reseed(seed uint64) bool
	Text(width int) *render.Text
	PDF(output string) *render.PDF
}

// Options configures the browser.
type Options struct {
	Now time.Time // "this week"; zero means time.Now()
	Log zerolog.Logger
}

// Model is the main TUI model.
type Model struct {
	src  Source
	log  zerolog.Logger
	keys keyMap
	help help.Model

	viewport viewport.Model
	width    int
	height   int
	ready    bool

	today     time.Time // Monday of the current week
	weekStart time.Time
	plan      grid.Plan
	plans     map[string]grid.Plan // built weeks, keyed by Monday

	status    string
	statusErr bool
	statusID  int // bumped on every status change
}

// New creates the browser model showing the week of opts.Now.
func New(src Source, opts Options) Model {
	now := opts.Now
	if now.IsZero() {
		now = time.Now()
	}
	monday, _ := dateutil.WeekRange(now)

	m := Model{
		src:      src,
		log:      logging.Component(opts.Log, "tui"),
		keys:     defaultKeyMap(),
		help:     help.New(),
		viewport: viewport.New(0, 0),
		today:    monday,
		plans:    make(map[string]grid.Plan),
	}
	m.showWeek(monday)
	return m
}

// Run starts the TUI.
func Run(src Source, opts Options) error {
	p := tea.NewProgram(New(src, opts), tea.WithAltScreen())
	_, err := p.Run()
	return err
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.viewport.Width = msg.Width
		m.viewport.Height = max(msg.Height-chromeHeight, 1)
		m.help.Width = msg.Width
		m.ready = true
		m.refresh()
		return m, nil

	case tea.KeyMsg:
		return m.handleKeyMsg(msg)

	case commands.ExportedMsg:
		if msg.Err != nil {
			m.log.Error().Err(msg.Err).Msg("export failed")
			cmd := m.setStatus("export failed: "+msg.Err.Error(), true)
			return m, cmd
		}
		cmd := m.setStatus("exported "+msg.Path, false)
		return m, cmd

	case commands.CopiedMsg:
		if msg.Err != nil {
			cmd := m.setStatus("copy failed: "+msg.Err.Error(), true)
			return m, cmd
		}
		cmd := m.setStatus("copied to clipboard", false)
		return m, cmd

	case commands.ClearStatusMsg:
		// A newer status has its own timer.
		if msg.ID == m.statusID {
			m.status, m.statusErr = "", false
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

// WeekStart returns the Monday of the week on screen.
func (m Model) WeekStart() time.Time {
	return m.weekStart
}

// Plan returns the plan on screen.
func (m Model) Plan() grid.Plan {
	return m.plan
}

// Status returns the status line text and whether it reports an error.
func (m Model) Status() (string, bool) {
	return m.status, m.statusErr
}

// showWeek switches to the week containing day, building it on first visit.
func (m *Model) showWeek(day time.Time) {
	monday, _ := dateutil.WeekRange(day)
	key := monday.Format("2006-01-02")

	plan, ok := m.plans[key]
	if !ok {
		plan = m.src.Week(monday)
		m.plans[key] = plan
		m.log.Debug().Str("week", key).Int("placements", len(plan.Placements)).Msg("week built")
	}
	m.weekStart, m.plan = monday, plan
	m.refresh()
	m.viewport.GotoTop()
}

func (m *Model) resetPlans() {
	m.plans = make(map[string]grid.Plan)
}

// refresh re-renders the plan into the viewport.
func (m *Model) refresh() {
	m.viewport.SetContent(m.src.Text(m.width).RenderPlan(m.plan))
}

// setPending shows msg until the next status replaces it.
func (m *Model) setPending(msg string) {
	m.statusID++
	m.status, m.statusErr = msg, false
}

func (m *Model) setStatus(msg string, isErr bool) tea.Cmd {
	m.statusID++
	m.status, m.statusErr = msg, isErr
	return commands.ClearStatusAfter(statusTTL, m.statusID)
}

func (m Model) title() string {
	return fmt.Sprintf("tvguide  week of %s", m.weekStart.Format("Mon Jan 2, 2006"))
}
