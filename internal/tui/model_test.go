package tui

import (
	"context"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"

	"github.com/javiermolinar/tvguide/internal/config"
	"github.com/javiermolinar/tvguide/internal/guide"
	"github.com/javiermolinar/tvguide/internal/tui/commands"
)

var thursday = time.Date(2025, 1, 9, 20, 0, 0, 0, time.UTC)

func newTestModel(t *testing.T, mutate func(*config.Config)) Model {
	t.Helper()
	cfg := config.Default()
	cfg.Source.Seed = 21
	cfg.Render.OutputDir = t.TempDir()
	if mutate != nil {
		mutate(cfg)
	}
	g, err := guide.New(context.Background(), cfg, nil, zerolog.Nop())
	if err != nil {
		t.Fatalf("guide.New failed: %v", err)
	}
	return New(g, Options{Now: thursday, Log: zerolog.Nop()})
}

func press(t *testing.T, m Model, k string) (Model, tea.Cmd) {
	t.Helper()
	msg := tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(k)}
	updated, cmd := m.Update(msg)
	return updated.(Model), cmd
}

func TestNew_ShowsThisWeek(t *testing.T) {
	m := newTestModel(t, nil)

	want := time.Date(2025, 1, 6, 0, 0, 0, 0, time.UTC)
	if !m.WeekStart().Equal(want) {
		t.Errorf("WeekStart = %v, want %v", m.WeekStart(), want)
	}
	if err := m.Plan().Verify(); err != nil {
		t.Fatal(err)
	}
	if m.View() != "loading..." {
		t.Error("expected loading view before the first window size")
	}
}

func TestUpdate_WindowSize(t *testing.T) {
	m := newTestModel(t, nil)
	updated, _ := m.Update(tea.WindowSizeMsg{Width: 160, Height: 40})
	m = updated.(Model)

	view := m.View()
	if !strings.Contains(view, "week of Mon Jan 6, 2025") {
		t.Error("expected title with the week")
	}
	if !strings.Contains(view, "Mon 01/06/2025") {
		t.Error("expected the grid header in the viewport")
	}
}

func TestKeys_Navigation(t *testing.T) {
	m := newTestModel(t, nil)
	this := m.WeekStart()
	first := m.Plan()

	m, _ = press(t, m, "l")
	if got := m.WeekStart(); !got.Equal(this.AddDate(0, 0, 7)) {
		t.Errorf("after l: WeekStart = %v", got)
	}

	m, _ = press(t, m, "h")
	m, _ = press(t, m, "h")
	if got := m.WeekStart(); !got.Equal(this.AddDate(0, 0, -7)) {
		t.Errorf("after h h: WeekStart = %v", got)
	}

	m, _ = press(t, m, "t")
	if !m.WeekStart().Equal(this) {
		t.Errorf("after t: WeekStart = %v, want %v", m.WeekStart(), this)
	}
	// Revisited weeks keep their lineup
	if !reflect.DeepEqual(m.Plan(), first) {
		t.Error("expected the cached plan when coming back to a week")
	}

	updated, _ := m.Update(tea.KeyMsg{Type: tea.KeyRight})
	if got := updated.(Model).WeekStart(); !got.Equal(this.AddDate(0, 0, 7)) {
		t.Errorf("after right arrow: WeekStart = %v", got)
	}
}

func TestKeys_Reseed(t *testing.T) {
	m := newTestModel(t, nil)

	m, cmd := press(t, m, "r")
	if cmd == nil {
		t.Error("expected a status clear command")
	}
	if status, isErr := m.Status(); status != "lineup reshuffled" || isErr {
		t.Errorf("status = %q, %v", status, isErr)
	}
	if err := m.Plan().Verify(); err != nil {
		t.Fatal(err)
	}
}

func TestKeys_ReseedFileSource(t *testing.T) {
	path := filepath.Join(t.TempDir(), "lineup.toml")
	content := "[[program]]\ntitle = \"News\"\nday = \"daily\"\nstart = \"06:00\"\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write schedule: %v", err)
	}

	m := newTestModel(t, func(cfg *config.Config) {
		cfg.Source.Kind = config.SourceFile
		cfg.Source.ScheduleFile = path
	})

	m, _ = press(t, m, "r")
	if _, isErr := m.Status(); !isErr {
		t.Error("expected an error status for a file source")
	}
}

func TestKeys_Export(t *testing.T) {
	m := newTestModel(t, nil)

	m, cmd := press(t, m, "e")
	if cmd == nil {
		t.Fatal("expected an export command")
	}
	if status, _ := m.Status(); status != "exporting..." {
		t.Errorf("status = %q", status)
	}

	msg, ok := cmd().(commands.ExportedMsg)
	if !ok {
		t.Fatal("expected ExportedMsg")
	}
	if msg.Err != nil {
		t.Fatalf("export failed: %v", msg.Err)
	}
	if _, err := os.Stat(msg.Path); err != nil {
		t.Errorf("expected exported file: %v", err)
	}

	updated, _ := m.Update(msg)
	if status, isErr := updated.(Model).Status(); !strings.Contains(status, msg.Path) || isErr {
		t.Errorf("status = %q, %v", status, isErr)
	}
}

func TestUpdate_StatusMessages(t *testing.T) {
	m := newTestModel(t, nil)

	updated, _ := m.Update(commands.CopiedMsg{Err: os.ErrPermission})
	m = updated.(Model)
	if status, isErr := m.Status(); !isErr || !strings.Contains(status, "copy failed") {
		t.Errorf("status = %q, %v", status, isErr)
	}

	updated, _ = m.Update(commands.ClearStatusMsg{ID: m.statusID})
	if status, _ := updated.(Model).Status(); status != "" {
		t.Errorf("expected cleared status, got %q", status)
	}
}

func TestUpdate_StaleClearKeepsNewerStatus(t *testing.T) {
	m := newTestModel(t, nil)

	updated, _ := m.Update(commands.CopiedMsg{})
	m = updated.(Model)
	copied := m.statusID

	updated, _ = m.Update(commands.ExportedMsg{Path: "guide.pdf"})
	m = updated.(Model)

	// The copy timer fires after the export status was set
	updated, _ = m.Update(commands.ClearStatusMsg{ID: copied})
	m = updated.(Model)
	if status, _ := m.Status(); status != "exported guide.pdf" {
		t.Errorf("stale clear wiped the newer status, got %q", status)
	}

	updated, _ = m.Update(commands.ClearStatusMsg{ID: m.statusID})
	if status, _ := updated.(Model).Status(); status != "" {
		t.Errorf("expected cleared status, got %q", status)
	}
}

func TestKeys_Quit(t *testing.T) {
	m := newTestModel(t, nil)

	for _, k := range []tea.KeyMsg{
		{Type: tea.KeyRunes, Runes: []rune("q")},
		{Type: tea.KeyCtrlC},
	} {
		_, cmd := m.Update(k)
		if cmd == nil {
			t.Fatalf("%s: expected quit command", k)
		}
		if _, ok := cmd().(tea.QuitMsg); !ok {
			t.Errorf("%s: expected tea.QuitMsg", k)
		}
	}
}
