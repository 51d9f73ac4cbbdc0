package render

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/javiermolinar/tvguide/internal/grid"
)

func newTestPDF(t *testing.T, opts PDFOptions) *PDF {
	t.Helper()
	r := NewPDF(opts, classicPolicy(t, true), zerolog.Nop())
	r.now = func() time.Time { return time.UnixMilli(1736150400000) }
	return r
}

func TestPDF_Render(t *testing.T) {
	dir := t.TempDir()
	r := newTestPDF(t, PDFOptions{OutputDir: dir, Layouts: DefaultLayouts})

	path, err := r.Render(context.Background(), []grid.Plan{scenarioPlan()})
	if err != nil {
		t.Fatalf("Render failed: %v", err)
	}
	if want := filepath.Join(dir, "1736150400000.pdf"); path != want {
		t.Errorf("path = %q, want %q", path, want)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading output: %v", err)
	}
	if !bytes.HasPrefix(data, []byte("%PDF-")) {
		t.Error("output is not a PDF")
	}
}

func TestPDF_RenderPages(t *testing.T) {
	out := filepath.Join(t.TempDir(), "nested", "guide.pdf")
	r := newTestPDF(t, PDFOptions{Output: out, PageSize: "Letter", Layouts: DefaultLayouts})

	b := grid.New()
	var pages []grid.Plan
	for i := 0; i < 3; i++ {
		pages = append(pages, b.Build(testMonday.AddDate(0, 0, 7*i), grid.MustParseClock("05:00"), nil))
	}

	path, err := r.Render(context.Background(), pages)
	if err != nil {
		t.Fatalf("Render failed: %v", err)
	}
	if path != out {
		t.Errorf("path = %q, want %q", path, out)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading output: %v", err)
	}
	if n := strings.Count(string(data), "/Type /Page\n"); n != 3 {
		t.Errorf("expected 3 pages, got %d", n)
	}
}

func TestPDF_RenderErrors(t *testing.T) {
	blocker := filepath.Join(t.TempDir(), "blocker")
	if err := os.WriteFile(blocker, nil, 0o644); err != nil {
		t.Fatalf("failed to write blocker: %v", err)
	}

	cancelled, cancel := context.WithCancel(context.Background())
	cancel()

	tests := []struct {
		name   string
		ctx    context.Context
		opts   PDFOptions
		pages  []grid.Plan
		wantOp string
		target error
	}{
		{"no pages", context.Background(), PDFOptions{OutputDir: t.TempDir()}, nil, "draw", ErrNoPages},
		{"dir is a file", context.Background(), PDFOptions{Output: filepath.Join(blocker, "x.pdf")}, []grid.Plan{scenarioPlan()}, "mkdir", nil},
		{"cancelled", cancelled, PDFOptions{OutputDir: t.TempDir()}, []grid.Plan{scenarioPlan()}, "draw", context.Canceled},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := newTestPDF(t, tt.opts).Render(tt.ctx, tt.pages)

			var rf *RenderFailure
			if !errors.As(err, &rf) {
				t.Fatalf("expected *RenderFailure, got %v", err)
			}
			if rf.Op != tt.wantOp {
				t.Errorf("Op = %q, want %q", rf.Op, tt.wantOp)
			}
			if tt.target != nil && !errors.Is(err, tt.target) {
				t.Errorf("got error %v, want %v", err, tt.target)
			}
		})
	}
}
