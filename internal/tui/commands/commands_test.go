package commands

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/javiermolinar/tvguide/internal/grid"
)

type fakeRenderer struct {
	pages int
	err   error
}

func (f *fakeRenderer) Render(_ context.Context, pages []grid.Plan) (string, error) {
	f.pages = len(pages)
	if f.err != nil {
		return "", f.err
	}
	return "guide.pdf", nil
}

func TestExport(t *testing.T) {
	r := &fakeRenderer{}
	msg := Export(r, grid.Plan{}, grid.Plan{})()

	got, ok := msg.(ExportedMsg)
	if !ok {
		t.Fatalf("expected ExportedMsg, got %T", msg)
	}
	if got.Path != "guide.pdf" || got.Err != nil {
		t.Errorf("unexpected message: %+v", got)
	}
	if r.pages != 2 {
		t.Errorf("expected 2 pages rendered, got %d", r.pages)
	}
}

func TestExport_Error(t *testing.T) {
	boom := errors.New("boom")
	msg := Export(&fakeRenderer{err: boom}, grid.Plan{})()

	got := msg.(ExportedMsg)
	if !errors.Is(got.Err, boom) {
		t.Errorf("got error %v, want %v", got.Err, boom)
	}
}

func TestClearStatusAfter_CarriesID(t *testing.T) {
	msg := ClearStatusAfter(time.Millisecond, 7)()

	got, ok := msg.(ClearStatusMsg)
	if !ok {
		t.Fatalf("expected ClearStatusMsg, got %T", msg)
	}
	if got.ID != 7 {
		t.Errorf("ID = %d, want 7", got.ID)
	}
}
