package program

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"github.com/javiermolinar/tvguide/internal/grid"
)

// ErrUnsupportedFormat is returned for schedule files that are neither TOML nor YAML.
var ErrUnsupportedFormat = errors.New("schedule file must be .toml, .yaml or .yml")

// scheduleFile is the on-disk lineup:
//
//	[[program]]
//	title = "Local News"
//	day   = "weekdays"
//	start = "06:00"
//	span  = 2
type scheduleFile struct {
	Programs []scheduleEntry `toml:"program" yaml:"program"`
}

type scheduleEntry struct {
	Title string `toml:"title" yaml:"title"`
	Day   string `toml:"day" yaml:"day"`
	Start string `toml:"start" yaml:"start"`
	Span  int    `toml:"span" yaml:"span"`
}

// LoadScheduleFile reads a lineup from a TOML or YAML file. Start times are
// resolved against dayStart; a missing span means one slot.
func LoadScheduleFile(path string, dayStart grid.Clock) ([]*Program, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading schedule file: %w", err)
	}
	return ParseSchedule(data, filepath.Ext(path), dayStart)
}

// ParseSchedule decodes schedule data; ext selects the format.
func ParseSchedule(data []byte, ext string, dayStart grid.Clock) ([]*Program, error) {
	var sf scheduleFile
	switch strings.ToLower(ext) {
	case ".toml":
		if err := toml.Unmarshal(data, &sf); err != nil {
			return nil, fmt.Errorf("parsing schedule file: %w", err)
		}
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &sf); err != nil {
			return nil, fmt.Errorf("parsing schedule file: %w", err)
		}
	default:
		return nil, ErrUnsupportedFormat
	}

	var programs []*Program
	for i, e := range sf.Programs {
		entries, err := e.resolve(dayStart)
		if err != nil {
			return nil, fmt.Errorf("program %d (%q): %w", i+1, e.Title, err)
		}
		programs = append(programs, entries...)
	}
	if err := CheckOverlaps(programs); err != nil {
		return nil, err
	}
	return programs, nil
}

func (e scheduleEntry) resolve(dayStart grid.Clock) ([]*Program, error) {
	days, err := ParseDays(e.Day)
	if err != nil {
		return nil, err
	}
	start, err := grid.ParseClock(e.Start)
	if err != nil {
		return nil, err
	}
	slot, err := SlotAt(dayStart, start)
	if err != nil {
		return nil, err
	}
	span := e.Span
	if span == 0 {
		span = 1
	}

	out := make([]*Program, 0, len(days))
	for _, d := range days {
		p, err := New(e.Title, d, slot, span)
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, nil
}
