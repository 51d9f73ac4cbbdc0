// Package logging builds the zerolog loggers used across tvguide.
package logging

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
)

// DefaultFile is where the debug log goes when no path is configured.
const DefaultFile = "tvguide-debug.log"

// Options selects where and how much to log.
type Options struct {
	Debug bool   // JSON lines at debug level to File
	Level string // level when Debug is off, e.g. "info", "warn"
	File  string
}

// New returns the root logger and a close func for the underlying file.
// Without Debug it writes human-readable lines to stderr; with Debug it
// writes JSON lines to the log file so terminal output stays clean.
func New(opts Options) (zerolog.Logger, func() error, error) {
	if !opts.Debug {
		level, err := parseLevel(opts.Level)
		if err != nil {
			return zerolog.Nop(), noop, err
		}
		writer := zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen}
		return newLogger(writer, level), noop, nil
	}

	path := opts.File
	if path == "" {
		path = DefaultFile
	}
	f, err := os.Create(path)
	if err != nil {
		return zerolog.Nop(), noop, fmt.Errorf("creating debug log: %w", err)
	}
	l := newLogger(f, zerolog.DebugLevel)
	l.Debug().Str("log_file", path).Msg("debug start")
	return l, func() error {
		l.Debug().Msg("debug end")
		return f.Close()
	}, nil
}

// Component returns a child logger tagged with the component name.
func Component(l zerolog.Logger, name string) zerolog.Logger {
	return l.With().Str("component", name).Logger()
}

func newLogger(w io.Writer, level zerolog.Level) zerolog.Logger {
	return zerolog.New(w).Level(level).With().Timestamp().Logger()
}

func parseLevel(s string) (zerolog.Level, error) {
	if s == "" {
		return zerolog.WarnLevel, nil
	}
	level, err := zerolog.ParseLevel(s)
	if err != nil {
		return zerolog.NoLevel, fmt.Errorf("invalid log level %q: %w", s, err)
	}
	return level, nil
}

func noop() error { return nil }
