// Package ui implements the tvguide command line.
package ui

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/javiermolinar/tvguide/internal/config"
	"github.com/javiermolinar/tvguide/internal/db"
	"github.com/javiermolinar/tvguide/internal/guide"
	"github.com/javiermolinar/tvguide/internal/logging"
	"github.com/javiermolinar/tvguide/internal/program"
	"github.com/javiermolinar/tvguide/internal/tui"
)

var (
	// Version is set at build time
	Version = "dev"
	// Commit is set at build time
	Commit = "none"
)

// App holds the CLI application state.
type App struct {
	configPath string
	config     *config.Config
	repo       *db.SQLite // opened on first use
	root       *cobra.Command
	debug      bool // Enable debug logging
	log        zerolog.Logger
	closeLog   func() error
	now        func() time.Time
}

// NewApp creates a new CLI application. The config file is read when a
// command runs, so --config can point somewhere else.
func NewApp(configPath string) *App {
	a := &App{
		configPath: configPath,
		log:        zerolog.Nop(),
		closeLog:   func() error { return nil },
		now:        time.Now,
	}

	a.root = &cobra.Command{
		Use:   "tvguide",
		Short: "A printable weekly TV program guide",
		Long: `tvguide lays out a week of television programs in the classic
25-row program-guide grid: a header row of weekdays and dates, 24 half-hour
slots, and the slot times repeated on both sides.

Run without a command to browse weeks interactively.`,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: a.setup,
		RunE: func(cmd *cobra.Command, _ []string) error {
			g, err := a.newGuide(cmd.Context())
			if err != nil {
				return err
			}
			return tui.Run(g, tui.Options{Now: a.now(), Log: a.log})
		},
	}

	// Add global flags
	a.root.PersistentFlags().BoolVar(&a.debug, "debug", false, "Enable debug logging (JSON lines to the log file)")
	a.root.PersistentFlags().StringVar(&a.configPath, "config", configPath, "Config file path")

	a.root.AddCommand(a.versionCmd())
	a.root.AddCommand(a.configCmd())
	a.root.AddCommand(a.renderCmd())
	a.root.AddCommand(a.showCmd())
	a.root.AddCommand(a.weekCmd())
	a.root.AddCommand(a.programCmd())

	return a
}

// setup loads the configuration and the logger before any command runs.
func (a *App) setup(_ *cobra.Command, _ []string) error {
	cfg, err := config.LoadFrom(a.configPath)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	a.config = cfg

	log, closeLog, err := logging.New(logging.Options{
		Debug: a.debug,
		Level: cfg.Log.Level,
		File:  cfg.Log.File,
	})
	if err != nil {
		return err
	}
	a.log, a.closeLog = log, closeLog
	a.log.Debug().Str("config", a.configPath).Str("source", cfg.Source.Kind).Msg("config loaded")
	return nil
}

func (a *App) versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version number",
		// Version needs neither config nor logging
		PersistentPreRunE: func(*cobra.Command, []string) error { return nil },
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "tvguide %s (commit: %s)\n", Version, Commit)
		},
	}
}

// ensureRepo opens the program database, creating its directory if needed.
func (a *App) ensureRepo() error {
	if a.repo != nil {
		return nil
	}
	if a.config == nil || a.config.Storage.DBPath == "" {
		return errors.New("db path is empty")
	}
	if err := os.MkdirAll(filepath.Dir(a.config.Storage.DBPath), 0o755); err != nil {
		return fmt.Errorf("creating data directory: %w", err)
	}
	repo, err := db.New(a.config.Storage.DBPath)
	if err != nil {
		return fmt.Errorf("initializing database: %w", err)
	}
	a.repo = repo
	return nil
}

// newGuide builds a Guide for the configured source.
func (a *App) newGuide(ctx context.Context) (*guide.Guide, error) {
	var repo program.Repository
	if a.config.Source.Kind == config.SourceDB {
		if err := a.ensureRepo(); err != nil {
			return nil, err
		}
		repo = a.repo
	}
	return guide.New(ctx, a.config, repo, a.log)
}

// Execute runs the CLI application.
func (a *App) Execute() error {
	return a.root.Execute()
}

// Close releases the database and the debug log.
func (a *App) Close() error {
	var errs []error
	if a.repo != nil {
		errs = append(errs, a.repo.Close())
		a.repo = nil
	}
	errs = append(errs, a.closeLog())
	return errors.Join(errs...)
}
