// Package config handles configuration loading from files, defaults, and environment variables.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"github.com/pelletier/go-toml/v2"
)

// Program sources.
const (
	SourceSample = "sample"
	SourceFile   = "file"
	SourceDB     = "db"
)

// Config holds the application configuration.
type Config struct {
	Guide   GuideConfig   `toml:"guide"`
	Source  SourceConfig  `toml:"source"`
	Render  RenderConfig  `toml:"render"`
	Storage StorageConfig `toml:"storage"`
	Log     LogConfig     `toml:"log"`
}

// GuideConfig holds the grid layout settings.
type GuideConfig struct {
	DayStart   string   `toml:"day_start"`   // e.g., "05:00"
	Weekdays   []string `toml:"weekdays"`    // header labels, Monday first
	DateFormat string   `toml:"date_format"` // Go layout for header dates
	TimeFormat string   `toml:"time_format"` // Go layout for time labels
}

// SourceConfig selects where program data comes from.
type SourceConfig struct {
	Kind         string `toml:"kind"`          // "sample", "file", "db"
	Seed         uint64 `toml:"seed"`          // 0 means time based
	ScheduleFile string `toml:"schedule_file"` // .toml or .yaml lineup
	Filler       string `toml:"filler"`        // label for unscheduled slots
}

// RenderConfig holds output settings.
type RenderConfig struct {
	PageSize  string  `toml:"page_size"` // "A3", "A4", "Letter", "Legal"
	Color     bool    `toml:"color"`
	Palette   string  `toml:"palette"` // "classic", "pastel", "mono"
	FontSize  float64 `toml:"font_size"`
	OutputDir string  `toml:"output_dir"`
}

// StorageConfig holds database settings.
type StorageConfig struct {
	DBPath string `toml:"db_path"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level string `toml:"level"`
	File  string `toml:"file"`
}

// Default returns the default configuration.
func Default() *Config {
	return &Config{
		Guide: GuideConfig{
			DayStart:   "05:00",
			Weekdays:   []string{"Mon", "Tue", "Wed", "Thu", "Fri", "Sat", "Sun"},
			DateFormat: "01/02/2006",
			TimeFormat: "03:04 PM",
		},
		Source: SourceConfig{
			Kind:   SourceSample,
			Filler: "Paid Programming",
		},
		Render: RenderConfig{
			PageSize:  "A3",
			Color:     true,
			Palette:   "classic",
			FontSize:  6.7,
			OutputDir: ".",
		},
		Storage: StorageConfig{
			DBPath: defaultDBPath(),
		},
		Log: LogConfig{
			Level: "info",
			File:  "tvguide-debug.log",
		},
	}
}

// defaultDBPath returns the default database path.
func defaultDBPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "tvguide.db"
	}
	return filepath.Join(home, ".local", "share", "tvguide", "tvguide.db")
}

// DefaultConfigPath returns the default config file path.
func DefaultConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "config.toml"
	}
	return filepath.Join(home, ".config", "tvguide", "config.toml")
}

// Load loads configuration from the default path, merging with defaults and env vars.
func Load() (*Config, error) {
	return LoadFrom(DefaultConfigPath())
}

// LoadFrom loads configuration from the specified path.
// It starts with defaults, overlays file config if it exists, then a .env file
// in the working directory, then applies env overrides.
func LoadFrom(path string) (*Config, error) {
	cfg := Default()

	// Try to load from file (not an error if it doesn't exist)
	if err := loadFromFile(path, cfg); err != nil {
		return nil, err
	}

	// Variables already set in the environment win over .env
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("reading .env file: %w", err)
	}

	if err := applyEnvOverrides(cfg); err != nil {
		return nil, err
	}

	// Expand paths
	cfg.Storage.DBPath = expandPath(cfg.Storage.DBPath)
	cfg.Render.OutputDir = expandPath(cfg.Render.OutputDir)
	cfg.Source.ScheduleFile = expandPath(cfg.Source.ScheduleFile)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}

// loadFromFile loads config from a file if it exists.
func loadFromFile(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil // File doesn't exist, use defaults
		}
		return fmt.Errorf("reading config file: %w", err)
	}

	if err := toml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("parsing config file: %w", err)
	}

	return nil
}

// applyEnvOverrides applies environment variable overrides to the config.
// Environment variables take precedence over file config.
func applyEnvOverrides(cfg *Config) error {
	if v := os.Getenv("TVGUIDE_DAY_START"); v != "" {
		cfg.Guide.DayStart = v
	}

	// Source overrides
	if v := os.Getenv("TVGUIDE_SOURCE"); v != "" {
		cfg.Source.Kind = v
	}
	if v := os.Getenv("TVGUIDE_SEED"); v != "" {
		seed, err := strconv.ParseUint(v, 10, 64)
		if err != nil {
			return fmt.Errorf("TVGUIDE_SEED must be a non-negative integer, got %q", v)
		}
		cfg.Source.Seed = seed
	}
	if v := os.Getenv("TVGUIDE_SCHEDULE_FILE"); v != "" {
		cfg.Source.ScheduleFile = v
	}

	// Render overrides
	if v := os.Getenv("TVGUIDE_PAGE_SIZE"); v != "" {
		cfg.Render.PageSize = v
	}
	if v := os.Getenv("TVGUIDE_PALETTE"); v != "" {
		cfg.Render.Palette = v
	}
	if v := os.Getenv("TVGUIDE_OUTPUT_DIR"); v != "" {
		cfg.Render.OutputDir = v
	}

	if v := os.Getenv("TVGUIDE_DB_PATH"); v != "" {
		cfg.Storage.DBPath = v
	}
	if v := os.Getenv("TVGUIDE_LOG_LEVEL"); v != "" {
		cfg.Log.Level = v
	}
	return nil
}

// expandPath expands ~ to the user's home directory.
func expandPath(path string) string {
	if strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return path
		}
		return filepath.Join(home, path[2:])
	}
	return path
}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	if err := validateTime(c.Guide.DayStart, "day_start"); err != nil {
		return err
	}
	if len(c.Guide.Weekdays) != 7 {
		return fmt.Errorf("weekdays must list 7 labels, got %d", len(c.Guide.Weekdays))
	}
	if c.Guide.DateFormat == "" || c.Guide.TimeFormat == "" {
		return errors.New("date_format and time_format must be set")
	}

	switch c.Source.Kind {
	case SourceSample, SourceDB:
	case SourceFile:
		if c.Source.ScheduleFile == "" {
			return errors.New("schedule_file must be set when source is \"file\"")
		}
	default:
		return fmt.Errorf("invalid source: %q (want sample, file or db)", c.Source.Kind)
	}

	if !isValidPageSize(c.Render.PageSize) {
		return fmt.Errorf("invalid page_size: %q", c.Render.PageSize)
	}
	if c.Render.FontSize <= 0 {
		return fmt.Errorf("font_size must be positive, got %v", c.Render.FontSize)
	}
	if c.Render.Palette == "" {
		return errors.New("palette must be set")
	}
	if c.Storage.DBPath == "" {
		return errors.New("db_path must be set")
	}
	return nil
}

// validateTime checks if a time string is in HH:MM format.
func validateTime(t, field string) error {
	if len(t) != 5 || t[2] != ':' {
		return fmt.Errorf("%s must be in HH:MM format, got %q", field, t)
	}
	hour, min := t[0:2], t[3:5]
	if !isDigits(hour) || !isDigits(min) || hour > "23" || min > "59" {
		return fmt.Errorf("%s must be in HH:MM format, got %q", field, t)
	}
	return nil
}

func isDigits(s string) bool {
	for _, c := range s {
		if c < '0' || c > '9' {
			return false
		}
	}
	return true
}

var validPageSizes = map[string]bool{
	"a3":     true,
	"a4":     true,
	"letter": true,
	"legal":  true,
}

func isValidPageSize(size string) bool {
	return validPageSizes[strings.ToLower(size)]
}

// Save writes the configuration to the default path.
func (c *Config) Save() error {
	return c.SaveTo(DefaultConfigPath())
}

// SaveTo writes the configuration to the specified path.
func (c *Config) SaveTo(path string) error {
	// Ensure directory exists
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	data, err := toml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}

	return nil
}
