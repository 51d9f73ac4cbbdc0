package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	if cfg.Guide.DayStart != "05:00" {
		t.Errorf("expected day_start 05:00, got %s", cfg.Guide.DayStart)
	}
	if len(cfg.Guide.Weekdays) != 7 {
		t.Errorf("expected 7 weekdays, got %d", len(cfg.Guide.Weekdays))
	}
	if cfg.Source.Kind != SourceSample {
		t.Errorf("expected source sample, got %s", cfg.Source.Kind)
	}
	if cfg.Render.PageSize != "A3" {
		t.Errorf("expected page_size A3, got %s", cfg.Render.PageSize)
	}
	if cfg.Render.FontSize != 6.7 {
		t.Errorf("expected font_size 6.7, got %v", cfg.Render.FontSize)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config should be valid: %v", err)
	}
}

func TestLoadFrom_FileNotExists(t *testing.T) {
	cfg, err := LoadFrom("/nonexistent/path/config.toml")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// Should return defaults
	if cfg.Guide.DayStart != "05:00" {
		t.Errorf("expected default day_start, got %s", cfg.Guide.DayStart)
	}
}

func TestLoadFrom_ValidFile(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.toml")

	content := `
[guide]
day_start = "06:30"
weekdays = ["Lun", "Mar", "Mie", "Jue", "Vie", "Sab", "Dom"]

[source]
kind = "file"
schedule_file = "/tmp/lineup.toml"
seed = 42

[render]
page_size = "Letter"
palette = "pastel"
color = false

[storage]
db_path = "/tmp/test.db"
`
	if err := os.WriteFile(configPath, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	cfg, err := LoadFrom(configPath)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.Guide.DayStart != "06:30" {
		t.Errorf("expected day_start 06:30, got %s", cfg.Guide.DayStart)
	}
	if cfg.Guide.Weekdays[2] != "Mie" {
		t.Errorf("expected weekday label Mie, got %s", cfg.Guide.Weekdays[2])
	}
	if cfg.Source.Kind != SourceFile || cfg.Source.Seed != 42 {
		t.Errorf("unexpected source config: %+v", cfg.Source)
	}
	if cfg.Render.PageSize != "Letter" || cfg.Render.Palette != "pastel" || cfg.Render.Color {
		t.Errorf("unexpected render config: %+v", cfg.Render)
	}
	// Unset keys keep their defaults
	if cfg.Render.FontSize != 6.7 {
		t.Errorf("expected default font_size, got %v", cfg.Render.FontSize)
	}
	if cfg.Storage.DBPath != "/tmp/test.db" {
		t.Errorf("expected db_path /tmp/test.db, got %s", cfg.Storage.DBPath)
	}
}

func TestLoadFrom_InvalidTOML(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(configPath, []byte("[guide\nday_start ="), 0o644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	if _, err := LoadFrom(configPath); err == nil {
		t.Error("expected parse error")
	}
}

func TestLoadFrom_EnvOverrides(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.toml")

	content := `
[guide]
day_start = "06:00"

[render]
page_size = "A4"

[storage]
db_path = "/tmp/test.db"
`
	if err := os.WriteFile(configPath, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	t.Setenv("TVGUIDE_DAY_START", "07:00")
	t.Setenv("TVGUIDE_SEED", "99")
	t.Setenv("TVGUIDE_PALETTE", "mono")
	t.Setenv("TVGUIDE_LOG_LEVEL", "debug")

	cfg, err := LoadFrom(configPath)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// Env should override file
	if cfg.Guide.DayStart != "07:00" {
		t.Errorf("expected day_start 07:00 from env, got %s", cfg.Guide.DayStart)
	}
	// File value should be kept when no env override
	if cfg.Render.PageSize != "A4" {
		t.Errorf("expected page_size A4 from file, got %s", cfg.Render.PageSize)
	}
	// Env should override default
	if cfg.Source.Seed != 99 {
		t.Errorf("expected seed 99 from env, got %d", cfg.Source.Seed)
	}
	if cfg.Render.Palette != "mono" {
		t.Errorf("expected palette mono from env, got %s", cfg.Render.Palette)
	}
	if cfg.Log.Level != "debug" {
		t.Errorf("expected log level debug from env, got %s", cfg.Log.Level)
	}
}

func TestLoadFrom_InvalidSeed(t *testing.T) {
	t.Setenv("TVGUIDE_SEED", "-3")

	if _, err := LoadFrom(filepath.Join(t.TempDir(), "config.toml")); err == nil {
		t.Error("expected error for negative seed")
	}
}

func TestLoadFrom_DotEnv(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, ".env"), []byte("TVGUIDE_PAGE_SIZE=Legal\n"), 0o644); err != nil {
		t.Fatalf("failed to write .env: %v", err)
	}
	t.Chdir(dir)
	// godotenv sets the variable for the whole process; restore it afterwards
	t.Setenv("TVGUIDE_PAGE_SIZE", "")
	_ = os.Unsetenv("TVGUIDE_PAGE_SIZE")

	cfg, err := LoadFrom(filepath.Join(dir, "config.toml"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Render.PageSize != "Legal" {
		t.Errorf("expected page_size Legal from .env, got %s", cfg.Render.PageSize)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{"bad day_start", func(c *Config) { c.Guide.DayStart = "5am" }, "day_start"},
		{"hour out of range", func(c *Config) { c.Guide.DayStart = "25:00" }, "day_start"},
		{"six weekdays", func(c *Config) { c.Guide.Weekdays = c.Guide.Weekdays[:6] }, "weekdays"},
		{"empty date format", func(c *Config) { c.Guide.DateFormat = "" }, "date_format"},
		{"unknown source", func(c *Config) { c.Source.Kind = "satellite" }, "invalid source"},
		{"file source without file", func(c *Config) { c.Source.Kind = SourceFile }, "schedule_file"},
		{"unknown page size", func(c *Config) { c.Render.PageSize = "A0" }, "page_size"},
		{"zero font size", func(c *Config) { c.Render.FontSize = 0 }, "font_size"},
		{"empty palette", func(c *Config) { c.Render.Palette = "" }, "palette"},
		{"empty db path", func(c *Config) { c.Storage.DBPath = "" }, "db_path"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)
			err := cfg.Validate()
			if err == nil {
				t.Fatal("expected error")
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("error %q does not mention %q", err, tt.wantErr)
			}
		})
	}
}

func TestValidate_PageSizeCaseInsensitive(t *testing.T) {
	cfg := Default()
	cfg.Render.PageSize = "letter"
	if err := cfg.Validate(); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestExpandPath(t *testing.T) {
	home, _ := os.UserHomeDir()

	tests := []struct {
		input string
		want  string
	}{
		{"~/test.db", filepath.Join(home, "test.db")},
		{"/absolute/path.db", "/absolute/path.db"},
		{"relative/path.db", "relative/path.db"},
	}

	for _, tc := range tests {
		t.Run(tc.input, func(t *testing.T) {
			got := expandPath(tc.input)
			if got != tc.want {
				t.Errorf("expandPath(%q) = %q, want %q", tc.input, got, tc.want)
			}
		})
	}
}

func TestSaveAndLoad(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "nested", "config.toml")

	cfg := Default()
	cfg.Guide.DayStart = "20:00"
	cfg.Source.Kind = SourceDB
	cfg.Render.Palette = "pastel"

	if err := cfg.SaveTo(configPath); err != nil {
		t.Fatalf("failed to save config: %v", err)
	}

	loaded, err := LoadFrom(configPath)
	if err != nil {
		t.Fatalf("failed to load config: %v", err)
	}

	if loaded.Guide.DayStart != "20:00" {
		t.Errorf("expected day_start 20:00, got %s", loaded.Guide.DayStart)
	}
	if loaded.Source.Kind != SourceDB {
		t.Errorf("expected source db, got %s", loaded.Source.Kind)
	}
	if loaded.Render.Palette != "pastel" {
		t.Errorf("expected palette pastel, got %s", loaded.Render.Palette)
	}
}
