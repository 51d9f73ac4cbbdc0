package ui

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/javiermolinar/tvguide/internal/config"
	"github.com/javiermolinar/tvguide/internal/render"
)

func (a *App) configCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "View or edit configuration",
		Long: `Interactive configuration management.

If no config file exists, creates one with default values.
Otherwise, displays current config and allows editing.

Example:
  tvguide config
  tvguide --config ./guide.toml config`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.runConfigInteractive(cmd.InOrStdin(), cmd.OutOrStdout())
		},
	}
}

func (a *App) runConfigInteractive(in io.Reader, out io.Writer) error {
	configPath := a.configPath
	cfg := a.config
	fmt.Fprintf(out, "Config file: %s\n\n", configPath)

	// Check if file exists
	_, fileErr := os.Stat(configPath)
	isNew := os.IsNotExist(fileErr)

	if isNew {
		fmt.Fprintln(out, "No config file found. Creating with default values...")
		if err := cfg.SaveTo(configPath); err != nil {
			return fmt.Errorf("saving config: %w", err)
		}
		fmt.Fprintf(out, "Created %s\n\n", configPath)
	}

	// Display current config
	printConfig(out, cfg)

	reader := bufio.NewReader(in)

	// Ask if user wants to edit
	if !promptYesNo(reader, out, "\nWould you like to edit the configuration?") {
		return nil
	}

	cfg.Guide.DayStart = promptValue(reader, out, "Day start (HH:MM)", cfg.Guide.DayStart)
	cfg.Guide.Weekdays = promptSlice(reader, out, "Weekday labels (comma-separated, Monday first)", cfg.Guide.Weekdays)
	cfg.Guide.DateFormat = promptValue(reader, out, "Date format", cfg.Guide.DateFormat)
	cfg.Guide.TimeFormat = promptValue(reader, out, "Time format", cfg.Guide.TimeFormat)
	cfg.Source.Kind = promptValue(reader, out, "Source (sample, file, db)", cfg.Source.Kind)
	cfg.Source.ScheduleFile = promptClearable(reader, out, "Schedule file", cfg.Source.ScheduleFile)
	cfg.Source.Filler = promptClearable(reader, out, "Filler title", cfg.Source.Filler)
	cfg.Render.PageSize = promptValue(reader, out, "Page size (A3, A4, Letter, Legal)", cfg.Render.PageSize)
	cfg.Render.Palette = promptValue(reader, out,
		fmt.Sprintf("Palette (%s)", strings.Join(render.AvailablePalettes(), ", ")), cfg.Render.Palette)
	cfg.Render.Color = promptBool(reader, out, "Color", cfg.Render.Color)
	cfg.Render.FontSize = promptFloat(reader, out, "Font size", cfg.Render.FontSize)
	cfg.Render.OutputDir = promptValue(reader, out, "Output directory", cfg.Render.OutputDir)
	cfg.Storage.DBPath = promptValue(reader, out, "Database path", cfg.Storage.DBPath)

	// Validate before saving
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}

	// Save
	if err := cfg.SaveTo(configPath); err != nil {
		return fmt.Errorf("saving config: %w", err)
	}

	fmt.Fprintln(out, "\nConfiguration saved!")
	return nil
}

func printConfig(w io.Writer, cfg *config.Config) {
	fmt.Fprintln(w, "Current configuration:")
	fmt.Fprintln(w, "──────────────────────")
	fmt.Fprintln(w, "[guide]")
	fmt.Fprintf(w, "  day_start     = %s\n", cfg.Guide.DayStart)
	fmt.Fprintf(w, "  weekdays      = %s\n", strings.Join(cfg.Guide.Weekdays, ", "))
	fmt.Fprintf(w, "  date_format   = %s\n", cfg.Guide.DateFormat)
	fmt.Fprintf(w, "  time_format   = %s\n", cfg.Guide.TimeFormat)
	fmt.Fprintln(w, "\n[source]")
	fmt.Fprintf(w, "  kind          = %s\n", cfg.Source.Kind)
	fmt.Fprintf(w, "  seed          = %d\n", cfg.Source.Seed)
	if cfg.Source.ScheduleFile != "" {
		fmt.Fprintf(w, "  schedule_file = %s\n", cfg.Source.ScheduleFile)
	}
	fmt.Fprintf(w, "  filler        = %s\n", cfg.Source.Filler)
	fmt.Fprintln(w, "\n[render]")
	fmt.Fprintf(w, "  page_size     = %s\n", cfg.Render.PageSize)
	fmt.Fprintf(w, "  palette       = %s\n", cfg.Render.Palette)
	fmt.Fprintf(w, "  color         = %t\n", cfg.Render.Color)
	fmt.Fprintf(w, "  font_size     = %g\n", cfg.Render.FontSize)
	fmt.Fprintf(w, "  output_dir    = %s\n", cfg.Render.OutputDir)
	fmt.Fprintln(w, "\n[storage]")
	fmt.Fprintf(w, "  db_path       = %s\n", cfg.Storage.DBPath)
	fmt.Fprintln(w, "\n[log]")
	fmt.Fprintf(w, "  level         = %s\n", cfg.Log.Level)
	fmt.Fprintf(w, "  file          = %s\n", cfg.Log.File)
}

func promptYesNo(reader *bufio.Reader, w io.Writer, question string) bool {
	fmt.Fprintf(w, "%s [y/N]: ", question)
	input, _ := reader.ReadString('\n')
	input = strings.TrimSpace(strings.ToLower(input))
	return input == "y" || input == "yes"
}

func promptValue(reader *bufio.Reader, w io.Writer, label, current string) string {
	if current == "" {
		fmt.Fprintf(w, "  %s: ", label)
	} else {
		fmt.Fprintf(w, "  %s [%s]: ", label, current)
	}
	input, _ := reader.ReadString('\n')
	input = strings.TrimSpace(input)
	if input == "" {
		return current
	}
	return input
}

// clearValue typed at a clearable prompt empties the value.
const clearValue = "-"

// promptClearable is promptValue where clearValue sets the value to "".
func promptClearable(reader *bufio.Reader, w io.Writer, label, current string) string {
	value := promptValue(reader, w, fmt.Sprintf("%s (%s to clear)", label, clearValue), current)
	if value == clearValue {
		return ""
	}
	return value
}

func promptSlice(reader *bufio.Reader, w io.Writer, label string, current []string) []string {
	input := promptValue(reader, w, label, strings.Join(current, ", "))
	parts := strings.Split(input, ",")
	result := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			result = append(result, p)
		}
	}
	return result
}

func promptBool(reader *bufio.Reader, w io.Writer, label string, current bool) bool {
	for {
		value := promptValue(reader, w, label, strconv.FormatBool(current))
		b, err := strconv.ParseBool(value)
		if err == nil {
			return b
		}
		fmt.Fprintf(w, "  Invalid value %q. Use true or false\n", value)
	}
}

func promptFloat(reader *bufio.Reader, w io.Writer, label string, current float64) float64 {
	for {
		value := promptValue(reader, w, label, strconv.FormatFloat(current, 'g', -1, 64))
		f, err := strconv.ParseFloat(value, 64)
		if err == nil {
			return f
		}
		fmt.Fprintf(w, "  Invalid number %q\n", value)
	}
}
