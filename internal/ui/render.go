package ui

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/javiermolinar/tvguide/internal/dateutil"
)

// guideFlags are the source and week selection flags shared by render and show.
type guideFlags struct {
	week    string
	source  string
	seed    uint64
	noColor bool
}

func (f *guideFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.week, "week", "this", "Week to print: this, next, prev, +N, -N or YYYY-MM-DD")
	cmd.Flags().StringVar(&f.source, "source", "", "Program source: sample, file or db (default from config)")
	cmd.Flags().Uint64Var(&f.seed, "seed", 0, "Seed for the sample source (0 = time based)")
	cmd.Flags().BoolVar(&f.noColor, "no-color", false, "Disable color output")
}

// applyGuideFlags copies flag overrides into the loaded config.
func (a *App) applyGuideFlags(cmd *cobra.Command, f *guideFlags) error {
	if f.noColor {
		DisableColor()
		a.config.Render.Color = false
	}
	if f.source != "" {
		a.config.Source.Kind = f.source
	}
	if cmd.Flags().Changed("seed") {
		a.config.Source.Seed = f.seed
	}
	return a.config.Validate()
}

func (a *App) renderCmd() *cobra.Command {
	var (
		flags guideFlags
		weeks int
		out   string
		page  string
	)

	cmd := &cobra.Command{
		Use:   "render",
		Short: "Write the program guide to a PDF",
		Long: `Build one or more consecutive weekly grids and write them to a PDF,
one page per week.

Without --out the file is named after the current Unix time in
milliseconds and written to the configured output directory.`,
		Example: `  tvguide render
  tvguide render --week next --weeks 4
  tvguide render --week 2025-01-06 --page A4 --out guide.pdf
  tvguide render --source db --no-color`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if page != "" {
				a.config.Render.PageSize = page
			}
			if err := a.applyGuideFlags(cmd, &flags); err != nil {
				return err
			}

			start, err := dateutil.ParseWeek(flags.week, a.now())
			if err != nil {
				return err
			}

			g, err := a.newGuide(cmd.Context())
			if err != nil {
				return err
			}

			path, err := g.PDF(out).Render(cmd.Context(), g.Weeks(start, weeks))
			if err != nil {
				return err
			}

			noun := "week"
			if weeks > 1 {
				noun = "weeks"
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s %s (%d %s from %s)\n",
				formatOK("Wrote"), path, max(weeks, 1), noun, start.Format("2006-01-02"))
			return nil
		},
	}

	flags.register(cmd)
	cmd.Flags().IntVar(&weeks, "weeks", 1, "Number of consecutive weeks, one page each")
	cmd.Flags().StringVarP(&out, "out", "o", "", "Output file (default: <unix-ms>.pdf in output_dir)")
	cmd.Flags().StringVar(&page, "page", "", "Page size: A3, A4, Letter or Legal (default from config)")
	return cmd
}
