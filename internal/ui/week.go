package ui

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/javiermolinar/tvguide/internal/dateutil"
	"github.com/javiermolinar/tvguide/internal/summary"
)

const ruleWidth = 60

func (a *App) weekCmd() *cobra.Command {
	var flags guideFlags

	cmd := &cobra.Command{
		Use:   "week",
		Short: "Show airtime stats for a week",
		Long: `Build one week's grid and print how much of it is real programming:
programs and slots per day, filler and empty slots, the longest program
and how many spans had to be normalized to fit the grid.`,
		Example: `  tvguide week
  tvguide week --source db --week next`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
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

			s := summary.SummarizeWeek(g.Week(start), g.Filler())
			printWeekSummary(cmd.OutOrStdout(), s, a.config.Guide.TimeFormat)
			return nil
		},
	}

	flags.register(cmd)
	return cmd
}

func printWeekSummary(w io.Writer, s *summary.WeekSummary, timeLayout string) {
	header := fmt.Sprintf("WEEK: %s - %s", s.Start.Format("Mon Jan 2"), s.End.Format("Mon Jan 2, 2006"))
	fmt.Fprintf(w, "\n  %s\n", formatHeader(header))
	fmt.Fprintln(w, strings.Repeat("─", ruleWidth))

	fmt.Fprintf(w, "  %-10s %8s %6s %7s %6s\n", "Day", "Programs", "Slots", "Filler", "Empty")
	for _, d := range s.Days {
		day := fmt.Sprintf("%s %s", d.Label, d.Date.Format("01/02"))
		fmt.Fprintf(w, "  %-10s %8d %6d %7d %6d\n", day, d.Programs, d.ProgramSlots, d.FillerSlots, d.EmptySlots)
	}

	fmt.Fprintln(w, strings.Repeat("─", ruleWidth))
	fmt.Fprintf(w, "  Programs: %d\n", s.TotalPrograms())
	if s.Longest.Slots > 0 {
		fmt.Fprintf(w, "  Longest:  %s (%s %s, %d slots)\n", formatTitle(s.Longest.Title),
			s.Days[s.Longest.Weekday].Label, s.Longest.Time.Format(timeLayout), s.Longest.Slots)
	}
	if s.Adjustments > 0 {
		fmt.Fprintf(w, "  %s\n", formatMuted(fmt.Sprintf("%d span(s) normalized to fit the grid", s.Adjustments)))
	}
	fmt.Fprintf(w, "  Airtime: %s\n\n", coverageBar(s.Coverage(), 20))
}

// coverageBar draws share (0..1) as a fixed-width bar.
func coverageBar(share float64, width int) string {
	filled := min(max(int(share*float64(width)), 0), width)
	bar := strings.Repeat("█", filled) + strings.Repeat("░", width-filled)
	return fmt.Sprintf("[%s] %s", formatOK(bar), formatMuted(fmt.Sprintf("(%.0f%% programmed)", share*100)))
}
