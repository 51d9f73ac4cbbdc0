package ui

import (
	"fmt"

	"github.com/atotto/clipboard"
	"github.com/spf13/cobra"

	"github.com/javiermolinar/tvguide/internal/dateutil"
	"github.com/javiermolinar/tvguide/internal/render"
)

func (a *App) showCmd() *cobra.Command {
	var (
		flags    guideFlags
		copyGrid bool
	)

	cmd := &cobra.Command{
		Use:   "show",
		Short: "Print a week's grid in the terminal",
		Long: `Print the program grid of one week as a terminal table.

Multi-slot programs continue their title down the rows they cover.
Use --copy to put the plain-text grid on the clipboard.`,
		Example: `  tvguide show
  tvguide show --week next --copy`,
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

			grid := g.Text(termWidth()).RenderPlan(g.Week(start))
			w := cmd.OutOrStdout()
			fmt.Fprintf(w, "=== %s ===\n\n", formatHeader("Week of "+start.Format("Monday, January 2, 2006")))
			fmt.Fprintln(w, grid)

			if copyGrid {
				if err := clipboard.WriteAll(render.Plain(grid)); err != nil {
					return fmt.Errorf("copying to clipboard: %w", err)
				}
				fmt.Fprintln(w, formatMuted("Copied to clipboard."))
			}
			return nil
		},
	}

	flags.register(cmd)
	cmd.Flags().BoolVarP(&copyGrid, "copy", "c", false, "Copy the plain-text grid to the clipboard")
	return cmd
}
