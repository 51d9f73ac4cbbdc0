package ui

import (
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/javiermolinar/tvguide/internal/grid"
	"github.com/javiermolinar/tvguide/internal/program"
)

func (a *App) programCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "program",
		Aliases: []string{"programs"},
		Short:   "Manage the stored lineup",
		Long: `Add, list, remove and import the programs used by the db source.

Set source.kind = "db" in the config (or pass --source db) to print them.`,
	}

	cmd.AddCommand(a.programAddCmd())
	cmd.AddCommand(a.programListCmd())
	cmd.AddCommand(a.programRemoveCmd())
	cmd.AddCommand(a.programImportCmd())
	return cmd
}

func (a *App) programAddCmd() *cobra.Command {
	var (
		day   string
		start string
		span  int
	)

	cmd := &cobra.Command{
		Use:   "add [title]",
		Short: "Add a program to the lineup",
		Example: `  tvguide program add "Local News" --day weekdays --start 06:00 --span 2
  tvguide program add "College Football" --day sat --start 12:00 --span 7`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.ensureRepo(); err != nil {
				return err
			}

			dayStart, err := grid.ParseClock(a.config.Guide.DayStart)
			if err != nil {
				return err
			}
			startAt, err := grid.ParseClock(start)
			if err != nil {
				return err
			}
			slot, err := program.SlotAt(dayStart, startAt)
			if err != nil {
				return fmt.Errorf("%s: %w", start, err)
			}
			days, err := program.ParseDays(day)
			if err != nil {
				return err
			}

			title := strings.Join(args, " ")
			programs := make([]*program.Program, 0, len(days))
			for _, d := range days {
				p, err := program.New(title, d, slot, span)
				if err != nil {
					return err
				}
				programs = append(programs, p)
			}

			if err := a.repo.CreatePrograms(cmd.Context(), programs); err != nil {
				return fmt.Errorf("adding program: %w", err)
			}

			w := cmd.OutOrStdout()
			for _, p := range programs {
				fmt.Fprintf(w, "Added #%d: %s\n", p.ID, a.describe(p, dayStart))
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&day, "day", "", "Weekday (mon..sun), weekdays, weekend or daily (required)")
	cmd.Flags().StringVar(&start, "start", "", "Start time (HH:MM, on a half hour, required)")
	cmd.Flags().IntVar(&span, "span", 1, "Length in half-hour slots")

	_ = cmd.MarkFlagRequired("day")
	_ = cmd.MarkFlagRequired("start")

	return cmd
}

func (a *App) programListCmd() *cobra.Command {
	var day string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List the stored lineup",
		Example: `  tvguide program list
  tvguide program list --day fri`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := a.ensureRepo(); err != nil {
				return err
			}

			programs, err := a.listPrograms(cmd.Context(), day)
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			if len(programs) == 0 {
				fmt.Fprintln(w, "No programs stored.")
				return nil
			}

			dayStart, err := grid.ParseClock(a.config.Guide.DayStart)
			if err != nil {
				return err
			}
			a.printPrograms(w, programs, dayStart)
			return nil
		},
	}

	cmd.Flags().StringVar(&day, "day", "", "Only list one weekday")
	return cmd
}

func (a *App) listPrograms(ctx context.Context, day string) ([]*program.Program, error) {
	if day == "" {
		programs, err := a.repo.ListPrograms(ctx)
		if err != nil {
			return nil, fmt.Errorf("listing programs: %w", err)
		}
		return programs, nil
	}

	weekday, err := program.ParseWeekday(day)
	if err != nil {
		return nil, err
	}
	programs, err := a.repo.ListProgramsByWeekday(ctx, weekday)
	if err != nil {
		return nil, fmt.Errorf("listing programs: %w", err)
	}
	return programs, nil
}

func (a *App) programRemoveCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "remove [id]",
		Aliases: []string{"rm"},
		Short:   "Remove a program from the lineup",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid program ID: %s", args[0])
			}

			if err := a.ensureRepo(); err != nil {
				return err
			}
			if err := a.repo.DeleteProgram(cmd.Context(), id); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Removed program #%d\n", id)
			return nil
		},
	}
}

func (a *App) programImportCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "import [file]",
		Short: "Import a lineup from a TOML or YAML file",
		Long: `Import every program of a schedule file into the stored lineup.
Nothing is stored if any program overlaps another one.

Schedule file (TOML):
  [[program]]
  title = "Local News"
  day   = "weekdays"
  start = "06:00"
  span  = 2`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dayStart, err := grid.ParseClock(a.config.Guide.DayStart)
			if err != nil {
				return err
			}
			programs, err := program.LoadScheduleFile(args[0], dayStart)
			if err != nil {
				return err
			}

			if err := a.ensureRepo(); err != nil {
				return err
			}
			if err := a.repo.CreatePrograms(cmd.Context(), programs); err != nil {
				return fmt.Errorf("importing programs: %w", err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "%s %d programs from %s\n", formatOK("Imported"), len(programs), args[0])
			return nil
		},
	}
}

// describe formats a program as "Wed 09:30 AM  Title (3 slots)".
func (a *App) describe(p *program.Program, dayStart grid.Clock) string {
	slots := "1 slot"
	if p.Span != 1 {
		slots = fmt.Sprintf("%d slots", p.Span)
	}
	return fmt.Sprintf("%s %s  %s %s",
		a.config.Guide.Weekdays[p.Weekday],
		p.Start(dayStart).Format(a.config.Guide.TimeFormat),
		formatTitle(p.Title),
		formatMuted("("+slots+")"),
	)
}

func (a *App) printPrograms(w io.Writer, programs []*program.Program, dayStart grid.Clock) {
	current := -1
	for _, p := range programs {
		if p.Weekday != current {
			if current != -1 {
				fmt.Fprintln(w)
			}
			fmt.Fprintf(w, "=== %s ===\n", formatHeader(a.config.Guide.Weekdays[p.Weekday]))
			current = p.Weekday
		}
		fmt.Fprintf(w, "  #%d %s\n", p.ID, a.describe(p, dayStart))
	}
}
