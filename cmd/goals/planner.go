package main

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/spf13/cobra"

	"github.com/templui/goalplanner/internal/calendar"
	"github.com/templui/goalplanner/internal/ui"
)

var overviewCmd = &cobra.Command{
	Use:   "overview",
	Short: "Show completion, breakdowns, recent goals and upcoming deadlines",
	Args:  cobra.NoArgs,
	RunE:  runOverview,
}

var dayCmd = &cobra.Command{
	Use:   "day [YYYY-MM-DD]",
	Short: "Show the goals and journal of a day (default today)",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runDay,
}

var weekCmd = &cobra.Command{
	Use:   "week [YYYY-MM-DD]",
	Short: "Show the goals and review of the week containing a date (default this week)",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runWeek,
}

func runOverview(cmd *cobra.Command, args []string) error {
	a, closeApp, err := openApp(cmd, slog.LevelWarn)
	if err != nil {
		return err
	}
	defer closeApp()

	ov := a.PlannerService.Overview()
	if jsonOutput {
		return printJSON(cmd.OutOrStdout(), ov)
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "%d goals, %d completed, %d pending (%d%% complete)\n", ov.Total, ov.Completed, ov.Pending, ov.CompletionRate)

	if len(ov.Categories) > 0 {
		fmt.Fprintln(out, "\nBy category:")
		w := newTabWriter(out)
		for _, c := range ov.Categories {
			fmt.Fprintf(w, "  %s\t%d\t%d%%\n", ui.Label(string(c.Category)), c.Count, c.Percent)
		}
		w.Flush()
	}

	if len(ov.Priorities) > 0 {
		fmt.Fprintln(out, "\nBy priority:")
		w := newTabWriter(out)
		for _, p := range ov.Priorities {
			fmt.Fprintf(w, "  %s\t%d\t%d%%\n", ui.Label(string(p.Priority)), p.Count, p.Percent)
		}
		w.Flush()
	}

	if len(ov.Upcoming) > 0 {
		fmt.Fprintln(out, "\nUpcoming deadlines:")
		w := newTabWriter(out)
		for _, u := range ov.Upcoming {
			fmt.Fprintf(w, "  %s\t%s\t%s\n", u.Goal.Title, calendar.Format(*u.Goal.DueDate, a.Location), u.Label)
		}
		w.Flush()
	}

	if len(ov.Recent) > 0 {
		fmt.Fprintln(out, "\nRecently added:")
		for _, g := range ov.Recent {
			fmt.Fprintf(out, "  %s (%s)\n", g.Title, g.ID)
		}
	}
	return nil
}

func runDay(cmd *cobra.Command, args []string) error {
	a, closeApp, err := openApp(cmd, slog.LevelWarn)
	if err != nil {
		return err
	}
	defer closeApp()

	day := a.PlannerService.Today()
	if len(args) == 1 {
		parsed, err := parseDate(args[0], day, a.Location)
		if err != nil {
			return err
		}
		day = *parsed
	}

	summary := a.PlannerService.Daily(cmd.Context(), day)
	if jsonOutput {
		return printJSON(cmd.OutOrStdout(), summary)
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "%s: %d/%d completed (%d%%)\n", summary.Date, summary.Completed, len(summary.Goals), summary.CompletionRate)
	if len(summary.Goals) > 0 {
		printGoals(cmd, summary.Goals, a.Location)
	}
	fmt.Fprintf(out, "Mood: %s, energy %d/10\n", ui.Label(string(summary.Journal.Mood)), summary.Journal.EnergyLevel)
	if summary.Journal.Notes != "" {
		fmt.Fprintf(out, "Notes: %s\n", summary.Journal.Notes)
	}
	return nil
}

func runWeek(cmd *cobra.Command, args []string) error {
	a, closeApp, err := openApp(cmd, slog.LevelWarn)
	if err != nil {
		return err
	}
	defer closeApp()

	week := a.PlannerService.CurrentWeek()
	if len(args) == 1 {
		parsed, err := parseDate(args[0], a.PlannerService.Today(), a.Location)
		if err != nil {
			return err
		}
		week = calendar.WeekStart(*parsed, a.Location)
	}

	summary := a.PlannerService.Weekly(cmd.Context(), week)
	if jsonOutput {
		return printJSON(cmd.OutOrStdout(), summary)
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Week %s to %s: %d completed, %d remaining (%d%%)\n",
		summary.WeekStart, summary.WeekEnd, summary.Completed, summary.Remaining, summary.CompletionRate)
	if len(summary.Goals) > 0 {
		printGoals(cmd, summary.Goals, a.Location)
	}
	if len(summary.Review.Priorities) > 0 {
		fmt.Fprintf(out, "Priorities: %s\n", strings.Join(summary.Review.Priorities, "; "))
	}
	if len(summary.Review.Achievements) > 0 {
		fmt.Fprintf(out, "Achievements: %s\n", strings.Join(summary.Review.Achievements, "; "))
	}
	if summary.Review.Reflection != "" {
		fmt.Fprintf(out, "Reflection: %s\n", summary.Review.Reflection)
	}
	return nil
}
