package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/templui/goalplanner/internal/calendar"
	"github.com/templui/goalplanner/internal/model"
	"github.com/templui/goalplanner/internal/validation"
)

var (
	addDescription string
	addCategory    string
	addPriority    string
	addDue         string
	addCompleted   bool
	addDay         string
	addWeek        string

	listStatus string

	exportOutput string
	exportFormat string
)

var addCmd = &cobra.Command{
	Use:   "add <title>",
	Short: "Add a goal",
	Long: `Add a goal. With --day the goal is due on that day; with --week it is
due on --due or, without one, on the last day of that week.`,
	Example: `  goals add "Run a 10k" --category health --priority high --due 2024-03-01
  goals add "Plan sprint" -c career --week 2024-01-01`,
	Args: cobra.MinimumNArgs(1),
	RunE: runAdd,
}

var toggleCmd = &cobra.Command{
	Use:   "toggle <id>",
	Short: "Flip a goal between pending and completed",
	Args:  cobra.ExactArgs(1),
	RunE:  runToggle,
}

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List goals in the order they were added",
	Args:  cobra.NoArgs,
	RunE:  runList,
}

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Write all goals as JSON or YAML",
	Args:  cobra.NoArgs,
	RunE:  runExport,
}

var importCmd = &cobra.Command{
	Use:   "import <file.md>...",
	Short: "Add goals from Markdown files with YAML front matter",
	Long: `Add goals from Markdown files. The front matter sets title, category,
priority (default medium), completed and due; the body becomes the
description.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runImport,
}

func init() {
	addCmd.Flags().StringVarP(&addDescription, "description", "d", "", "Goal description (Markdown)")
	addCmd.Flags().StringVarP(&addCategory, "category", "c", "", "Category: "+joinValues(model.Categories))
	addCmd.Flags().StringVarP(&addPriority, "priority", "p", string(model.PriorityMedium), "Priority: "+joinValues(model.Priorities))
	addCmd.Flags().StringVar(&addDue, "due", "", "Due date (YYYY-MM-DD)")
	addCmd.Flags().BoolVar(&addCompleted, "completed", false, "Add the goal as already completed")
	addCmd.Flags().StringVar(&addDay, "day", "", "Add from the daily planner for this date (YYYY-MM-DD or today)")
	addCmd.Flags().StringVar(&addWeek, "week", "", "Add from the weekly planner for the week containing this date")
	_ = addCmd.MarkFlagRequired("category")
	addCmd.MarkFlagsMutuallyExclusive("day", "week")
	addCmd.MarkFlagsMutuallyExclusive("day", "due")

	listCmd.Flags().StringVar(&listStatus, "status", "all", "Filter: all, pending or completed")

	exportCmd.Flags().StringVarP(&exportOutput, "output", "o", "", "Write to file instead of stdout")
	exportCmd.Flags().StringVarP(&exportFormat, "format", "f", "json", "Output format: json or yaml")
}

func joinValues[T ~string](values []T) string {
	parts := make([]string, len(values))
	for i, v := range values {
		parts[i] = string(v)
	}
	return strings.Join(parts, ", ")
}

// parseDate accepts YYYY-MM-DD or "today". Empty input yields nil.
func parseDate(value string, today time.Time, loc *time.Location) (*time.Time, error) {
	value = strings.TrimSpace(value)
	switch value {
	case "":
		return nil, nil
	case "today":
		return &today, nil
	}

	t, err := calendar.Parse(value, loc)
	if err != nil {
		return nil, fmt.Errorf("invalid date %q (want YYYY-MM-DD)", value)
	}
	return &t, nil
}

func runAdd(cmd *cobra.Command, args []string) error {
	a, closeApp, err := openApp(cmd, slog.LevelWarn)
	if err != nil {
		return err
	}
	defer closeApp()

	today := a.PlannerService.Today()
	due, err := parseDate(addDue, today, a.Location)
	if err != nil {
		return err
	}

	input, err := validation.NormalizeGoalInput(model.GoalInput{
		Title:       strings.Join(args, " "),
		Description: addDescription,
		Category:    model.Category(strings.ToLower(addCategory)),
		Priority:    model.Priority(strings.ToLower(addPriority)),
		Completed:   addCompleted,
		DueDate:     due,
	})
	if err != nil {
		return err
	}

	ctx := cmd.Context()
	var goal model.Goal
	switch {
	case addDay != "":
		day, err := parseDate(addDay, today, a.Location)
		if err != nil {
			return err
		}
		goal, err = a.PlannerService.AddForDay(ctx, input, *day)
		if err != nil {
			return err
		}
	case addWeek != "":
		week, err := parseDate(addWeek, today, a.Location)
		if err != nil {
			return err
		}
		goal, err = a.PlannerService.AddForWeek(ctx, input, calendar.WeekStart(*week, a.Location))
		if err != nil {
			return err
		}
	default:
		goal, err = a.GoalService.Add(ctx, input)
		if err != nil {
			return err
		}
	}

	if jsonOutput {
		return printJSON(cmd.OutOrStdout(), goal)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Added %q (%s)\n", goal.Title, goal.ID)
	return nil
}

func runToggle(cmd *cobra.Command, args []string) error {
	a, closeApp, err := openApp(cmd, slog.LevelWarn)
	if err != nil {
		return err
	}
	defer closeApp()

	goal, found, err := a.GoalService.ToggleComplete(cmd.Context(), args[0])
	if !found {
		return fmt.Errorf("goal %q not found", args[0])
	}
	if err != nil {
		return err
	}

	if jsonOutput {
		return printJSON(cmd.OutOrStdout(), goal)
	}
	state := "pending"
	if goal.Completed {
		state = "completed"
	}
	fmt.Fprintf(cmd.OutOrStdout(), "%q is now %s\n", goal.Title, state)
	return nil
}

func runList(cmd *cobra.Command, args []string) error {
	var keep func(model.Goal) bool
	switch listStatus {
	case "all":
		keep = func(model.Goal) bool { return true }
	case "pending":
		keep = func(g model.Goal) bool { return !g.Completed }
	case "completed":
		keep = func(g model.Goal) bool { return g.Completed }
	default:
		return fmt.Errorf("invalid --status %q (want all, pending or completed)", listStatus)
	}

	a, closeApp, err := openApp(cmd, slog.LevelWarn)
	if err != nil {
		return err
	}
	defer closeApp()

	goals := []model.Goal{}
	for _, g := range a.GoalService.Goals() {
		if keep(g) {
			goals = append(goals, g)
		}
	}

	if jsonOutput {
		return printJSON(cmd.OutOrStdout(), goals)
	}
	if len(goals) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "No goals found.")
		return nil
	}
	printGoals(cmd, goals, a.Location)
	return nil
}

func printGoals(cmd *cobra.Command, goals []model.Goal, loc *time.Location) {
	w := newTabWriter(cmd.OutOrStdout())
	fmt.Fprintln(w, "ID\tDONE\tTITLE\tCATEGORY\tPRIORITY\tDUE")
	for _, g := range goals {
		done := " "
		if g.Completed {
			done = "x"
		}
		due := "-"
		if g.DueDate != nil {
			due = calendar.Format(*g.DueDate, loc)
		}
		fmt.Fprintf(w, "%s\t[%s]\t%s\t%s\t%s\t%s\n", g.ID, done, g.Title, g.Category, g.Priority, due)
	}
	w.Flush()
}

func runExport(cmd *cobra.Command, args []string) error {
	if exportFormat != "json" && exportFormat != "yaml" {
		return fmt.Errorf("invalid --format %q (want json or yaml)", exportFormat)
	}

	a, closeApp, err := openApp(cmd, slog.LevelWarn)
	if err != nil {
		return err
	}
	defer closeApp()

	goals := a.GoalService.Goals()
	if exportOutput == "" {
		return writeGoals(cmd.OutOrStdout(), goals)
	}

	f, err := os.Create(exportOutput)
	if err != nil {
		return fmt.Errorf("create export file: %w", err)
	}
	err = writeGoals(f, goals)
	if err != nil {
		f.Close()
		return fmt.Errorf("write export file: %w", err)
	}
	err = f.Close()
	if err != nil {
		return fmt.Errorf("write export file: %w", err)
	}

	fmt.Fprintf(cmd.ErrOrStderr(), "Exported %d goals to %s\n", len(goals), exportOutput)
	return nil
}

func writeGoals(w io.Writer, goals []model.Goal) error {
	if exportFormat != "yaml" {
		return printJSON(w, goals)
	}

	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	err := enc.Encode(goals)
	if err != nil {
		return err
	}
	return enc.Close()
}

// runImport adds every file it can and reports the others together.
func runImport(cmd *cobra.Command, args []string) error {
	a, closeApp, err := openApp(cmd, slog.LevelWarn)
	if err != nil {
		return err
	}
	defer closeApp()

	var errs []error
	imported := []model.Goal{}
	for _, path := range args {
		source, err := os.ReadFile(path)
		if err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", path, err))
			continue
		}

		goal, err := a.Importer.Import(cmd.Context(), source)
		if err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", path, err))
			continue
		}
		imported = append(imported, goal)
	}

	if jsonOutput {
		err = printJSON(cmd.OutOrStdout(), imported)
		if err != nil {
			return err
		}
	} else {
		for _, g := range imported {
			fmt.Fprintf(cmd.OutOrStdout(), "Imported %q (%s)\n", g.Title, g.ID)
		}
	}

	return errors.Join(errs...)
}
