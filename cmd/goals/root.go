package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/templui/goalplanner/internal/app"
	"github.com/templui/goalplanner/internal/config"
	"github.com/templui/goalplanner/internal/logger"
)

// Version is set at build time via ldflags: -ldflags "-X main.Version=1.0.0"
var Version = "dev"

var (
	jsonOutput bool
	verbose    bool
)

var rootCmd = &cobra.Command{
	Use:           "goals",
	Short:         "Track personal goals from the terminal",
	Long:          "Add, complete and review goals stored in the configured backend (see STORAGE_BACKEND).",
	Version:       Version,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "Output in JSON format")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Log debug output to stderr")

	rootCmd.AddCommand(addCmd)
	rootCmd.AddCommand(toggleCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(importCmd)
	rootCmd.AddCommand(overviewCmd)
	rootCmd.AddCommand(dayCmd)
	rootCmd.AddCommand(weekCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(migrateCmd)
}

// openApp loads configuration from the environment and wires the app.
// Logs go to stderr at level (Debug with --verbose) so command output
// stays parseable.
func openApp(cmd *cobra.Command, level slog.Level) (*app.App, func(), error) {
	cfg := config.Load()

	flush := logger.Init(logger.Options{
		Development: verbose,
		Level:       level,
		Environment: cfg.AppEnv,
		SentryDSN:   cfg.SentryDSN,
		Output:      cmd.ErrOrStderr(),
	})

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	a, err := app.New(ctx, cfg)
	if err != nil {
		flush()
		return nil, nil, err
	}

	closeFn := func() {
		err := a.Close()
		if err != nil {
			fmt.Fprintln(cmd.ErrOrStderr(), "close:", err)
		}
		flush()
	}
	return a, closeFn, nil
}

// printJSON marshals v to JSON and writes to the given writer.
func printJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// newTabWriter returns a configured tabwriter for aligned columns.
func newTabWriter(w io.Writer) *tabwriter.Writer {
	return tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
}
