package main

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/templui/goalplanner/internal/db"
)

var migrateDown bool

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Apply database migrations (sql backend only)",
	Long: `Apply pending migrations and print the schema version. With --down the
most recent migration is rolled back instead.`,
	Args: cobra.NoArgs,
	RunE: runMigrate,
}

func init() {
	migrateCmd.Flags().BoolVar(&migrateDown, "down", false, "Roll back the most recent migration")
}

func runMigrate(cmd *cobra.Command, args []string) error {
	// Opening the app applies pending migrations.
	a, closeApp, err := openApp(cmd, slog.LevelInfo)
	if err != nil {
		return err
	}
	defer closeApp()

	if a.DB == nil {
		return errors.New("migrations only apply to STORAGE_BACKEND=sql")
	}

	if migrateDown {
		err = db.MigrateDown(a.DB.DB, a.Cfg.DBDriver)
		if err != nil {
			return err
		}
	}

	version, err := db.SchemaVersion(a.DB.DB, a.Cfg.DBDriver)
	if err != nil {
		return err
	}

	if jsonOutput {
		return printJSON(cmd.OutOrStdout(), map[string]any{"version": version})
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Schema version %d\n", version)
	return nil
}
