package main

import (
	"log/slog"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/templui/goalplanner/internal/server"
)

var servePort string

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP server (JSON API and overview page)",
	Args:  cobra.NoArgs,
	RunE:  runServe,
}

func init() {
	serveCmd.Flags().StringVar(&servePort, "port", "", "Port to listen on (overrides PORT)")
}

func runServe(cmd *cobra.Command, args []string) error {
	ctx, cancel := signal.NotifyContext(cmd.Context(), syscall.SIGTERM, syscall.SIGINT)
	defer cancel()

	a, closeApp, err := openApp(cmd, slog.LevelInfo)
	if err != nil {
		return err
	}
	defer closeApp()

	port := servePort
	if port == "" {
		port = a.Cfg.Port
	}

	return server.ListenAndRun(ctx, server.New(a, ":"+port))
}
