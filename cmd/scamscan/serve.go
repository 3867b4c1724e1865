package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/safephone/scamscan/internal/log"
	"github.com/safephone/scamscan/internal/server"
	"github.com/safephone/scamscan/internal/store"
)

// NewServeCmd creates the serve command.
func NewServeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the community sync server",
		Long: `Run the HTTP endpoint that devices sync their phone report maps against.
Pushed maps are merged by timestamp into a shared SQLite-backed store and
served back on pull.

The listen address comes from --addr, the SCAMSCAN_ADDR environment
variable (a .env file is read if present), or the serveAddr key in
.scamscan.

Example:
  scamscan serve --addr :8972`,
		RunE: runServeCmd,
	}

	cmd.Flags().String("addr", "", "Listen address (default :8972)")
	cmd.Flags().StringP("config", "c", "",
		"Configuration file path (default: .scamscan in current or home directory)")

	return cmd
}

// runServeCmd executes the serve command.
func runServeCmd(cmd *cobra.Command, _ []string) error {
	// Deployment convenience: a .env next to the binary can set
	// SCAMSCAN_ADDR without touching the config file. Missing .env is fine.
	_ = godotenv.Load()

	cfg, err := buildConfig(cmd)
	if err != nil {
		return err
	}

	addr, err := cmd.Flags().GetString("addr")
	if err != nil {
		return err
	}
	if addr == "" {
		addr = os.Getenv("SCAMSCAN_ADDR")
	}
	if addr == "" {
		addr = cfg.ServeAddr
	}

	// JSON logs for the server; its output feeds aggregation, not a
	// terminal.
	logger := log.NewJSONLogger(os.Stderr, cfg.Verbose)

	kv, err := store.OpenSQLite(cfg.DatabaseDir(), store.DefaultOptions())
	if err != nil {
		return err
	}
	defer func() { _ = kv.Close() }()

	st := store.New(kv, store.WithLogger(logger))
	srv := server.New(st, server.WithLogger(logger))

	ctx, cancel := context.WithCancel(cmd.Context())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sigCh
		logger.Info("received shutdown signal, stopping...")
		cancel()
	}()

	return srv.ListenAndServe(ctx, addr)
}
