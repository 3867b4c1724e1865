package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/safephone/scamscan/internal/config"
	"github.com/safephone/scamscan/internal/report"
)

// NewEmailCmd creates the email command.
func NewEmailCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "email <address...>",
		Short: "Check email senders against the official registry",
		Long: `Check sender addresses against the registry of official bank senders,
the community phishing reports, and lookalike-domain heuristics.

Examples:
  # Check a single sender
  scamscan email alertas@banreservas.com

  # Check a suspicious sender
  scamscan email seguridad@banco-popular-rd.net`,
		Args: cobra.ArbitraryArgs,
		RunE: runEmailCmd,
	}

	addReportFlags(cmd)
	return cmd
}

// runEmailCmd executes the email command.
func runEmailCmd(cmd *cobra.Command, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("%w: provide at least one email address", config.ErrNoInput)
	}

	cfg, err := buildConfig(cmd)
	if err != nil {
		return err
	}
	logger := setupLogger(cfg.Verbose)

	eng, cleanup := newEngine(cfg, logger)
	defer cleanup()

	rep := report.NewScanReport()
	for _, address := range args {
		rep.Emails = append(rep.Emails, eng.CheckEmail(cmd.Context(), address))
	}
	return outputReport(cfg, rep)
}
