package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/safephone/scamscan/internal/config"
	"github.com/safephone/scamscan/internal/report"
)

// NewPhoneCmd creates the phone command.
func NewPhoneCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "phone <number...>",
		Short: "Check phone numbers against community reports",
		Long: `Check caller numbers against the local community report store and the
registry of official bank contact lines. Numbers are normalized before
lookup, so any common spelling of the same number matches.

Examples:
  # Check a number
  scamscan phone 809-555-0142

  # Several spellings of one number give the same answer
  scamscan phone "(809) 555-0142"`,
		Args: cobra.ArbitraryArgs,
		RunE: runPhoneCmd,
	}

	addReportFlags(cmd)
	return cmd
}

// runPhoneCmd executes the phone command.
func runPhoneCmd(cmd *cobra.Command, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("%w: provide at least one phone number", config.ErrNoInput)
	}

	cfg, err := buildConfig(cmd)
	if err != nil {
		return err
	}
	logger := setupLogger(cfg.Verbose)

	eng, cleanup := newEngine(cfg, logger)
	defer cleanup()

	rep := report.NewScanReport()
	for _, number := range args {
		rep.Phones = append(rep.Phones, eng.CheckPhone(cmd.Context(), number))
	}
	return outputReport(cfg, rep)
}
