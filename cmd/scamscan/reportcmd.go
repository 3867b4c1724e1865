package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/safephone/scamscan/internal/config"
)

// NewReportCmd creates the report command with its phone and email
// subcommands.
func NewReportCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "report",
		Short: "Report a scam phone number or email address",
		Long: `Record a community report in the local store. Reports feed the phone and
email checks immediately and are shared with other devices on the next
sync.`,
	}

	cmd.AddCommand(newReportPhoneCmd())
	cmd.AddCommand(newReportEmailCmd())
	return cmd
}

// newReportPhoneCmd creates the report phone subcommand.
func newReportPhoneCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "phone <number>",
		Short: "Report a scam phone number",
		Long: `Record a community report for a phone number. Repeated reports of the
same number increment its count.

Example:
  scamscan report phone 809-555-0142`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := buildConfig(cmd)
			if err != nil {
				return err
			}
			logger := setupLogger(cfg.Verbose)

			eng, cleanup := newEngine(cfg, logger)
			defer cleanup()

			rec := eng.Store().ReportPhone(cmd.Context(), args[0])
			if rec.Number == "" {
				return fmt.Errorf("%w: %q is not a usable phone number", config.ErrNoInput, args[0])
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Reported %s (%d report(s) total)\n", rec.Number, rec.Count)
			return nil
		},
	}
}

// newReportEmailCmd creates the report email subcommand.
func newReportEmailCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "email <address>",
		Short: "Report a phishing email address",
		Long: `Record a community report for an email address. The address is stored as
a set entry, so repeated reports are a no-op.

Example:
  scamscan report email estafa@banco-premios.com`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := buildConfig(cmd)
			if err != nil {
				return err
			}
			logger := setupLogger(cfg.Verbose)

			eng, cleanup := newEngine(cfg, logger)
			defer cleanup()

			eng.Store().ReportEmail(cmd.Context(), args[0])
			fmt.Fprintln(cmd.OutOrStdout(), "Reported. The address will be flagged in future checks.")
			return nil
		},
	}
}
