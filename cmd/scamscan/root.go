// Package main provides the entry point for the scamscan CLI.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// NewRootCmd creates the root command for scamscan.
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "scamscan",
		Short: "Local scam and phishing checks for Dominican users",
		Long: `scamscan checks URLs, email senders, installed apps, WiFi networks, and
phone numbers for scam indicators. All classification runs locally against
compiled-in heuristics and a registry of official Dominican banks and
institutions; no input ever leaves the device.

Community phone reports are stored locally and can optionally be synced
with a shared endpoint using the sync command.`,
		Version:       getVersion(),
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Global flags that apply to all commands
	cmd.PersistentFlags().BoolP("verbose", "v", false, "Enable verbose logging")
	cmd.PersistentFlags().String("db-dir", "", "Directory for the report database (default: XDG data directory)")

	// Add subcommands
	cmd.AddCommand(NewURLCmd())
	cmd.AddCommand(NewEmailCmd())
	cmd.AddCommand(NewAppCmd())
	cmd.AddCommand(NewWifiCmd())
	cmd.AddCommand(NewPhoneCmd())
	cmd.AddCommand(NewReportCmd())
	cmd.AddCommand(NewSyncCmd())
	cmd.AddCommand(NewServeCmd())
	cmd.AddCommand(NewVersionCmd())

	return cmd
}

// Execute runs the root command.
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
