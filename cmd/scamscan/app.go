package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/safephone/scamscan/internal/classifier"
	"github.com/safephone/scamscan/internal/config"
	"github.com/safephone/scamscan/internal/model"
	"github.com/safephone/scamscan/internal/report"
)

// NewAppCmd creates the app command.
func NewAppCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "app",
		Short: "Check an app inventory for risky installs",
		Long: `Check a list of installed applications for scam indicators: sideloaded
installs, dangerous permission combinations, and unknown developers
imitating banking apps.

The inventory is a JSON array of app records, typically exported by a
companion mobile app.

Examples:
  # Check an exported inventory
  scamscan app --input apps.json

  # Run against the built-in demo inventory
  scamscan app --demo

  # Show only dangerous apps
  scamscan app --demo --only danger

Without --input or --demo the inventory is treated as unreadable and the
verdict degrades to a warning.`,
		RunE: runAppCmd,
	}

	cmd.Flags().StringP("input", "i", "", "JSON file with the app inventory")
	cmd.Flags().Bool("demo", false, "Use the built-in demo inventory")
	cmd.Flags().String("only", "", "Show only apps at this risk level (safe, warning, danger)")
	addReportFlags(cmd)

	return cmd
}

// runAppCmd executes the app command.
func runAppCmd(cmd *cobra.Command, _ []string) error {
	cfg, err := buildConfig(cmd)
	if err != nil {
		return err
	}
	logger := setupLogger(cfg.Verbose)

	eng, cleanup := newEngine(cfg, logger)
	defer cleanup()

	apps, err := loadApps(cmd)
	if errors.Is(err, config.ErrNoInput) {
		// No inventory source means the app list could not be read;
		// report that instead of failing.
		rep := report.NewScanReport()
		rep.Apps = []model.AppVerdict{eng.CheckAppsUnverified()}
		return outputReport(cfg, rep)
	}
	if err != nil {
		return err
	}

	verdicts, summary := eng.CheckApps(apps)

	only, err := cmd.Flags().GetString("only")
	if err != nil {
		return err
	}
	if only != "" {
		risk, err := model.ParseRiskLevel(only)
		if err != nil {
			return err
		}
		verdicts = model.FilterAppsByRisk(verdicts, risk)
	}

	rep := report.NewScanReport()
	rep.Apps = verdicts
	rep.AppSummary = &summary
	return outputReport(cfg, rep)
}

// loadApps reads the inventory from --input or returns the demo set.
func loadApps(cmd *cobra.Command) ([]model.AppRecord, error) {
	demo, err := cmd.Flags().GetBool("demo")
	if err != nil {
		return nil, err
	}
	input, err := cmd.Flags().GetString("input")
	if err != nil {
		return nil, err
	}

	switch {
	case demo && input != "":
		return nil, fmt.Errorf("--demo and --input cannot be used together")
	case demo:
		return classifier.DemoApps(), nil
	case input == "":
		return nil, fmt.Errorf("%w: use --input or --demo", config.ErrNoInput)
	}

	data, err := os.ReadFile(input) //nolint:gosec // User-provided inventory path is intentional
	if err != nil {
		return nil, fmt.Errorf("failed to read app inventory: %w", err)
	}

	var apps []model.AppRecord
	if err := json.Unmarshal(data, &apps); err != nil {
		return nil, fmt.Errorf("invalid app inventory %s: %w", input, err)
	}

	// Exported inventories often lack the publisher field. Guess it from
	// the package name so developer trust scoring still has something to
	// work with.
	for i := range apps {
		if apps[i].Developer == "" {
			apps[i].Developer = model.GuessDeveloper(apps[i].PackageName)
		}
	}
	return apps, nil
}
