package main

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/safephone/scamscan/internal/config"
	"github.com/safephone/scamscan/internal/engine"
	"github.com/safephone/scamscan/internal/log"
	"github.com/safephone/scamscan/internal/registry"
	"github.com/safephone/scamscan/internal/report"
	"github.com/safephone/scamscan/internal/store"
)

// addReportFlags registers the output format flags shared by every check
// command.
func addReportFlags(cmd *cobra.Command) {
	cmd.Flags().BoolP("json", "j", false,
		"Output JSON report (mutually exclusive with --markdown)")
	cmd.Flags().BoolP("markdown", "m", false,
		"Output Markdown report (mutually exclusive with --json)")
	cmd.Flags().StringP("output", "o", "",
		"Write report to specified file path (creates directories if needed)")
	cmd.Flags().StringP("config", "c", "",
		"Configuration file path (default: .scamscan in current or home directory)")
}

// getVerboseFlag retrieves the verbose flag from the command or its parent.
func getVerboseFlag(cmd *cobra.Command) bool {
	verbose, err := cmd.Flags().GetBool("verbose")
	if err != nil {
		verbose, err = cmd.Root().PersistentFlags().GetBool("verbose")
		if err != nil {
			return false
		}
	}
	return verbose
}

// buildConfig creates a Config from cobra command flags and the optional
// config file.
func buildConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.NewConfig()
	cfg.Verbose = getVerboseFlag(cmd)

	flags := cmd.Flags()

	if flags.Lookup("config") != nil {
		path, err := flags.GetString("config")
		if err != nil {
			return nil, err
		}
		cfg.ConfigFilePath = path
	}
	if flags.Lookup("json") != nil {
		var err error
		if cfg.JSONReport, err = flags.GetBool("json"); err != nil {
			return nil, err
		}
	}
	if flags.Lookup("markdown") != nil {
		var err error
		if cfg.MarkdownReport, err = flags.GetBool("markdown"); err != nil {
			return nil, err
		}
	}
	if flags.Lookup("output") != nil {
		var err error
		if cfg.ReportFile, err = flags.GetString("output"); err != nil {
			return nil, err
		}
	}
	if flags.Lookup("sync-endpoint") != nil {
		var err error
		if cfg.SyncEndpoint, err = flags.GetString("sync-endpoint"); err != nil {
			return nil, err
		}
	}

	dbDir, err := cmd.Root().PersistentFlags().GetString("db-dir")
	if err == nil {
		cfg.DBDir = dbDir
	}

	// If the user explicitly specified a config file, error when it is
	// missing. Otherwise a missing file just means no extras.
	explicitConfigPath := cfg.ConfigFilePath != ""
	configPath := config.FindConfigFile(cfg.ConfigFilePath)

	if configPath != "" {
		file, err := config.LoadConfigFile(configPath)
		if err != nil {
			return nil, fmt.Errorf("failed to load config file %s: %w", configPath, err)
		}
		file.ApplyTo(cfg)
	} else if explicitConfigPath {
		return nil, fmt.Errorf("configuration file not found: %s", cfg.ConfigFilePath)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("configuration error: %w", err)
	}
	return cfg, nil
}

// setupLogger creates the privacy-masking logger and installs it as the
// slog default so library warnings are masked too.
func setupLogger(verbose bool) *slog.Logger {
	logger := log.NewLogger(os.Stderr, verbose)
	slog.SetDefault(logger)
	return logger
}

// newEngine builds the engine over a SQLite-backed store. When the
// database cannot be opened the store degrades to memory-only so checks
// still run; the returned cleanup closes the database if one was opened.
func newEngine(cfg *config.Config, logger *slog.Logger) (*engine.Engine, func()) {
	var kv store.KV
	cleanup := func() {}

	sqliteKV, err := store.OpenSQLite(cfg.DatabaseDir(), store.DefaultOptions())
	if err != nil {
		logger.Warn("report database unavailable, using in-memory store", "error", err)
		kv = store.NewMemoryKV()
	} else {
		kv = sqliteKV
		cleanup = func() { _ = sqliteKV.Close() }
		logger.Debug("report database opened", "path", sqliteKV.Path())
	}

	st := store.New(kv, store.WithLogger(logger))
	reg := registry.New(cfg.File.RegistryOptions()...)

	eng := engine.New(reg, st,
		engine.WithLogger(logger),
		engine.WithConcurrency(cfg.BatchSize),
	)
	return eng, cleanup
}

// outputReport writes the report in the requested format to stdout or the
// configured file.
func outputReport(cfg *config.Config, rep *report.ScanReport) error {
	var output *os.File
	if cfg.ReportFile != "" {
		dir := filepath.Dir(cfg.ReportFile)
		if dir != "" && dir != "." {
			if err := os.MkdirAll(dir, 0750); err != nil {
				return fmt.Errorf("failed to create output directory: %w", err)
			}
		}

		// Reports name the numbers and addresses that were checked, so
		// keep them owner-readable only.
		f, err := os.OpenFile(cfg.ReportFile, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0600)
		if err != nil {
			return fmt.Errorf("failed to create output file: %w", err)
		}
		defer f.Close()
		output = f
	} else {
		output = os.Stdout
	}

	var writer report.Writer
	switch {
	case cfg.JSONReport:
		writer = report.NewVersionedJSONWriter(output, getVersion(), report.WithPrettyPrint())
	case cfg.MarkdownReport:
		writer = report.NewMarkdownWriter(output)
	default:
		writer = report.NewSimpleWriter(output, report.WithVerbose(cfg.Verbose))
	}

	_, err := writer.Write(rep)
	return err
}
