package config

import (
	"path/filepath"
	"time"

	"github.com/adrg/xdg"
)

// Default configuration values.
const (
	// AppName is the application name used for XDG directory paths.
	AppName = "scamscan"

	// DefaultSyncTimeout bounds each leg of the community sync exchange.
	// Sync is best-effort; a slow endpoint must not stall the CLI.
	DefaultSyncTimeout = 15 * time.Second

	// DefaultBatchSize is the number of concurrent checks when processing
	// URL or app lists. Checks are CPU-cheap, so this mainly caps memory.
	DefaultBatchSize = 10

	// DefaultServeAddr is the listen address for the sync server.
	DefaultServeAddr = ":8972"
)

// Config holds all configuration options for scamscan.
// This struct is populated from the config file and CLI flags and passed
// through the application via dependency injection rather than global state.
//
// Design decision: We use a single flat struct instead of nested structs
// for simplicity. The number of options is manageable, and nesting would
// add complexity without significant benefit.
type Config struct {
	// SyncEndpoint is the community sync URL. Empty disables syncing.
	SyncEndpoint string

	// SyncTimeout bounds each sync HTTP request.
	SyncTimeout time.Duration

	// Verbose enables detailed log output using slog.LevelDebug.
	// When false, only warnings and errors are logged.
	Verbose bool

	// BatchSize is the number of concurrent checks for list inputs.
	BatchSize int

	// ConfigFilePath is the path to the configuration file.
	// If empty, the tool searches for .scamscan in the current directory
	// and then in the user's home directory.
	ConfigFilePath string

	// File holds the extras loaded from the config file, nil when no
	// config file was found.
	File *File

	// JSONReport enables JSON report output instead of human-readable
	// format. Mutually exclusive with MarkdownReport.
	JSONReport bool

	// MarkdownReport enables Markdown report output instead of
	// human-readable format. Mutually exclusive with JSONReport.
	MarkdownReport bool

	// ReportFile is the output file path for the report.
	// When set, the report is written to this file instead of stdout.
	ReportFile string

	// DBDir is the directory for the report database. Defaults to the
	// XDG data directory when empty.
	DBDir string

	// ServeAddr is the listen address for the sync server command.
	ServeAddr string
}

// NewConfig creates a new Config with default values.
//
// Design decision: We use a constructor function instead of relying on
// zero values because several defaults are non-zero. This also serves as
// documentation of what the defaults are.
func NewConfig() *Config {
	return &Config{
		SyncTimeout: DefaultSyncTimeout,
		BatchSize:   DefaultBatchSize,
		ServeAddr:   DefaultServeAddr,
	}
}

// XDGDataDir returns the XDG data directory for scamscan.
// On Linux: ~/.local/share/scamscan
// On macOS: ~/Library/Application Support/scamscan
// On Windows: %LOCALAPPDATA%\scamscan
func XDGDataDir() string {
	return filepath.Join(xdg.DataHome, AppName)
}

// XDGConfigDir returns the XDG config directory for scamscan.
func XDGConfigDir() string {
	return filepath.Join(xdg.ConfigHome, AppName)
}

// DatabaseDir returns the configured database directory, falling back to
// the XDG data directory.
func (c *Config) DatabaseDir() string {
	if c.DBDir != "" {
		return c.DBDir
	}
	return XDGDataDir()
}

// Validate checks if the configuration is valid.
//
// Design decision: We validate at the config level rather than at each
// point of use to fail fast and provide clear error messages upfront.
// We return the first error found rather than collecting all errors
// because fixing one error often makes others irrelevant.
func (c *Config) Validate() error {
	if c.SyncTimeout <= 0 {
		return ErrInvalidSyncTimeout
	}
	if c.BatchSize <= 0 {
		return ErrInvalidBatchSize
	}
	if c.JSONReport && c.MarkdownReport {
		return ErrConflictingReportFormats
	}
	return nil
}
