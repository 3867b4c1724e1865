package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestNewConfigDefaults(t *testing.T) {
	t.Parallel()

	c := NewConfig()
	if c.SyncTimeout != DefaultSyncTimeout {
		t.Errorf("SyncTimeout = %v, want %v", c.SyncTimeout, DefaultSyncTimeout)
	}
	if c.BatchSize != DefaultBatchSize {
		t.Errorf("BatchSize = %d, want %d", c.BatchSize, DefaultBatchSize)
	}
	if c.ServeAddr != DefaultServeAddr {
		t.Errorf("ServeAddr = %q, want %q", c.ServeAddr, DefaultServeAddr)
	}
	if err := c.Validate(); err != nil {
		t.Errorf("default config invalid: %v", err)
	}
}

func TestValidate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr error
	}{
		{
			name:    "zero sync timeout",
			mutate:  func(c *Config) { c.SyncTimeout = 0 },
			wantErr: ErrInvalidSyncTimeout,
		},
		{
			name:    "negative batch size",
			mutate:  func(c *Config) { c.BatchSize = -1 },
			wantErr: ErrInvalidBatchSize,
		},
		{
			name: "conflicting formats",
			mutate: func(c *Config) {
				c.JSONReport = true
				c.MarkdownReport = true
			},
			wantErr: ErrConflictingReportFormats,
		},
		{
			name:    "valid overrides",
			mutate:  func(c *Config) { c.SyncTimeout = time.Second; c.JSONReport = true },
			wantErr: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			c := NewConfig()
			tt.mutate(c)
			if err := c.Validate(); !errors.Is(err, tt.wantErr) {
				t.Errorf("Validate() = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestLoadConfigFile(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := filepath.Join(dir, DefaultConfigFile)
	content := `syncEndpoint: https://sync.example.com/v1/phones
extraDomains:
  - mibanco.com.do
extraSenders:
  - alertas@mibanco.com.do
extraContacts:
  - name: Mi Banco
    phone: 809-555-0199
    site: https://mibanco.com.do
`
	if err := os.WriteFile(path, []byte(content), 0600); err != nil {
		t.Fatal(err)
	}

	f, err := LoadConfigFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if f.SyncEndpoint != "https://sync.example.com/v1/phones" {
		t.Errorf("SyncEndpoint = %q", f.SyncEndpoint)
	}
	if len(f.ExtraDomains) != 1 || f.ExtraDomains[0] != "mibanco.com.do" {
		t.Errorf("ExtraDomains = %v", f.ExtraDomains)
	}
	if len(f.ExtraContacts) != 1 || f.ExtraContacts[0].Name != "Mi Banco" {
		t.Errorf("ExtraContacts = %v", f.ExtraContacts)
	}

	if opts := f.RegistryOptions(); len(opts) != 3 {
		t.Errorf("RegistryOptions returned %d options, want 3", len(opts))
	}
}

func TestLoadConfigFileNotFound(t *testing.T) {
	t.Parallel()

	_, err := LoadConfigFile(filepath.Join(t.TempDir(), "missing.yaml"))
	if !errors.Is(err, ErrConfigNotFound) {
		t.Errorf("err = %v, want ErrConfigNotFound", err)
	}
}

func TestLoadConfigFileInvalidYAML(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), DefaultConfigFile)
	if err := os.WriteFile(path, []byte("syncEndpoint: [broken"), 0600); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadConfigFile(path); err == nil {
		t.Error("expected error for invalid YAML")
	}
}

func TestFindConfigFile(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := filepath.Join(dir, "custom.yaml")
	if err := os.WriteFile(path, []byte("{}"), 0600); err != nil {
		t.Fatal(err)
	}

	if got := FindConfigFile(path); got != path {
		t.Errorf("explicit path = %q, want %q", got, path)
	}
	if got := FindConfigFile(filepath.Join(dir, "missing.yaml")); got != "" {
		t.Errorf("missing explicit path = %q, want empty", got)
	}
}

func TestFileApplyTo(t *testing.T) {
	t.Parallel()

	c := NewConfig()
	f := &File{SyncEndpoint: "https://sync.example.com", ServeAddr: ":9000"}
	f.ApplyTo(c)

	if c.SyncEndpoint != "https://sync.example.com" {
		t.Errorf("SyncEndpoint = %q", c.SyncEndpoint)
	}
	if c.ServeAddr != ":9000" {
		t.Errorf("ServeAddr = %q", c.ServeAddr)
	}

	// A flag-set endpoint survives the file.
	c2 := NewConfig()
	c2.SyncEndpoint = "https://flag.example.com"
	f.ApplyTo(c2)
	if c2.SyncEndpoint != "https://flag.example.com" {
		t.Errorf("flag endpoint overwritten: %q", c2.SyncEndpoint)
	}

	// Nil file is a no-op.
	var nilFile *File
	nilFile.ApplyTo(NewConfig())
}
