package main

import (
	"fmt"
	"runtime/debug"

	"github.com/spf13/cobra"
)

// Populated at release build time via -ldflags. A plain source build
// leaves them empty and buildVersion falls back to the module build info
// the toolchain embeds.
var (
	version = ""
	commit  = ""
	date    = ""
)

// buildVersion resolves the release version, commit hash, and build date,
// preferring ldflags values over the embedded build info.
func buildVersion() (string, string, string) {
	v, c, d := version, commit, date

	if info, ok := debug.ReadBuildInfo(); ok {
		if v == "" {
			v = info.Main.Version
		}
		for _, s := range info.Settings {
			switch s.Key {
			case "vcs.revision":
				if c == "" {
					c = s.Value
				}
			case "vcs.time":
				if d == "" {
					d = s.Value
				}
			}
		}
	}

	if v == "" {
		v = "(devel)"
	}
	if c == "" {
		c = "unknown"
	} else if len(c) > 7 {
		c = c[:7]
	}
	if d == "" {
		d = "unknown"
	}
	return v, c, d
}

// getVersion returns the release version alone, for the root command's
// --version flag and the JSON report header.
func getVersion() string {
	v, _, _ := buildVersion()
	return v
}

// NewVersionCmd creates the version command.
func NewVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Long:  `Print the scamscan release version and the commit and date it was built from.`,
		Run: func(cmd *cobra.Command, _ []string) {
			v, c, d := buildVersion()
			fmt.Fprintf(cmd.OutOrStdout(), "scamscan %s (commit %s, built %s)\n", v, c, d)
		},
	}
}
