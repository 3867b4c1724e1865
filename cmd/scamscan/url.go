package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/safephone/scamscan/internal/config"
	"github.com/safephone/scamscan/internal/registry"
	"github.com/safephone/scamscan/internal/report"
)

// NewURLCmd creates the url command.
func NewURLCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "url [url...]",
		Short: "Check URLs for phishing indicators",
		Long: `Check one or more URLs against known brand impersonation patterns,
suspicious keyword heuristics, and the registry of official bank domains.

Examples:
  # Check a single URL
  scamscan url https://banco-popular-premio.com/verificar

  # Check several URLs concurrently
  scamscan url https://a.example https://b.example

  # Check every URL in a file (one per line)
  scamscan url --list urls.txt

  # Print the official bank domains and safe banking portals
  scamscan url --list-official`,
		Args: cobra.ArbitraryArgs,
		RunE: runURLCmd,
	}

	cmd.Flags().StringP("list", "l", "", "File with one URL per line")
	cmd.Flags().Bool("list-official", false, "Print official domains and safe banking portals")
	addReportFlags(cmd)

	return cmd
}

// runURLCmd executes the url command.
func runURLCmd(cmd *cobra.Command, args []string) error {
	cfg, err := buildConfig(cmd)
	if err != nil {
		return err
	}
	logger := setupLogger(cfg.Verbose)

	listOfficial, err := cmd.Flags().GetBool("list-official")
	if err != nil {
		return err
	}
	if listOfficial {
		return printOfficialSites(cmd, cfg)
	}

	urls := args
	listFile, err := cmd.Flags().GetString("list")
	if err != nil {
		return err
	}
	if listFile != "" {
		fromFile, err := readLines(listFile)
		if err != nil {
			return fmt.Errorf("failed to read URL list: %w", err)
		}
		urls = append(urls, fromFile...)
	}
	if len(urls) == 0 {
		return fmt.Errorf("%w: provide a URL or use --list", config.ErrNoInput)
	}

	eng, cleanup := newEngine(cfg, logger)
	defer cleanup()

	verdicts, err := eng.CheckURLs(cmd.Context(), urls)
	if err != nil {
		return err
	}

	rep := report.NewScanReport()
	rep.URLs = verdicts
	return outputReport(cfg, rep)
}

// printOfficialSites prints the registry's official domains and the safe
// banking portal list.
func printOfficialSites(cmd *cobra.Command, cfg *config.Config) error {
	reg := registry.New(cfg.File.RegistryOptions()...)
	out := cmd.OutOrStdout()

	fmt.Fprintln(out, "Official bank domains:")
	for _, domain := range reg.OfficialDomains() {
		fmt.Fprintf(out, "  %s\n", domain)
	}

	fmt.Fprintln(out, "\nSafe banking portals:")
	for _, site := range registry.SafeBankingSites() {
		fmt.Fprintf(out, "  %-30s %s\n", site.Name, site.URL)
	}
	return nil
}

// readLines reads non-empty, non-comment lines from a file.
func readLines(path string) ([]string, error) {
	f, err := os.Open(path) //nolint:gosec // User-provided list path is intentional
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var lines []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		lines = append(lines, line)
	}
	return lines, scanner.Err()
}
