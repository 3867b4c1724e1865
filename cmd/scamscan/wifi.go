package main

import (
	"github.com/spf13/cobra"

	"github.com/safephone/scamscan/internal/classifier"
	"github.com/safephone/scamscan/internal/model"
	"github.com/safephone/scamscan/internal/report"
)

// NewWifiCmd creates the wifi command.
func NewWifiCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "wifi",
		Short: "Check a WiFi network's encryption",
		Long: `Classify a WiFi network by its encryption strength. Open and WEP/TKIP
networks are dangerous, WPA and unknown ciphers get a warning, WPA2 and
WPA3 are safe.

Without flags the network state is treated as unreadable and the verdict
degrades to a warning.

Examples:
  # Check a network by its capability string
  scamscan wifi --ssid "CAFE WIFI" --encryption "[WPA2-PSK-CCMP][ESS]"

  # Run a canned demo scenario
  scamscan wifi --demo danger`,
		RunE: runWifiCmd,
	}

	cmd.Flags().String("ssid", "", "Network SSID")
	cmd.Flags().String("encryption", "", "Raw encryption capability string (e.g. WPA2, OPEN)")
	cmd.Flags().Bool("connected", true, "Whether the device is connected to the network")
	cmd.Flags().String("demo", "", "Run a canned scenario (safe, warning, danger)")
	addReportFlags(cmd)

	return cmd
}

// runWifiCmd executes the wifi command.
func runWifiCmd(cmd *cobra.Command, _ []string) error {
	cfg, err := buildConfig(cmd)
	if err != nil {
		return err
	}
	logger := setupLogger(cfg.Verbose)

	demo, err := cmd.Flags().GetString("demo")
	if err != nil {
		return err
	}
	ssid, err := cmd.Flags().GetString("ssid")
	if err != nil {
		return err
	}
	encryption, err := cmd.Flags().GetString("encryption")
	if err != nil {
		return err
	}
	connected, err := cmd.Flags().GetBool("connected")
	if err != nil {
		return err
	}

	eng, cleanup := newEngine(cfg, logger)
	defer cleanup()

	var verdict model.WifiVerdict
	switch {
	case demo != "":
		verdict = classifier.DemoWifiScenario(demo)
	case ssid == "" && encryption == "":
		verdict = eng.CheckWifiUnverified()
	default:
		verdict = eng.CheckWifi(model.WifiStatus{
			SSID:        ssid,
			IsConnected: connected,
			Encryption:  encryption,
		})
	}

	rep := report.NewScanReport()
	rep.Wifi = &verdict
	return outputReport(cfg, rep)
}
