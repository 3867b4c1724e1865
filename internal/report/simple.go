package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/safephone/scamscan/internal/model"
)

// SimpleWriter outputs human-readable text reports for terminal display.
//
// Design decision: We use plain text with ASCII formatting rather than
// ANSI colors by default because:
// 1. It works in all terminals without compatibility issues
// 2. It's easier to pipe to files or other tools
// 3. Color can be added as an option later if needed
type SimpleWriter struct {
	baseWriter

	// showEmpty controls whether sections with no verdicts are shown.
	showEmpty bool

	// verbose enables additional detail in the output.
	verbose bool
}

// SimpleWriterOption configures a SimpleWriter.
type SimpleWriterOption func(*SimpleWriter)

// WithShowEmpty configures the writer to show empty sections.
func WithShowEmpty(show bool) SimpleWriterOption {
	return func(w *SimpleWriter) { w.showEmpty = show }
}

// WithVerbose enables verbose output with additional details.
func WithVerbose(verbose bool) SimpleWriterOption {
	return func(w *SimpleWriter) { w.verbose = verbose }
}

// NewSimpleWriter creates a SimpleWriter that outputs to the given writer.
func NewSimpleWriter(output io.Writer, opts ...SimpleWriterOption) *SimpleWriter {
	w := &SimpleWriter{baseWriter: newBaseWriter(output)}
	for _, opt := range opts {
		opt(w)
	}
	return w
}

// Write outputs the report in human-readable format.
func (w *SimpleWriter) Write(report *ScanReport) (int, error) {
	var sb strings.Builder

	w.writeHeader(&sb, report)
	w.writeURLs(&sb, report.URLs)
	w.writeEmails(&sb, report.Emails)
	w.writeApps(&sb, report)
	w.writeWifi(&sb, report.Wifi)
	w.writePhones(&sb, report.Phones)

	return w.output.Write([]byte(sb.String()))
}

// riskIndicator returns the visual indicator for a risk level.
func riskIndicator(risk model.RiskLevel) string {
	switch risk {
	case model.RiskDanger:
		return "!!"
	case model.RiskWarning:
		return "! "
	default:
		return "OK"
	}
}

func (w *SimpleWriter) writeHeader(sb *strings.Builder, report *ScanReport) {
	sb.WriteString("\n")
	sb.WriteString(strings.Repeat("=", 70))
	sb.WriteString("\n")
	sb.WriteString("                         SCAMSCAN REPORT\n")
	sb.WriteString(strings.Repeat("=", 70))
	sb.WriteString("\n\n")

	sb.WriteString(fmt.Sprintf("Date:          %s\n", report.GeneratedAt.Format("2006-01-02 15:04:05 MST")))
	sb.WriteString(fmt.Sprintf("Checks:        %d\n", report.TotalChecks()))
	sb.WriteString(fmt.Sprintf("Highest Risk:  %s\n", strings.ToUpper(report.HighestRisk().String())))
	sb.WriteString("\n")
}

func (w *SimpleWriter) writeSectionHeader(sb *strings.Builder, title string) {
	sb.WriteString(strings.Repeat("-", 70))
	sb.WriteString("\n")
	sb.WriteString(title)
	sb.WriteString("\n")
	sb.WriteString(strings.Repeat("-", 70))
	sb.WriteString("\n\n")
}

func (w *SimpleWriter) writeURLs(sb *strings.Builder, verdicts []model.URLVerdict) {
	if len(verdicts) == 0 && !w.showEmpty {
		return
	}
	w.writeSectionHeader(sb, "URLS")

	for _, v := range verdicts {
		sb.WriteString(fmt.Sprintf("[%s] %s\n", riskIndicator(v.Risk), v.Input))
		if v.WarningText != "" {
			for _, line := range strings.Split(v.WarningText, "\n") {
				sb.WriteString(fmt.Sprintf("     %s\n", line))
			}
		}
		if w.verbose {
			sb.WriteString(fmt.Sprintf("     Domain: %s\n", v.Domain))
			if len(v.SuspiciousKeywords) > 0 {
				sb.WriteString(fmt.Sprintf("     Keywords: %s\n", strings.Join(v.SuspiciousKeywords, ", ")))
			}
		}
	}
	sb.WriteString("\n")
}

func (w *SimpleWriter) writeEmails(sb *strings.Builder, verdicts []model.EmailVerdict) {
	if len(verdicts) == 0 && !w.showEmpty {
		return
	}
	w.writeSectionHeader(sb, "EMAIL SENDERS")

	for _, v := range verdicts {
		sb.WriteString(fmt.Sprintf("[%s] %s\n", riskIndicator(v.Risk), v.Domain))
		if v.Reason != "" {
			sb.WriteString(fmt.Sprintf("     %s\n", v.Reason))
		}
	}
	sb.WriteString("\n")
}

func (w *SimpleWriter) writeApps(sb *strings.Builder, report *ScanReport) {
	if len(report.Apps) == 0 && !w.showEmpty {
		return
	}
	w.writeSectionHeader(sb, "INSTALLED APPS")

	if report.AppSummary != nil {
		s := report.AppSummary
		sb.WriteString(fmt.Sprintf("  Scanned: %d   Safe: %d   Warning: %d   Danger: %d\n\n",
			s.Total, s.Safe, s.Warning, s.Danger))
	}

	for _, v := range report.Apps {
		if v.Risk == model.RiskSafe && !w.verbose {
			continue
		}
		label := fmt.Sprintf("%s (%s)", v.App.Name, v.App.PackageName)
		if v.App.Name == "" && v.App.PackageName == "" {
			label = "(app inventory unavailable)"
		}
		sb.WriteString(fmt.Sprintf("[%s] %s\n", riskIndicator(v.Risk), label))
		if v.WarningMessage != "" {
			for _, line := range strings.Split(v.WarningMessage, "\n") {
				sb.WriteString(fmt.Sprintf("     %s\n", line))
			}
		}
		if w.verbose && len(v.DangerousPermissions) > 0 {
			sb.WriteString(fmt.Sprintf("     Permissions: %s\n", strings.Join(v.DangerousPermissions, ", ")))
		}
	}
	sb.WriteString("\n")
}

func (w *SimpleWriter) writeWifi(sb *strings.Builder, v *model.WifiVerdict) {
	if v == nil {
		return
	}
	w.writeSectionHeader(sb, "WIFI")

	ssid := v.SSID
	if ssid == "" {
		ssid = "(not connected)"
	}
	sb.WriteString(fmt.Sprintf("[%s] %s\n", riskIndicator(v.Risk), ssid))
	sb.WriteString(fmt.Sprintf("     Encryption: %s\n", v.Encryption.Label()))
	for _, warning := range v.Warnings {
		sb.WriteString(fmt.Sprintf("     %s\n", warning))
	}
	sb.WriteString("\n")
}

func (w *SimpleWriter) writePhones(sb *strings.Builder, verdicts []model.PhoneVerdict) {
	if len(verdicts) == 0 && !w.showEmpty {
		return
	}
	w.writeSectionHeader(sb, "PHONE NUMBERS")

	for _, v := range verdicts {
		sb.WriteString(fmt.Sprintf("[%s] %s\n", riskIndicator(v.Risk), v.Number))
		switch {
		case v.Reported:
			sb.WriteString(fmt.Sprintf("     Reported %d time(s) by the community\n", v.Count))
		case v.OfficialContact != "":
			sb.WriteString(fmt.Sprintf("     Official contact line of %s\n", v.OfficialContact))
		default:
			sb.WriteString("     No community reports\n")
		}
	}
	sb.WriteString("\n")
}
