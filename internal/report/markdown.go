package report

import (
	"io"
	"strconv"
	"strings"

	"github.com/nao1215/markdown"

	"github.com/safephone/scamscan/internal/model"
)

// MarkdownWriter outputs reports in Markdown format, designed for
// sharing check results with others.
//
// Design decision: We use the nao1215/markdown library for fluent markdown
// generation which provides:
// 1. Type-safe markdown generation
// 2. Support for tables, lists, and code blocks
// 3. GitHub-flavored markdown alerts
type MarkdownWriter struct {
	baseWriter
}

// NewMarkdownWriter creates a MarkdownWriter that outputs to the given writer.
func NewMarkdownWriter(output io.Writer) *MarkdownWriter {
	return &MarkdownWriter{baseWriter: newBaseWriter(output)}
}

// Write outputs the report in Markdown format.
func (w *MarkdownWriter) Write(report *ScanReport) (int, error) {
	md := markdown.NewMarkdown(w.output)

	w.writeHeader(md, report)
	w.writeURLs(md, report.URLs)
	w.writeEmails(md, report.Emails)
	w.writeApps(md, report)
	w.writeWifi(md, report.Wifi)
	w.writePhones(md, report.Phones)

	return len(md.String()), md.Build()
}

// riskCell returns the table cell text for a risk level.
func riskCell(risk model.RiskLevel) string {
	switch risk {
	case model.RiskDanger:
		return "🔴 Danger"
	case model.RiskWarning:
		return "🟡 Warning"
	default:
		return "🟢 Safe"
	}
}

func (w *MarkdownWriter) writeHeader(md *markdown.Markdown, report *ScanReport) {
	md.H1("ScamScan Report")
	md.PlainText("")

	md.Table(markdown.TableSet{
		Header: []string{"Property", "Value"},
		Rows: [][]string{
			{"Date", report.GeneratedAt.Format("2006-01-02 15:04:05 MST")},
			{"Checks", strconv.Itoa(report.TotalChecks())},
			{"Highest Risk", riskCell(report.HighestRisk())},
		},
	})
	md.PlainText("")

	switch report.HighestRisk() {
	case model.RiskDanger:
		md.Cautionf("Scam indicators detected. Do not share personal or banking data with the flagged contacts.")
	case model.RiskWarning:
		md.Warningf("Some checks were inconclusive. Verify through official channels before proceeding.")
	default:
		md.Tip("No scam indicators detected.")
	}
	md.PlainText("")
}

func (w *MarkdownWriter) writeURLs(md *markdown.Markdown, verdicts []model.URLVerdict) {
	if len(verdicts) == 0 {
		return
	}
	md.H2("URLs")
	md.PlainText("")

	rows := make([][]string, len(verdicts))
	for i, v := range verdicts {
		warning := v.WarningText
		if warning == "" {
			warning = "-"
		}
		rows[i] = []string{
			"`" + truncateString(v.Input, 60) + "`",
			riskCell(v.Risk),
			truncateString(strings.ReplaceAll(warning, "\n", " "), 80),
		}
	}
	md.Table(markdown.TableSet{
		Header: []string{"URL", "Risk", "Warnings"},
		Rows:   rows,
	})
	md.PlainText("")
}

func (w *MarkdownWriter) writeEmails(md *markdown.Markdown, verdicts []model.EmailVerdict) {
	if len(verdicts) == 0 {
		return
	}
	md.H2("Email Senders")
	md.PlainText("")

	rows := make([][]string, len(verdicts))
	for i, v := range verdicts {
		rows[i] = []string{
			"`" + v.Domain + "`",
			riskCell(v.Risk),
			truncateString(v.Reason, 80),
		}
	}
	md.Table(markdown.TableSet{
		Header: []string{"Domain", "Risk", "Reason"},
		Rows:   rows,
	})
	md.PlainText("")
}

func (w *MarkdownWriter) writeApps(md *markdown.Markdown, report *ScanReport) {
	if len(report.Apps) == 0 {
		return
	}
	md.H2("Installed Apps")
	md.PlainText("")

	if s := report.AppSummary; s != nil {
		md.PlainTextf("Scanned %d apps: %d safe, %d warning, %d danger.",
			s.Total, s.Safe, s.Warning, s.Danger)
		md.PlainText("")
	}

	rows := make([][]string, 0, len(report.Apps))
	for _, v := range report.Apps {
		perms := "-"
		if len(v.DangerousPermissions) > 0 {
			perms = strings.Join(v.DangerousPermissions, ", ")
		}
		rows = append(rows, []string{
			v.App.Name,
			"`" + v.App.PackageName + "`",
			riskCell(v.Risk),
			truncateString(perms, 60),
		})
	}
	md.Table(markdown.TableSet{
		Header: []string{"App", "Package", "Risk", "Dangerous Permissions"},
		Rows:   rows,
	})
	md.PlainText("")
}

func (w *MarkdownWriter) writeWifi(md *markdown.Markdown, v *model.WifiVerdict) {
	if v == nil {
		return
	}
	md.H2("WiFi")
	md.PlainText("")

	ssid := v.SSID
	if ssid == "" {
		ssid = "(not connected)"
	}
	md.Table(markdown.TableSet{
		Header: []string{"SSID", "Encryption", "Risk"},
		Rows: [][]string{
			{ssid, v.Encryption.Label(), riskCell(v.Risk)},
		},
	})
	md.PlainText("")

	if len(v.Warnings) > 0 {
		md.BulletList(v.Warnings...)
		md.PlainText("")
	}
}

func (w *MarkdownWriter) writePhones(md *markdown.Markdown, verdicts []model.PhoneVerdict) {
	if len(verdicts) == 0 {
		return
	}
	md.H2("Phone Numbers")
	md.PlainText("")

	rows := make([][]string, len(verdicts))
	for i, v := range verdicts {
		detail := "No community reports"
		switch {
		case v.Reported:
			detail = "Reported " + strconv.Itoa(v.Count) + " time(s)"
		case v.OfficialContact != "":
			detail = "Official contact line of " + v.OfficialContact
		}
		rows[i] = []string{"`" + v.Number + "`", riskCell(v.Risk), detail}
	}
	md.Table(markdown.TableSet{
		Header: []string{"Number", "Risk", "Detail"},
		Rows:   rows,
	})
	md.PlainText("")
}

// truncateString truncates a string to maxLen characters with ellipsis.
func truncateString(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	if maxLen <= 3 {
		return s[:maxLen]
	}
	return s[:maxLen-3] + "..."
}
