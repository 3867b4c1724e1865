package report

import (
	"io"
	"time"

	"github.com/safephone/scamscan/internal/model"
)

// ScanReport aggregates the verdicts from one invocation. Every section
// is optional; writers skip what is absent.
type ScanReport struct {
	// GeneratedAt is the wall-clock time the report was assembled.
	GeneratedAt time.Time `json:"generatedAt"`

	URLs   []model.URLVerdict   `json:"urls,omitempty"`
	Emails []model.EmailVerdict `json:"emails,omitempty"`
	Apps   []model.AppVerdict   `json:"apps,omitempty"`
	Wifi   *model.WifiVerdict   `json:"wifi,omitempty"`
	Phones []model.PhoneVerdict `json:"phones,omitempty"`

	// AppSummary is filled when Apps were checked in batch.
	AppSummary *model.AppScanSummary `json:"appSummary,omitempty"`
}

// NewScanReport creates an empty report stamped now.
func NewScanReport() *ScanReport {
	return &ScanReport{GeneratedAt: time.Now()}
}

// HighestRisk returns the most severe risk level across all sections.
func (r *ScanReport) HighestRisk() model.RiskLevel {
	highest := model.RiskSafe
	for _, v := range r.URLs {
		highest = model.MaxRisk(highest, v.Risk)
	}
	for _, v := range r.Emails {
		highest = model.MaxRisk(highest, v.Risk)
	}
	for _, v := range r.Apps {
		highest = model.MaxRisk(highest, v.Risk)
	}
	if r.Wifi != nil {
		highest = model.MaxRisk(highest, r.Wifi.Risk)
	}
	for _, v := range r.Phones {
		highest = model.MaxRisk(highest, v.Risk)
	}
	return highest
}

// TotalChecks returns the number of individual verdicts in the report.
func (r *ScanReport) TotalChecks() int {
	total := len(r.URLs) + len(r.Emails) + len(r.Apps) + len(r.Phones)
	if r.Wifi != nil {
		total++
	}
	return total
}

// Writer defines the interface for report output.
//
// Design decision: We use an interface to allow different output formats
// and destinations. This enables writing to files, stdout, or network
// connections with the same API.
type Writer interface {
	// Write outputs the report to the configured destination.
	// Returns the number of bytes written and any error encountered.
	Write(report *ScanReport) (int, error)
}

// MultiWriter writes to multiple Writers simultaneously, useful for
// outputting to both terminal and file.
type MultiWriter struct {
	writers []Writer
}

// NewMultiWriter creates a Writer that writes to all provided Writers.
func NewMultiWriter(writers ...Writer) *MultiWriter {
	return &MultiWriter{writers: writers}
}

// Write outputs the report to all configured Writers. Returns the total
// bytes written; stops on the first error.
func (m *MultiWriter) Write(report *ScanReport) (int, error) {
	var total int
	for _, w := range m.writers {
		n, err := w.Write(report)
		total += n
		if err != nil {
			return total, err
		}
	}
	return total, nil
}

// baseWriter provides common functionality for report writers.
type baseWriter struct {
	output io.Writer
}

func newBaseWriter(output io.Writer) baseWriter {
	return baseWriter{output: output}
}
