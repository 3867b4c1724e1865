// Package report renders classifier verdicts for humans and tools.
//
// Three formats are provided: plain text for terminal display, JSON for
// programmatic consumption, and Markdown for sharing. All formats render
// the same ScanReport aggregate, so commands build one report and pick a
// writer.
package report
