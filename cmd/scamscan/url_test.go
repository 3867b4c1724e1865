package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// runCLI executes the root command with the given args against a
// throwaway database directory and returns captured command output.
func runCLI(t *testing.T, args ...string) (string, error) {
	t.Helper()

	var buf bytes.Buffer
	root := NewRootCmd()
	root.SetOut(&buf)
	root.SetErr(&buf)
	root.SetArgs(append([]string{"--db-dir", t.TempDir()}, args...))
	err := root.Execute()
	return buf.String(), err
}

func TestURLCmdWritesReport(t *testing.T) {
	t.Parallel()

	out := filepath.Join(t.TempDir(), "report.txt")
	if _, err := runCLI(t, "url", "--output", out, "http://banco-popular-premio.com/verificar"); err != nil {
		t.Fatal(err)
	}

	data, err := os.ReadFile(out)
	if err != nil {
		t.Fatal(err)
	}
	report := string(data)
	if !strings.Contains(report, "SCAMSCAN REPORT") {
		t.Errorf("report missing header:\n%s", report)
	}
	if !strings.Contains(report, "DANGER") {
		t.Errorf("phishing URL not flagged:\n%s", report)
	}
}

func TestURLCmdListFile(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	list := filepath.Join(dir, "urls.txt")
	content := "# comment line\nhttps://www.banreservas.com\n\nhttp://banreservas-premios.net\n"
	if err := os.WriteFile(list, []byte(content), 0600); err != nil {
		t.Fatal(err)
	}

	out := filepath.Join(dir, "report.txt")
	if _, err := runCLI(t, "url", "--list", list, "--output", out); err != nil {
		t.Fatal(err)
	}

	data, err := os.ReadFile(out)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), "Checks:        2") {
		t.Errorf("expected two checks from list file:\n%s", data)
	}
}

func TestURLCmdNoInput(t *testing.T) {
	t.Parallel()

	if _, err := runCLI(t, "url"); err == nil {
		t.Error("expected error without URL arguments")
	}
}

func TestURLCmdListOfficial(t *testing.T) {
	t.Parallel()

	out, err := runCLI(t, "url", "--list-official")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out, "banreservas.com") {
		t.Errorf("official domain listing missing banreservas.com:\n%s", out)
	}
	if !strings.Contains(out, "Safe banking portals:") {
		t.Errorf("safe portal section missing:\n%s", out)
	}
}

func TestReadLines(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "lines.txt")
	if err := os.WriteFile(path, []byte("a\n# b\n\n c \n"), 0600); err != nil {
		t.Fatal(err)
	}

	lines, err := readLines(path)
	if err != nil {
		t.Fatal(err)
	}
	if len(lines) != 2 || lines[0] != "a" || lines[1] != "c" {
		t.Errorf("lines = %v", lines)
	}
}
