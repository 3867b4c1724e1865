package main

import (
	"bytes"
	"strings"
	"testing"
)

func TestNewRootCmdSubcommands(t *testing.T) {
	t.Parallel()

	root := NewRootCmd()

	want := []string{"url", "email", "app", "wifi", "phone", "report", "sync", "serve", "version"}
	for _, name := range want {
		found := false
		for _, sub := range root.Commands() {
			if sub.Name() == name {
				found = true
				break
			}
		}
		if !found {
			t.Errorf("subcommand %q not registered", name)
		}
	}
}

func TestVersionCmd(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	root := NewRootCmd()
	root.SetOut(&buf)
	root.SetErr(&buf)
	root.SetArgs([]string{"version"})

	if err := root.Execute(); err != nil {
		t.Fatal(err)
	}
	out := buf.String()
	if !strings.HasPrefix(out, "scamscan ") || !strings.Contains(out, "commit") {
		t.Errorf("version output = %q", out)
	}
}

func TestVerboseFlagRegistered(t *testing.T) {
	t.Parallel()

	root := NewRootCmd()
	if root.PersistentFlags().Lookup("verbose") == nil {
		t.Error("persistent verbose flag missing")
	}
	if root.PersistentFlags().Lookup("db-dir") == nil {
		t.Error("persistent db-dir flag missing")
	}
}
