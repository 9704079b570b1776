// Command-level tests driving the cobra tree through buffers.
package cli

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"
)

// runCommand executes the root command with args and returns stdout.
func runCommand(t *testing.T, args ...string) (string, error) {
	t.Helper()

	var out bytes.Buffer
	root := NewRootCmd()
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(args)

	err := root.Execute()
	return out.String(), err
}

func TestVersionCommand(t *testing.T) {
	out, err := runCommand(t, "version")
	if err != nil {
		t.Fatalf("version failed: %v", err)
	}
	if !strings.Contains(out, "makery v") {
		t.Errorf("unexpected version output: %q", out)
	}
}

func TestDrinksCommand(t *testing.T) {
	out, err := runCommand(t, "drinks", "--region", "region-b", "--spoons", "2")
	if err != nil {
		t.Fatalf("drinks failed: %v", err)
	}
	if !strings.Contains(out, "region: region-b") {
		t.Errorf("missing region line: %q", out)
	}
	if !strings.Contains(out, "coffee (region-b, 2 spoons)") {
		t.Errorf("missing coffee line: %q", out)
	}
	if !strings.Contains(out, "water (region-b)") {
		t.Errorf("missing water line: %q", out)
	}
}

func TestDrinksCommand_UnknownRegion(t *testing.T) {
	if _, err := runCommand(t, "drinks", "--region", "region-z"); err == nil {
		t.Error("expected error for unknown region")
	}
}

func TestContainerCommand_InMemoryProfile(t *testing.T) {
	out, err := runCommand(t, "container", "--profile", "primary-test")
	if err != nil {
		t.Fatalf("container failed: %v", err)
	}
	if !strings.Contains(out, "profile: primary-test") {
		t.Errorf("missing profile line: %q", out)
	}
	if !strings.Contains(out, "schema sources: app, ledger, tracker") {
		t.Errorf("missing sources line: %q", out)
	}
	if !strings.Contains(out, "store: in-memory") {
		t.Errorf("missing store line: %q", out)
	}
}

func TestContainerCommand_OnDiskProfile(t *testing.T) {
	dataDir := t.TempDir()

	out, err := runCommand(t, "container", "--profile", "primary", "--data-dir", dataDir)
	if err != nil {
		t.Fatalf("container failed: %v", err)
	}
	if !strings.Contains(out, "store: on-disk ("+filepath.Join(dataDir, "makery.db")+")") {
		t.Errorf("missing on-disk store line: %q", out)
	}
}

func TestContainerCommand_UnknownProfile(t *testing.T) {
	if _, err := runCommand(t, "container", "--profile", "staging"); err == nil {
		t.Error("expected error for unknown profile")
	}
}

func TestSessionCommand(t *testing.T) {
	out, err := runCommand(t, "session", "--callers", "8")
	if err != nil {
		t.Fatalf("session failed: %v", err)
	}
	if !strings.Contains(out, "callers: 8, distinct instances observed: 1") {
		t.Errorf("unexpected session output: %q", out)
	}
}
