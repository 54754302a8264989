package main

import (
	"os"
	"path/filepath"
	"testing"
)

func TestRun_ConfigErrorIsReturned(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("logging:\n  format: xml\n"), 0o600); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}

	if err := run(path); err == nil {
		t.Error("expected an error for an invalid config")
	}
}

func TestRun_MissingConfigFile(t *testing.T) {
	if err := run(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("expected an error for a missing config file")
	}
}
