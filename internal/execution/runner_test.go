package execution

import (
	"os"
	"path/filepath"
	"testing"

	"grader/internal/config"
)

func TestRunner_SuiteFile(t *testing.T) {
	r := NewRunner(config.New())
	if got := r.SuiteFile("kvrun"); got != "kvrun.go" {
		t.Errorf("expected kvrun.go, got %s", got)
	}
}

func TestRunner_Available(t *testing.T) {
	tmpDir := t.TempDir()
	cwd, err := os.Getwd()
	if err != nil {
		t.Fatalf("getwd: %v", err)
	}
	if err := os.Chdir(tmpDir); err != nil {
		t.Fatalf("chdir: %v", err)
	}
	defer os.Chdir(cwd)

	if err := os.WriteFile(filepath.Join(tmpDir, "kvrun.go"), []byte("package main\n"), 0644); err != nil {
		t.Fatalf("write suite file: %v", err)
	}

	r := NewRunner(config.New())
	if !r.Available("kvrun") {
		t.Error("kvrun should be available")
	}
	if r.Available("serveload") {
		t.Error("serveload should not be available")
	}
}
