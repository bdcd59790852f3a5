package config

import (
	"os"
	"path/filepath"
	"testing"
)

func writeSettings(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write settings file: %v", err)
	}
	return path
}

func TestLoadSettings_JSON(t *testing.T) {
	path := writeSettings(t, "settings.json", `{
		"test_dir": "tests",
		"test_suite_names": ["kvrun", "serveload"],
		"test_suites": {
			"kvrun": [
				{"desc": "basic get/put", "args": ["10", "20"], "points": 5},
				{"desc": "overwrite", "args": ["1", "1"], "points": 3}
			]
		}
	}`)

	settings, err := LoadSettings(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if settings.TestDir != "tests" {
		t.Errorf("expected test_dir 'tests', got %q", settings.TestDir)
	}
	if len(settings.SuiteNames) != 2 || settings.SuiteNames[0] != "kvrun" || settings.SuiteNames[1] != "serveload" {
		t.Errorf("unexpected suite names: %v", settings.SuiteNames)
	}

	cases := settings.CasesFor("kvrun")
	if len(cases) != 2 {
		t.Fatalf("expected 2 cases, got %d", len(cases))
	}
	if cases[0].Desc != "basic get/put" || cases[0].Points != 5 {
		t.Errorf("unexpected first case: %+v", cases[0])
	}
	if len(cases[1].Args) != 2 || cases[1].Args[0] != "1" {
		t.Errorf("unexpected second case args: %v", cases[1].Args)
	}
}

func TestLoadSettings_YAML(t *testing.T) {
	path := writeSettings(t, "settings.yaml", `
test_dir: tests
test_suite_names:
  - serveload
test_suites:
  serveload:
    - desc: saturated
      args: ["10", "500", "2"]
      points: 0
`)

	settings, err := LoadSettings(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(settings.SuiteNames) != 1 || settings.SuiteNames[0] != "serveload" {
		t.Errorf("unexpected suite names: %v", settings.SuiteNames)
	}
	cases := settings.CasesFor("serveload")
	if len(cases) != 1 || cases[0].Desc != "saturated" {
		t.Errorf("unexpected cases: %+v", cases)
	}
}

func TestLoadSettings_Errors(t *testing.T) {
	t.Run("missing file", func(t *testing.T) {
		if _, err := LoadSettings(filepath.Join(t.TempDir(), "nope.json")); err == nil {
			t.Error("expected error for missing settings file")
		}
	})

	t.Run("malformed JSON", func(t *testing.T) {
		path := writeSettings(t, "settings.json", `{"test_dir": `)
		if _, err := LoadSettings(path); err == nil {
			t.Error("expected error for malformed JSON")
		}
	})

	t.Run("malformed YAML", func(t *testing.T) {
		path := writeSettings(t, "settings.yaml", "test_dir: [\n")
		if _, err := LoadSettings(path); err == nil {
			t.Error("expected error for malformed YAML")
		}
	})
}

func TestLoadSettings_Defaults(t *testing.T) {
	path := writeSettings(t, "settings.json", `{"test_suite_names": ["kvrun"]}`)

	settings, err := LoadSettings(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if settings.TestDir != "." {
		t.Errorf("expected default test_dir '.', got %q", settings.TestDir)
	}

	// A suite with no declared cases yields an empty list, never an error.
	if cases := settings.CasesFor("kvrun"); len(cases) != 0 {
		t.Errorf("expected no cases, got %d", len(cases))
	}
}
