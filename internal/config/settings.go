package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"grader/internal/domain"
)

// LoadSettings reads and parses a settings file. The extension selects the
// parser: .yaml/.yml are parsed as YAML, everything else as JSON. A missing
// or unparsable file is fatal; an empty suite list is not.
func LoadSettings(path string) (*domain.Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read settings %s: %w", path, err)
	}

	var settings domain.Settings
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &settings); err != nil {
			return nil, fmt.Errorf("parse settings %s: %w", path, err)
		}
	default:
		if err := json.Unmarshal(data, &settings); err != nil {
			return nil, fmt.Errorf("parse settings %s: %w", path, err)
		}
	}

	if settings.TestDir == "" {
		settings.TestDir = "."
	}
	return &settings, nil
}
