package config

import (
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
)

// Config holds all configuration for the harness.
type Config struct {
	// Settings file location
	SettingsFile string

	// Run report output settings
	ReportFile string
	ReportDir  string

	// Tolerance fraction for performance acceptance windows
	Tolerance float64

	// Command flags
	Flags Flags
}

// Flags holds command-line flags after parsing.
type Flags struct {
	Settings  string
	Tags      string
	Suite     string
	Tolerance float64
}

// New creates a new Config with defaults.
func New() *Config {
	return &Config{
		SettingsFile: DefaultSettingsFile,
		ReportFile:   DefaultReportFile,
		ReportDir:    DefaultReportDir,
		Tolerance:    DefaultTolerance,
	}
}

// LoadEnv reads an optional .env file in the working directory. Absence is
// not an error; explicit flags always win over the environment.
func (c *Config) LoadEnv() {
	_ = godotenv.Load()
}

// GetSettingsPath returns the settings file path: flag, then environment,
// then the default.
func (c *Config) GetSettingsPath() string {
	if c.Flags.Settings != "" {
		return c.Flags.Settings
	}
	if env := os.Getenv(EnvSettings); env != "" {
		return env
	}
	return c.SettingsFile
}

// GetTags returns the build tags forwarded to the program invocation, or ""
// when none are configured.
func (c *Config) GetTags() string {
	if c.Flags.Tags != "" {
		return c.Flags.Tags
	}
	return os.Getenv(EnvTags)
}

// GetTestDir resolves the artifact directory for a run: the environment
// override if set, otherwise the directory declared in settings.
func (c *Config) GetTestDir(settingsDir string) string {
	if env := os.Getenv(EnvTestDir); env != "" {
		return env
	}
	if settingsDir != "" {
		return settingsDir
	}
	return "."
}

// GetTolerance returns the tolerance fraction, using the flag when it names a
// positive value.
func (c *Config) GetTolerance() float64 {
	if c.Flags.Tolerance > 0 {
		return c.Flags.Tolerance
	}
	return c.Tolerance
}

// GetReportPath returns the absolute path of the run report so run and review
// always read/write the same file regardless of cwd.
func (c *Config) GetReportPath() string {
	p := filepath.Join(c.ReportDir, c.ReportFile)
	if abs, err := filepath.Abs(p); err == nil {
		return abs
	}
	return p
}
