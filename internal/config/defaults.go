package config

const (
	// DefaultSettingsFile is the settings file looked up in the working directory
	DefaultSettingsFile = "settings.json"
	// DefaultReportFile is the run report file name
	DefaultReportFile = "run-report.json"
	// DefaultReportDir is the directory the run report is written under
	DefaultReportDir = "storage"
	// DefaultTolerance is the fraction of slack allowed around a predicted metric
	DefaultTolerance = 0.20
)

// Environment variables honored as defaults under the command-line flags,
// loaded from the process environment or an optional .env file.
const (
	EnvSettings = "GRADER_SETTINGS"
	EnvTestDir  = "GRADER_TEST_DIR"
	EnvTags     = "GRADER_TAGS"
)
