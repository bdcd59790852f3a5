package cli

import "grader/internal/config"

// Flags holds command-line flags
type Flags struct {
	Settings  string
	Tags      string
	Suite     string
	Tolerance float64
}

// ToConfigFlags converts CLI flags to config flags
func (f *Flags) ToConfigFlags() config.Flags {
	return config.Flags{
		Settings:  f.Settings,
		Tags:      f.Tags,
		Suite:     f.Suite,
		Tolerance: f.Tolerance,
	}
}
