package domain

// TestCase is a single entry in a suite's ordered case list.
type TestCase struct {
	Desc   string   `json:"desc" yaml:"desc"`
	Args   []string `json:"args" yaml:"args"`
	Points int      `json:"points" yaml:"points"`
}

// Settings mirrors the settings file: the artifact directory, the ordered
// suite names, and the cases declared per suite.
type Settings struct {
	TestDir    string                `json:"test_dir" yaml:"test_dir"`
	SuiteNames []string              `json:"test_suite_names" yaml:"test_suite_names"`
	Suites     map[string][]TestCase `json:"test_suites" yaml:"test_suites"`
}

// CasesFor returns the ordered cases for a suite. A suite with no entry in
// the settings yields an empty list, never an error.
func (s *Settings) CasesFor(name string) []TestCase {
	return s.Suites[name]
}
