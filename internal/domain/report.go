package domain

// CaseDetail is one non-passing case in a persisted run report.
type CaseDetail struct {
	Suite   string `json:"suite"`
	Index   int    `json:"index"`
	Desc    string `json:"desc"`
	Status  string `json:"status"`
	Message string `json:"message"`
	Diff    string `json:"diff,omitempty"` // Unified diff text, functional mismatches only
}

// ReportMeta contains metadata about a harness run.
type ReportMeta struct {
	Mode            string  `json:"mode"` // "functional" or "performance"
	TotalCases      int     `json:"total_cases"`
	Passed          int     `json:"passed"`
	Failed          int     `json:"failed"`
	Skipped         int     `json:"skipped"`
	Errored         int     `json:"errored"`
	EarnedPoints    int     `json:"earned_points"`
	MaxPoints       int     `json:"max_points"`
	Duration        string  `json:"duration"`
	DurationSeconds float64 `json:"duration_seconds"`
	Timestamp       string  `json:"timestamp"`
}

// RunReport is the complete persisted output of one harness run. It is
// overwritten on every run; the review command reads the latest one.
type RunReport struct {
	Meta    ReportMeta   `json:"meta"`
	Details []CaseDetail `json:"details"`
}
