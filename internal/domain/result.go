package domain

// RunResult captures one program invocation. The exit error is recorded but
// never drives judgment: a non-zero exit with matching output is still a pass.
type RunResult struct {
	Stdout  string // Full standard output of the program
	ExitErr error  // Non-nil when the process exited non-zero
}

// Status classifies a judged test case.
type Status int

const (
	// StatusPass means the case met its expectation.
	StatusPass Status = iota
	// StatusFail means output mismatched the golden file or a metric fell
	// outside its acceptance window.
	StatusFail
	// StatusSkip means judgment could not be rendered (no golden reference);
	// neither pass nor fail.
	StatusSkip
	// StatusError means the case could not be judged at all: the process
	// failed to start, its arguments were malformed, or its output was
	// unparsable.
	StatusError
)

// String returns the console label for a status.
func (s Status) String() string {
	switch s {
	case StatusPass:
		return "PASS"
	case StatusFail:
		return "FAIL"
	case StatusSkip:
		return "SKIP"
	default:
		return "ERROR"
	}
}

// Verdict is the judgment for a single test case. It is produced once,
// printed, folded into the run report, and never retained beyond that.
type Verdict struct {
	Status     Status
	Message    string
	ActualPath string // Path of the persisted actual output, if any
	DiffPath   string // Path of the diff artifact, set only on mismatch
}

// Passed reports whether the verdict is a pass.
func (v Verdict) Passed() bool {
	return v.Status == StatusPass
}

// Score is the running earned/max point tally for a functional run. It is a
// value, threaded through the suite loop rather than shared.
type Score struct {
	Earned int
	Max    int
}

// Add folds another score into this one and returns the sum.
func (s Score) Add(o Score) Score {
	return Score{Earned: s.Earned + o.Earned, Max: s.Max + o.Max}
}

// Perfect reports whether every available point was earned.
func (s Score) Perfect() bool {
	return s.Earned == s.Max
}
