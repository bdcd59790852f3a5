package execution

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"os/exec"

	"grader/internal/config"
	"grader/internal/domain"
)

// Runner invokes the program under test for a suite. Each suite maps to a
// <suite>.go file in the working directory, run through the go toolchain with
// the test case's arguments passed verbatim.
type Runner struct {
	config *config.Config
}

// NewRunner creates a new Runner.
func NewRunner(cfg *config.Config) *Runner {
	return &Runner{config: cfg}
}

// SuiteFile returns the program file associated with a suite name.
func (r *Runner) SuiteFile(suite string) string {
	return suite + ".go"
}

// Available reports whether the suite's program file exists. A missing file
// skips the whole suite, it does not abort the run.
func (r *Runner) Available(suite string) bool {
	_, err := os.Stat(r.SuiteFile(suite))
	return err == nil
}

// Run executes the suite's program with the given arguments and captures its
// standard output. A non-zero exit is data, not an error: the result carries
// it and judgment proceeds on the output. Only a failure to start the
// process at all is returned as an error.
func (r *Runner) Run(ctx context.Context, suite string, args []string) (domain.RunResult, error) {
	cmdArgs := []string{"run"}
	if tags := r.config.GetTags(); tags != "" {
		cmdArgs = append(cmdArgs, "-tags", tags)
	}
	cmdArgs = append(cmdArgs, r.SuiteFile(suite))
	cmdArgs = append(cmdArgs, args...)

	var stdout, stderr bytes.Buffer
	cmd := exec.CommandContext(ctx, "go", cmdArgs...)
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	if err != nil {
		if _, ok := err.(*exec.ExitError); !ok {
			return domain.RunResult{}, fmt.Errorf("start %s: %w", r.SuiteFile(suite), err)
		}
	}

	return domain.RunResult{Stdout: stdout.String(), ExitErr: err}, nil
}
