package judge

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pmezard/go-difflib/difflib"

	"grader/internal/domain"
)

// Comparator judges functional cases by exact line comparison against golden
// reference files, writing per-case artifacts under the test directory.
type Comparator struct {
	testDir string
}

// NewComparator creates a Comparator writing artifacts under testDir.
func NewComparator(testDir string) *Comparator {
	return &Comparator{testDir: testDir}
}

// ExpectedPath returns the golden reference file for a case.
func (c *Comparator) ExpectedPath(suite string, i int) string {
	return filepath.Join(c.testDir, fmt.Sprintf("%s_expected_%d.txt", suite, i))
}

// ActualPath returns the persisted actual-output file for a case.
func (c *Comparator) ActualPath(suite string, i int) string {
	return filepath.Join(c.testDir, fmt.Sprintf("%s_actual_%d.txt", suite, i))
}

// DiffPath returns the diff artifact file for a case.
func (c *Comparator) DiffPath(suite string, i int) string {
	return filepath.Join(c.testDir, fmt.Sprintf("%s_diff_%d.txt", suite, i))
}

// Judge compares captured output against the case's golden reference.
// The actual output is always persisted, even without a golden file, so new
// references can be bootstrapped from a run. On a match any stale diff
// artifact is removed; on a mismatch the diff artifact is overwritten, so its
// presence always reflects the most recent run.
func (c *Comparator) Judge(suite string, i int, stdout string) (domain.Verdict, error) {
	actualPath := c.ActualPath(suite, i)
	diffPath := c.DiffPath(suite, i)

	if err := os.WriteFile(actualPath, []byte(stdout), 0644); err != nil {
		return domain.Verdict{}, fmt.Errorf("write actual output: %w", err)
	}

	expected, err := os.ReadFile(c.ExpectedPath(suite, i))
	if err != nil {
		if os.IsNotExist(err) {
			return domain.Verdict{
				Status:     domain.StatusSkip,
				Message:    fmt.Sprintf("Expected file not found: %s", c.ExpectedPath(suite, i)),
				ActualPath: actualPath,
			}, nil
		}
		return domain.Verdict{}, fmt.Errorf("read expected output: %w", err)
	}

	actualLines := normalizeLines(stdout)
	expectedLines := normalizeLines(string(expected))

	if equalLines(actualLines, expectedLines) {
		if err := os.Remove(diffPath); err != nil && !os.IsNotExist(err) {
			return domain.Verdict{}, fmt.Errorf("remove stale diff: %w", err)
		}
		return domain.Verdict{
			Status:     domain.StatusPass,
			Message:    "Output matches expected.",
			ActualPath: actualPath,
		}, nil
	}

	diff, err := difflib.GetUnifiedDiffString(difflib.UnifiedDiff{
		A:        withLineEndings(expectedLines),
		B:        withLineEndings(actualLines),
		FromFile: fmt.Sprintf("expected_%d", i),
		ToFile:   fmt.Sprintf("actual_%d", i),
		Context:  3,
	})
	if err != nil {
		return domain.Verdict{}, fmt.Errorf("generate diff: %w", err)
	}
	if err := os.WriteFile(diffPath, []byte(diff), 0644); err != nil {
		return domain.Verdict{}, fmt.Errorf("write diff: %w", err)
	}

	return domain.Verdict{
		Status:     domain.StatusFail,
		Message:    "Output mismatch.",
		ActualPath: actualPath,
		DiffPath:   diffPath,
	}, nil
}

// normalizeLines trims the text's outer whitespace as a whole and splits it
// into lines. Embedded blank lines survive; only leading/trailing whitespace
// around the full text is stripped.
func normalizeLines(text string) []string {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	text = strings.TrimSpace(text)
	if text == "" {
		return nil
	}
	return strings.Split(text, "\n")
}

func equalLines(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func withLineEndings(lines []string) []string {
	out := make([]string, len(lines))
	for i, line := range lines {
		out[i] = line + "\n"
	}
	return out
}
