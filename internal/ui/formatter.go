package ui

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/fatih/color"
	"github.com/olekukonko/tablewriter"

	"grader/internal/domain"
	"grader/internal/judge"
	"grader/internal/parser"
)

// SuiteSummary is one row of the end-of-run summary table.
type SuiteSummary struct {
	Name    string
	Cases   int
	Passed  int
	Failed  int
	Skipped int
	Errored int
	Earned  int
	Max     int
}

// Formatter prints per-case status and run summaries to the console.
type Formatter struct{}

// NewFormatter creates a new Formatter.
func NewFormatter() *Formatter {
	return &Formatter{}
}

// SuiteHeader announces a suite before its cases run.
func (f *Formatter) SuiteHeader(name string, perf bool) {
	label := "Suite"
	if perf {
		label = "Performance Suite"
	}
	bold := color.New(color.Bold)
	bold.Printf("\n=== Running %s: %s ===\n", label, name)
}

// SuiteMissing warns that a suite's program file was not found.
func (f *Formatter) SuiteMissing(file string) {
	color.Red("Warning: File %s not found. Skipping suite.", file)
}

// TagsInfo reports the build tags forwarded to the programs under test.
func (f *Formatter) TagsInfo(tags string) {
	fmt.Printf("  [Info] Using tags: %s\n", tags)
}

// CaseHeader prints the functional per-case header.
func (f *Formatter) CaseHeader(i int, desc string, points int) {
	fmt.Printf("\nTest %d: %s (Points: %d)\n", i, desc, points)
}

// CaseTitle prints a bare per-case header, used when a case errors before
// any expectation can be computed.
func (f *Formatter) CaseTitle(i int, desc string) {
	fmt.Printf("\nTest %d: %s\n", i, desc)
}

// PerfCaseHeader prints the performance per-case header with the computed
// expectation, before the program runs.
func (f *Formatter) PerfCaseHeader(i int, desc string, p judge.PerfParams, exp judge.Expectation) {
	f.CaseTitle(i, desc)
	fmt.Printf("  Input: IAT=%gms, Demand=%gms, Concurrent=%d\n", p.IATMean, p.DemandMean, p.MaxConcurrent)
	fmt.Printf("  Calculated: Lambda=%.1f/sec, MaxCap=%.1f/sec\n", exp.Lambda, exp.MaxThroughput)
	mode := "NOT SATURATED"
	if exp.Saturated {
		mode = "SATURATED"
	}
	fmt.Printf("  Mode: %s\n", color.YellowString(mode))
}

// Verdict prints a judged case with its artifact locations.
func (f *Formatter) Verdict(v domain.Verdict) {
	fmt.Printf("  %s %s\n", statusLabel(v.Status), v.Message)
	switch v.Status {
	case domain.StatusFail:
		if v.ActualPath != "" {
			fmt.Printf("  Saved actual output to: %s\n", v.ActualPath)
		}
		if v.DiffPath != "" {
			fmt.Printf("  Saved diff to: %s\n", v.DiffPath)
		}
	case domain.StatusSkip:
		if v.ActualPath != "" {
			fmt.Printf("  Saved actual output to: %s\n", v.ActualPath)
		}
	}
}

// ActualMetrics prints the extracted metrics alongside a failing verdict.
func (f *Formatter) ActualMetrics(throughput, meanRT float64) {
	fmt.Printf("  Actual: throughput=%.1f/sec meanRT=%.3fms\n", throughput, meanRT)
}

// CaseError reports a case that could not be executed or judged.
func (f *Formatter) CaseError(err error) {
	var parseErr *parser.ParseError
	if errors.As(err, &parseErr) {
		fmt.Printf("  %s %s\n", statusLabel(domain.StatusError), parseErr.Error())
		fmt.Printf("  Stdout: %s\n", parseErr.Output)
		return
	}
	fmt.Printf("  %s %v\n", statusLabel(domain.StatusError), err)
}

// FinalScore prints the boxed earned/max tally ending a functional run.
func (f *Formatter) FinalScore(score domain.Score) {
	line := strings.Repeat("=", 30)
	fmt.Println("\n" + line)
	tally := fmt.Sprintf("%d/%d", score.Earned, score.Max)
	if score.Perfect() {
		tally = color.GreenString(tally)
	} else {
		tally = color.RedString(tally)
	}
	bold := color.New(color.Bold)
	bold.Printf("Total Score: %s\n", tally)
	fmt.Println(line)
}

// SummaryTable prints the per-suite roll-up ending a run.
func (f *Formatter) SummaryTable(rows []SuiteSummary, withPoints bool) {
	if len(rows) == 0 {
		return
	}
	fmt.Println()
	table := tablewriter.NewWriter(os.Stdout)
	header := []string{"Suite", "Cases", "Passed", "Failed", "Skipped", "Errored"}
	if withPoints {
		header = append(header, "Points")
	}
	table.SetHeader(header)
	table.SetBorder(false)
	table.SetCenterSeparator("")
	for _, r := range rows {
		row := []string{
			r.Name,
			strconv.Itoa(r.Cases),
			strconv.Itoa(r.Passed),
			strconv.Itoa(r.Failed),
			strconv.Itoa(r.Skipped),
			strconv.Itoa(r.Errored),
		}
		if withPoints {
			row = append(row, fmt.Sprintf("%d/%d", r.Earned, r.Max))
		}
		table.Append(row)
	}
	table.Render()
}

func statusLabel(s domain.Status) string {
	switch s {
	case domain.StatusPass:
		return color.GreenString("[PASS]")
	case domain.StatusFail:
		return color.RedString("[FAIL]")
	case domain.StatusSkip:
		return color.YellowString("[SKIP]")
	default:
		return color.RedString("[ERROR]")
	}
}
