package commands

import (
	"context"
	"fmt"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"grader/internal/config"
	"grader/internal/domain"
	"grader/internal/execution"
	"grader/internal/judge"
	"grader/internal/parser"
	"grader/internal/storage"
	"grader/internal/ui"
)

// PerfCommand handles the performance validation mode. Cases carry no
// points: each one is independently pass/fail against the model's window.
type PerfCommand struct {
	config    *config.Config
	runner    *execution.Runner
	parser    parser.Parser
	formatter *ui.Formatter
	storage   storage.Storage
}

// NewPerfCommand creates a new PerfCommand
func NewPerfCommand(
	cfg *config.Config,
	runner *execution.Runner,
	p parser.Parser,
	formatter *ui.Formatter,
	st storage.Storage,
) *PerfCommand {
	return &PerfCommand{
		config:    cfg,
		runner:    runner,
		parser:    p,
		formatter: formatter,
		storage:   st,
	}
}

// Execute runs the command
func (pc *PerfCommand) Execute(cmd *cobra.Command, args []string) error {
	settings, err := config.LoadSettings(pc.config.GetSettingsPath())
	if err != nil {
		return err
	}

	suites := filterSuites(settings.SuiteNames, pc.config.Flags.Suite)
	if len(suites) == 0 {
		color.Yellow("No suites to run")
		return nil
	}

	if tags := pc.config.GetTags(); tags != "" {
		pc.formatter.TagsInfo(tags)
	}

	oracle := judge.NewOracle(pc.config.GetTolerance())
	ctx := context.Background()
	start := time.Now()
	var rows []ui.SuiteSummary
	var details []domain.CaseDetail
	var passed, failed, errored, cases int

	for _, name := range suites {
		pc.formatter.SuiteHeader(name, true)

		if !pc.runner.Available(name) {
			pc.formatter.SuiteMissing(pc.runner.SuiteFile(name))
			continue
		}

		row := ui.SuiteSummary{Name: name}
		for i, tc := range settings.CasesFor(name) {
			cases++
			row.Cases++

			verdict := pc.judgeCase(ctx, oracle, name, i, tc)
			switch verdict.Status {
			case domain.StatusPass:
				passed++
				row.Passed++
			case domain.StatusFail:
				failed++
				row.Failed++
			default:
				errored++
				row.Errored++
			}
			if !verdict.Passed() {
				details = append(details, caseDetail(name, i, tc.Desc, verdict))
			}
		}
		rows = append(rows, row)
	}

	pc.formatter.SummaryTable(rows, false)

	report := &domain.RunReport{
		Meta: domain.ReportMeta{
			Mode:            "performance",
			TotalCases:      cases,
			Passed:          passed,
			Failed:          failed,
			Errored:         errored,
			Duration:        time.Since(start).String(),
			DurationSeconds: time.Since(start).Seconds(),
			Timestamp:       time.Now().Format(time.RFC3339),
		},
		Details: details,
	}
	if err := pc.storage.Save(report); err != nil {
		return fmt.Errorf("failed to save run report: %w", err)
	}
	return nil
}

// judgeCase validates one performance case: compute the expectation, run the
// program, extract its metrics, and check the relevant one against the window.
func (pc *PerfCommand) judgeCase(ctx context.Context, oracle *judge.Oracle, suite string, i int, tc domain.TestCase) domain.Verdict {
	params, err := judge.ParsePerfParams(tc.Args)
	if err != nil {
		pc.formatter.CaseTitle(i, tc.Desc)
		pc.formatter.CaseError(err)
		return domain.Verdict{Status: domain.StatusError, Message: err.Error()}
	}

	// The expectation is printed before the program runs; it depends only on
	// the declared parameters.
	expectation := oracle.Expect(params)
	pc.formatter.PerfCaseHeader(i, tc.Desc, params, expectation)

	result, err := pc.runner.Run(ctx, suite, tc.Args)
	if err != nil {
		pc.formatter.CaseError(err)
		return domain.Verdict{Status: domain.StatusError, Message: err.Error()}
	}

	metrics, err := pc.parser.Parse(result.Stdout)
	if err != nil {
		pc.formatter.CaseError(err)
		return domain.Verdict{Status: domain.StatusError, Message: err.Error()}
	}

	verdict := oracle.Judge(expectation, metrics.Throughput, metrics.MeanRT)
	pc.formatter.Verdict(verdict)
	if !verdict.Passed() {
		pc.formatter.ActualMetrics(metrics.Throughput, metrics.MeanRT)
	}
	return verdict
}
