package commands

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"grader/internal/config"
	"grader/internal/domain"
	"grader/internal/execution"
	"grader/internal/judge"
	"grader/internal/storage"
	"grader/internal/ui"
)

// RunCommand handles the functional regression mode.
type RunCommand struct {
	config    *config.Config
	runner    *execution.Runner
	formatter *ui.Formatter
	storage   storage.Storage
}

// NewRunCommand creates a new RunCommand
func NewRunCommand(
	cfg *config.Config,
	runner *execution.Runner,
	formatter *ui.Formatter,
	st storage.Storage,
) *RunCommand {
	return &RunCommand{
		config:    cfg,
		runner:    runner,
		formatter: formatter,
		storage:   st,
	}
}

// Execute runs the command
func (rc *RunCommand) Execute(cmd *cobra.Command, args []string) error {
	settings, err := config.LoadSettings(rc.config.GetSettingsPath())
	if err != nil {
		return err
	}

	testDir := rc.config.GetTestDir(settings.TestDir)
	if info, err := os.Stat(testDir); err != nil || !info.IsDir() {
		return fmt.Errorf("test directory %q does not exist", testDir)
	}
	comparator := judge.NewComparator(testDir)

	suites := filterSuites(settings.SuiteNames, rc.config.Flags.Suite)
	if len(suites) == 0 {
		color.Yellow("No suites to run")
		return nil
	}

	if tags := rc.config.GetTags(); tags != "" {
		rc.formatter.TagsInfo(tags)
	}

	// Count cases of available suites so the bar can complete.
	total := 0
	for _, name := range suites {
		if rc.runner.Available(name) {
			total += len(settings.CasesFor(name))
		}
	}
	var bar *ui.ProgressBar
	if total > 0 {
		bar = ui.NewProgressBar(total)
	}

	ctx := context.Background()
	start := time.Now()
	score := domain.Score{}
	var rows []ui.SuiteSummary
	var details []domain.CaseDetail
	var passed, failed, skipped, errored, cases int

	for _, name := range suites {
		rc.formatter.SuiteHeader(name, false)

		if !rc.runner.Available(name) {
			rc.formatter.SuiteMissing(rc.runner.SuiteFile(name))
			continue
		}

		row := ui.SuiteSummary{Name: name}
		for i, tc := range settings.CasesFor(name) {
			cases++
			row.Cases++
			row.Max += tc.Points
			rc.formatter.CaseHeader(i, tc.Desc, tc.Points)

			verdict := rc.judgeCase(ctx, comparator, name, i, tc)
			switch verdict.Status {
			case domain.StatusPass:
				passed++
				row.Passed++
				row.Earned += tc.Points
			case domain.StatusFail:
				failed++
				row.Failed++
			case domain.StatusSkip:
				skipped++
				row.Skipped++
			case domain.StatusError:
				errored++
				row.Errored++
			}
			if !verdict.Passed() {
				details = append(details, caseDetail(name, i, tc.Desc, verdict))
			}
			if bar != nil {
				bar.Update(cases, passed, failed)
			}
		}
		score = score.Add(domain.Score{Earned: row.Earned, Max: row.Max})
		rows = append(rows, row)
	}

	if bar != nil {
		bar.Finish()
	}
	rc.formatter.FinalScore(score)
	rc.formatter.SummaryTable(rows, true)

	report := &domain.RunReport{
		Meta: domain.ReportMeta{
			Mode:            "functional",
			TotalCases:      cases,
			Passed:          passed,
			Failed:          failed,
			Skipped:         skipped,
			Errored:         errored,
			EarnedPoints:    score.Earned,
			MaxPoints:       score.Max,
			Duration:        time.Since(start).String(),
			DurationSeconds: time.Since(start).Seconds(),
			Timestamp:       time.Now().Format(time.RFC3339),
		},
		Details: details,
	}
	if err := rc.storage.Save(report); err != nil {
		return fmt.Errorf("failed to save run report: %w", err)
	}
	return nil
}

// judgeCase runs one case end to end. Every failure mode surfaces as a
// printed verdict for this case alone; siblings always proceed.
func (rc *RunCommand) judgeCase(ctx context.Context, comparator *judge.Comparator, suite string, i int, tc domain.TestCase) domain.Verdict {
	result, err := rc.runner.Run(ctx, suite, tc.Args)
	if err != nil {
		rc.formatter.CaseError(err)
		return domain.Verdict{Status: domain.StatusError, Message: err.Error()}
	}

	verdict, err := comparator.Judge(suite, i, result.Stdout)
	if err != nil {
		rc.formatter.CaseError(err)
		return domain.Verdict{Status: domain.StatusError, Message: err.Error()}
	}

	rc.formatter.Verdict(verdict)
	return verdict
}

// caseDetail folds a non-passing verdict into a report entry, inlining the
// diff artifact so review works even after artifacts are regenerated.
func caseDetail(suite string, i int, desc string, v domain.Verdict) domain.CaseDetail {
	detail := domain.CaseDetail{
		Suite:   suite,
		Index:   i,
		Desc:    desc,
		Status:  v.Status.String(),
		Message: v.Message,
	}
	if v.DiffPath != "" {
		if data, err := os.ReadFile(v.DiffPath); err == nil {
			detail.Diff = string(data)
		}
	}
	return detail
}
