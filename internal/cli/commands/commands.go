package commands

import (
	"grader/internal/cli"
	"grader/internal/config"
	"grader/internal/execution"
	"grader/internal/parser"
	"grader/internal/storage"
	"grader/internal/ui"

	"github.com/spf13/cobra"
)

// Commands holds all CLI commands
type Commands struct {
	Run    *RunCommand
	Perf   *PerfCommand
	List   *ListCommand
	Review *ReviewCommand
}

// NewCommands creates all commands with dependencies
func NewCommands(cfg *config.Config) *Commands {
	runner := execution.NewRunner(cfg)
	metricsParser := parser.NewMetricsParser()
	jsonStorage := storage.NewJSONStorage(cfg)
	formatter := ui.NewFormatter()
	viewer := ui.NewReviewViewer()

	return &Commands{
		Run:    NewRunCommand(cfg, runner, formatter, jsonStorage),
		Perf:   NewPerfCommand(cfg, runner, metricsParser, formatter, jsonStorage),
		List:   NewListCommand(cfg, runner, formatter),
		Review: NewReviewCommand(cfg, jsonStorage, viewer),
	}
}

// Register registers all commands with cobra
func (c *Commands) Register(rootCmd *cobra.Command, flags *cli.Flags, cfg *config.Config) {
	applyFlags := func(cmd *cobra.Command, args []string) error {
		cfg.Flags = flags.ToConfigFlags()
		return nil
	}

	// Run command (functional regression mode)
	runCmd := &cobra.Command{
		Use:     "run",
		Short:   "Run functional regression suites",
		Long:    "Execute each configured suite's program per test case and compare its output against golden reference files, accumulating points for passing cases.",
		RunE:    c.Run.Execute,
		PreRunE: applyFlags,
	}
	runCmd.Flags().StringVarP(&flags.Settings, "settings", "s", "", "Path to the settings file (default settings.json)")
	runCmd.Flags().StringVar(&flags.Tags, "tags", "", "Optional build tags to pass to go run (e.g. 'lock')")
	runCmd.Flags().StringVar(&flags.Suite, "suite", "", "Run only the named suite")
	rootCmd.AddCommand(runCmd)

	// Perf command (performance validation mode)
	perfCmd := &cobra.Command{
		Use:     "perf",
		Short:   "Run performance validation suites",
		Long:    "Execute each configured suite's program per test case and validate its reported throughput or mean response time against the queueing model's prediction.",
		RunE:    c.Perf.Execute,
		PreRunE: applyFlags,
	}
	perfCmd.Flags().StringVarP(&flags.Settings, "settings", "s", "", "Path to the settings file (default settings.json)")
	perfCmd.Flags().StringVar(&flags.Tags, "tags", "", "Optional build tags to pass to go run")
	perfCmd.Flags().StringVar(&flags.Suite, "suite", "", "Run only the named suite")
	perfCmd.Flags().Float64Var(&flags.Tolerance, "tolerance", 0, "Acceptance tolerance fraction (default 0.20)")
	rootCmd.AddCommand(perfCmd)

	// List command
	listCmd := &cobra.Command{
		Use:     "list",
		Short:   "List configured suites and cases",
		Long:    "Show the suites and test cases declared in the settings file without executing anything.",
		RunE:    c.List.Execute,
		PreRunE: applyFlags,
	}
	listCmd.Flags().StringVarP(&flags.Settings, "settings", "s", "", "Path to the settings file (default settings.json)")
	listCmd.Flags().StringVar(&flags.Suite, "suite", "", "List only the named suite")
	rootCmd.AddCommand(listCmd)

	// Review command
	reviewCmd := &cobra.Command{
		Use:   "review",
		Short: "Review failures from the last run",
		Long:  "Browse the last run's failed and errored cases, with diff artifacts, in an interactive viewer.",
		RunE:  c.Review.Execute,
	}
	rootCmd.AddCommand(reviewCmd)
}

// filterSuites keeps the declared order, narrowing to a single suite when a
// name filter is set.
func filterSuites(names []string, only string) []string {
	if only == "" {
		return names
	}
	var filtered []string
	for _, name := range names {
		if name == only {
			filtered = append(filtered, name)
		}
	}
	return filtered
}
