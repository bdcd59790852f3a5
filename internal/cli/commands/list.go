package commands

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"grader/internal/config"
	"grader/internal/execution"
	"grader/internal/ui"
)

// ListCommand shows configured suites and cases without executing them.
type ListCommand struct {
	config    *config.Config
	runner    *execution.Runner
	formatter *ui.Formatter
}

// NewListCommand creates a new ListCommand
func NewListCommand(cfg *config.Config, runner *execution.Runner, formatter *ui.Formatter) *ListCommand {
	return &ListCommand{
		config:    cfg,
		runner:    runner,
		formatter: formatter,
	}
}

// Execute runs the command
func (lc *ListCommand) Execute(cmd *cobra.Command, args []string) error {
	settings, err := config.LoadSettings(lc.config.GetSettingsPath())
	if err != nil {
		return err
	}

	suites := filterSuites(settings.SuiteNames, lc.config.Flags.Suite)
	if len(suites) == 0 {
		color.Yellow("No suites configured")
		return nil
	}

	color.Green("Configured %d suite(s):\n", len(suites))
	for si, name := range suites {
		marker := ""
		if !lc.runner.Available(name) {
			marker = " " + color.RedString("[missing %s]", lc.runner.SuiteFile(name))
		}

		isLastSuite := si == len(suites)-1
		if isLastSuite {
			color.Cyan("└── %s%s", name, marker)
		} else {
			color.Cyan("├── %s%s", name, marker)
		}

		cases := settings.CasesFor(name)
		for ci, tc := range cases {
			var prefix string
			isLastCase := ci == len(cases)-1
			switch {
			case isLastSuite && isLastCase:
				prefix = "    └── "
			case isLastSuite:
				prefix = "    ├── "
			case isLastCase:
				prefix = "│   └── "
			default:
				prefix = "│   ├── "
			}
			fmt.Printf("%s%s\n", prefix, color.YellowString(
				"%d: %s (args: %s, points: %d)", ci, tc.Desc, strings.Join(tc.Args, " "), tc.Points))
		}
		if len(cases) == 0 {
			prefix := "│   └── "
			if isLastSuite {
				prefix = "    └── "
			}
			fmt.Printf("%s%s\n", prefix, color.RedString("(no test cases)"))
		}
	}

	return nil
}
