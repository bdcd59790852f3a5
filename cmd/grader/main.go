package main

import (
	"fmt"
	"os"

	"grader/internal/cli"
	"grader/internal/cli/commands"
	"grader/internal/config"

	"github.com/spf13/cobra"
)

var version = "dev"

func main() {
	// Create root command
	rootCmd := &cobra.Command{
		Use:     "grader",
		Short:   "Configuration-driven harness for externally built Go programs",
		Long:    `A test harness that invokes externally built programs with prescribed arguments and judges their output: exact-match regression comparison against golden files, or statistical validation of reported performance metrics against a queueing model.`,
		Version: version,
	}

	// Create initial config with defaults; .env may supply fallbacks for flags
	cfg := config.New()
	cfg.LoadEnv()

	// Create flags struct (will be populated by command flags)
	var flags cli.Flags

	// Create commands with dependencies
	cmds := commands.NewCommands(cfg)

	// Register all commands
	cmds.Register(rootCmd, &flags, cfg)

	// Execute root command
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
