package main

import (
	"log/slog"

	"github.com/spf13/cobra"
)

var version = "dev"

func newRootCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "faircheck",
		Short: "faircheck - fairness evaluation for HTTP classifier endpoints",
		Long: `faircheck evaluates whether a binary classifier, reachable over HTTP,
treats demographic groups equitably.

Given a labeled dataset with a sensitive attribute, it obtains a prediction
for every row from the endpoint, computes demographic parity and equal
opportunity differences, and compares them against configured thresholds.`,
		Version:      version,
		SilenceUsage: true,
	}

	debugLogging := cmd.PersistentFlags().Bool("debug", false, "Enable debug logging")
	cmd.PersistentPreRun = func(cmd *cobra.Command, args []string) {
		if *debugLogging {
			slog.SetLogLoggerLevel(slog.LevelDebug)
		}
	}

	// Add subcommands
	cmd.AddCommand(newReportCommand())
	cmd.AddCommand(newValidateCommand())
	cmd.AddCommand(newInitCommand())
	cmd.AddCommand(newServeCommand())

	return cmd
}

func execute() error {
	rootCmd := newRootCommand()
	return rootCmd.Execute()
}
