package main

import (
	"fmt"

	"github.com/fairbench/faircheck/internal/config"
	"github.com/fairbench/faircheck/internal/orchestration"
	"github.com/fairbench/faircheck/internal/reporting"
	"github.com/spf13/cobra"
)

var (
	verbose    bool
	outputPath string
	junitPath  string
	format     string
	interpret  bool
)

func newReportCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "report <config.yaml>",
		Short: "Run a fairness evaluation against the configured endpoint",
		Long: `Run a fairness evaluation from a config file.

The config file names the classifier endpoint, the labeled CSV dataset, and
the fairness thresholds. Every dataset row is sent to the endpoint in order;
the resulting predictions feed the fairness metrics.

Exit code is 1 when a fairness threshold is exceeded, 2 on any error.`,
		Args: cobra.ExactArgs(1),
		RunE: reportCommandE,
	}

	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "Verbose output with per-sample progress")
	cmd.Flags().StringVarP(&outputPath, "output", "o", "", "Output JSON file for the report (.gz for compressed)")
	cmd.Flags().StringVar(&junitPath, "junit", "", "Write threshold checks as JUnit XML to this path")
	cmd.Flags().StringVar(&format, "format", "default", "Output format: default, github-comment")
	cmd.Flags().BoolVar(&interpret, "interpret", false, "Print a plain-language interpretation of the results")

	return cmd
}

func reportCommandE(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(args[0])
	if err != nil {
		return err
	}

	runner := orchestration.NewRunner(cfg)
	if verbose {
		runner.OnProgress(func(ev orchestration.ProgressEvent) {
			switch ev.EventType {
			case orchestration.EventLoadComplete:
				fmt.Fprintf(cmd.OutOrStdout(), "Loaded %d samples\n", ev.TotalSamples)
			case orchestration.EventSampleComplete:
				if (ev.SampleIndex+1)%10 == 0 || ev.SampleIndex+1 == ev.TotalSamples {
					fmt.Fprintf(cmd.OutOrStdout(), "  Progress: %d/%d samples\n", ev.SampleIndex+1, ev.TotalSamples)
				}
			case orchestration.EventAggregateStart:
				fmt.Fprintln(cmd.OutOrStdout(), "Calculating fairness metrics...")
			}
		})
	}

	report, err := runner.Run(cmd.Context())
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	switch format {
	case "github-comment":
		fmt.Fprint(out, FormatGitHubComment(report))
	default:
		fmt.Fprint(out, FormatConsoleReport(report))
	}

	if interpret {
		fmt.Fprintln(out)
		fmt.Fprint(out, reporting.FormatInterpretation(report))
	}

	if outputPath != "" {
		if err := reporting.WriteJSON(report, outputPath); err != nil {
			return fmt.Errorf("writing report: %w", err)
		}
	}
	if junitPath != "" {
		if err := reporting.WriteJUnitXML(report, junitPath); err != nil {
			return fmt.Errorf("writing JUnit XML: %w", err)
		}
	}

	if !report.ThresholdsMet.AllMet() {
		return &FairnessFailureError{Message: "one or more fairness thresholds were exceeded"}
	}
	return nil
}
