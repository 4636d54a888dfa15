package main

import (
	"fmt"

	"github.com/fairbench/faircheck/internal/config"
	"github.com/spf13/cobra"
)

func newValidateCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "validate <config.yaml>",
		Short: "Check a configuration file without running an evaluation",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(args[0])
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "✓ Configuration file %q is valid\n", args[0])
			fmt.Fprintf(out, "  Endpoint: %s %s\n", cfg.Endpoint.Method, cfg.Endpoint.URL)
			fmt.Fprintf(out, "  Dataset: %s\n", cfg.Dataset.Path)
			fmt.Fprintf(out, "  Thresholds: demographic parity %.4f, equal opportunity %.4f\n",
				cfg.Fairness.DemographicParityThreshold, cfg.Fairness.EqualOpportunityThreshold)
			return nil
		},
	}
}
