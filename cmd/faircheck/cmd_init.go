package main

import (
	"fmt"
	"os"

	"github.com/fairbench/faircheck/internal/wizard"
	"github.com/spf13/cobra"
)

func newInitCommand() *cobra.Command {
	var outPath string
	var force bool

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Create a config file interactively",
		Long: `Create a faircheck config file by answering a few questions.

The wizard asks for the endpoint URL, HTTP method, dataset path, and
fairness thresholds, then writes a ready-to-use YAML config.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !force {
				if _, err := os.Stat(outPath); err == nil {
					return fmt.Errorf("%s already exists (use --force to overwrite)", outPath)
				}
			}

			spec, err := wizard.RunConfigWizard(cmd.InOrStdin(), cmd.OutOrStdout())
			if err != nil {
				return err
			}

			content, err := wizard.GenerateConfigYAML(spec)
			if err != nil {
				return err
			}
			if err := os.WriteFile(outPath, []byte(content), 0644); err != nil {
				return fmt.Errorf("writing %s: %w", outPath, err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", outPath)
			fmt.Fprintf(cmd.OutOrStdout(), "Run it with: faircheck report %s\n", outPath)
			return nil
		},
	}

	cmd.Flags().StringVarP(&outPath, "output", "o", "config.yaml", "Path for the generated config file")
	cmd.Flags().BoolVar(&force, "force", false, "Overwrite an existing config file")

	return cmd
}
