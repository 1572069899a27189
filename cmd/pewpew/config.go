package main

import (
	"github.com/spf13/cobra"

	"github.com/vovakirdan/pewpew/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the default configuration",
	Long: `Print the built-in default configuration as YAML.

Save it, edit it and pass it back with --config.

Examples:
  pewpew config > pewpew.yaml
  pewpew play --config pewpew.yaml`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		_, err := cmd.OutOrStdout().Write(config.DefaultYAML())
		return err
	},
}
