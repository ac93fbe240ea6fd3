package main

import (
	"github.com/spf13/cobra"

	"github.com/vovakirdan/skyraid/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the default configuration",
	Long: `Prints the built-in default configuration as YAML.

Save it as ~/.skyraid/configs/shooter.yaml (or pass it with --config) and
edit the values you want to change.

Examples:
  skyraid config > ~/.skyraid/configs/shooter.yaml`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		_, err := cmd.OutOrStdout().Write(config.GetDefaultYAML())
		return err
	},
}
