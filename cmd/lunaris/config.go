package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/lunaris/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective configuration",
	Long: `Print the configuration Lunaris would play with, after the config file
and --difficulty preset are applied. Redirect it to a file to start a
custom config.

Examples:
  lunaris config > ~/.lunaris/lunaris.yaml
  lunaris config --difficulty hard`,
	Args: cobra.NoArgs,
	RunE: runConfig,
}

func runConfig(_ *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	data, err := config.Marshal(cfg)
	if err != nil {
		return err
	}
	_, err = os.Stdout.Write(data)
	return err
}
