package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tap-runner/internal/config"
)

var (
	flagShowConfig string
	flagShowDiff   string
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective configuration",
	Long: `Print the runner configuration as YAML, after the search order and the
difficulty preset are applied. Redirect it to a file to start a custom config.

Examples:
  runner config > ~/.tap-runner/configs/runner.yaml
  runner config --difficulty hard`,
	Args: cobra.NoArgs,
	RunE: runConfig,
}

func init() {
	configCmd.Flags().StringVar(&flagShowConfig, "config", "", "Path to custom runner config YAML")
	configCmd.Flags().StringVar(&flagShowDiff, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
}

func runConfig(_ *cobra.Command, _ []string) error {
	cfg, _, err := loadConfig(flagShowConfig, flagShowDiff)
	if err != nil {
		return err
	}
	data, err := config.Marshal(cfg)
	if err != nil {
		return err
	}
	if path := config.ResolvePath(flagShowConfig); path != "" {
		fmt.Fprintf(os.Stderr, "# loaded from %s\n", path)
	}
	_, err = os.Stdout.Write(data)
	return err
}
