// runner is a one-button endless runner for the terminal.
//
// Usage:
//
//	runner play              - Play in this terminal
//	runner serve             - Start SSH server for remote play
//	runner scores            - Browse the run history
//	runner best [--reset]    - Show or reset the best score
//	runner config            - Print the effective configuration
//
// Global flags:
//
//	--db <path>          - Set database path (default: ~/.tap-runner/runner.db)
//	--log-level <level>  - debug, info, warn or error (default: info)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagDBPath   string
	flagLogLevel string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "runner",
	Short: "Tap Runner - a one-button endless runner",
	Long: `Tap Runner is an endless runner you play with a single button.
Press space or click to jump over the obstacles. Every obstacle you clear
scores a point, and the game speeds up as you go.

Available commands:
  play     - Play in this terminal
  serve    - Start SSH server for remote play
  scores   - Browse the run history
  best     - Show or reset the best score
  config   - Print the effective configuration

Examples:
  runner play
  runner play --difficulty hard --watch
  runner serve --ssh :2222
  runner scores --limit 20`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.tap-runner/runner.db", "Path to the runner database")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(bestCmd)
	rootCmd.AddCommand(configCmd)
}
