// runner-desktop opens Tap Runner in a desktop window.
//
// Usage:
//
//	runner-desktop [--difficulty easy|normal|hard|fixed] [--config path] [--seed n] [--watch]
package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tap-runner/internal/config"
	"github.com/vovakirdan/tap-runner/internal/platform/desktop"
	"github.com/vovakirdan/tap-runner/internal/storage"
)

var (
	flagDBPath     string
	flagLogLevel   string
	flagConfig     string
	flagDifficulty string
	flagSeed       int64
	flagWatch      bool
)

var rootCmd = &cobra.Command{
	Use:   "runner-desktop",
	Short: "Tap Runner in a desktop window",
	Long: `Open Tap Runner in a resizable window.

Controls:
  Space/Click/Tap  - Start, jump, play again
  Q/Esc            - Quit`,
	Args:         cobra.NoArgs,
	SilenceUsage: true,
	RunE:         run,
}

func init() {
	rootCmd.Flags().StringVar(&flagDBPath, "db", "~/.tap-runner/runner.db", "Path to the runner database")
	rootCmd.Flags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	rootCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom runner config YAML")
	rootCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	rootCmd.Flags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.Flags().BoolVar(&flagWatch, "watch", false, "Reload the config file when it changes")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(_ *cobra.Command, _ []string) error {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return fmt.Errorf("invalid --log-level %q: %w", flagLogLevel, err)
	}
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "runner-desktop",
		Level:           level,
	})

	preset, err := config.ParsePreset(flagDifficulty)
	if err != nil {
		return err
	}
	cfg, err := config.LoadRunner(flagConfig)
	if err != nil {
		return err
	}
	config.ApplyRunnerPreset(&cfg, preset)

	opts := desktop.Options{
		Config: cfg,
		Seed:   flagSeed,
		Logger: logger,
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("database unavailable, best score will not persist", "path", flagDBPath, "error", err)
	} else {
		defer store.Close()
		opts.KV = store
		opts.Runs = store
	}

	if flagWatch {
		if path := config.ResolvePath(flagConfig); path != "" {
			w, watchErr := config.NewWatcher(path, preset)
			if watchErr != nil {
				logger.Warn("cannot watch config", "path", path, "error", watchErr)
			} else {
				defer w.Close()
				opts.Watcher = w
			}
		}
	}

	game, err := desktop.New(opts)
	if err != nil {
		return err
	}
	return desktop.Run(game)
}
