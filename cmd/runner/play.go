package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tap-runner/internal/core"
	"github.com/vovakirdan/tap-runner/internal/platform/tui"
)

var (
	flagConfig     string
	flagDifficulty string
	flagSeed       int64
	flagFPS        int
	flagWatch      bool
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in this terminal",
	Long: `Start a run in this terminal.

Controls:
  Space/Click  - Start, jump, play again
  Enter        - Press the overlay button
  Ctrl+S       - Save a screenshot
  ?            - Toggle help
  Q/Ctrl+C     - Quit

Difficulty options:
  easy   - Start at lowest difficulty, progresses to max
  normal - Start at 30% difficulty, progresses to max
  hard   - Start at 70% difficulty, progresses to max
  fixed  - No progression, stays at config's initial level

Examples:
  runner play
  runner play --difficulty hard
  runner play --config ./my-runner.yaml --watch
  runner play --seed 42`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom runner config YAML")
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	playCmd.Flags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	playCmd.Flags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	playCmd.Flags().BoolVar(&flagWatch, "watch", false, "Reload the config file when it changes")
}

func runPlay(_ *cobra.Command, _ []string) error {
	cfg, preset, err := loadConfig(flagConfig, flagDifficulty)
	if err != nil {
		return err
	}

	logFile, err := openLogFile()
	if err != nil {
		return err
	}
	defer logFile.Close()
	logger, err := newLogger(logFile, "runner")
	if err != nil {
		return err
	}

	store, kv := openStore(logger)
	if store != nil {
		defer store.Close()
	}

	width, height := 80, 24 // Defaults
	if w, h, sizeErr := term.GetSize(int(os.Stdout.Fd())); sizeErr == nil {
		width, height = w, h
	}

	opts := tui.Options{
		Config: cfg,
		Runtime: core.RuntimeConfig{
			ScreenW:  width,
			ScreenH:  height,
			TickRate: flagFPS,
			Seed:     flagSeed,
		},
		KV:     kv,
		Logger: logger,
	}
	if store != nil {
		opts.Runs = store
	}
	if flagWatch {
		if w := startWatcher(flagConfig, preset, logger); w != nil {
			defer w.Close()
			opts.Watcher = w
		}
	}

	logger.Info("starting", "difficulty", preset, "seed", flagSeed, "fps", flagFPS)
	if err := tui.Run(opts); err != nil {
		return fmt.Errorf("error running game: %w", err)
	}
	return nil
}
