package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tap-runner/internal/platform/tui"
	"github.com/vovakirdan/tap-runner/internal/storage"
)

var flagLimit int

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Browse the run history",
	Long: `Show recorded runs, best first. Tab switches to the most recent runs.

Examples:
  runner scores
  runner scores --limit 20`,
	Args: cobra.NoArgs,
	RunE: runScores,
}

func init() {
	scoresCmd.Flags().IntVar(&flagLimit, "limit", 100, "Number of runs to show")
}

func runScores(_ *cobra.Command, _ []string) error {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		return fmt.Errorf("error opening database: %w", err)
	}
	defer store.Close()

	width, height := 80, 24
	if w, h, sizeErr := term.GetSize(int(os.Stdout.Fd())); sizeErr == nil {
		width, height = w, h
	}
	return tui.RunScoreboard(store, flagLimit, width, height)
}
