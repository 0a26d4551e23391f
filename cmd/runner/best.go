package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tap-runner/internal/games/runner"
	"github.com/vovakirdan/tap-runner/internal/storage"
)

var (
	flagReset bool
	flagUser  string
)

var bestCmd = &cobra.Command{
	Use:   "best",
	Short: "Show or reset the best score",
	Long: `Print the persisted best score.

Examples:
  runner best
  runner best --user alice   # best score of an SSH user
  runner best --reset`,
	Args: cobra.NoArgs,
	RunE: runBest,
}

func init() {
	bestCmd.Flags().BoolVar(&flagReset, "reset", false, "Forget the best score")
	bestCmd.Flags().StringVar(&flagUser, "user", "", "SSH user whose best score to use")
}

func runBest(_ *cobra.Command, _ []string) error {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		return fmt.Errorf("error opening database: %w", err)
	}
	defer store.Close()

	key := runner.DefaultBestKey
	if flagUser != "" {
		key = runner.UserBestKey(flagUser)
	}

	if flagReset {
		if err := store.Delete(key); err != nil {
			return fmt.Errorf("error resetting best score: %w", err)
		}
		fmt.Println("Best score reset.")
		return nil
	}

	best, err := runner.NewBestScore(store, key).Load()
	if err != nil {
		fmt.Printf("Stored value is unreadable (%v); treating it as 0.\n", err)
	}
	fmt.Printf("Best: %d\n", best)
	return nil
}
