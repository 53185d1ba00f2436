package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/lunaris/internal/registry"
	"github.com/vovakirdan/lunaris/internal/storage"
)

var flagScoresLimit int

var scoresCmd = &cobra.Command{
	Use:   "scores [mode]",
	Short: "Show high scores",
	Long: `Display the top scores for the specified mode, or the best runs across
all modes when no mode is given.

Examples:
  lunaris scores
  lunaris scores striker
  lunaris scores blitz --limit 20`,
	Args: cobra.MaximumNArgs(1),
	RunE: runScores,
}

func init() {
	scoresCmd.Flags().IntVar(&flagScoresLimit, "limit", 10, "Number of scores to show")
}

func runScores(_ *cobra.Command, args []string) error {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		return fmt.Errorf("opening scores database: %w", err)
	}
	defer store.Close()

	if len(args) == 0 {
		return printLeaderboard(store)
	}

	modeID := args[0]
	info, ok := registry.Info(modeID)
	if !ok {
		return fmt.Errorf("unknown mode %q (run 'lunaris list' to see available modes)", modeID)
	}

	scores, err := store.TopScores(modeID, flagScoresLimit)
	if err != nil {
		return fmt.Errorf("retrieving scores: %w", err)
	}

	fmt.Printf("High Scores - %s\n", info.Name)
	fmt.Println()

	if len(scores) == 0 {
		fmt.Println("No scores recorded yet.")
		fmt.Println()
		fmt.Printf("Play 'lunaris play %s' to set the first high score!\n", modeID)
		return nil
	}

	fmt.Printf("  %-4s  %-3s  %-10s  %s\n", "Rank", "Tag", "Score", "Date")
	fmt.Printf("  %-4s  %-3s  %-10s  %s\n", "----", "---", "-----", "----")
	for i, entry := range scores {
		fmt.Printf("  %-4d  %-3s  %-10d  %s\n", i+1, entry.Initials, entry.Score, entry.CreatedAt.Format("2006-01-02 15:04"))
	}

	if stats, err := store.GetModeStats(modeID); err == nil {
		fmt.Println()
		fmt.Printf("Best: %d  Runs: %d  Average: %.0f\n", stats.HighScore, stats.RunsCount, stats.AvgScore)
	}
	return nil
}

func printLeaderboard(store *storage.Store) error {
	scores, err := store.Leaderboard(flagScoresLimit)
	if err != nil {
		return fmt.Errorf("retrieving scores: %w", err)
	}

	fmt.Println("High Scores - All Modes")
	fmt.Println()
	if len(scores) == 0 {
		fmt.Println("No scores recorded yet.")
		return nil
	}

	fmt.Printf("  %-4s  %-10s  %-3s  %-10s  %s\n", "Rank", "Mode", "Tag", "Score", "Date")
	fmt.Printf("  %-4s  %-10s  %-3s  %-10s  %s\n", "----", "----", "---", "-----", "----")
	for i, entry := range scores {
		fmt.Printf("  %-4d  %-10s  %-3s  %-10d  %s\n", i+1, entry.ModeID, entry.Initials, entry.Score, entry.CreatedAt.Format("2006-01-02 15:04"))
	}
	return nil
}
