package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/omacats/platformer/internal/platform/tui"
	"github.com/omacats/platformer/internal/storage"
)

var flagInteractive bool

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show the high score leaderboard",
	Long: `Display the top 10 high scores.

Examples:
  omacats scores
  omacats scores --interactive`,
	Run: runScores,
}

func init() {
	scoresCmd.Flags().BoolVar(&flagInteractive, "interactive", false, "Browse scores in a TUI table")
}

func runScores(cmd *cobra.Command, args []string) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening scores database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if flagInteractive {
		if err := tui.RunScoreboard(store); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	entries, err := store.Top(storage.Capacity)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving scores: %v\n", err)
		os.Exit(1)
	}

	fmt.Println("High Scores - Oma's Adventure")
	fmt.Println()

	if len(entries) == 0 {
		fmt.Println("No scores recorded yet.")
		fmt.Println()
		fmt.Println("Play 'omacats play' to set the first high score!")
		return
	}

	fmt.Printf("  %-4s  %-15s  %-8s  %-6s  %s\n", "Rank", "Name", "Score", "Rounds", "Date")
	fmt.Printf("  %-4s  %-15s  %-8s  %-6s  %s\n", "----", "----", "-----", "------", "----")

	for i, entry := range entries {
		dateStr := entry.CreatedAt.Format("2006-01-02 15:04")
		fmt.Printf("  %-4d  %-15s  %-8d  %-6d  %s\n", i+1, entry.Name, entry.Score, entry.Rounds, dateStr)
	}

	fmt.Println()
	if highScore, err := store.HighScore(); err == nil {
		fmt.Printf("Best: %d\n", highScore)
	}
}
