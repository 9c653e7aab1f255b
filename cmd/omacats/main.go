// omacats is a terminal platformer: guide Oma's three cats past the vacuum
// cleaners and get them safely to her bed.
//
// Usage:
//
//	omacats play             - Play the game
//	omacats scores           - Show the high score leaderboard
//	omacats serve            - Start SSH server for remote play
//
// Global flags:
//
//	--fps <rate>    - Set tick rate (default: 60)
//	--seed <value>  - Set RNG seed for reproducible gameplay
//	--db <path>     - Set database path (default: ~/.omacats/scores.db)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagFPS    int
	flagSeed   int64
	flagDBPath string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "omacats",
	Short: "Oma's Adventure - a terminal cat platformer",
	Long: `Oma's Adventure is a terminal side-scroller. Play as Shoogie, Florence
and Sue, fight off the vacuum cleaners and reach Oma's bed.

Available commands:
  play     - Start the game
  scores   - View the high score leaderboard
  serve    - Start SSH server for remote play

Examples:
  omacats play
  omacats play --difficulty hard
  omacats scores
  omacats serve --ssh :2222`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.omacats/scores.db", "Path to scores database")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(serveCmd)
}
